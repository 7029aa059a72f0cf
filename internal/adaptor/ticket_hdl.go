package adaptor

import (
	"encoding/json"
	"net/http"

	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	h.purchase(w, r, &req)
}

// PurchaseAccountTickets handles POST /api/accounts/{accountID}/tickets
func (h *TicketHandler) PurchaseAccountTickets(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid account ID", nil)
		return
	}

	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.AccountID = &accountID

	h.purchase(w, r, &req)
}

func (h *TicketHandler) purchase(w http.ResponseWriter, r *http.Request, req *request.PurchaseTicketsRequest) {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tickets, err := req.TicketRequests()
	if err != nil {
		writeServiceError(w, h.log, err, "purchase tickets")
		return
	}

	if err := h.service.PurchaseTickets(r.Context(), req.AccountID, tickets); err != nil {
		writeServiceError(w, h.log, err, "purchase tickets")
		return
	}

	// the batch already passed, so the quote cannot fail here
	quote, err := h.service.Quote(tickets)
	if err != nil {
		writeServiceError(w, h.log, err, "quote tickets")
		return
	}

	utils.ResponseCreated(w, "success", response.PurchaseResponse{
		AccountID:   *req.AccountID,
		TotalAmount: quote.TotalAmount,
		TotalSeats:  quote.TotalSeats,
	})
}

// GetPrices handles GET /api/tickets/prices
func (h *TicketHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	rules := usecase.TicketRules()

	prices := make([]response.TicketPriceResponse, len(rules))
	for i, rule := range rules {
		prices[i] = response.TicketPriceResponse{
			Type:          rule.Category,
			Price:         rule.Price,
			RequiresSeat:  rule.RequiresSeat,
			RequiresAdult: rule.RequiresAdult,
		}
	}

	utils.ResponseSuccess(w, "success", response.PriceListResponse{
		MaxTicketsPerPurchase: usecase.MaxTicketsPerPurchase,
		Prices:                prices,
	})
}
