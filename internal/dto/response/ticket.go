package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type PurchaseResponse struct {
	AccountID   int64 `json:"account_id"`
	TotalAmount int   `json:"total_amount"`
	TotalSeats  int   `json:"total_seats"`
}

type TicketPriceResponse struct {
	Type          entity.TicketCategory `json:"type"`
	Price         int                   `json:"price"`
	RequiresSeat  bool                  `json:"requires_seat"`
	RequiresAdult bool                  `json:"requires_adult"`
}

type PriceListResponse struct {
	MaxTicketsPerPurchase int                   `json:"max_tickets_per_purchase"`
	Prices                []TicketPriceResponse `json:"prices"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	Amount    int                  `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type SeatReservationResponse struct {
	ID        string    `json:"id"`
	SeatCount int       `json:"seat_count"`
	CreatedAt time.Time `json:"created_at"`
}

type AccountHistoryResponse struct {
	AccountID          int64                     `json:"account_id"`
	TotalReservedSeats int64                     `json:"total_reserved_seats"`
	Page               int                       `json:"page"`
	PerPage            int                       `json:"per_page"`
	Payments           []PaymentResponse         `json:"payments"`
	Reservations       []SeatReservationResponse `json:"reservations"`
}

// Helper converters
func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		Amount:    p.Amount,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func SeatReservationToResponse(sr *entity.SeatReservation) SeatReservationResponse {
	return SeatReservationResponse{
		ID:        sr.ID.String(),
		SeatCount: sr.SeatCount,
		CreatedAt: sr.CreatedAt,
	}
}
