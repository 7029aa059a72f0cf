package adaptor

import (
	"ticket-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Ticket  *TicketHandler
	Account *AccountHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Ticket:  NewTicketHandler(service.Ticket, log),
		Account: NewAccountHandler(service.Account, log),
	}
}
