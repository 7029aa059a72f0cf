package usecase

import (
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/gateway"

	"go.uber.org/zap"
)

type Service struct {
	Ticket  TicketService
	Account AccountService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(
			gateway.NewPaymentGateway(repo.Payment, log),
			gateway.NewSeatReservation(repo.SeatReservation, log),
			log,
		),
		Account: NewAccountService(repo, log),
	}
}
