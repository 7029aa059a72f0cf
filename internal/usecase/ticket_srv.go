package usecase

import (
	"context"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

// PaymentGateway takes money from an account.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID int64, totalAmount int) error
}

// SeatReservation holds seats for an account.
type SeatReservation interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeats int) error
}

// Quote is the outcome of pricing a batch of ticket requests.
type Quote struct {
	TotalAmount int
	TotalSeats  int
}

type TicketService interface {
	// PurchaseTickets validates the batch, charges the account and reserves
	// the seats. Nothing is charged or reserved unless every rule passes.
	PurchaseTickets(ctx context.Context, accountID *int64, requests []*entity.TicketRequest) error

	// Quote applies the batch rules and prices the tickets without charging.
	Quote(requests []*entity.TicketRequest) (Quote, error)
}

type ticketService struct {
	payment     PaymentGateway
	reservation SeatReservation
	log         *zap.Logger
}

func NewTicketService(payment PaymentGateway, reservation SeatReservation, log *zap.Logger) TicketService {
	return &ticketService{
		payment:     payment,
		reservation: reservation,
		log:         log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, accountID *int64, requests []*entity.TicketRequest) error {
	if accountID == nil {
		return missingValue("accountId")
	}
	if *accountID < 1 {
		s.log.Warn("Purchase rejected", zap.Int64("account_id", *accountID), zap.String("reason", "invalid account"))
		return invalidPurchase("accountId must be > 0")
	}

	quote, err := s.Quote(requests)
	if err != nil {
		s.log.Warn("Purchase rejected",
			zap.Int64("account_id", *accountID),
			zap.Int("requests", len(requests)),
			zap.Error(err),
		)
		return err
	}

	// collaborator errors go back to the caller as-is
	if err := s.payment.MakePayment(ctx, *accountID, quote.TotalAmount); err != nil {
		s.log.Error("Payment failed",
			zap.Error(err),
			zap.Int64("account_id", *accountID),
			zap.Int("total_amount", quote.TotalAmount),
		)
		return err
	}

	if err := s.reservation.ReserveSeat(ctx, *accountID, quote.TotalSeats); err != nil {
		s.log.Error("Seat reservation failed",
			zap.Error(err),
			zap.Int64("account_id", *accountID),
			zap.Int("total_seats", quote.TotalSeats),
		)
		return err
	}

	s.log.Info("Tickets purchased",
		zap.Int64("account_id", *accountID),
		zap.Int("total_amount", quote.TotalAmount),
		zap.Int("total_seats", quote.TotalSeats),
	)

	return nil
}

func (s *ticketService) Quote(requests []*entity.TicketRequest) (Quote, error) {
	if requests == nil {
		return Quote{}, missingValue("ticket requests")
	}
	if len(requests) == 0 {
		return Quote{}, invalidPurchase("ticket requests must be specified")
	}

	for _, r := range requests {
		if r == nil {
			return Quote{}, invalidPurchase("ticket requests must all be non-null")
		}
	}

	rules := make([]TicketRule, len(requests))
	for i, r := range requests {
		rule, ok := ruleFor(r)
		if !ok {
			return Quote{}, invalidPurchase("ticket requests must all have a valid ticket type")
		}
		rules[i] = rule
	}

	// Rejects only when every request needs an adult; a zero-quantity
	// adult request is enough to pass.
	allAccompanied := true
	for _, rule := range rules {
		if !rule.RequiresAdult {
			allAccompanied = false
			break
		}
	}
	if allAccompanied {
		return Quote{}, invalidPurchase("child and infant tickets cannot be purchased without adult tickets")
	}

	// Checked against the remaining allowance so huge quantities cannot
	// wrap the sum.
	var quote Quote
	for i, r := range requests {
		if !rules[i].RequiresSeat {
			continue
		}
		if r.Quantity() > MaxTicketsPerPurchase-quote.TotalSeats {
			return Quote{}, invalidPurchase("a maximum of %d tickets can be purchased at a time", MaxTicketsPerPurchase)
		}
		quote.TotalSeats += r.Quantity()
	}

	for i, r := range requests {
		quote.TotalAmount += r.Quantity() * rules[i].Price
	}

	return quote, nil
}
