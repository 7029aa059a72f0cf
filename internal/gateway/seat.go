package gateway

import (
	"context"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatReservation records each seat hold in the reservation ledger.
type SeatReservation struct {
	repo repository.SeatReservationRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewSeatReservation(repo repository.SeatReservationRepository, log *zap.Logger) *SeatReservation {
	return &SeatReservation{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("gateway", "seat_reservation")),
	}
}

func (g *SeatReservation) ReserveSeat(ctx context.Context, accountID int64, totalSeats int) error {
	reservation := &entity.SeatReservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: g.now().UTC(),
		},
		AccountID: accountID,
		SeatCount: totalSeats,
	}

	if err := g.repo.Create(ctx, reservation); err != nil {
		return err
	}

	g.log.Debug("Seats reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("seat_count", totalSeats),
	)
	return nil
}
