package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type SeatReservationRepository interface {
	Create(ctx context.Context, reservation *entity.SeatReservation) error
	FindByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*entity.SeatReservation, error)

	// Business queries
	CountSeatsByAccountID(ctx context.Context, accountID int64) (int64, error)
}

type seatReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatReservationRepository(db database.PgxIface, log *zap.Logger) SeatReservationRepository {
	return &seatReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_reservation")),
	}
}

func (r *seatReservationRepository) Create(ctx context.Context, reservation *entity.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (id, account_id, seat_count, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.AccountID,
		reservation.SeatCount,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat reservation",
			zap.Error(err),
			zap.Int64("account_id", reservation.AccountID),
			zap.Int("seat_count", reservation.SeatCount),
		)
		return fmt.Errorf("create seat reservation for account %d: %w", reservation.AccountID, err)
	}

	return nil
}

func (r *seatReservationRepository) FindByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*entity.SeatReservation, error) {
	query := `
		SELECT id, account_id, seat_count, created_at
		FROM seat_reservations
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find seat reservations by account ID",
			zap.Error(err),
			zap.Int64("account_id", accountID),
		)
		return nil, fmt.Errorf("find seat reservations by account ID %d: %w", accountID, err)
	}
	defer rows.Close()

	var reservations []*entity.SeatReservation
	for rows.Next() {
		var sr entity.SeatReservation
		err := rows.Scan(
			&sr.ID,
			&sr.AccountID,
			&sr.SeatCount,
			&sr.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan seat reservation row: %w", err)
		}
		reservations = append(reservations, &sr)
	}

	return reservations, rows.Err()
}

func (r *seatReservationRepository) CountSeatsByAccountID(ctx context.Context, accountID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(seat_count), 0) FROM seat_reservations WHERE account_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, accountID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reserved seats by account ID",
			zap.Error(err),
			zap.Int64("account_id", accountID),
		)
		return 0, fmt.Errorf("count reserved seats by account ID %d: %w", accountID, err)
	}

	return count, nil
}
