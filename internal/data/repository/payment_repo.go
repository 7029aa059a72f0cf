package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO account_payments (id, account_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("account_id", payment.AccountID),
			zap.Int("amount", payment.Amount),
		)
		return fmt.Errorf("create payment for account %d: %w", payment.AccountID, err)
	}

	return nil
}

func (r *paymentRepository) FindByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, account_id, amount, status, created_at
		FROM account_payments
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments by account ID",
			zap.Error(err),
			zap.Int64("account_id", accountID),
		)
		return nil, fmt.Errorf("find payments by account ID %d: %w", accountID, err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.AccountID,
			&payment.Amount,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}
