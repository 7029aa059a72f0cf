package gateway

import (
	"context"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway records each charge in the payment ledger.
type PaymentGateway struct {
	repo repository.PaymentRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewPaymentGateway(repo repository.PaymentRepository, log *zap.Logger) *PaymentGateway {
	return &PaymentGateway{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("gateway", "payment")),
	}
}

func (g *PaymentGateway) MakePayment(ctx context.Context, accountID int64, totalAmount int) error {
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: g.now().UTC(),
		},
		AccountID: accountID,
		Amount:    totalAmount,
		Status:    entity.PaymentStatusCompleted,
	}

	if err := g.repo.Create(ctx, payment); err != nil {
		return err
	}

	g.log.Debug("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("amount", totalAmount),
	)
	return nil
}
