package usecase

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"

	"go.uber.org/zap"
)

type AccountService interface {
	GetPurchaseHistory(ctx context.Context, accountID int64, req *request.PaginatedRequest) (*response.AccountHistoryResponse, error)
}

type accountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccountService(repo *repository.Repository, log *zap.Logger) AccountService {
	return &accountService{
		repo: repo,
		log:  log.With(zap.String("service", "account")),
	}
}

func (s *accountService) GetPurchaseHistory(ctx context.Context, accountID int64, req *request.PaginatedRequest) (*response.AccountHistoryResponse, error) {
	if accountID < 1 {
		return nil, invalidPurchase("accountId must be > 0")
	}

	limit := req.Limit()
	offset := req.Offset()

	payments, err := s.repo.Payment.FindByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get account payments: %w", err)
	}

	reservations, err := s.repo.SeatReservation.FindByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get account seat reservations: %w", err)
	}

	totalSeats, err := s.repo.SeatReservation.CountSeatsByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("count account seats: %w", err)
	}

	resp := &response.AccountHistoryResponse{
		AccountID:          accountID,
		TotalReservedSeats: totalSeats,
		Page:               req.Page,
		PerPage:            limit,
		Payments:           make([]response.PaymentResponse, len(payments)),
		Reservations:       make([]response.SeatReservationResponse, len(reservations)),
	}
	for i, p := range payments {
		resp.Payments[i] = response.PaymentToResponse(p)
	}
	for i, sr := range reservations {
		resp.Reservations[i] = response.SeatReservationToResponse(sr)
	}

	s.log.Info("Account history retrieved",
		zap.Int64("account_id", accountID),
		zap.Int("payments", len(payments)),
		zap.Int("reservations", len(reservations)),
	)

	return resp, nil
}
