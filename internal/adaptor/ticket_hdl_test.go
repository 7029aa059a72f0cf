package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticket-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"
)

type recordingPayment struct {
	amounts []int
	err     error
}

func (p *recordingPayment) MakePayment(_ context.Context, _ int64, totalAmount int) error {
	p.amounts = append(p.amounts, totalAmount)
	return p.err
}

type recordingReservation struct {
	seats []int
}

func (r *recordingReservation) ReserveSeat(_ context.Context, _ int64, totalSeats int) error {
	r.seats = append(r.seats, totalSeats)
	return nil
}

func newTicketRouter(t *testing.T, payment *recordingPayment, reservation *recordingReservation) http.Handler {
	t.Helper()

	log := zaptest.NewLogger(t)
	h := NewTicketHandler(usecase.NewTicketService(payment, reservation, log), log)

	r := chi.NewRouter()
	r.Get("/api/tickets/prices", h.GetPrices)
	r.Post("/api/tickets/purchase", h.PurchaseTickets)
	r.Post("/api/accounts/{accountID}/tickets", h.PurchaseAccountTickets)
	return r
}

func TestTicketHandler_PurchaseTickets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		body           string
		paymentErr     error
		expectedStatus int
		expectedSubstr string
		expectCharge   bool
	}{
		{
			name:           "success",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"INFANT","quantity":1},{"type":"CHILD","quantity":2},{"type":"ADULT","quantity":4}]}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"total_amount":130`,
			expectCharge:   true,
		},
		{
			name:           "success with account in path",
			path:           "/api/accounts/12/tickets",
			body:           `{"tickets":[{"type":"adult","quantity":1},{"type":"child","quantity":1}]}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"account_id":12`,
			expectCharge:   true,
		},
		{
			name:           "invalid json",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "Invalid request body",
		},
		{
			name:           "bad account in path",
			path:           "/api/accounts/abc/tickets",
			body:           `{"tickets":[{"type":"ADULT","quantity":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "Invalid account ID",
		},
		{
			name:           "missing account",
			path:           "/api/tickets/purchase",
			body:           `{"tickets":[{"type":"ADULT","quantity":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "accountId must not be null",
		},
		{
			name:           "missing tickets",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "ticket requests must not be null",
		},
		{
			name:           "zero account",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":0,"tickets":[{"type":"ADULT","quantity":1}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "accountId must be",
		},
		{
			name:           "empty tickets",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "ticket requests must be specified",
		},
		{
			name:           "null ticket",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[null]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "ticket requests must all be non-null",
		},
		{
			name:           "children only",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"CHILD","quantity":2}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "without adult tickets",
		},
		{
			name:           "over the cap",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"ADULT","quantity":26}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "a maximum of 25 tickets",
		},
		{
			name:           "quantities that would wrap the seat total",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"ADULT","quantity":9223372036854775807},{"type":"ADULT","quantity":2}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedSubstr: "a maximum of 25 tickets",
		},
		{
			name:           "body validation runs before the account check",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":-1,"tickets":[{"type":"ADULT","quantity":-1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "Validation failed",
		},
		{
			name:           "negative quantity",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"ADULT","quantity":-1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "tickets[0].quantity",
		},
		{
			name:           "missing type",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"quantity":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "tickets[0].type",
		},
		{
			name:           "unknown type",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"SENIOR","quantity":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "unknown ticket type",
		},
		{
			name:           "payment failure",
			path:           "/api/tickets/purchase",
			body:           `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1}]}`,
			paymentErr:     errors.New("gateway down"),
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: "Internal server error",
			expectCharge:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payment := &recordingPayment{err: tt.paymentErr}
			reservation := &recordingReservation{}
			router := newTicketRouter(t, payment, reservation)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected body to contain %q, got %s", tt.expectedSubstr, rec.Body.String())
			}
			if charged := len(payment.amounts) > 0; charged != tt.expectCharge {
				t.Fatalf("expected charged=%v, got %v", tt.expectCharge, payment.amounts)
			}
		})
	}
}

func TestTicketHandler_PurchaseTickets_Summary(t *testing.T) {
	t.Parallel()

	payment := &recordingPayment{}
	reservation := &recordingReservation{}
	router := newTicketRouter(t, payment, reservation)

	body := `{"account_id":4,"tickets":[{"type":"ADULT","quantity":2},{"type":"CHILD","quantity":2},{"type":"INFANT","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			AccountID   int64 `json:"account_id"`
			TotalAmount int   `json:"total_amount"`
			TotalSeats  int   `json:"total_seats"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Status || resp.Data.AccountID != 4 || resp.Data.TotalAmount != 80 || resp.Data.TotalSeats != 4 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(payment.amounts) != 1 || payment.amounts[0] != 80 {
		t.Fatalf("expected a single charge of 80, got %v", payment.amounts)
	}
	if len(reservation.seats) != 1 || reservation.seats[0] != 4 {
		t.Fatalf("expected 4 seats reserved, got %v", reservation.seats)
	}
}

func TestTicketHandler_GetPrices(t *testing.T) {
	t.Parallel()

	router := newTicketRouter(t, &recordingPayment{}, &recordingReservation{})

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/prices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	for _, want := range []string{
		`"max_tickets_per_purchase":25`,
		`{"type":"ADULT","price":25,"requires_seat":true,"requires_adult":false}`,
		`{"type":"CHILD","price":15,"requires_seat":true,"requires_adult":true}`,
		`{"type":"INFANT","price":0,"requires_seat":false,"requires_adult":true}`,
	} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("expected body to contain %s, got %s", want, rec.Body.String())
		}
	}
}
