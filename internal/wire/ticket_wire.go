package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	accountHandler *adaptor.AccountHandler,
) {
	r.Route("/api/tickets", func(r chi.Router) {
		// GET /api/tickets/prices - price table and purchase cap
		r.Get("/prices", ticketHandler.GetPrices)

		// POST /api/tickets/purchase - account_id carried in the body
		r.Post("/purchase", ticketHandler.PurchaseTickets)
	})

	r.Route("/api/accounts/{accountID}", func(r chi.Router) {
		r.Post("/tickets", ticketHandler.PurchaseAccountTickets)
		r.Get("/purchases", accountHandler.GetPurchaseHistory)
	})
}
