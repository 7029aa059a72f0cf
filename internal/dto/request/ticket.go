package request

import (
	"ticket-booking/internal/data/entity"
)

type TicketItem struct {
	Type     string `json:"type" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// PurchaseTicketsRequest leaves account_id and tickets unchecked here:
// absent values and business rules are reported by the ticket service.
type PurchaseTicketsRequest struct {
	AccountID *int64        `json:"account_id"`
	Tickets   []*TicketItem `json:"tickets" validate:"dive"`
}

// TicketRequests converts the body into domain values, keeping null
// entries (and a missing list) as nil so the service can reject them.
func (r *PurchaseTicketsRequest) TicketRequests() ([]*entity.TicketRequest, error) {
	if r.Tickets == nil {
		return nil, nil
	}

	requests := make([]*entity.TicketRequest, len(r.Tickets))
	for i, item := range r.Tickets {
		if item == nil {
			continue
		}

		category, err := entity.ParseTicketCategory(item.Type)
		if err != nil {
			return nil, err
		}

		ticket, err := entity.NewTicketRequest(category, item.Quantity)
		if err != nil {
			return nil, err
		}
		requests[i] = ticket
	}

	return requests, nil
}
