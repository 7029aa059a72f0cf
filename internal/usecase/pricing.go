package usecase

import "ticket-booking/internal/data/entity"

// MaxTicketsPerPurchase caps the seats allocated by a single purchase.
const MaxTicketsPerPurchase = 25

// TicketRule is the fixed behaviour attached to a ticket category.
type TicketRule struct {
	Category      entity.TicketCategory
	Price         int
	RequiresSeat  bool
	RequiresAdult bool
}

var ticketRules = map[entity.TicketCategory]TicketRule{
	entity.TicketCategoryAdult: {
		Category:     entity.TicketCategoryAdult,
		Price:        25,
		RequiresSeat: true,
	},
	entity.TicketCategoryChild: {
		Category:      entity.TicketCategoryChild,
		Price:         15,
		RequiresSeat:  true,
		RequiresAdult: true,
	},
	// infants sit on an adult's lap
	entity.TicketCategoryInfant: {
		Category:      entity.TicketCategoryInfant,
		Price:         0,
		RequiresAdult: true,
	},
}

// TicketRules returns the rule table in category display order.
func TicketRules() []TicketRule {
	rules := make([]TicketRule, 0, len(entity.TicketCategories))
	for _, c := range entity.TicketCategories {
		rules = append(rules, ticketRules[c])
	}
	return rules
}

func ruleFor(r *entity.TicketRequest) (TicketRule, bool) {
	rule, ok := ticketRules[r.Category()]
	return rule, ok
}
