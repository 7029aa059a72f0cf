package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingValue     = errors.New("missing value")
	ErrInvalidTicket    = errors.New("invalid ticket request")
	ErrMissingCategory  = fmt.Errorf("%w: type of ticket must not be null", ErrMissingValue)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown ticket type", ErrInvalidTicket)
	ErrNegativeQuantity = fmt.Errorf("%w: number of tickets must not be a negative number", ErrInvalidTicket)
)

type TicketCategory string

const (
	TicketCategoryAdult  TicketCategory = "ADULT"
	TicketCategoryChild  TicketCategory = "CHILD"
	TicketCategoryInfant TicketCategory = "INFANT"
)

// TicketCategories lists every category in display order.
var TicketCategories = []TicketCategory{
	TicketCategoryAdult,
	TicketCategoryChild,
	TicketCategoryInfant,
}

func (c TicketCategory) Valid() bool {
	switch c {
	case TicketCategoryAdult, TicketCategoryChild, TicketCategoryInfant:
		return true
	}
	return false
}

// ParseTicketCategory accepts any casing of a known category name.
func ParseTicketCategory(s string) (TicketCategory, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingCategory
	}

	c := TicketCategory(strings.ToUpper(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// TicketRequest is an immutable request for a number of tickets of one category.
type TicketRequest struct {
	category TicketCategory
	quantity int
}

func NewTicketRequest(category TicketCategory, quantity int) (*TicketRequest, error) {
	if category == "" {
		return nil, ErrMissingCategory
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, string(category))
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &TicketRequest{
		category: category,
		quantity: quantity,
	}, nil
}

func (r TicketRequest) Category() TicketCategory {
	return r.category
}

func (r TicketRequest) Quantity() int {
	return r.quantity
}

func (r TicketRequest) String() string {
	return fmt.Sprintf("%s:%d", r.category, r.quantity)
}
