package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is embedded by append-only ledger rows.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
