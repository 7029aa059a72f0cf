package entity

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment records one charge taken from an account.
type Payment struct {
	BaseSimple
	AccountID int64         `db:"account_id"`
	Amount    int           `db:"amount"`
	Status    PaymentStatus `db:"status"`
}
