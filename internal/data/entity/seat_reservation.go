package entity

type SeatReservation struct {
	BaseSimple
	AccountID int64 `db:"account_id"`
	SeatCount int   `db:"seat_count"`
}
