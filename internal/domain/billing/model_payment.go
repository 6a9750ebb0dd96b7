package billing

import "time"

// Payment is one row per completed checkout. The unique index on the session
// id is what keeps webhook redelivery from duplicating history.
type Payment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index:idx_payments_user_id" json:"userId"`
	StripeSessionID string    `gorm:"uniqueIndex:idx_payments_stripe_session_id" json:"stripeSessionId"`
	Plan            string    `json:"plan"`
	Amount          int64     `json:"amount"` // minor units
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
