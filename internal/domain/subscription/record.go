package subscription

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
	StatusNone     Status = "none"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Record mirrors the `subscription` map stored on the users/{uid} document.
// The Stripe ids are advisory only; nothing keys off them.
type Record struct {
	Status           Status    `json:"status" firestore:"status"`
	Plan             Plan      `json:"plan" firestore:"plan"`
	StripeSessionID  string    `json:"stripeSessionId" firestore:"stripeSessionId"`
	StripeCustomerID string    `json:"stripeCustomerId" firestore:"stripeCustomerId"`
	StartDate        time.Time `json:"startDate" firestore:"startDate"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// IsPro is the single entitlement rule: only an active pro record grants
// premium access. A nil record means the free plan.
func IsPro(r *Record) bool {
	return r != nil && r.Status == StatusActive && r.Plan == PlanPro
}

func EffectivePlan(r *Record) Plan {
	if IsPro(r) {
		return PlanPro
	}
	return PlanFree
}
