package stripe

import (
	"strings"

	"omniplex-backend/internal/domain/subscription"
)

// NormalizeSubscriptionStatus maps a raw Stripe subscription status onto the
// record enum. Used when logging lifecycle events; the webhook never applies
// these statuses to the store.
func NormalizeSubscriptionStatus(s string) subscription.Status {
	switch strings.TrimSpace(s) {
	case "":
		return subscription.StatusNone
	case "active", "trialing":
		return subscription.StatusActive
	case "past_due", "unpaid":
		return subscription.StatusPastDue
	case "canceled", "incomplete_expired":
		return subscription.StatusCanceled
	default:
		return subscription.Status(strings.TrimSpace(s))
	}
}
