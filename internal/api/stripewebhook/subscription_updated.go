package stripewebhooks

import (
	"log"

	stripestatus "omniplex-backend/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

// Acknowledged gap: subscription updates are logged but never applied to the
// store, so a downgrade or status change only becomes visible through an
// explicit refresh against the remote store. Flagged for product decision —
// do not quietly start applying these.
func (h *Handler) handleSubscriptionUpdated(sub *stripe.Subscription) {
	log.Printf("Subscription %s updated for customer %s (status %s)",
		sub.ID, customerID(sub), stripestatus.NormalizeSubscriptionStatus(string(sub.Status)))
}

func customerID(sub *stripe.Subscription) string {
	if sub.Customer == nil {
		return ""
	}
	return sub.Customer.ID
}
