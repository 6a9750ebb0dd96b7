package stripewebhooks

import (
	"log"

	stripestatus "omniplex-backend/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

// Acknowledged gap: cancellations never revoke entitlement automatically.
// The record stays active in the store until a product decision says
// otherwise.
func (h *Handler) handleSubscriptionDeleted(sub *stripe.Subscription) {
	log.Printf("Subscription %s cancelled for customer %s (status %s)",
		sub.ID, customerID(sub), stripestatus.NormalizeSubscriptionStatus(string(sub.Status)))
}
