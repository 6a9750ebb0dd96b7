package stripewebhooks

import (
	"log"

	"github.com/stripe/stripe-go/v75"
)

// Invoice lifecycle events are logged only.

func (h *Handler) handleInvoicePaid(invoice *stripe.Invoice) {
	log.Printf("✅ Payment succeeded for invoice %s", invoice.ID)
}

func (h *Handler) handleInvoiceFailed(invoice *stripe.Invoice) {
	log.Printf("❌ Payment failed for invoice %s", invoice.ID)
}
