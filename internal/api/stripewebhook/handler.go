package stripewebhooks

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"omniplex-backend/internal/store/remote"
	"omniplex-backend/internal/store/webhookjournal"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// Handler ingests gateway lifecycle events. Every event is independently
// signed and must pass signature verification before any action — this is
// the only hard authentication gate in the reconciliation flow.
type Handler struct {
	store   remote.Store // nil when the remote store is not configured
	journal *webhookjournal.Journal
	secret  string
}

func NewHandler(store remote.Store, journal *webhookjournal.Journal, secret string) *Handler {
	return &Handler{store: store, journal: journal, secret: secret}
}

func (h *Handler) HandleWebhook(c *gin.Context) {
	if h.secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if h.journal.Record(event.ID, string(event.Type)) {
		// Redelivery is expected from the gateway; the upsert below is
		// idempotent so we process it again rather than short-circuit.
		log.Printf("Redelivery of event %s (%s)", event.ID, event.Type)
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := h.handleCheckoutSessionCompleted(c.Request.Context(), &session); err != nil {
			log.Println("❌ Webhook error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook handler failed"})
			return
		}

	case "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		h.handleSubscriptionUpdated(&sub)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		h.handleSubscriptionDeleted(&sub)

	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse invoice"})
			return
		}
		h.handleInvoicePaid(&invoice)

	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse invoice"})
			return
		}
		h.handleInvoiceFailed(&invoice)

	default:
		// Acknowledge unknown events so the gateway does not retry
		log.Printf("Unhandled event type: %s", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
