package stripewebhooks

import (
	"context"
	"fmt"
	"log"

	"omniplex-backend/database"
	"omniplex-backend/internal/domain/billing"
	"omniplex-backend/internal/domain/subscription"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm/clause"
)

// handleCheckoutSessionCompleted upserts the full subscription record for the
// session's user. The record is written whole every time, so redelivery and
// same-user races converge to the same end state (last write wins).
func (h *Handler) handleCheckoutSessionCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	userID := session.ClientReferenceID
	if userID == "" && session.Metadata != nil {
		userID = session.Metadata["userId"]
	}
	planKey := ""
	if session.Metadata != nil {
		planKey = session.Metadata["plan"]
	}

	log.Printf("Processing successful payment: user=%s plan=%s session=%s", userID, planKey, session.ID)

	if userID == "" || userID == "anonymous" {
		// Handled but ineffective: acknowledge so the gateway stops retrying.
		log.Printf("⚠️ No valid user ID on checkout session %s, acknowledging without write", session.ID)
		return nil
	}

	recordPayment(session, userID, planKey)

	if h.store == nil {
		log.Println("⚠️ Remote store not configured, skipping subscription write")
		return nil
	}

	customerID := ""
	if session.Customer != nil {
		customerID = session.Customer.ID
	}

	rec := subscription.Record{
		Status:           subscription.StatusActive,
		Plan:             subscription.Plan(planKey),
		StripeSessionID:  session.ID,
		StripeCustomerID: customerID,
		// Timestamps left zero: the store stamps them with server time.
	}
	if err := h.store.UpsertSubscription(ctx, userID, rec); err != nil {
		return fmt.Errorf("failed to store subscription for user %s: %w", userID, err)
	}

	log.Printf("✅ Subscription activated for user %s", userID)
	return nil
}

// recordPayment adds the checkout to the payment history, best-effort. The
// unique session-id index absorbs redelivery.
func recordPayment(session *stripe.CheckoutSession, userID, planKey string) {
	if database.DB == nil {
		return
	}
	p := billing.Payment{
		UserID:          userID,
		StripeSessionID: session.ID,
		Plan:            planKey,
		Amount:          session.AmountTotal,
		Currency:        string(session.Currency),
		Status:          "paid",
	}
	if err := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stripe_session_id"}},
			DoNothing: true,
		}).
		Create(&p).Error; err != nil {
		log.Println("⚠️ Failed to record payment:", err)
	}
}
