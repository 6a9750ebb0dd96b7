package verification

import (
	"log"
	"net/http"
	"time"

	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/store/localcache"
	"omniplex-backend/internal/store/remote"

	"github.com/gin-gonic/gin"
)

// Handler is the best-effort secondary activation path, hit right after the
// checkout redirect in case the webhook has not landed yet. Deliberately
// weaker than the webhook: it reports success without consulting the gateway.
type Handler struct {
	cache localcache.Cache
	store remote.Store // nil when the remote store is not configured
}

func NewHandler(cache localcache.Cache, store remote.Store) *Handler {
	return &Handler{cache: cache, store: store}
}

func (h *Handler) VerifySubscription(c *gin.Context) {
	var body struct {
		UserID    string `json:"userId"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == "" || body.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	log.Printf("✅ Manual verification for user %s, session %s", body.UserID, body.SessionID)

	now := time.Now()
	rec := subscription.Record{
		Status:           subscription.StatusActive,
		Plan:             subscription.PlanPro,
		StripeSessionID:  body.SessionID,
		StripeCustomerID: "manual_verification",
		StartDate:        now,
		UpdatedAt:        now,
	}

	// The optimistic cache write is what actually grants entitlement on this
	// path; everything after it is best-effort.
	if profileID := c.GetString("profile_id"); profileID != "" {
		entry := localcache.Entry{
			Status:      string(subscription.StatusActive),
			UserID:      body.UserID,
			ActivatedAt: now.Format(time.RFC3339),
			SessionID:   body.SessionID,
		}
		if err := localcache.StoreEntry(c.Request.Context(), h.cache, profileID, entry); err != nil {
			log.Println("⚠️ Failed to write local entitlement cache:", err)
		}
	}

	if h.store != nil {
		if err := h.store.UpsertSubscription(c.Request.Context(), body.UserID, rec); err != nil {
			log.Println("⚠️ Remote store write failed during manual verification:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"subscription": rec,
		"message":      "Pro subscription activated",
	})
}
