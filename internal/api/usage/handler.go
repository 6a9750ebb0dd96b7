package usage

import (
	"net/http"

	"omniplex-backend/internal/core/reconciler"
	"omniplex-backend/internal/domain/plans"
	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler serves the usage widget: which plan applies and what its chat
// limit is.
type Handler struct {
	reconciler *reconciler.Reconciler
	state      *session.Store
}

func NewHandler(rec *reconciler.Reconciler, state *session.Store) *Handler {
	return &Handler{reconciler: rec, state: state}
}

func (h *Handler) GetUsage(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	rec, ok := h.state.Subscription(uid)
	if !ok {
		rec = h.reconciler.Resolve(c.Request.Context(), c.GetString("profile_id"), uid)
	}

	if subscription.IsPro(rec) {
		c.JSON(http.StatusOK, gin.H{
			"plan":      subscription.PlanPro,
			"unlimited": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":            subscription.PlanFree,
		"unlimited":       false,
		"chatLimitPerDay": plans.FreeChatLimitPerDay,
	})
}
