package middleware

import (
	"net/http"

	"omniplex-backend/internal/core/reconciler"
	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireProSubscription gates routes on the effective subscription. The
// published session value is preferred; before the sign-in event it resolves
// on the spot without publishing.
func RequireProSubscription(rec *reconciler.Reconciler, state *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		record, ok := state.Subscription(uid)
		if !ok {
			record = rec.Resolve(c.Request.Context(), c.GetString("profile_id"), uid)
		}

		if !subscription.IsPro(record) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Pro subscription required",
			})
			return
		}

		c.Next()
	}
}
