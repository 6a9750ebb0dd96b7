package sessionapi

import (
	"net/http"

	"omniplex-backend/internal/core/reconciler"
	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/domain/users"
	"omniplex-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler exposes the sign-in / refresh lifecycle around the reconciler.
// Each operation publishes to session state at most once.
type Handler struct {
	reconciler *reconciler.Reconciler
	state      *session.Store
}

func NewHandler(rec *reconciler.Reconciler, state *session.Store) *Handler {
	return &Handler{reconciler: rec, state: state}
}

// StartSession is the sign-in event: reconcile cache + remote store once and
// publish the result. Repeat calls for a live session return the published
// value without re-reading anything.
func (h *Handler) StartSession(c *gin.Context) {
	details := detailsFromContext(c)
	if details.UID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	if h.state.Started(details.UID) {
		rec, _ := h.state.Subscription(details.UID)
		respond(c, details, rec)
		return
	}

	rec := h.reconciler.Resolve(c.Request.Context(), c.GetString("profile_id"), details.UID)
	h.state.SignIn(details, rec)
	respond(c, details, rec)
}

// EndSession is the sign-out event: clear the slice so nothing from this
// user leaks into the next sign-in.
func (h *Handler) EndSession(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}
	h.state.SignOut(uid)
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// GetSubscription returns the current effective record. A request before
// StartSession counts as the sign-in event.
func (h *Handler) GetSubscription(c *gin.Context) {
	details := detailsFromContext(c)
	if details.UID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	rec, ok := h.state.Subscription(details.UID)
	if !ok {
		rec = h.reconciler.Resolve(c.Request.Context(), c.GetString("profile_id"), details.UID)
		h.state.SignIn(details, rec)
	}
	c.JSON(http.StatusOK, gin.H{
		"subscription": rec,
		"isPro":        subscription.IsPro(rec),
	})
}

// RefreshSubscription bypasses the local cache and re-reads the remote
// store — the only way to observe a cancellation without a fresh sign-in.
func (h *Handler) RefreshSubscription(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	rec := h.reconciler.Refresh(c.Request.Context(), uid)
	h.state.SetSubscription(uid, rec)
	c.JSON(http.StatusOK, gin.H{
		"subscription": rec,
		"isPro":        subscription.IsPro(rec),
	})
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	details := detailsFromContext(c)
	if details.UID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	rec, ok := h.state.Subscription(details.UID)
	if !ok {
		rec = h.reconciler.Resolve(c.Request.Context(), c.GetString("profile_id"), details.UID)
		h.state.SignIn(details, rec)
	}
	c.JSON(http.StatusOK, gin.H{
		"userDetails":  details,
		"subscription": rec,
		"isPro":        subscription.IsPro(rec),
		"plan":         subscription.EffectivePlan(rec),
	})
}

func detailsFromContext(c *gin.Context) users.Details {
	return users.Details{
		UID:        c.GetString("uid"),
		Name:       c.GetString("name"),
		Email:      c.GetString("email"),
		ProfilePic: c.GetString("picture"),
	}
}

func respond(c *gin.Context, details users.Details, rec *subscription.Record) {
	c.JSON(http.StatusOK, gin.H{
		"userDetails":  details,
		"subscription": rec,
		"isPro":        subscription.IsPro(rec),
	})
}
