package routes

import (
	authapi "omniplex-backend/internal/api/auth"
	"omniplex-backend/internal/api/billing"
	plansapi "omniplex-backend/internal/api/plans"
	sessionapi "omniplex-backend/internal/api/session"
	stripewebhooks "omniplex-backend/internal/api/stripewebhook"
	"omniplex-backend/internal/api/usage"
	"omniplex-backend/internal/api/verification"
	"omniplex-backend/internal/app/http/middleware"
	"omniplex-backend/internal/core/reconciler"
	"omniplex-backend/internal/session"
	"omniplex-backend/internal/store/localcache"
	"omniplex-backend/internal/store/remote"
	"omniplex-backend/internal/store/webhookjournal"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Deps are the collaborators resolved once at startup. Remote and
// FirebaseAuth are nil when unconfigured; every consumer handles the absent
// case.
type Deps struct {
	State         *session.Store
	Reconciler    *reconciler.Reconciler
	Cache         localcache.Cache
	Remote        remote.Store
	Journal       *webhookjournal.Journal
	FirebaseAuth  *fbauth.Client
	WebhookSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	webhookHandler := stripewebhooks.NewHandler(d.Remote, d.Journal, d.WebhookSecret)
	verifyHandler := verification.NewHandler(d.Cache, d.Remote)
	sessionHandler := sessionapi.NewHandler(d.Reconciler, d.State)
	usageHandler := usage.NewHandler(d.Reconciler, d.State)

	// Webhook bodies are signature-checked raw; no sanitizer in front.
	r.POST("/api/stripe/webhook", webhookHandler.HandleWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/api/stripe/checkout", billing.CreateCheckoutSession)
	public.POST("/api/verify-subscription", verifyHandler.VerifySubscription)
	public.GET("/api/plans", plansapi.ListPlans)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.FirebaseAuth))
	auth.POST("/api/session/start", sessionHandler.StartSession)
	auth.DELETE("/api/session", sessionHandler.EndSession)
	auth.GET("/api/me", sessionHandler.GetCurrentUser)
	auth.GET("/api/subscription", sessionHandler.GetSubscription)
	auth.POST("/api/subscription/refresh", sessionHandler.RefreshSubscription)
	auth.GET("/api/usage", usageHandler.GetUsage)

	// Pro users
	pro := auth.Group("/")
	pro.Use(middleware.RequireProSubscription(d.Reconciler, d.State))
	pro.GET("/api/payments", billing.GetPaymentHistory)
}
