package main

import (
	"context"
	"log"
	"time"

	"omniplex-backend/config"
	"omniplex-backend/database"
	routes "omniplex-backend/internal/app/http"
	"omniplex-backend/internal/app/http/middleware"
	"omniplex-backend/internal/core/reconciler"
	"omniplex-backend/internal/infra/firebase"
	"omniplex-backend/internal/session"
	"omniplex-backend/internal/store/localcache"
	"omniplex-backend/internal/store/remote"
	"omniplex-backend/internal/store/webhookjournal"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	fb, err := firebase.Init(context.Background())
	if err != nil {
		// Misconfigured credentials degrade to the free plan, same as absent.
		log.Println("❌ Firebase init failed, continuing without it:", err)
		fb = nil
	}

	var cache localcache.Cache
	if database.DB != nil {
		cache = localcache.NewGormCache(database.DB)
	} else {
		cache = localcache.NewMemoryCache()
	}

	var remoteStore remote.Store
	var authClient *fbauth.Client
	if fb != nil {
		remoteStore = remote.NewFirestoreStore(fb.Firestore)
		authClient = fb.Auth
	}

	state := session.NewStore()
	rec := reconciler.New(cache, remoteStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Profile-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Profile-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ProfileID())

	routes.RegisterRoutes(r, routes.Deps{
		State:         state,
		Reconciler:    rec,
		Cache:         cache,
		Remote:        remoteStore,
		Journal:       webhookjournal.New(database.DB),
		FirebaseAuth:  authClient,
		WebhookSecret: config.STRIPE_WEBHOOK_SECRET,
	})

	r.Run(":" + config.PORT)
}
