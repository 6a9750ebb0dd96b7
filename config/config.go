package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	APP_URL     string
	CORS_ORIGIN string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	FIREBASE_PROJECT_ID            string
	FIREBASE_SERVICE_ACCOUNT       string
	GOOGLE_APPLICATION_CREDENTIALS string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

// LoadEnv populates the package vars. A missing key never aborts startup:
// the collaborator that needs it is resolved as absent and its feature
// degrades (checkout disabled, free plan, in-memory cache).
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = getEnv("DB_URL", "")
	JWT_SECRET = getEnv("JWT_SECRET", "")
	APP_URL = getEnv("APP_URL", "http://localhost:3000")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	FIREBASE_PROJECT_ID = getEnv("FIREBASE_PROJECT_ID", "")
	FIREBASE_SERVICE_ACCOUNT = getEnv("FIREBASE_SERVICE_ACCOUNT", "")
	GOOGLE_APPLICATION_CREDENTIALS = getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	if STRIPE_SECRET_KEY == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY not set — checkout disabled")
	}
	if DB_URL == "" {
		log.Println("⚠️ DB_URL not set — using in-memory entitlement cache, no event journal")
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
