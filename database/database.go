package database

import (
	"fmt"
	"log"

	"omniplex-backend/config"
	"omniplex-backend/internal/domain/billing"
	"omniplex-backend/internal/store/localcache"
	"omniplex-backend/internal/store/webhookjournal"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is nil when DB_URL is unset. Callers treat the database as an optional
// collaborator: the entitlement cache falls back to memory, the webhook
// journal and payment history are skipped.
var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("❌ Failed to connect to database, continuing without it:", err)
		return
	}

	DB = db

	if err := DB.AutoMigrate(
		&localcache.Row{},
		&webhookjournal.EventRecord{},
		&billing.Payment{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
