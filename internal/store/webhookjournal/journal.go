package webhookjournal

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRecord is one verified webhook event. The journal is advisory:
// idempotency comes from the full-record upsert, this only makes gateway
// redeliveries observable.
type EventRecord struct {
	ID         uint   `gorm:"primaryKey"`
	EventID    string `gorm:"uniqueIndex:idx_stripe_events_event_id"`
	Type       string
	ReceivedAt time.Time
}

func (EventRecord) TableName() string { return "stripe_events" }

// Journal writes beneath a nil-checked gorm handle so the webhook path never
// depends on the database being up.
type Journal struct {
	db *gorm.DB
}

// New accepts a nil db; Record then becomes a no-op.
func New(db *gorm.DB) *Journal {
	return &Journal{db: db}
}

// Record stores the event id best-effort and reports whether this delivery
// was already seen.
func (j *Journal) Record(eventID, eventType string) (redelivered bool) {
	if j.db == nil {
		return false
	}
	rec := EventRecord{EventID: eventID, Type: eventType, ReceivedAt: time.Now()}
	res := j.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&rec)
	if res.Error != nil {
		log.Println("⚠️ Failed to journal webhook event:", res.Error)
		return false
	}
	return res.RowsAffected == 0
}
