package remote

import (
	"context"
	"errors"

	"omniplex-backend/internal/domain/subscription"
)

// ErrNotFound means the user has no subscription document. That is a
// legitimate free-plan state, not a failure.
var ErrNotFound = errors.New("subscription document not found")

// Store is the authoritative subscription document store. Implementations
// hold one document per user with a nested subscription record.
//
// Callers receive a nil Store when the collaborator is not configured and
// must fail open to the free plan.
type Store interface {
	// GetSubscription reads the record for uid, ErrNotFound when absent.
	GetSubscription(ctx context.Context, uid string) (*subscription.Record, error)
	// UpsertSubscription writes the full record for uid. Writing the whole
	// record every time is what makes webhook redelivery idempotent.
	UpsertSubscription(ctx context.Context, uid string, rec subscription.Record) error
}
