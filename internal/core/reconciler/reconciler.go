package reconciler

import (
	"context"
	"errors"
	"log"
	"time"

	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/store/localcache"
	"omniplex-backend/internal/store/remote"
)

// Reconciler decides a signed-in user's effective subscription by merging
// the local entitlement cache with the remote store. It never mutates either
// store; publishing the result to session state is the caller's job.
type Reconciler struct {
	cache  localcache.Cache
	remote remote.Store // nil when the remote store is not configured
}

func New(cache localcache.Cache, rem remote.Store) *Reconciler {
	return &Reconciler{cache: cache, remote: rem}
}

// Resolve implements the sign-in precedence: a trusted cache entry wins and
// skips the remote read entirely (tolerates remote downtime, can mask a
// cancellation until Refresh); otherwise the remote document decides; on any
// failure the answer is nil, the free plan.
func (r *Reconciler) Resolve(ctx context.Context, profileID, uid string) *subscription.Record {
	if rec := r.fromCache(ctx, profileID, uid); rec != nil {
		log.Printf("✅ Found pro status in local cache for user %s", uid)
		return rec
	}
	return r.fromRemote(ctx, uid)
}

// Refresh bypasses the local cache unconditionally and re-reads the remote
// store. This is the only way to observe a cancellation without a fresh
// sign-in.
func (r *Reconciler) Refresh(ctx context.Context, uid string) *subscription.Record {
	return r.fromRemote(ctx, uid)
}

func (r *Reconciler) fromCache(ctx context.Context, profileID, uid string) *subscription.Record {
	if profileID == "" || uid == "" {
		return nil
	}
	entry, err := localcache.LoadEntry(ctx, r.cache, profileID)
	if err != nil {
		log.Println("⚠️ Error reading local entitlement cache:", err)
		return nil
	}
	// A cached flag belonging to a different user never grants entitlement.
	if entry.Status != string(subscription.StatusActive) || entry.UserID != uid {
		return nil
	}

	sessionID := entry.SessionID
	if sessionID == "" {
		sessionID = "local_storage"
	}
	started := time.Now()
	if t, err := time.Parse(time.RFC3339, entry.ActivatedAt); err == nil {
		started = t
	}
	return &subscription.Record{
		Status:           subscription.StatusActive,
		Plan:             subscription.PlanPro,
		StripeSessionID:  sessionID,
		StripeCustomerID: "local_verification",
		StartDate:        started,
		UpdatedAt:        time.Now(),
	}
}

func (r *Reconciler) fromRemote(ctx context.Context, uid string) *subscription.Record {
	if r.remote == nil {
		log.Println("Remote store not available, using null subscription")
		return nil
	}
	rec, err := r.remote.GetSubscription(ctx, uid)
	if errors.Is(err, remote.ErrNotFound) {
		// No document is a legitimate free-plan state.
		return nil
	}
	if err != nil {
		log.Printf("⚠️ Remote store read failed for user %s, using null subscription: %v", uid, err)
		return nil
	}
	return rec
}
