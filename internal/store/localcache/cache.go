package localcache

import "context"

// Keys written by the checkout success flow. One client profile maps to one
// browser's local storage; there is no schema versioning on purpose.
const (
	KeyProStatus    = "pro_status"
	KeyProUser      = "pro_user"
	KeyProActivated = "pro_activated"
	KeySessionID    = "session_id"
)

// Cache is the profile-scoped key/value store used as the optimistic
// entitlement fallback. Entries never expire on their own; a successful
// remote read supersedes them at reconcile time.
type Cache interface {
	// Get returns "" when the key is absent.
	Get(ctx context.Context, profileID, key string) (string, error)
	Set(ctx context.Context, profileID, key, value string) error
	Delete(ctx context.Context, profileID string, keys ...string) error
}

// Entry is the decoded pro-entitlement view of one profile's keys.
//
// UserID must be compared against the signed-in uid before the entry is
// trusted: a stale entry from a previous user must never leak entitlement.
type Entry struct {
	Status      string
	UserID      string
	ActivatedAt string
	SessionID   string
}

func LoadEntry(ctx context.Context, c Cache, profileID string) (Entry, error) {
	var e Entry
	var err error
	if e.Status, err = c.Get(ctx, profileID, KeyProStatus); err != nil {
		return Entry{}, err
	}
	if e.UserID, err = c.Get(ctx, profileID, KeyProUser); err != nil {
		return Entry{}, err
	}
	if e.ActivatedAt, err = c.Get(ctx, profileID, KeyProActivated); err != nil {
		return Entry{}, err
	}
	if e.SessionID, err = c.Get(ctx, profileID, KeySessionID); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func StoreEntry(ctx context.Context, c Cache, profileID string, e Entry) error {
	pairs := map[string]string{
		KeyProStatus:    e.Status,
		KeyProUser:      e.UserID,
		KeyProActivated: e.ActivatedAt,
		KeySessionID:    e.SessionID,
	}
	for k, v := range pairs {
		if err := c.Set(ctx, profileID, k, v); err != nil {
			return err
		}
	}
	return nil
}
