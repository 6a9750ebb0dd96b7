package session

import (
	"sync"

	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/domain/users"
)

// Update is delivered to subscribers whenever a user's slice changes.
type Update struct {
	UID          string
	SignedIn     bool
	Details      users.Details
	Subscription *subscription.Record
}

type slice struct {
	details users.Details
	record  *subscription.Record
}

// Store holds the process-wide auth/subscription state, one slice per
// signed-in user. Observers subscribe for updates instead of the state being
// dispatched into a shared global.
type Store struct {
	mu    sync.RWMutex
	users map[string]*slice
	subs  map[chan Update]struct{}
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*slice),
		subs:  make(map[chan Update]struct{}),
	}
}

// Subscribe returns a buffered channel of updates. Slow subscribers miss
// updates rather than block publishers.
func (s *Store) Subscribe() chan Update {
	ch := make(chan Update, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Store) Unsubscribe(ch chan Update) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
	close(ch)
}

// Started reports whether a sign-in has already been published for uid.
func (s *Store) Started(uid string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[uid]
	return ok
}

// SignIn publishes the sign-in slice: user details plus the effective record
// the reconciler produced. Called exactly once per sign-in event.
func (s *Store) SignIn(d users.Details, rec *subscription.Record) {
	s.mu.Lock()
	s.users[d.UID] = &slice{details: d, record: rec}
	s.mu.Unlock()
	s.publish(Update{UID: d.UID, SignedIn: true, Details: d, Subscription: rec})
}

// SetSubscription replaces the effective record for a live session and
// publishes it. Used by the explicit refresh path.
func (s *Store) SetSubscription(uid string, rec *subscription.Record) {
	s.mu.Lock()
	sl, ok := s.users[uid]
	if !ok {
		sl = &slice{details: users.Details{UID: uid}}
		s.users[uid] = sl
	}
	sl.record = rec
	d := sl.details
	s.mu.Unlock()
	s.publish(Update{UID: uid, SignedIn: true, Details: d, Subscription: rec})
}

// SignOut clears the slice and tells observers the user is gone.
func (s *Store) SignOut(uid string) {
	s.mu.Lock()
	delete(s.users, uid)
	s.mu.Unlock()
	s.publish(Update{UID: uid, SignedIn: false})
}

func (s *Store) Subscription(uid string) (*subscription.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.users[uid]
	if !ok {
		return nil, false
	}
	return sl.record, true
}

func (s *Store) Details(uid string) (users.Details, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.users[uid]
	if !ok {
		return users.Details{}, false
	}
	return sl.details, true
}

func (s *Store) publish(u Update) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- u:
		default:
		}
	}
}
