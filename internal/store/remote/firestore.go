package remote

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"omniplex-backend/internal/domain/subscription"
)

const usersCollection = "users"

// FirestoreStore keeps each user's subscription on users/{uid} under the
// "subscription" field, matching what the webhook and the clients expect.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// userDoc is the slice of the user document this store cares about.
type userDoc struct {
	Subscription *subscription.Record `firestore:"subscription"`
}

func (s *FirestoreStore) GetSubscription(ctx context.Context, uid string) (*subscription.Record, error) {
	snap, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user document %s: %w", uid, err)
	}

	// The record is adopted verbatim; an unknown status or plan simply fails
	// the entitlement check downstream.
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode user document %s: %w", uid, err)
	}
	if doc.Subscription == nil {
		return nil, ErrNotFound
	}
	return doc.Subscription, nil
}

func (s *FirestoreStore) UpsertSubscription(ctx context.Context, uid string, rec subscription.Record) error {
	data := map[string]interface{}{
		"status":           rec.Status,
		"plan":             rec.Plan,
		"stripeSessionId":  rec.StripeSessionID,
		"stripeCustomerId": rec.StripeCustomerID,
		"startDate":        rec.StartDate,
		"updatedAt":        rec.UpdatedAt,
	}
	// Zero timestamps mean "authoritative write": let the server clock stamp them.
	if rec.StartDate.IsZero() {
		data["startDate"] = firestore.ServerTimestamp
	}
	if rec.UpdatedAt.IsZero() {
		data["updatedAt"] = firestore.ServerTimestamp
	}

	ref := s.client.Collection(usersCollection).Doc(uid)
	_, err := ref.Get(ctx)
	switch {
	case err == nil:
		_, err = ref.Update(ctx, []firestore.Update{{Path: "subscription", Value: data}})
	case status.Code(err) == codes.NotFound:
		_, err = ref.Set(ctx, map[string]interface{}{
			"subscription": data,
			"createdAt":    firestore.ServerTimestamp,
		})
	default:
		return fmt.Errorf("failed to read user document %s before upsert: %w", uid, err)
	}
	if err != nil {
		return fmt.Errorf("failed to write subscription for user %s: %w", uid, err)
	}
	return nil
}
