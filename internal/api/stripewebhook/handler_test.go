package stripewebhooks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"omniplex-backend/internal/domain/subscription"
	"omniplex-backend/internal/store/remote"
	"omniplex-backend/internal/store/webhookjournal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

type fakeStore struct {
	mu      sync.Mutex
	records map[string]subscription.Record
	upserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]subscription.Record)}
}

func (f *fakeStore) GetSubscription(_ context.Context, uid string) (*subscription.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[uid]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeStore) UpsertSubscription(_ context.Context, uid string, rec subscription.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	f.records[uid] = rec
	return nil
}

func newWebhookRouter(store remote.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(store, webhookjournal.New(nil), testSecret)
	r.POST("/api/stripe/webhook", h.HandleWebhook)
	return r
}

// signature produces a header in Stripe's t=...,v1=... scheme over the
// timestamp-dotted payload.
func signature(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func deliver(r *gin.Engine, payload []byte, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", sig)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkoutCompletedEvent(eventID, userRef string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"object": "event",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"object": "checkout.session",
				"client_reference_id": %q,
				"customer": "cus_123",
				"amount_total": 1000,
				"currency": "usd",
				"metadata": {"plan": "pro", "userId": %q}
			}
		}
	}`, eventID, userRef, userRef))
}

func TestWebhookInvalidSignature(t *testing.T) {
	store := newFakeStore()
	r := newWebhookRouter(store)

	payload := checkoutCompletedEvent("evt_1", "user123")
	w := deliver(r, payload, signature(payload, "whsec_wrong_secret"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid signature"}`, w.Body.String())
	assert.Zero(t, store.upserts, "rejected event must not touch the store")
}

func TestWebhookCheckoutCompletedUpsertsRecord(t *testing.T) {
	store := newFakeStore()
	r := newWebhookRouter(store)

	payload := checkoutCompletedEvent("evt_1", "user123")
	w := deliver(r, payload, signature(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())

	rec, ok := store.records["user123"]
	require.True(t, ok)
	assert.Equal(t, subscription.StatusActive, rec.Status)
	assert.Equal(t, subscription.PlanPro, rec.Plan)
	assert.Equal(t, "cs_test_123", rec.StripeSessionID)
	assert.Equal(t, "cus_123", rec.StripeCustomerID)
}

func TestWebhookRedeliveryIsIdempotent(t *testing.T) {
	store := newFakeStore()
	r := newWebhookRouter(store)

	payload := checkoutCompletedEvent("evt_1", "user123")
	w1 := deliver(r, payload, signature(payload, testSecret))
	require.Equal(t, http.StatusOK, w1.Code)
	first := store.records["user123"]

	w2 := deliver(r, payload, signature(payload, testSecret))
	require.Equal(t, http.StatusOK, w2.Code)

	assert.Equal(t, 2, store.upserts, "redelivery is processed, not short-circuited")
	assert.Equal(t, first, store.records["user123"], "second delivery leaves the record unchanged")
}

func TestWebhookAnonymousUserAcknowledgedWithoutWrite(t *testing.T) {
	store := newFakeStore()
	r := newWebhookRouter(store)

	payload := []byte(`{
		"id": "evt_2",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_456",
				"object": "checkout.session",
				"metadata": {"plan": "pro", "userId": "anonymous"}
			}
		}
	}`)
	w := deliver(r, payload, signature(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code, "acknowledge so the gateway stops retrying")
	assert.Zero(t, store.upserts)
}

func TestWebhookLoggedOnlyEventsDoNotWrite(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name: "subscription updated",
			payload: `{"id":"evt_3","object":"event","type":"customer.subscription.updated",
				"data":{"object":{"id":"sub_1","object":"subscription","customer":"cus_123","status":"past_due"}}}`,
		},
		{
			name: "subscription deleted",
			payload: `{"id":"evt_4","object":"event","type":"customer.subscription.deleted",
				"data":{"object":{"id":"sub_1","object":"subscription","customer":"cus_123","status":"canceled"}}}`,
		},
		{
			name: "invoice paid",
			payload: `{"id":"evt_5","object":"event","type":"invoice.payment_succeeded",
				"data":{"object":{"id":"in_1","object":"invoice"}}}`,
		},
		{
			name: "invoice failed",
			payload: `{"id":"evt_6","object":"event","type":"invoice.payment_failed",
				"data":{"object":{"id":"in_2","object":"invoice"}}}`,
		},
		{
			name: "unknown type acknowledged",
			payload: `{"id":"evt_7","object":"event","type":"customer.created",
				"data":{"object":{"id":"cus_123","object":"customer"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			r := newWebhookRouter(store)

			payload := []byte(tt.payload)
			w := deliver(r, payload, signature(payload, testSecret))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"received": true}`, w.Body.String())
			assert.Zero(t, store.upserts)
		})
	}
}

func TestWebhookMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(newFakeStore(), webhookjournal.New(nil), "")
	r.POST("/api/stripe/webhook", h.HandleWebhook)

	payload := checkoutCompletedEvent("evt_8", "user123")
	w := deliver(r, payload, signature(payload, testSecret))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
