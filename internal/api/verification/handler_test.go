package verification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"omniplex-backend/internal/store/localcache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifyRouter(cache localcache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("profile_id", "profile-1")
	})
	h := NewHandler(cache, nil)
	r.POST("/api/verify-subscription", h.VerifySubscription)
	return r
}

func postVerify(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/verify-subscription", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyMissingParameters(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no user", `{"sessionId": "cs_test_123"}`},
		{"no session", `{"userId": "user123"}`},
		{"empty body", `{}`},
		{"malformed body", `{"userId": `},
	}

	cache := localcache.NewMemoryCache()
	r := newVerifyRouter(cache)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postVerify(r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "Missing required parameters"}`, w.Body.String())
		})
	}
}

func TestVerifyActivatesAndWritesCache(t *testing.T) {
	cache := localcache.NewMemoryCache()
	r := newVerifyRouter(cache)

	w := postVerify(r, `{"userId": "user123", "sessionId": "cs_test_123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Pro subscription activated")

	entry, err := localcache.LoadEntry(context.Background(), cache, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, "active", entry.Status)
	assert.Equal(t, "user123", entry.UserID)
	assert.Equal(t, "cs_test_123", entry.SessionID)
	assert.NotEmpty(t, entry.ActivatedAt)
}

func TestVerifySucceedsWithoutRemoteStore(t *testing.T) {
	// No remote store configured at all; the optimistic path still activates.
	r := newVerifyRouter(localcache.NewMemoryCache())

	w := postVerify(r, `{"userId": "user123", "sessionId": "cs_test_456"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
