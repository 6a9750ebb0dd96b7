package billing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"omniplex-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCheckoutRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/stripe/checkout", CreateCheckoutSession)
	return r
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutRejectsUnknownPlan(t *testing.T) {
	r := newCheckoutRouter()

	tests := []struct {
		name string
		body string
	}{
		{"unknown plan key", `{"plan": "gold", "userId": "user123"}`},
		{"free plan has no checkout", `{"plan": "free", "userId": "user123"}`},
		{"empty plan", `{"userId": "user123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCheckout(r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "Invalid plan selected"}`, w.Body.String())
		})
	}
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	r := newCheckoutRouter()

	w := postCheckout(r, `{"plan": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid request body"}`, w.Body.String())
}

func TestCheckoutWithoutGatewayKey(t *testing.T) {
	prev := config.STRIPE_SECRET_KEY
	config.STRIPE_SECRET_KEY = ""
	t.Cleanup(func() { config.STRIPE_SECRET_KEY = prev })

	r := newCheckoutRouter()

	// Plan validation runs before the gateway is touched, so the allow-list
	// error wins even with no key configured.
	w := postCheckout(r, `{"plan": "gold"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postCheckout(r, `{"plan": "pro", "userId": "user123"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Stripe not configured"}`, w.Body.String())
}
