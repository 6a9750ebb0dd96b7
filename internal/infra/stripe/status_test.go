package stripe

import (
	"testing"

	"omniplex-backend/internal/domain/subscription"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubscriptionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want subscription.Status
	}{
		{"", subscription.StatusNone},
		{"  ", subscription.StatusNone},
		{"active", subscription.StatusActive},
		{"trialing", subscription.StatusActive},
		{"past_due", subscription.StatusPastDue},
		{"unpaid", subscription.StatusPastDue},
		{"canceled", subscription.StatusCanceled},
		{"incomplete_expired", subscription.StatusCanceled},
		{" active ", subscription.StatusActive},
		{"paused", subscription.Status("paused")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSubscriptionStatus(tt.in))
		})
	}
}
