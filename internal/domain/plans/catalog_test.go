package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	pro, ok := Lookup("pro")
	require.True(t, ok)
	assert.Equal(t, int64(1000), pro.Price)
	assert.Equal(t, "usd", pro.Currency)
	assert.Equal(t, "month", pro.Interval)

	_, ok = Lookup("gold")
	assert.False(t, ok, "only catalog keys are billable")

	_, ok = Lookup("free")
	assert.False(t, ok, "the free plan is the absence of a subscription, never checked out")
}

func TestAllIsBillableCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 1)
	assert.Equal(t, "pro", all[0].Key)
}
