package localcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	v, err := c.Get(ctx, "profile-1", KeyProStatus)
	require.NoError(t, err)
	assert.Empty(t, v, "absent key reads as empty string")

	entry := Entry{
		Status:      "active",
		UserID:      "user123",
		ActivatedAt: "2025-01-02T03:04:05Z",
		SessionID:   "cs_test_123",
	}
	require.NoError(t, StoreEntry(ctx, c, "profile-1", entry))

	got, err := LoadEntry(ctx, c, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	// Other profiles see nothing.
	other, err := LoadEntry(ctx, c, "profile-2")
	require.NoError(t, err)
	assert.Equal(t, Entry{}, other)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "profile-1", KeyProStatus, "active"))
	require.NoError(t, c.Set(ctx, "profile-1", KeyProUser, "user123"))
	require.NoError(t, c.Delete(ctx, "profile-1", KeyProStatus, KeyProUser))

	v, err := c.Get(ctx, "profile-1", KeyProStatus)
	require.NoError(t, err)
	assert.Empty(t, v)
}
