package redis

import (
	"context"
	"testing"
	"time"

	"senso-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *RedisClient {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisClientWithOptions(mr.Addr(), time.Hour)
}

func TestWifiStatusDefaultsToWaiting(t *testing.T) {
	client := newTestClient(t)

	status, err := client.GetWifiStatus(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, models.WifiStatusWaiting, status)
}

func TestWifiStatusRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SetWifiStatus(ctx, "AABBCC", models.WifiStatusConnected))

	status, err := client.GetWifiStatus(ctx, "AABBCC")
	require.NoError(t, err)
	assert.Equal(t, models.WifiStatusConnected, status)

	// Terminal states are blind overwrites; FAILED after CONNECTED sticks.
	require.NoError(t, client.SetWifiStatus(ctx, "AABBCC", models.WifiStatusFailed))
	status, err = client.GetWifiStatus(ctx, "AABBCC")
	require.NoError(t, err)
	assert.Equal(t, models.WifiStatusFailed, status)
}

func TestWifiStatusExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClientWithOptions(mr.Addr(), time.Minute)
	ctx := context.Background()

	require.NoError(t, client.SetWifiStatus(ctx, "AABBCC", models.WifiStatusConnected))
	mr.FastForward(2 * time.Minute)

	status, err := client.GetWifiStatus(ctx, "AABBCC")
	require.NoError(t, err)
	assert.Equal(t, models.WifiStatusWaiting, status, "expired key reads back as WAITING")
}

func TestConnectionStatusRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	status, err := client.GetConnectionStatus(ctx, "AABBCC")
	require.NoError(t, err)
	assert.Empty(t, status, "no observation yet")

	require.NoError(t, client.SaveConnectionStatus(ctx, "AABBCC", models.ConnectivityConnected))

	status, err = client.GetConnectionStatus(ctx, "AABBCC")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectivityConnected, status)
}
