package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsExpoPushToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[abc123]", true},
		{"ExpoPushToken[abc123]", true},
		{"ExponentPushToken[", false},
		{"abc123", false},
		{"", false},
		{"FCMToken[abc123]", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsExpoPushToken(tt.token), "token %q", tt.token)
	}
}

func TestSendInvalidTokenSkipped(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewExpoClient(server.URL, time.Second, testLogger())
	err := client.Send(context.Background(), "not-a-token", "Plant Alert", "hello", nil)

	assert.NoError(t, err, "invalid token is logged and skipped, not an error")
	assert.Zero(t, requests)
}

func TestSendBuildsExpoMessage(t *testing.T) {
	var received []Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	client := NewExpoClient(server.URL, time.Second, testLogger())
	err := client.Send(context.Background(), "ExponentPushToken[abc]", "Plant Alert", "Alert for Basil", map[string]string{"deviceId": "AABBCC"})
	require.NoError(t, err)

	require.Len(t, received, 1)
	msg := received[0]
	assert.Equal(t, "ExponentPushToken[abc]", msg.To)
	assert.Equal(t, "Plant Alert", msg.Title)
	assert.Equal(t, "Alert for Basil", msg.Body)
	assert.Equal(t, "default", msg.Sound)
	assert.Equal(t, "high", msg.Priority)
	assert.Equal(t, "AABBCC", msg.Data["deviceId"])
}

func TestSendBatchChunks(t *testing.T) {
	var chunkSizes []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var batch []Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		chunkSizes = append(chunkSizes, len(batch))
	}))
	defer server.Close()

	messages := make([]Message, 250)
	for i := range messages {
		messages[i] = Message{To: "ExponentPushToken[abc]", Title: "t", Body: "b"}
	}

	client := NewExpoClient(server.URL, time.Second, testLogger())
	require.NoError(t, client.SendBatch(context.Background(), messages))

	assert.Equal(t, []int{100, 100, 50}, chunkSizes)
}

func TestSendProviderErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewExpoClient(server.URL, time.Second, testLogger())
	err := client.Send(context.Background(), "ExponentPushToken[abc]", "t", "b", nil)
	assert.Error(t, err)
}
