package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Expo caps push requests at 100 messages each.
const maxChunkSize = 100

// Message is one push notification addressed to an Expo token.
type Message struct {
	To       string            `json:"to"`
	Sound    string            `json:"sound"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Priority string            `json:"priority"`
}

// ExpoClient delivers push notifications through the Expo push API.
// Delivery is best-effort: invalid tokens are logged and skipped, and
// callers are expected to treat errors as non-fatal.
type ExpoClient struct {
	apiURL string
	client *http.Client
	logger *slog.Logger
}

// NewExpoClient creates a push client against the Expo API endpoint.
func NewExpoClient(apiURL string, timeout time.Duration, logger *slog.Logger) *ExpoClient {
	return &ExpoClient{
		apiURL: apiURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "expo_push"),
	}
}

// IsExpoPushToken reports whether a token has the Expo push token shape.
func IsExpoPushToken(token string) bool {
	if !strings.HasSuffix(token, "]") {
		return false
	}
	return strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")
}

// Send delivers a single notification. An invalid token is logged and
// skipped without error, matching the best-effort delivery contract.
func (e *ExpoClient) Send(ctx context.Context, pushToken, title, body string, data map[string]string) error {
	if !IsExpoPushToken(pushToken) {
		e.logger.Warn("Skipping push: not a valid Expo push token", "token", pushToken)
		return nil
	}

	msg := Message{
		To:       pushToken,
		Sound:    "default",
		Title:    title,
		Body:     body,
		Data:     data,
		Priority: "high",
	}
	return e.SendBatch(ctx, []Message{msg})
}

// SendBatch delivers messages in provider-sized chunks.
func (e *ExpoClient) SendBatch(ctx context.Context, messages []Message) error {
	for start := 0; start < len(messages); start += maxChunkSize {
		end := start + maxChunkSize
		if end > len(messages) {
			end = len(messages)
		}
		if err := e.sendChunk(ctx, messages[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExpoClient) sendChunk(ctx context.Context, chunk []Message) error {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to marshal push messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	e.logger.Debug("Push chunk delivered", "count", len(chunk))
	return nil
}
