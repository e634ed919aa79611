package shadow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"senso-backend/models"
)

// shadowDocument mirrors the relevant slice of a managed shadow service's
// GET response.
type shadowDocument struct {
	State struct {
		Reported struct {
			Connectivity struct {
				Status string `json:"status"`
			} `json:"connectivity"`
		} `json:"reported"`
	} `json:"state"`
}

// ManagedShadowDispatcher talks to a remote desired/reported state service
// over HTTP. All calls are bounded by the client timeout so a slow shadow
// service never stalls a caller.
type ManagedShadowDispatcher struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewManagedShadowDispatcher creates a dispatcher against a shadow service
// base URL.
func NewManagedShadowDispatcher(baseURL string, timeout time.Duration, logger *slog.Logger) *ManagedShadowDispatcher {
	return &ManagedShadowDispatcher{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "managed_shadow"),
	}
}

// GetShadow fetches the reported connectivity status for a device. An empty
// status with a nil error means the service had no shadow for the device.
func (d *ManagedShadowDispatcher) GetShadow(ctx context.Context, deviceID string) (string, error) {
	url := fmt.Sprintf("%s/things/%s/shadow", d.baseURL, deviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create shadow request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("shadow request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("shadow request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var doc shadowDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("failed to decode shadow document: %w", err)
	}
	return doc.State.Reported.Connectivity.Status, nil
}

// PublishDesiredState writes a desired command into the device's shadow.
func (d *ManagedShadowDispatcher) PublishDesiredState(ctx context.Context, deviceID string, desired models.DesiredCommand) error {
	update := map[string]interface{}{
		"state": models.CommandState{Desired: desired},
	}
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal shadow update: %w", err)
	}

	url := fmt.Sprintf("%s/things/%s/shadow", d.baseURL, deviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create shadow update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("shadow update failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("shadow update failed with status %d: %s", resp.StatusCode, string(body))
	}

	d.logger.Info("Desired state published to shadow service", "deviceId", deviceID, "cmdId", desired.CmdID)
	return nil
}
