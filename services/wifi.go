package services

import (
	"context"
	"log/slog"
)

// WifiStatusStore is the keyed status store behind the provisioning
// handshake.
type WifiStatusStore interface {
	SetWifiStatus(ctx context.Context, deviceID, status string) error
	GetWifiStatus(ctx context.Context, deviceID string) (string, error)
}

// WifiService mediates the provisioning handshake: the device reports its
// join outcome once, the setup UI polls until it observes a terminal state.
// Writes are blind overwrites; the single-writer-per-device assumption makes
// last-write-wins acceptable.
type WifiService struct {
	store  WifiStatusStore
	logger *slog.Logger
}

// NewWifiService creates a new instance of WifiService.
func NewWifiService(store WifiStatusStore, logger *slog.Logger) *WifiService {
	return &WifiService{
		store:  store,
		logger: logger.With("component", "wifi_service"),
	}
}

// SetStatus records the device-reported provisioning outcome.
func (ws *WifiService) SetStatus(ctx context.Context, deviceID, status string) error {
	if err := ws.store.SetWifiStatus(ctx, deviceID, status); err != nil {
		return err
	}
	ws.logger.Info("WiFi provisioning status updated", "deviceId", deviceID, "status", status)
	return nil
}

// GetStatus returns the current provisioning status, WAITING for unknown
// devices.
func (ws *WifiService) GetStatus(ctx context.Context, deviceID string) (string, error) {
	return ws.store.GetWifiStatus(ctx, deviceID)
}
