package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"
	"senso-backend/shadow"
)

// DeviceStatus is the combined live/last-known view of a device.
type DeviceStatus struct {
	DeviceID string         `json:"deviceId"`
	Status   string         `json:"status"`
	IsOnline bool           `json:"isOnline"`
	LastSeen *time.Time     `json:"lastSeen"`
	LastData models.Reading `json:"lastData"`
}

// DeviceService serves device status and history reads.
type DeviceService struct {
	devices    interfaces.DeviceRepositoryInterface
	history    interfaces.HistoryRepositoryInterface
	dispatcher shadow.Dispatcher
	logger     *slog.Logger
}

// NewDeviceService creates a new instance of DeviceService.
func NewDeviceService(
	devices interfaces.DeviceRepositoryInterface,
	history interfaces.HistoryRepositoryInterface,
	dispatcher shadow.Dispatcher,
	logger *slog.Logger,
) *DeviceService {
	return &DeviceService{
		devices:    devices,
		history:    history,
		dispatcher: dispatcher,
		logger:     logger.With("component", "device_service"),
	}
}

// GetDeviceStatus reads the durable device record and overlays the live
// shadow status when the provider has one. A shadow failure degrades to the
// stored state instead of failing the request.
func (ds *DeviceService) GetDeviceStatus(ctx context.Context, deviceID string) (*DeviceStatus, error) {
	device, err := ds.devices.FindOrCreate(deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load device %s: %w", deviceID, err)
	}

	status := models.ConnectivityDisconnected
	shadowStatus, err := ds.dispatcher.GetShadow(ctx, deviceID)
	if err != nil {
		ds.logger.Warn("Shadow fetch failed, using stored status", "deviceId", deviceID, slog.Any("error", err))
	} else if shadowStatus != "" {
		status = shadowStatus
	}

	return &DeviceStatus{
		DeviceID: deviceID,
		Status:   status,
		IsOnline: device.IsOnline,
		LastSeen: device.LastSeen,
		LastData: device.LastData,
	}, nil
}

// GetDeviceHistory returns readings for a coarse period selector, oldest
// first.
func (ds *DeviceService) GetDeviceHistory(ctx context.Context, deviceID, period string) ([]models.HistoryEntry, error) {
	now := time.Now()
	return ds.history.QueryRange(deviceID, now.Add(-WindowForPeriod(period)), now)
}

// WindowForPeriod maps a period selector to a lookback window. Unrecognized
// selectors fall back to the Day window rather than erroring.
func WindowForPeriod(period string) time.Duration {
	switch strings.ToLower(period) {
	case "day":
		return 24 * time.Hour
	case "week":
		return 7 * 24 * time.Hour
	case "month":
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}
