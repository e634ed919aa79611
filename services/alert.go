package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"senso-backend/models"
	"senso-backend/push"
	"senso-backend/repositories/interfaces"
)

const alertTitle = "Plant Alert"

// AlertService turns qualifying telemetry alerts into persisted
// notifications and best-effort push deliveries. Alerts that cannot be
// resolved to a device owner are dropped and logged; there is no retry
// queue.
type AlertService struct {
	devices       interfaces.DeviceRepositoryInterface
	users         interfaces.UserRepositoryInterface
	notifications interfaces.NotificationRepositoryInterface
	pusher        *push.ExpoClient
	logger        *slog.Logger
}

// NewAlertService creates a new instance of AlertService.
func NewAlertService(
	devices interfaces.DeviceRepositoryInterface,
	users interfaces.UserRepositoryInterface,
	notifications interfaces.NotificationRepositoryInterface,
	pusher *push.ExpoClient,
	logger *slog.Logger,
) *AlertService {
	return &AlertService{
		devices:       devices,
		users:         users,
		notifications: notifications,
		pusher:        pusher,
		logger:        logger.With("component", "alert_service"),
	}
}

// HandleAlert resolves the reporting device to its owner, persists a
// notification, then attempts push delivery. Push failure never blocks or
// rolls back the already-persisted notification.
func (as *AlertService) HandleAlert(ctx context.Context, deviceID, alertType string, val *float64) error {
	logger := as.logger.With("deviceId", deviceID, "alertType", alertType)

	device, err := as.devices.FindByDeviceID(deviceID)
	if err != nil {
		logger.Warn("Dropping alert for unknown device", slog.Any("error", err))
		return nil
	}
	if device.UserID == 0 {
		logger.Warn("Dropping alert for unowned device")
		return nil
	}

	user, err := as.users.FindByID(device.UserID)
	if err != nil {
		logger.Warn("Dropping alert, owner not found", "userId", device.UserID, slog.Any("error", err))
		return nil
	}

	message := FormatAlertMessage(device.Name, alertType, val)
	notification := &models.Notification{
		UserID:   device.UserID,
		Title:    alertTitle,
		Message:  message,
		Type:     models.NotificationTypeAlert,
		Priority: models.NotificationPriorityHigh,
		Metadata: models.JSONMap{
			"deviceId":   deviceID,
			"alert_type": alertType,
		},
	}
	if err := as.notifications.Create(notification); err != nil {
		return fmt.Errorf("failed to persist alert notification: %w", err)
	}

	if user.PushToken == "" {
		logger.Debug("Owner has no push token, notification persisted only")
		return nil
	}
	if err := as.pusher.Send(ctx, user.PushToken, alertTitle, message, map[string]string{"deviceId": deviceID}); err != nil {
		logger.Error("Push delivery failed", slog.Any("error", err))
	}
	return nil
}

// FormatAlertMessage builds the human-readable alert text. The wire value
// is scaled x10, so the displayed value is divided back to real-world units.
func FormatAlertMessage(deviceName, alertType string, val *float64) string {
	value := "N/A"
	if val != nil {
		value = strconv.FormatFloat(*val/10, 'f', -1, 64)
	}
	return fmt.Sprintf("Alert for %s: %s. Value: %s", deviceName, alertType, value)
}
