package services

import (
	"log/slog"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"
)

// Users read at most the latest 50 notifications per request.
const notificationListLimit = 50

// NotificationService serves the user-facing notification surface.
type NotificationService struct {
	notifications interfaces.NotificationRepositoryInterface
	logger        *slog.Logger
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(notifications interfaces.NotificationRepositoryInterface, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger.With("component", "notification_service"),
	}
}

// ListForUser returns the user's newest notifications.
func (ns *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return ns.notifications.ListByUser(userID, notificationListLimit)
}

// MarkRead flips the read flag on one of the user's notifications.
func (ns *NotificationService) MarkRead(id, userID uint) error {
	return ns.notifications.MarkRead(id, userID)
}

// Delete removes one of the user's notifications.
func (ns *NotificationService) Delete(id, userID uint) error {
	return ns.notifications.Delete(id, userID)
}
