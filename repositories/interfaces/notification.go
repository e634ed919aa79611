package interfaces

import "senso-backend/models"

// NotificationRepositoryInterface defines the contract for notification access.
type NotificationRepositoryInterface interface {
	// Create persists a new notification.
	Create(notification *models.Notification) error

	// ListByUser returns the newest notifications for a user, newest first.
	ListByUser(userID uint, limit int) ([]models.Notification, error)

	// MarkRead flips the read flag on a notification owned by the user.
	MarkRead(id, userID uint) error

	// Delete removes a notification owned by the user.
	Delete(id, userID uint) error
}
