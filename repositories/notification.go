package repositories

import (
	"fmt"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"

	"gorm.io/gorm"
)

// NotificationRepository implements NotificationRepositoryInterface.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) interfaces.NotificationRepositoryInterface {
	return &NotificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (nr *NotificationRepository) Create(notification *models.Notification) error {
	if err := nr.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser returns the newest notifications for a user, newest first.
func (nr *NotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	query := nr.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag on a notification owned by the user.
func (nr *NotificationRepository) MarkRead(id, userID uint) error {
	result := nr.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification %d as read: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a notification owned by the user.
func (nr *NotificationRepository) Delete(id, userID uint) error {
	result := nr.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
