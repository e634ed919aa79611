package repositories

import (
	"fmt"
	"time"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"

	"gorm.io/gorm"
)

// HistoryRepository implements HistoryRepositoryInterface.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new instance of HistoryRepository.
func NewHistoryRepository(db *gorm.DB) interfaces.HistoryRepositoryInterface {
	return &HistoryRepository{
		db: db,
	}
}

// Append inserts one immutable history entry. Entries carry their own
// timestamp; ordering happens at query time.
func (hr *HistoryRepository) Append(entry *models.HistoryEntry) error {
	if entry.DeviceID == "" {
		return fmt.Errorf("history entry requires a deviceId")
	}
	if err := hr.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append history for %s: %w", entry.DeviceID, err)
	}
	return nil
}

// QueryRange returns entries for a device within [from, to], ascending.
func (hr *HistoryRepository) QueryRange(deviceID string, from, to time.Time) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := hr.db.Where("device_id = ? AND timestamp >= ? AND timestamp <= ?", deviceID, from, to).
		Order("timestamp asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", deviceID, err)
	}
	return entries, nil
}
