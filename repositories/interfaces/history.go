package interfaces

import (
	"time"

	"senso-backend/models"
)

// HistoryRepositoryInterface defines the contract for the time-series log.
type HistoryRepositoryInterface interface {
	// Append inserts one immutable history entry.
	Append(entry *models.HistoryEntry) error

	// QueryRange returns entries for a device within [from, to], ascending
	// by timestamp.
	QueryRange(deviceID string, from, to time.Time) ([]models.HistoryEntry, error)
}
