package models

import "time"

// HistoryEntry is an immutable time-series point for one device. Entries are
// append-only; there is no update or delete path.
type HistoryEntry struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	DeviceID  string    `json:"deviceId" gorm:"index:idx_history_device_time,priority:1;not null"`
	Sh        *int      `json:"sh"`
	T         *int      `json:"t"`
	Lx        *int      `json:"lx"`
	Bp        *int      `json:"bp"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_history_device_time,priority:2"`
	CreatedAt time.Time `json:"-"`
}
