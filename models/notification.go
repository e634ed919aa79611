package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Notification types and priorities as stored.
const (
	NotificationTypeAlert    = "alert"
	NotificationTypeReminder = "reminder"
	NotificationTypeInfo     = "info"

	NotificationPriorityHigh   = "high"
	NotificationPriorityMedium = "medium"
	NotificationPriorityNormal = "normal"
	NotificationPriorityLow    = "low"
	NotificationPriorityInfo   = "info"
)

// JSONMap stores free-form metadata as a JSONB column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// Notification is created by the alert pipeline and consumed by users.
// Only the Read flag is ever mutated.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	PlantID   *uint     `json:"plantId,omitempty"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Type      string    `json:"type" gorm:"default:info"`
	Priority  string    `json:"priority" gorm:"default:normal"`
	Read      bool      `json:"read" gorm:"default:false"`
	Metadata  JSONMap   `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
