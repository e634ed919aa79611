package models

import "time"

// User carries only what the alert pipeline needs to reach a person.
// Account management lives in a separate service.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	PushToken string    `json:"pushToken"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
