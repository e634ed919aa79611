package models

import "time"

// DefaultDeviceName is used for devices first seen over telemetry, before
// any user has named them.
const DefaultDeviceName = "Unnamed Sensor"

// Connectivity status values as reported by the shadow provider.
const (
	ConnectivityConnected    = "CONNECTED"
	ConnectivityDisconnected = "DISCONNECTED"
)

// Reading is one snapshot of the four sensor channels. All values are
// integers scaled x10 of their real-world unit (soil humidity, temperature,
// light, battery); device firmware avoids floating point. Fields are
// pointers so a partial payload passes through as NULL instead of zero.
type Reading struct {
	Sh *int `json:"sh" gorm:"column:sh"`
	T  *int `json:"t" gorm:"column:t"`
	Lx *int `json:"lx" gorm:"column:lx"`
	Bp *int `json:"bp" gorm:"column:bp"`
}

// Device is the durable record of a sensor's identity and last-known state.
// LastData is replaced wholesale by each accepted reading, never merged
// field-by-field.
type Device struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	DeviceID  string     `json:"deviceId" gorm:"uniqueIndex;not null"`
	Name      string     `json:"name"`
	UserID    uint       `json:"userId" gorm:"index"`
	IsOnline  bool       `json:"isOnline"`
	LastSeen  *time.Time `json:"lastSeen"`
	LastData  Reading    `json:"lastData" gorm:"embedded;embeddedPrefix:last_"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
