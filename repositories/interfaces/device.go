package interfaces

import (
	"time"

	"senso-backend/models"
)

// DeviceRepositoryInterface defines the contract for device state access.
type DeviceRepositoryInterface interface {
	// UpsertReading creates the device record if missing and replaces its
	// last-known state with the given reading.
	UpsertReading(deviceID string, reading models.Reading, seenAt time.Time) error

	// FindByDeviceID retrieves a device by its hardware identifier.
	FindByDeviceID(deviceID string) (*models.Device, error)

	// FindOrCreate retrieves a device, creating a bare offline record when
	// none exists yet.
	FindOrCreate(deviceID string) (*models.Device, error)
}
