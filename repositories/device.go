package repositories

import (
	"fmt"
	"time"

	"senso-backend/models"
	"senso-backend/repositories/interfaces"

	"gorm.io/gorm"
)

// DeviceRepository implements DeviceRepositoryInterface.
type DeviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of DeviceRepository.
func NewDeviceRepository(db *gorm.DB) interfaces.DeviceRepositoryInterface {
	return &DeviceRepository{
		db: db,
	}
}

// UpsertReading creates the device record if missing, then replaces the
// connectivity flags and the full lastData snapshot. A map update is used so
// absent fields write NULL instead of being merged with the previous reading.
func (dr *DeviceRepository) UpsertReading(deviceID string, reading models.Reading, seenAt time.Time) error {
	device := &models.Device{
		DeviceID: deviceID,
		Name:     models.DefaultDeviceName,
	}
	if err := dr.db.Where("device_id = ?", deviceID).FirstOrCreate(device).Error; err != nil {
		return fmt.Errorf("failed to upsert device %s: %w", deviceID, err)
	}

	updates := map[string]interface{}{
		"is_online": true,
		"last_seen": seenAt,
		"last_sh":   reading.Sh,
		"last_t":    reading.T,
		"last_lx":   reading.Lx,
		"last_bp":   reading.Bp,
	}
	if err := dr.db.Model(&models.Device{}).Where("device_id = ?", deviceID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update device state for %s: %w", deviceID, err)
	}
	return nil
}

// FindByDeviceID retrieves a device by its hardware identifier.
func (dr *DeviceRepository) FindByDeviceID(deviceID string) (*models.Device, error) {
	var device models.Device
	if err := dr.db.Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return nil, fmt.Errorf("device %s not found: %w", deviceID, err)
	}
	return &device, nil
}

// FindOrCreate retrieves a device, creating a bare offline record on first
// sight so a status query before any telemetry still has something to report.
func (dr *DeviceRepository) FindOrCreate(deviceID string) (*models.Device, error) {
	device := &models.Device{
		DeviceID: deviceID,
		Name:     models.DefaultDeviceName,
	}
	if err := dr.db.Where("device_id = ?", deviceID).FirstOrCreate(device).Error; err != nil {
		return nil, fmt.Errorf("failed to find or create device %s: %w", deviceID, err)
	}
	return device, nil
}
