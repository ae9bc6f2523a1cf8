package user

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insiderdm/internal/dbmysql"
)

type DeviceRepository interface {
	RegisterDevice(ctx context.Context, device *dbmysql.Device) error
	RemoveDevice(ctx context.Context, deviceID string) error
	GetUserDevices(ctx context.Context, userID string) ([]*dbmysql.Device, error)
	UpdateDeviceActivity(ctx context.Context, deviceID string) error
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) RegisterDevice(ctx context.Context, device *dbmysql.Device) error {
	// Re-registration refreshes the advertised keys for the device id.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "identity_key", "curve25519_key", "last_active"}),
		}).
		Create(device).Error
}

func (r *deviceRepository) RemoveDevice(ctx context.Context, deviceID string) error {
	return r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&dbmysql.Device{}).Error
}

func (r *deviceRepository) GetUserDevices(ctx context.Context, userID string) ([]*dbmysql.Device, error) {
	var devices []*dbmysql.Device
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("registered_at ASC").
		Find(&devices).Error
	return devices, err
}

func (r *deviceRepository) UpdateDeviceActivity(ctx context.Context, deviceID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Device{}).
		Where("device_id = ?", deviceID).
		Update("last_active", time.Now()).Error
}
