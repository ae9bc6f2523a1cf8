package dbmysql

import (
	"time"

	"insiderdm/internal/common"
)

type Notification struct {
	ID           string                      `gorm:"primaryKey;size:36"`
	UserID       string                      `gorm:"not null;index;size:36"`
	Type         string                      `gorm:"not null;size:50"`
	Title        string                      `gorm:"not null;size:255"`
	Message      string                      `gorm:"not null;type:text"`
	ActorID      *string                     `gorm:"size:36"`
	ResourceType string                      `gorm:"size:50"`
	ResourceID   string                      `gorm:"size:36"`
	Metadata     common.NotificationMetadata `gorm:"type:json"`
	Status       string                      `gorm:"default:'pending';size:20"`
	ReadAt       *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
