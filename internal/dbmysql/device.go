package dbmysql

import (
	"time"
)

// Device records a user's end-to-end-encryption device keys. Key material is
// stored and served to peers; session cryptography itself happens on clients.
type Device struct {
	DeviceID      string    `gorm:"primaryKey;size:64"`
	UserID        string    `gorm:"not null;index;size:36"`
	DisplayName   string    `gorm:"size:100"`
	IdentityKey   string    `gorm:"not null;size:64"` // ed25519 fingerprint key, base64
	Curve25519Key string    `gorm:"not null;size:64"` // sender key advertised on megolm messages
	RegisteredAt  time.Time `gorm:"autoCreateTime"`
	LastActive    time.Time `gorm:"autoCreateTime"`
}

func (Device) TableName() string {
	return "devices"
}
