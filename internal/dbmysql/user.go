package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID       string         `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Username     string         `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	DisplayName  string         `gorm:"column:display_name;size:100" json:"display_name"`
	AvatarURL    string         `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	Email        string         `gorm:"column:email;size:255" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Status       string         `gorm:"column:status;type:enum('active','banned','deleted');default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Profile is the secondary identity record. Usernames may live here instead
// of (or as well as) on the core user row, so directory lookups union both.
type Profile struct {
	UserID      string    `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Username    string    `gorm:"column:username;index;size:50" json:"username"`
	DisplayName string    `gorm:"column:display_name;size:100" json:"display_name"`
	AvatarURL   string    `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
