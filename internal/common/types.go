package common

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type NotificationType string

const (
	MentionType NotificationType = "mention"
	SystemType  NotificationType = "system"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
	StatusRead    NotificationStatus = "read"
)

// ResourceDMMessage is the resource type carried on mention notifications.
const ResourceDMMessage = "dm_message"

type NotificationMetadata map[string]interface{}

// Value / Scan let gorm persist the metadata as a JSON column.
func (m NotificationMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *NotificationMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
}

// NotificationEvent is the payload handed to the notification manager. For
// mention events Message carries a truncated preview of the triggering DM,
// ResourceType is ResourceDMMessage and Metadata carries conversation_id and
// message_id.
type NotificationEvent struct {
	Type         NotificationType
	UserID       string
	ActorID      string
	Title        string
	Message      string
	ResourceType string
	ResourceID   string
	Metadata     NotificationMetadata
}

// UserDisplay is the denormalized identity shape attached to conversation
// summaries and message pages. Fields come from the profile row when present,
// falling back to the core user row.
type UserDisplay struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// PresenceStatus values tracked by the presence store.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceIdle    PresenceStatus = "idle"
	PresenceOffline PresenceStatus = "offline"
)
