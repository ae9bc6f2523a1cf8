package dbmysql

import (
	"strings"
	"time"
)

const (
	ConversationDirect = "direct"
	ConversationGroup  = "group"
)

// Group conversations carry between two and fifty members.
const MaxGroupParticipants = 50

type Conversation struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Type string `gorm:"size:10;not null;default:'direct'" json:"type"`
	Name string `gorm:"size:100" json:"name,omitempty"`

	// DirectKey is the canonical sorted user-id pair for direct
	// conversations. The unique index is what makes get-or-create safe
	// against concurrent callers.
	DirectKey *string `gorm:"uniqueIndex;size:80" json:"-"`

	// Denormalized last-message cache, updated on every send.
	LastMessageAt      *time.Time `gorm:"index" json:"last_message_at,omitempty"`
	LastMessagePreview string     `gorm:"size:80" json:"last_message_preview,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Participant grants a user access to a conversation and carries their
// per-conversation unread/mute/read-receipt state.
type Participant struct {
	ConversationID string     `gorm:"primaryKey;size:36" json:"conversation_id"`
	UserID         string     `gorm:"primaryKey;index;size:36" json:"user_id"`
	UnreadCount    int        `gorm:"not null;default:0" json:"unread_count"`
	IsMuted        bool       `gorm:"not null;default:false" json:"is_muted"`
	LastReadAt     *time.Time `json:"last_read_at,omitempty"`
	JoinedAt       time.Time  `gorm:"autoCreateTime" json:"joined_at"`
}

// DirectKeyFor canonicalizes an unordered user pair. Both (A,B) and (B,A)
// produce the same key.
func DirectKeyFor(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}
