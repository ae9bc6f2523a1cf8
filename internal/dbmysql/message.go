package dbmysql

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	EncryptionOlmV1    = "olm.v1"
	EncryptionMegolmV1 = "megolm.v1"
)

type Message struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string `gorm:"index:idx_conv_created,priority:1;size:36;not null" json:"conversation_id"`
	SenderID       string `gorm:"index;size:36;not null" json:"sender_id"`

	// A message carries either Content or the encrypted payload, never both
	// and never neither. Validate enforces this before persistence.
	Content             string `gorm:"type:text" json:"content,omitempty"`
	EncryptedContent    string `gorm:"type:text" json:"encrypted_content,omitempty"`
	EncryptionAlgorithm string `gorm:"size:20" json:"encryption_algorithm,omitempty"`
	SessionID           string `gorm:"size:64" json:"session_id,omitempty"`
	SenderDeviceID      string `gorm:"size:64" json:"sender_device_id,omitempty"`
	SenderKey           string `gorm:"size:64" json:"sender_key,omitempty"`

	// Mentions are resolved at send time and frozen thereafter.
	Mentions JSONStringList `gorm:"type:json" json:"mentions"`

	IsAIGenerated bool    `gorm:"not null;default:false" json:"is_ai_generated"`
	AIResponseTo  *string `gorm:"size:36" json:"ai_response_to,omitempty"`

	CreatedAt time.Time      `gorm:"index:idx_conv_created,priority:2;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Message) Encrypted() bool {
	return m.EncryptedContent != ""
}

// Validate enforces the plaintext-XOR-encrypted invariant.
func (m *Message) Validate() error {
	if m.ConversationID == "" {
		return fmt.Errorf("conversation id is required")
	}
	if m.SenderID == "" {
		return fmt.Errorf("sender id is required")
	}

	plain := m.Content != ""
	encrypted := m.EncryptedContent != ""
	if plain == encrypted {
		return fmt.Errorf("message must carry exactly one of content or encrypted content")
	}

	if encrypted {
		switch m.EncryptionAlgorithm {
		case EncryptionOlmV1, EncryptionMegolmV1:
		default:
			return fmt.Errorf("unknown encryption algorithm %q", m.EncryptionAlgorithm)
		}
		if m.SessionID == "" || m.SenderDeviceID == "" || m.SenderKey == "" {
			return fmt.Errorf("encrypted message is missing session or sender key fields")
		}
	} else if m.EncryptionAlgorithm != "" || m.SessionID != "" || m.SenderDeviceID != "" || m.SenderKey != "" {
		return fmt.Errorf("plaintext message must not carry encryption fields")
	}

	return nil
}
