package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insiderdm/internal/dbmysql"
)

// ConversationSummaryRow is the scan target for the aggregated list query.
type ConversationSummaryRow struct {
	ID                 string     `gorm:"column:id"`
	Type               string     `gorm:"column:type"`
	Name               string     `gorm:"column:name"`
	LastMessageAt      *time.Time `gorm:"column:last_message_at"`
	LastMessagePreview string     `gorm:"column:last_message_preview"`
	UnreadCount        int        `gorm:"column:unread_count"`
	IsMuted            bool       `gorm:"column:is_muted"`
}

type participantRow struct {
	ConversationID string `gorm:"column:conversation_id"`
	UserID         string `gorm:"column:user_id"`
}

type ConversationRepository interface {
	// GetOrCreateDirect returns the conversation id for the unordered user
	// pair, creating conversation and participant rows when none exist.
	// Safe under concurrent calls: the unique index on the canonical pair
	// key makes exactly one insert win; losers re-read the winner's row.
	GetOrCreateDirect(ctx context.Context, userA, userB string) (string, bool, error)

	CreateGroup(ctx context.Context, name string, memberIDs []string) (string, error)
	GetByID(ctx context.Context, conversationID string) (*dbmysql.Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)

	// ListSummaries is one joined query regardless of conversation count.
	ListSummaries(ctx context.Context, userID string) ([]ConversationSummaryRow, error)

	// OtherParticipants batch-loads co-participants for a set of
	// conversations, keyed by conversation id.
	OtherParticipants(ctx context.Context, conversationIDs []string, excludeUserID string) (map[string][]string, error)

	IncrementUnread(ctx context.Context, conversationID, exceptUserID string) error
	MarkAsRead(ctx context.Context, conversationID, userID string) error
	SetMute(ctx context.Context, conversationID, userID string, muted bool) error
	TouchLastMessage(ctx context.Context, conversationID, preview string, at time.Time) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetOrCreateDirect(ctx context.Context, userA, userB string) (string, bool, error) {
	key := dbmysql.DirectKeyFor(userA, userB)

	var existing dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("direct_key = ?", key).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	conv := dbmysql.Conversation{
		ID:        uuid.NewString(),
		Type:      dbmysql.ConversationDirect,
		DirectKey: &key,
	}
	created := false

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&conv)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race against a concurrent creator.
			return tx.Where("direct_key = ?", key).First(&conv).Error
		}

		created = true
		participants := []dbmysql.Participant{
			{ConversationID: conv.ID, UserID: userA},
			{ConversationID: conv.ID, UserID: userB},
		}
		return tx.Create(&participants).Error
	})
	if err != nil {
		return "", false, err
	}

	return conv.ID, created, nil
}

func (r *conversationRepository) CreateGroup(ctx context.Context, name string, memberIDs []string) (string, error) {
	conv := dbmysql.Conversation{
		ID:   uuid.NewString(),
		Type: dbmysql.ConversationGroup,
		Name: name,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		participants := make([]dbmysql.Participant, 0, len(memberIDs))
		for _, id := range memberIDs {
			participants = append(participants, dbmysql.Participant{
				ConversationID: conv.ID,
				UserID:         id,
			})
		}
		return tx.Create(&participants).Error
	})
	if err != nil {
		return "", err
	}

	return conv.ID, nil
}

func (r *conversationRepository) GetByID(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", conversationID).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *conversationRepository) ListSummaries(ctx context.Context, userID string) ([]ConversationSummaryRow, error) {
	var rows []ConversationSummaryRow
	err := r.db.WithContext(ctx).
		Table("participants AS p").
		Select("c.id, c.type, c.name, c.last_message_at, c.last_message_preview, p.unread_count, p.is_muted").
		Joins("JOIN conversations c ON c.id = p.conversation_id").
		Where("p.user_id = ?", userID).
		Order("(c.last_message_at IS NULL) ASC, c.last_message_at DESC, c.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *conversationRepository) OtherParticipants(ctx context.Context, conversationIDs []string, excludeUserID string) (map[string][]string, error) {
	byConversation := make(map[string][]string)
	if len(conversationIDs) == 0 {
		return byConversation, nil
	}

	var rows []participantRow
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Select("conversation_id, user_id").
		Where("conversation_id IN ? AND user_id <> ?", conversationIDs, excludeUserID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		byConversation[row.ConversationID] = append(byConversation[row.ConversationID], row.UserID)
	}
	return byConversation, nil
}

// IncrementUnread bumps every other participant's counter in a single
// statement; the increment happens in SQL so concurrent sends never lose
// updates to a read-modify-write race.
func (r *conversationRepository) IncrementUnread(ctx context.Context, conversationID, exceptUserID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id <> ?", conversationID, exceptUserID).
		UpdateColumn("unread_count", gorm.Expr("unread_count + ?", 1)).Error
}

func (r *conversationRepository) MarkAsRead(ctx context.Context, conversationID, userID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Updates(map[string]interface{}{
			"unread_count": 0,
			"last_read_at": &now,
		}).Error
}

func (r *conversationRepository) SetMute(ctx context.Context, conversationID, userID string, muted bool) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Update("is_muted", muted).Error
}

func (r *conversationRepository) TouchLastMessage(ctx context.Context, conversationID, preview string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ?", conversationID).
		Updates(map[string]interface{}{
			"last_message_at":      at,
			"last_message_preview": preview,
		}).Error
}
