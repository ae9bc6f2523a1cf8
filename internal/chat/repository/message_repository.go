package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"insiderdm/internal/dbmysql"
)

type MessageRepository interface {
	Save(ctx context.Context, msg *dbmysql.Message) error
	GetByID(ctx context.Context, messageID string) (*dbmysql.Message, error)

	// GetByIDIncludingDeleted still finds soft-deleted rows; the audit
	// trail keeps them around.
	GetByIDIncludingDeleted(ctx context.Context, messageID string) (*dbmysql.Message, error)

	// ListBefore pages newest-first below the exclusive cursor, fetching
	// limit+1 rows so hasMore needs no count query, then returns the page
	// in chronological order. Soft-deleted messages are excluded.
	ListBefore(ctx context.Context, conversationID string, before *time.Time, limit int) ([]*dbmysql.Message, bool, error)

	SoftDelete(ctx context.Context, messageID string) error

	// RecentContext returns the newest messages of a conversation in
	// chronological order, for assistant prompt assembly.
	RecentContext(ctx context.Context, conversationID string, limit int) ([]*dbmysql.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Save(ctx context.Context, msg *dbmysql.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) GetByID(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) GetByIDIncludingDeleted(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Unscoped().Where("id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) ListBefore(ctx context.Context, conversationID string, before *time.Time, limit int) ([]*dbmysql.Message, bool, error) {
	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var messages []*dbmysql.Message
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit + 1).
		Find(&messages).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}

	// Reverse newest-first to chronological for the caller.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, hasMore, nil
}

func (r *messageRepository) SoftDelete(ctx context.Context, messageID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", messageID).
		Delete(&dbmysql.Message{}).Error
}

func (r *messageRepository) RecentContext(ctx context.Context, conversationID string, limit int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
