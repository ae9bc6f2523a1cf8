package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"insiderdm/internal/dbmysql"
)

type BlockRepository interface {
	CreateBlock(ctx context.Context, blockerID, blockedID string) error
	RemoveBlock(ctx context.Context, blockerID, blockedID string) error

	// ExistsBetween reports whether a block exists in either direction
	// between the two users.
	ExistsBetween(ctx context.Context, userA, userB string) (bool, error)
	ListBlocked(ctx context.Context, blockerID string) ([]*dbmysql.Block, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) CreateBlock(ctx context.Context, blockerID, blockedID string) error {
	block := &dbmysql.Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	// Re-blocking an already blocked user is a no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(block).Error
}

func (r *blockRepository) RemoveBlock(ctx context.Context, blockerID, blockedID string) error {
	result := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&dbmysql.Block{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("block not found")
	}
	return nil
}

func (r *blockRepository) ExistsBetween(ctx context.Context, userA, userB string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *blockRepository) ListBlocked(ctx context.Context, blockerID string) ([]*dbmysql.Block, error) {
	var blocks []*dbmysql.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}
