package dbmysql

import (
	"time"
)

// Block is directional (blocker → blocked) but enforced symmetrically:
// a block in either direction prevents new conversations between the pair.
type Block struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID string    `gorm:"column:blocker_id;not null;index:idx_blocker_blocked,unique;size:36" json:"blocker_id"`
	BlockedID string    `gorm:"column:blocked_id;not null;index:idx_blocker_blocked,unique;size:36" json:"blocked_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
