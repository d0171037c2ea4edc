// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a directed follow edge from FollowerID to FollowingID.
// The (FollowerID, FollowingID) pair is a set: following twice is a no-op.
// Follow edges are independent of post lifecycle.
type Follower struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (f *Follower) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
