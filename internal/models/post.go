// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a feed post authored by a Profile.
//
// LikesCount, CommentsCount, Liked and Tags are the derived "post with
// details" view: they are computed by the repository on every read and are
// never persisted or cached.
type Post struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Author   Profile `gorm:"foreignKey:UserID" json:"author"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	ImageURL *string `json:"image_url"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked   bool      `gorm:"->" json:"user_has_liked"`
	TagRows []PostTag `gorm:"foreignKey:PostID" json:"-"`
	// Tags is the flattened tag list derived from TagRows
	Tags      []string  `gorm:"-" json:"tags"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	// EditedAt stays nil until the post is first updated
	EditedAt *time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Comment represents a comment on a post. Comments are owned by their post
// and removed with it.
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	Author    Profile   `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Like represents a user's like on a post.
// The combination of PostID and UserID is a set: cardinality 0 or 1.
type Like struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (l *Like) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// PostTag attaches a normalized (lower-cased, trimmed) tag to a post.
type PostTag struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	PostID string `gorm:"type:uuid;not null;index" json:"post_id"`
	Tag    string `gorm:"not null" json:"tag"`
}

// BeforeCreate assigns a fresh UUID primary key.
func (t *PostTag) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
