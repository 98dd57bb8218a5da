package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string     `json:"id" gorm:"primarykey;type:uuid"`
	ArticleID string     `json:"article_id" gorm:"not null;index"`
	UserID    uint       `json:"user_id" gorm:"not null"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Body      string     `json:"body" gorm:"type:text;not null"`
	Deleted   bool       `json:"deleted" gorm:"not null;default:false"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommentView records that a user has seen a comment. One row per user and
// comment; marking an already-seen comment is a no-op upsert.
type CommentView struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_views_user_comment"`
	CommentID string    `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_views_user_comment"`
	ViewedAt  time.Time `json:"viewed_at"`
}
