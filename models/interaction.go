package models

import "time"

// ArticleRead marks an article as read by a user, created on first interaction.
type ArticleRead struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_reads_user_article"`
	ArticleID string    `json:"article_id" gorm:"not null;uniqueIndex:idx_article_reads_user_article"`
	ReadAt    time.Time `json:"read_at"`
}

type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_article"`
	ArticleID string    `json:"article_id" gorm:"not null;uniqueIndex:idx_favorites_user_article"`
	CreatedAt time.Time `json:"created_at"`
}
