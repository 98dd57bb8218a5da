package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Keywords with a defined meaning for display ordering and listing. Everything
// else is free-text tagging with no enforced vocabulary.
const (
	KeywordVenue = "venue"
	KeywordLists = "lists"
	KeywordOTT   = "ott"
	KeywordTMM   = "tmm"
	// KeywordList marks evergreen reference articles shown in every issue.
	KeywordList = "list"
)

type Article struct {
	ID              string     `json:"id" gorm:"primarykey;type:uuid"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description"`
	Content         string     `json:"content" gorm:"type:text"`
	Summary         string     `json:"summary" gorm:"type:text"`
	Author          string     `json:"author"`
	Keywords        []string   `json:"keywords" gorm:"serializer:json;type:json"`
	ImageURL        string     `json:"image_url"`
	SourceURL       string     `json:"source_url"`
	Month           *int       `json:"month" gorm:"index:idx_articles_issue"`
	Year            *int       `json:"year" gorm:"index:idx_articles_issue"`
	DisplayPosition *int       `json:"display_position"`
	Deleted         bool       `json:"deleted" gorm:"not null;default:false;index"`
	DeletedAt       *time.Time `json:"deleted_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// HasKeyword reports whether the article carries the given keyword.
func (a *Article) HasKeyword(keyword string) bool {
	for _, k := range a.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}
