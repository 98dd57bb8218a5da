package models

import "time"

// Issue selection provenance. Only selections the user made explicitly are
// trusted when resolving the current issue; anything else is legacy state and
// gets discarded on read.
const (
	IssueSourceUser = "user"
)

// UserPreference stores a viewer's explicitly chosen issue, e.g. "April 2025".
type UserPreference struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	Issue     string    `json:"issue"`
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
}
