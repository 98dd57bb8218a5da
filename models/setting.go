package models

import "time"

// Setting keys used by the issue resolver.
const (
	SettingDisplayIssue = "display_issue"
	SettingDisplayMonth = "display_month"
	SettingDisplayYear  = "display_year"
	SettingLatestIssue  = "latest_issue"
	SettingLatestMonth  = "latest_month"
	SettingLatestYear   = "latest_year"
	SettingDefaultIssue = "default_issue"
)

// Setting is a generic key-value config record. Values may be raw strings or
// JSON-encoded strings depending on who wrote them.
type Setting struct {
	Key       string    `json:"key" gorm:"primarykey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
