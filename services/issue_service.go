package services

import (
	"errors"
	"strconv"
	"strings"

	"magazine-cms/models"
	"magazine-cms/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var monthNumbers = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// IssueContext identifies the issue a viewer is operating against. Month and
// year are nil when no issue could be resolved, in which case listings fall
// back to evergreen articles only.
type IssueContext struct {
	Month   *int   `json:"month"`
	Year    *int   `json:"year"`
	Display string `json:"display"`
}

// ParseIssueString parses "<MonthName> <Year>", e.g. "April 2025". The input
// must be exactly two whitespace-separated tokens with a full, case-sensitive
// English month name; anything else yields nil month and year.
func ParseIssueString(text string) (month, year *int) {
	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return nil, nil
	}

	m, ok := monthNumbers[tokens[0]]
	if !ok {
		return nil, nil
	}

	y, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, nil
	}

	return &m, &y
}

type IssueService interface {
	Resolve(explicit string, userID uint) IssueContext
	SetPreference(userID uint, issue string) error
	GetPreference(userID uint) (*models.UserPreference, error)
	LatestIssue() IssueContext
}

type issueService struct {
	settingRepo repositories.SettingRepository
	prefRepo    repositories.PreferenceRepository
	log         zerolog.Logger
}

func NewIssueService(settingRepo repositories.SettingRepository, prefRepo repositories.PreferenceRepository, log zerolog.Logger) IssueService {
	return &issueService{
		settingRepo: settingRepo,
		prefRepo:    prefRepo,
		log:         log.With().Str("component", "issue_service").Logger(),
	}
}

// Resolve picks the issue to operate against: an explicit caller-supplied
// string wins, then the viewer's stored selection when it was explicitly
// chosen by them, then the server-stored default. Stored selections without
// user provenance are legacy state; they are deleted rather than trusted.
func (s *issueService) Resolve(explicit string, userID uint) IssueContext {
	if explicit != "" {
		month, year := ParseIssueString(explicit)
		return IssueContext{Month: month, Year: year, Display: explicit}
	}

	if userID != 0 {
		pref, err := s.prefRepo.GetByUserID(userID)
		if err == nil {
			if pref.Source == models.IssueSourceUser {
				month, year := ParseIssueString(pref.Issue)
				return IssueContext{Month: month, Year: year, Display: pref.Issue}
			}
			if err := s.prefRepo.DeleteByUserID(userID); err != nil {
				s.log.Warn().Err(err).Uint("user_id", userID).Msg("failed to clear legacy issue selection")
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().Err(err).Uint("user_id", userID).Msg("failed to read issue selection")
		}
	}

	return s.serverDefault()
}

func (s *issueService) serverDefault() IssueContext {
	display := s.settingValue(models.SettingDisplayIssue)
	if display == "" {
		display = s.settingValue(models.SettingDefaultIssue)
	}

	month := s.settingInt(models.SettingDisplayMonth)
	year := s.settingInt(models.SettingDisplayYear)
	if month == nil || year == nil {
		month, year = ParseIssueString(display)
	}

	return IssueContext{Month: month, Year: year, Display: display}
}

// LatestIssue reads the most recently published issue from settings.
func (s *issueService) LatestIssue() IssueContext {
	display := s.settingValue(models.SettingLatestIssue)

	month := s.settingInt(models.SettingLatestMonth)
	year := s.settingInt(models.SettingLatestYear)
	if month == nil || year == nil {
		month, year = ParseIssueString(display)
	}

	return IssueContext{Month: month, Year: year, Display: display}
}

func (s *issueService) SetPreference(userID uint, issue string) error {
	pref := &models.UserPreference{
		UserID: userID,
		Issue:  issue,
		Source: models.IssueSourceUser,
	}
	return s.prefRepo.Save(pref)
}

func (s *issueService) GetPreference(userID uint) (*models.UserPreference, error) {
	return s.prefRepo.GetByUserID(userID)
}

// settingValue reads a setting and strips exactly one layer of surrounding
// quotes; values may be stored raw or JSON-encoded.
func (s *issueService) settingValue(key string) string {
	setting, err := s.settingRepo.Get(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to read setting")
		}
		return ""
	}
	return unquote(setting.Value)
}

func (s *issueService) settingInt(key string) *int {
	value := s.settingValue(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}
