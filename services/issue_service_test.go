package services

import (
	"testing"

	"magazine-cms/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseIssueString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		month *int
		year  *int
	}{
		{name: "valid", input: "April 2025", month: pos(4), year: pos(2025)},
		{name: "december", input: "December 1999", month: pos(12), year: pos(1999)},
		{name: "abbreviated month", input: "Apr 2025"},
		{name: "missing separator", input: "April2025"},
		{name: "extra token", input: "April 2025 extra"},
		{name: "lowercase month", input: "april 2025"},
		{name: "bad year", input: "April twenty"},
		{name: "empty", input: ""},
		{name: "single token", input: "April"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := ParseIssueString(tt.input)
			if tt.month == nil {
				assert.Nil(t, month)
				assert.Nil(t, year)
				return
			}
			if assert.NotNil(t, month) && assert.NotNil(t, year) {
				assert.Equal(t, *tt.month, *month)
				assert.Equal(t, *tt.year, *year)
			}
		})
	}
}

func TestResolveExplicitWinsOverEverything(t *testing.T) {
	prefRepo := newFakePreferenceRepo()
	prefRepo.prefs[7] = &models.UserPreference{UserID: 7, Issue: "May 2024", Source: models.IssueSourceUser}
	settings := &fakeSettingRepo{values: map[string]string{
		models.SettingDisplayIssue: "June 2024",
	}}
	svc := NewIssueService(settings, prefRepo, zerolog.Nop())

	issue := svc.Resolve("April 2025", 7)

	assert.Equal(t, "April 2025", issue.Display)
	assert.Equal(t, 4, *issue.Month)
	assert.Equal(t, 2025, *issue.Year)
}

func TestResolveUsesUserSelection(t *testing.T) {
	prefRepo := newFakePreferenceRepo()
	prefRepo.prefs[7] = &models.UserPreference{UserID: 7, Issue: "May 2024", Source: models.IssueSourceUser}
	svc := NewIssueService(&fakeSettingRepo{}, prefRepo, zerolog.Nop())

	issue := svc.Resolve("", 7)

	assert.Equal(t, "May 2024", issue.Display)
	assert.Equal(t, 5, *issue.Month)
	assert.Equal(t, 2024, *issue.Year)
}

func TestResolveDiscardsAndClearsLegacySelection(t *testing.T) {
	prefRepo := newFakePreferenceRepo()
	prefRepo.prefs[7] = &models.UserPreference{UserID: 7, Issue: "May 2024", Source: ""}
	settings := &fakeSettingRepo{values: map[string]string{
		models.SettingDisplayIssue: "June 2024",
	}}
	svc := NewIssueService(settings, prefRepo, zerolog.Nop())

	issue := svc.Resolve("", 7)

	// legacy record is not trusted and gets deleted so it cannot resurface
	assert.Equal(t, "June 2024", issue.Display)
	assert.Contains(t, prefRepo.deleted, uint(7))
	assert.NotContains(t, prefRepo.prefs, uint(7))
}

func TestResolveServerDefaultStripsQuotes(t *testing.T) {
	settings := &fakeSettingRepo{values: map[string]string{
		models.SettingDisplayIssue: `"June 2024"`,
		models.SettingDisplayMonth: `"6"`,
		models.SettingDisplayYear:  "2024",
	}}
	svc := NewIssueService(settings, newFakePreferenceRepo(), zerolog.Nop())

	issue := svc.Resolve("", 0)

	assert.Equal(t, "June 2024", issue.Display)
	assert.Equal(t, 6, *issue.Month)
	assert.Equal(t, 2024, *issue.Year)
}

func TestResolveServerDefaultParsesIssueStringWhenMonthYearMissing(t *testing.T) {
	settings := &fakeSettingRepo{values: map[string]string{
		models.SettingDisplayIssue: "March 2023",
	}}
	svc := NewIssueService(settings, newFakePreferenceRepo(), zerolog.Nop())

	issue := svc.Resolve("", 0)

	assert.Equal(t, 3, *issue.Month)
	assert.Equal(t, 2023, *issue.Year)
}

func TestResolveUnresolvableFallsBackToNils(t *testing.T) {
	svc := NewIssueService(&fakeSettingRepo{}, newFakePreferenceRepo(), zerolog.Nop())

	issue := svc.Resolve("not an issue string at all", 0)

	assert.Nil(t, issue.Month)
	assert.Nil(t, issue.Year)
	assert.Equal(t, "not an issue string at all", issue.Display)
}

func TestLatestIssueFromSettings(t *testing.T) {
	settings := &fakeSettingRepo{values: map[string]string{
		models.SettingLatestIssue: "July 2025",
		models.SettingLatestMonth: "7",
		models.SettingLatestYear:  "2025",
	}}
	svc := NewIssueService(settings, newFakePreferenceRepo(), zerolog.Nop())

	issue := svc.LatestIssue()

	assert.Equal(t, "July 2025", issue.Display)
	assert.Equal(t, 7, *issue.Month)
	assert.Equal(t, 2025, *issue.Year)
}

func TestSetPreferenceRecordsUserProvenance(t *testing.T) {
	prefRepo := newFakePreferenceRepo()
	svc := NewIssueService(&fakeSettingRepo{}, prefRepo, zerolog.Nop())

	err := svc.SetPreference(7, "August 2025")

	assert.NoError(t, err)
	assert.Equal(t, models.IssueSourceUser, prefRepo.prefs[7].Source)
	assert.Equal(t, "August 2025", prefRepo.prefs[7].Issue)
}
