package services

import "magazine-cms/models"

// PositionSentinel is used when the sibling query fails. It parks the article
// safely at the end of the issue instead of propagating the error.
const PositionSentinel = 999

// Sibling is the slice of an article the position policy looks at.
type Sibling struct {
	Keywords []string
	Position *int
}

// ComputePosition decides where in an issue a new or re-tagged article lands.
// Rules are evaluated in strict priority order and the first match wins.
// Siblings must already be sorted ascending by display position, absent
// positions first.
func ComputePosition(keywords []string, siblings []Sibling) int {
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}

	// Venue articles always lead the issue.
	if kw[models.KeywordVenue] {
		return 1
	}

	if len(siblings) == 0 {
		return 1
	}

	// Lists go strictly after everything else.
	if kw[models.KeywordLists] {
		return maxPosition(siblings) + 1
	}

	if kw[models.KeywordOTT] {
		return insertAfterAnchors(siblings, models.KeywordVenue, models.KeywordOTT)
	}

	if kw[models.KeywordTMM] {
		return insertAfterAnchors(siblings, models.KeywordVenue, models.KeywordOTT, models.KeywordTMM)
	}

	// Plain articles slot in just before the first "lists" article. Repeated
	// inserts can share that position; the newest-first timestamp tie-break
	// keeps their relative order at read time.
	for i, s := range siblings {
		if hasAnyKeyword(s.Keywords, models.KeywordLists) {
			if s.Position != nil {
				return *s.Position
			}
			return i + 1
		}
	}
	return maxPosition(siblings) + 1
}

// insertAfterAnchors walks the sorted siblings while each one carries an
// anchor tag, then inserts immediately before the first article that does not.
func insertAfterAnchors(siblings []Sibling, anchors ...string) int {
	position := 1
	for i, s := range siblings {
		if hasAnyKeyword(s.Keywords, anchors...) {
			position = positionOrZero(s) + 1
			continue
		}
		if s.Position != nil {
			return *s.Position
		}
		return i + 1
	}
	// Every sibling matched; append after the last anchor.
	return position
}

func hasAnyKeyword(keywords []string, wanted ...string) bool {
	for _, k := range keywords {
		for _, w := range wanted {
			if k == w {
				return true
			}
		}
	}
	return false
}

func positionOrZero(s Sibling) int {
	if s.Position == nil {
		return 0
	}
	return *s.Position
}

func maxPosition(siblings []Sibling) int {
	max := 0
	for _, s := range siblings {
		if s.Position != nil && *s.Position > max {
			max = *s.Position
		}
	}
	return max
}

func siblingsOf(articles []models.Article, excludeID string) []Sibling {
	siblings := make([]Sibling, 0, len(articles))
	for _, a := range articles {
		if a.ID == excludeID {
			continue
		}
		siblings = append(siblings, Sibling{Keywords: a.Keywords, Position: a.DisplayPosition})
	}
	return siblings
}
