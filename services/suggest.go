package services

import (
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/tpeo/attendbot/models"
)

// Typos further than this from any real abbreviation get no
// suggestion; offering "did you mean" across half the alphabet helps
// nobody.
const maxSuggestDistance = 2

// SuggestAbbrev picks the known event abbreviation closest to a
// mistyped one. Returns false when nothing is close enough. Input is
// matched case-insensitively; the suggestion keeps the sheet's casing.
func SuggestAbbrev(input string, events []models.EventDefinition) (string, bool) {
	if len(events) == 0 || input == "" {
		return "", false
	}
	byLower := make(map[string]string, len(events))
	keys := make([]string, 0, len(events))
	for _, e := range events {
		lower := strings.ToLower(e.Abbrev)
		byLower[lower] = e.Abbrev
		keys = append(keys, lower)
	}
	// bag size 1 matters: the sheet's abbreviations run as short as
	// two letters, and 2-3 grams alone share nothing with a typo of
	// a 2-letter key
	cm := closestmatch.New(keys, []int{1, 2, 3})
	best := cm.Closest(strings.ToLower(input))
	if best == "" {
		return "", false
	}
	dist := levenshtein.DistanceForStrings(
		[]rune(strings.ToLower(input)), []rune(best), levenshtein.DefaultOptions)
	if dist > maxSuggestDistance {
		return "", false
	}
	return byLower[best], true
}
