package validation

import (
	"strings"
	"time"
)

// MaxAgeYears bounds how far in the past a birth date may be.
const MaxAgeYears = 100

var birthDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// ParseDate reads a calendar date in the location of now. Both the HTML date
// input format and the pt-BR dd/mm/yyyy format are accepted.
func ParseDate(value string, now time.Time) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, now.Location())
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// IsValidBirthDate accepts dates between today minus MaxAgeYears and today,
// both inclusive, compared by calendar day in the location of now.
// Unparseable input is simply invalid.
func IsValidBirthDate(value string, now time.Time) bool {
	date, ok := ParseDate(value, now)
	if !ok {
		return false
	}
	today := startOfDay(now)
	earliest := today.AddDate(-MaxAgeYears, 0, 0)
	return !date.Before(earliest) && !date.After(today)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
