package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// weekKeyPattern is the ISO-8601 week identifier, e.g. "2026-W09".
var weekKeyPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// ValidWeekKey reports whether weekKey matches YYYY-Www.
func ValidWeekKey(weekKey string) bool {
	return weekKeyPattern.MatchString(weekKey)
}

// CurrentWeekKey returns the ISO week key containing t.
func CurrentWeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// PreviousWeekKey returns the key one week before weekKey, clamped at
// week 01 within the same year. The clamp mirrors the simple arithmetic
// the planner's copy-previous-week feature has always used; a year
// boundary therefore repeats week 01 rather than crossing into the prior
// year.
func PreviousWeekKey(weekKey string) string {
	if !ValidWeekKey(weekKey) {
		return weekKey
	}
	week, err := strconv.Atoi(weekKey[len(weekKey)-2:])
	if err != nil {
		return weekKey
	}
	if week <= 1 {
		week = 1
	} else {
		week--
	}
	return fmt.Sprintf("%s%02d", weekKey[:len(weekKey)-2], week)
}
