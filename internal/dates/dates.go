// Package dates holds the calendar-date helpers shared by the upstream
// facade, the date resolution service and the HTTP layer.
package dates

import (
	"strings"
	"time"
)

const (
	// Layout is the dd-MM-yyyy form used on the upstream wire.
	Layout = "02-01-2006"
	// InputLayout is the yyyy-MM-dd form used by HTML date inputs and query strings.
	InputLayout = "2006-01-02"
)

// Day truncates t to midnight in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ArchiveStart is the first date the archive holds data for.
func ArchiveStart(loc *time.Location) time.Time {
	return time.Date(2022, time.January, 1, 0, 0, 0, 0, loc)
}

// Format renders t as dd-MM-yyyy.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a dd-MM-yyyy date in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(Layout, strings.TrimSpace(s), loc)
}

// FormatInput renders t as yyyy-MM-dd.
func FormatInput(t time.Time) string {
	return t.Format(InputLayout)
}

// ParseInput reads a yyyy-MM-dd date in loc.
func ParseInput(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(InputLayout, strings.TrimSpace(s), loc)
}
