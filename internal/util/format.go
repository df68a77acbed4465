package util

import (
	"fmt"
	"time"
)

// Helper functions shared by the renderers.

// FormatDate renders a calendar date without its time component.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateShort renders a compact month/day label for column headers.
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 02")
}

// FormatDateRange renders an inclusive date range.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s → %s", FormatDate(start), FormatDate(end))
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDayCount pluralizes a whole-day duration.
func FormatDayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
