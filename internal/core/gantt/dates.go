package gantt

import "time"

// All engine math happens on UTC midnights so that day arithmetic is exact
// and independent of the caller's timezone or time-of-day.

const day = 24 * time.Hour

// dateOnly truncates a timestamp to its calendar day at UTC midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Sunday beginning the week containing t.
func startOfWeek(t time.Time) time.Time {
	t = dateOnly(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// endOfWeek returns the Saturday ending the week containing t.
func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 6)
}

// diffDays returns the whole-day distance from a to b. Both arguments must
// already be UTC midnights.
func diffDays(a, b time.Time) int {
	return int(b.Sub(a) / day)
}
