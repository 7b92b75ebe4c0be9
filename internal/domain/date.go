package domain

import "time"

// DateLayout is the canonical text form of a calendar date.
const DateLayout = "2006-01-02"

// Date returns the calendar date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date returning a pointer, for optional date fields.
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// CivilDate drops the time-of-day and location from t, keeping its calendar date.
func CivilDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysBetween returns the number of calendar days from start to end.
// The result is negative when end precedes start. It is computed from Unix
// seconds because time.Duration saturates at about 292 years.
func DaysBetween(start, end time.Time) int {
	s, e := CivilDate(start), CivilDate(end)
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// FormatDate renders an optional date as YYYY-MM-DD, or "" when absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
