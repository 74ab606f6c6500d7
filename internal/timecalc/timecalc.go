package timecalc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayLayout is the layout used for day arguments and day file names.
const DayLayout = "2006-01-02"

// NewID creates a unique entry ID.
func NewID() string {
	return uuid.NewString()
}

// FormatMinutes formats a minute count as "1h 40m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	monday = StartOfDay(monday)
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// DaysInWeek returns the start of each day of the ISO week containing t,
// Monday first.
func DaysInWeek(t time.Time) []time.Time {
	monday, _ := WeekRange(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// MonthRange returns the first and last instant of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, EndOfDay(last)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDay parses a YYYY-MM-DD argument in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}
