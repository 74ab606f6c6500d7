package journal

import (
	"fmt"
	"time"
)

// CalendarMonth identifies a year and month.
type CalendarMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) CalendarMonth {
	return CalendarMonth{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" value.
func ParseMonth(s string) (CalendarMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

// AddMonths moves m by n months, crossing year boundaries as needed.
func (m CalendarMonth) AddMonths(n int) CalendarMonth {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthOf(t)
}

// Contains reports whether t falls in m, using t's own calendar date.
func (m CalendarMonth) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Start returns the first instant of m in loc.
func (m CalendarMonth) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

func (m CalendarMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title renders m as e.g. "June 2024".
func (m CalendarMonth) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// FilterByMonth keeps the entries whose timestamp falls in month, in their
// input order.
func FilterByMonth(entries []Entry, month CalendarMonth) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if month.Contains(e.Timestamp) {
			out = append(out, e)
		}
	}
	return out
}
