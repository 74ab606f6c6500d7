package journal

import (
	"time"

	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"

	// dayLabelLayout renders e.g. "Sat, 1 Jun".
	dayLabelLayout = "Mon, 2 Jan"
)

// DayGroup is a contiguous run of entries sharing a display label.
type DayGroup struct {
	Label   string
	Entries []Entry
}

// DayLabel returns "Today", "Yesterday" or a short weekday and date for t,
// relative to now.
func DayLabel(t, now time.Time) string {
	switch {
	case timecalc.SameDay(t, now):
		return LabelToday
	case timecalc.SameDay(t, now.AddDate(0, 0, -1)):
		return LabelYesterday
	default:
		return t.Format(dayLabelLayout)
	}
}

// GroupByDay splits newest-first entries into runs by day label. labels and
// groups are index-aligned.
//
// Each entry is compared with the most recently opened group only, so a day
// that appears twice with something in between yields two groups with the
// same label. Input order is never changed.
func GroupByDay(entries []Entry, clock Clock) (labels []string, groups [][]Entry) {
	labels = []string{}
	groups = [][]Entry{}
	if len(entries) == 0 {
		return labels, groups
	}

	now := clock.Now()
	for _, e := range entries {
		label := DayLabel(e.Timestamp, now)
		if n := len(labels); n == 0 || labels[n-1] != label {
			labels = append(labels, label)
			groups = append(groups, []Entry{})
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], e)
	}
	return labels, groups
}

// DayGroups is GroupByDay with the two sequences zipped together.
func DayGroups(entries []Entry, clock Clock) []DayGroup {
	labels, groups := GroupByDay(entries, clock)
	out := make([]DayGroup, len(labels))
	for i := range labels {
		out[i] = DayGroup{Label: labels[i], Entries: groups[i]}
	}
	return out
}
