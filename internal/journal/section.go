package journal

import "time"

// TimeSection is a coarse time-of-day bucket.
type TimeSection int

const (
	Morning TimeSection = iota
	Afternoon
	Evening
	Night
)

// sectionStart is the first hour (inclusive) of each section. Night runs from
// midnight up to Morning.
var sectionStart = [...]int{
	Morning:   6,
	Afternoon: 12,
	Evening:   18,
	Night:     0,
}

var sectionNames = [...]string{
	Morning:   "Morning",
	Afternoon: "Afternoon",
	Evening:   "Evening",
	Night:     "Night",
}

// Sections returns every section in display order.
func Sections() []TimeSection {
	return []TimeSection{Morning, Afternoon, Evening, Night}
}

func (s TimeSection) String() string {
	if s < Morning || s > Night {
		return "Unknown"
	}
	return sectionNames[s]
}

// StartHour returns the first hour belonging to s.
func (s TimeSection) StartHour() int {
	return sectionStart[s]
}

// SectionOf returns the section for t's hour in t's own location.
func SectionOf(t time.Time) TimeSection {
	h := t.Hour()
	switch {
	case h >= sectionStart[Evening]:
		return Evening
	case h >= sectionStart[Afternoon]:
		return Afternoon
	case h >= sectionStart[Morning]:
		return Morning
	default:
		return Night
	}
}

// SectionByTimeOfDay buckets a day's entries by hour. Every section is present
// in the result, possibly empty, and entries keep their relative order.
func SectionByTimeOfDay(entries []Entry) map[TimeSection][]Entry {
	out := make(map[TimeSection][]Entry, len(sectionNames))
	for _, s := range Sections() {
		out[s] = []Entry{}
	}
	for _, e := range entries {
		s := SectionOf(e.Timestamp)
		out[s] = append(out[s], e)
	}
	return out
}
