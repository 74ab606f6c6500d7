// Package journal groups journal entries for display: day groups with
// Today/Yesterday labels, calendar month filters and time-of-day sections.
//
// Every function here is a pure computation over the slice it is given. Nothing
// touches a store, and nothing returns an error; records that cannot become an
// entry are dropped by the adapter before they reach the engine.
package journal

import (
	"time"

	"github.com/Tiliavir/sentimizer/internal/model"
)

// Entry is one logged activity as the engine sees it.
type Entry struct {
	ID              string
	Timestamp       time.Time
	Activity        string
	Note            string
	Sentiment       string
	DurationMinutes int
}

// Defaults holds the values substituted for fields a record leaves empty.
type Defaults struct {
	Activity        string
	Sentiment       string
	DurationMinutes int
}

// DefaultValues returns the built-in fallbacks downstream display relies on.
func DefaultValues() Defaults {
	return Defaults{
		Activity:        "senting",
		Sentiment:       "happy",
		DurationMinutes: 10,
	}
}

// FromRecord converts a stored record into an Entry. It reports false for a
// record without a timestamp.
func FromRecord(rec model.Entry, d Defaults) (Entry, bool) {
	if rec.Date.IsZero() {
		return Entry{}, false
	}
	e := Entry{
		ID:              rec.ID,
		Timestamp:       rec.Date,
		Activity:        d.Activity,
		Sentiment:       d.Sentiment,
		DurationMinutes: d.DurationMinutes,
	}
	if rec.Activity != nil {
		e.Activity = *rec.Activity
	}
	if rec.Note != nil {
		e.Note = *rec.Note
	}
	if rec.Feeling != nil {
		e.Sentiment = *rec.Feeling
	}
	return e, true
}

// FromRecords converts records in order, returning the IDs of any it had to
// reject so the caller can report them.
func FromRecords(recs []model.Entry, d Defaults) (entries []Entry, rejected []string) {
	entries = make([]Entry, 0, len(recs))
	for _, rec := range recs {
		e, ok := FromRecord(rec, d)
		if !ok {
			rejected = append(rejected, rec.ID)
			continue
		}
		entries = append(entries, e)
	}
	return entries, rejected
}
