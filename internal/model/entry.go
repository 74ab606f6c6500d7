package model

import "time"

// Entry is a single logged activity as persisted by a store.
// Optional fields are pointers so a missing value can be told apart from an
// empty one; the journal adapter fills them from configured defaults.
type Entry struct {
	ID       string    `json:"id" yaml:"id"`
	Activity *string   `json:"activity" yaml:"activity"`
	Note     *string   `json:"note" yaml:"note"`
	Feeling  *string   `json:"feeling" yaml:"feeling"`
	Date     time.Time `json:"date" yaml:"date"`
	Source   string    `json:"source" yaml:"source"`
}

// DayFile is the top-level structure stored in each daily JSON file.
type DayFile struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}
