package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

// shortIDLen is how much of an ID list views print; commands accept any
// unique prefix.
const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// printEntry prints one entry line: time, activity, sentiment, duration, note.
func printEntry(w io.Writer, indent string, e journal.Entry) {
	note := ""
	if e.Note != "" {
		note = "  " + strings.ReplaceAll(e.Note, "\n", " ")
	}
	fmt.Fprintf(w, "%s%s  %-14s %-10s %5s  [%s]%s\n",
		indent,
		e.Timestamp.Format("15:04"),
		e.Activity,
		e.Sentiment,
		timecalc.FormatMinutes(e.DurationMinutes),
		shortID(e.ID),
		note,
	)
}

// printGroups prints day groups under their labels.
func printGroups(w io.Writer, groups []journal.DayGroup) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.Label)
		for _, e := range g.Entries {
			printEntry(w, "  ", e)
		}
	}
}

// dayTitle renders the heading of a single day, e.g. "Tue, 4. Jun".
func dayTitle(day time.Time) string {
	return day.Format("Mon, 2. Jan")
}

// printSections prints a day's entries under time-of-day headings, skipping
// empty sections.
func printSections(w io.Writer, entries []journal.Entry) {
	sections := journal.SectionByTimeOfDay(entries)
	for _, s := range journal.Sections() {
		es := sections[s]
		if len(es) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s (from %02d:00)\n", s, s.StartHour())
		for _, e := range es {
			printEntry(w, "    ", e)
		}
	}
}

// printDay prints the title and sectioned entries of one day.
func printDay(w io.Writer, day time.Time, entries []journal.Entry) {
	fmt.Fprintln(w, dayTitle(day))
	if len(entries) == 0 {
		fmt.Fprintln(w, "  There are no entries for this day. Add entries or choose another.")
		return
	}
	printSections(w, entries)
}

// greeting returns e.g. "Good morning, Sam" for the section t falls in.
func greeting(t time.Time, nickname string) string {
	g := "Good " + strings.ToLower(journal.SectionOf(t).String())
	if nickname == "" {
		return g
	}
	return g + ", " + nickname
}
