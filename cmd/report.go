package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var (
	reportMonth  string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Count feelings and activities for a month",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Month to report (YYYY-MM, default current month)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

// tally is a label with how often it occurred.
type tally struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type monthReport struct {
	Month      string  `json:"month"`
	Total      int     `json:"total"`
	Feelings   []tally `json:"feelings"`
	Activities []tally `json:"activities"`
}

// countBy tallies key over entries, most frequent first, ties alphabetical.
func countBy(entries []journal.Entry, key func(journal.Entry) string) []tally {
	counts := map[string]int{}
	for _, e := range entries {
		counts[key(e)]++
	}
	out := make([]tally, 0, len(counts))
	for label, n := range counts {
		out = append(out, tally{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func buildReport(month journal.CalendarMonth, entries []journal.Entry) monthReport {
	inMonth := journal.FilterByMonth(entries, month)
	return monthReport{
		Month:      month.String(),
		Total:      len(inMonth),
		Feelings:   countBy(inMonth, func(e journal.Entry) string { return e.Sentiment }),
		Activities: countBy(inMonth, func(e journal.Entry) string { return e.Activity }),
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	now := clock.Now()
	month := journal.MonthOf(now)
	if reportMonth != "" {
		var err error
		if month, err = journal.ParseMonth(reportMonth); err != nil {
			return err
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	from, to := timecalc.MonthRange(month.Start(now.Location()))
	entries := loadEntries(cmd.Context(), "report "+month.String(), func(ctx context.Context) ([]model.Entry, error) {
		return store.Range(ctx, from, to)
	})

	return printReport(cmd.OutOrStdout(), buildReport(month, entries), reportFormat)
}

func printReport(w io.Writer, r monthReport, format string) error {
	switch format {
	case "csv":
		fmt.Fprintln(w, "kind,label,count")
		for _, t := range r.Feelings {
			fmt.Fprintf(w, "feeling,%s,%d\n", csvEscape(t.Label), t.Count)
		}
		for _, t := range r.Activities {
			fmt.Fprintf(w, "activity,%s,%d\n", csvEscape(t.Label), t.Count)
		}
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md", "":
		fmt.Fprintf(w, "Month %s – %d entries\n", r.Month, r.Total)
		fmt.Fprintln(w, "--------------------------------")
		fmt.Fprintln(w, "Feelings")
		for _, t := range r.Feelings {
			fmt.Fprintf(w, "  %-20s%d\n", t.Label, t.Count)
		}
		fmt.Fprintln(w, "Activities")
		for _, t := range r.Activities {
			fmt.Fprintf(w, "  %-20s%d\n", t.Label, t.Count)
		}
		fmt.Fprintln(w, "--------------------------------")
	default:
		return fmt.Errorf("unknown format %q (want md, csv or json)", format)
	}
	return nil
}
