package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var (
	exportFormat string
	exportMonth  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to stdout",
	Long: `Export entries to stdout. Without --month the most recent entries are
exported (see list.recent_limit in the config).`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, md")
	exportCmd.Flags().StringVar(&exportMonth, "month", "", "Only export this month (YYYY-MM)")
}

// exportEntry is the flat shape written by the json and yaml formats.
type exportEntry struct {
	ID              string    `json:"id" yaml:"id"`
	Date            time.Time `json:"date" yaml:"date"`
	Day             string    `json:"day" yaml:"day"`
	Section         string    `json:"section" yaml:"section"`
	Activity        string    `json:"activity" yaml:"activity"`
	Feeling         string    `json:"feeling" yaml:"feeling"`
	Note            string    `json:"note" yaml:"note"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
}

func toExport(entries []journal.Entry) []exportEntry {
	out := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, exportEntry{
			ID:              e.ID,
			Date:            e.Timestamp,
			Day:             e.Timestamp.Format(timecalc.DayLayout),
			Section:         journal.SectionOf(e.Timestamp).String(),
			Activity:        e.Activity,
			Feeling:         e.Sentiment,
			Note:            e.Note,
			DurationMinutes: e.DurationMinutes,
		})
	}
	return out
}

func runExport(cmd *cobra.Command, args []string) error {
	now := clock.Now()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var entries []journal.Entry
	if exportMonth != "" {
		month, err := journal.ParseMonth(exportMonth)
		if err != nil {
			return err
		}
		from, to := timecalc.MonthRange(month.Start(now.Location()))
		entries = loadEntries(cmd.Context(), "export "+month.String(), func(ctx context.Context) ([]model.Entry, error) {
			return store.Range(ctx, from, to)
		})
		entries = journal.FilterByMonth(entries, month)
	} else {
		entries = loadEntries(cmd.Context(), "export recent", func(ctx context.Context) ([]model.Entry, error) {
			return store.Recent(ctx, cfg.List.RecentLimit)
		})
	}

	return writeExport(cmd.OutOrStdout(), entries, exportFormat)
}

func writeExport(w io.Writer, entries []journal.Entry, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(toExport(entries), "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toExport(entries)); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
	case "md":
		printGroups(w, journal.DayGroups(entries, clock))
	case "csv", "":
		printCSV(w, entries)
	default:
		return fmt.Errorf("unknown format %q (want csv, json, yaml or md)", format)
	}
	return nil
}

func printCSV(w io.Writer, entries []journal.Entry) {
	fmt.Fprintln(w, "date,time,section,activity,feeling,note,duration_minutes,id")
	for _, e := range entries {
		fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%d,%s\n",
			e.Timestamp.Format(timecalc.DayLayout),
			e.Timestamp.Format("15:04"),
			journal.SectionOf(e.Timestamp),
			csvEscape(e.Activity),
			csvEscape(e.Sentiment),
			csvEscape(e.Note),
			e.DurationMinutes,
			e.ID,
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
