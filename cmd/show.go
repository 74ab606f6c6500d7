package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/storage"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of one entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// fullIDLen is the length of a canonical UUID string.
const fullIDLen = 36

// resolveID expands a unique ID prefix as printed by the list views.
func resolveID(ctx context.Context, store storage.Store, prefix string) (string, error) {
	if len(prefix) >= fullIDLen {
		return prefix, nil
	}
	all, err := store.Recent(ctx, 0)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, e := range all {
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s: %w", prefix, storage.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID prefix %q is ambiguous (%d entries)", prefix, len(matches))
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := resolveID(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	rec, err := store.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	e, ok := journal.FromRecord(rec, cfg.JournalDefaults())
	if !ok {
		return fmt.Errorf("entry %s has no timestamp", id)
	}
	printDetail(cmd.OutOrStdout(), e)
	return nil
}

func printDetail(w io.Writer, e journal.Entry) {
	fmt.Fprintln(w, e.Activity)
	fmt.Fprintf(w, "  Day:       %s\n", journal.DayLabel(e.Timestamp, clock.Now()))
	fmt.Fprintf(w, "  Time:      %s (%s)\n", e.Timestamp.Format("15:04"), journal.SectionOf(e.Timestamp))
	fmt.Fprintf(w, "  Duration:  %s\n", timecalc.FormatMinutes(e.DurationMinutes))
	fmt.Fprintf(w, "  Feeling:   %s\n", e.Sentiment)
	if e.Note != "" {
		fmt.Fprintf(w, "  Note:      %s\n", e.Note)
	}
	fmt.Fprintf(w, "  ID:        %s\n", e.ID)
}
