package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Greet and summarise today",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := clock.Now()
	w := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	today := loadEntries(cmd.Context(), "today", func(ctx context.Context) ([]model.Entry, error) {
		return store.Range(ctx, timecalc.StartOfDay(now), timecalc.EndOfDay(now))
	})

	fmt.Fprintln(w, greeting(now, cfg.Nickname))
	if len(today) == 0 {
		fmt.Fprintln(w, "Nothing logged today.")
		return nil
	}

	// Newest first, so the first entry is the latest.
	last := today[0]
	fmt.Fprintf(w, "Today: %d logged, last %q at %s (%s).\n",
		len(today), last.Activity, last.Timestamp.Format("15:04"), last.Sentiment)
	return nil
}
