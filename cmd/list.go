package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/storage"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var (
	listMonth string
	listPrev  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries grouped by day",
	Long: `List the most recent entries grouped by day.
With --month only that month is shown; --prev steps one month back.
If the chosen month is empty the previous month is shown instead.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "Month to show (YYYY-MM)")
	listCmd.Flags().BoolVar(&listPrev, "prev", false, "Show the month before --month (or before the current month)")
}

func runList(cmd *cobra.Command, args []string) error {
	now := clock.Now()
	w := cmd.OutOrStdout()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if listMonth == "" && !listPrev {
		entries := loadEntries(cmd.Context(), "recent", func(ctx context.Context) ([]model.Entry, error) {
			return store.Recent(ctx, cfg.List.RecentLimit)
		})
		if len(entries) == 0 {
			fmt.Fprintln(w, "No entries yet. Log your first activity with: senti add <activity>")
			return nil
		}
		printGroups(w, journal.DayGroups(entries, clock))
		return nil
	}

	selected := journal.MonthOf(now)
	if listMonth != "" {
		if selected, err = journal.ParseMonth(listMonth); err != nil {
			return err
		}
	}
	if listPrev {
		selected = selected.AddMonths(-1)
	}

	showMonth(cmd.Context(), w, store, selected, now.Location())
	return nil
}

// showMonth prints one month of day groups. An empty month falls back to the
// month before it when that one has entries.
func showMonth(ctx context.Context, w io.Writer, store storage.Store, month journal.CalendarMonth, loc *time.Location) {
	previous := month.AddMonths(-1)
	from := previous.Start(loc)
	_, to := timecalc.MonthRange(month.Start(loc))
	entries := loadEntries(ctx, "month "+month.String(), func(ctx context.Context) ([]model.Entry, error) {
		return store.Range(ctx, from, to)
	})

	inMonth := journal.FilterByMonth(entries, month)
	if len(inMonth) > 0 {
		fmt.Fprintln(w, month.Title())
		fmt.Fprintln(w)
		printGroups(w, journal.DayGroups(inMonth, clock))
		return
	}

	fmt.Fprintf(w, "There are no entries in %s.\n", month.Title())
	inPrevious := journal.FilterByMonth(entries, previous)
	if len(inPrevious) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, previous.Title())
	fmt.Fprintln(w)
	printGroups(w, journal.DayGroups(inPrevious, clock))
}
