package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show one day split into morning, afternoon, evening and night",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

var weekCmd = &cobra.Command{
	Use:   "week [YYYY-MM-DD]",
	Short: "Show every day of the week containing the given day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeek,
}

// dayArg returns the requested day, defaulting to today.
func dayArg(args []string, now time.Time) (time.Time, error) {
	if len(args) == 0 {
		return timecalc.StartOfDay(now), nil
	}
	return timecalc.ParseDay(args[0], now.Location())
}

func runDay(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args, clock.Now())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries := loadEntries(cmd.Context(), "day "+day.Format(timecalc.DayLayout), func(ctx context.Context) ([]model.Entry, error) {
		return store.Range(ctx, timecalc.StartOfDay(day), timecalc.EndOfDay(day))
	})
	printDay(cmd.OutOrStdout(), day, entries)
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args, clock.Now())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	from, to := timecalc.WeekRange(day)
	entries := loadEntries(cmd.Context(), "week "+from.Format(timecalc.DayLayout), func(ctx context.Context) ([]model.Entry, error) {
		return store.Range(ctx, from, to)
	})

	w := cmd.OutOrStdout()
	for i, d := range timecalc.DaysInWeek(day) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		var ofDay []journal.Entry
		for _, e := range entries {
			if timecalc.SameDay(e.Timestamp, d) {
				ofDay = append(ofDay, e)
			}
		}
		printDay(w, d, ofDay)
	}
	return nil
}
