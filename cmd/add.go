package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

var (
	addFeeling string
	addNote    string
	addAt      string
)

var addCmd = &cobra.Command{
	Use:   "add [activity]",
	Short: "Log an activity",
	Long: `Log an activity with an optional feeling and note.
Without an activity or feeling the configured defaults are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFeeling, "feeling", "", "How it felt (e.g. happy, calm, sad)")
	addCmd.Flags().StringVar(&addNote, "note", "", "Free-text description")
	addCmd.Flags().StringVar(&addAt, "at", "", "When it happened: HH:MM today, YYYY-MM-DD HH:MM or RFC3339 (default now)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	now := clock.Now()
	when, err := parseAt(addAt, now)
	if err != nil {
		return err
	}

	entry := model.Entry{
		ID:     timecalc.NewID(),
		Date:   when,
		Source: "manual",
	}
	if len(args) == 1 && args[0] != "" {
		entry.Activity = &args[0]
	}
	if addFeeling != "" {
		feeling := addFeeling
		entry.Feeling = &feeling
	}
	if addNote != "" {
		note := addNote
		entry.Note = &note
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Add(cmd.Context(), entry); err != nil {
		return err
	}
	logger.Debug("Added entry", zap.String("id", entry.ID), zap.Time("date", entry.Date))

	activity := cfg.Defaults.Activity
	if entry.Activity != nil {
		activity = *entry.Activity
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %q at %s [%s]\n", activity, when.Format("2006-01-02 15:04"), shortID(entry.ID))
	return nil
}

// parseAt resolves the --at flag relative to now.
func parseAt(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("invalid --at value %q: want HH:MM, YYYY-MM-DD HH:MM or RFC3339", s)
}
