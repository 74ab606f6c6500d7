package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/sentimizer/internal/config"
	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/storage"
)

var (
	verbose    bool
	configPath string

	logger = zap.NewNop()
	cfg    config.Config
	clock  journal.Clock = journal.SystemClock{}
)

var rootCmd = &cobra.Command{
	Use:   "senti",
	Short: "Sentimizer – log what you do and how it feels",
	Long: `senti is a small mood and activity journal.
Entries are grouped by day (Today, Yesterday, Sat, 1 Jun, ...) and can be
browsed by month or split into morning, afternoon, evening and night.
Data lives in ~/.senti/ unless configured otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		c, err := config.Load(configPath, logger)
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("Loaded config",
			zap.String("backend", cfg.Storage.Backend),
			zap.String("dir", cfg.Storage.Dir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.senti/config.json)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}

func openStore() (storage.Store, error) {
	s, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s store in %s: %w", cfg.Storage.Backend, cfg.Storage.Dir, err)
	}
	return s, nil
}

// loadEntries runs a store query for a read-only view. A failing store is
// logged and shown as empty; records without a timestamp are skipped.
func loadEntries(ctx context.Context, scope string, load func(context.Context) ([]model.Entry, error)) []journal.Entry {
	recs, err := load(ctx)
	if err != nil {
		logger.Error("Loading entries failed", zap.String("scope", scope), zap.Error(err))
		return nil
	}
	entries, rejected := journal.FromRecords(recs, cfg.JournalDefaults())
	for _, id := range rejected {
		logger.Warn("Skipping entry without timestamp", zap.String("id", id))
	}
	logger.Debug("Loaded entries", zap.String("scope", scope), zap.Int("count", len(entries)))
	return entries
}
