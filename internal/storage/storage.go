package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Tiliavir/sentimizer/internal/model"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("entry not found")

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Store owns persisted journal entries. Every listing is newest-first.
type Store interface {
	Add(ctx context.Context, e model.Entry) error
	Recent(ctx context.Context, limit int) ([]model.Entry, error)
	Range(ctx context.Context, from, to time.Time) ([]model.Entry, error)
	Get(ctx context.Context, id string) (model.Entry, error)
	Delete(ctx context.Context, id string) error
	// SwapOrder exchanges the positions of two entries logged on the same day.
	SwapOrder(ctx context.Context, a, b string) error
	Close() error
}

// BaseDir returns the root data directory: $SENTI_HOME, or ~/.senti.
func BaseDir() (string, error) {
	if dir := os.Getenv("SENTI_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".senti"), nil
}

// Open returns the store for backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendJSON:
		return NewFileStore(dir), nil
	case BackendSQLite, "":
		return OpenSQL(filepath.Join(dir, "journal.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %q or %q)", backend, BackendSQLite, BackendJSON)
	}
}

// sortNewestFirst orders entries by date, newest first, keeping ties stable.
func sortNewestFirst(entries []model.Entry) {
	slices.SortStableFunc(entries, func(a, b model.Entry) int {
		return b.Date.Compare(a.Date)
	})
}

func validateNew(e model.Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry has no ID")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry %s has no date", e.ID)
	}
	return nil
}
