package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

// dayFileLayout matches a day file path relative to the base directory.
const dayFileLayout = "2006/01/02.json"

// rangeWorkers bounds the number of day files read concurrently.
const rangeWorkers = 8

// offsetSlackDays widens a range scan on both sides. An entry is filed under
// its own offset's calendar date, which can be up to two days away from the
// date of the same instant in another zone (UTC-12 vs UTC+14).
const offsetSlackDays = 2

// FileStore keeps one human-readable JSON file per day under base.
type FileStore struct {
	base string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore rooted at base. Nothing is created until
// the first write.
func NewFileStore(base string) *FileStore {
	return &FileStore{base: base}
}

// dayFilePath returns the path for the given date's JSON file.
func dayFilePath(base string, t time.Time) string {
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".json")
}

// LoadDay loads the DayFile for the given date. Returns an empty DayFile if not found.
func LoadDay(base string, t time.Time) (model.DayFile, error) {
	path := dayFilePath(base, t)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.DayFile{Date: t.Format(timecalc.DayLayout), Entries: []model.Entry{}}, nil
	}
	if err != nil {
		return model.DayFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var df model.DayFile
	if err := json.Unmarshal(data, &df); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.DayFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return df, nil
}

// SaveDay atomically writes a DayFile for the given date. An empty day removes
// the file.
func SaveDay(base string, t time.Time, df model.DayFile) error {
	path := dayFilePath(base, t)
	if len(df.Entries) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("storage error removing %s: %w", path, err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	sortNewestFirst(df.Entries)
	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// UpdateEntry replaces or appends an entry in the DayFile for the given date.
func UpdateEntry(base string, day time.Time, entry model.Entry) error {
	df, err := LoadDay(base, day)
	if err != nil {
		return err
	}
	for i, e := range df.Entries {
		if e.ID == entry.ID {
			df.Entries[i] = entry
			return SaveDay(base, day, df)
		}
	}
	df.Entries = append(df.Entries, entry)
	return SaveDay(base, day, df)
}

// LoadRange loads all entries in [from, to] inclusive, newest first. Day files
// are read concurrently.
func LoadRange(ctx context.Context, base string, from, to time.Time) ([]model.Entry, error) {
	var days []time.Time
	last := to.AddDate(0, 0, offsetSlackDays)
	for d := timecalc.StartOfDay(from).AddDate(0, 0, -offsetSlackDays); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	perDay := make([][]model.Entry, len(days))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rangeWorkers)
	for i, d := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			df, err := LoadDay(base, d)
			if err != nil {
				return err
			}
			perDay[i] = df.Entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []model.Entry
	for _, es := range perDay {
		for _, e := range es {
			if e.Date.Before(from) || e.Date.After(to) {
				continue
			}
			entries = append(entries, e)
		}
	}
	sortNewestFirst(entries)
	return entries, nil
}

// dayFileDates lists the dates that have a day file, newest first.
func dayFileDates(base string) ([]time.Time, error) {
	var days []time.Time
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == base {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		// Anything that does not parse (temp files, backups, the database) is skipped.
		day, perr := time.ParseInLocation(dayFileLayout, filepath.ToSlash(rel), time.Local)
		if perr == nil {
			days = append(days, day)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage error listing %s: %w", base, err)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	return days, nil
}

// locate finds the day file holding id.
func (s *FileStore) locate(id string) (model.DayFile, time.Time, int, error) {
	days, err := dayFileDates(s.base)
	if err != nil {
		return model.DayFile{}, time.Time{}, -1, err
	}
	for _, day := range days {
		df, err := LoadDay(s.base, day)
		if err != nil {
			return model.DayFile{}, time.Time{}, -1, err
		}
		for i, e := range df.Entries {
			if e.ID == id {
				return df, day, i, nil
			}
		}
	}
	return model.DayFile{}, time.Time{}, -1, fmt.Errorf("%s: %w", id, ErrNotFound)
}

func (s *FileStore) Add(_ context.Context, e model.Entry) error {
	if err := validateNew(e); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return UpdateEntry(s.base, e.Date, e)
}

func (s *FileStore) Recent(ctx context.Context, limit int) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, err := dayFileDates(s.base)
	if err != nil {
		return nil, err
	}
	entries := []model.Entry{}
	for _, day := range days {
		if limit > 0 && len(entries) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		df, err := LoadDay(s.base, day)
		if err != nil {
			return nil, err
		}
		entries = append(entries, df.Entries...)
	}
	sortNewestFirst(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *FileStore) Range(ctx context.Context, from, to time.Time) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadRange(ctx, s.base, from, to)
}

func (s *FileStore) Get(_ context.Context, id string) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	df, _, i, err := s.locate(id)
	if err != nil {
		return model.Entry{}, err
	}
	return df.Entries[i], nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	df, day, i, err := s.locate(id)
	if err != nil {
		return err
	}
	df.Entries = slices.Delete(df.Entries, i, i+1)
	return SaveDay(s.base, day, df)
}

func (s *FileStore) SwapOrder(_ context.Context, a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	df, day, i, err := s.locate(a)
	if err != nil {
		return err
	}
	j := slices.IndexFunc(df.Entries, func(e model.Entry) bool { return e.ID == b })
	if j < 0 {
		if _, _, _, err := s.locate(b); err != nil {
			return err
		}
		return fmt.Errorf("cannot swap %s and %s: entries are on different days", a, b)
	}
	df.Entries[i].Date, df.Entries[j].Date = df.Entries[j].Date, df.Entries[i].Date
	return SaveDay(s.base, day, df)
}

func (s *FileStore) Close() error { return nil }
