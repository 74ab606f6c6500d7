package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/storage"
)

func TestLoadDayNotExist(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	df, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay on missing file: %v", err)
	}
	if df.Date != "2026-02-27" {
		t.Errorf("LoadDay date = %q, want %q", df.Date, "2026-02-27")
	}
	if len(df.Entries) != 0 {
		t.Errorf("LoadDay entries = %d, want 0", len(df.Entries))
	}
}

func TestSaveDayAndLoadDay(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

	activity := "Walking"
	df := model.DayFile{
		Date: "2026-02-27",
		Entries: []model.Entry{
			{ID: "early", Activity: &activity, Date: day.Add(8 * time.Hour), Source: "manual"},
			{ID: "late", Activity: &activity, Date: day.Add(20 * time.Hour), Source: "manual"},
		},
	}

	if err := storage.SaveDay(base, day, df); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	loaded, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay after save: %v", err)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("LoadDay entries = %d, want 2", len(loaded.Entries))
	}
	if loaded.Entries[0].ID != "late" {
		t.Errorf("LoadDay first entry = %q, want newest first", loaded.Entries[0].ID)
	}
	if loaded.Entries[0].Activity == nil || *loaded.Entries[0].Activity != activity {
		t.Errorf("LoadDay activity = %v, want %q", loaded.Entries[0].Activity, activity)
	}
}

func TestSaveDayEmptyRemovesFile(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	if err := storage.UpdateEntry(base, day, model.Entry{ID: "e1", Date: day}); err != nil {
		t.Fatal(err)
	}
	if err := storage.SaveDay(base, day, model.DayFile{Date: "2026-02-27"}); err != nil {
		t.Fatalf("SaveDay empty: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "2026", "02", "27.json")); !os.IsNotExist(err) {
		t.Errorf("expected day file to be removed, stat err = %v", err)
	}
}

func TestLoadDayCorruptIsBackedUp(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

	// Write corrupt JSON directly to the path.
	path := filepath.Join(base, "2026", "02", "27.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := storage.LoadDay(base, day)
	if err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	if _, err2 := os.Stat(path + ".corrupt"); os.IsNotExist(err2) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestUpdateEntry(t *testing.T) {
	base := t.TempDir()
	day := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)

	entry := model.Entry{ID: "e1", Date: day, Source: "manual"}
	if err := storage.UpdateEntry(base, day, entry); err != nil {
		t.Fatalf("UpdateEntry (insert): %v", err)
	}

	note := "updated note"
	entry.Note = &note
	if err := storage.UpdateEntry(base, day, entry); err != nil {
		t.Fatalf("UpdateEntry (update): %v", err)
	}

	df, err := storage.LoadDay(base, day)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(df.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(df.Entries))
	}
	if df.Entries[0].Note == nil || *df.Entries[0].Note != note {
		t.Errorf("note = %v, want %q", df.Entries[0].Note, note)
	}
}

func TestLoadRangeAcrossDays(t *testing.T) {
	base := t.TempDir()
	for d := 1; d <= 5; d++ {
		ts := time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
		if err := storage.UpdateEntry(base, ts, model.Entry{ID: ts.Format("0102"), Date: ts}); err != nil {
			t.Fatal(err)
		}
	}

	from := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 4, 23, 59, 59, 0, time.UTC)
	got, err := storage.LoadRange(context.Background(), base, from, to)
	if err != nil {
		t.Fatalf("LoadRange: %v", err)
	}
	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	want := []string{"0604", "0603", "0602"}
	if len(ids) != len(want) {
		t.Fatalf("LoadRange ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("LoadRange ids = %v, want %v", ids, want)
			break
		}
	}
}

func TestFileStoreIgnoresForeignFiles(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "config.json"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	ts := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	if err := storage.UpdateEntry(base, ts, model.Entry{ID: "e1", Date: ts}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "2024", "06", "02.json.corrupt"), []byte("{bad"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := storage.NewFileStore(base).Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("Recent = %+v, want only e1", got)
	}
}
