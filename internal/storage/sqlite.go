package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration

	"github.com/Tiliavir/sentimizer/internal/model"
	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

const entryColumns = `id, activity, note, feeling, date, source`

// SQLStore keeps entries in a single SQLite database file.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens (creating if needed) the database at path and migrates it.
func OpenSQL(path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("open store: create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection keeps writes serialised without relying on busy timeouts.
	db.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var activity, note, feeling sql.NullString
	var dateStr string
	if err := row.Scan(&e.ID, &activity, &note, &feeling, &dateStr, &e.Source); err != nil {
		return model.Entry{}, err
	}
	date, err := time.Parse(time.RFC3339Nano, dateStr)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parse date of %s: %w", e.ID, err)
	}
	e.Date = date
	e.Activity = fromNull(activity)
	e.Note = fromNull(note)
	e.Feeling = fromNull(feeling)
	return e, nil
}

func (s *SQLStore) query(ctx context.Context, op, q string, args ...any) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return entries, nil
}

func (s *SQLStore) Add(ctx context.Context, e model.Entry) error {
	if err := validateNew(e); err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, activity, note, feeling, date, date_unix, source) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, nullable(e.Activity), nullable(e.Note), nullable(e.Feeling),
		e.Date.Format(time.RFC3339Nano), e.Date.UnixNano(), e.Source)
	if err != nil {
		return fmt.Errorf("add entry: insert: %w", err)
	}
	return nil
}

func (s *SQLStore) Recent(ctx context.Context, limit int) ([]model.Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	return s.query(ctx, "recent entries",
		`SELECT `+entryColumns+` FROM entries ORDER BY date_unix DESC, rowid DESC LIMIT ?`, limit)
}

func (s *SQLStore) Range(ctx context.Context, from, to time.Time) ([]model.Entry, error) {
	return s.query(ctx, "range entries",
		`SELECT `+entryColumns+` FROM entries WHERE date_unix BETWEEN ? AND ? ORDER BY date_unix DESC, rowid DESC`,
		from.UnixNano(), to.UnixNano())
}

func (s *SQLStore) Get(ctx context.Context, id string) (model.Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLStore) SwapOrder(ctx context.Context, a, b string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("swap order: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	ea, err := scanEntry(tx.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, a))
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", a, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("swap order: %w", err)
	}
	eb, err := scanEntry(tx.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, b))
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", b, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("swap order: %w", err)
	}
	if !timecalc.SameDay(ea.Date, eb.Date) {
		return fmt.Errorf("cannot swap %s and %s: entries are on different days", a, b)
	}

	const update = `UPDATE entries SET date = ?, date_unix = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, update, eb.Date.Format(time.RFC3339Nano), eb.Date.UnixNano(), a); err != nil {
		return fmt.Errorf("swap order: update %s: %w", a, err)
	}
	if _, err := tx.ExecContext(ctx, update, ea.Date.Format(time.RFC3339Nano), ea.Date.UnixNano(), b); err != nil {
		return fmt.Errorf("swap order: update %s: %w", b, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("swap order: commit: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
