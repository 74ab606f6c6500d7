package storage

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 1

// Migrate ensures the SQLite schema exists and is upgraded to SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// date keeps the RFC3339Nano text with the logged offset; date_unix orders.
	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			activity TEXT NULL,
			note TEXT NULL,
			feeling TEXT NULL,
			date TEXT NOT NULL,
			date_unix INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create entries table: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_entries_date_unix ON entries(date_unix);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_entries_date_unix: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}
	return nil
}
