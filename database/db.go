package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Foreign keys are declared but not enforced: deleting a list or a
	// reminder intentionally leaves dependents in place, so the pragma
	// stays off. See the no-cascade notes in DESIGN.md.
	return &DB{db}, nil
}

// Migrate issues the idempotent schema batch. It only ever creates what is
// absent; there is no versioning and no destructive migration.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '#007AFF',
			icon TEXT NOT NULL DEFAULT 'list-bulleted',
			createdAt TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER,
			title TEXT,
			note TEXT,
			date TEXT,
			time TEXT,
			location TEXT,
			priority TEXT,
			flag INTEGER,
			whenMessaging INTEGER,
			imageUri TEXT,
			url TEXT,
			isCompleted INTEGER DEFAULT 0,
			createdAt TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (list_id) REFERENCES lists(id)
		)`,

		`CREATE TABLE IF NOT EXISTS sub_reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER,
			title TEXT,
			isDone INTEGER DEFAULT 0,
			FOREIGN KEY (parent_id) REFERENCES reminders(id)
		)`,

		// Indexes for the filtered fetches and badge counts
		`CREATE INDEX IF NOT EXISTS idx_reminders_list ON reminders(list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_completed ON reminders(isCompleted)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_flag ON reminders(flag)`,
		`CREATE INDEX IF NOT EXISTS idx_sub_reminders_parent ON sub_reminders(parent_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
