package store

import (
	"context"
	"fmt"
)

// Each record table pairs the indexed columns query paths need with a
// `data` column holding the full validated record as JSON. The
// indexed columns are written from the same decoded record in the
// same statement, which keeps them consistent with the payload.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS shows (
        id TEXT PRIMARY KEY,
        source_path TEXT NOT NULL,
        year INTEGER NOT NULL,
        year_id TEXT NOT NULL,
        title TEXT NOT NULL,
        season_sort INTEGER,
        date_start TEXT,
        date_end TEXT,
        venue_id TEXT,
        primary_image TEXT,
        data TEXT NOT NULL,
        content TEXT,
        plaintext TEXT
    )`,
	`CREATE INDEX IF NOT EXISTS idx_shows_year_id ON shows (year_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_season_sort ON shows (season_sort)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_date_start ON shows (date_start)`,
	`CREATE TABLE IF NOT EXISTS people (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        graduated INTEGER,
        headshot TEXT,
        data TEXT NOT NULL,
        content TEXT,
        plaintext TEXT
    )`,
	`CREATE INDEX IF NOT EXISTS idx_people_graduated ON people (graduated)`,
	`CREATE TABLE IF NOT EXISTS venues (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        data TEXT NOT NULL,
        content TEXT,
        plaintext TEXT
    )`,
	`CREATE TABLE IF NOT EXISTS person_roles (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        target_id TEXT NOT NULL,
        target_type TEXT NOT NULL,
        target_year INTEGER NOT NULL,
        person_id TEXT,
        person_name TEXT,
        role TEXT,
        note TEXT,
        is_person INTEGER NOT NULL,
        data TEXT NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_person_roles_target ON person_roles (target_id, target_type)`,
	`CREATE INDEX IF NOT EXISTS idx_person_roles_person ON person_roles (person_id)`,
	`CREATE INDEX IF NOT EXISTS idx_person_roles_role ON person_roles (role)`,
	`CREATE TABLE IF NOT EXISTS playwright_shows (
        playwright_id TEXT NOT NULL,
        playwright_name TEXT NOT NULL,
        show_id TEXT NOT NULL,
        PRIMARY KEY (playwright_id, show_id)
    )`,
	`CREATE TABLE IF NOT EXISTS history_records (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        year TEXT NOT NULL,
        academic_year TEXT,
        title TEXT NOT NULL,
        description TEXT NOT NULL
    )`,
}

var tableNames = []string{"shows", "people", "venues", "person_roles", "playwright_shows", "history_records"}

func (s *Store) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
