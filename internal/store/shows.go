package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const showColumns = "id, source_path, year, year_id, title, season_sort, date_start, date_end, venue_id, primary_image, data, content, plaintext"

// InsertShow writes one show record inside an ingestion transaction.
func (t *Tx) InsertShow(ctx context.Context, row ShowRow) error {
	_, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO shows (`+showColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID,
		row.SourcePath,
		row.Year,
		row.YearID,
		row.Title,
		nullableInt(row.SeasonSort),
		nullableString(row.DateStart),
		nullableString(row.DateEnd),
		nullableString(row.VenueID),
		nullableString(row.PrimaryImage),
		row.Data,
		nullableString(row.Content),
		nullableString(row.Plaintext),
	)
	if err != nil {
		return fmt.Errorf("insert show %s: %w", row.ID, err)
	}
	return nil
}

// SetShowPrimaryImage backfills a primary image chosen by the photo
// enrichment pass. Only runs during ingestion, before any export
// reads.
func (s *Store) SetShowPrimaryImage(ctx context.Context, showID, image string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE shows SET primary_image = ? WHERE id = ?`, nullableString(image), showID)
	if err != nil {
		return fmt.Errorf("set primary image for %s: %w", showID, err)
	}
	return nil
}

// ShowByID fetches one show record.
func (s *Store) ShowByID(ctx context.Context, id string) (*ShowRow, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+showColumns+` FROM shows WHERE id = ?`, id)
	show, err := scanShow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	return show, nil
}

// Shows returns every show in listing order.
func (s *Store) Shows(ctx context.Context) ([]ShowRow, error) {
	return s.queryShows(ctx, `SELECT `+showColumns+` FROM shows`+showOrder)
}

// ShowsByYear returns the shows of one academic year in listing
// order.
func (s *Store) ShowsByYear(ctx context.Context, yearID string) ([]ShowRow, error) {
	return s.queryShows(ctx, `SELECT `+showColumns+` FROM shows WHERE year_id = ?`+showOrder, yearID)
}

// ShowsByVenue returns the shows performed at one venue in listing
// order.
func (s *Store) ShowsByVenue(ctx context.Context, venueID string) ([]ShowRow, error) {
	return s.queryShows(ctx, `SELECT `+showColumns+` FROM shows WHERE venue_id = ?`+showOrder, venueID)
}

// ShowTitles returns the titles of the given shows, keyed by id.
func (s *Store) ShowTitles(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, title FROM shows WHERE id IN (`+makePlaceholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query show titles: %w", err)
	}
	defer rows.Close()

	titles := make(map[string]string, len(ids))
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		titles[id] = title
	}
	return titles, rows.Err()
}

// ShowCount returns the number of show records.
func (s *Store) ShowCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM shows`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count shows: %w", err)
	}
	return count, nil
}

func (s *Store) queryShows(ctx context.Context, query string, args ...any) ([]ShowRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowRow
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, *show)
	}
	return shows, rows.Err()
}

// showScan holds the scan destinations for one show row so joined
// queries can reuse them.
type showScan struct {
	id           string
	sourcePath   string
	year         int
	yearID       string
	title        string
	seasonSort   sql.NullInt64
	dateStart    sql.NullString
	dateEnd      sql.NullString
	venueID      sql.NullString
	primaryImage sql.NullString
	data         string
	content      sql.NullString
	plaintext    sql.NullString
}

func (sc *showScan) dest() []any {
	return []any{
		&sc.id,
		&sc.sourcePath,
		&sc.year,
		&sc.yearID,
		&sc.title,
		&sc.seasonSort,
		&sc.dateStart,
		&sc.dateEnd,
		&sc.venueID,
		&sc.primaryImage,
		&sc.data,
		&sc.content,
		&sc.plaintext,
	}
}

func (sc *showScan) materialize() ShowRow {
	row := ShowRow{
		ID:           sc.id,
		SourcePath:   sc.sourcePath,
		Year:         sc.year,
		YearID:       sc.yearID,
		Title:        sc.title,
		DateStart:    sc.dateStart.String,
		DateEnd:      sc.dateEnd.String,
		VenueID:      sc.venueID.String,
		PrimaryImage: sc.primaryImage.String,
		Data:         sc.data,
		Content:      sc.content.String,
		Plaintext:    sc.plaintext.String,
	}
	if sc.seasonSort.Valid {
		v := int(sc.seasonSort.Int64)
		row.SeasonSort = &v
	}
	return row
}

func scanShow(scanner interface{ Scan(dest ...any) error }) (*ShowRow, error) {
	var sc showScan
	if err := scanner.Scan(sc.dest()...); err != nil {
		return nil, err
	}
	row := sc.materialize()
	return &row, nil
}

func prefixedShowColumns(alias string) string {
	parts := strings.Split(showColumns, ", ")
	for i, part := range parts {
		parts[i] = alias + "." + part
	}
	return strings.Join(parts, ", ")
}
