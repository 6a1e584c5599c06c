package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const venueColumns = "id, title, data, content, plaintext"

// InsertVenue writes one venue record inside an ingestion
// transaction.
func (t *Tx) InsertVenue(ctx context.Context, row VenueRow) error {
	_, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO venues (`+venueColumns+`) VALUES (?, ?, ?, ?, ?)`,
		row.ID,
		row.Title,
		row.Data,
		nullableString(row.Content),
		nullableString(row.Plaintext),
	)
	if err != nil {
		return fmt.Errorf("insert venue %s: %w", row.ID, err)
	}
	return nil
}

// Venues returns every venue record ordered by id.
func (s *Store) Venues(ctx context.Context) ([]VenueRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	var venues []VenueRow
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *venue)
	}
	return venues, rows.Err()
}

// VenueByID fetches one venue record.
func (s *Store) VenueByID(ctx context.Context, id string) (*VenueRow, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
	venue, err := scanVenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return venue, nil
}

func scanVenue(scanner interface{ Scan(dest ...any) error }) (*VenueRow, error) {
	var (
		row         VenueRow
		htmlContent sql.NullString
		plaintext   sql.NullString
	)
	if err := scanner.Scan(&row.ID, &row.Title, &row.Data, &htmlContent, &plaintext); err != nil {
		return nil, err
	}
	row.Content = htmlContent.String
	row.Plaintext = plaintext.String
	return &row, nil
}
