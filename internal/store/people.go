package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrPersonExists reports a canonical-identity collision between two
// person documents. The loader logs it and drops the second record.
var ErrPersonExists = errors.New("person id already in use")

const personColumns = "id, title, graduated, headshot, data, content, plaintext"

// InsertPerson writes one person record inside an ingestion
// transaction. A colliding id yields ErrPersonExists.
func (t *Tx) InsertPerson(ctx context.Context, row PersonRow) error {
	var exists int
	err := t.tx.QueryRowContext(ctx, `SELECT 1 FROM people WHERE id = ?`, row.ID).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrPersonExists, row.ID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check person %s: %w", row.ID, err)
	}

	_, err = t.tx.ExecContext(
		ctx,
		`INSERT INTO people (`+personColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID,
		row.Title,
		nullableInt(row.Graduated),
		nullableString(row.Headshot),
		row.Data,
		nullableString(row.Content),
		nullableString(row.Plaintext),
	)
	if err != nil {
		return fmt.Errorf("insert person %s: %w", row.ID, err)
	}
	return nil
}

// PersonByID fetches one person record.
func (s *Store) PersonByID(ctx context.Context, id string) (*PersonRow, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM people WHERE id = ?`, id)
	person, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

// People returns every explicit person record ordered by id.
func (s *Store) People(ctx context.Context) ([]PersonRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []PersonRow
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, *person)
	}
	return people, rows.Err()
}

// PeopleSummaries returns title and headshot for the given ids,
// keyed by id. Identities without a person record are absent.
func (s *Store) PeopleSummaries(ctx context.Context, ids []string) (map[string]PersonSummary, error) {
	if len(ids) == 0 {
		return map[string]PersonSummary{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, title, headshot FROM people WHERE id IN (`+makePlaceholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query people summaries: %w", err)
	}
	defer rows.Close()

	summaries := make(map[string]PersonSummary)
	for rows.Next() {
		var (
			id       string
			title    string
			headshot sql.NullString
		)
		if err := rows.Scan(&id, &title, &headshot); err != nil {
			return nil, err
		}
		summaries[id] = PersonSummary{Title: title, Headshot: headshot.String}
	}
	return summaries, rows.Err()
}

// VirtualPeople returns the distinct person identities known only
// through role mentions, ordered by id. Non-person credits are
// excluded.
func (s *Store) VirtualPeople(ctx context.Context) ([]RoleRef, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT person_id, person_name FROM person_roles
         WHERE person_id IS NOT NULL AND is_person = 1
           AND person_id NOT IN (SELECT id FROM people)
         GROUP BY person_id ORDER BY person_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query virtual people: %w", err)
	}
	defer rows.Close()

	var refs []RoleRef
	for rows.Next() {
		var ref RoleRef
		if err := rows.Scan(&ref.PersonID, &ref.PersonName); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// PersonCount returns the number of distinct person identities, real
// and virtual combined.
func (s *Store) PersonCount(ctx context.Context) (int, error) {
	var real, virtual int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM people`).Scan(&real); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(DISTINCT person_id) FROM person_roles
         WHERE person_id IS NOT NULL AND is_person = 1
           AND person_id NOT IN (SELECT id FROM people)`,
	).Scan(&virtual)
	if err != nil {
		return 0, fmt.Errorf("count virtual people: %w", err)
	}
	return real + virtual, nil
}

func scanPerson(scanner interface{ Scan(dest ...any) error }) (*PersonRow, error) {
	var (
		row         PersonRow
		graduated   sql.NullInt64
		headshot    sql.NullString
		htmlContent sql.NullString
		plaintext   sql.NullString
	)
	if err := scanner.Scan(
		&row.ID,
		&row.Title,
		&graduated,
		&headshot,
		&row.Data,
		&htmlContent,
		&plaintext,
	); err != nil {
		return nil, err
	}
	if graduated.Valid {
		v := int(graduated.Int64)
		row.Graduated = &v
	}
	row.Headshot = headshot.String
	row.Content = htmlContent.String
	row.Plaintext = plaintext.String
	return &row, nil
}
