package store

import (
	"context"
	"database/sql"
	"fmt"
)

const roleColumns = "id, target_id, target_type, target_year, person_id, person_name, role, note, is_person, data"

// InsertRole appends one role record inside the same transaction as
// the document that owns it, so a later failure leaves no orphaned
// partial role set for that target.
func (t *Tx) InsertRole(ctx context.Context, row RoleRow) (int64, error) {
	res, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO person_roles (target_id, target_type, target_year, person_id, person_name, role, note, is_person, data)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.TargetID,
		string(row.TargetType),
		row.TargetYear,
		nullableString(row.PersonID),
		nullableString(row.PersonName),
		nullableString(row.Role),
		nullableString(row.Note),
		boolToInt(row.IsPerson),
		row.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("insert role for %s: %w", row.TargetID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// RolesForPerson returns a person's role records restricted to the
// given target types, in insertion order.
func (s *Store) RolesForPerson(ctx context.Context, personID string, types ...RoleType) ([]RoleRow, error) {
	query := `SELECT ` + roleColumns + ` FROM person_roles WHERE person_id = ?`
	args := []any{personID}
	if len(types) > 0 {
		query += ` AND target_type IN (` + makePlaceholders(len(types)) + `)`
		for _, t := range types {
			args = append(args, string(t))
		}
	}
	query += ` ORDER BY id`
	return s.queryRoles(ctx, query, args...)
}

// RolesForTarget returns every role record attached to one target.
func (s *Store) RolesForTarget(ctx context.Context, targetID string, targetType RoleType) ([]RoleRow, error) {
	return s.queryRoles(
		ctx,
		`SELECT `+roleColumns+` FROM person_roles WHERE target_id = ? AND target_type = ? ORDER BY id`,
		targetID,
		string(targetType),
	)
}

// RolesOnTargets returns the role records attached to any of the
// given targets, restricted to target types. This is the indexed
// lookup the collaborator computation runs on.
func (s *Store) RolesOnTargets(ctx context.Context, targetIDs []string, types ...RoleType) ([]RoleRow, error) {
	if len(targetIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + roleColumns + ` FROM person_roles WHERE target_id IN (` + makePlaceholders(len(targetIDs)) + `)`
	args := make([]any, 0, len(targetIDs)+len(types))
	for _, id := range targetIDs {
		args = append(args, id)
	}
	if len(types) > 0 {
		query += ` AND target_type IN (` + makePlaceholders(len(types)) + `)`
		for _, t := range types {
			args = append(args, string(t))
		}
	}
	query += ` ORDER BY id`
	return s.queryRoles(ctx, query, args...)
}

// RolesByType returns every role record of one target type, in
// insertion order. The by-role export indexes consume this.
func (s *Store) RolesByType(ctx context.Context, targetType RoleType) ([]RoleRow, error) {
	return s.queryRoles(
		ctx,
		`SELECT `+roleColumns+` FROM person_roles WHERE target_type = ? ORDER BY id`,
		string(targetType),
	)
}

// MaxRoleYear returns the latest academic year a person identity was
// active in, across every role context.
func (s *Store) MaxRoleYear(ctx context.Context, personID string) (int, bool, error) {
	var year sql.NullInt64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT MAX(target_year) FROM person_roles WHERE person_id = ?`,
		personID,
	).Scan(&year)
	if err != nil {
		return 0, false, fmt.Errorf("max role year: %w", err)
	}
	if !year.Valid {
		return 0, false, nil
	}
	return int(year.Int64), true, nil
}

func (s *Store) queryRoles(ctx context.Context, query string, args ...any) ([]RoleRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var roles []RoleRow
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, rows.Err()
}

func scanRole(scanner interface{ Scan(dest ...any) error }) (*RoleRow, error) {
	var (
		row        RoleRow
		targetType string
		personID   sql.NullString
		personName sql.NullString
		role       sql.NullString
		note       sql.NullString
		isPerson   int
	)
	if err := scanner.Scan(
		&row.ID,
		&row.TargetID,
		&targetType,
		&row.TargetYear,
		&personID,
		&personName,
		&role,
		&note,
		&isPerson,
		&row.Data,
	); err != nil {
		return nil, err
	}
	row.TargetType = RoleType(targetType)
	row.PersonID = personID.String
	row.PersonName = personName.String
	row.Role = role.String
	row.Note = note.String
	row.IsPerson = isPerson != 0
	return &row, nil
}
