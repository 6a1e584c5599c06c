package store

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertHistoryRecord appends one written-history entry inside an
// ingestion transaction.
func (t *Tx) InsertHistoryRecord(ctx context.Context, row HistoryRow) error {
	_, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO history_records (year, academic_year, title, description) VALUES (?, ?, ?, ?)`,
		row.Year,
		nullableString(row.AcademicYear),
		row.Title,
		row.Description,
	)
	if err != nil {
		return fmt.Errorf("insert history record %q: %w", row.Title, err)
	}
	return nil
}

// HistoryRecords returns every written-history entry in insertion
// order.
func (s *Store) HistoryRecords(ctx context.Context) ([]HistoryRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT year, academic_year, title, description FROM history_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query history records: %w", err)
	}
	defer rows.Close()

	var records []HistoryRow
	for rows.Next() {
		var (
			record       HistoryRow
			academicYear sql.NullString
		)
		if err := rows.Scan(&record.Year, &academicYear, &record.Title, &record.Description); err != nil {
			return nil, err
		}
		record.AcademicYear = academicYear.String
		records = append(records, record)
	}
	return records, rows.Err()
}
