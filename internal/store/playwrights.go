package store

import (
	"context"
	"fmt"
)

// InsertPlaywrightShow links a playwright identity to a show. One
// link exists per (playwright, show) pair.
func (t *Tx) InsertPlaywrightShow(ctx context.Context, row PlaywrightShowRow) error {
	_, err := t.tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO playwright_shows (playwright_id, playwright_name, show_id) VALUES (?, ?, ?)`,
		row.PlaywrightID,
		row.PlaywrightName,
		row.ShowID,
	)
	if err != nil {
		return fmt.Errorf("insert playwright show %s/%s: %w", row.PlaywrightID, row.ShowID, err)
	}
	return nil
}

// PlaywrightShows returns every playwright link joined with its show,
// ordered by playwright id then the show listing order.
func (s *Store) PlaywrightShows(ctx context.Context) ([]PlaywrightShowJoin, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT ps.playwright_id, ps.playwright_name, `+prefixedShowColumns("s")+`
         FROM playwright_shows ps
         JOIN shows s ON ps.show_id = s.id
         ORDER BY ps.playwright_id, (s.season_sort IS NULL), s.season_sort, (s.date_start IS NULL), s.date_start, s.rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("query playwright shows: %w", err)
	}
	defer rows.Close()

	var joins []PlaywrightShowJoin
	for rows.Next() {
		var (
			join PlaywrightShowJoin
			sc   showScan
		)
		dest := append([]any{&join.PlaywrightID, &join.PlaywrightName}, sc.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		join.Show = sc.materialize()
		joins = append(joins, join)
	}
	return joins, rows.Err()
}
