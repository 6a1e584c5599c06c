package dumper

import (
	"context"

	"callboard/internal/schema"
	"callboard/internal/shows"
)

func (d *Dumper) exportShows(ctx context.Context) error {
	rows, err := d.st.Shows(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		detail, err := shows.Detail(ctx, d.st, row)
		if err != nil {
			return err
		}
		if err := d.writeFile("shows", row.ID, detail); err != nil {
			return err
		}
		d.acc.Add(schema.SearchDocument{
			Type:       schema.SearchDocumentShow,
			Title:      detail.Title,
			ID:         row.ID,
			Playwright: detail.Playwright,
			Company:    detail.Company,
			People:     shows.PeopleNames(detail),
			Plaintext:  row.Plaintext,
		})
	}
	return nil
}
