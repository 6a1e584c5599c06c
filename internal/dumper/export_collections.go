package dumper

import (
	"context"
	"encoding/json"
	"fmt"

	"callboard/internal/models"
	"callboard/internal/playwrights"
	"callboard/internal/schema"
	"callboard/internal/shows"
)

func (d *Dumper) exportPlaywrights(ctx context.Context) error {
	collection, err := playwrights.List(ctx, d.st)
	if err != nil {
		return err
	}
	return d.writeFile("playwrights", "index", collection)
}

func (d *Dumper) exportPlays(ctx context.Context) error {
	collection, err := playwrights.Plays(ctx, d.st)
	if err != nil {
		return err
	}
	return d.writeFile("plays", "index", collection)
}

func (d *Dumper) exportVenues(ctx context.Context) error {
	rows, err := d.st.Venues(ctx)
	if err != nil {
		return err
	}

	var index []schema.VenueList
	for _, row := range rows {
		var src models.Venue
		if err := json.Unmarshal([]byte(row.Data), &src); err != nil {
			return fmt.Errorf("decode venue %s: %w", row.ID, err)
		}

		showRows, err := d.st.ShowsByVenue(ctx, row.ID)
		if err != nil {
			return err
		}
		listItems := make([]schema.ShowList, 0, len(showRows))
		for _, showRow := range showRows {
			showSrc, err := shows.Decode(showRow)
			if err != nil {
				return err
			}
			listItems = append(listItems, shows.ListItem(showRow, showSrc))
		}

		summary := schema.VenueList{
			ID:        row.ID,
			Title:     row.Title,
			City:      src.City,
			Built:     src.Built,
			ShowCount: len(listItems),
		}
		detail := schema.VenueDetail{
			VenueList: summary,
			Location:  src.Location,
			Images:    src.Images,
			Shows:     listItems,
			Content:   row.Content,
		}
		if err := d.writeFile("venues", row.ID, detail); err != nil {
			return err
		}
		index = append(index, summary)
		d.acc.Add(schema.SearchDocument{
			Type:      schema.SearchDocumentVenue,
			Title:     row.Title,
			ID:        row.ID,
			Plaintext: row.Plaintext,
		})
	}
	return d.writeFile("venues", "index", index)
}

func (d *Dumper) exportHistory(ctx context.Context) error {
	rows, err := d.st.HistoryRecords(ctx)
	if err != nil {
		return err
	}
	records := make([]schema.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, schema.HistoryRecord{
			Year:        row.Year,
			YearID:      row.AcademicYear,
			Title:       row.Title,
			Description: row.Description,
		})
	}
	return d.writeFile("history", "index", records)
}
