package dumper

import (
	"context"
	"encoding/json"
	"fmt"

	"callboard/internal/schema"
	"callboard/internal/shows"
	"callboard/internal/store"
	"callboard/internal/years"
)

func (d *Dumper) exportYears(ctx context.Context) error {
	var index []schema.YearList
	for year := d.cfg.Build.YearStart; year <= d.cfg.Build.YearEnd; year++ {
		detail, err := d.yearDetail(ctx, year)
		if err != nil {
			return err
		}
		if err := d.writeFile("years", detail.YearID, detail); err != nil {
			return err
		}
		index = append(index, detail.YearList)
		d.acc.Add(schema.SearchDocument{
			Type:  schema.SearchDocumentYear,
			Title: detail.Title,
			ID:    detail.YearID,
		})
	}
	return d.writeFile("years", "index", index)
}

func (d *Dumper) yearDetail(ctx context.Context, year int) (schema.YearDetail, error) {
	yearID := years.ID(year)

	rows, err := d.st.ShowsByYear(ctx, yearID)
	if err != nil {
		return schema.YearDetail{}, err
	}
	listItems := make([]schema.ShowList, 0, len(rows))
	for _, row := range rows {
		src, err := shows.Decode(row)
		if err != nil {
			return schema.YearDetail{}, err
		}
		listItems = append(listItems, shows.ListItem(row, src))
	}

	committeeRecords, err := d.st.RolesForTarget(ctx, yearID, store.RoleTypeCommittee)
	if err != nil {
		return schema.YearDetail{}, err
	}
	committee := make([]schema.PersonRole, 0, len(committeeRecords))
	for _, record := range committeeRecords {
		var role schema.PersonRole
		if err := json.Unmarshal([]byte(record.Data), &role); err != nil {
			return schema.YearDetail{}, fmt.Errorf("decode committee role %d: %w", record.ID, err)
		}
		committee = append(committee, role)
	}

	return schema.YearDetail{
		YearList: schema.YearList{
			Title:     years.Title(year),
			Decade:    years.Decade(year),
			YearID:    yearID,
			StartYear: year,
			GradYear:  year + 1,
			ShowCount: len(listItems),
		},
		Shows:     listItems,
		Committee: committee,
	}, nil
}
