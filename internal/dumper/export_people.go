package dumper

import (
	"context"
	"encoding/json"
	"fmt"

	"callboard/internal/models"
	"callboard/internal/people"
	"callboard/internal/schema"
)

func (d *Dumper) exportRealPeople(ctx context.Context) error {
	rows, err := d.st.People(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		var src models.Person
		if err := json.Unmarshal([]byte(row.Data), &src); err != nil {
			return fmt.Errorf("decode person %s: %w", row.ID, err)
		}
		detail, err := d.personDetail(ctx, row.ID, row.Title, row.Graduated, row.Content)
		if err != nil {
			return err
		}
		detail.Submitted = src.Submitted
		detail.Headshot = src.Headshot
		detail.Award = src.Award

		if err := d.writePerson(detail); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) exportVirtualPeople(ctx context.Context) error {
	refs, err := d.st.VirtualPeople(ctx)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		detail, err := d.personDetail(ctx, ref.PersonID, ref.PersonName, nil, "")
		if err != nil {
			return err
		}
		if err := d.writePerson(detail); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) personDetail(ctx context.Context, id, title string, explicitGraduation *int, content string) (schema.PersonDetail, error) {
	showRoles, err := people.ShowRoles(ctx, d.st, id)
	if err != nil {
		return schema.PersonDetail{}, err
	}
	committeeRoles, err := people.CommitteeRoles(ctx, d.st, id)
	if err != nil {
		return schema.PersonDetail{}, err
	}
	graduated, err := people.Graduation(ctx, d.st, id, explicitGraduation, d.now)
	if err != nil {
		return schema.PersonDetail{}, err
	}
	return schema.PersonDetail{
		ID:             id,
		Title:          title,
		Graduated:      graduated,
		ShowRoles:      showRoles,
		CommitteeRoles: committeeRoles,
		Content:        content,
	}, nil
}

func (d *Dumper) writePerson(detail schema.PersonDetail) error {
	if err := d.writeFile("people", detail.ID, detail); err != nil {
		return err
	}
	d.acc.Add(schema.SearchDocument{
		Type:  schema.SearchDocumentPerson,
		Title: detail.Title,
		ID:    detail.ID,
	})
	return nil
}
