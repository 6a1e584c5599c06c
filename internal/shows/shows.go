// Package shows assembles the show detail and listing views from
// stored rows and their source records.
package shows

import (
	"context"
	"encoding/json"
	"fmt"

	"callboard/internal/assets"
	"callboard/internal/identity"
	"callboard/internal/models"
	"callboard/internal/playwrights"
	"callboard/internal/schema"
	"callboard/internal/store"
)

// Decode recovers the validated source record stored with a show row.
func Decode(row store.ShowRow) (models.Show, error) {
	var src models.Show
	if err := json.Unmarshal([]byte(row.Data), &src); err != nil {
		return models.Show{}, fmt.Errorf("decode show %s: %w", row.ID, err)
	}
	return src, nil
}

// Roles builds the credited role list for a cast or crew block,
// annotating each person with headshot and bio availability from the
// people table. Credits that resolve to no identity keep their display
// name but carry no bio.
func Roles(ctx context.Context, st *store.Store, refs []models.PersonRef) ([]schema.ShowRole, error) {
	var ids []string
	for _, ref := range refs {
		if ref.Person && ref.Name != "" {
			ids = append(ids, identity.Of(ref.Name))
		}
	}
	summaries, err := st.PeopleSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]schema.ShowRole, 0, len(refs))
	for _, ref := range refs {
		role := schema.ShowRole{Role: ref.Role, Note: ref.Note}
		if ref.Name != "" {
			personID := ""
			if ref.Person {
				personID = identity.Of(ref.Name)
			}
			summary, hasBio := summaries[personID]
			role.Person = &schema.PersonList{
				ID:       personID,
				Name:     ref.Name,
				IsPerson: ref.Person,
				Headshot: summary.Headshot,
				HasBio:   hasBio,
			}
		}
		out = append(out, role)
	}
	return out, nil
}

// ListItem builds the abbreviated show document used in year, venue,
// and playwright listings.
func ListItem(row store.ShowRow, src models.Show) schema.ShowList {
	return schema.ShowList{
		ID:           row.ID,
		Title:        row.Title,
		Playwright:   playwrights.Classify(src),
		Adaptor:      src.Adaptor,
		Devised:      src.Devised,
		Season:       src.Season,
		DateStart:    src.DateStart,
		DateEnd:      src.DateEnd,
		PrimaryImage: row.PrimaryImage,
	}
}

// Detail builds the full show document.
func Detail(ctx context.Context, st *store.Store, row store.ShowRow) (schema.ShowDetail, error) {
	src, err := Decode(row)
	if err != nil {
		return schema.ShowDetail{}, err
	}

	cast, err := Roles(ctx, st, src.Cast)
	if err != nil {
		return schema.ShowDetail{}, err
	}
	crew, err := Roles(ctx, st, src.Crew)
	if err != nil {
		return schema.ShowDetail{}, err
	}

	credit := playwrights.Classify(src)

	var play *schema.PlayShow
	if credit != nil && credit.Name != "" {
		play = &schema.PlayShow{ID: playwrights.PlayID(row.Title), Title: row.Title}
	}

	var venue *schema.VenueRef
	if src.Venue != "" {
		venue = &schema.VenueRef{ID: identity.Of(src.Venue), Name: src.Venue}
	}

	trivia := make([]schema.Trivia, 0, len(src.Trivia))
	for _, item := range src.Trivia {
		trivia = append(trivia, schema.Trivia{
			Quote:     item.Quote,
			Name:      item.Name,
			Submitted: item.Submitted,
		})
	}

	return schema.ShowDetail{
		ID:             row.ID,
		Title:          row.Title,
		Play:           play,
		Playwright:     credit,
		Adaptor:        src.Adaptor,
		Translator:     src.Translator,
		Company:        src.Company,
		Period:         src.Period,
		Season:         src.Season,
		Venue:          venue,
		DateStart:      src.DateStart,
		DateEnd:        src.DateEnd,
		Trivia:         trivia,
		Cast:           cast,
		Crew:           crew,
		CastIncomplete: src.CastIncomplete,
		CastNote:       src.CastNote,
		CrewIncomplete: src.CrewIncomplete,
		CrewNote:       src.CrewNote,
		ProdShots:      src.ProdShots,
		Assets:         assets.Convert(src.Assets),
		PrimaryImage:   row.PrimaryImage,
		Content:        row.Content,
	}, nil
}

// PeopleNames collects the distinct person names credited on a show,
// in credit order.
func PeopleNames(detail schema.ShowDetail) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, role := range append(append([]schema.ShowRole{}, detail.Cast...), detail.Crew...) {
		if role.Person == nil || !role.Person.IsPerson {
			continue
		}
		if _, ok := seen[role.Person.Name]; ok {
			continue
		}
		seen[role.Person.Name] = struct{}{}
		names = append(names, role.Person.Name)
	}
	return names
}
