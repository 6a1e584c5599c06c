// Package playwrights classifies writing credits and groups shows by
// playwright and by canonical play.
package playwrights

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"callboard/internal/identity"
	"callboard/internal/models"
	"callboard/internal/schema"
	"callboard/internal/store"
)

// Free-text playwright values with reserved meanings.
const (
	nameVarious = "various"
	nameUnknown = "unknown"
)

// ID derives the canonical playwright identity from a display name.
func ID(name string) string {
	return identity.Of(name)
}

// PlayID derives the canonical play identity from a show title.
func PlayID(title string) string {
	return identity.Of(title)
}

// Classify resolves a show's writing credit. Devised credits win over
// improvised ones, which win over playwright text. Shows without any
// writing credit yield nil.
func Classify(show models.Show) *schema.PlaywrightShow {
	credit := schema.PlaywrightShow{
		Type:           schema.PlaywrightTypePlaywright,
		StudentWritten: show.StudentWritten,
	}

	switch {
	case show.Devised.IsSet():
		credit.Type = schema.PlaywrightTypeDevised
		credit.Descriptor = "Devised"
		if show.Devised.By != "" {
			credit.Descriptor = "Devised by " + show.Devised.By
		}
	case show.Improvised:
		credit.Type = schema.PlaywrightTypeImprovised
		credit.Descriptor = "Improvised"
	case show.Playwright != "":
		switch strings.ToLower(show.Playwright) {
		case nameUnknown:
			credit.Type = schema.PlaywrightTypeUnknown
			credit.Descriptor = "Unknown"
		case nameVarious:
			credit.Type = schema.PlaywrightTypeVarious
			credit.Descriptor = "Various Writers"
		default:
			credit.ID = ID(show.Playwright)
			credit.Name = show.Playwright
			credit.Descriptor = "by " + show.Playwright
			if show.StudentWritten {
				credit.PersonID = credit.ID
			}
		}
	default:
		return nil
	}

	return &credit
}

// SaveShowLink records a playwright-show link when the show's credit
// names an actual playwright.
func SaveShowLink(ctx context.Context, tx *store.Tx, show models.Show, showID string) error {
	credit := Classify(show)
	if credit == nil || credit.Name == "" {
		return nil
	}
	return tx.InsertPlaywrightShow(ctx, store.PlaywrightShowRow{
		PlaywrightID:   credit.ID,
		PlaywrightName: credit.Name,
		ShowID:         showID,
	})
}

// List groups every playwright-show link by playwright, shows in
// listing order.
func List(ctx context.Context, st *store.Store) ([]schema.PlaywrightListItem, error) {
	joins, err := st.PlaywrightShows(ctx)
	if err != nil {
		return nil, err
	}

	var (
		order []string
		byID  = map[string]*schema.PlaywrightListItem{}
	)
	for _, join := range joins {
		item, ok := byID[join.PlaywrightID]
		if !ok {
			item = &schema.PlaywrightListItem{
				Playwright: schema.Playwright{ID: join.PlaywrightID, Name: join.PlaywrightName},
			}
			byID[join.PlaywrightID] = item
			order = append(order, join.PlaywrightID)
		}
		entry, err := showListEntry(join.Show)
		if err != nil {
			return nil, err
		}
		item.Shows = append(item.Shows, entry)
	}

	items := make([]schema.PlaywrightListItem, 0, len(order))
	for _, id := range order {
		items = append(items, *byID[id])
	}
	return items, nil
}

// Plays groups playwright-show links by canonical play title. Each
// play keeps its playwright and its performances in listing order.
func Plays(ctx context.Context, st *store.Store) ([]schema.PlayListItem, error) {
	joins, err := st.PlaywrightShows(ctx)
	if err != nil {
		return nil, err
	}

	type playKey struct {
		playwrightID string
		playID       string
	}
	var (
		order []playKey
		byKey = map[playKey]*schema.PlayListItem{}
	)
	for _, join := range joins {
		key := playKey{playwrightID: join.PlaywrightID, playID: PlayID(join.Show.Title)}
		item, ok := byKey[key]
		if !ok {
			item = &schema.PlayListItem{
				ID:         key.playID,
				Title:      join.Show.Title,
				Playwright: schema.Playwright{ID: join.PlaywrightID, Name: join.PlaywrightName},
			}
			byKey[key] = item
			order = append(order, key)
		}
		entry, err := showListEntry(join.Show)
		if err != nil {
			return nil, err
		}
		item.Shows = append(item.Shows, entry)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].playID != order[j].playID {
			return order[i].playID < order[j].playID
		}
		return order[i].playwrightID < order[j].playwrightID
	})

	items := make([]schema.PlayListItem, 0, len(order))
	for _, key := range order {
		items = append(items, *byKey[key])
	}
	return items, nil
}

func showListEntry(row store.ShowRow) (schema.PlaywrightShowListItem, error) {
	var src models.Show
	if err := json.Unmarshal([]byte(row.Data), &src); err != nil {
		return schema.PlaywrightShowListItem{}, fmt.Errorf("decode show %s: %w", row.ID, err)
	}
	return schema.PlaywrightShowListItem{
		ID:           row.ID,
		Title:        row.Title,
		DateStart:    src.DateStart,
		DateEnd:      src.DateEnd,
		PrimaryImage: row.PrimaryImage,
	}, nil
}
