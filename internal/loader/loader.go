// Package loader runs the ingest phase: it finds content documents
// category by category, validates them, and writes their records and
// role relations into the store. Each category loads inside one
// transaction; a bad document is logged and skipped without aborting
// the category.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"callboard/internal/assets"
	"callboard/internal/config"
	"callboard/internal/content"
	"callboard/internal/documents"
	"callboard/internal/identity"
	"callboard/internal/logging"
	"callboard/internal/models"
	"callboard/internal/people"
	"callboard/internal/photos"
	"callboard/internal/playwrights"
	"callboard/internal/store"
	"callboard/internal/years"
)

// Content tree category directories.
const (
	dirShows      = "_shows"
	dirCommittees = "_committees"
	dirVenues     = "_venues"
	dirPeople     = "_people"

	historyDataFile = "_data/history.yml"
)

// Loader ingests the content tree into the store.
type Loader struct {
	st     *store.Store
	cfg    *config.Config
	photos photos.Client
	logger *slog.Logger
}

// New builds a loader. photoClient may be nil when photo enrichment
// is disabled.
func New(st *store.Store, cfg *config.Config, photoClient photos.Client, logger *slog.Logger) *Loader {
	return &Loader{
		st:     st,
		cfg:    cfg,
		photos: photoClient,
		logger: logging.NewComponentLogger(logger, "loader"),
	}
}

type category struct {
	name string
	dir  string
	load func(ctx context.Context, tx *store.Tx, doc documents.Document, parsed *documents.Parsed) error
}

// Run ingests every category in its fixed order. Later categories may
// assume earlier ones are fully loaded.
func (l *Loader) Run(ctx context.Context) error {
	categories := []category{
		{name: "shows", dir: dirShows, load: l.loadShow},
		{name: "committees", dir: dirCommittees, load: l.loadCommittee},
		{name: "venues", dir: dirVenues, load: l.loadVenue},
		{name: "people", dir: dirPeople, load: l.loadPerson},
	}
	for _, cat := range categories {
		if err := l.runCategory(ctx, cat); err != nil {
			return fmt.Errorf("load %s: %w", cat.name, err)
		}
	}
	if err := l.loadHistory(ctx); err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	return nil
}

func (l *Loader) runCategory(ctx context.Context, cat category) error {
	docs, err := documents.Find(l.cfg.Paths.ContentDir, cat.dir)
	if err != nil {
		return err
	}
	l.logger.Info("loading category", logging.FieldCategory, cat.name, "documents", len(docs))

	tx, err := l.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	loaded := 0
	for _, doc := range docs {
		parsed, err := documents.Load(doc.Path)
		if err != nil {
			l.logger.Error("unreadable document",
				logging.FieldCategory, cat.name,
				logging.FieldDocID, doc.ID,
				"path", doc.ContentPath,
				"error", err)
			continue
		}
		if err := cat.load(ctx, tx, doc, parsed); err != nil {
			l.logger.Error("failed validation",
				logging.FieldCategory, cat.name,
				logging.FieldDocID, doc.ID,
				"path", doc.ContentPath,
				"error", err)
			continue
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	l.logger.Info("category loaded", logging.FieldCategory, cat.name, "loaded", loaded, "skipped", len(docs)-loaded)
	return nil
}

func (l *Loader) loadShow(ctx context.Context, tx *store.Tx, doc documents.Document, parsed *documents.Parsed) error {
	data, err := models.Decode[models.Show](parsed.Meta)
	if err != nil {
		return err
	}

	yearID := years.IDFromDocID(doc.ID)
	year, err := years.FromID(yearID)
	if err != nil {
		return fmt.Errorf("show %s has no academic-year directory: %w", doc.ID, err)
	}

	html, err := content.HTML(parsed.Body)
	if err != nil {
		return err
	}
	plaintext, err := content.Plaintext(parsed.Body)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	venueID := ""
	if data.Venue != "" {
		venueID = identity.Of(data.Venue)
	}

	row := store.ShowRow{
		ID:           doc.ID,
		SourcePath:   doc.ContentPath,
		Year:         year,
		YearID:       yearID,
		Title:        data.Title,
		SeasonSort:   data.SeasonSort,
		DateStart:    dateColumn(data.DateStart),
		DateEnd:      dateColumn(data.DateEnd),
		VenueID:      venueID,
		PrimaryImage: l.primaryImage(ctx, doc.ID, data),
		Data:         string(payload),
		Content:      html,
		Plaintext:    plaintext,
	}
	if err := tx.InsertShow(ctx, row); err != nil {
		return err
	}

	if _, err := people.SaveRoles(ctx, tx, doc.ID, store.RoleTypeCast, year, data.Cast); err != nil {
		return err
	}
	if _, err := people.SaveRoles(ctx, tx, doc.ID, store.RoleTypeCrew, year, data.Crew); err != nil {
		return err
	}

	return playwrights.SaveShowLink(ctx, tx, data, doc.ID)
}

// primaryImage picks the show's primary image from its assets, or
// falls back to the photo host when the show names an album. Photo
// fetch failures are logged and leave the show without an image.
func (l *Loader) primaryImage(ctx context.Context, showID string, data models.Show) string {
	if image := assets.PrimaryImage(data.Assets); image != "" {
		return image
	}
	if l.photos == nil || data.ProdShots == "" {
		return ""
	}
	images, err := l.photos.AlbumImages(ctx, data.ProdShots)
	if err != nil {
		l.logger.Warn("photo album fetch failed",
			logging.FieldDocID, showID,
			"album", data.ProdShots,
			"error", err)
		return ""
	}
	for _, image := range images {
		if !image.IsVideo {
			return image.ImageKey
		}
	}
	return ""
}

func (l *Loader) loadCommittee(ctx context.Context, tx *store.Tx, doc documents.Document, parsed *documents.Parsed) error {
	data, err := models.Decode[models.Committee](parsed.Meta)
	if err != nil {
		return err
	}
	year, err := years.FromID(doc.ID)
	if err != nil {
		return fmt.Errorf("committee %s is not an academic year: %w", doc.ID, err)
	}
	_, err = people.SaveRoles(ctx, tx, doc.ID, store.RoleTypeCommittee, year, data.Committee)
	return err
}

func (l *Loader) loadVenue(ctx context.Context, tx *store.Tx, doc documents.Document, parsed *documents.Parsed) error {
	data, err := models.Decode[models.Venue](parsed.Meta)
	if err != nil {
		return err
	}
	html, err := content.HTML(parsed.Body)
	if err != nil {
		return err
	}
	plaintext, err := content.Plaintext(parsed.Body)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return tx.InsertVenue(ctx, store.VenueRow{
		ID:        doc.ID,
		Title:     data.Title,
		Data:      string(payload),
		Content:   html,
		Plaintext: plaintext,
	})
}

func (l *Loader) loadPerson(ctx context.Context, tx *store.Tx, doc documents.Document, parsed *documents.Parsed) error {
	data, err := models.Decode[models.Person](parsed.Meta)
	if err != nil {
		return err
	}

	id := data.ID
	if id == "" {
		id = identity.Of(data.Title)
	}
	data.ID = id

	html, err := content.HTML(parsed.Body)
	if err != nil {
		return err
	}
	plaintext, err := content.Plaintext(parsed.Body)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = tx.InsertPerson(ctx, store.PersonRow{
		ID:        id,
		Title:     data.Title,
		Graduated: data.Graduated,
		Headshot:  data.Headshot,
		Data:      string(payload),
		Content:   html,
		Plaintext: plaintext,
	})
	if errors.Is(err, store.ErrPersonExists) {
		// Two documents resolve to the same identity. Keep the first,
		// drop this one. Authors disambiguate with explicit ids.
		l.logger.Error("person id already in use, set an explicit id to disambiguate",
			logging.FieldDocID, doc.ID,
			"person_id", id)
		return nil
	}
	return err
}

func (l *Loader) loadHistory(ctx context.Context) error {
	path := filepath.Join(l.cfg.Paths.ContentDir, filepath.FromSlash(historyDataFile))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		l.logger.Debug("no history data file", "path", historyDataFile)
		return nil
	}

	var records []models.HistoryRecord
	if err := documents.LoadYAML(path, &records); err != nil {
		return err
	}

	tx, err := l.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	loaded := 0
	for i, record := range records {
		if err := record.Validate(); err != nil {
			l.logger.Error("failed validation",
				logging.FieldCategory, "history",
				"entry", i,
				"error", err)
			continue
		}
		if err := tx.InsertHistoryRecord(ctx, store.HistoryRow{
			Year:         record.Year,
			AcademicYear: record.AcademicYear,
			Title:        record.Title,
			Description:  record.Description,
		}); err != nil {
			return err
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	l.logger.Info("category loaded", logging.FieldCategory, "history", "loaded", loaded)
	return nil
}

func dateColumn(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
