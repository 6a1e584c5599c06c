// Package models defines the typed ingest records decoded from
// document front matter. Decoding fails closed: a document whose
// metadata does not fit its category's record shape is rejected by
// the loader rather than partially loaded.
package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"callboard/internal/years"
)

// PersonRef is an embedded credit for a person on a show or
// committee. Person distinguishes an individual from a non-person
// credit such as "The Whole Company" and defaults to true.
type PersonRef struct {
	Role    string `yaml:"role" json:"role,omitempty"`
	Name    string `yaml:"name" json:"name,omitempty"`
	Note    string `yaml:"note" json:"note,omitempty"`
	Person  bool   `yaml:"person" json:"person"`
	Comment string `yaml:"comment" json:"comment,omitempty"`
}

// UnmarshalYAML applies the person-flag default before decoding.
func (p *PersonRef) UnmarshalYAML(value *yaml.Node) error {
	type plain PersonRef
	tmp := plain{Person: true}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*p = PersonRef(tmp)
	return nil
}

// Link is an external reference attached to a record.
type Link struct {
	Type      string `yaml:"type" json:"type,omitempty"`
	Href      string `yaml:"href" json:"href,omitempty"`
	Snapshot  string `yaml:"snapshot" json:"snapshot,omitempty"`
	Username  string `yaml:"username" json:"username,omitempty"`
	Title     string `yaml:"title" json:"title,omitempty"`
	Date      *Date  `yaml:"date" json:"date,omitempty"`
	Publisher string `yaml:"publisher" json:"publisher,omitempty"`
	Rating    string `yaml:"rating" json:"rating,omitempty"`
	Quote     string `yaml:"quote" json:"quote,omitempty"`
	Note      string `yaml:"note" json:"note,omitempty"`
	Comment   string `yaml:"comment" json:"comment,omitempty"`
}

// Location is a geographic point.
type Location struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// Asset is a scanned or photographed artefact attached to a show.
type Asset struct {
	Type         string `yaml:"type" json:"type"`
	Image        string `yaml:"image" json:"image,omitempty"`
	Video        string `yaml:"video" json:"video,omitempty"`
	Filename     string `yaml:"filename" json:"filename,omitempty"`
	Title        string `yaml:"title" json:"title,omitempty"`
	Page         *int   `yaml:"page" json:"page,omitempty"`
	DisplayImage bool   `yaml:"display_image" json:"display_image"`
}

// Validate enforces the asset arity rules: exactly one of image,
// video, or filename, and the display override only applies to
// images.
func (a Asset) Validate() error {
	set := 0
	for _, v := range []string{a.Image, a.Video, a.Filename} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("asset requires exactly one of image, video or filename")
	}
	if a.Filename != "" && a.Title == "" {
		return fmt.Errorf("asset with filename requires a title")
	}
	if a.DisplayImage && a.Image == "" {
		return fmt.Errorf("display_image is only valid for image assets")
	}
	return nil
}

// Trivia is a submitted anecdote about a show.
type Trivia struct {
	Quote     string `yaml:"quote" json:"quote"`
	Name      string `yaml:"name" json:"name,omitempty"`
	Submitted *Date  `yaml:"submitted" json:"submitted,omitempty"`
}

// ShowCanonical links a show to the canonical play it performed.
type ShowCanonical struct {
	Title      string `yaml:"title" json:"title,omitempty"`
	Playwright string `yaml:"playwright" json:"playwright,omitempty"`
}

// Show is the validated record for one production.
type Show struct {
	ID             string          `yaml:"id" json:"id"`
	Title          string          `yaml:"title" json:"title"`
	Playwright     string          `yaml:"playwright" json:"playwright,omitempty"`
	Devised        Devised         `yaml:"devised" json:"devised"`
	Improvised     bool            `yaml:"improvised" json:"improvised"`
	Adaptor        string          `yaml:"adaptor" json:"adaptor,omitempty"`
	Translator     string          `yaml:"translator" json:"translator,omitempty"`
	Canonical      []ShowCanonical `yaml:"canonical" json:"canonical,omitempty"`
	StudentWritten bool            `yaml:"student_written" json:"student_written"`
	Company        string          `yaml:"company" json:"company,omitempty"`
	CompanySort    string          `yaml:"company_sort" json:"company_sort,omitempty"`
	Period         string          `yaml:"period" json:"period,omitempty"`
	Season         string          `yaml:"season" json:"season"`
	SeasonSort     *int            `yaml:"season_sort" json:"season_sort,omitempty"`
	Venue          string          `yaml:"venue" json:"venue,omitempty"`
	DateStart      *Date           `yaml:"date_start" json:"date_start,omitempty"`
	DateEnd        *Date           `yaml:"date_end" json:"date_end,omitempty"`
	Trivia         []Trivia        `yaml:"trivia" json:"trivia,omitempty"`
	Cast           []PersonRef     `yaml:"cast" json:"cast,omitempty"`
	Crew           []PersonRef     `yaml:"crew" json:"crew,omitempty"`
	CastIncomplete bool            `yaml:"cast_incomplete" json:"cast_incomplete"`
	CastNote       string          `yaml:"cast_note" json:"cast_note,omitempty"`
	CrewIncomplete bool            `yaml:"crew_incomplete" json:"crew_incomplete"`
	CrewNote       string          `yaml:"crew_note" json:"crew_note,omitempty"`
	ProdShots      string          `yaml:"prod_shots" json:"prod_shots,omitempty"`
	Assets         []Asset         `yaml:"assets" json:"assets,omitempty"`
	Links          []Link          `yaml:"links" json:"links,omitempty"`
	Comment        string          `yaml:"comment" json:"comment,omitempty"`
}

// Validate checks required fields and nested asset shapes.
func (s Show) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("show requires a title")
	}
	if strings.TrimSpace(s.Season) == "" {
		return fmt.Errorf("show requires a season")
	}
	for i, asset := range s.Assets {
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("asset %d: %w", i, err)
		}
	}
	return nil
}

// Committee is the validated record for one year's committee roster.
type Committee struct {
	ID        string      `yaml:"id" json:"id"`
	Committee []PersonRef `yaml:"committee" json:"committee"`
}

// Validate requires a roster.
func (c Committee) Validate() error {
	if len(c.Committee) == 0 {
		return fmt.Errorf("committee requires at least one member")
	}
	return nil
}

// Venue is the validated record for a performance venue.
type Venue struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Links    []Link    `yaml:"links" json:"links,omitempty"`
	Built    *int      `yaml:"built" json:"built,omitempty"`
	Images   []string  `yaml:"images" json:"images,omitempty"`
	Location *Location `yaml:"location" json:"location,omitempty"`
	City     string    `yaml:"city" json:"city,omitempty"`
	Sort     *int      `yaml:"sort" json:"sort,omitempty"`
	Comment  string    `yaml:"comment" json:"comment,omitempty"`
}

// Validate checks required fields.
func (v Venue) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Errorf("venue requires a title")
	}
	return nil
}

// Person is the validated record for a person with an explicit page.
type Person struct {
	ID        string `yaml:"id" json:"id,omitempty"`
	Title     string `yaml:"title" json:"title"`
	Submitted *Date  `yaml:"submitted" json:"submitted,omitempty"`
	Headshot  string `yaml:"headshot" json:"headshot,omitempty"`
	Graduated *int   `yaml:"graduated" json:"graduated,omitempty"`
	Award     string `yaml:"award" json:"award,omitempty"`
	Links     []Link `yaml:"links" json:"links,omitempty"`
	News      []Link `yaml:"news" json:"news,omitempty"`
	Comment   string `yaml:"comment" json:"comment,omitempty"`
}

// Validate checks required fields.
func (p Person) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("person requires a title")
	}
	return nil
}

// HistoryRecord is one entry of the society's written history.
type HistoryRecord struct {
	Year         string `yaml:"year" json:"year"`
	AcademicYear string `yaml:"academic_year" json:"academic_year,omitempty"`
	Title        string `yaml:"title" json:"title"`
	Description  string `yaml:"description" json:"description"`
}

// Validate checks required fields and the academic-year format.
func (h HistoryRecord) Validate() error {
	if strings.TrimSpace(h.Year) == "" || strings.TrimSpace(h.Title) == "" || strings.TrimSpace(h.Description) == "" {
		return fmt.Errorf("history record requires year, title and description")
	}
	if h.AcademicYear != "" && !years.Valid(h.AcademicYear) {
		return fmt.Errorf("invalid academic year %q", h.AcademicYear)
	}
	return nil
}
