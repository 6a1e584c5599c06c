// Package schema defines the published JSON document shapes the
// build emits. Field names, nesting, and enumerated values are the
// compatibility surface of the output API and must not change shape
// between builds.
package schema

import (
	"time"

	"callboard/internal/models"
)

// PlaywrightType enumerates the writing-credit classifications.
type PlaywrightType string

const (
	PlaywrightTypePlaywright PlaywrightType = "playwright"
	PlaywrightTypeVarious    PlaywrightType = "various"
	PlaywrightTypeUnknown    PlaywrightType = "unknown"
	PlaywrightTypeDevised    PlaywrightType = "devised"
	PlaywrightTypeImprovised PlaywrightType = "improvised"
)

// Playwright is a writing credit, possibly anonymous.
type Playwright struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	PersonID string `json:"personId,omitempty"`
}

// PlaywrightShow is a classified writing credit on one show.
type PlaywrightShow struct {
	Playwright
	Type           PlaywrightType `json:"type"`
	Descriptor     string         `json:"descriptor,omitempty"`
	StudentWritten bool           `json:"studentWritten"`
}

// PlayShow references the canonical play a show performed.
type PlayShow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PersonList is the embedded person reference used in cast and crew
// listings.
type PersonList struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsPerson bool   `json:"isPerson"`
	Headshot string `json:"headshot,omitempty"`
	HasBio   bool   `json:"hasBio"`
}

// ShowRole is one credited role on a show.
type ShowRole struct {
	Role   string      `json:"role,omitempty"`
	Person *PersonList `json:"person,omitempty"`
	Note   string      `json:"note,omitempty"`
}

// Asset mirrors the validated asset record for output.
type Asset struct {
	Type         string `json:"type"`
	Image        string `json:"image,omitempty"`
	Video        string `json:"video,omitempty"`
	Filename     string `json:"filename,omitempty"`
	Title        string `json:"title,omitempty"`
	Page         *int   `json:"page,omitempty"`
	DisplayImage bool   `json:"displayImage"`
}

// Trivia is an anecdote attached to a show.
type Trivia struct {
	Quote     string       `json:"quote"`
	Name      string       `json:"name,omitempty"`
	Submitted *models.Date `json:"submitted,omitempty"`
}

// ShowDetail is the full document for one show.
type ShowDetail struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Play           *PlayShow       `json:"play,omitempty"`
	Playwright     *PlaywrightShow `json:"playwright,omitempty"`
	Adaptor        string          `json:"adaptor,omitempty"`
	Translator     string          `json:"translator,omitempty"`
	Company        string          `json:"company,omitempty"`
	Period         string          `json:"period,omitempty"`
	Season         string          `json:"season"`
	Venue          *VenueRef       `json:"venue,omitempty"`
	DateStart      *models.Date    `json:"dateStart,omitempty"`
	DateEnd        *models.Date    `json:"dateEnd,omitempty"`
	Trivia         []Trivia        `json:"trivia,omitempty"`
	Cast           []ShowRole      `json:"cast"`
	Crew           []ShowRole      `json:"crew"`
	CastIncomplete bool            `json:"castIncomplete"`
	CastNote       string          `json:"castNote,omitempty"`
	CrewIncomplete bool            `json:"crewIncomplete"`
	CrewNote       string          `json:"crewNote,omitempty"`
	ProdShots      string          `json:"prodShots,omitempty"`
	Assets         []Asset         `json:"assets"`
	PrimaryImage   string          `json:"primaryImage,omitempty"`
	Content        string          `json:"content,omitempty"`
}

// ShowList is the abbreviated show document used in listings.
type ShowList struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Playwright   *PlaywrightShow `json:"playwright,omitempty"`
	Adaptor      string          `json:"adaptor,omitempty"`
	Devised      models.Devised  `json:"devised"`
	Season       string          `json:"season,omitempty"`
	DateStart    *models.Date    `json:"dateStart,omitempty"`
	DateEnd      *models.Date    `json:"dateEnd,omitempty"`
	PrimaryImage string          `json:"primaryImage,omitempty"`
}

// VenueRef points a show at its venue document.
type VenueRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlaywrightShowListItem is one show under a playwright or play.
type PlaywrightShowListItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	DateStart    *models.Date `json:"dateStart,omitempty"`
	DateEnd      *models.Date `json:"dateEnd,omitempty"`
	PrimaryImage string       `json:"primaryImage,omitempty"`
}

// PlaywrightListItem is one playwright and their shows.
type PlaywrightListItem struct {
	Playwright
	Shows []PlaywrightShowListItem `json:"shows"`
}

// PlayListItem is one canonical play and its performances.
type PlayListItem struct {
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	Playwright Playwright               `json:"playwright"`
	Shows      []PlaywrightShowListItem `json:"shows"`
}

// YearList is the abbreviated year document used in the year index.
type YearList struct {
	Title     string `json:"title"`
	Decade    int    `json:"decade"`
	YearID    string `json:"yearId"`
	StartYear int    `json:"startYear"`
	GradYear  int    `json:"gradYear"`
	ShowCount int    `json:"showCount"`
}

// YearDetail is the full document for one academic year.
type YearDetail struct {
	YearList
	Shows     []ShowList   `json:"shows"`
	Committee []PersonRole `json:"committee"`
}

// PersonRole is a committee or show credit as written.
type PersonRole struct {
	PersonID   string `json:"personId,omitempty"`
	PersonName string `json:"personName,omitempty"`
	Role       string `json:"role,omitempty"`
	Note       string `json:"note,omitempty"`
	IsPerson   bool   `json:"isPerson"`
	Comment    string `json:"comment,omitempty"`
}

// PersonShowRoleItem is one role a person held on a show.
type PersonShowRoleItem struct {
	Role     string `json:"role,omitempty"`
	RoleType string `json:"roleType"`
}

// PersonShowRoles groups a person's roles on one show.
type PersonShowRoles struct {
	ShowID    string               `json:"showId"`
	ShowTitle string               `json:"showTitle"`
	Roles     []PersonShowRoleItem `json:"roles"`
}

// PersonCommitteeRole is one committee post a person held.
type PersonCommitteeRole struct {
	YearTitle  string `json:"yearTitle"`
	YearDecade int    `json:"yearDecade"`
	YearID     string `json:"yearId"`
	Role       string `json:"role"`
}

// PersonGraduated is a person's graduation estimate.
type PersonGraduated struct {
	YearTitle  string `json:"yearTitle"`
	YearDecade int    `json:"yearDecade"`
	YearID     string `json:"yearId"`
	Estimated  bool   `json:"estimated"`
}

// PersonDetail is the full document for one person, real or virtual.
type PersonDetail struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Submitted      *models.Date          `json:"submitted,omitempty"`
	Headshot       string                `json:"headshot,omitempty"`
	Graduated      *PersonGraduated      `json:"graduated,omitempty"`
	Award          string                `json:"award,omitempty"`
	ShowRoles      []PersonShowRoles     `json:"showRoles"`
	CommitteeRoles []PersonCommitteeRole `json:"committeeRoles"`
	Content        string                `json:"content,omitempty"`
}

// PersonCollaborator is one co-credited person and the targets
// shared with them.
type PersonCollaborator struct {
	PersonID   string   `json:"personId"`
	PersonName string   `json:"personName"`
	TargetIDs  []string `json:"targetIds"`
}

// PersonCommitteeRoleList is one person's tenure of a committee role,
// for the by-role indexes.
type PersonCommitteeRoleList struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Headshot   string `json:"headshot,omitempty"`
	YearTitle  string `json:"yearTitle"`
	YearDecade int    `json:"yearDecade"`
	YearID     string `json:"yearId"`
	Role       string `json:"role"`
}

// PersonShowRoleList is one person's tally for a show role, for the
// by-role indexes.
type PersonShowRoleList struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Headshot  string `json:"headshot,omitempty"`
	Role      string `json:"role"`
	ShowCount int    `json:"showCount"`
}

// Role is a crew-role definition with its accepted aliases.
type Role struct {
	Role    string   `json:"role"`
	Aliases []string `json:"aliases"`
}

// VenueList is the abbreviated venue document used in the venue
// index.
type VenueList struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	City      string `json:"city,omitempty"`
	Built     *int   `json:"built,omitempty"`
	ShowCount int    `json:"showCount"`
}

// VenueDetail is the full document for one venue.
type VenueDetail struct {
	VenueList
	Location *models.Location `json:"location,omitempty"`
	Images   []string         `json:"images,omitempty"`
	Shows    []ShowList       `json:"shows"`
	Content  string           `json:"content,omitempty"`
}

// HistoryRecord is one entry in the written history collection.
type HistoryRecord struct {
	Year        string `json:"year"`
	YearID      string `json:"yearId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SearchDocumentType enumerates the search document families.
type SearchDocumentType string

const (
	SearchDocumentYear   SearchDocumentType = "year"
	SearchDocumentShow   SearchDocumentType = "show"
	SearchDocumentPerson SearchDocumentType = "person"
	SearchDocumentVenue  SearchDocumentType = "venue"
)

// SearchDocument is one entry in the aggregate search collection.
type SearchDocument struct {
	Type       SearchDocumentType `json:"type"`
	Title      string             `json:"title"`
	ID         string             `json:"id"`
	Playwright *PlaywrightShow    `json:"playwright,omitempty"`
	Company    string             `json:"company,omitempty"`
	People     []string           `json:"people,omitempty"`
	Plaintext  string             `json:"plaintext,omitempty"`
}

// SiteStats summarizes one build.
type SiteStats struct {
	BuildTime   time.Time `json:"buildTime"`
	BuildID     string    `json:"buildId"`
	Branch      string    `json:"branch"`
	ShowCount   int       `json:"showCount"`
	PersonCount int       `json:"personCount"`
}
