package store

// RoleType identifies what kind of credit a role record represents.
type RoleType string

const (
	RoleTypeCast      RoleType = "CAST"
	RoleTypeCrew      RoleType = "CREW"
	RoleTypeCommittee RoleType = "COMMITTEE"
)

// ShowRow is one show record with its indexed columns.
type ShowRow struct {
	ID           string
	SourcePath   string
	Year         int
	YearID       string
	Title        string
	SeasonSort   *int
	DateStart    string
	DateEnd      string
	VenueID      string
	PrimaryImage string
	Data         string
	Content      string
	Plaintext    string
}

// PersonRow is one explicit person record.
type PersonRow struct {
	ID        string
	Title     string
	Graduated *int
	Headshot  string
	Data      string
	Content   string
	Plaintext string
}

// VenueRow is one venue record.
type VenueRow struct {
	ID        string
	Title     string
	Data      string
	Content   string
	Plaintext string
}

// RoleRow is one appended (person, target, role) fact.
type RoleRow struct {
	ID         int64
	TargetID   string
	TargetType RoleType
	TargetYear int
	PersonID   string
	PersonName string
	Role       string
	Note       string
	IsPerson   bool
	Data       string
}

// PlaywrightShowRow links a playwright identity to one show.
type PlaywrightShowRow struct {
	PlaywrightID   string
	PlaywrightName string
	ShowID         string
}

// PlaywrightShowJoin is a playwright link joined with its show.
type PlaywrightShowJoin struct {
	PlaywrightID   string
	PlaywrightName string
	Show           ShowRow
}

// HistoryRow is one written-history entry.
type HistoryRow struct {
	Year         string
	AcademicYear string
	Title        string
	Description  string
}

// RoleRef is a distinct person identity observed in role records.
type RoleRef struct {
	PersonID   string
	PersonName string
}

// PersonSummary carries the people-table columns listing views embed.
type PersonSummary struct {
	Title    string
	Headshot string
}
