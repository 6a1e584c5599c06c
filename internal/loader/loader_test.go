package loader

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"callboard/internal/people"
	"callboard/internal/store"
	"callboard/internal/testsupport"
)

func writeHistory(t *testing.T, contentDir string) {
	t.Helper()

	data := `- year: "1940"
  academic_year: 39_40
  title: Foundation
  description: The society is founded.
- year: "1950s"
  title: Missing description
  description: ""
`
	path := filepath.Join(contentDir, "_data", "history.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func runLoader(t *testing.T) *store.Store {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	dir := cfg.Paths.ContentDir

	testsupport.WriteDocument(t, dir, "_shows/99_00/the_tempest.md", `title: The Tempest
season: Autumn
playwright: William Shakespeare
venue: Theatre Royal
cast:
  - name: John Smith
    role: Actor
crew:
  - name: Fred Bloggs
    role: Director
`, "A storm-tossed island.")

	testsupport.WriteDocument(t, dir, "_shows/99_00/titus_andronicus.md", `title: Titus Andronicus
season: Spring
playwright: William Shakespeare
cast:
  - name: John Smith
    role: Titus
  - name: Alice Froggs
    role: Lavinia
crew:
  - name: Fred Bloggs
    role: Director
`, "")

	testsupport.WriteDocument(t, dir, "_shows/99_00/broken.md", `season: Autumn
`, "No title, fails validation.")

	testsupport.WriteDocument(t, dir, "_committees/99_00.md", `committee:
  - name: Fred Bloggs
    role: President
`, "")

	testsupport.WriteDocument(t, dir, "_venues/theatre_royal.md", `title: Theatre Royal
city: Nottingham
`, "A fine venue.")

	testsupport.WriteDocument(t, dir, "_people/fred_bloggs.md", `title: Fred Bloggs
headshot: fred.jpg
`, "Fred directed everything.")

	testsupport.WriteDocument(t, dir, "_people/duplicate_fred.md", `title: Fred Bloggs
`, "A different Fred with the same name and no explicit id.")

	writeHistory(t, dir)

	st := testsupport.MustOpenStore(t)
	if err := New(st, cfg, nil, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return st
}

func TestRunLoadsShowsAndRoles(t *testing.T) {
	st := runLoader(t)
	ctx := context.Background()

	shows, err := st.Shows(ctx)
	if err != nil {
		t.Fatalf("Shows: %v", err)
	}
	if len(shows) != 2 {
		t.Fatalf("shows = %d, want 2 (broken document skipped)", len(shows))
	}
	for _, show := range shows {
		if show.YearID != "99_00" || show.Year != 1999 {
			t.Errorf("show %s year = %d %q", show.ID, show.Year, show.YearID)
		}
	}

	tempest, err := st.ShowByID(ctx, "99_00/the_tempest")
	if err != nil {
		t.Fatalf("ShowByID: %v", err)
	}
	if tempest.VenueID != "theatre_royal" {
		t.Errorf("venue id = %q", tempest.VenueID)
	}
	if tempest.Content == "" || tempest.Plaintext == "" {
		t.Error("show body was not rendered")
	}

	cast, err := st.RolesForTarget(ctx, "99_00/the_tempest", store.RoleTypeCast)
	if err != nil {
		t.Fatalf("RolesForTarget: %v", err)
	}
	if len(cast) != 1 || cast[0].PersonID != "john_smith" || cast[0].TargetYear != 1999 {
		t.Errorf("cast = %+v", cast)
	}
}

func TestRunRecordsPlaywrightLinks(t *testing.T) {
	st := runLoader(t)

	joins, err := st.PlaywrightShows(context.Background())
	if err != nil {
		t.Fatalf("PlaywrightShows: %v", err)
	}
	if len(joins) != 2 {
		t.Fatalf("playwright links = %d, want 2", len(joins))
	}
	for _, join := range joins {
		if join.PlaywrightID != "william_shakespeare" {
			t.Errorf("playwright id = %q", join.PlaywrightID)
		}
	}
}

func TestRunDropsCollidingPerson(t *testing.T) {
	st := runLoader(t)
	ctx := context.Background()

	person, err := st.PersonByID(ctx, "fred_bloggs")
	if err != nil {
		t.Fatalf("PersonByID: %v", err)
	}
	if person.Headshot != "fred.jpg" {
		t.Errorf("first document should win, headshot = %q", person.Headshot)
	}

	all, err := st.People(ctx)
	if err != nil {
		t.Fatalf("People: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("people = %d, want 1 (collision dropped)", len(all))
	}
}

func TestRunFeedsCollaboratorGraph(t *testing.T) {
	st := runLoader(t)

	collaborators, err := people.Collaborators(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatalf("Collaborators: %v", err)
	}
	if len(collaborators) != 2 {
		t.Fatalf("collaborators = %+v", collaborators)
	}

	alice := collaborators[0]
	if alice.PersonID != "alice_froggs" || !reflect.DeepEqual(alice.TargetIDs, []string{"99_00/titus_andronicus"}) {
		t.Errorf("alice = %+v", alice)
	}
	john := collaborators[1]
	wantJohn := []string{"99_00/the_tempest", "99_00/titus_andronicus"}
	if john.PersonID != "john_smith" || !reflect.DeepEqual(john.TargetIDs, wantJohn) {
		t.Errorf("john = %+v", john)
	}
}

func TestRunLoadsHistorySkippingInvalid(t *testing.T) {
	st := runLoader(t)

	records, err := st.HistoryRecords(context.Background())
	if err != nil {
		t.Fatalf("HistoryRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history = %+v, want the invalid entry skipped", records)
	}
	if records[0].Year != "1940" || records[0].AcademicYear != "39_40" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestVirtualPeopleExcludeRealRecords(t *testing.T) {
	st := runLoader(t)

	virtual, err := st.VirtualPeople(context.Background())
	if err != nil {
		t.Fatalf("VirtualPeople: %v", err)
	}
	ids := map[string]bool{}
	for _, ref := range virtual {
		ids[ref.PersonID] = true
	}
	if ids["fred_bloggs"] {
		t.Error("fred_bloggs has a record and must not be virtual")
	}
	if !ids["john_smith"] || !ids["alice_froggs"] {
		t.Errorf("virtual = %v", ids)
	}
}
