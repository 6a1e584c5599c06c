package dumper

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"callboard/internal/config"
	"callboard/internal/loader"
	"callboard/internal/schema"
	"callboard/internal/testsupport"
)

func buildArchive(t *testing.T) *config.Config {
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

	testsupport.WriteDocument(t, dir, "_shows/00_01/the_tempest.md", `title: The Tempest
season: Autumn
playwright: William Shakespeare
`, "Revived a year later.")

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

	st := testsupport.MustOpenStore(t)
	if err := loader.New(st, cfg, nil, nil).Run(context.Background()); err != nil {
		t.Fatalf("loader.Run: %v", err)
	}
	if err := New(st, cfg, nil).Run(context.Background()); err != nil {
		t.Fatalf("dumper.Run: %v", err)
	}
	return cfg
}

func readArtifact(t *testing.T, cfg *config.Config, rel string, v any) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read artifact %s: %v", rel, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode artifact %s: %v", rel, err)
	}
}

func TestRunWritesShowDetail(t *testing.T) {
	cfg := buildArchive(t)

	var detail schema.ShowDetail
	readArtifact(t, cfg, "shows/99_00/the_tempest.json", &detail)
	if detail.Title != "The Tempest" {
		t.Errorf("title = %q", detail.Title)
	}
	if detail.Playwright == nil || detail.Playwright.ID != "william_shakespeare" {
		t.Errorf("playwright = %+v", detail.Playwright)
	}
	if detail.Venue == nil || detail.Venue.ID != "theatre_royal" {
		t.Errorf("venue = %+v", detail.Venue)
	}
}

func TestRunWritesYearIndexAndDetails(t *testing.T) {
	cfg := buildArchive(t)

	var index []schema.YearList
	readArtifact(t, cfg, "years/index.json", &index)
	if len(index) != 3 {
		t.Fatalf("year index = %d entries, want 1999 through 2001", len(index))
	}

	var detail schema.YearDetail
	readArtifact(t, cfg, "years/99_00.json", &detail)
	if detail.ShowCount != 1 || len(detail.Shows) != 1 {
		t.Errorf("year shows = %+v", detail)
	}
	if detail.GradYear != 2000 || detail.Decade != 199 {
		t.Errorf("year fields = %+v", detail.YearList)
	}
	if len(detail.Committee) != 1 || detail.Committee[0].PersonID != "fred_bloggs" {
		t.Errorf("committee = %+v", detail.Committee)
	}
}

func TestRunWritesRealAndVirtualPeople(t *testing.T) {
	cfg := buildArchive(t)

	var fred schema.PersonDetail
	readArtifact(t, cfg, "people/fred_bloggs.json", &fred)
	if fred.Headshot != "fred.jpg" {
		t.Errorf("fred = %+v", fred)
	}
	if len(fred.ShowRoles) != 1 || len(fred.CommitteeRoles) != 1 {
		t.Errorf("fred roles = %+v / %+v", fred.ShowRoles, fred.CommitteeRoles)
	}

	var john schema.PersonDetail
	readArtifact(t, cfg, "people/john_smith.json", &john)
	if john.Title != "John Smith" || len(john.ShowRoles) != 1 {
		t.Errorf("john = %+v", john)
	}
}

func TestRunWritesPlaywrightAndPlayCollections(t *testing.T) {
	cfg := buildArchive(t)

	var playwrights []schema.PlaywrightListItem
	readArtifact(t, cfg, "playwrights/index.json", &playwrights)
	if len(playwrights) != 1 || playwrights[0].ID != "william_shakespeare" {
		t.Fatalf("playwrights = %+v", playwrights)
	}
	if len(playwrights[0].Shows) != 2 {
		t.Errorf("shakespeare shows = %+v", playwrights[0].Shows)
	}

	var plays []schema.PlayListItem
	readArtifact(t, cfg, "plays/index.json", &plays)
	if len(plays) != 1 || plays[0].ID != "the_tempest" {
		t.Fatalf("plays = %+v", plays)
	}
	if len(plays[0].Shows) != 2 {
		t.Errorf("play occurrences = %+v", plays[0].Shows)
	}
}

func TestRunWritesVenues(t *testing.T) {
	cfg := buildArchive(t)

	var index []schema.VenueList
	readArtifact(t, cfg, "venues/index.json", &index)
	if len(index) != 1 || index[0].ShowCount != 1 {
		t.Fatalf("venue index = %+v", index)
	}

	var detail schema.VenueDetail
	readArtifact(t, cfg, "venues/theatre_royal.json", &detail)
	if detail.City != "Nottingham" || len(detail.Shows) != 1 {
		t.Errorf("venue detail = %+v", detail)
	}
}

func TestRunWritesSiteStats(t *testing.T) {
	cfg := buildArchive(t)

	var stats schema.SiteStats
	readArtifact(t, cfg, "index.json", &stats)
	if stats.ShowCount != 2 {
		t.Errorf("show count = %d", stats.ShowCount)
	}
	if stats.PersonCount != 2 {
		t.Errorf("person count = %d, want 1 real + 1 virtual", stats.PersonCount)
	}
	if stats.BuildID == "" || stats.BuildTime.IsZero() {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Branch != cfg.Build.Branch {
		t.Errorf("branch = %q", stats.Branch)
	}
}

func TestRunWritesUniqueSearchDocuments(t *testing.T) {
	cfg := buildArchive(t)

	var docs []schema.SearchDocument
	readArtifact(t, cfg, "search/documents.json", &docs)

	type key struct {
		docType schema.SearchDocumentType
		id      string
	}
	seen := map[key]bool{}
	for _, doc := range docs {
		k := key{doc.Type, doc.ID}
		if seen[k] {
			t.Errorf("duplicate search document %+v", k)
		}
		seen[k] = true
	}
	// 2 shows + 3 years + 2 people + 1 venue
	if len(docs) != 8 {
		t.Errorf("search documents = %d, want 8", len(docs))
	}
}
