package people

import (
	"context"
	"reflect"
	"testing"
	"time"

	"callboard/internal/models"
	"callboard/internal/schema"
	"callboard/internal/store"
	"callboard/internal/testsupport"
)

func saveShowRoles(t *testing.T, st *store.Store, showID, title string, year int, refs []models.PersonRef) {
	t.Helper()

	testsupport.InTx(t, st, func(tx *store.Tx) {
		if err := tx.InsertShow(context.Background(), store.ShowRow{
			ID: showID, Year: year, YearID: "", Title: title, Data: "{}",
		}); err != nil {
			t.Fatalf("InsertShow: %v", err)
		}
		if _, err := SaveRoles(context.Background(), tx, showID, store.RoleTypeCast, year, refs); err != nil {
			t.Fatalf("SaveRoles: %v", err)
		}
	})
}

func TestSaveRolesResolvesIdentities(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	var rows []store.RoleRow
	testsupport.InTx(t, st, func(tx *store.Tx) {
		var err error
		rows, err = SaveRoles(context.Background(), tx, "99_00/show", store.RoleTypeCast, 1999, []models.PersonRef{
			{Name: "Frëd  Blöggs", Role: "Prospero", Person: true},
			{Name: "The Company", Role: "Ensemble"},
			{Role: "Unnamed walk-on", Person: true},
		})
		if err != nil {
			t.Fatalf("SaveRoles: %v", err)
		}
	})

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].PersonID != "fred_bloggs" {
		t.Errorf("person id = %q, want normalized identity", rows[0].PersonID)
	}
	if rows[1].PersonID != "" {
		t.Errorf("non-person credit resolved an identity: %q", rows[1].PersonID)
	}
	if rows[2].PersonID != "" {
		t.Errorf("nameless credit resolved an identity: %q", rows[2].PersonID)
	}
}

func TestCollaborators(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	saveShowRoles(t, st, "99_00/the_tempest", "The Tempest", 1999, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Director", Person: true},
		{Name: "John Smith", Role: "Actor", Person: true},
	})
	saveShowRoles(t, st, "99_00/titus_andronicus", "Titus Andronicus", 1999, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Director", Person: true},
		{Name: "John Smith", Role: "Titus", Person: true},
		{Name: "Alice Froggs", Role: "Lavinia", Person: true},
		{Name: "The Company", Role: "Ensemble"},
	})

	got, err := Collaborators(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatalf("Collaborators: %v", err)
	}

	want := []schema.PersonCollaborator{
		{PersonID: "alice_froggs", PersonName: "Alice Froggs", TargetIDs: []string{"99_00/titus_andronicus"}},
		{PersonID: "john_smith", PersonName: "John Smith", TargetIDs: []string{"99_00/the_tempest", "99_00/titus_andronicus"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("collaborators = %+v, want %+v", got, want)
	}
}

func TestCollaboratorsSymmetric(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	saveShowRoles(t, st, "99_00/the_tempest", "The Tempest", 1999, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Director", Person: true},
		{Name: "John Smith", Role: "Actor", Person: true},
	})

	fred, err := Collaborators(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatal(err)
	}
	john, err := Collaborators(context.Background(), st, "john_smith")
	if err != nil {
		t.Fatal(err)
	}
	if len(fred) != 1 || fred[0].PersonID != "john_smith" {
		t.Errorf("fred = %+v", fred)
	}
	if len(john) != 1 || john[0].PersonID != "fred_bloggs" {
		t.Errorf("john = %+v", john)
	}
	if !reflect.DeepEqual(fred[0].TargetIDs, john[0].TargetIDs) {
		t.Errorf("shared targets differ: %v vs %v", fred[0].TargetIDs, john[0].TargetIDs)
	}
}

func TestCollaboratorsExcludesSelfWithMultipleRoles(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	saveShowRoles(t, st, "99_00/one_man_show", "One Man Show", 1999, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Director", Person: true},
		{Name: "Fred Bloggs", Role: "Actor", Person: true},
	})

	got, err := Collaborators(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("collaborators = %+v, want none", got)
	}
}

func TestCollaboratorsNoRoles(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	got, err := Collaborators(context.Background(), st, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("collaborators = %+v", got)
	}
}

func TestGraduationEstimateCutoff(t *testing.T) {
	st := testsupport.MustOpenStore(t)
	saveShowRoles(t, st, "20_21/a_show", "A Show", 2020, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Actor", Person: true},
	})

	before := []time.Time{
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, time.May, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, now := range before {
		got, err := Graduation(context.Background(), st, "fred_bloggs", nil, now)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("as of %s: estimate = %+v, want nil", now.Format("2006-01-02"), got)
		}
	}

	want := &schema.PersonGraduated{YearTitle: "2021", YearDecade: 202, YearID: "20_21", Estimated: true}
	after := []time.Time{
		time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, now := range after {
		got, err := Graduation(context.Background(), st, "fred_bloggs", nil, now)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("as of %s: estimate = %+v, want %+v", now.Format("2006-01-02"), got, want)
		}
	}
}

func TestGraduationExplicitWins(t *testing.T) {
	st := testsupport.MustOpenStore(t)
	saveShowRoles(t, st, "20_21/a_show", "A Show", 2020, []models.PersonRef{
		{Name: "Fred Bloggs", Role: "Actor", Person: true},
	})

	explicit := 1995
	got, err := Graduation(context.Background(), st, "fred_bloggs", &explicit, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	want := &schema.PersonGraduated{YearTitle: "1995", YearDecade: 199, YearID: "94_95", Estimated: false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("explicit = %+v, want %+v", got, want)
	}
}

func TestGraduationNoActivity(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	got, err := Graduation(context.Background(), st, "nobody", nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("estimate = %+v, want nil", got)
	}
}

func TestShowRolesGroupedByShow(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	testsupport.InTx(t, st, func(tx *store.Tx) {
		ctx := context.Background()
		if err := tx.InsertShow(ctx, store.ShowRow{ID: "99_00/the_tempest", Year: 1999, Title: "The Tempest", Data: "{}"}); err != nil {
			t.Fatal(err)
		}
		if _, err := SaveRoles(ctx, tx, "99_00/the_tempest", store.RoleTypeCast, 1999, []models.PersonRef{
			{Name: "Fred Bloggs", Role: "Prospero", Person: true},
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := SaveRoles(ctx, tx, "99_00/the_tempest", store.RoleTypeCrew, 1999, []models.PersonRef{
			{Name: "Fred Bloggs", Role: "Fight Captain", Person: true},
		}); err != nil {
			t.Fatal(err)
		}
	})

	got, err := ShowRoles(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("groups = %+v, want both roles under one show", got)
	}
	if got[0].ShowID != "99_00/the_tempest" || got[0].ShowTitle != "The Tempest" {
		t.Errorf("group = %+v", got[0])
	}
	if len(got[0].Roles) != 2 {
		t.Fatalf("roles = %+v", got[0].Roles)
	}
	if got[0].Roles[0].RoleType != "CAST" || got[0].Roles[1].RoleType != "CREW" {
		t.Errorf("role types = %+v", got[0].Roles)
	}
}

func TestCommitteeRoles(t *testing.T) {
	st := testsupport.MustOpenStore(t)

	testsupport.InTx(t, st, func(tx *store.Tx) {
		if _, err := SaveRoles(context.Background(), tx, "99_00", store.RoleTypeCommittee, 1999, []models.PersonRef{
			{Name: "Fred Bloggs", Role: "President", Person: true},
		}); err != nil {
			t.Fatal(err)
		}
	})

	got, err := CommitteeRoles(context.Background(), st, "fred_bloggs")
	if err != nil {
		t.Fatal(err)
	}
	want := []schema.PersonCommitteeRole{{
		YearTitle:  "1999-00",
		YearDecade: 199,
		YearID:     "99_00",
		Role:       "President",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("committee roles = %+v, want %+v", got, want)
	}
}
