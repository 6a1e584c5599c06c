// Package roles defines the committee and crew role vocabulary and
// builds the by-role people indexes.
package roles

import (
	"context"
	"sort"
	"strings"

	"callboard/internal/identity"
	"callboard/internal/schema"
	"callboard/internal/store"
	"callboard/internal/years"
)

// CommitteeRoles lists the committee posts that get a by-role index.
var CommitteeRoles = []string{
	"President",
	"Vice President",
	"Secretary",
	"Treasurer",
	"Publicity Manager",
	"Social Secretary",
	"Theatre Manager",
	"Technical Director",
	"Workshop Coordinator",
	"Front of House Manager",
}

// Definition is a canonical crew role with the free-text labels that
// resolve to it.
type Definition struct {
	Name    string
	Aliases []string
}

// CrewRoleDefinitions lists the crew roles that get a by-role index.
// Free-text role labels are matched against the canonical name and
// every alias, ignoring case and punctuation.
var CrewRoleDefinitions = []Definition{
	{Name: "Director"},
	{Name: "Producer"},
	{Name: "Stage Manager", Aliases: []string{"SM"}},
	{Name: "Technical Director", Aliases: []string{"Tech Director"}},
	{Name: "Lighting Designer", Aliases: []string{"Lighting", "Lighting Design", "Lights"}},
	{Name: "Sound Designer", Aliases: []string{"Sound", "Sound Design"}},
	{Name: "Set Designer", Aliases: []string{"Set Design", "Designer", "Design"}},
	{Name: "Costume Designer", Aliases: []string{"Costumes", "Wardrobe"}},
	{Name: "Musical Director", Aliases: []string{"MD"}},
	{Name: "Choreographer", Aliases: []string{"Choreography"}},
	{Name: "Publicity Manager", Aliases: []string{"Publicity"}},
	{Name: "Props", Aliases: []string{"Properties"}},
	{Name: "Make-Up", Aliases: []string{"Makeup", "Make Up"}},
}

// ID derives the artifact file id for a role name.
func ID(name string) string {
	return identity.Of(name)
}

// Definitions returns the crew role vocabulary in its output shape.
func Definitions() []schema.Role {
	out := make([]schema.Role, 0, len(CrewRoleDefinitions))
	for _, def := range CrewRoleDefinitions {
		aliases := def.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, schema.Role{Role: def.Name, Aliases: aliases})
	}
	return out
}

// canonicalCrewRole resolves a free-text crew role label. The second
// return is false when the label matches no definition.
func canonicalCrewRole(label string) (string, bool) {
	normalized := identity.Of(label)
	if normalized == "" {
		return "", false
	}
	for _, def := range CrewRoleDefinitions {
		if identity.Of(def.Name) == normalized {
			return def.Name, true
		}
		for _, alias := range def.Aliases {
			if identity.Of(alias) == normalized {
				return def.Name, true
			}
		}
	}
	return "", false
}

// PeopleByCommitteeRole lists everyone who held the named committee
// post, one entry per tenure, in ingest order.
func PeopleByCommitteeRole(ctx context.Context, st *store.Store, roleName string) ([]schema.PersonCommitteeRoleList, error) {
	records, err := st.RolesByType(ctx, store.RoleTypeCommittee)
	if err != nil {
		return nil, err
	}

	var matched []store.RoleRow
	var ids []string
	for _, record := range records {
		if !strings.EqualFold(strings.TrimSpace(record.Role), roleName) {
			continue
		}
		matched = append(matched, record)
		if record.PersonID != "" {
			ids = append(ids, record.PersonID)
		}
	}
	summaries, err := st.PeopleSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]schema.PersonCommitteeRoleList, 0, len(matched))
	for _, record := range matched {
		if record.PersonID == "" {
			continue
		}
		title := record.PersonName
		headshot := ""
		if summary, ok := summaries[record.PersonID]; ok {
			title = summary.Title
			headshot = summary.Headshot
		}
		out = append(out, schema.PersonCommitteeRoleList{
			ID:         record.PersonID,
			Title:      title,
			Headshot:   headshot,
			YearTitle:  years.Title(record.TargetYear),
			YearDecade: years.Decade(record.TargetYear),
			YearID:     years.ID(record.TargetYear),
			Role:       record.Role,
		})
	}
	return out, nil
}

// PeopleByCrewRole tallies everyone credited with the named crew role
// or one of its aliases, with a distinct-show count per person.
func PeopleByCrewRole(ctx context.Context, st *store.Store, roleName string) ([]schema.PersonShowRoleList, error) {
	records, err := st.RolesByType(ctx, store.RoleTypeCrew)
	if err != nil {
		return nil, err
	}

	matched := records[:0]
	for _, record := range records {
		canonical, ok := canonicalCrewRole(record.Role)
		if !ok || !strings.EqualFold(canonical, roleName) {
			continue
		}
		matched = append(matched, record)
	}
	return tallyShowRoles(ctx, st, matched, roleName)
}

// PeopleEverCast tallies everyone with at least one cast credit.
func PeopleEverCast(ctx context.Context, st *store.Store) ([]schema.PersonShowRoleList, error) {
	records, err := st.RolesByType(ctx, store.RoleTypeCast)
	if err != nil {
		return nil, err
	}
	return tallyShowRoles(ctx, st, records, "Actor")
}

func tallyShowRoles(ctx context.Context, st *store.Store, records []store.RoleRow, roleName string) ([]schema.PersonShowRoleList, error) {
	type tally struct {
		name  string
		shows map[string]struct{}
	}
	var ids []string
	tallies := map[string]*tally{}
	for _, record := range records {
		if record.PersonID == "" {
			continue
		}
		entry, ok := tallies[record.PersonID]
		if !ok {
			entry = &tally{name: record.PersonName, shows: map[string]struct{}{}}
			tallies[record.PersonID] = entry
			ids = append(ids, record.PersonID)
		}
		entry.shows[record.TargetID] = struct{}{}
	}

	summaries, err := st.PeopleSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]schema.PersonShowRoleList, 0, len(tallies))
	for id, entry := range tallies {
		title := entry.name
		headshot := ""
		if summary, ok := summaries[id]; ok {
			title = summary.Title
			headshot = summary.Headshot
		}
		out = append(out, schema.PersonShowRoleList{
			ID:        id,
			Title:     title,
			Headshot:  headshot,
			Role:      roleName,
			ShowCount: len(entry.shows),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShowCount != out[j].ShowCount {
			return out[i].ShowCount > out[j].ShowCount
		}
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
