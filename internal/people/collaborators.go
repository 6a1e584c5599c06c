package people

import (
	"context"
	"sort"

	"callboard/internal/schema"
	"callboard/internal/store"
)

// Collaborators returns every other person identity co-credited with
// personID on at least one show, with the shared show ids per
// collaborator. Lookups are restricted to the person's own targets,
// never the full role relation. Output is ordered by display name
// then identity for determinism; the result is symmetric across
// people and never includes the person themselves.
func Collaborators(ctx context.Context, st *store.Store, personID string) ([]schema.PersonCollaborator, error) {
	own, err := st.RolesForPerson(ctx, personID, store.RoleTypeCast, store.RoleTypeCrew)
	if err != nil {
		return nil, err
	}
	if len(own) == 0 {
		return []schema.PersonCollaborator{}, nil
	}

	var targetIDs []string
	seenTargets := make(map[string]struct{}, len(own))
	for _, role := range own {
		if _, ok := seenTargets[role.TargetID]; ok {
			continue
		}
		seenTargets[role.TargetID] = struct{}{}
		targetIDs = append(targetIDs, role.TargetID)
	}

	shared, err := st.RolesOnTargets(ctx, targetIDs, store.RoleTypeCast, store.RoleTypeCrew)
	if err != nil {
		return nil, err
	}

	type group struct {
		name    string
		targets map[string]struct{}
	}
	groups := make(map[string]*group)
	for _, role := range shared {
		if !role.IsPerson || role.PersonID == "" || role.PersonID == personID {
			continue
		}
		g, ok := groups[role.PersonID]
		if !ok {
			g = &group{name: role.PersonName, targets: make(map[string]struct{})}
			groups[role.PersonID] = g
		}
		g.targets[role.TargetID] = struct{}{}
	}

	collaborators := make([]schema.PersonCollaborator, 0, len(groups))
	for id, g := range groups {
		targets := make([]string, 0, len(g.targets))
		for target := range g.targets {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		collaborators = append(collaborators, schema.PersonCollaborator{
			PersonID:   id,
			PersonName: g.name,
			TargetIDs:  targets,
		})
	}
	sort.Slice(collaborators, func(i, j int) bool {
		if collaborators[i].PersonName != collaborators[j].PersonName {
			return collaborators[i].PersonName < collaborators[j].PersonName
		}
		return collaborators[i].PersonID < collaborators[j].PersonID
	})
	return collaborators, nil
}
