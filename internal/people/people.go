// Package people resolves person references into canonical
// identities and computes the person-centric derived views: roles,
// collaborators, and graduation estimates.
package people

import (
	"context"
	"encoding/json"
	"fmt"

	"callboard/internal/identity"
	"callboard/internal/models"
	"callboard/internal/schema"
	"callboard/internal/store"
	"callboard/internal/years"
)

// SaveRoles resolves each reference's identity and appends one role
// record per reference, inside the transaction owning the target
// document. Non-person credits keep their display name but resolve
// to no identity.
func SaveRoles(ctx context.Context, tx *store.Tx, targetID string, targetType store.RoleType, targetYear int, refs []models.PersonRef) ([]store.RoleRow, error) {
	rows := make([]store.RoleRow, 0, len(refs))
	for _, ref := range refs {
		personID := ""
		if ref.Person && ref.Name != "" {
			personID = identity.Of(ref.Name)
		}
		payload, err := json.Marshal(schema.PersonRole{
			PersonID:   personID,
			PersonName: ref.Name,
			Role:       ref.Role,
			Note:       ref.Note,
			IsPerson:   ref.Person,
			Comment:    ref.Comment,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal role payload: %w", err)
		}
		row := store.RoleRow{
			TargetID:   targetID,
			TargetType: targetType,
			TargetYear: targetYear,
			PersonID:   personID,
			PersonName: ref.Name,
			Role:       ref.Role,
			Note:       ref.Note,
			IsPerson:   ref.Person,
			Data:       string(payload),
		}
		id, err := tx.InsertRole(ctx, row)
		if err != nil {
			return nil, err
		}
		row.ID = id
		rows = append(rows, row)
	}
	return rows, nil
}

// ShowRoles returns a person's cast and crew roles grouped by show,
// in the order the shows were first credited.
func ShowRoles(ctx context.Context, st *store.Store, personID string) ([]schema.PersonShowRoles, error) {
	roles, err := st.RolesForPerson(ctx, personID, store.RoleTypeCast, store.RoleTypeCrew)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return []schema.PersonShowRoles{}, nil
	}

	var order []string
	byShow := make(map[string][]schema.PersonShowRoleItem)
	for _, role := range roles {
		if _, seen := byShow[role.TargetID]; !seen {
			order = append(order, role.TargetID)
		}
		byShow[role.TargetID] = append(byShow[role.TargetID], schema.PersonShowRoleItem{
			Role:     role.Role,
			RoleType: string(role.TargetType),
		})
	}

	titles, err := st.ShowTitles(ctx, order)
	if err != nil {
		return nil, err
	}

	grouped := make([]schema.PersonShowRoles, 0, len(order))
	for _, showID := range order {
		grouped = append(grouped, schema.PersonShowRoles{
			ShowID:    showID,
			ShowTitle: titles[showID],
			Roles:     byShow[showID],
		})
	}
	return grouped, nil
}

// CommitteeRoles returns a person's committee posts in the order they
// were recorded.
func CommitteeRoles(ctx context.Context, st *store.Store, personID string) ([]schema.PersonCommitteeRole, error) {
	roles, err := st.RolesForPerson(ctx, personID, store.RoleTypeCommittee)
	if err != nil {
		return nil, err
	}
	posts := make([]schema.PersonCommitteeRole, 0, len(roles))
	for _, role := range roles {
		posts = append(posts, schema.PersonCommitteeRole{
			YearTitle:  years.Title(role.TargetYear),
			YearDecade: years.Decade(role.TargetYear),
			YearID:     role.TargetID,
			Role:       role.Role,
		})
	}
	return posts, nil
}
