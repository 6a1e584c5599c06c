package dumper

import (
	"context"

	"callboard/internal/roles"
)

func (d *Dumper) exportRoles(ctx context.Context) error {
	if err := d.writeFile("roles/crew", "index", roles.Definitions()); err != nil {
		return err
	}
	for _, def := range roles.CrewRoleDefinitions {
		collection, err := roles.PeopleByCrewRole(ctx, d.st, def.Name)
		if err != nil {
			return err
		}
		if err := d.writeFile("roles/crew", roles.ID(def.Name), collection); err != nil {
			return err
		}
	}
	for _, roleName := range roles.CommitteeRoles {
		collection, err := roles.PeopleByCommitteeRole(ctx, d.st, roleName)
		if err != nil {
			return err
		}
		if err := d.writeFile("roles/committee", roles.ID(roleName), collection); err != nil {
			return err
		}
	}
	cast, err := roles.PeopleEverCast(ctx, d.st)
	if err != nil {
		return err
	}
	return d.writeFile("roles", "cast", cast)
}
