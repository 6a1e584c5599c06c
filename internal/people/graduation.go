package people

import (
	"context"
	"strconv"
	"time"

	"callboard/internal/schema"
	"callboard/internal/store"
	"callboard/internal/years"
)

// Activity in the academic year starting Y is treated as graduation
// in Y+1, surfaced once the build date reaches June 1 of Y+2. Before
// then the person may simply still be active.
const graduationCutoffMonth = time.June

// Graduation returns a person's graduation estimate. An explicit
// graduation year always wins and carries no cutoff; otherwise the
// estimate derives from the latest role activity across every
// context, or is nil when nothing is known yet.
func Graduation(ctx context.Context, st *store.Store, personID string, explicit *int, now time.Time) (*schema.PersonGraduated, error) {
	if explicit != nil {
		return graduated(*explicit, false), nil
	}

	maxYear, ok, err := st.MaxRoleYear(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	cutoff := time.Date(maxYear+2, graduationCutoffMonth, 1, 0, 0, 0, 0, time.UTC)
	if now.Before(cutoff) {
		return nil, nil
	}
	return graduated(maxYear+1, true), nil
}

func graduated(year int, estimated bool) *schema.PersonGraduated {
	return &schema.PersonGraduated{
		YearTitle:  strconv.Itoa(year),
		YearDecade: years.Decade(year),
		YearID:     years.ID(year - 1),
		Estimated:  estimated,
	}
}
