package dumper

import (
	"context"

	"github.com/google/uuid"

	"callboard/internal/schema"
)

// exportSiteStats computes counts from the store directly so the task
// stays independent of the other export tasks.
func (d *Dumper) exportSiteStats(ctx context.Context) error {
	showCount, err := d.st.ShowCount(ctx)
	if err != nil {
		return err
	}
	personCount, err := d.st.PersonCount(ctx)
	if err != nil {
		return err
	}
	return d.writeFile("", "index", schema.SiteStats{
		BuildTime:   d.now.UTC(),
		BuildID:     uuid.NewString(),
		Branch:      d.cfg.Build.Branch,
		ShowCount:   showCount,
		PersonCount: personCount,
	})
}
