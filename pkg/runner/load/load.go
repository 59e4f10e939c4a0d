// Package load provides the runner logic for ingesting a spreadsheet
// export into the session store.
package load

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/cutover/pkg/ingest"
	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
)

// Load replaces the session plan with a freshly parsed CSV/TSV export.
// Parse failures and empty sheets leave the prior plan untouched.
type Load struct {
	Path        string
	Year        int
	Persistence store.Persistence
}

func (n *Load) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not load, no persistence")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("load: read %s: %w", n.Path, err)
	}

	year := n.Year
	if year == 0 {
		year = ingest.DefaultYear
	}

	tasks, err := ingest.Parse(string(data), year)
	if err != nil {
		if errors.Is(err, ingest.ErrNoData) {
			return fmt.Errorf("load: %s has no data rows", n.Path)
		}
		return fmt.Errorf("load: parse %s: %w", n.Path, err)
	}

	if err := n.Persistence.Replace(ctx, tasks); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Loaded "+n.Path, len(tasks))
	pp.PhaseBar(plan.PhaseProgress(tasks), "")
	return nil
}
