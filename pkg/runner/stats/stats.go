package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
)

// Stats prints the stat cards over the base-filtered set plus the phase
// progress bar over the whole plan.
type Stats struct {
	State       plan.State
	Persistence store.Persistence

	Today time.Time
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get stats, no persistence")
	}

	tasks, err := n.Persistence.Merged(ctx)
	if err != nil {
		return err
	}

	today := n.Today
	if today.IsZero() {
		today = time.Now()
	}
	res := plan.Apply(tasks, n.State, today)

	pp := printers.PrettyPrint{Today: today}
	fmt.Println("")
	pp.TitleWithCount("Cutover plan", len(tasks))
	pp.PhaseBar(plan.PhaseProgress(tasks), n.State.Phase)
	pp.StatCards(plan.Tally(res.Base, today))
	return nil
}
