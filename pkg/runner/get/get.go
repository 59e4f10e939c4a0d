package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
	"tableflip.dev/cutover/pkg/timefmt"
)

// Get renders a filtered view of the session plan.
type Get struct {
	State       plan.State
	By          string // phase, day, or flat
	Zone        timefmt.Zone
	JSON        bool
	Persistence store.Persistence

	// Today overrides the evaluation date, for tests.
	Today time.Time
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
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

	if n.JSON {
		b, err := json.Marshal(res.Tasks)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Zone: n.Zone, Today: today}
	fmt.Println("")

	if res.GoalMissing {
		pp.GoalMissing(n.State.GoalID)
		pp.Empty()
		return nil
	}

	switch n.By {
	case "flat":
		pp.Tasks(res.Tasks, n.State.GoalID)
	case "day":
		for _, g := range plan.ByDay(res.Tasks) {
			pp.Section(&g)
			pp.Tasks(g.Tasks, n.State.GoalID)
		}
		if len(res.Tasks) == 0 {
			pp.Empty()
		}
	default:
		for _, g := range plan.ByPhase(res.Tasks, n.State.Phase) {
			pp.Section(&g)
			pp.Tasks(g.Tasks, n.State.GoalID)
		}
		if len(res.Tasks) == 0 {
			pp.Empty()
		}
	}

	pp.StatCards(plan.Tally(res.Base, today))
	return nil
}
