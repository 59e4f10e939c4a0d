package pull

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
)

// Pull fetches the shared task list from the backend and replaces the
// session plan with it. Same lifecycle as a CSV load: full swap, overlay
// discarded.
type Pull struct {
	Client      *client.Client
	Persistence store.Persistence
}

func (n *Pull) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not pull, no persistence")
	}
	if n.Client == nil {
		return errors.New("can not pull, no api client")
	}

	tasks, err := n.Client.GetTasks(ctx)
	if err != nil {
		return err
	}
	if err := n.Persistence.Replace(ctx, tasks); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Pulled shared plan", len(tasks))
	pp.PhaseBar(plan.PhaseProgress(tasks), "")
	return nil
}
