// Package set provides the runner logic for recording overlay timestamps
// against a task.
package set

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
	"tableflip.dev/cutover/pkg/task"
	"tableflip.dev/cutover/pkg/timefmt"
)

// Set merges a partial timestamp edit into the session overlay and echoes
// the task back with the edit applied.
type Set struct {
	ID          string
	Edit        task.Times
	Zone        timefmt.Zone
	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set times, no persistence")
	}

	if err := n.Persistence.SetTimes(ctx, n.ID, n.Edit); err != nil {
		return err
	}

	tasks, err := n.Persistence.Merged(ctx)
	if err != nil {
		return err
	}
	idx := task.FindByID(tasks, n.ID)
	if idx < 0 {
		return fmt.Errorf("set: unknown task id %q", n.ID)
	}

	pp := printers.PrettyPrint{Zone: n.Zone}
	fmt.Println("")
	pp.Detail(&tasks[idx])
	return nil
}
