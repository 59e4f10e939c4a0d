package push

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/store"
)

// Push replaces the shared task list with the session plan, overlay edits
// merged in. Admin only on the backend side.
type Push struct {
	Client      *client.Client
	Persistence store.Persistence
}

func (n *Push) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not push, no persistence")
	}
	if n.Client == nil {
		return errors.New("can not push, no api client")
	}

	tasks, err := n.Persistence.Merged(ctx)
	if err != nil {
		return err
	}
	if err := n.Client.PutTasks(ctx, tasks); err != nil {
		return err
	}

	g := color.New(color.FgGreen)
	_, _ = g.Printf("\nPushed %d tasks\n", len(tasks))
	return nil
}
