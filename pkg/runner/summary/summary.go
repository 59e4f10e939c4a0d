// Package summary provides the runner logic for the AI standup summary.
package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/printers"
	"tableflip.dev/cutover/pkg/store"
)

const wrapWidth = 80

// Summary submits the currently filtered task subset for summarization and
// prints what the model wrote.
type Summary struct {
	State       plan.State
	User        string
	Client      *client.Client
	Persistence store.Persistence

	Today time.Time
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not summarize, no persistence")
	}
	if n.Client == nil {
		return errors.New("can not summarize, no api client")
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
	if len(res.Tasks) == 0 {
		return errors.New("summary: no tasks match the current filters")
	}

	sctx := client.SummaryContext{
		PhaseFilter: n.State.Phase,
		FocusMode:   string(n.State.Mode),
		GeneratedBy: n.User,
	}
	if !n.State.FocusDate.IsZero() {
		sctx.FocusDate = n.State.FocusDate.Format("2006-01-02")
	}

	text, err := n.Client.Summary(ctx, res.Tasks, sctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Standup summary", len(res.Tasks))
	fmt.Println(wordwrap.String(text, wrapWidth))
	return nil
}
