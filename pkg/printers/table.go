package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/task"
)

const maxDescription = 60

// Tasks renders the list columns. Past-due rows get a red marker in front
// of the id; the goal task, when set, gets a flag.
func (pp *PrettyPrint) Tasks(ts []task.Task, goalID string) {
	if len(ts) == 0 {
		pp.Empty()
		return
	}

	today := pp.today()
	goalIdx := task.FindByID(ts, goalID)

	tbl := uitable.New()
	tbl.MaxColWidth = maxDescription
	tbl.Separator = "  "
	tbl.AddRow("ID", "ST", "DESCRIPTION", "EXECUTOR", "START", "END")
	for i := range ts {
		t := &ts[i]
		id := t.ID
		if t.PastDue(today) {
			id = color.New(color.FgRed, color.Bold).Sprint(id)
		}
		if i == goalIdx {
			id += " ⚑"
		}
		desc := t.Description
		if desc == "" {
			desc = "(no desc)"
		}
		tbl.AddRow(id, t.Status.Meta().Short, desc, dash(t.Executor), dash(t.StartLabel()), dash(t.EndLabel()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Log renders activity log entries, newest first as the backend stores them.
func (pp *PrettyPrint) Log(entries []client.LogEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" empty log\n\n")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Separator = "  "
	for _, e := range entries {
		tbl.AddRow(e.TS, dash(e.User), e.Msg)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
