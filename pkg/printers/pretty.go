package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/task"
	"tableflip.dev/cutover/pkg/timefmt"
)

// PrettyPrint renders plan views to the terminal.
type PrettyPrint struct {
	Zone  timefmt.Zone
	Today time.Time
}

func (pp *PrettyPrint) today() time.Time {
	if pp.Today.IsZero() {
		return time.Now()
	}
	return pp.Today
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Section prints a group header: "P1 Master Data Loading  3/12".
func (pp *PrettyPrint) Section(g *plan.Group) {
	l := color.New(color.Bold)
	c := color.New(color.Faint)
	_, _ = l.Print(g.Label)
	_, _ = c.Printf("  %d/%d\n", g.Done(), len(g.Tasks))
}

// StatCards prints the stat-card line for the base-filtered set.
func (pp *PrettyPrint) StatCards(s plan.Stats) {
	faint := color.New(color.Faint)
	row := []struct {
		label string
		n     int
		c     *color.Color
	}{
		{"Showing", s.Total, color.New(color.Bold)},
		{"Planned", s.Planned, color.New(color.FgBlue)},
		{"In Progress", s.InProgress, color.New(color.FgYellow)},
		{"Complete", s.Complete, color.New(color.FgGreen)},
		{"Past Due", s.PastDue, color.New(color.FgRed, color.Bold)},
		{"US/CA Impact", s.Impacted, color.New(color.FgMagenta)},
	}
	for i, card := range row {
		if i > 0 {
			_, _ = faint.Print("  |  ")
		}
		_, _ = card.c.Printf("%d", card.n)
		_, _ = faint.Printf(" %s", card.label)
	}
	fmt.Println("")
}

// PhaseBar prints per-phase completion over the whole plan.
func (pp *PrettyPrint) PhaseBar(progress []plan.Progress, active string) {
	faint := color.New(color.Faint)
	for _, p := range progress {
		label := color.New(color.Bold)
		if active != "" && active == p.Phase.ID {
			label = color.New(color.Bold, color.Underline)
		}
		_, _ = label.Printf("%s", p.Phase.Label)
		_, _ = faint.Printf(" %d/%d  ", p.Done, p.Total)
	}
	fmt.Println("")
}

// GoalMissing prints the not-found indicator for an unresolvable goal id.
func (pp *PrettyPrint) GoalMissing(id string) {
	r := color.New(color.FgRed, color.Bold)
	_, _ = r.Printf("ID not found: %s\n", id)
}

// Empty prints the no-match placeholder.
func (pp *PrettyPrint) Empty() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" no tasks match filters\n\n")
}

// Detail prints the expanded single-task view with timestamps rendered in
// the configured zone.
func (pp *PrettyPrint) Detail(t *task.Task) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	body := color.New()

	meta := t.Status.Meta()
	_, _ = bold.Printf("%s", t.ID)
	_, _ = faint.Printf("  [%s] %s\n", meta.Short, meta.Label)
	if t.PastDue(pp.today()) {
		r := color.New(color.FgRed, color.Bold)
		_, _ = r.Println("PAST DUE")
	}

	if t.Description != "" {
		_, _ = body.Println(t.Description)
	}

	pair := func(k, v string) {
		if v == "" {
			v = "—"
		}
		_, _ = faint.Printf("%-14s", k)
		_, _ = body.Println(v)
	}
	pair("Phase", t.Phase)
	pair("Workstream", t.Workstream)
	pair("Application", t.Application)
	pair("Class", t.Classification)
	pair("Responsible", t.Responsible)
	pair("PING SME", t.PingSME)
	pair("Executor", t.Executor)
	pair("PING Support", t.PingSupport)
	pair("Infor SME", t.InforSME)
	pair("Start", t.StartLabel())
	pair("End", t.EndLabel())
	if len(t.Dependencies) > 0 {
		pair("Depends on", strings.Join(t.Dependencies, ", "))
	}

	_, _ = faint.Printf("%-14s", "Est")
	_, _ = body.Printf("%s → %s\n", timefmt.Format(t.EstStart, pp.Zone), timefmt.Format(t.EstEnd, pp.Zone))
	_, _ = faint.Printf("%-14s", "Actual")
	_, _ = body.Printf("%s → %s\n", timefmt.Format(t.ActStart, pp.Zone), timefmt.Format(t.ActEnd, pp.Zone))

	flags := make([]string, 0, 3)
	if t.UsCaImpact {
		flags = append(flags, "US/CA IMPACT")
	}
	if t.MockOnly {
		flags = append(flags, "MOCK ONLY")
	}
	if t.JapanExecute {
		flags = append(flags, "JP EXEC")
	}
	if len(flags) > 0 {
		y := color.New(color.FgYellow)
		_, _ = y.Println(strings.Join(flags, "  "))
	}
	if t.Notes != "" {
		i := color.New(color.Faint, color.Italic)
		_, _ = i.Printf("Notes: %s\n", t.Notes)
	}
}
