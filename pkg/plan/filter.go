// Package plan computes the derived views of a loaded cutover plan: the
// composable filter pipeline, the grouping strategies, and the stat cards.
// Everything here is a pure function of (tasks, state, today) so a view can
// be recomputed at any time and always comes out the same.
package plan

import (
	"strings"
	"time"

	"tableflip.dev/cutover/pkg/task"
)

// Stat narrows the view to one stat card's population.
type Stat string

const (
	StatNone     Stat = ""
	StatComplete Stat = "complete"
	StatWIP      Stat = "wip"
	StatPlanned  Stat = "planned"
	StatPastDue  Stat = "pastdue"
	StatImpact   Stat = "impact"
)

// Mode is the day-focus mode. Off means no overlay narrowing.
type Mode string

const (
	ModeOff      Mode = ""
	ModeStarting Mode = "starting"
	ModeDueBy    Mode = "dueby"
	ModeGoal     Mode = "goal"
)

// State is the full filter tuple. The zero value filters nothing. State is
// process-local and resets entirely when a new sheet is loaded.
type State struct {
	Phase      string
	Workstream string
	Status     task.Status
	Owner      string
	Search     string
	HideDone   bool

	Stat      Stat
	FocusDate time.Time // zero means unset
	Mode      Mode
	GoalID    string
}

// searchFields are the OR-composed free-text search targets.
func searchFields(t *task.Task) []string {
	return []string{t.ID, t.Description, t.PingSME, t.Executor, t.InforSME, t.PingSupport, t.Notes}
}

func (s *State) matchesBase(t *task.Task) bool {
	if s.Phase != "" && t.Phase != s.Phase {
		return false
	}
	if s.Workstream != "" && t.Workstream != s.Workstream {
		return false
	}
	if s.Status != "" && t.Status != s.Status {
		return false
	}
	if s.Owner != "" && t.Responsible != s.Owner {
		return false
	}
	if s.HideDone && t.Status.Terminal() {
		return false
	}
	if s.Search != "" {
		q := strings.ToLower(s.Search)
		hit := false
		for _, f := range searchFields(t) {
			if f != "" && strings.Contains(strings.ToLower(f), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Result is one evaluation of the filter pipeline. Base is the set the stat
// cards tally (before overlay narrowing); Tasks is what the list renders.
type Result struct {
	Base  []task.Task
	Tasks []task.Task

	// GoalIndex is the resolved goal task's position in the full list, or
	// -1. GoalMissing distinguishes "no goal set" from "id not found":
	// the latter yields an empty Tasks plus an indicator, never an error.
	GoalIndex   int
	GoalMissing bool
}

// Apply runs the two filter stages over tasks in order. Base filters are
// AND-composed and order independent. The overlay stage then applies the
// stat-card filter and the active day-focus mode. Goal positions are
// resolved against the FULL task list, not the filtered one, because CSV
// row order is the plan order.
func Apply(tasks []task.Task, s State, today time.Time) Result {
	res := Result{GoalIndex: -1}

	base := make([]task.Task, 0, len(tasks))
	for i := range tasks {
		if s.matchesBase(&tasks[i]) {
			base = append(base, tasks[i])
		}
	}
	res.Base = base

	list := base
	if s.Stat != StatNone {
		list = filterStat(list, s.Stat, today)
	}

	switch {
	case s.Mode == ModeStarting && !s.FocusDate.IsZero():
		list = filterFocus(list, func(t *task.Task) bool {
			return t.Start.SameDay(s.FocusDate)
		})
	case s.Mode == ModeDueBy && !s.FocusDate.IsZero():
		eod := time.Date(s.FocusDate.Year(), s.FocusDate.Month(), s.FocusDate.Day(), 23, 59, 59, 0, s.FocusDate.Location())
		list = filterFocus(list, func(t *task.Task) bool {
			if !t.End.Parsed {
				return t.PastDue(today)
			}
			return t.PastDue(today) || !t.End.EndOfDay().After(eod)
		})
	case s.Mode == ModeGoal && strings.TrimSpace(s.GoalID) != "":
		idx := task.FindByID(tasks, s.GoalID)
		res.GoalIndex = idx
		if idx < 0 {
			res.GoalMissing = true
			list = nil
			break
		}
		list = filterFocus(list, func(t *task.Task) bool {
			return task.FindByID(tasks, t.ID) <= idx
		})
	}

	res.Tasks = list
	return res
}

// filterFocus applies a day-focus predicate; terminal tasks are always out
// of focus views, whatever the mode.
func filterFocus(ts []task.Task, keep func(*task.Task) bool) []task.Task {
	out := make([]task.Task, 0, len(ts))
	for i := range ts {
		if ts[i].Status.Terminal() {
			continue
		}
		if keep(&ts[i]) {
			out = append(out, ts[i])
		}
	}
	return out
}

func filterStat(ts []task.Task, stat Stat, today time.Time) []task.Task {
	out := make([]task.Task, 0, len(ts))
	for i := range ts {
		t := &ts[i]
		keep := true
		switch stat {
		case StatComplete:
			keep = t.Status == task.Complete
		case StatWIP:
			keep = t.Status == task.WIP
		case StatPlanned:
			keep = t.Status == task.Planned
		case StatPastDue:
			keep = t.PastDue(today)
		case StatImpact:
			keep = t.UsCaImpact
		}
		if keep {
			out = append(out, ts[i])
		}
	}
	return out
}
