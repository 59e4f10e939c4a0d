package plan

import (
	"time"

	"tableflip.dev/cutover/pkg/task"
)

// Stats are the stat-card counters. They are tallied over the base-filtered
// set only, so the cards keep showing the denominator while a stat-card or
// day-focus overlay narrows the list.
type Stats struct {
	Total      int
	Complete   int
	InProgress int
	Planned    int
	Other      int
	Impacted   int
	PastDue    int
}

// Tally computes the stat cards for ts.
func Tally(ts []task.Task, today time.Time) Stats {
	s := Stats{Total: len(ts)}
	for i := range ts {
		t := &ts[i]
		switch t.Status {
		case task.Complete:
			s.Complete++
		case task.WIP:
			s.InProgress++
		case task.Planned:
			s.Planned++
		default:
			s.Other++
		}
		if t.UsCaImpact {
			s.Impacted++
		}
		if t.PastDue(today) {
			s.PastDue++
		}
	}
	return s
}

// Progress is a phase's done/total over the whole plan, for the phase bar.
type Progress struct {
	Phase task.Phase
	Total int
	Done  int
}

// PhaseProgress computes per-phase completion over the FULL task list,
// independent of any filter, in timeline order. Uncategorized tasks are not
// counted here; the bar only tracks the seven fixed phases.
func PhaseProgress(ts []task.Task) []Progress {
	phases := task.DefaultPhases()
	out := make([]Progress, len(phases))
	idx := make(map[string]int, len(phases))
	for i, p := range phases {
		out[i].Phase = p
		idx[p.ID] = i
	}
	for i := range ts {
		j, ok := idx[ts[i].Phase]
		if !ok {
			continue
		}
		out[j].Total++
		if ts[i].Status == task.Complete {
			out[j].Done++
		}
	}
	return out
}
