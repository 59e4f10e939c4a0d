package plan

import (
	"sort"
	"time"

	"tableflip.dev/cutover/pkg/task"
)

// NoDateKey labels the by-day bucket for tasks with no parsed start date.
const NoDateKey = "No Date"

// Group is one rendered section of a grouped view.
type Group struct {
	Key   string
	Label string
	Color string
	Tasks []task.Task
}

// Done counts completed tasks in the group, for the "done/total" header.
func (g *Group) Done() int {
	n := 0
	for i := range g.Tasks {
		if g.Tasks[i].Status == task.Complete {
			n++
		}
	}
	return n
}

// ByPhase buckets the filtered set into the fixed phases in timeline order;
// anything with an uncategorized phase lands in a trailing Other bucket.
// When phaseFilter is set only that phase's bucket is returned. Empty
// buckets are dropped.
func ByPhase(ts []task.Task, phaseFilter string) []Group {
	phases := task.DefaultPhases()
	buckets := make(map[string][]task.Task, len(phases)+1)
	known := make(map[string]bool, len(phases))
	for _, p := range phases {
		known[p.ID] = true
	}
	for i := range ts {
		key := ts[i].Phase
		if !known[key] {
			key = task.OtherPhase
		}
		buckets[key] = append(buckets[key], ts[i])
	}

	groups := make([]Group, 0, len(phases)+1)
	for _, p := range phases {
		if phaseFilter != "" && p.ID != phaseFilter {
			continue
		}
		if len(buckets[p.ID]) == 0 {
			continue
		}
		groups = append(groups, Group{Key: p.ID, Label: p.Label + " " + p.Focus, Color: p.Color, Tasks: buckets[p.ID]})
	}
	if phaseFilter == "" && len(buckets[task.OtherPhase]) > 0 {
		groups = append(groups, Group{Key: task.OtherPhase, Label: task.OtherPhase, Tasks: buckets[task.OtherPhase]})
	}
	return groups
}

// DayKey renders the by-day bucket label, "Mon Feb 16" style.
func DayKey(d task.Date) string {
	if !d.Parsed {
		return NoDateKey
	}
	return d.Time.Format("Mon Jan 2")
}

// ByDay buckets by start-date day label, ascending by each bucket's first
// task's actual date. Buckets without a date sort last, stably in
// first-seen order; callers have to tolerate that tail.
func ByDay(ts []task.Task) []Group {
	order := make([]string, 0)
	buckets := make(map[string][]task.Task)
	firstDate := make(map[string]time.Time)

	for i := range ts {
		key := DayKey(ts[i].Start)
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
			if ts[i].Start.Parsed {
				firstDate[key] = ts[i].Start.Time
			}
		}
		buckets[key] = append(buckets[key], ts[i])
	}

	seen := make(map[string]int, len(order))
	for i, k := range order {
		seen[k] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, aok := firstDate[order[a]]
		db, bok := firstDate[order[b]]
		switch {
		case !aok && !bok:
			return seen[order[a]] < seen[order[b]]
		case !aok:
			return false
		case !bok:
			return true
		default:
			return da.Before(db)
		}
	})

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{Key: k, Label: k, Tasks: buckets[k]})
	}
	return groups
}
