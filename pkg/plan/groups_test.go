package plan

import (
	"testing"
	"time"

	"tableflip.dev/cutover/pkg/task"
)

func TestByPhaseTimelineOrder(t *testing.T) {
	ts := []task.Task{
		{ID: "A", Phase: "Phase 2"},
		{ID: "B", Phase: "Phase 0"},
		{ID: "C", Phase: "weird"},
		{ID: "D", Phase: "Phase 2", Status: task.Complete},
	}
	groups := ByPhase(ts, "")
	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	if groups[0].Key != "Phase 0" || groups[1].Key != "Phase 2" {
		t.Fatalf("phase order = %s, %s", groups[0].Key, groups[1].Key)
	}
	if groups[2].Key != task.OtherPhase {
		t.Fatalf("uncategorized bucket = %q, want trailing Other", groups[2].Key)
	}
	if got := groups[1].Done(); got != 1 {
		t.Fatalf("Phase 2 done = %d", got)
	}
}

func TestByPhaseFilterNarrows(t *testing.T) {
	ts := []task.Task{
		{ID: "A", Phase: "Phase 1"},
		{ID: "B", Phase: "Phase 2"},
		{ID: "C", Phase: "weird"},
	}
	groups := ByPhase(ts, "Phase 1")
	if len(groups) != 1 || groups[0].Key != "Phase 1" {
		t.Fatalf("filtered groups = %v", groups)
	}
}

func TestByPhaseDropsEmptyBuckets(t *testing.T) {
	groups := ByPhase([]task.Task{{ID: "A", Phase: "Phase 5"}}, "")
	if len(groups) != 1 || groups[0].Key != "Phase 5" {
		t.Fatalf("empty buckets should be dropped: %v", groups)
	}
}

func TestByDayOrdering(t *testing.T) {
	ts := []task.Task{
		{ID: "A", Start: date(2026, time.February, 18)},
		{ID: "B"},
		{ID: "C", Start: date(2026, time.February, 16)},
		{ID: "D", Start: date(2026, time.February, 18)},
	}
	groups := ByDay(ts)
	if len(groups) != 3 {
		t.Fatalf("day groups = %d", len(groups))
	}
	if groups[0].Key != "Mon Feb 16" {
		t.Fatalf("first day = %q", groups[0].Key)
	}
	if groups[1].Key != "Wed Feb 18" || len(groups[1].Tasks) != 2 {
		t.Fatalf("second day = %q with %d tasks", groups[1].Key, len(groups[1].Tasks))
	}
	if groups[2].Key != NoDateKey {
		t.Fatalf("dateless bucket = %q, want trailing %q", groups[2].Key, NoDateKey)
	}
}
