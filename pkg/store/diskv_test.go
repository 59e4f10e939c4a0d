package store

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/cutover/pkg/task"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) API() string      { return "" }
func (c *testConfig) Token() string    { return "" }
func (c *testConfig) Timezone() string { return "GMT" }
func (c *testConfig) Year() int        { return 2026 }

func testStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestTasksBeforeLoad(t *testing.T) {
	p := testStore(t)
	_, err := p.Tasks(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no plan loaded") {
		t.Fatalf("expected no-plan error, got %v", err)
	}
}

func TestReplaceAndRead(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)
	want := []task.Task{{ID: "A", Status: task.WIP}, {ID: "B", Status: task.Planned}}
	if err := p.Replace(ctx, want); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err := p.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(got) != 2 || got[0].ID != "A" || got[1].Status != task.Planned {
		t.Fatalf("roundtrip = %+v", got)
	}
}

func TestSetTimesAndMerged(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)
	if err := p.Replace(ctx, []task.Task{{ID: "M3-101"}, {ID: "M3-102"}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	v := "14:05"
	if err := p.SetTimes(ctx, "m3-101", task.Times{ActStart: &v}); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}
	w := "16:30"
	if err := p.SetTimes(ctx, "M3-101", task.Times{ActEnd: &w}); err != nil {
		t.Fatalf("SetTimes second edit: %v", err)
	}

	merged, err := p.Merged(ctx)
	if err != nil {
		t.Fatalf("Merged: %v", err)
	}
	if merged[0].ActStart != "14:05" || merged[0].ActEnd != "16:30" {
		t.Fatalf("partial edits should merge, got %+v", merged[0])
	}
	if merged[1].ActStart != "" {
		t.Fatalf("edit leaked onto the wrong task: %+v", merged[1])
	}

	// The stored base tasks stay untouched.
	base, _ := p.Tasks(ctx)
	if base[0].ActStart != "" {
		t.Fatalf("overlay edits must not mutate the base plan")
	}
}

func TestSetTimesValidation(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)
	if err := p.Replace(ctx, []task.Task{{ID: "A"}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	v := "10:00"
	if err := p.SetTimes(ctx, "", task.Times{ActStart: &v}); err == nil {
		t.Fatalf("empty id should fail")
	}
	if err := p.SetTimes(ctx, "A", task.Times{}); err == nil {
		t.Fatalf("empty edit should fail")
	}
	if err := p.SetTimes(ctx, "ZZZ", task.Times{ActStart: &v}); err == nil {
		t.Fatalf("unknown id should fail")
	}
}

func TestReplaceDropsOverlay(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)
	if err := p.Replace(ctx, []task.Task{{ID: "A"}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	v := "10:00"
	if err := p.SetTimes(ctx, "A", task.Times{ActStart: &v}); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}

	if err := p.Replace(ctx, []task.Task{{ID: "A"}}); err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	merged, err := p.Merged(ctx)
	if err != nil {
		t.Fatalf("Merged: %v", err)
	}
	if merged[0].ActStart != "" {
		t.Fatalf("replace should discard the overlay, got %q", merged[0].ActStart)
	}
}
