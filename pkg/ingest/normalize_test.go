package ingest

import (
	"testing"
	"time"

	"tableflip.dev/cutover/pkg/task"
)

const sample = `Activity ID,Status,Work Stream,Application,Phase / Group,Expected Start Date,Expected End Date,Description and Notes,US/CA Impact?,Mock Only,Executor
M3-101,2-WIP,Finance,LN,Phase 1 - Master Data Loading,2/16,2/17,Load GL balances,Yes,No,alice
M3-102,,Basis,,Phase 00 - Migrate Customers,2/16,,Customer copy,,yes - mock only,bob
,4-Complete,Finance,LN,Phase 1,2/16,2/17,row without id,,,
M3-103,4-Complete,,,mystery group,TBD,2/20/25,Wrap up,no,,carol
`

func TestParsePipeline(t *testing.T) {
	tasks, err := Parse(sample, 2026)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("tasks = %d, want 3 (row without id dropped)", len(tasks))
	}

	a := tasks[0]
	if a.ID != "M3-101" || a.Status != task.WIP || a.Phase != "Phase 1" {
		t.Fatalf("first task = %+v", a)
	}
	if !a.Start.Parsed || a.Start.Time.Month() != time.February || a.Start.Time.Day() != 16 || a.Start.Time.Year() != 2026 {
		t.Fatalf("first start = %v", a.Start)
	}
	if !a.UsCaImpact {
		t.Fatalf("Yes impact should set the flag")
	}
	if a.MockOnly {
		t.Fatalf("No should not set mock")
	}
	if a.Executor != "alice" {
		t.Fatalf("executor = %q", a.Executor)
	}

	b := tasks[1]
	if b.Status != task.Planned {
		t.Fatalf("empty status = %q, want Planned", b.Status)
	}
	if b.Phase != "Phase 00" {
		t.Fatalf("phase = %q, want Phase 00", b.Phase)
	}
	if b.Application != "All" {
		t.Fatalf("empty application = %q, want All", b.Application)
	}
	if !b.MockOnly {
		t.Fatalf("yes-substring should set mock")
	}
	if b.End.Parsed {
		t.Fatalf("empty end date should stay unparsed")
	}

	c := tasks[2]
	if c.Workstream != "Other" {
		t.Fatalf("empty workstream = %q, want Other", c.Workstream)
	}
	if c.Phase != "mystery group" {
		t.Fatalf("unmatched phase = %q, want verbatim", c.Phase)
	}
	if c.Start.Parsed || c.StartRaw != "TBD" {
		t.Fatalf("TBD should keep raw text: %+v", c)
	}
	if !c.End.Parsed || c.End.Time.Year() != 2025 {
		t.Fatalf("2/20/25 end = %v", c.End)
	}
}

func TestNormalizeRowDependencies(t *testing.T) {
	c := Columns{ID: "id", Dependencies: "deps"}
	tk := NormalizeRow(map[string]string{"id": "A", "deps": "M3-1, M3-2, ,M3-3"}, c, 2026)
	if tk == nil {
		t.Fatalf("row dropped")
	}
	if len(tk.Dependencies) != 3 || tk.Dependencies[1] != "M3-2" {
		t.Fatalf("dependencies = %v", tk.Dependencies)
	}
}

func TestNormalizeRowDropsEmptyID(t *testing.T) {
	c := Columns{ID: "id"}
	if tk := NormalizeRow(map[string]string{"id": "  "}, c, 2026); tk != nil {
		t.Fatalf("blank id should drop the row, got %+v", tk)
	}
}

func TestParseOrderPreserved(t *testing.T) {
	tasks, err := Parse("Activity,Status\nC,1\nA,1\nB,1\n", 2026)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tasks[0].ID != "C" || tasks[1].ID != "A" || tasks[2].ID != "B" {
		t.Fatalf("row order not preserved: %v", tasks)
	}
}
