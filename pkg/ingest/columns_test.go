package ingest

import "testing"

func TestResolveColumnsFuzzyHeaders(t *testing.T) {
	headers := []string{
		"Activity ID",
		"Status",
		"Work Stream",
		"Phase / Group",
		"Expected Start Date",
		"Expected End Date",
		"Description and Notes",
		"US/CA Impact?",
		"Mock Only",
		"Japan to Execute",
	}
	c := ResolveColumns(headers)
	if c.ID != "Activity ID" {
		t.Fatalf("ID column = %q", c.ID)
	}
	if c.Workstream != "Work Stream" {
		t.Fatalf("Workstream column = %q", c.Workstream)
	}
	if c.Phase != "Phase / Group" {
		t.Fatalf("Phase column = %q", c.Phase)
	}
	if c.Start != "Expected Start Date" || c.End != "Expected End Date" {
		t.Fatalf("date columns = %q / %q", c.Start, c.End)
	}
	if c.Impact != "US/CA Impact?" {
		t.Fatalf("Impact column = %q", c.Impact)
	}
	if c.Mock != "Mock Only" || c.Japan != "Japan to Execute" {
		t.Fatalf("flag columns = %q / %q", c.Mock, c.Japan)
	}
}

func TestResolveColumnsFirstHeaderWins(t *testing.T) {
	// Two headers both contain "status"; column order decides.
	c := ResolveColumns([]string{"Activity", "Status", "Substatus"})
	if c.Status != "Status" {
		t.Fatalf("Status column = %q, want first match in column order", c.Status)
	}
}

func TestResolveColumnsIDFallsBackToFirst(t *testing.T) {
	c := ResolveColumns([]string{"Ref", "Status"})
	if c.ID != "Ref" {
		t.Fatalf("ID fallback = %q, want first column", c.ID)
	}
}

func TestResolveColumnsMissingAreEmpty(t *testing.T) {
	c := ResolveColumns([]string{"Activity"})
	if c.Status != "" || c.Phase != "" || c.Start != "" {
		t.Fatalf("missing columns should resolve empty: %+v", c)
	}
}

func TestNormalizeHeader(t *testing.T) {
	if got := normalizeHeader("Expected Start Date!"); got != "expectedstartdate" {
		t.Fatalf("normalizeHeader = %q", got)
	}
	if got := normalizeHeader("US/CA Impact?"); got != "uscaimpact" {
		t.Fatalf("normalizeHeader = %q", got)
	}
}
