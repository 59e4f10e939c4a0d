package task

import "testing"

func TestParsePhaseSpecialRules(t *testing.T) {
	cases := map[string]string{
		"Phase 0 - Env Baseline":          "Phase 0",
		"Phase 0-Baseline":                "Phase 0",
		"Baseline checks":                 "Phase 0",
		"Cutover Readiness":               "Phase 0",
		"Phase 00 - kickoff":              "Phase 00",
		"Migrate Customers to PRD":        "Phase 00",
		"Phase 1 - Master Data Loading":   "Phase 1",
		"Phase 4: Blackout":               "Phase 4",
		"some text with Phase 5 embedded": "Phase 5",
	}
	for in, want := range cases {
		if got := ParsePhase(in); got != want {
			t.Fatalf("ParsePhase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePhaseZeroZeroWinsOverZero(t *testing.T) {
	// "Phase 00" contains "Phase 0" as a substring; the table must not claim it.
	if got := ParsePhase("Phase 00"); got != "Phase 00" {
		t.Fatalf("ParsePhase(Phase 00) = %q", got)
	}
}

func TestParsePhaseUnmatchedKeepsText(t *testing.T) {
	if got := ParsePhase("  hypercare retro  "); got != "hypercare retro" {
		t.Fatalf("unmatched phase = %q, want trimmed raw", got)
	}
	if got := ParsePhase(""); got != "" {
		t.Fatalf("empty phase = %q, want empty", got)
	}
}

func TestPhaseByID(t *testing.T) {
	p, ok := PhaseByID("Phase 3")
	if !ok {
		t.Fatalf("Phase 3 not found")
	}
	if p.Label != "P3" {
		t.Fatalf("Phase 3 label = %q", p.Label)
	}
	if _, ok := PhaseByID("Phase 9"); ok {
		t.Fatalf("Phase 9 should not exist")
	}
}
