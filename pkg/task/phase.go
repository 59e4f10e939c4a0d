package task

import "strings"

// Phase describes one of the fixed sequential stages of the cutover
// timeline, plus display metadata used by the phase bar and section headers.
type Phase struct {
	ID    string
	Label string
	Focus string
	Dates string
	Color string
}

// OtherPhase is the bucket for tasks whose phase text matched nothing.
const OtherPhase = "Other"

func DefaultPhases() []Phase {
	return []Phase{
		{ID: "Phase 0", Label: "BL", Focus: "Env Baseline / Cutover Readiness", Dates: "Feb 2-16", Color: "#6366f1"},
		{ID: "Phase 00", Label: "P0", Focus: "Migrate Customers to PRD", Dates: "Feb 16-17", Color: "#8b5cf6"},
		{ID: "Phase 1", Label: "P1", Focus: "Master Data Loading", Dates: "Feb 16-22", Color: "#3b82f6"},
		{ID: "Phase 2", Label: "P2", Focus: "Master Data Sync", Dates: "Feb 16-22", Color: "#0ea5e9"},
		{ID: "Phase 3", Label: "P3", Focus: "Trans Data Prep", Dates: "Feb 23-25", Color: "#14b8a6"},
		{ID: "Phase 4", Label: "P4", Focus: "Blackout / Trans Data Migration", Dates: "Feb 25-Mar 1", Color: "#f59e0b"},
		{ID: "Phase 5", Label: "P5", Focus: "Hypercare", Dates: "Mar 2-9", Color: "#10b981"},
	}
}

// PhaseByID looks up one of the fixed phases.
func PhaseByID(id string) (Phase, bool) {
	for _, p := range DefaultPhases() {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// ParsePhase maps free-text phase/group cells onto a canonical phase id.
// Two sheet conventions are checked before the table: the baseline rows are
// labelled several ways ("Phase 0 ...", "Baseline", "Cutover Readiness"),
// and "Phase 00" must win before a plain "Phase 0" substring test would
// steal it. Text that matches nothing is kept uncategorized rather than
// dropped.
func ParsePhase(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "Phase 0 ") || strings.Contains(s, "Phase 0-") ||
		strings.Contains(s, "Baseline") || strings.Contains(s, "Cutover Readiness") {
		return "Phase 0"
	}
	if strings.Contains(s, "Phase 00") || strings.Contains(s, "Migrate Customers") {
		return "Phase 00"
	}
	for _, p := range DefaultPhases() {
		if strings.Contains(s, p.ID) {
			return p.ID
		}
	}
	return s
}
