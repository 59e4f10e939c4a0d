package task

import "strings"

// Status is the workflow state of a task. The canonical codes mirror the
// spreadsheet's status column; anything the classifier does not recognize is
// carried verbatim so the original text is never lost.
type Status string

const (
	NotMock   Status = "0-Not Mock"
	Planned   Status = "1-Planned"
	WIP       Status = "2-WIP"
	Complete  Status = "4-Complete"
	Archived  Status = "6-Archive"
	NotGoLive Status = "7 - Not Go-Live"
)

// StatusMeta describes how a status renders.
type StatusMeta struct {
	Status Status
	Label  string
	Short  string
	Color  string
}

func DefaultStatuses() []StatusMeta {
	return []StatusMeta{
		{NotMock, "Not Mock", "NM", "#94a3b8"},
		{Planned, "Planned", "PLN", "#3b82f6"},
		{WIP, "In Progress", "WIP", "#f59e0b"},
		{Complete, "Complete", "DONE", "#10b981"},
		{Archived, "Archived", "ARC", "#94a3b8"},
		{NotGoLive, "Not Go-Live", "NGL", "#6b7280"},
	}
}

// Meta returns display metadata for s. Unrecognized fallback codes get the
// raw code back as the label and "?" as the short badge.
func (s Status) Meta() StatusMeta {
	for _, m := range DefaultStatuses() {
		if m.Status == s {
			return m
		}
	}
	return StatusMeta{Status: s, Label: string(s), Short: "?", Color: "#6b7280"}
}

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the task is finished as far as the plan is
// concerned. Complete and Archived tasks are excluded from hide-done views,
// day focus, goal mode, and past-due checks.
func (s Status) Terminal() bool {
	return s == Complete || s == Archived
}

// ParseStatus classifies raw spreadsheet text by its leading character.
// The sheet encodes status as "<digit>-<name>" but editors mangle the text
// freely, so only the prefix is trusted. Empty input means the row was never
// statused and defaults to Planned. Unmatched non-empty input passes through
// as-is rather than being forced into the enumeration.
func ParseStatus(raw string) Status {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Planned
	}
	switch {
	case strings.HasPrefix(s, "0"):
		return NotMock
	case strings.HasPrefix(s, "1"):
		return Planned
	case strings.HasPrefix(s, "2"):
		return WIP
	case strings.HasPrefix(s, "4"):
		return Complete
	case strings.HasPrefix(s, "6"):
		return Archived
	case strings.HasPrefix(s, "7"):
		return NotGoLive
	}
	return Status(s)
}
