package task

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Date is a permissively parsed calendar date. Parsed is false when the
// source text did not look like a date at all, in which case the raw string
// is still shown to the user (kept on the Task, not here).
type Date struct {
	Time   time.Time
	Parsed bool
}

const layoutISO = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Parsed {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(layoutISO))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(layoutISO, *s)
	if err != nil {
		return err
	}
	*d = Date{Time: t, Parsed: true}
	return nil
}

// SameDay reports whether d falls on the given calendar day.
func (d Date) SameDay(then time.Time) bool {
	if !d.Parsed {
		return false
	}
	return d.Time.Year() == then.Year() &&
		d.Time.Month() == then.Month() &&
		d.Time.Day() == then.Day()
}

// EndOfDay returns 23:59:59 on d's calendar day.
func (d Date) EndOfDay() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 23, 59, 59, 0, d.Time.Location())
}

// Short renders "Feb 16" style labels for the list columns.
func (d Date) Short() string {
	if !d.Parsed {
		return ""
	}
	return d.Time.Format("Jan 2")
}

// Task is one row of the cutover plan. Slice order equals CSV row order and
// is semantically meaningful: goal mode shows everything up to a task's
// ordinal position.
type Task struct {
	ID             string   `json:"id"`
	Status         Status   `json:"status"`
	Phase          string   `json:"phase"`
	Workstream     string   `json:"workstream"`
	Application    string   `json:"application"`
	Classification string   `json:"classification,omitempty"`
	Description    string   `json:"description"`
	Responsible    string   `json:"responsible,omitempty"`
	PingSME        string   `json:"pingSme,omitempty"`
	Executor       string   `json:"executor,omitempty"`
	PingSupport    string   `json:"pingSupport,omitempty"`
	InforSME       string   `json:"inforSme,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	StartRaw       string   `json:"startDateRaw,omitempty"`
	EndRaw         string   `json:"endDateRaw,omitempty"`
	Start          Date     `json:"startDate"`
	End            Date     `json:"endDate"`
	UsCaImpact     bool     `json:"usCaImpact"`
	MockOnly       bool     `json:"mockOnly"`
	JapanExecute   bool     `json:"japanExecute"`
	Dependencies   []string `json:"dependencies,omitempty"`

	// Session-entered timestamps, HH:MM. Empty at load time; user edits
	// live in the overlay and are merged on read.
	EstStart string `json:"estimatedStart,omitempty"`
	EstEnd   string `json:"estimatedEnd,omitempty"`
	ActStart string `json:"actualStart,omitempty"`
	ActEnd   string `json:"actualEnd,omitempty"`
}

// PastDue reports whether the task's end date has fully elapsed relative to
// today (start of day). Terminal tasks are never past due, and neither is a
// task ending today: the whole end day has to be behind us.
func (t *Task) PastDue(today time.Time) bool {
	if t.Status.Terminal() {
		return false
	}
	if !t.End.Parsed {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return t.End.EndOfDay().Before(day)
}

// StartLabel is the start column text: parsed dates render short, everything
// else falls back to the raw export text.
func (t *Task) StartLabel() string {
	if t.Start.Parsed {
		return t.Start.Short()
	}
	return t.StartRaw
}

func (t *Task) EndLabel() string {
	if t.End.Parsed {
		return t.End.Short()
	}
	return t.EndRaw
}

// FindByID resolves id to its ordinal position in ts, matching
// case-insensitively on the exact id. Returns -1 when absent.
func FindByID(ts []Task, id string) int {
	q := strings.ToUpper(strings.TrimSpace(id))
	if q == "" {
		return -1
	}
	for i := range ts {
		if strings.ToUpper(ts[i].ID) == q {
			return i
		}
	}
	return -1
}

// Workstreams returns the sorted distinct workstream values present in ts.
func Workstreams(ts []Task) []string {
	return distinct(ts, func(t *Task) string { return t.Workstream })
}

// Owners returns the sorted distinct non-empty responsible values in ts.
func Owners(ts []Task) []string {
	return distinct(ts, func(t *Task) string { return t.Responsible })
}

func distinct(ts []Task, f func(*Task) string) []string {
	seen := make(map[string]bool, len(ts))
	out := make([]string, 0, len(ts))
	for i := range ts {
		v := f(&ts[i])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
