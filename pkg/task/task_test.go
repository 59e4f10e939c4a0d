package task

import (
	"encoding/json"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.Local), Parsed: true}
}

func TestPastDue(t *testing.T) {
	today := time.Date(2026, time.February, 20, 10, 30, 0, 0, time.Local)

	tk := Task{Status: WIP, End: day(2026, time.February, 18)}
	if !tk.PastDue(today) {
		t.Fatalf("task ending Feb 18 should be past due on Feb 20")
	}

	tk.End = day(2026, time.February, 20)
	if tk.PastDue(today) {
		t.Fatalf("task ending today is not past due until the day is over")
	}

	tk.End = day(2026, time.February, 18)
	tk.Status = Complete
	if tk.PastDue(today) {
		t.Fatalf("complete tasks are never past due")
	}

	tk.Status = WIP
	tk.End = Date{}
	if tk.PastDue(today) {
		t.Fatalf("unparsed end date is never past due")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := day(2026, time.February, 16)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-02-16"` {
		t.Fatalf("marshal = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Parsed || !back.SameDay(d.Time) {
		t.Fatalf("round trip lost the day: %+v", back)
	}

	b, _ = json.Marshal(Date{})
	if string(b) != "null" {
		t.Fatalf("unparsed date marshals as %s, want null", b)
	}
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if back.Parsed {
		t.Fatalf("null should decode unparsed")
	}
}

func TestFindByID(t *testing.T) {
	ts := []Task{{ID: "M3-101"}, {ID: "M3-102"}, {ID: "M3-103"}}
	if got := FindByID(ts, "m3-102"); got != 1 {
		t.Fatalf("case-insensitive find = %d, want 1", got)
	}
	if got := FindByID(ts, " M3-103 "); got != 2 {
		t.Fatalf("trimmed find = %d, want 2", got)
	}
	if got := FindByID(ts, "M3-999"); got != -1 {
		t.Fatalf("missing id = %d, want -1", got)
	}
	if got := FindByID(ts, ""); got != -1 {
		t.Fatalf("empty id = %d, want -1", got)
	}
}

func TestWorkstreamsSortedDistinct(t *testing.T) {
	ts := []Task{
		{Workstream: "Finance"},
		{Workstream: "Basis"},
		{Workstream: "Finance"},
		{Workstream: ""},
	}
	ws := Workstreams(ts)
	if len(ws) != 2 || ws[0] != "Basis" || ws[1] != "Finance" {
		t.Fatalf("Workstreams = %v", ws)
	}
}

func TestApplyTimes(t *testing.T) {
	tk := Task{ID: "A", EstStart: "09:00", ActStart: "09:10"}
	cleared := ""
	v := "14:05"
	tk.Apply(Times{ActStart: &v, EstStart: &cleared})
	if tk.ActStart != "14:05" {
		t.Fatalf("ActStart = %q", tk.ActStart)
	}
	if tk.EstStart != "" {
		t.Fatalf("EstStart should have been cleared, got %q", tk.EstStart)
	}
}

func TestTimesMerge(t *testing.T) {
	a, b := "10:00", "11:00"
	var e Times
	e.Merge(Times{EstStart: &a})
	e.Merge(Times{EstEnd: &b})
	if e.EstStart == nil || *e.EstStart != "10:00" {
		t.Fatalf("merge dropped EstStart: %+v", e)
	}
	if e.EstEnd == nil || *e.EstEnd != "11:00" {
		t.Fatalf("merge dropped EstEnd: %+v", e)
	}
	if !new(Times).Empty() {
		t.Fatalf("zero Times should be empty")
	}
	if e.Empty() {
		t.Fatalf("populated Times should not be empty")
	}
}
