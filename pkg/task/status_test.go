package task

import "testing"

func TestParseStatusPrefixes(t *testing.T) {
	cases := map[string]Status{
		"0-Not Mock":      NotMock,
		"1-Planned":       Planned,
		"1 - planned":     Planned,
		"2-WIP":           WIP,
		"2 - In Progress": WIP,
		"4-Complete":      Complete,
		"4 done":          Complete,
		"6-Archive":       Archived,
		"7 - Not Go-Live": NotGoLive,
	}
	for in, want := range cases {
		if got := ParseStatus(in); got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseStatusEmptyDefaultsToPlanned(t *testing.T) {
	if got := ParseStatus(""); got != Planned {
		t.Fatalf("empty status = %q, want Planned", got)
	}
	if got := ParseStatus("   "); got != Planned {
		t.Fatalf("blank status = %q, want Planned", got)
	}
}

func TestParseStatusUnmatchedPassesThrough(t *testing.T) {
	if got := ParseStatus("blocked on vendor"); got != Status("blocked on vendor") {
		t.Fatalf("unmatched status = %q, want verbatim", got)
	}
}

func TestTerminal(t *testing.T) {
	if !Complete.Terminal() {
		t.Fatalf("Complete should be terminal")
	}
	if !Archived.Terminal() {
		t.Fatalf("Archived should be terminal")
	}
	if WIP.Terminal() {
		t.Fatalf("WIP should not be terminal")
	}
	if NotGoLive.Terminal() {
		t.Fatalf("NotGoLive should not be terminal")
	}
}

func TestMetaFallback(t *testing.T) {
	m := Status("blocked on vendor").Meta()
	if m.Short != "?" {
		t.Fatalf("unknown status short = %q, want ?", m.Short)
	}
	if m.Label != "blocked on vendor" {
		t.Fatalf("unknown status label = %q, want raw code", m.Label)
	}
	if got := WIP.Meta().Short; got != "WIP" {
		t.Fatalf("WIP short = %q", got)
	}
}
