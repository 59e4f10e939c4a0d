// Package timefmt renders the HH:MM timestamps users log against tasks in
// the zones the cutover bridge calls run in. These are fixed integer
// offsets, not real timezones: the migration window is short enough that
// daylight-saving transitions are out of scope.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Zone selects how a logged time is displayed.
type Zone string

const (
	GMT  Zone = "GMT"  // source zone, rendered as entered
	AZT  Zone = "AZT"  // US Arizona, UTC-7
	EST  Zone = "EST"  // US Eastern, UTC-5 relative to the source zone
	Both Zone = "BOTH" // source and Arizona side by side
	UTC  Zone = "UTC"  // no-op alias
)

// ZoneMeta labels a zone for pickers and help text.
type ZoneMeta struct {
	Zone  Zone
	Label string
}

func DefaultZones() []ZoneMeta {
	return []ZoneMeta{
		{GMT, "UK (GMT)"},
		{AZT, "US Arizona (UTC-7)"},
		{EST, "US Eastern (EST)"},
		{Both, "Arizona + UK"},
		{UTC, "UTC"},
	}
}

// ParseZone accepts a zone id case-insensitively, defaulting to GMT.
func ParseZone(raw string) (Zone, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return GMT, nil
	}
	for _, m := range DefaultZones() {
		if string(m.Zone) == s {
			return m.Zone, nil
		}
	}
	return GMT, fmt.Errorf("timefmt: unknown zone %q", raw)
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// Offset shifts an HH:MM string by a fixed number of hours, wrapping modulo
// 24 with an explicit day marker. Input that does not look like a clock
// time is returned unchanged.
func Offset(t string, hours int) string {
	m := clockPattern.FindStringSubmatch(t)
	if m == nil {
		return t
	}
	h, _ := strconv.Atoi(m[1])
	h += hours
	day := ""
	if h < 0 {
		h += 24
		day = " (-1d)"
	}
	if h >= 24 {
		h -= 24
		day = " (+1d)"
	}
	return fmt.Sprintf("%02d:%s%s", h, m[2], day)
}

// Format renders a logged time in the selected zone. Empty values render as
// an em dash so table columns stay aligned.
func Format(t string, z Zone) string {
	if t == "" {
		return "—"
	}
	switch z {
	case Both:
		return t + " GMT / " + Offset(t, -7) + " AZT"
	case AZT:
		return Offset(t, -7)
	case EST:
		return Offset(t, -5)
	default:
		return t
	}
}
