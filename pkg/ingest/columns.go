// Package ingest turns a loosely structured spreadsheet export into the
// normalized task model. Nothing in here raises errors for bad cells; every
// defect has a documented fallback so an ugly export still loads.
package ingest

import "strings"

// Columns holds the resolved header name for each semantic field. An empty
// string means the sheet has no such column and every row yields "".
type Columns struct {
	ID             string
	Status         string
	Workstream     string
	Application    string
	Phase          string
	Classification string
	Description    string
	Impact         string
	Start          string
	End            string
	Responsible    string
	PingSME        string
	Executor       string
	PingSupport    string
	InforSME       string
	Mock           string
	Japan          string
	Notes          string
	Dependencies   string
}

// Header matching is substring-based over a lowercased alphanumeric-only
// form of the header, so "Expected start date" and "expected_start" both
// land on the start column. Patterns are tried per field against headers in
// original column order; the first hit wins.
var fieldPatterns = map[string][]string{
	"id":             {"activity"},
	"status":         {"status"},
	"workstream":     {"workstream"},
	"application":    {"application"},
	"phase":          {"phase", "group"},
	"classification": {"taskclassification", "classification"},
	"description":    {"descriptionandnotes", "description"},
	"impact":         {"usca", "usimpact", "impact"},
	"start":          {"expectedstart", "startdate"},
	"end":            {"expectedend", "enddate"},
	"responsible":    {"responsible", "pinginfor"},
	"pingsme":        {"pingsme"},
	"executor":       {"executor"},
	"pingsupport":    {"pingsupport"},
	"inforsme":       {"inforsme"},
	"mock":           {"mockonly", "mock"},
	"japan":          {"japantoexecute", "japan"},
	"notes":          {"commentsandnotes", "comment"},
	"dependencies":   {"dependenc", "predecessor"},
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func findHeader(headers []string, patterns []string) string {
	for _, h := range headers {
		hl := normalizeHeader(h)
		for _, p := range patterns {
			if strings.Contains(hl, p) {
				return h
			}
		}
	}
	return ""
}

// ResolveColumns maps the header row onto the semantic fields. It never
// fails: a missing column only means empty values. The id field falls back
// to the first column of the sheet when no header mentions "activity".
func ResolveColumns(headers []string) Columns {
	find := func(field string) string {
		return findHeader(headers, fieldPatterns[field])
	}

	c := Columns{
		ID:             find("id"),
		Status:         find("status"),
		Workstream:     find("workstream"),
		Application:    find("application"),
		Phase:          find("phase"),
		Classification: find("classification"),
		Description:    find("description"),
		Impact:         find("impact"),
		Start:          find("start"),
		End:            find("end"),
		Responsible:    find("responsible"),
		PingSME:        find("pingsme"),
		Executor:       find("executor"),
		PingSupport:    find("pingsupport"),
		InforSME:       find("inforsme"),
		Mock:           find("mock"),
		Japan:          find("japan"),
		Notes:          find("notes"),
		Dependencies:   find("dependencies"),
	}
	if c.ID == "" && len(headers) > 0 {
		c.ID = headers[0]
	}
	return c
}
