package ingest

import (
	"strings"

	"tableflip.dev/cutover/pkg/task"
)

func yes(v string) bool {
	return strings.Contains(strings.ToLower(v), "yes")
}

func trimOr(v, fallback string) string {
	if t := strings.TrimSpace(v); t != "" {
		return t
	}
	return fallback
}

// NormalizeRow converts one raw row into a Task, or nil when the row has no
// id and is dropped. All other defects fall back silently: see ParseStatus,
// ParsePhase, and ParseDate for the rules.
func NormalizeRow(row map[string]string, c Columns, defaultYear int) *task.Task {
	id := strings.TrimSpace(row[c.ID])
	if id == "" {
		return nil
	}

	startRaw := strings.TrimSpace(row[c.Start])
	endRaw := strings.TrimSpace(row[c.End])

	t := &task.Task{
		ID:             id,
		Status:         task.ParseStatus(row[c.Status]),
		Phase:          task.ParsePhase(row[c.Phase]),
		Workstream:     trimOr(row[c.Workstream], "Other"),
		Application:    trimOr(row[c.Application], "All"),
		Classification: strings.TrimSpace(row[c.Classification]),
		Description:    strings.TrimSpace(row[c.Description]),
		Responsible:    strings.TrimSpace(row[c.Responsible]),
		PingSME:        strings.TrimSpace(row[c.PingSME]),
		Executor:       strings.TrimSpace(row[c.Executor]),
		PingSupport:    strings.TrimSpace(row[c.PingSupport]),
		InforSME:       strings.TrimSpace(row[c.InforSME]),
		Notes:          strings.TrimSpace(row[c.Notes]),
		StartRaw:       startRaw,
		EndRaw:         endRaw,
		Start:          ParseDate(startRaw, defaultYear),
		End:            ParseDate(endRaw, defaultYear),
		UsCaImpact:     yes(row[c.Impact]),
		MockOnly:       yes(row[c.Mock]),
		JapanExecute:   yes(row[c.Japan]),
	}

	if deps := strings.TrimSpace(row[c.Dependencies]); deps != "" {
		for _, d := range strings.Split(deps, ",") {
			if d = strings.TrimSpace(d); d != "" {
				t.Dependencies = append(t.Dependencies, d)
			}
		}
	}
	return t
}

// Parse is the whole ingestion pipeline: delimited text in, ordered task
// list out. Row order is preserved; rows without an id are dropped. The only
// error cases are unreadable input and an empty sheet.
func Parse(text string, defaultYear int) ([]task.Task, error) {
	headers, rows, err := ReadRows(text)
	if err != nil {
		return nil, err
	}
	cols := ResolveColumns(headers)
	tasks := make([]task.Task, 0, len(rows))
	for _, row := range rows {
		if t := NormalizeRow(row, cols, defaultYear); t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}
