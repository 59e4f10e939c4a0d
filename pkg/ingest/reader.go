package ingest

import (
	"encoding/csv"
	"errors"
	"strings"
)

// ErrNoData is returned when the input has no data rows at all. Callers must
// not replace any prior task state when they see it.
var ErrNoData = errors.New("ingest: no data rows")

var delimiters = []rune{',', '\t', '|', ';'}

// DetectDelimiter guesses the field separator from the header line by
// counting candidate occurrences; comma wins ties and empty input.
func DetectDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}
	best := ','
	bestN := 0
	for _, d := range delimiters {
		if n := strings.Count(line, string(d)); n > bestN {
			best = d
			bestN = n
		}
	}
	return best
}

// ReadRows parses delimited text into a trimmed header slice and one
// header->value map per data row. Ragged rows are tolerated; missing cells
// read as empty. A file with a header but no rows (or nothing at all) is
// ErrNoData.
func ReadRows(text string) ([]string, []map[string]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = DetectDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, ErrNoData
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		empty := true
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[h] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoData
	}
	return headers, rows, nil
}
