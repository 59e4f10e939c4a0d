package ingest

import (
	"errors"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	cases := map[string]rune{
		"a,b,c\n1,2,3":   ',',
		"a\tb\tc\n1\t2":  '\t',
		"a|b|c\n1|2|3":   '|',
		"a;b;c\n1;2;3":   ';',
		"single header":  ',',
		"a,b\tc\td\n...": '\t',
	}
	for in, want := range cases {
		if got := DetectDelimiter(in); got != want {
			t.Fatalf("DetectDelimiter(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReadRowsBasic(t *testing.T) {
	headers, rows, err := ReadRows("Activity, Status \nA1,2-WIP\nA2,4-Complete\n")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(headers) != 2 || headers[1] != "Status" {
		t.Fatalf("headers = %v, want trimmed", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0]["Activity"] != "A1" || rows[1]["Status"] != "4-Complete" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestReadRowsRaggedRows(t *testing.T) {
	_, rows, err := ReadRows("a,b,c\n1,2\n")
	if err != nil {
		t.Fatalf("ragged rows should be tolerated: %v", err)
	}
	if rows[0]["c"] != "" {
		t.Fatalf("missing cell = %q, want empty", rows[0]["c"])
	}
}

func TestReadRowsSkipsEmptyRows(t *testing.T) {
	_, rows, err := ReadRows("a,b\n1,2\n,\n , \n3,4\n")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want blank rows dropped", len(rows))
	}
}

func TestReadRowsNoData(t *testing.T) {
	for _, in := range []string{"", "only,a,header\n", "a,b\n,\n"} {
		_, _, err := ReadRows(in)
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("ReadRows(%q) err = %v, want ErrNoData", in, err)
		}
	}
}

func TestReadRowsTabSeparated(t *testing.T) {
	_, rows, err := ReadRows("Activity\tStatus\nA1\t2-WIP\n")
	if err != nil {
		t.Fatalf("ReadRows tsv: %v", err)
	}
	if rows[0]["Status"] != "2-WIP" {
		t.Fatalf("tsv row = %v", rows[0])
	}
}
