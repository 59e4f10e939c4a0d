package ingest

import (
	"testing"
	"time"
)

func TestParseDateYearless(t *testing.T) {
	d := ParseDate("2/16", 2026)
	if !d.Parsed {
		t.Fatalf("2/16 should parse")
	}
	if d.Time.Year() != 2026 || d.Time.Month() != time.February || d.Time.Day() != 16 {
		t.Fatalf("2/16 = %v", d.Time)
	}
}

func TestParseDateTwoDigitYear(t *testing.T) {
	d := ParseDate("2/16/25", 2026)
	if !d.Parsed || d.Time.Year() != 2025 {
		t.Fatalf("2/16/25 = %v", d.Time)
	}
}

func TestParseDateFourDigitYearAndParens(t *testing.T) {
	d := ParseDate("(02-16-2026)", 2026)
	if !d.Parsed || d.Time.Year() != 2026 || d.Time.Month() != time.February || d.Time.Day() != 16 {
		t.Fatalf("(02-16-2026) = %v", d.Time)
	}
}

func TestParseDateEmbeddedText(t *testing.T) {
	d := ParseDate("done by 2/23 latest", 2026)
	if !d.Parsed || d.Time.Month() != time.February || d.Time.Day() != 23 {
		t.Fatalf("embedded date = %v", d.Time)
	}
}

func TestParseDateUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "TBD", "no date"} {
		if d := ParseDate(in, 2026); d.Parsed {
			t.Fatalf("ParseDate(%q) should not parse, got %v", in, d.Time)
		}
	}
}

func TestParseDateMonthRollover(t *testing.T) {
	// Month 13 rolls into January of the next year; the permissive regex
	// accepts it and time.Date normalizes.
	d := ParseDate("13/5", 2026)
	if !d.Parsed || d.Time.Year() != 2027 || d.Time.Month() != time.January || d.Time.Day() != 5 {
		t.Fatalf("13/5 = %v", d.Time)
	}
}
