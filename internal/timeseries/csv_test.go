package timeseries

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"DATE,STA_A,STA_B",
		"2020-01-02,5.5,",
		"2020-01-01,1,2",
		"2020-01-03,-,0",
	}, "\n")

	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV() error: %v", err)
	}

	if got := table.Stations(); len(got) != 2 || got[0] != "STA_A" || got[1] != "STA_B" {
		t.Errorf("Stations() = %v, want [STA_A STA_B]", got)
	}

	// Rows come back sorted by date.
	if !table.Index()[0].Equal(day(2020, 1, 1)) {
		t.Errorf("Index()[0] = %v, want 2020-01-01", table.Index()[0])
	}

	a := table.Series("STA_A")
	if a[0] != 1 || a[1] != 5.5 {
		t.Errorf("STA_A = %v, want [1 5.5 NaN]", a)
	}
	if !math.IsNaN(a[2]) {
		t.Errorf("STA_A[2] = %v, want NaN for non-numeric cell", a[2])
	}

	b := table.Series("STA_B")
	if !math.IsNaN(b[1]) {
		t.Errorf("STA_B[1] = %v, want NaN for empty cell", b[1])
	}
	if b[2] != 0 {
		t.Errorf("STA_B[2] = %v, want 0", b[2])
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"header only", "DATE,STA"},
		{"no station column", "DATE\n2020-01-01"},
		{"bad date", "DATE,STA\nnot-a-date,1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseCSV() expected error, got nil")
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	table := newTestTable(t,
		[]time.Time{day(2020, 1, 1), day(2020, 1, 2)},
		map[string][]float64{"STA": {1.5, math.NaN()}},
		[]string{"STA"})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	want := "DATE,STA\n2020-01-01,1.5\n2020-01-02,\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"2020-01-02"},
		{"2020/01/02"},
		{"02-01-2020"},
	}
	for _, tt := range tests {
		parsed, err := parseDate(tt.input)
		if err != nil {
			t.Errorf("parseDate(%q) error: %v", tt.input, err)
			continue
		}
		if parsed.Year() != 2020 {
			t.Errorf("parseDate(%q).Year() = %d, want 2020", tt.input, parsed.Year())
		}
	}
}
