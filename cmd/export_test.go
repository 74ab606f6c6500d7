package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/sentimizer/internal/journal"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWriteExport(t *testing.T) {
	entries := []journal.Entry{
		sample("id-1", time.Date(2024, 6, 4, 20, 15, 0, 0, time.UTC), "Dinner", "happy", "pasta, salad"),
	}

	tests := []struct {
		format string
		want   []string
	}{
		{"csv", []string{"date,time,section,activity,feeling,note,duration_minutes,id", "2024-06-04,20:15,Evening,Dinner,happy,\"pasta, salad\",10,id-1"}},
		{"json", []string{"\"activity\": \"Dinner\"", "\"section\": \"Evening\"", "\"duration_minutes\": 10"}},
		{"yaml", []string{"- id: id-1", "  activity: Dinner", "  note: pasta, salad", "  day: \"2024-06-04\""}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := writeExport(&buf, entries, tt.format); err != nil {
			t.Fatalf("writeExport(%s): %v", tt.format, err)
		}
		for _, w := range tt.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("writeExport(%s) output does not contain %q:\n%s", tt.format, w, buf.String())
			}
		}
	}

	if err := writeExport(&bytes.Buffer{}, entries, "xml"); err == nil {
		t.Error("writeExport(xml): expected error")
	}
}
