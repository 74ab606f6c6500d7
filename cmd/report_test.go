package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Tiliavir/sentimizer/internal/journal"
)

func TestBuildReport(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 9, 0, 0, 0, time.UTC) }
	entries := []journal.Entry{
		sample("1", day(4), "Walking", "happy", ""),
		sample("2", day(3), "Reading", "calm", ""),
		sample("3", day(2), "Walking", "calm", ""),
		sample("4", day(1), "Cooking", "happy", ""),
		sample("5", time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC), "Walking", "sad", ""),
	}

	got := buildReport(journal.CalendarMonth{Year: 2024, Month: time.June}, entries)

	want := monthReport{
		Month: "2024-06",
		Total: 4,
		Feelings: []tally{
			{Label: "calm", Count: 2},
			{Label: "happy", Count: 2},
		},
		Activities: []tally{
			{Label: "Walking", Count: 2},
			{Label: "Cooking", Count: 1},
			{Label: "Reading", Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildReport mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintReportFormats(t *testing.T) {
	r := monthReport{
		Month:      "2024-06",
		Total:      1,
		Feelings:   []tally{{Label: "happy", Count: 1}},
		Activities: []tally{{Label: "Walk, long", Count: 1}},
	}

	tests := []struct {
		format string
		want   string
	}{
		{"md", "Month 2024-06 – 1 entries"},
		{"csv", "activity,\"Walk, long\",1"},
		{"json", "\"total\": 1"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := printReport(&buf, r, tt.format); err != nil {
			t.Fatalf("printReport(%s): %v", tt.format, err)
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("printReport(%s) output does not contain %q:\n%s", tt.format, tt.want, buf.String())
		}
	}

	if err := printReport(&bytes.Buffer{}, r, "xml"); err == nil {
		t.Error("printReport(xml): expected error")
	}
}
