package timecalc_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Tiliavir/sentimizer/internal/timecalc"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{10, "10m"},
		{60, "1h 0m"},
		{61, "1h 1m"},
		{100, "1h 40m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatMinutes(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(fri)

	wantMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 3, 1, 23, 59, 59, 999999999, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}
}

func TestWeekRangeOnSunday(t *testing.T) {
	sun := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	monday, _ := timecalc.WeekRange(sun)
	want := time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)
	if !monday.Equal(want) {
		t.Errorf("WeekRange monday = %v, want %v", monday, want)
	}
}

func TestDaysInWeek(t *testing.T) {
	days := timecalc.DaysInWeek(time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC))
	if len(days) != 7 {
		t.Fatalf("DaysInWeek len = %d, want 7", len(days))
	}
	if got := days[0].Format(timecalc.DayLayout); got != "2024-06-03" {
		t.Errorf("first day = %s, want 2024-06-03", got)
	}
	if got := days[6].Format(timecalc.DayLayout); got != "2024-06-09" {
		t.Errorf("last day = %s, want 2024-06-09", got)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in        time.Time
		wantFirst string
		wantLast  string
	}{
		{time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), "2024-12-01", "2024-12-31"},
	}
	for _, tt := range tests {
		first, last := timecalc.MonthRange(tt.in)
		if got := first.Format(timecalc.DayLayout); got != tt.wantFirst {
			t.Errorf("MonthRange(%v) first = %s, want %s", tt.in, got, tt.wantFirst)
		}
		if got := last.Format(timecalc.DayLayout); got != tt.wantLast {
			t.Errorf("MonthRange(%v) last = %s, want %s", tt.in, got, tt.wantLast)
		}
		if last.Hour() != 23 || last.Minute() != 59 {
			t.Errorf("MonthRange(%v) last = %v, want end of day", tt.in, last)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestParseDay(t *testing.T) {
	d, err := timecalc.ParseDay("2024-06-01", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if !d.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDay = %v", d)
	}
	if _, err := timecalc.ParseDay("01.06.2024", time.UTC); err == nil {
		t.Error("ParseDay: expected error for bad layout")
	}
}

func TestNewID(t *testing.T) {
	id := timecalc.NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewID = %q is not a UUID: %v", id, err)
	}
	if id == timecalc.NewID() {
		t.Error("NewID returned the same ID twice")
	}
}
