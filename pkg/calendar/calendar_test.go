package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2000, time.February, 29}, // century leap
		{1900, time.February, 28}, // century non-leap
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestNavigateRollsOverYears(t *testing.T) {
	if got := (View{Year: 2024, Month: time.December}).Navigate(1); got != (View{Year: 2025, Month: time.January}) {
		t.Fatalf("forward rollover: got %+v", got)
	}
	if got := (View{Year: 2024, Month: time.January}).Navigate(-1); got != (View{Year: 2023, Month: time.December}) {
		t.Fatalf("backward rollover: got %+v", got)
	}
	if got := (View{Year: 2024, Month: time.June}).Navigate(14); got != (View{Year: 2025, Month: time.August}) {
		t.Fatalf("multi-month: got %+v", got)
	}
}

func TestFirstWeekday(t *testing.T) {
	// March 1, 2024 was a Friday.
	if got := FirstWeekday(2024, time.March); got != time.Friday {
		t.Fatalf("FirstWeekday(2024, March) = %s", got)
	}
	// September 1, 2024 was a Sunday (offset zero).
	if got := FirstWeekday(2024, time.September); got != time.Sunday {
		t.Fatalf("FirstWeekday(2024, September) = %s", got)
	}
}

func TestFormatDayZeroPads(t *testing.T) {
	if got := FormatDay(2024, time.March, 5); got != "2024-03-05" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDay(2024, time.November, 21); got != "2024-11-21" {
		t.Fatalf("got %q", got)
	}
}

func TestWeeksGridContract(t *testing.T) {
	// March 2024: 31 days, first weekday Friday (offset 5) -> 36 cells, 6 rows.
	weeks := (View{Year: 2024, Month: time.March}).Weeks()
	if len(weeks) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(weeks))
	}
	for col := 0; col < 5; col++ {
		if weeks[0][col] != 0 {
			t.Fatalf("expected %d leading empty cells, cell %d = %d", 5, col, weeks[0][col])
		}
	}
	if weeks[0][5] != 1 {
		t.Fatalf("day 1 misplaced: %v", weeks[0])
	}
	if weeks[5][0] != 31 {
		t.Fatalf("day 31 misplaced: %v", weeks[5])
	}
	for col := 1; col < 7; col++ {
		if weeks[5][col] != 0 {
			t.Fatalf("expected trailing empty cell at col %d, got %d", col, weeks[5][col])
		}
	}
}

func TestViewTitle(t *testing.T) {
	v := View{Year: 2024, Month: time.January}
	if got := v.Title(); got != "يناير 2024" {
		t.Fatalf("got %q", got)
	}
}
