package timevalue

import "testing"

func TestDurationExactMinutes(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "10:30", 90},
		{"00:00", "23:55", 1435},
		{"10:05", "10:10", 5},
		{"08:17", "09:03", 46}, // off-grid minutes from externally edited records
	}
	for _, tc := range cases {
		if got := Duration(tc.start, tc.end); got != tc.want {
			t.Fatalf("Duration(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDurationInvalidRangesClampToZero(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"equal", "09:00", "09:00"},
		{"end before start", "10:00", "09:30"},
		{"crossing midnight", "23:00", "01:00"},
		{"empty start", "", "10:00"},
		{"empty end", "10:00", ""},
		{"malformed", "nine", "10:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(tc.start, tc.end); got != 0 {
				t.Fatalf("Duration(%q, %q) = %d, want 0", tc.start, tc.end, got)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(0); got != "0 دقيقة" {
		t.Fatalf("zero label: got %q", got)
	}
	if got := FormatDuration(65); got != "1 ساعة 5 دقيقة" {
		t.Fatalf("65 minutes: got %q", got)
	}
	if got := FormatDuration(60); got != "1 ساعة" {
		t.Fatalf("60 minutes: got %q", got)
	}
	if got := FormatDuration(45); got != "45 دقيقة" {
		t.Fatalf("45 minutes: got %q", got)
	}
	if got := FormatDuration(-10); got != "0 دقيقة" {
		t.Fatalf("negative input: got %q", got)
	}
}

func TestQuantizedSelections(t *testing.T) {
	hours := Hours()
	if len(hours) != 24 || hours[0] != "00" || hours[23] != "23" {
		t.Fatalf("unexpected hours: %v", hours)
	}
	minutes := Minutes()
	if len(minutes) != 12 || minutes[0] != "00" || minutes[1] != "05" || minutes[11] != "55" {
		t.Fatalf("unexpected minutes: %v", minutes)
	}
}

func TestSplitClockPivot(t *testing.T) {
	if h, m := SplitClock(""); h != "12" || m != "00" {
		t.Fatalf("empty clock should pivot to noon, got %s:%s", h, m)
	}
	if h, m := SplitClock("09:35"); h != "09" || m != "35" {
		t.Fatalf("got %s:%s", h, m)
	}
	if Clock("09", "35") != "09:35" {
		t.Fatalf("Clock join mismatch")
	}
}
