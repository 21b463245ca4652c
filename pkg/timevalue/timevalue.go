// Package timevalue converts between HH:MM clock strings and minute offsets
// and renders durations in the application's Arabic vocabulary.
package timevalue

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hourLabel   = "ساعة"
	minuteLabel = "دقيقة"
	zeroLabel   = "0 " + minuteLabel
)

// ParseClock converts an HH:MM string to minutes since midnight. Values are
// not clamped to a 5-minute grid here; records edited outside the UI may
// carry arbitrary minutes and still need a duration.
func ParseClock(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("timevalue: malformed clock %q", clock)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("timevalue: malformed clock %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("timevalue: malformed clock %q: %w", clock, err)
	}
	return hours*60 + minutes, nil
}

// Duration returns end − start in minutes when that difference is positive,
// and 0 otherwise. Zero means "not a valid booking interval": empty fields,
// malformed values, end at or before start, and ranges that would cross
// midnight all land here.
func Duration(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	from, err := ParseClock(start)
	if err != nil {
		return 0
	}
	to, err := ParseClock(end)
	if err != nil {
		return 0
	}
	if d := to - from; d > 0 {
		return d
	}
	return 0
}

// FormatDuration renders minutes as "H ساعة M دقيقة", omitting zero-valued
// components. Zero or negative input renders the literal zero label rather
// than an empty string.
func FormatDuration(mins int) string {
	if mins <= 0 {
		return zeroLabel
	}
	h := mins / 60
	m := mins % 60
	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", h, hourLabel))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", m, minuteLabel))
	}
	return strings.Join(parts, " ")
}

// Hours lists the selectable whole hours, "00" through "23".
func Hours() []string {
	hours := make([]string, 24)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d", i)
	}
	return hours
}

// Minutes lists the selectable minutes on the 5-minute grid, "00" through "55".
func Minutes() []string {
	minutes := make([]string, 12)
	for i := range minutes {
		minutes[i] = fmt.Sprintf("%02d", i*5)
	}
	return minutes
}

// Clock joins an hour and minute token back into HH:MM.
func Clock(hour, minute string) string {
	return hour + ":" + minute
}

// SplitClock breaks HH:MM into its hour and minute tokens, falling back to
// the picker's noon pivot when the value is empty or malformed.
func SplitClock(clock string) (hour, minute string) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok || h == "" || m == "" {
		return "12", "00"
	}
	return h, m
}
