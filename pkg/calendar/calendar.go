// Package calendar provides the pure month-grid math behind the date popover.
package calendar

import (
	"fmt"
	"time"
)

// View is the month currently displayed by the date popover. It is
// independent of any selected date.
type View struct {
	Year  int
	Month time.Month
}

// ViewOf returns the view containing t.
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}

// Navigate returns the view offset by delta months, rolling over year
// boundaries in either direction.
func (v View) Navigate(delta int) View {
	t := time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return View{Year: t.Year(), Month: t.Month()}
}

// Title renders the Arabic month header, e.g. "يناير 2024".
func (v View) Title() string {
	return fmt.Sprintf("%s %d", MonthName(v.Month), v.Year)
}

// DaysInMonth counts the days in a month, computed as day zero of the next
// month so variable lengths and leap years fall out of the date math.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of the 1st of the month, Sunday = 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// FormatDay renders a selectable date as zero-padded YYYY-MM-DD.
func FormatDay(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Weeks lays out the month grid: rows of seven cells, zero for the empty
// leading and trailing cells, day numbers 1..DaysInMonth elsewhere.
func (v View) Weeks() [][7]int {
	offset := int(FirstWeekday(v.Year, v.Month))
	days := DaysInMonth(v.Year, v.Month)
	rows := (offset + days + 6) / 7

	weeks := make([][7]int, rows)
	for cell := 0; cell < rows*7; cell++ {
		day := cell - offset + 1
		if day >= 1 && day <= days {
			weeks[cell/7][cell%7] = day
		}
	}
	return weeks
}

var monthNames = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// MonthName returns the Arabic name for a month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// WeekdayNames returns the short Arabic column headers, Sunday first.
func WeekdayNames() []string {
	return []string{"أحد", "نثن", "ثلاث", "ربع", "خمس", "جمعة", "سبت"}
}
