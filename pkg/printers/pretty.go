package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/timevalue"
)

// PrettyPrint renders sessions and students as colorized tables for the
// non-interactive commands.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d\n", count)
}

// Sessions prints the booking table plus the footer totals.
func (pp *PrettyPrint) Sessions(sessions []*session.Session) {
	if len(sessions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "Student", "Phone", "Subject", "Date", "Time", "Duration", "Lecturer", "Status")
	} else {
		tbl.AddRow("Student", "Phone", "Subject", "Date", "Time", "Duration", "Lecturer", "Status")
	}
	for _, s := range sessions {
		badge := s.Status.Badge()
		status := fmt.Sprintf("%s %s", badge.Symbol, s.Status)
		duration := timevalue.FormatDuration(s.Duration)
		if pp.ShowID {
			tbl.AddRow(s.ID, s.StudentName, s.StudentPhone, s.Subject, s.Date, s.TimeRange(), duration, s.Lecturer, status)
		} else {
			tbl.AddRow(s.StudentName, s.StudentPhone, s.Subject, s.Date, s.TimeRange(), duration, s.Lecturer, status)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	sum := booking.Summarize(sessions)
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "\n%d sessions, total %s\n", sum.Total, sum.TotalDurationLabel())
}

// Students prints the roster table with per-student session counts.
func (pp *PrettyPrint) Students(students []*session.Student, sessions []*session.Session) {
	if len(students) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	counts := make(map[string]int, len(students))
	for _, s := range sessions {
		counts[s.StudentID]++
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "Name", "Phone", "Email", "Sessions")
	} else {
		tbl.AddRow("Name", "Phone", "Email", "Sessions")
	}
	for _, st := range students {
		if pp.ShowID {
			tbl.AddRow(st.ID, st.Name, st.Phone, st.Email, counts[st.ID])
		} else {
			tbl.AddRow(st.Name, st.Phone, st.Email, counts[st.ID])
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the quick-stats block.
func (pp *PrettyPrint) Stats(sum booking.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Total", sum.Total)
	for _, st := range session.Statuses() {
		tbl.AddRow(st.Badge().Label, sum.Count(st))
	}
	tbl.AddRow("Duration", sum.TotalDurationLabel())
	_, _ = fmt.Fprintln(color.Output, tbl)
}
