// Package roster filters the student list behind the search dropdown.
package roster

import (
	"strings"

	"tableflip.dev/hajz/pkg/session"
)

// Filter is the live search view over the roster. It holds the current query
// and recomputes its matches from scratch on every query or roster change;
// rosters are small enough that a linear pass per keystroke is fine.
type Filter struct {
	students []*session.Student
	query    string
}

func NewFilter(students []*session.Student) *Filter {
	return &Filter{students: students}
}

// SetRoster replaces the backing roster, keeping the current query.
func (f *Filter) SetRoster(students []*session.Student) {
	f.students = students
}

func (f *Filter) SetQuery(q string) {
	f.query = q
}

func (f *Filter) Query() string {
	return f.query
}

// Matches returns the students whose name contains the query
// (case-insensitive) or whose phone contains it (case-sensitive; phones are
// numeric). An empty query returns the full roster in its original order.
func (f *Filter) Matches() []*session.Student {
	if f.query == "" {
		out := make([]*session.Student, len(f.students))
		copy(out, f.students)
		return out
	}
	needle := strings.ToLower(f.query)
	out := make([]*session.Student, 0, len(f.students))
	for _, s := range f.students {
		if s == nil {
			continue
		}
		if strings.Contains(strings.ToLower(s.Name), needle) || strings.Contains(s.Phone, f.query) {
			out = append(out, s)
		}
	}
	return out
}

// Find resolves a student id against a roster.
func Find(students []*session.Student, id string) (*session.Student, bool) {
	if id == "" {
		return nil, false
	}
	for _, s := range students {
		if s != nil && s.ID == id {
			return s, true
		}
	}
	return nil, false
}
