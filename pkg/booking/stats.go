package booking

import (
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/timevalue"
)

// Summary is the read-only projection the quick-stats panel and the listing
// footer render. It is recomputed wholesale from each snapshot; session sets
// stay small enough that incremental maintenance would buy nothing.
type Summary struct {
	Total        int
	ByStatus     map[session.Status]int
	TotalMinutes int
}

// Summarize folds the current session list into totals.
func Summarize(sessions []*session.Session) Summary {
	sum := Summary{ByStatus: make(map[session.Status]int, 3)}
	for _, s := range sessions {
		if s == nil {
			continue
		}
		sum.Total++
		sum.ByStatus[s.Status]++
		sum.TotalMinutes += s.Duration
	}
	return sum
}

// Count returns the number of sessions carrying the given status.
func (s Summary) Count(status session.Status) int {
	return s.ByStatus[status]
}

// TotalDurationLabel renders the summed duration in the display vocabulary.
func (s Summary) TotalDurationLabel() string {
	return timevalue.FormatDuration(s.TotalMinutes)
}
