package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
)

// Status is the three-value booking state. The stored value is the Arabic
// vocabulary the records have always used, so renaming a constant here would
// orphan existing data.
type Status string

const (
	Scheduled Status = "مجدولة"
	Completed Status = "منتهية"
	Cancelled Status = "ملغية"
)

// Statuses returns the selectable options in display order.
func Statuses() []Status {
	return []Status{Scheduled, Completed, Cancelled}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case Scheduled, Completed, Cancelled:
		return true
	}
	return false
}

// ParseStatus resolves a stored or user-supplied value, accepting the English
// nouns as CLI aliases.
func ParseStatus(v string) (Status, error) {
	switch v {
	case string(Scheduled), "scheduled":
		return Scheduled, nil
	case string(Completed), "completed":
		return Completed, nil
	case string(Cancelled), "cancelled":
		return Cancelled, nil
	}
	return "", fmt.Errorf("session: unknown status %q", v)
}

// Badge carries the display metadata for a status value.
type Badge struct {
	Symbol string
	Label  string
	Style  lipgloss.Style
}

// Badge returns the symbol, long-form label, and style for a status. Unknown
// values fall back to the scheduled badge, matching how the listing treated
// unclassifiable records before statuses were validated on save.
func (s Status) Badge() Badge {
	switch s {
	case Completed:
		return Badge{
			Symbol: "✔",
			Label:  "حصة منتهية",
			Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		}
	case Cancelled:
		return Badge{
			Symbol: "✘",
			Label:  "حصة ملغية",
			Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		}
	default:
		return Badge{
			Symbol: "◷",
			Label:  "حصة مجدولة",
			Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		}
	}
}

func (s Status) String() string {
	return string(s)
}
