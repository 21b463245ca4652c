package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/calendar"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/timevalue"
	"tableflip.dev/hajz/pkg/tui/popover"
)

// The booking form's focusable fields, in tab order.
type field int

const (
	fieldSubject field = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldStudent
	fieldLecturer
	fieldStatus
	fieldSubmit
	fieldCount
)

// enterForm moves focus into the booking form. The draft was either reset or
// loaded for editing by the caller.
func (m *Model) enterForm(editing bool) {
	m.mode = modeForm
	m.focus = fieldSubject
	m.subject.SetValue(m.draft.Subject)
	m.subject.CursorEnd()
	m.subject.Focus()
	m.lecturerIdx = lecturerIndex(m.draft.Lecturer)
	m.statusIdx = statusIndex(m.draft.Status)
	if !editing {
		m.status = ""
	}
}

func (m *Model) leaveForm() {
	m.mode = modeTable
	m.subject.Blur()
	m.pop.CloseAll()
}

func lecturerIndex(name string) int {
	for i, l := range session.Lecturers() {
		if l == name {
			return i
		}
	}
	return -1
}

func statusIndex(s session.Status) int {
	for i, v := range session.Statuses() {
		if v == s {
			return i
		}
	}
	return 0
}

// openPopover seeds a widget's state when it opens.
func (m *Model) openPopover(id popover.ID) {
	switch id {
	case popover.Calendar:
		m.cal, m.calDay = calendarStart(m.draft.Date)
	case popover.StartTime:
		m.seedPicker(fieldStart, m.draft.StartTime)
	case popover.EndTime:
		m.seedPicker(fieldEnd, m.draft.EndTime)
	case popover.StudentSearch:
		m.search.Reset()
		m.filter.SetQuery("")
		m.searchIdx = 0
		m.search.Focus()
	}
}

func calendarStart(date string) (calendar.View, int) {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return calendar.ViewOf(t), t.Day()
	}
	now := time.Now()
	return calendar.ViewOf(now), now.Day()
}

func (m *Model) seedPicker(f field, current string) {
	m.timeField = f
	h, min := timevalue.SplitClock(current)
	m.hourIdx = 12
	if v, err := strconv.Atoi(h); err == nil && v >= 0 && v < 24 {
		m.hourIdx = v
	}
	m.minIdx = 0
	if v, err := strconv.Atoi(min); err == nil && v >= 0 && v < 60 {
		m.minIdx = v / 5
	}
	m.onHour = true
}

// handleFormKey is the sessions tab with the form focused. An open popover
// captures navigation keys before field routing.
func (m *Model) handleFormKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch {
	case m.pop.IsOpen(popover.Calendar):
		return m.handleCalendarKey(msg)
	case m.pop.IsOpen(popover.StartTime) || m.pop.IsOpen(popover.EndTime):
		return m.handlePickerKey(msg)
	case m.pop.IsOpen(popover.StudentSearch):
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "esc":
		if m.draft.Editing() {
			m.draft.CancelEdit()
			m.subject.SetValue("")
			m.lecturerIdx = -1
			m.statusIdx = 0
		}
		m.leaveForm()
		return nil
	case "tab", "down":
		m.moveFocus(1)
		return textinput.Blink
	case "shift+tab", "up":
		m.moveFocus(-1)
		return textinput.Blink
	case "ctrl+s":
		return m.submit()
	}

	switch m.focus {
	case fieldSubject:
		switch msg.String() {
		case "enter":
			m.moveFocus(1)
		default:
			var cmd tea.Cmd
			m.subject, cmd = m.subject.Update(msg)
			m.draft.Subject = m.subject.Value()
			return cmd
		}
	case fieldDate:
		if msg.String() == "enter" || msg.String() == "space" {
			if m.pop.Toggle(popover.Calendar) {
				m.openPopover(popover.Calendar)
			}
		}
	case fieldStart:
		if msg.String() == "enter" || msg.String() == "space" {
			if m.pop.Toggle(popover.StartTime) {
				m.openPopover(popover.StartTime)
			}
		}
	case fieldEnd:
		if msg.String() == "enter" || msg.String() == "space" {
			if m.pop.Toggle(popover.EndTime) {
				m.openPopover(popover.EndTime)
			}
		}
	case fieldStudent:
		if msg.String() == "enter" || msg.String() == "space" {
			if m.pop.Toggle(popover.StudentSearch) {
				m.openPopover(popover.StudentSearch)
			}
		}
	case fieldLecturer:
		lecturers := session.Lecturers()
		switch msg.String() {
		case "left", "enter":
			m.lecturerIdx++
			if m.lecturerIdx >= len(lecturers) {
				m.lecturerIdx = -1
			}
		case "right":
			m.lecturerIdx--
			if m.lecturerIdx < -1 {
				m.lecturerIdx = len(lecturers) - 1
			}
		}
		if m.lecturerIdx >= 0 {
			m.draft.Lecturer = lecturers[m.lecturerIdx]
		} else {
			m.draft.Lecturer = ""
		}
	case fieldStatus:
		statuses := session.Statuses()
		switch msg.String() {
		case "left", "enter":
			m.statusIdx = (m.statusIdx + 1) % len(statuses)
		case "right":
			m.statusIdx = (m.statusIdx + len(statuses) - 1) % len(statuses)
		}
		m.draft.Status = statuses[m.statusIdx]
	case fieldSubmit:
		if msg.String() == "enter" {
			return m.submit()
		}
	}
	return nil
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) tea.Cmd {
	days := calendar.DaysInMonth(m.cal.Year, m.cal.Month)
	switch msg.String() {
	case "esc":
		m.pop.Close(popover.Calendar)
	case "left":
		if m.calDay > 1 {
			m.calDay--
		}
	case "right":
		if m.calDay < days {
			m.calDay++
		}
	case "up":
		if m.calDay > 7 {
			m.calDay -= 7
		}
	case "down":
		if m.calDay+7 <= days {
			m.calDay += 7
		}
	case "[", "pgup":
		m.cal = m.cal.Navigate(-1)
		m.clampCalDay()
	case "]", "pgdown":
		m.cal = m.cal.Navigate(1)
		m.clampCalDay()
	case "enter":
		// Selecting a day sets the date and closes the calendar in one step.
		m.draft.Date = calendar.FormatDay(m.cal.Year, m.cal.Month, m.calDay)
		m.pop.Close(popover.Calendar)
	}
	return nil
}

func (m *Model) clampCalDay() {
	if days := calendar.DaysInMonth(m.cal.Year, m.cal.Month); m.calDay > days {
		m.calDay = days
	}
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg) tea.Cmd {
	open := popover.StartTime
	if m.pop.IsOpen(popover.EndTime) {
		open = popover.EndTime
	}
	switch msg.String() {
	case "esc":
		m.pop.Close(open)
	case "left", "right":
		m.onHour = !m.onHour
	case "up":
		if m.onHour {
			m.hourIdx = (m.hourIdx + 23) % 24
		} else {
			m.minIdx = (m.minIdx + 11) % 12
		}
	case "down":
		if m.onHour {
			m.hourIdx = (m.hourIdx + 1) % 24
		} else {
			m.minIdx = (m.minIdx + 1) % 12
		}
	case "enter":
		clock := timevalue.Clock(timevalue.Hours()[m.hourIdx], timevalue.Minutes()[m.minIdx])
		if m.timeField == fieldStart {
			m.draft.StartTime = clock
		} else {
			m.draft.EndTime = clock
		}
		m.pop.Close(open)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	matches := m.filter.Matches()
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.pop.Close(popover.StudentSearch)
	case "up":
		if m.searchIdx > 0 {
			m.searchIdx--
		}
	case "down":
		if m.searchIdx < len(matches)-1 {
			m.searchIdx++
		}
	case "enter":
		// Selecting a student sets the id and closes the dropdown in one step.
		if m.searchIdx >= 0 && m.searchIdx < len(matches) {
			m.draft.StudentID = matches[m.searchIdx].ID
			m.search.Blur()
			m.pop.Close(popover.StudentSearch)
		}
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter.SetQuery(m.search.Value())
		m.searchIdx = 0
		return cmd
	}
	return nil
}

func (m *Model) moveFocus(delta int) {
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	if m.focus == fieldSubject {
		m.subject.Focus()
	} else {
		m.subject.Blur()
	}
}

// submit validates and persists the draft, mapping each failure to the
// operator-facing message. On success the form resets and focus returns to
// the table.
func (m *Model) submit() tea.Cmd {
	wasEditing := m.draft.Editing()
	_, err := m.draft.Submit(m.ctx, m.svc, m.students)
	switch {
	case err == nil:
		if wasEditing {
			m.status = "تم تحديث الحصة بنجاح"
		} else {
			m.status = "تم حجز الحصة بنجاح"
		}
		m.subject.SetValue("")
		m.lecturerIdx = -1
		m.statusIdx = 0
		m.leaveForm()
		return m.loadSessions()
	case errors.Is(err, booking.ErrNotReady):
		m.status = "الرجاء الانتظار حتى يتم التحميل..."
	case errors.Is(err, booking.ErrInvalidTimeRange):
		m.status = "وقت النهاية يجب أن يكون بعد وقت البداية"
	case errors.Is(err, booking.ErrStudentNotFound):
		m.status = "يرجى اختيار طالب"
	default:
		m.log.Error("save session failed", zap.Error(err))
		m.status = "حدث خطأ أثناء حفظ الحصة. الرجاء المحاولة مرة أخرى."
	}
	return nil
}
