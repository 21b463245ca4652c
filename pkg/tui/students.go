package tui

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"
)

// Student tab focus stops, in tab order.
const (
	stuFocusName = iota
	stuFocusPhone
	stuFocusEmail
	stuFocusSave
	stuFocusList
	stuFocusCount
)

// handleStudentsKey is the registration tab: the three-field form, the save
// button, and the roster cards.
func (m *Model) handleStudentsKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.switchTab(tabSessions)
		return nil
	case "tab":
		m.moveStudentFocus(1)
		return textinput.Blink
	case "shift+tab":
		m.moveStudentFocus(-1)
		return textinput.Blink
	}

	switch m.stuFocus {
	case stuFocusSave:
		if msg.String() == "enter" {
			return m.saveStudent()
		}
	case stuFocusList:
		switch msg.String() {
		case "d", "x":
			if st := m.selectedStudent(); st != nil {
				m.mode = modeConfirm
				m.confirmKind = "student"
				m.confirmID = st.ID
				m.status = "هل أنت متأكد من حذف هذا الطالب؟ (y/esc)"
			}
		case "q":
			return tea.Quit
		default:
			var cmd tea.Cmd
			m.cards, cmd = m.cards.Update(msg)
			return cmd
		}
	default:
		if msg.String() == "enter" {
			m.moveStudentFocus(1)
			return textinput.Blink
		}
		var cmd tea.Cmd
		switch m.stuFocus {
		case stuFocusName:
			m.stuName, cmd = m.stuName.Update(msg)
		case stuFocusPhone:
			m.stuPhone, cmd = m.stuPhone.Update(msg)
		case stuFocusEmail:
			m.stuEmail, cmd = m.stuEmail.Update(msg)
		}
		return cmd
	}
	return nil
}

func (m *Model) moveStudentFocus(delta int) {
	m.stuFocus = (m.stuFocus + delta + stuFocusCount) % stuFocusCount
	m.stuName.Blur()
	m.stuPhone.Blur()
	m.stuEmail.Blur()
	switch m.stuFocus {
	case stuFocusName:
		m.stuName.Focus()
	case stuFocusPhone:
		m.stuPhone.Focus()
	case stuFocusEmail:
		m.stuEmail.Focus()
	}
}

// saveStudent registers the roster entry and, on success, returns to the
// sessions tab the way the booking flow expects.
func (m *Model) saveStudent() tea.Cmd {
	_, err := m.svc.AddStudent(m.ctx, m.stuName.Value(), m.stuPhone.Value(), m.stuEmail.Value())
	if err != nil {
		m.log.Error("add student failed", zap.Error(err))
		m.status = "حدث خطأ أثناء إضافة الطالب. الرجاء المحاولة مرة أخرى."
		return nil
	}
	m.status = "تم إضافة الطالب بنجاح"
	m.stuName.Reset()
	m.stuPhone.Reset()
	m.stuEmail.Reset()
	m.switchTab(tabSessions)
	return m.loadStudents()
}
