package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/calendar"
	"tableflip.dev/hajz/pkg/roster"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/timevalue"
	"tableflip.dev/hajz/pkg/tui/popover"
)

const (
	headerHeight = 3
	formWidth    = 42
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	tabActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true)
	tabInactive   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// renderSessionRow is one table line: student, subject, date, time, lecturer,
// status badge.
func renderSessionRow(s *session.Session) string {
	badge := s.Status.Badge()
	status := badge.Style.Render(badge.Symbol + " " + badge.Label)
	return fmt.Sprintf("%s (%s)  %s  %s  %s (%s)  %s  %s",
		s.StudentName, s.StudentPhone, s.Subject, s.Date,
		s.TimeRange(), timevalue.FormatDuration(s.Duration), s.Lecturer, status)
}

// renderStudentCard is one roster line with the per-student session count.
func renderStudentCard(st *session.Student, count int) string {
	email := st.Email
	if email == "" {
		email = "—"
	}
	return fmt.Sprintf("%s  %s  %s  حصص هذا الطالب: %d", st.Name, st.Phone, email, count)
}

// View renders the console. Rendering doubles as the layout pass: trigger and
// popover regions are registered as their lines are placed, so the click
// handler always sees the geometry that is actually on screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("حجز الحصص والطلاب"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.tab == tabStudents {
		b.WriteString(m.renderStudentsTab())
	} else {
		b.WriteString(m.renderSessionsTab())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderTabs() string {
	sessions := tabInactive.Render("إدارة الحصص")
	students := tabInactive.Render("إضافة طالب")
	if m.tab == tabSessions {
		sessions = tabActive.Render("إدارة الحصص")
	} else {
		students = tabActive.Render("إضافة طالب")
	}
	return sessions + "   " + students + faintStyle.Render("   (tab للتبديل)")
}

func (m Model) renderSessionsTab() string {
	left := m.renderForm()
	right := m.renderListing()
	gap := lipgloss.NewStyle().Padding(0, 1).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// renderForm builds the booking form column line by line, registering the
// trigger and overlay regions at the rows where they land.
func (m Model) renderForm() string {
	lines := make([]string, 0, 32)
	y := func() int { return headerHeight + len(lines) }

	focused := func(f field) string {
		if m.mode == modeForm && m.focus == f {
			return "» "
		}
		return "  "
	}

	if m.draft.Editing() {
		lines = append(lines, titleStyle.Render("تحديث الحصة"))
	} else {
		lines = append(lines, titleStyle.Render("حجز حصة جديدة"))
	}
	lines = append(lines, "")

	// subject
	lines = append(lines, labelStyle.Render("اسم المادة"))
	lines = append(lines, focused(fieldSubject)+m.subject.View())

	// date trigger and calendar overlay
	date := m.draft.Date
	if date == "" {
		date = "اختر التاريخ"
	}
	m.triggers[popover.Calendar] = popover.Region{X: 0, Y: y(), Width: formWidth, Height: 1}
	lines = append(lines, focused(fieldDate)+labelStyle.Render("التاريخ ")+date)
	lines = m.placeOverlay(lines, popover.Calendar, m.renderCalendar())

	// start and end time triggers with their pickers
	start := m.draft.StartTime
	if start == "" {
		start = "--:--"
	}
	m.triggers[popover.StartTime] = popover.Region{X: 0, Y: y(), Width: formWidth, Height: 1}
	lines = append(lines, focused(fieldStart)+labelStyle.Render("البداية ")+start)
	lines = m.placeOverlay(lines, popover.StartTime, m.renderPicker())

	end := m.draft.EndTime
	if end == "" {
		end = "--:--"
	}
	m.triggers[popover.EndTime] = popover.Region{X: 0, Y: y(), Width: formWidth, Height: 1}
	lines = append(lines, focused(fieldEnd)+labelStyle.Render("النهاية ")+end)
	lines = m.placeOverlay(lines, popover.EndTime, m.renderPicker())

	lines = append(lines, faintStyle.Render("المدة: "+timevalue.FormatDuration(m.draft.DurationMinutes())))

	// student trigger and search overlay
	studentLabel := "ابحث عن اسم الطالب..."
	if st, ok := roster.Find(m.students, m.draft.StudentID); ok {
		studentLabel = st.Name
	}
	m.triggers[popover.StudentSearch] = popover.Region{X: 0, Y: y(), Width: formWidth, Height: 1}
	lines = append(lines, focused(fieldStudent)+labelStyle.Render("الطالب ")+studentLabel)
	lines = m.placeOverlay(lines, popover.StudentSearch, m.renderSearch())

	// lecturer
	lecturer := m.draft.Lecturer
	if lecturer == "" {
		lecturer = "اختر المحاضر"
	}
	lines = append(lines, focused(fieldLecturer)+labelStyle.Render("المحاضر ")+lecturer)

	// status
	badge := m.draft.Status.Badge()
	lines = append(lines, focused(fieldStatus)+labelStyle.Render("الحالة ")+badge.Style.Render(badge.Symbol+" "+string(m.draft.Status)))

	lines = append(lines, "")
	submit := "حجز حصة جديدة"
	if m.draft.Editing() {
		submit = "تحديث الحصة"
	}
	button := "[ " + submit + " ]"
	if m.mode == modeForm && m.focus == fieldSubmit {
		button = selectedStyle.Render(button)
	}
	lines = append(lines, "  "+button)
	if m.draft.Editing() {
		lines = append(lines, faintStyle.Render("  إلغاء التعديل (esc)"))
	}

	return lipgloss.NewStyle().Width(formWidth).Render(strings.Join(lines, "\n"))
}

// placeOverlay appends an open widget's panel under its trigger line and
// registers (or clears) its dismissal region.
func (m Model) placeOverlay(lines []string, id popover.ID, panel string) []string {
	if !m.pop.IsOpen(id) {
		m.pop.Unregister(id)
		return lines
	}
	rows := strings.Split(panel, "\n")
	m.pop.Register(id, popover.Region{
		X:      0,
		Y:      headerHeight + len(lines),
		Width:  lipgloss.Width(panel),
		Height: len(rows),
	})
	return append(lines, rows...)
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString(faintStyle.Render("[ ") + m.cal.Title() + faintStyle.Render(" ]"))
	b.WriteString("\n")
	for _, name := range calendar.WeekdayNames() {
		b.WriteString(fmt.Sprintf("%-5s", name))
	}
	for _, week := range m.cal.Weeks() {
		b.WriteString("\n")
		for _, day := range week {
			switch {
			case day == 0:
				b.WriteString("     ")
			case day == m.calDay:
				b.WriteString(selectedStyle.Render(fmt.Sprintf(" %2d ", day)) + " ")
			default:
				b.WriteString(fmt.Sprintf(" %2d  ", day))
			}
		}
	}
	return panelStyle.Render(b.String())
}

func (m Model) renderPicker() string {
	hour := timevalue.Hours()[m.hourIdx]
	minute := timevalue.Minutes()[m.minIdx]
	if m.onHour {
		hour = selectedStyle.Render(hour)
	} else {
		minute = selectedStyle.Render(minute)
	}
	body := hour + " : " + minute + "\n" + faintStyle.Render("↑↓ غيّر  ←→ انتقل")
	return panelStyle.Render(body)
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	matches := m.filter.Matches()
	if len(matches) == 0 {
		b.WriteString("\n" + faintStyle.Render("لا يوجد طلاب مسجلين بعد"))
	}
	start, end := searchWindow(len(matches), m.searchIdx)
	for i := start; i < end; i++ {
		st := matches[i]
		row := fmt.Sprintf("%s  %s", st.Name, st.Phone)
		if i == m.searchIdx {
			row = selectedStyle.Render(row)
		}
		b.WriteString("\n" + row)
	}
	if end < len(matches) {
		b.WriteString("\n" + faintStyle.Render("..."))
	}
	return panelStyle.Render(b.String())
}

// searchWindow slides the five-row dropdown viewport so the highlighted match
// stays visible however far the selection moves.
func searchWindow(total, idx int) (start, end int) {
	const rows = 5
	if total <= rows {
		return 0, total
	}
	start = idx - rows + 1
	if start < 0 {
		start = 0
	}
	if start > total-rows {
		start = total - rows
	}
	return start, start + rows
}

// renderListing is the right pane: quick stats, the table, and the footer.
func (m Model) renderListing() string {
	var b strings.Builder

	sum := booking.Summarize(m.sessions)
	b.WriteString(faintStyle.Render(fmt.Sprintf(
		"إجمالي الحصص: %d   حصص منتهية: %d   حصص مجدولة: %d   حصص ملغية: %d",
		sum.Total, sum.Count(session.Completed), sum.Count(session.Scheduled), sum.Count(session.Cancelled))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(faintStyle.Render("جاري تحميل الحصص..."))
	case len(m.sessions) == 0:
		b.WriteString(faintStyle.Render("لا توجد حصص مضافة بعد"))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	footer := fmt.Sprintf("إجمالي الطلاب: %d   إجمالي المدة: %s",
		len(m.students), sum.TotalDurationLabel())
	if m.degraded {
		footer += "   التحديث التلقائي متوقف"
	}
	b.WriteString(faintStyle.Render(footer))
	return b.String()
}

func (m Model) renderStudentsTab() string {
	focused := func(i int) string {
		if m.stuFocus == i {
			return "» "
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("تسجيل طالب جديد"))
	b.WriteString("\n\n")
	b.WriteString(focused(stuFocusName) + m.stuName.View() + "\n")
	b.WriteString(focused(stuFocusPhone) + m.stuPhone.View() + "\n")
	b.WriteString(focused(stuFocusEmail) + m.stuEmail.View() + "\n")

	button := "[ حفظ الطالب ]"
	if m.stuFocus == stuFocusSave {
		button = selectedStyle.Render(button)
	}
	b.WriteString("\n" + "  " + button + "\n\n")

	b.WriteString(titleStyle.Render(fmt.Sprintf("قائمة الطلاب (%d)", len(m.students))))
	b.WriteString("\n")
	if len(m.students) == 0 {
		b.WriteString(faintStyle.Render("لا يوجد طلاب مسجلين بعد"))
	} else {
		b.WriteString(m.cards.View())
	}
	return b.String()
}

func (m Model) renderStatusLine() string {
	mode := "جدول"
	switch m.mode {
	case modeForm:
		mode = "نموذج"
	case modeConfirm:
		mode = "تأكيد"
	}
	if m.tab == tabStudents {
		mode = "طلاب"
	}
	return faintStyle.Render("["+mode+"] ") + m.status
}
