// Package tui is the interactive booking console: a tabbed bubbletea program
// with the booking form, its four overlay widgets, the session table, quick
// stats, and student registration.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/hajz/pkg/app"
	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/calendar"
	"tableflip.dev/hajz/pkg/identity"
	"tableflip.dev/hajz/pkg/roster"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/store"
	"tableflip.dev/hajz/pkg/tui/popover"
)

type tab int

const (
	tabSessions tab = iota
	tabStudents
)

type mode int

const (
	modeTable mode = iota
	modeForm
	modeConfirm
)

// session item for the table list
type sessionItem struct{ s *session.Session }

func (it sessionItem) Title() string       { return renderSessionRow(it.s) }
func (it sessionItem) Description() string { return "" }
func (it sessionItem) FilterValue() string {
	return it.s.StudentName + " " + it.s.Subject + " " + it.s.Lecturer
}

// student item for the roster cards
type studentItem struct {
	st       *session.Student
	sessions int
}

func (it studentItem) Title() string       { return renderStudentCard(it.st, it.sessions) }
func (it studentItem) Description() string { return "" }
func (it studentItem) FilterValue() string { return it.st.Name + " " + it.st.Phone }

// Model contains the console state.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	log   *zap.Logger
	token string

	tab  tab
	mode mode

	sessions []*session.Session
	students []*session.Student
	loading  bool
	degraded bool

	draft booking.Draft
	focus field

	subject textinput.Model

	pop      *popover.Coordinator
	triggers map[popover.ID]popover.Region

	cal    calendar.View
	calDay int

	timeField field // fieldStart or fieldEnd while a picker is open
	hourIdx   int
	minIdx    int
	onHour    bool

	search    textinput.Model
	filter    *roster.Filter
	searchIdx int

	lecturerIdx int // -1 means unset
	statusIdx   int

	table list.Model
	cards list.Model

	stuName  textinput.Model
	stuPhone textinput.Model
	stuEmail textinput.Model
	stuFocus int // 0 name, 1 phone, 2 email, 3 save

	confirmKind string
	confirmID   string

	status string

	termWidth  int
	termHeight int

	events <-chan store.Event
}

// New creates the console model backed by the Service. The identity bootstrap
// runs as a command so the loading state renders while it happens.
func New(svc *app.Service, token string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	del := list.NewDefaultDelegate()
	del.ShowDescription = false
	del.SetSpacing(0)

	tbl := list.New([]list.Item{}, del, 80, 12)
	tbl.Title = "الحصص المجدولة"
	tbl.SetShowHelp(false)
	tbl.SetShowStatusBar(false)

	cards := list.New([]list.Item{}, del, 60, 10)
	cards.Title = "قائمة الطلاب"
	cards.SetShowHelp(false)
	cards.SetShowStatusBar(false)

	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Prompt = ""
		return ti
	}

	m := Model{
		svc:         svc,
		ctx:         context.Background(),
		log:         log,
		token:       token,
		tab:         tabSessions,
		mode:        modeTable,
		loading:     true,
		draft:       booking.NewDraft(),
		subject:     newInput("مثال: رياضيات، لغة عربية...", 128),
		pop:         popover.NewCoordinator(),
		triggers:    make(map[popover.ID]popover.Region),
		search:      newInput("ابحث...", 64),
		filter:      roster.NewFilter(nil),
		lecturerIdx: -1,
		table:       tbl,
		cards:       cards,
		stuName:     newInput("اسم الطالب", 128),
		stuPhone:    newInput("رقم الهاتف", 32),
		stuEmail:    newInput("البريد الإلكتروني", 128),
		status:      "جاري تحميل الحصص...",
	}
	return m
}

// messages
type errMsg struct{ err error }
type identityMsg struct{ id identity.Identity }
type sessionsMsg struct{ items []*session.Session }
type studentsMsg struct{ items []*session.Student }
type watchMsg struct{ ch <-chan store.Event }
type watchFailedMsg struct{ err error }
type storeChangedMsg struct {
	ev store.Event
	ok bool
}
type deletedMsg struct{ kind string }

// Init bootstraps identity, loads both snapshots, and subscribes to store
// change events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.establishIdentity(), m.loadSessions(), m.loadStudents(), m.startWatch())
}

func (m *Model) establishIdentity() tea.Cmd {
	token := m.token
	return func() tea.Msg {
		return identityMsg{identity.Establish(token)}
	}
}

func (m *Model) loadSessions() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.svc.Sessions(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return sessionsMsg{sessions}
	}
}

func (m *Model) loadStudents() tea.Cmd {
	return func() tea.Msg {
		students, err := m.svc.Students(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return studentsMsg{students}
	}
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.svc.Watch(m.ctx)
		if err != nil {
			return watchFailedMsg{err}
		}
		return watchMsg{ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		return storeChangedMsg{ev: ev, ok: ok}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.log.Error("console error", zap.Error(msg.err))
		m.status = "حدث خطأ: " + msg.err.Error()
	case identityMsg:
		m.svc.SetIdentity(msg.id)
	case sessionsMsg:
		m.sessions = msg.items
		m.loading = false
		m.refreshTable()
		// Roster cards derive their per-student counts from the sessions
		// snapshot, so they go stale unless refreshed here too.
		m.refreshCards()
		m.clearLoadingStatus()
	case studentsMsg:
		m.students = msg.items
		m.filter.SetRoster(msg.items)
		m.refreshCards()
	case watchMsg:
		m.events = msg.ch
		cmds = append(cmds, waitForChange(msg.ch))
	case deletedMsg:
		if msg.kind == "session" {
			cmds = append(cmds, m.loadSessions())
		} else {
			cmds = append(cmds, m.loadStudents())
		}
	case watchFailedMsg:
		// The console keeps working with whatever loaded; it just will not
		// refresh on external changes.
		m.degraded = true
		m.log.Error("watch subscribe failed", zap.Error(msg.err))
	case storeChangedMsg:
		if !msg.ok {
			m.degraded = true
			break
		}
		switch msg.ev.Collection {
		case store.CollectionSessions:
			cmds = append(cmds, m.loadSessions())
		case store.CollectionStudents:
			cmds = append(cmds, m.loadStudents())
		default:
			cmds = append(cmds, m.loadSessions(), m.loadStudents())
		}
		cmds = append(cmds, waitForChange(m.events))
	case tea.MouseClickMsg:
		m.handleClick(msg.X, msg.Y)
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) clearLoadingStatus() {
	if m.status == "جاري تحميل الحصص..." {
		m.status = ""
	}
}

func (m *Model) refreshTable() {
	items := make([]list.Item, 0, len(m.sessions))
	for _, s := range m.sessions {
		items = append(items, sessionItem{s: s})
	}
	m.table.SetItems(items)
}

func (m *Model) refreshCards() {
	counts := make(map[string]int, len(m.students))
	for _, s := range m.sessions {
		counts[s.StudentID]++
	}
	items := make([]list.Item, 0, len(m.students))
	for _, st := range m.students {
		items = append(items, studentItem{st: st, sessions: counts[st.ID]})
	}
	m.cards.SetItems(items)
}

func (m *Model) selectedSession() *session.Session {
	sel := m.table.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(sessionItem)
	if !ok {
		return nil
	}
	return it.s
}

func (m *Model) selectedStudent() *session.Student {
	sel := m.cards.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(studentItem)
	if !ok {
		return nil
	}
	return it.st
}

// handleKey routes a key press by mode, then by tab.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.mode == modeConfirm {
		return m.handleConfirmKey(msg)
	}
	if m.tab == tabStudents {
		return m.handleStudentsKey(msg)
	}
	if m.mode == modeForm {
		return m.handleFormKey(msg)
	}
	return m.handleTableKey(msg)
}

// handleTableKey is the sessions tab outside the form.
func (m *Model) handleTableKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab":
		m.switchTab(tabStudents)
	case "b", "o":
		m.enterForm(false)
		return textinput.Blink
	case "e", "enter":
		if s := m.selectedSession(); s != nil {
			m.draft.LoadForEdit(s)
			m.enterForm(true)
			return textinput.Blink
		}
	case "d", "x":
		if s := m.selectedSession(); s != nil {
			m.mode = modeConfirm
			m.confirmKind = "session"
			m.confirmID = s.ID
			m.status = "هل أنت متأكد من حذف هذه الحصة؟ (y/esc)"
		}
	case "r":
		return tea.Batch(m.loadSessions(), m.loadStudents())
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		kind, id := m.confirmKind, m.confirmID
		m.mode = modeTable
		m.confirmKind = ""
		m.confirmID = ""
		m.status = ""
		return m.deleteRecord(kind, id)
	case "esc", "n", "q":
		m.mode = modeTable
		m.confirmKind = ""
		m.confirmID = ""
		m.status = ""
	}
	return nil
}

func (m *Model) deleteRecord(kind, id string) tea.Cmd {
	return func() tea.Msg {
		switch kind {
		case "session":
			if err := m.svc.DeleteSession(m.ctx, id); err != nil {
				return errMsg{err}
			}
		case "student":
			if err := m.svc.DeleteStudent(m.ctx, id); err != nil {
				return errMsg{err}
			}
		}
		return deletedMsg{kind: kind}
	}
}

func (m *Model) switchTab(t tab) {
	m.tab = t
	m.pop.CloseAll()
	if t == tabStudents {
		m.stuFocus = 0
		m.stuName.Focus()
		m.stuPhone.Blur()
		m.stuEmail.Blur()
	} else {
		m.stuName.Blur()
		m.stuPhone.Blur()
		m.stuEmail.Blur()
	}
}

// handleClick applies the shared dismissal rule and toggles popovers whose
// trigger was pressed. Regions were registered by the last render.
func (m *Model) handleClick(x, y int) {
	// An armed delete confirmation only resolves through y/esc; a stray
	// click must not abandon it with the confirm state still set.
	if m.mode == modeConfirm {
		return
	}
	if m.tab != tabSessions {
		return
	}
	var pressed []popover.ID
	for id, r := range m.triggers {
		if r.Contains(x, y) {
			pressed = append(pressed, id)
		}
	}
	m.pop.DismissOutside(x, y, pressed...)
	for _, id := range pressed {
		if m.pop.Toggle(id) {
			if m.mode != modeForm {
				m.enterForm(m.draft.Editing())
			}
			m.focus = triggerField(id)
			m.subject.Blur()
			m.openPopover(id)
		}
	}
}

func triggerField(id popover.ID) field {
	switch id {
	case popover.StartTime:
		return fieldStart
	case popover.EndTime:
		return fieldEnd
	case popover.StudentSearch:
		return fieldStudent
	default:
		return fieldDate
	}
}

// Run starts the console program.
func Run(svc *app.Service, token string, log *zap.Logger) error {
	p := tea.NewProgram(New(svc, token, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// applySizes recalculates list sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth - formWidth - 4
	if w < 40 {
		w = 40
	}
	h := m.termHeight - 8
	if h < 5 {
		h = 5
	}
	m.table.SetSize(w, h)
	m.cards.SetSize(w, h)
}
