package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/lift/internal/db"
	"github.com/gerunddev/lift/internal/log"
	"github.com/gerunddev/lift/internal/timer"
	"github.com/gerunddev/lift/internal/workout"
)

// Mode selects between composing a plan and performing a session.
type Mode int

const (
	ModeCompose Mode = iota
	ModeExecute
)

func (m Mode) String() string {
	if m == ModeExecute {
		return "Session"
	}
	return "Plan"
}

// Store is the persistence the TUI saves through. *db.DB implements it.
type Store interface {
	workout.PlanStore
	workout.SessionStore
}

// Options configures a new Model.
type Options struct {
	Mode Mode
	// Plan is the draft edited in ModeCompose. A new empty draft is used if nil.
	Plan *workout.Plan
	// Session is the state driven in ModeExecute. A new one is used if nil.
	Session     *workout.Session
	Exercises   []db.Exercise
	Store       Store
	UserID      int64
	RestPresets []int
	Context     context.Context
}

// Result reports how the TUI finished.
type Result struct {
	Saved     bool
	Discarded bool
	PlanID    int64
	Session   db.SessionSaveResult
}

type promptKind int

const (
	promptNone promptKind = iota
	promptName
	promptNotes
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteSet
	confirmRemoveExercise
	confirmDiscard
)

// tickMsg refreshes the clocks once a second.
type tickMsg time.Time

// row is one selectable body line: an exercise (set == -1) or one of its sets.
type row struct {
	ex, set int
}

// Model is the Bubble Tea model for plan composition and session execution.
type Model struct {
	mode    Mode
	plan    *workout.Plan
	session *workout.Session
	store   Store
	userID  int64
	ctx     context.Context

	presets   []int
	presetIdx int

	keys    KeyMap
	help    help.Model
	header  Header
	panel   *ScrollablePanel
	picker  picker
	input   textinput.Model
	prompt  promptKind
	confirm confirmKind

	cursor int
	field  workout.Field

	notice   string
	err      error
	result   Result
	quitting bool

	width       int
	height      int
	initialized bool
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	m := Model{
		mode:    opts.Mode,
		plan:    opts.Plan,
		session: opts.Session,
		store:   opts.Store,
		userID:  opts.UserID,
		ctx:     opts.Context,
		presets: opts.RestPresets,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		picker:  picker{exercises: opts.Exercises},
	}
	if m.mode == ModeExecute {
		if m.session == nil {
			m.session = workout.NewSession()
		}
		m.plan = &m.session.Plan
	} else if m.plan == nil {
		m.plan = workout.NewPlan()
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if len(m.presets) == 0 {
		m.presets = timer.RestPresets
	}
	if m.userID == 0 {
		m.userID = db.LocalUserID
	}

	panel := NewScrollablePanel("Exercises")
	m.panel = &panel

	ti := textinput.New()
	ti.CharLimit = 200
	m.input = ti

	m.header.Mode = m.mode
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeExecute {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.initialized = true
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.confirm != confirmNone:
		return m.handleConfirm(msg)
	case m.prompt != promptNone:
		return m.handlePrompt(msg)
	case m.picker.visible:
		return m.handlePicker(msg)
	}

	m.notice = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.needsDiscardConfirmation() {
			m.confirm = confirmDiscard
			return m, nil
		}
		if m.session != nil {
			m.session.Discard()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.NextField):
		if m.field == workout.FieldReps {
			m.field = workout.FieldKg
		} else {
			m.field = workout.FieldReps
		}

	case key.Matches(msg, m.keys.Digit):
		m.typeToken(msg.String())

	case key.Matches(msg, m.keys.Backspace):
		m.typeToken(workout.DeleteToken)

	case key.Matches(msg, m.keys.AddSet):
		m.addSet()

	case key.Matches(msg, m.keys.DeleteSet):
		if r, ok := m.current(); ok && r.set >= 0 {
			m.confirm = confirmDeleteSet
		}

	case key.Matches(msg, m.keys.RemoveExercise):
		if _, ok := m.current(); ok {
			m.confirm = confirmRemoveExercise
		}

	case key.Matches(msg, m.keys.AddExercise):
		m.picker.open()

	case key.Matches(msg, m.keys.Rename):
		return m, m.openPrompt(promptName, "Plan name", m.plan.Name())

	case m.mode == ModeExecute && key.Matches(msg, m.keys.Notes):
		return m, m.openPrompt(promptNotes, "How did it go?", m.session.Notes())

	case m.mode == ModeExecute:
		m.handleSessionKey(msg)
	}

	return m, nil
}

func (m *Model) handleSessionKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.current(); ok && r.set >= 0 {
			m.report(m.session.ToggleSetCompletion(r.ex, r.set))
		}

	case key.Matches(msg, m.keys.Rest):
		secs := m.presets[m.presetIdx%len(m.presets)]
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		if err := m.session.RestTimer().Start(secs); err != nil {
			m.notice = err.Error()
		}

	case key.Matches(msg, m.keys.RestReset):
		m.session.RestTimer().Reset()

	case key.Matches(msg, m.keys.Pause):
		sw := m.session.Stopwatch()
		if sw.Running() {
			sw.Pause()
		} else {
			sw.Start()
		}
	}
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		kind := m.confirm
		m.confirm = confirmNone
		switch kind {
		case confirmDeleteSet:
			if r, ok := m.current(); ok && r.set >= 0 {
				m.report(m.plan.DeleteSet(r.ex, r.set))
			}
		case confirmRemoveExercise:
			if r, ok := m.current(); ok {
				m.report(m.plan.RemoveExercise(r.ex))
			}
		case confirmDiscard:
			if m.session != nil {
				m.session.Discard()
			} else {
				m.plan.Clear()
			}
			m.result.Discarded = true
			m.quitting = true
			return m, tea.Quit
		}
		m.clampCursor()

	case key.Matches(msg, m.keys.Cancel):
		m.confirm = confirmNone
	}
	return m, nil
}

func (m *Model) openPrompt(kind promptKind, placeholder, value string) tea.Cmd {
	m.prompt = kind
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		switch m.prompt {
		case promptName:
			m.plan.SetName(m.input.Value())
		case promptNotes:
			m.session.SetNotes(m.input.Value())
		}
		m.prompt = promptNone
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.prompt = promptNone
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.picker.move(1)
	case key.Matches(msg, m.keys.Select):
		if e, ok := m.picker.selected(); ok {
			m.plan.AddExercise(e.ID, e.Name)
			ex := m.plan.Len() - 1
			m.cursor = m.rowIndex(ex, 0)
		}
		m.picker.close()
	case msg.Type == tea.KeyEsc:
		m.picker.close()
	}
	return m, nil
}

func (m *Model) typeToken(token string) {
	r, ok := m.current()
	if !ok || r.set < 0 {
		return
	}
	m.report(m.plan.UpdateSetField(r.ex, r.set, m.field, token))
}

func (m *Model) addSet() {
	r, ok := m.current()
	if !ok {
		return
	}
	if err := m.plan.AddSet(r.ex); err != nil {
		m.report(err)
		return
	}
	m.cursor = m.rowIndex(r.ex, m.plan.SetCount(r.ex)-1)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	var err error
	if m.mode == ModeExecute {
		var res db.SessionSaveResult
		res, err = m.session.Save(m.ctx, m.store, m.userID)
		if err == nil {
			m.result = Result{Saved: true, PlanID: res.PlanID, Session: res}
		}
	} else {
		var planID int64
		planID, err = m.plan.Save(m.ctx, m.store, m.userID)
		if err == nil {
			m.result = Result{Saved: true, PlanID: planID}
		}
	}

	if err != nil {
		if workout.IsValidation(err) {
			m.notice = validationMessage(err)
			return m, nil
		}
		log.Error("failed to save", "mode", m.mode, "error", err)
		m.err = err
		return m, nil
	}

	m.quitting = true
	return m, tea.Quit
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, workout.ErrEmptyName):
		return "Give the plan a name before saving (n)"
	case errors.Is(err, workout.ErrIncompleteSession):
		return "Complete every set before saving"
	default:
		return err.Error()
	}
}

func (m Model) needsDiscardConfirmation() bool {
	if m.session != nil {
		return m.session.NeedsDiscardConfirmation()
	}
	return m.plan.IsDirty()
}

// report surfaces an error from a state operation.
func (m *Model) report(err error) {
	if err != nil {
		m.notice = err.Error()
	}
}

// rows lists the selectable body lines in display order.
func (m Model) rows() []row {
	var rows []row
	for i, e := range m.plan.Exercises() {
		rows = append(rows, row{ex: i, set: -1})
		for j := range e.Sets {
			rows = append(rows, row{ex: i, set: j})
		}
	}
	return rows
}

func (m Model) rowIndex(ex, set int) int {
	for i, r := range m.rows() {
		if r.ex == ex && r.set == set {
			return i
		}
	}
	return 0
}

func (m Model) current() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// updateLayout updates component sizes based on window size.
func (m *Model) updateLayout() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width

	// Header: 3 lines, footer: 2 lines
	availableHeight := m.height - 5
	if availableHeight < 8 {
		availableHeight = 8
	}
	m.panel.SetSize(m.width, availableHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.initialized {
		return "Initializing..."
	}

	var s strings.Builder

	h := m.header
	h.Name = m.plan.Name()
	if m.session != nil {
		h.Elapsed = m.session.Stopwatch().Elapsed()
		h.ClockOn = m.session.Stopwatch().Running()
		h.Rest = m.session.RestTimer().Remaining()
		h.RestOn = m.session.RestTimer().Running()
		h.Done, h.Total = m.session.CompletedCount()
	}
	s.WriteString(h.View())
	s.WriteString("\n")

	m.panel.SetContent(m.renderBody(), m.cursor)
	s.WriteString(m.panel.View())
	s.WriteString("\n")

	if dialog := m.renderDialog(); dialog != "" {
		s.WriteString(dialog)
		s.WriteString("\n")
	}

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		s.WriteString("\n")
	case m.notice != "":
		s.WriteString(noticeStyle.Render(m.notice))
		s.WriteString("\n")
	}

	s.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(s.String())
}

func (m Model) renderBody() string {
	exercises := m.plan.Exercises()
	if len(exercises) == 0 {
		return emptyStyle.Render("No exercises yet. Press e to add one.")
	}

	var lines []string
	for i, r := range m.rows() {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("› ")
		}
		e := exercises[r.ex]
		if r.set < 0 {
			line := exerciseStyle.Render(fmt.Sprintf("%d. %s", r.ex+1, e.Name))
			if len(e.Sets) == 0 {
				line += "  " + emptyStyle.Render("no sets")
			}
			lines = append(lines, prefix+line)
			continue
		}
		lines = append(lines, prefix+m.renderSet(r, e.Sets[r.set], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSet(r row, set workout.WorkingSet, selected bool) string {
	field := func(f workout.Field, v string) string {
		if v == "" {
			v = "-"
		}
		text := fmt.Sprintf("%s %-5s", f, v)
		if selected && f == m.field {
			return activeFieldStyle.Render(text)
		}
		return fieldStyle.Render(text)
	}

	line := setStyle.Render(fmt.Sprintf("   set %d  ", r.set+1)) +
		field(workout.FieldReps, set.Reps) + "  " +
		field(workout.FieldKg, set.Kg)

	if m.mode == ModeExecute {
		if set.IsCompleted {
			line += "  " + completedStyle.Render("✓")
		} else {
			line += "  " + pendingStyle.Render("○")
		}
	}
	return line
}

func (m Model) renderDialog() string {
	switch {
	case m.confirm != confirmNone:
		return dialogStyle.Render(dialogTitleStyle.Render(m.confirmPrompt()) + "  " + fieldStyle.Render("y/n"))
	case m.prompt == promptName:
		return dialogStyle.Render(dialogTitleStyle.Render("Name") + "\n" + m.input.View())
	case m.prompt == promptNotes:
		return dialogStyle.Render(dialogTitleStyle.Render("Notes") + "\n" + m.input.View())
	case m.picker.visible:
		return m.picker.View()
	}
	return ""
}

func (m Model) confirmPrompt() string {
	switch m.confirm {
	case confirmDeleteSet:
		return "Delete this set?"
	case confirmRemoveExercise:
		return "Remove this exercise and all its sets?"
	case confirmDiscard:
		if m.mode == ModeExecute {
			return "Discard this workout?"
		}
		return "Discard this plan?"
	}
	return ""
}

// Result returns how the TUI finished.
func (m Model) Result() Result {
	return m.result
}

// Error returns the last save failure, if any.
func (m Model) Error() error {
	return m.err
}
