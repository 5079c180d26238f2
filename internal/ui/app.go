package ui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/tally/internal/input"
	"github.com/five82/tally/internal/state"
)

// ThemePrefKey is the preferences key the selected theme is saved under.
const ThemePrefKey = "theme"

// Preferences persists ui preferences. It never sees counter state.
type Preferences interface {
	Set(key, value string) error
}

// Options configures the UI.
type Options struct {
	Store      *state.Store
	Dispatcher *input.Dispatcher
	Keys       input.KeyMap
	Prefs      Preferences // nil disables saving the theme
	ThemeName  string
	Logger     zerolog.Logger
}

// Model is the Bubble Tea model for the counter widget.
type Model struct {
	// Wiring
	store      *state.Store
	dispatcher *input.Dispatcher
	prefs      Preferences
	log        zerolog.Logger

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	step   textinput.Model
	focus  control
	width  int
	height int
	ready  bool
}

// New creates the model. Store and Dispatcher must be mounted by the caller.
func New(opts Options) Model {
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = input.NewDispatcher()
	}

	counterKeys := opts.Keys
	if len(counterKeys.Up.Keys()) == 0 && len(counterKeys.Down.Keys()) == 0 {
		counterKeys = input.DefaultKeyMap()
	}

	step := textinput.New()
	step.Prompt = ""
	step.CharLimit = 6
	step.Width = 6
	step.Placeholder = "1"
	step.SetValue(strconv.Itoa(opts.Store.Step()))

	m := Model{
		store:      opts.Store,
		dispatcher: dispatcher,
		prefs:      opts.Prefs,
		log:        opts.Logger,
		theme:      GetTheme(opts.ThemeName),
		keys:       defaultKeyMap(counterKeys),
		help:       help.New(),
		step:       step,
		focus:      controlIncrement,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tally")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2*padX
		m.ready = true
		return m, nil
	}

	// Cursor blink and other textinput messages.
	if m.focus == controlStep {
		var cmd tea.Cmd
		m.step, cmd = m.step.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.render().body
}

// handleKey processes keyboard input. Every key reaches the global
// dispatcher first, then the focused control.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.dispatcher.Dispatch(input.Key(msg.String())) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus(m.focus.next())
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus(m.focus.prev())
		return m, cmd
	}

	if m.focus == controlStep {
		return m.handleStepKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.focus = m.focus.left()
	case key.Matches(msg, m.keys.Right):
		m.focus = m.focus.right()
	case key.Matches(msg, m.keys.Press):
		m.press(m.focus)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	}
	return m, nil
}

// handleStepKey feeds the step field and applies every edit.
func (m Model) handleStepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		cmd := m.setFocus(controlIncrement)
		return m, cmd
	}

	before := m.step.Value()
	var cmd tea.Cmd
	m.step, cmd = m.step.Update(msg)
	if text := m.step.Value(); text != before {
		m.editStep(text)
	}
	return m, cmd
}

// editStep applies text to the store. Parsed input is normalized to the
// effective step; anything else stays in the field and changes nothing.
func (m *Model) editStep(text string) {
	if !m.store.SetStepText(text) {
		return
	}
	if effective := strconv.Itoa(m.store.Step()); effective != text {
		m.step.SetValue(effective)
		m.step.CursorEnd()
	}
}

// handleMouse activates the control under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	c, ok := m.render().hit(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	cmd := m.setFocus(c)
	m.press(c)
	return m, cmd
}

// press performs a control's action.
func (m *Model) press(c control) {
	switch c {
	case controlDecrement:
		m.store.Decrement()
	case controlIncrement:
		m.store.Increment()
	case controlReset:
		m.store.Reset()
	}
}

// setFocus moves focus to c, focusing or blurring the step field. The field
// is reset to the effective step whenever focus moves.
func (m *Model) setFocus(c control) tea.Cmd {
	m.focus = c
	if effective := strconv.Itoa(m.store.Step()); m.step.Value() != effective {
		m.step.SetValue(effective)
		m.step.CursorEnd()
	}
	if c == controlStep {
		return m.step.Focus()
	}
	m.step.Blur()
	return nil
}

// cycleTheme switches to the next theme and saves the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Set(ThemePrefKey, m.theme.Name); err != nil {
		m.log.Warn().Err(err).Str("theme", m.theme.Name).Msg("save theme failed")
	}
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.help.Styles.ShortKey = styles.HelpKey
	m.help.Styles.ShortDesc = styles.HelpDesc
	m.help.Styles.ShortSeparator = styles.HelpSeparator
	m.help.Styles.FullKey = styles.HelpKey
	m.help.Styles.FullDesc = styles.HelpDesc
	m.help.Styles.FullSeparator = styles.HelpSeparator
	m.help.Styles.Ellipsis = styles.HelpSeparator

	m.step.TextStyle = styles.Text
	m.step.PlaceholderStyle = styles.FaintText
	m.step.Cursor.Style = styles.AccentText
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
