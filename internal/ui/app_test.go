package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/five82/tally/internal/input"
	"github.com/five82/tally/internal/kv"
	"github.com/five82/tally/internal/state"
)

type harness struct {
	t       *testing.T
	store   *state.Store
	binding *input.Binding
	prefs   *kv.Memory
	model   Model
}

func newHarness(t *testing.T, initial int) *harness {
	t.Helper()
	store := state.New(initial)
	dispatcher := input.NewDispatcher()
	binding := input.Bind(dispatcher, store, input.DefaultKeyMap())
	t.Cleanup(binding.Close)

	prefs := kv.NewMemory()
	m := New(Options{
		Store:      store,
		Dispatcher: dispatcher,
		Prefs:      prefs,
		ThemeName:  "Nightfox",
		Logger:     zerolog.Nop(),
	})
	h := &harness{t: t, store: store, binding: binding, prefs: prefs, model: m}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) keys(names ...string) {
	for _, name := range names {
		h.send(keyMsg(name))
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) click(c control) {
	for _, b := range h.model.render().boxes {
		if b.control == c {
			h.send(tea.MouseMsg{
				X:      (b.x0 + b.x1) / 2,
				Y:      (b.y0 + b.y1) / 2,
				Action: tea.MouseActionPress,
				Button: tea.MouseButtonLeft,
			})
			return
		}
	}
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// focusStep tabs from the initial Increment focus to the step field.
func (h *harness) focusStep() {
	h.t.Helper()
	h.keys("tab", "tab")
	if h.model.focus != controlStep {
		h.t.Fatalf("focus = %v, want step field", h.model.focus)
	}
}

func TestModel_ViewBeforeSizeIsLoading(t *testing.T) {
	m := New(Options{Store: state.New(0)})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestModel_ArrowKeysUseGlobalBinding(t *testing.T) {
	h := newHarness(t, 0)

	h.keys("up", "up", "down")
	if h.store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", h.store.Count())
	}
	if diff := cmp.Diff([]int{0, 1, 2, 1}, h.store.History()); diff != "" {
		t.Fatalf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_ArrowKeysWorkWhileEditingStep(t *testing.T) {
	h := newHarness(t, 0)
	h.focusStep()

	h.keys("up")
	if h.store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", h.store.Count())
	}
}

func TestModel_ButtonsByKeyboard(t *testing.T) {
	h := newHarness(t, 0)

	h.keys("enter", "space") // Increment is focused initially
	h.keys("left", "enter")  // Decrement
	if h.store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", h.store.Count())
	}

	h.keys("right", "right", "enter") // Reset
	if diff := cmp.Diff([]int{0}, h.store.History()); diff != "" {
		t.Fatalf("History after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_LeftRightStayOnButtons(t *testing.T) {
	h := newHarness(t, 0)

	h.keys("left", "left", "left")
	if h.model.focus != controlDecrement {
		t.Fatalf("focus = %v, want Decrement", h.model.focus)
	}
	h.keys("right", "right", "right", "right")
	if h.model.focus != controlReset {
		t.Fatalf("focus = %v, want Reset", h.model.focus)
	}
}

func TestModel_TabCyclesControls(t *testing.T) {
	h := newHarness(t, 0)

	want := []control{controlReset, controlStep, controlDecrement, controlIncrement}
	for _, c := range want {
		h.keys("tab")
		if h.model.focus != c {
			t.Fatalf("focus = %v, want %v", h.model.focus, c)
		}
	}
	h.keys("shift+tab")
	if h.model.focus != controlDecrement {
		t.Fatalf("focus = %v, want Decrement", h.model.focus)
	}
}

func TestModel_ClickButtons(t *testing.T) {
	h := newHarness(t, 0)
	h.store.SetStep(3)

	h.click(controlIncrement)
	h.click(controlIncrement)
	h.click(controlDecrement)
	if h.store.Count() != 3 {
		t.Fatalf("Count = %d, want 3", h.store.Count())
	}
	if h.model.focus != controlDecrement {
		t.Fatalf("focus = %v, want Decrement after click", h.model.focus)
	}

	h.click(controlReset)
	if h.store.Count() != 0 || h.store.TotalChanges() != 0 {
		t.Fatalf("after reset: count=%d changes=%d", h.store.Count(), h.store.TotalChanges())
	}
}

func TestModel_ClickOutsideControlsDoesNothing(t *testing.T) {
	h := newHarness(t, 4)

	h.send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(tea.MouseMsg{X: 99, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if h.store.Count() != 4 || h.store.TotalChanges() != 0 {
		t.Fatalf("state changed: count=%d changes=%d", h.store.Count(), h.store.TotalChanges())
	}
}

func TestModel_ClickStepFieldFocusesIt(t *testing.T) {
	h := newHarness(t, 0)

	h.click(controlStep)
	if h.model.focus != controlStep || !h.model.step.Focused() {
		t.Fatalf("focus = %v, focused = %v, want step field focused", h.model.focus, h.model.step.Focused())
	}
	if h.store.TotalChanges() != 0 {
		t.Fatalf("TotalChanges = %d, want 0", h.store.TotalChanges())
	}
}

func TestModel_StepFieldEdits(t *testing.T) {
	h := newHarness(t, 0)
	h.focusStep()

	h.keys("backspace")
	h.typeText("5")
	if h.store.Step() != 5 {
		t.Fatalf("Step = %d, want 5", h.store.Step())
	}

	h.keys("up")
	if h.store.Count() != 5 {
		t.Fatalf("Count = %d, want 5", h.store.Count())
	}

	h.keys("backspace")
	h.typeText("abc")
	if h.store.Step() != 5 {
		t.Fatalf("Step = %d, want 5 retained after non-numeric input", h.store.Step())
	}
	if h.model.step.Value() != "abc" {
		t.Fatalf("field = %q, want abc", h.model.step.Value())
	}
	if !strings.Contains(h.model.View(), "using 5") {
		t.Fatalf("View does not show the effective step:\n%s", h.model.View())
	}

	h.keys("esc")
	if h.model.focus != controlIncrement {
		t.Fatalf("focus = %v, want Increment after esc", h.model.focus)
	}
	if h.model.step.Value() != "5" {
		t.Fatalf("field = %q, want 5 after leaving", h.model.step.Value())
	}
}

func TestModel_StepFieldClampsToOne(t *testing.T) {
	h := newHarness(t, 0)
	h.store.SetStep(4)
	h.focusStep()

	h.keys("backspace")
	h.typeText("0")
	if h.store.Step() != 1 {
		t.Fatalf("Step = %d, want 1", h.store.Step())
	}
	if h.model.step.Value() != "1" {
		t.Fatalf("field = %q, want normalized 1", h.model.step.Value())
	}

	h.keys("backspace")
	h.typeText("-5")
	if h.store.Step() != 1 {
		t.Fatalf("Step = %d, want 1", h.store.Step())
	}
}

func TestModel_StepChangesKeepOneListener(t *testing.T) {
	h := newHarness(t, 0)
	h.focusStep()

	for _, digit := range []string{"2", "3", "4", "5"} {
		h.keys("backspace")
		h.typeText(digit)
	}
	h.keys("up")
	if h.store.Count() != 5 {
		t.Fatalf("Count = %d, want 5 (a single increment at step 5)", h.store.Count())
	}
	if h.store.TotalChanges() != 1 {
		t.Fatalf("TotalChanges = %d, want 1", h.store.TotalChanges())
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name  string
		focus func(h *harness)
		key   string
		quit  bool
	}{
		{"ctrl+c on button", func(*harness) {}, "ctrl+c", true},
		{"q on button", func(*harness) {}, "q", true},
		{"esc on button", func(*harness) {}, "esc", true},
		{"ctrl+c in step field", (*harness).focusStep, "ctrl+c", true},
		{"q in step field", (*harness).focusStep, "q", false},
		{"esc in step field", (*harness).focusStep, "esc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 0)
			tt.focus(h)
			cmd := h.send(keyMsg(tt.key))

			quit := false
			if cmd != nil {
				_, quit = cmd().(tea.QuitMsg)
			}
			if quit != tt.quit {
				t.Fatalf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestModel_CycleThemeSavesPreference(t *testing.T) {
	h := newHarness(t, 0)

	h.keys("T")
	if h.model.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", h.model.theme.Name)
	}
	if v, ok, _ := h.prefs.Get(ThemePrefKey); !ok || v != "Kanagawa" {
		t.Fatalf("saved theme = (%q, %v), want Kanagawa", v, ok)
	}
	if _, ok, _ := h.prefs.Get(state.SlotKey); ok {
		t.Fatal("theme change wrote the counter slot")
	}
}

type failingPrefs struct{}

func (failingPrefs) Set(string, string) error { return errors.New("read-only") }

func TestModel_CycleThemeSurvivesSaveFailure(t *testing.T) {
	m := New(Options{Store: state.New(0), Prefs: failingPrefs{}, Logger: zerolog.Nop()})
	next, _ := m.Update(keyMsg("T"))
	if got := next.(Model).theme.Name; got != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", got)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness(t, 0)

	h.keys("?")
	if !h.model.help.ShowAll {
		t.Fatal("ShowAll = false after ?")
	}
	if !strings.Contains(h.model.View(), "Cycle theme") {
		t.Fatalf("full help missing from view:\n%s", h.model.View())
	}
	h.keys("?")
	if h.model.help.ShowAll {
		t.Fatal("ShowAll = true after second ?")
	}
}
