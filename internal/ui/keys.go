package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/tally/internal/input"
)

// keyMap defines the widget's local key bindings. The arrow-key shortcuts
// live in input.KeyMap and are only listed here for the help footer.
type keyMap struct {
	Counter input.KeyMap

	// Focus
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
	Leave key.Binding

	// Buttons
	Press key.Binding

	// Global
	Help       key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap(counter input.KeyMap) keyMap {
	return keyMap{
		Counter: counter,

		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous control"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Button left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Button right"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "Leave step field"),
		),

		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Press button"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Counter.Up, k.Counter.Down, k.Next, k.Press, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Counter.Up, k.Counter.Down},
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Press, k.Leave},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
