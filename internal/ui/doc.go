// Package ui provides the Bubble Tea front end of the counter widget.
//
// # Architecture Overview
//
// The Model renders a state.Store and turns terminal input into store
// transitions. It holds no counter state of its own: everything shown is
// re-derived from a state.Snapshot on each View. What it does own is display
// state (focus, theme, help expansion and the text in the step field).
//
// # Package Structure
//
//   - app.go: Model, Options, Update loop and the Run function
//   - controls.go: focusable controls, tab order and mouse hit boxes
//   - keys.go: local key bindings and the help.KeyMap implementation
//   - theme.go: color palettes and Lipgloss styles
//   - view.go: layout of the count, buttons, step field, history and help
//
// # Event Flow
//
//  1. Every tea.KeyMsg is first dispatched to the shared input.Dispatcher, the
//     equivalent of a document-level key listener. The arrow-key binding owned
//     by the caller handles up/down there.
//  2. Unhandled keys go to focus navigation (tab/shift+tab) and then to the
//     focused control: buttons react to enter/space, the step field to text.
//  3. Left clicks are mapped to a control through the hit boxes produced while
//     rendering, focus it and press it.
//
// # Step Field
//
// Each edit of the step field calls state.Store.SetStepText. Text that parses
// is replaced by the effective (clamped) step; text that does not parse stays
// visible and leaves the step unchanged, with the step in use shown beside it.
//
// # Key Bindings
//
//   - ↑/↓: Increment/decrement by step (global)
//   - tab/shift+tab: Cycle controls
//   - ←/→: Move between buttons
//   - enter/space: Press focused button
//   - esc/enter: Leave the step field
//   - T: Cycle theme (saved to preferences)
//   - ?: Toggle full help
//   - q/esc or ctrl+c: Quit
package ui
