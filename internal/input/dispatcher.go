// Package input routes keyboard events to the counter.
//
// A Dispatcher is the program-wide key event target: the ui forwards every key
// press to it before local focus handling. A Binding keeps exactly one
// listener on the dispatcher for the counter's arrow-key shortcuts and
// re-registers it whenever the step changes, so the active listener always
// closes over the current step.
package input

import "slices"

// Key names a key press in Bubble Tea's notation ("up", "down", "ctrl+c").
type Key string

// String implements fmt.Stringer so a Key can be matched with key.Matches.
func (k Key) String() string { return string(k) }

// Listener handles a key event and reports whether it acted on it.
type Listener func(Key) bool

type registration struct {
	fn Listener
}

// Dispatcher delivers key events to every registered listener.
type Dispatcher struct {
	listeners []*registration
}

// NewDispatcher returns a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers l. The returned func removes it; calling it again is a no-op.
func (d *Dispatcher) Add(l Listener) (remove func()) {
	reg := &registration{fn: l}
	d.listeners = append(d.listeners, reg)
	return func() {
		if i := slices.Index(d.listeners, reg); i >= 0 {
			d.listeners = slices.Delete(d.listeners, i, i+1)
		}
	}
}

// Dispatch delivers k to the listeners registered when the call starts and
// reports whether any of them handled it.
func (d *Dispatcher) Dispatch(k Key) bool {
	handled := false
	for _, reg := range slices.Clone(d.listeners) {
		if reg.fn(k) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of active listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}
