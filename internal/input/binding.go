package input

import "github.com/charmbracelet/bubbles/key"

// Target is the state the keyboard shortcuts drive.
type Target interface {
	Step() int
	ApplyDelta(delta int)
	OnStepChange(fn func(step int)) (unsubscribe func())
}

// KeyMap holds the counter's global shortcuts.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap binds the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Increment by step"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Decrement by step"),
		),
	}
}

// Binding owns the single keyboard listener for a Target.
type Binding struct {
	dispatcher  *Dispatcher
	target      Target
	keys        KeyMap
	step        int
	detach      func()
	unsubscribe func()
}

// Bind attaches a listener for target's current step and re-attaches it on
// every step change. Close must be called on unmount.
func Bind(d *Dispatcher, target Target, keys KeyMap) *Binding {
	b := &Binding{dispatcher: d, target: target, keys: keys}
	b.attach(target.Step())
	b.unsubscribe = target.OnStepChange(b.attach)
	return b
}

// attach replaces the active listener with one closing over step.
func (b *Binding) attach(step int) {
	if b.detach != nil {
		b.detach()
	}
	b.step = step
	b.detach = b.dispatcher.Add(b.listener(step))
}

func (b *Binding) listener(step int) Listener {
	return func(k Key) bool {
		switch {
		case key.Matches(k, b.keys.Up):
			b.target.ApplyDelta(step)
			return true
		case key.Matches(k, b.keys.Down):
			b.target.ApplyDelta(-step)
			return true
		}
		return false
	}
}

// Step returns the step the active listener was attached with.
func (b *Binding) Step() int { return b.step }

// Active reports whether the binding still has a listener attached.
func (b *Binding) Active() bool { return b.detach != nil }

// Close detaches the listener and stops following step changes.
func (b *Binding) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
}
