package state

import (
	"slices"
	"strconv"
	"strings"
)

// SlotKey is the key the current count is persisted under.
const SlotKey = "advancedCounterValue"

// Slot is the durable key-value port the store restores from and mirrors to.
type Slot interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Snapshot is an immutable view of the counter for rendering.
type Snapshot struct {
	Count   int
	History []int
	Step    int
}

// TotalChanges is the number of transitions since the last mount or reset.
func (s Snapshot) TotalChanges() int {
	if len(s.History) == 0 {
		return 0
	}
	return len(s.History) - 1
}

// Store holds the counter state. It is not safe for concurrent use; every
// transition runs to completion on the caller's goroutine before the next.
type Store struct {
	count   int
	history []int
	step    int

	countChanged observers
	stepChanged  observers
}

// New returns a store seeded with initial and a step of 1.
func New(initial int) *Store {
	return &Store{
		count:   initial,
		history: []int{initial},
		step:    1,
	}
}

// Restore seeds a store from the persisted slot. Missing, unreadable and
// malformed values all fall back to zero; ok reports whether a stored value
// was used.
func Restore(slot Slot) (s *Store, ok bool) {
	initial, ok := restoredCount(slot)
	return New(initial), ok
}

// restoredCount reports the persisted count and whether a usable value was found.
func restoredCount(slot Slot) (int, bool) {
	if slot == nil {
		return 0, false
	}
	raw, ok, err := slot.Get(SlotKey)
	if err != nil || !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Count returns the current count.
func (s *Store) Count() int { return s.count }

// Step returns the current step.
func (s *Store) Step() int { return s.step }

// History returns a copy of the change history.
func (s *Store) History() []int { return slices.Clone(s.history) }

// TotalChanges returns len(history) - 1.
func (s *Store) TotalChanges() int { return len(s.history) - 1 }

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Count:   s.count,
		History: slices.Clone(s.history),
		Step:    s.step,
	}
}

// ApplyDelta adds delta to the current count and records the result.
func (s *Store) ApplyDelta(delta int) {
	prev := s.count
	next := prev + delta
	s.history = append(s.history, next)
	s.count = next
	if next != prev {
		s.countChanged.notify(next)
	}
}

// Increment applies +step.
func (s *Store) Increment() { s.ApplyDelta(s.step) }

// Decrement applies -step.
func (s *Store) Decrement() { s.ApplyDelta(-s.step) }

// Reset sets the count to zero and discards the history.
func (s *Store) Reset() {
	prev := s.count
	s.count = 0
	s.history = []int{0}
	if prev != 0 {
		s.countChanged.notify(0)
	}
}

// SetStep sets the step, clamped to at least 1.
func (s *Store) SetStep(n int) {
	n = max(1, n)
	if n == s.step {
		return
	}
	s.step = n
	s.stepChanged.notify(n)
}

// SetStepText parses text as an integer step. Non-numeric text leaves the
// step unchanged and reports false.
func (s *Store) SetStepText(text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	s.SetStep(n)
	return true
}

// OnCountChange registers fn to run after every transition that changes the
// count value.
func (s *Store) OnCountChange(fn func(count int)) (unsubscribe func()) {
	return s.countChanged.add(fn)
}

// OnStepChange registers fn to run after every change of the step value.
func (s *Store) OnStepChange(fn func(step int)) (unsubscribe func()) {
	return s.stepChanged.add(fn)
}
