// Package state holds the counter state and mirrors it to durable storage.
//
// # Overview
//
// A Store owns three values for the lifetime of the widget:
//
//   - count: the displayed integer
//   - history: every count observed since the last mount or reset
//   - step: the positive amount Increment and Decrement move by
//
// The persisted slot is external. The store reads it once in Restore and
// writes to it only through Mirror.
//
// # Transitions
//
//	ApplyDelta(d)  count += d, history = append(history, count)
//	Increment()    ApplyDelta(+step)
//	Decrement()    ApplyDelta(-step)
//	Reset()        count = 0, history = [0]
//	SetStep(n)     step = max(1, n)
//	SetStepText(s) SetStep(atoi(s)), no-op when s is not an integer
//
// Every transition reads the current fields at call time, so repeated calls in
// one event turn compose: three increments at step 3 from zero leave the count
// at 9 and the history at [0 3 6 9].
//
// Invariants after every transition:
//
//   - history[0] is the count at the last mount or reset
//   - history[len(history)-1] == count
//   - step >= 1
//
// # Observers
//
// OnCountChange and OnStepChange register callbacks that run after a
// transition changes the respective value. A Reset from zero or a SetStep to
// the current step notifies nobody. Each registration returns its own
// unsubscribe func.
//
// # Persistence
//
// Mirror writes the count under SlotKey as a decimal string immediately and
// then on every count change:
//
//	store, _ := state.Restore(slot)
//	stop := state.Mirror(store, slot, logger)
//	defer stop()
//
// # Concurrency Model
//
// None. The Bubble Tea update loop is the only caller, and it already
// serializes input events in dispatch order.
package state
