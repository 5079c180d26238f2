package state

import "slices"

type subscriber struct {
	fn func(int)
}

// observers is an ordered list of change callbacks.
type observers struct {
	subs []*subscriber
}

func (o *observers) add(fn func(int)) func() {
	sub := &subscriber{fn: fn}
	o.subs = append(o.subs, sub)
	return func() {
		if i := slices.Index(o.subs, sub); i >= 0 {
			o.subs = slices.Delete(o.subs, i, i+1)
		}
	}
}

// notify calls every subscriber registered when notify starts, so callbacks
// may subscribe or unsubscribe freely.
func (o *observers) notify(v int) {
	for _, sub := range slices.Clone(o.subs) {
		sub.fn(v)
	}
}

func (o *observers) len() int { return len(o.subs) }
