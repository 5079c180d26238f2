package ui

// control identifies a focusable element. Order is the tab order.
type control int

const (
	controlDecrement control = iota
	controlIncrement
	controlReset
	controlStep
	numControls
)

// buttons lists the button controls left to right.
var buttons = []control{controlDecrement, controlIncrement, controlReset}

func (c control) label() string {
	switch c {
	case controlDecrement:
		return "Decrement"
	case controlIncrement:
		return "Increment"
	case controlReset:
		return "Reset"
	case controlStep:
		return "Step"
	default:
		return ""
	}
}

func (c control) next() control {
	return (c + 1) % numControls
}

func (c control) prev() control {
	return (c + numControls - 1) % numControls
}

func (c control) isButton() bool {
	return c >= controlDecrement && c <= controlReset
}

// left and right move between buttons without wrapping.
func (c control) left() control {
	if c.isButton() && c > controlDecrement {
		return c - 1
	}
	return c
}

func (c control) right() control {
	if c.isButton() && c < controlReset {
		return c + 1
	}
	return c
}

// hitBox is the screen rectangle a control occupies, half-open on both axes.
type hitBox struct {
	control control
	x0, x1  int
	y0, y1  int
}

func (b hitBox) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

func (b hitBox) offset(dx, dy int) hitBox {
	b.x0 += dx
	b.x1 += dx
	b.y0 += dy
	b.y1 += dy
	return b
}
