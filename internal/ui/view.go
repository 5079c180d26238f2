package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Outer padding around the whole widget.
const (
	padX = 2
	padY = 1
)

const historyPlaceholder = "No history yet"

// screen is a rendered frame plus where its controls landed.
type screen struct {
	body  string
	boxes []hitBox
}

func (s screen) hit(x, y int) (control, bool) {
	for _, b := range s.boxes {
		if b.contains(x, y) {
			return b.control, true
		}
	}
	return 0, false
}

// render lays out the widget top to bottom, tracking the row each section
// starts on so mouse clicks can be mapped back to controls.
func (m Model) render() screen {
	styles := m.theme.Styles()
	snap := m.store.Snapshot()

	var (
		sections []string
		boxes    []hitBox
		row      = padY
	)
	add := func(s string) int {
		top := row
		sections = append(sections, s)
		row += lipgloss.Height(s)
		return top
	}

	add(m.renderTitle(styles))
	add("")
	add(renderCount(styles, snap.Count))
	add("")

	buttonRow, buttonBoxes := m.renderButtons(styles)
	top := add(buttonRow)
	for _, b := range buttonBoxes {
		boxes = append(boxes, b.offset(padX, top))
	}
	add("")

	stepRow, stepBox := m.renderStep(styles, snap.Step)
	top = add(stepRow)
	boxes = append(boxes, stepBox.offset(padX, top))
	add("")

	add(styles.MutedText.Render("History"))
	add(m.renderHistory(styles, snap.History))
	add(styles.MutedText.Render("Total changes: ") + styles.Text.Render(strconv.Itoa(snap.TotalChanges())))
	add("")
	add(m.help.View(m.keys))

	body := lipgloss.NewStyle().
		Padding(padY, padX).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return screen{body: body, boxes: boxes}
}

func (m Model) renderTitle(styles Styles) string {
	return styles.Title.Render("Advanced Counter") + "  " + styles.FaintText.Render(m.theme.Name)
}

func renderCount(styles Styles, count int) string {
	value := styles.Text
	switch {
	case count > 0:
		value = styles.Positive
	case count < 0:
		value = styles.Negative
	}
	return styles.Count.Render(value.Bold(true).Render(strconv.Itoa(count)))
}

// renderButtons returns the button row and each button's box relative to it.
func (m Model) renderButtons(styles Styles) (string, []hitBox) {
	var (
		parts []string
		boxes []hitBox
		x     int
	)
	for i, c := range buttons {
		if i > 0 {
			parts = append(parts, " ")
			x++
		}
		style := styles.Button
		if m.focus == c {
			style = styles.ButtonFocused
		}
		rendered := style.Render(c.label())
		w, h := lipgloss.Width(rendered), lipgloss.Height(rendered)
		boxes = append(boxes, hitBox{control: c, x0: x, x1: x + w, y0: 0, y1: h})
		parts = append(parts, rendered)
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), boxes
}

// renderStep returns the step row and the field's box relative to it.
func (m Model) renderStep(styles Styles, step int) (string, hitBox) {
	label := styles.MutedText.Render("Step  ")

	fieldStyle := styles.Input
	if m.focus == controlStep {
		fieldStyle = styles.InputFocused
	}
	field := fieldStyle.Render(m.step.View())

	x0 := lipgloss.Width(label)
	box := hitBox{control: controlStep, x0: x0, x1: x0 + lipgloss.Width(field), y0: 0, y1: 1}

	out := label + field
	if strings.TrimSpace(m.step.Value()) != strconv.Itoa(step) {
		out += styles.FaintText.Render(fmt.Sprintf("  using %d", step))
	}
	return out, box
}

func (m Model) renderHistory(styles Styles, history []int) string {
	text := formatHistory(history)
	style := styles.Text
	if len(history) == 0 {
		style = styles.FaintText
	}
	if width := m.width - 2*padX; width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// formatHistory joins history values for display.
func formatHistory(history []int) string {
	if len(history) == 0 {
		return historyPlaceholder
	}
	parts := make([]string, len(history))
	for i, v := range history {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

