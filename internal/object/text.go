package object

import (
	"github.com/charmbracelet/lipgloss"
)

// TextWriter places a string at a 1-based terminal position.
// draw.Screen satisfies it.
type TextWriter interface {
	WriteAt(col, row int, s string)
}

// Text is a styled label placed on the terminal.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
	Style lipgloss.Style
}

// Centered returns a Text whose rendered width is centered on col.
func Centered(col, row int, value string, style lipgloss.Style) Text {
	width := lipgloss.Width(style.Render(value))
	return Text{X: col - width/2, Y: row, Value: value, Style: style}
}

// Width returns the number of terminal cells the rendered text covers.
func (t Text) Width() int {
	if t.Value == "" {
		return 0
	}
	return lipgloss.Width(t.Style.Render(t.Value))
}

// Draw writes the styled text at its position and returns the column it
// actually started at, which is clamped to the first column.
func (t Text) Draw(w TextWriter) (col int) {
	col = max(t.X, 1)
	if t.Value == "" {
		return col
	}
	w.WriteAt(col, max(t.Y, 1), t.Style.Render(t.Value))
	return col
}
