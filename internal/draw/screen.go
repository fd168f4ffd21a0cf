package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Area is the part of the terminal a game draws in. Col and Row are the
// 0-based offsets of its top-left cell.
type Area struct {
	Cols, Rows int
	Col, Row   int
}

// FitArea limits a width x height terminal to maxCols x maxRows and centers
// the result.
func FitArea(width, height, maxCols, maxRows int) Area {
	cols := min(max(width, 0), maxCols)
	rows := min(max(height, 0), maxRows)
	return Area{
		Cols: cols,
		Rows: rows,
		Col:  (max(width, 0) - cols) / 2,
		Row:  (max(height, 0) - rows) / 2,
	}
}

// Screen collects one frame of output for a player's terminal and sends it
// on Flush in chunks of about one MTU. Positions given to its methods are
// 1-based inside the Area.
type Screen struct {
	out     *bufio.Writer
	size    TermSizeFunc
	maxCols int
	maxRows int
	area    Area
	framed  bool // Border drawn since the last clear

	frame strings.Builder
	num   [20]byte
}

// NewScreen creates a screen writing to w, sized by size and never larger
// than maxCols x maxRows. Call Fit before the first frame.
func NewScreen(w io.Writer, size TermSizeFunc, maxCols, maxRows int) *Screen {
	return &Screen{
		out:     bufio.NewWriterSize(w, 8192),
		size:    size,
		maxCols: maxCols,
		maxRows: maxRows,
	}
}

// Fit reads the terminal size and recenters the area. When the area changes
// it queues a clear and reports true. On error the area is kept.
func (s *Screen) Fit() (bool, error) {
	w, h, err := s.size()
	if err != nil {
		return false, err
	}
	a := FitArea(w, h, s.maxCols, s.maxRows)
	if a == s.area {
		return false, nil
	}
	s.area = a
	s.Clear()
	return true, nil
}

// Area returns the current render area.
func (s *Screen) Area() Area {
	return s.area
}

// Clear queues a clear of the whole terminal.
func (s *Screen) Clear() {
	s.frame.WriteString(seqClear)
	s.framed = false
}

// Open hides the cursor and clears the terminal.
func (s *Screen) Open() error {
	s.frame.WriteString(seqHideCursor)
	s.Clear()
	return s.Flush()
}

// Close clears the terminal and brings the cursor back.
func (s *Screen) Close() error {
	s.Clear()
	s.frame.WriteString(seqShowCursor)
	return s.Flush()
}

// MoveCursor queues a cursor move to (col, row) of the area.
func (s *Screen) MoveCursor(col, row int) {
	s.frame.WriteString("\033[")
	s.frame.Write(strconv.AppendInt(s.num[:0], int64(row+s.area.Row), 10))
	s.frame.WriteByte(';')
	s.frame.Write(strconv.AppendInt(s.num[:0], int64(col+s.area.Col), 10))
	s.frame.WriteByte('H')
}

// WriteAt queues text at (col, row) of the area.
func (s *Screen) WriteAt(col, row int, text string) {
	s.MoveCursor(col, row)
	s.frame.WriteString(text)
}

// Write queues raw output that carries its own cursor positioning, such as
// Canvas.Render.
func (s *Screen) Write(p []byte) (int, error) {
	return s.frame.Write(p)
}

var _ io.Writer = (*Screen)(nil)

// Border frames the area with box lines on the sides that have room for
// them. It draws once after each clear.
func (s *Screen) Border() {
	if s.framed {
		return
	}
	s.framed = true

	a := s.area
	sides := a.Col >= 1
	ends := a.Row >= 1
	if !sides && !ends {
		return
	}

	line := strings.Repeat("─", a.Cols)
	switch {
	case sides && ends:
		s.WriteAt(0, 0, "┌"+line+"┐")
		s.WriteAt(0, a.Rows+1, "└"+line+"┘")
	case ends:
		s.WriteAt(1, 0, line)
		s.WriteAt(1, a.Rows+1, line)
	}
	if sides {
		for row := 1; row <= a.Rows; row++ {
			s.WriteAt(0, row, "│")
			s.WriteAt(a.Cols+1, row, "│")
		}
	}
}

// Pending returns the number of queued bytes.
func (s *Screen) Pending() int {
	return s.frame.Len()
}

// Flush sends the queued frame and empties the queue.
func (s *Screen) Flush() error {
	data := s.frame.String()
	s.frame.Reset()
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := s.out.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return s.out.Flush()
}
