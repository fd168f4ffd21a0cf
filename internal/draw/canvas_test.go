package draw

import (
	"bytes"
	"strings"
	"testing"
)

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestDrawPolygonFills(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon(square(2, 2, 5, 5), 1, true)

	tests := []struct {
		x, y int
		want Ink
	}{
		{3, 3, 1},
		{2, 2, 1},
		{5, 5, 1},
		{0, 0, InkNone},
		{6, 3, InkNone},
		{3, 7, InkNone},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawPolygonOutlineOnly(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon(square(1, 1, 8, 8), 2, false)

	if c.At(1, 4) != 2 {
		t.Error("outline pixel not set")
	}
	if c.At(4, 4) != InkNone {
		t.Error("interior filled without fill flag")
	}
}

func TestDrawPolygonIgnoresDegenerate(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, 1, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.At(x, y) != InkNone {
				t.Fatalf("pixel (%d, %d) set by a two point polygon", x, y)
			}
		}
	}
}

func TestScaledCanvas(t *testing.T) {
	// 20 logical units onto 10 columns, 20 sub-pixels onto 10 rows of pixels.
	c := NewScaledCanvas(10, 5, 20, 20)
	c.SetFloat(10, 10, 3)
	if c.At(5, 5) != 3 {
		t.Fatal("logical (10, 10) should land on pixel (5, 5)")
	}

	c.SetLogicalSize(10, 10)
	c.SetFloat(2, 2, 4)
	if c.At(2, 2) != 4 {
		t.Fatal("logical size change not applied")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want string
	}{
		{"Top sub-pixel", 0, "\033[1;1H▀"},
		{"Bottom sub-pixel", 1, "\033[1;1H▄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(2, 1)
			c.SetFloat(0, tt.y, 1)
			var buf bytes.Buffer
			c.Render(&buf)
			if buf.String() != tt.want {
				t.Fatalf("Render = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon(square(2, 2, 3, 3), 1, true)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[2;3H█") {
		t.Fatalf("first render missing block: %q", buf.String())
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", buf.String())
	}

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[2;3H ") {
		t.Fatalf("cleared cell not erased: %q", buf.String())
	}

	// A blank screen after a forced redraw needs no output for a blank canvas.
	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("blank forced redraw wrote %q", buf.String())
	}
}

func TestMarkTextDirty(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawPolygon(square(2, 2, 3, 3), 1, true)

	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(3, 2, 1)
	buf.Reset()
	c.Render(&buf)
	if buf.String() != "\033[2;3H█" {
		t.Fatalf("dirty cell render = %q", buf.String())
	}

	// Out of range marks are ignored.
	c.MarkTextDirty(-5, 0, 100)
	c.MarkTextDirty(8, 5, 100)
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(4, 2)
	c.SetFloat(0, 0, 1)
	var buf bytes.Buffer
	c.Render(&buf)
	if buf.String() != "\033[3;5H▀" {
		t.Fatalf("Render = %q", buf.String())
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewCanvas(10, 5)
	col, row := c.LogicalToTerminal(4, 5)
	if col != 5 || row != 3 {
		t.Fatalf("LogicalToTerminal = (%d, %d), want (5, 3)", col, row)
	}
}
