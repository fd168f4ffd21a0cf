// Package draw paints half-block pixels and queues terminal output.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink selects a palette entry for a canvas pixel. InkNone leaves the pixel empty.
type Ink uint8

const (
	InkNone Ink = 0

	// inkDirty never comes from drawing. It marks cells whose terminal
	// content is unknown (overwritten by text) so the next Render rewrites them.
	inkDirty Ink = 255
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
