// Package physics provides collision detection and vector utilities.
package physics

// Vec2 is a point or half-extent in world space.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// RectsOverlap checks if two axis-aligned rectangles, given by center and
// half-extent, intersect. Touching edges count as an overlap.
func RectsOverlap(a, aHalf, b, bHalf Vec2) bool {
	minX := max(a.X-aHalf.X, b.X-bHalf.X)
	maxX := min(a.X+aHalf.X, b.X+bHalf.X)
	if minX > maxX {
		return false
	}

	minY := max(a.Y-aHalf.Y, b.Y-bHalf.Y)
	maxY := min(a.Y+aHalf.Y, b.Y+bHalf.Y)
	return minY <= maxY
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
