// Package object defines the entities of the lane shooter and the row spawner.
package object

import "github.com/tomz197/tankfall/internal/physics"

// Rand is the random source used for spawning.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// Enemy is a single descending target. All enemies share one half-extent.
type Enemy struct {
	Pos physics.Vec2
}

