package object

import (
	"time"

	"github.com/tomz197/tankfall/internal/physics"
)

// Projectile is a shell fired by the tank. It only travels upward.
type Projectile struct {
	Pos physics.Vec2
}

// NewProjectile creates a shell at the given muzzle position.
func NewProjectile(muzzle physics.Vec2) Projectile {
	return Projectile{Pos: muzzle}
}

// Advance moves the projectile up by speed over delta.
func (p *Projectile) Advance(speed float64, delta time.Duration) {
	p.Pos.Y += speed * delta.Seconds()
}

// Escaped returns true once the projectile has left the top of the court.
func (p Projectile) Escaped(courtTop float64) bool {
	return p.Pos.Y > courtTop
}
