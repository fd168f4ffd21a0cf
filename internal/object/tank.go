package object

import (
	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/physics"
)

// Tank is the player-controlled vehicle. It only moves along X.
type Tank struct {
	Pos  physics.Vec2 // Center; Y never changes after construction
	Half physics.Vec2 // Collision half-extent
	Step float64      // Lateral distance per move
}

// NewTank places a tank in the center lane, one half-height above the
// bottom of the court.
func NewTank(t config.TankTuning, court physics.Vec2) *Tank {
	return &Tank{
		Pos:  physics.Vec2{X: 0, Y: -court.Y + t.Half.Y},
		Half: t.Half,
		Step: t.Step,
	}
}

// Move shifts the tank dir steps (negative is left) and keeps it inside
// the court walls.
func (t *Tank) Move(dir int, court physics.Vec2) {
	t.Pos.X += float64(dir) * t.Step
	t.Pos.X = physics.Clamp(t.Pos.X, -court.X+t.Half.X, court.X-t.Half.X)
}

// Muzzle returns where a fired shell with the given half-extent appears.
func (t *Tank) Muzzle(shellHalf physics.Vec2) physics.Vec2 {
	return t.Pos.Add(physics.Vec2{Y: 0.7*t.Half.Y + 2.0*shellHalf.Y})
}

// Threshold returns the Y below which an enemy has slipped past the tank.
func (t *Tank) Threshold() float64 {
	return t.Pos.Y - 2.0*t.Half.Y
}
