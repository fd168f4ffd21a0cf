// Package render turns game snapshots into pictures: world-space shapes and
// a terminal renderer that paints them on a half-block canvas.
package render

import (
	"github.com/tomz197/tankfall/internal/game"
	"github.com/tomz197/tankfall/internal/physics"
)

// Color names a palette slot. The zero value is transparent.
type Color uint8

const (
	ColorNone Color = iota
	ColorWall
	ColorEnemy
	ColorShellTip
	ColorShellBody
	ColorTankBase
	ColorTankTurret
	ColorSpark
)

// Layout constants in world units.
const (
	wallHalf   = 0.05 // Half thickness of the side walls
	padding    = 0.14 // Space between walls and the edge of the view
	scoreHalf  = 0.1  // Reserved headroom above the court
	iconStride = 0.8  // Spacing between ammo icons
	iconsPer   = 5    // Icons per row before wrapping
)

var (
	iconHalf   = physics.Vec2{X: 0.3, Y: 0.8}
	iconOffset = physics.Vec2{X: 3.8, Y: 1.0} // First icon, from the court's right/bottom edge
)

// Shape is a filled convex polygon in world space, counter-clockwise.
type Shape struct {
	Points []physics.Vec2
	Color  Color
}

// Shapes lists everything to draw for snap, back to front.
func Shapes(snap game.Snapshot) []Shape {
	shapes := make([]Shape, 0, 2+len(snap.Enemies)+2*len(snap.Projectiles)+2*snap.Ammo+3)
	court := snap.Court

	wall := physics.Vec2{X: wallHalf, Y: court.Y + 2*wallHalf}
	shapes = append(shapes,
		rect(physics.Vec2{X: -court.X - wallHalf}, wall, ColorWall),
		rect(physics.Vec2{X: court.X + wallHalf}, wall, ColorWall),
	)

	for _, e := range snap.Enemies {
		shapes = append(shapes, rect(e, snap.EnemyHalf, ColorEnemy))
	}
	for _, p := range snap.Projectiles {
		shapes = append(shapes, shell(p, snap.ProjectileHalf)...)
	}
	for i := 0; i < snap.Ammo; i++ {
		shapes = append(shapes, shell(AmmoIcon(court, i), iconHalf)...)
	}

	return append(shapes, tank(snap.Tank, snap.TankHalf)...)
}

// AmmoIcon returns the center of the i-th ammo icon, right of the court.
func AmmoIcon(court physics.Vec2, i int) physics.Vec2 {
	return physics.Vec2{
		X: court.X + iconOffset.X - float64(i%iconsPer)*iconStride,
		Y: -court.Y + iconOffset.Y,
	}
}

// Bounds returns the world rectangle that must be visible: the court with
// its walls, the ammo icons and some headroom.
func Bounds(court physics.Vec2) (lo, hi physics.Vec2) {
	lo = physics.Vec2{
		X: -court.X - 2*wallHalf - padding,
		Y: -court.Y - 2*wallHalf - padding,
	}
	hi = physics.Vec2{
		X: court.X + iconOffset.X + iconHalf.X + padding,
		Y: court.Y + 2*wallHalf + 3*scoreHalf + padding,
	}
	return lo, hi
}

func rect(center, half physics.Vec2, c Color) Shape {
	return Shape{
		Points: []physics.Vec2{
			{X: center.X - half.X, Y: center.Y - half.Y},
			{X: center.X + half.X, Y: center.Y - half.Y},
			{X: center.X + half.X, Y: center.Y + half.Y},
			{X: center.X - half.X, Y: center.Y + half.Y},
		},
		Color: c,
	}
}

// shell is a pointed tip over a rectangular body.
func shell(origin, half physics.Vec2) []Shape {
	tip := Shape{
		Points: []physics.Vec2{
			{X: origin.X - half.X, Y: origin.Y + half.Y*0.5},
			{X: origin.X + half.X, Y: origin.Y + half.Y*0.5},
			{X: origin.X, Y: origin.Y + half.Y},
		},
		Color: ColorShellTip,
	}
	body := rect(
		physics.Vec2{X: origin.X, Y: origin.Y - half.Y*0.25},
		physics.Vec2{X: half.X, Y: half.Y * 0.75},
		ColorShellBody,
	)
	return []Shape{tip, body}
}

// tank is a hull, a turret and a gun barrel sized relative to half.
func tank(origin, half physics.Vec2) []Shape {
	return []Shape{
		rect(
			physics.Vec2{X: origin.X, Y: origin.Y - 0.2*half.Y},
			physics.Vec2{X: half.X * 0.6, Y: half.Y * 0.7},
			ColorTankBase,
		),
		rect(
			physics.Vec2{X: origin.X, Y: origin.Y - 0.3*half.Y},
			physics.Vec2{X: half.X * 0.3, Y: half.Y * 0.3},
			ColorTankTurret,
		),
		rect(
			physics.Vec2{X: origin.X, Y: origin.Y + 0.4*half.Y},
			physics.Vec2{X: half.X * 0.08, Y: half.Y * 0.5},
			ColorTankTurret,
		),
	}
}
