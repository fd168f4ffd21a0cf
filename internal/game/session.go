// Package game implements the lane shooter simulation: a tank fires scarce
// shells at rows of enemies that step down the court.
//
// A Session is single-threaded. The host feeds it intents, calls Update with
// the frame delta and reads a Snapshot to draw.
package game

import (
	"time"

	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/object"
	"github.com/tomz197/tankfall/internal/physics"
)

// Session holds all state of one game, from the first row to game over.
type Session struct {
	tuning config.Tuning
	court  physics.Vec2

	tank        *object.Tank
	enemies     []object.Enemy      // Oldest (lowest) first
	projectiles []object.Projectile // Unordered
	spawner     *object.RowSpawner
	spawnY      float64 // Height new rows appear at

	// Ammunition economy
	ammo            int // May be computed below zero; firing needs ammo > 0
	ammoIssued      int
	enemiesSurvived int // Escapes counted while ammo was below the cap
	rowsSurvived    int
	score           int
	tripleStreak    int // Consecutive full rows allowed by the spawn budget
	openTriples     int // Full rows spawned minus kills

	// Enemy cadence, in seconds
	sinceAdvance float64
	interval     float64

	// Latched intents
	goLeft      bool
	goRight     bool
	wantFire    bool
	leftLocked  bool
	rightLocked bool
	fireLocked  bool

	over   bool
	events []Event
}

// NewSession builds a fresh game: the tank in the center lane and rows of
// enemies stacked from just above the tank to the top of the court.
func NewSession(t config.Tuning, rng object.Rand) *Session {
	s := &Session{
		tuning:   t,
		court:    t.Court.Half,
		spawner:  object.NewRowSpawner(rng, t.Enemy.LaneSpacing),
		ammo:     t.Ammo.Initial,
		interval: t.Pace.InitialInterval,
	}
	s.tank = object.NewTank(t.Tank, s.court)

	first, spawnY := t.FieldRows()
	for y := first; y < spawnY; y += t.Enemy.RowSpacing {
		s.spawnRow(y, 2)
	}
	s.spawnY = spawnY
	s.events = s.events[:0]

	return s
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Ammo returns the shells available to fire, never below zero.
func (s *Session) Ammo() int {
	return max(s.ammo, 0)
}

// AmmoIssued returns how many shells have been fired.
func (s *Session) AmmoIssued() int {
	return s.ammoIssued
}

// RowsSurvived returns how many times enemies slipped past the tank.
func (s *Session) RowsSurvived() int {
	return s.rowsSurvived
}

// AdvanceInterval returns the current time between enemy steps.
func (s *Session) AdvanceInterval() time.Duration {
	return time.Duration(s.interval * float64(time.Second))
}

// Over reports whether an enemy has reached the tank.
func (s *Session) Over() bool {
	return s.over
}

// spawnRow adds a row at height y and tracks full rows.
func (s *Session) spawnRow(y float64, maxCount int) {
	var n int
	s.enemies, n = s.spawner.SpawnRow(s.enemies, y, maxCount)
	if n == object.MaxRowSize {
		s.openTriples++
	}
	s.emit(Event{Type: EventRowSpawned, Pos: physics.Vec2{Y: y}, Count: n})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
