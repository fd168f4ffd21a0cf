package game

import (
	"slices"

	"github.com/tomz197/tankfall/internal/physics"
)

// EventType identifies what happened during an update.
type EventType int

const (
	EventFire       EventType = iota // A shell left the muzzle
	EventKill                        // A shell destroyed an enemy
	EventEscape                      // Enemies slipped past the tank
	EventRowSpawned                  // A new row appeared
	EventGameOver                    // An enemy reached the tank
)

// Event is a notable change, for effects and logging.
type Event struct {
	Type  EventType
	Pos   physics.Vec2 // Where it happened, if anywhere
	Count int          // Enemies escaped or spawned; final score on game over
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Court physics.Vec2 // Court half-extent

	Tank     physics.Vec2
	TankHalf physics.Vec2

	Enemies   []physics.Vec2 // Oldest first
	EnemyHalf physics.Vec2

	Projectiles    []physics.Vec2
	ProjectileHalf physics.Vec2

	Ammo    int
	MaxAmmo int
	Score   int
	Rows    int
	Over    bool

	Events []Event // Filled by Frame
}

// Snapshot copies the current state. It does not modify the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Court:          s.court,
		Tank:           s.tank.Pos,
		TankHalf:       s.tank.Half,
		Enemies:        make([]physics.Vec2, len(s.enemies)),
		EnemyHalf:      s.tuning.Enemy.Half,
		Projectiles:    make([]physics.Vec2, len(s.projectiles)),
		ProjectileHalf: s.tuning.Shell.Half,
		Ammo:           s.Ammo(),
		MaxAmmo:        s.tuning.Ammo.Max,
		Score:          s.score,
		Rows:           s.rowsSurvived,
		Over:           s.over,
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = e.Pos
	}
	for i, p := range s.projectiles {
		snap.Projectiles[i] = p.Pos
	}
	return snap
}

// DrainEvents returns the events since the last drain and forgets them.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := slices.Clone(s.events)
	s.events = s.events[:0]
	return out
}
