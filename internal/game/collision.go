package game

import (
	"slices"

	"github.com/tomz197/tankfall/internal/object"
	"github.com/tomz197/tankfall/internal/physics"
)

// shootEnemies resolves shell hits. Each shell destroys at most one enemy:
// the first in field order that shares its lane and overlaps it.
func (s *Session) shootEnemies() {
	shellHalf := s.tuning.Shell.Half
	enemyHalf := s.tuning.Enemy.Half

	for i := 0; i < len(s.projectiles); {
		p := s.projectiles[i]
		hit := slices.IndexFunc(s.enemies, func(e object.Enemy) bool {
			return e.Pos.X == p.Pos.X && physics.RectsOverlap(p.Pos, shellHalf, e.Pos, enemyHalf)
		})
		if hit < 0 {
			i++
			continue
		}

		victim := s.enemies[hit]
		s.enemies = slices.Delete(s.enemies, hit, hit+1)
		s.removeProjectile(i)
		s.openTriples--
		s.score += s.tuning.Scores.Kill
		s.emit(Event{Type: EventKill, Pos: victim.Pos})
	}

	// Shooting the whole field down must not leave the next advance
	// without a newest row to measure from.
	if len(s.enemies) == 0 {
		s.spawnRow(s.spawnY, s.rowBudget())
	}
}

// checkTank ends the session when an enemy in the tank's lane overlaps it.
// Enemies use a shrunk hitbox here.
func (s *Session) checkTank() {
	shrunk := s.tuning.Enemy.Half.Scale(s.tuning.Enemy.HitboxScale)
	for _, e := range s.enemies {
		if e.Pos.X == s.tank.Pos.X && physics.RectsOverlap(s.tank.Pos, s.tank.Half, e.Pos, shrunk) {
			s.over = true
			s.emit(Event{Type: EventGameOver, Pos: e.Pos, Count: s.score})
			return
		}
	}
}
