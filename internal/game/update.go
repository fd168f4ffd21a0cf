package game

import (
	"time"

	"github.com/tomz197/tankfall/internal/object"
)

// Update advances the session by delta. It is safe to call with any
// non-negative delta, including zero; negative deltas count as zero.
// A finished session is frozen.
func (s *Session) Update(delta time.Duration) {
	if s.over {
		return
	}
	delta = max(delta, 0)

	s.moveTank()
	s.fire()
	s.advanceEnemies(delta.Seconds())
	s.moveProjectiles(delta)
	s.shootEnemies()
	s.checkTank()
}

// moveTank applies at most one latched lateral step.
func (s *Session) moveTank() {
	switch {
	case s.goRight:
		s.tank.Move(1, s.court)
		s.goRight = false
	case s.goLeft:
		s.tank.Move(-1, s.court)
		s.goLeft = false
	}
}

// fire launches one shell if fire was latched and ammunition remains.
func (s *Session) fire() {
	if !s.wantFire {
		return
	}
	s.wantFire = false
	if s.ammo <= 0 {
		return
	}

	s.ammo--
	s.ammoIssued++
	muzzle := s.tank.Muzzle(s.tuning.Shell.Half)
	s.projectiles = append(s.projectiles, object.NewProjectile(muzzle))
	s.emit(Event{Type: EventFire, Pos: muzzle})
}

// advanceEnemies steps the enemies down once per elapsed interval.
func (s *Session) advanceEnemies(dt float64) {
	s.sinceAdvance += dt
	for s.sinceAdvance > s.interval {
		s.sinceAdvance -= s.interval
		s.stepEnemies()
	}
}

// moveProjectiles flies shells upward and drops those past the court top.
func (s *Session) moveProjectiles(delta time.Duration) {
	for i := 0; i < len(s.projectiles); {
		s.projectiles[i].Advance(s.tuning.Shell.Speed, delta)
		if s.projectiles[i].Escaped(s.court.Y) {
			s.removeProjectile(i)
			continue
		}
		i++
	}
}

// removeProjectile swaps the last shell into slot i.
func (s *Session) removeProjectile(i int) {
	last := len(s.projectiles) - 1
	s.projectiles[i] = s.projectiles[last]
	s.projectiles = s.projectiles[:last]
}
