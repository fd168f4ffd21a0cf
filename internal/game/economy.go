package game

import "slices"

// enemiesPerSpareShell is how many enemies on the field count as one extra
// shell when deciding whether a full row is fair.
const enemiesPerSpareShell = 5

// stepEnemies moves every enemy down one step, retires rows that slipped
// past the tank and tops up the field.
func (s *Session) stepEnemies() {
	threshold := s.tank.Threshold()
	escaped := 0
	for i := range s.enemies {
		s.enemies[i].Pos.Y -= s.tuning.Enemy.DescentStep
		if s.enemies[i].Pos.Y < threshold {
			escaped = i + 1
		}
	}

	if escaped > 0 {
		s.escape(escaped)
	}
	s.refill()
}

// escape removes the first k enemies, which reached the tank's row without
// being shot, and recomputes ammunition and cadence.
func (s *Session) escape(k int) {
	s.enemies = slices.Delete(s.enemies, 0, k)

	s.score += k
	if s.ammo < s.tuning.Ammo.Max {
		s.enemiesSurvived += k
	}
	s.rowsSurvived++

	a := s.tuning.Ammo
	s.ammo = min(s.enemiesSurvived/a.EscapesPerShell-s.ammoIssued+a.Initial, a.Max)

	p := s.tuning.Pace
	s.interval = max(p.InitialInterval/(float64(s.rowsSurvived)/2.0+1.0), p.MinInterval)

	s.emit(Event{Type: EventEscape, Count: k})
}

// refill spawns a new row once the newest row has dropped a full row
// spacing below the spawn line.
func (s *Session) refill() {
	if len(s.enemies) == 0 {
		panic("game: enemy field empty at advance")
	}

	newest := s.enemies[len(s.enemies)-1]
	if newest.Pos.Y >= s.spawnY-s.tuning.Enemy.RowSpacing {
		return
	}
	s.spawnRow(s.spawnY, s.rowBudget())
}

// rowBudget picks the widest row allowed next. Full rows are only offered
// while the player is expected to have shells to spare, and never more times
// in a row than there are shells available.
func (s *Session) rowBudget() int {
	expected := s.ammo + len(s.enemies)/enemiesPerSpareShell - s.openTriples - 1
	if expected <= 0 {
		return 2
	}
	if s.tripleStreak < s.ammo {
		s.tripleStreak++
		return 3
	}
	s.tripleStreak = 0
	return 2
}
