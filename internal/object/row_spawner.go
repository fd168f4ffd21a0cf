package object

import "github.com/tomz197/tankfall/internal/physics"

// MaxRowSize is the widest row the spawner produces: one enemy per lane.
const MaxRowSize = 3

// RowSpawner appends randomized rows of enemies to the top of the field.
type RowSpawner struct {
	rng     Rand
	spacing float64 // Distance between lanes
}

// NewRowSpawner creates a spawner drawing from rng with the given lane spacing.
func NewRowSpawner(rng Rand, laneSpacing float64) *RowSpawner {
	return &RowSpawner{
		rng:     rng,
		spacing: laneSpacing,
	}
}

// SpawnRow appends between 1 and maxCount enemies at height y and returns
// the grown slice along with how many were added.
//
// A full row fills all three lanes. Two enemies leave one random lane open,
// and a single enemy takes one random lane.
func (s *RowSpawner) SpawnRow(dst []Enemy, y float64, maxCount int) ([]Enemy, int) {
	maxCount = min(max(maxCount, 1), MaxRowSize)

	count := 1 + s.rng.IntN(maxCount)
	slot := s.rng.IntN(3) - 1

	switch count {
	case 3:
		for lane := -1; lane <= 1; lane++ {
			dst = append(dst, s.enemyAt(lane, y))
		}
	case 2:
		for lane := -1; lane <= 1; lane++ {
			if lane == slot {
				continue
			}
			dst = append(dst, s.enemyAt(lane, y))
		}
	default:
		dst = append(dst, s.enemyAt(slot, y))
	}

	return dst, count
}

func (s *RowSpawner) enemyAt(lane int, y float64) Enemy {
	return Enemy{Pos: physics.Vec2{X: float64(lane) * s.spacing, Y: y}}
}
