package object

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/physics"
)

// scriptedRand replays fixed values, failing the test on out-of-range draws.
type scriptedRand struct {
	t    *testing.T
	vals []int
	next int
}

func (r *scriptedRand) IntN(n int) int {
	if r.next >= len(r.vals) {
		r.t.Fatalf("scriptedRand exhausted after %d draws", r.next)
	}
	v := r.vals[r.next]
	r.next++
	if v < 0 || v >= n {
		r.t.Fatalf("scripted value %d out of range [0,%d)", v, n)
	}
	return v
}

func lanesOf(enemies []Enemy) []float64 {
	xs := make([]float64, len(enemies))
	for i, e := range enemies {
		xs[i] = e.Pos.X
	}
	return xs
}

func TestSpawnRowLayouts(t *testing.T) {
	tests := []struct {
		name     string
		maxCount int
		draws    []int // count-1, slot+1
		want     []float64
	}{
		{"Full row", 3, []int{2, 0}, []float64{-2, 0, 2}},
		{"Pair leaves left open", 3, []int{1, 0}, []float64{0, 2}},
		{"Pair leaves center open", 2, []int{1, 1}, []float64{-2, 2}},
		{"Pair leaves right open", 2, []int{1, 2}, []float64{-2, 0}},
		{"Single left", 2, []int{0, 0}, []float64{-2}},
		{"Single center", 3, []int{0, 1}, []float64{0}},
		{"Single right", 1, []int{0, 2}, []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRowSpawner(&scriptedRand{t: t, vals: tt.draws}, 2.0)
			existing := []Enemy{{Pos: physics.Vec2{X: 0, Y: -1}}}

			got, n := s.SpawnRow(existing, 8, tt.maxCount)
			if n != len(tt.want) {
				t.Fatalf("count = %d, want %d", n, len(tt.want))
			}
			if len(got) != 1+len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), 1+len(tt.want))
			}
			if got[0].Pos.Y != -1 {
				t.Fatalf("existing enemy disturbed: %v", got[0])
			}

			added := got[1:]
			xs := lanesOf(added)
			for i := range tt.want {
				if xs[i] != tt.want[i] {
					t.Fatalf("lanes = %v, want %v", xs, tt.want)
				}
				if added[i].Pos.Y != 8 {
					t.Errorf("enemy %d at y=%v, want 8", i, added[i].Pos.Y)
				}
			}
		})
	}
}

func TestSpawnRowDistribution(t *testing.T) {
	s := NewRowSpawner(rand.New(rand.NewPCG(1, 2)), 2.0)
	const rows = 30000

	counts := map[int]int{}
	singles := map[float64]int{}
	for i := 0; i < rows; i++ {
		row, n := s.SpawnRow(nil, 0, 3)
		counts[n]++
		if n == 1 {
			singles[row[0].Pos.X]++
		}
	}

	for n := 1; n <= 3; n++ {
		share := float64(counts[n]) / rows
		if share < 0.30 || share > 0.37 {
			t.Errorf("row size %d share %.3f, want ~1/3", n, share)
		}
	}
	for _, x := range []float64{-2, 0, 2} {
		share := float64(singles[x]) / float64(counts[1])
		if share < 0.30 || share > 0.37 {
			t.Errorf("single lane %v share %.3f, want ~1/3", x, share)
		}
	}
}

func TestSpawnRowNeverExceedsMax(t *testing.T) {
	s := NewRowSpawner(rand.New(rand.NewPCG(7, 7)), 2.0)
	for i := 0; i < 1000; i++ {
		if _, n := s.SpawnRow(nil, 0, 2); n < 1 || n > 2 {
			t.Fatalf("row size %d with maxCount 2", n)
		}
	}
}

func TestTankMoveClamps(t *testing.T) {
	court := physics.Vec2{X: 3, Y: 7}
	tank := NewTank(config.Default().Tank, court)

	if tank.Pos != (physics.Vec2{X: 0, Y: -6}) {
		t.Fatalf("tank starts at %v, want {0 -6}", tank.Pos)
	}

	tank.Move(1, court)
	if tank.Pos.X != 2 {
		t.Fatalf("x after right = %v, want 2", tank.Pos.X)
	}
	tank.Move(1, court)
	if tank.Pos.X != 2 {
		t.Fatalf("x after wall = %v, want 2", tank.Pos.X)
	}
	tank.Move(-1, court)
	tank.Move(-1, court)
	tank.Move(-1, court)
	if tank.Pos.X != -2 {
		t.Fatalf("x after left wall = %v, want -2", tank.Pos.X)
	}
	if tank.Pos.Y != -6 {
		t.Fatalf("y changed to %v", tank.Pos.Y)
	}
}

func TestTankMuzzleAndThreshold(t *testing.T) {
	court := physics.Vec2{X: 3, Y: 7}
	tank := NewTank(config.Default().Tank, court)

	muzzle := tank.Muzzle(physics.Vec2{X: 0.2, Y: 0.4})
	if muzzle.X != 0 || muzzle.Y < -4.51 || muzzle.Y > -4.49 {
		t.Fatalf("muzzle = %v, want {0 -4.5}", muzzle)
	}
	if got := tank.Threshold(); got != -8 {
		t.Fatalf("threshold = %v, want -8", got)
	}
}

func TestProjectileAdvance(t *testing.T) {
	p := NewProjectile(physics.Vec2{X: 2, Y: 6})
	p.Advance(5, 100*time.Millisecond)
	if p.Pos.Y < 6.49 || p.Pos.Y > 6.51 || p.Pos.X != 2 {
		t.Fatalf("pos = %v, want {2 6.5}", p.Pos)
	}
	if p.Escaped(7) {
		t.Fatal("projectile escaped too early")
	}
	p.Advance(5, 200*time.Millisecond)
	if !p.Escaped(7) {
		t.Fatalf("projectile at %v should have escaped", p.Pos)
	}
}

func TestParticlesExpire(t *testing.T) {
	var ps Particles
	ps.Explode(physics.Vec2{}, 12, 4, 0.5)
	if ps.Len() != 12 {
		t.Fatalf("live = %d, want 12", ps.Len())
	}

	visible := 0
	ps.Each(func(*Particle) { visible++ })
	if visible != 12 {
		t.Fatalf("visible = %d, want 12", visible)
	}

	ps.Update(600 * time.Millisecond)
	if ps.Len() != 0 {
		t.Fatalf("live after lifetime = %d, want 0", ps.Len())
	}

	ps.Explode(physics.Vec2{}, 3, 4, 10)
	ps.Clear()
	if ps.Len() != 0 {
		t.Fatalf("live after Clear = %d, want 0", ps.Len())
	}
}

type recordingWriter struct {
	col, row int
	out      string
}

func (w *recordingWriter) WriteAt(col, row int, s string) {
	w.col, w.row = col, row
	w.out += s
}

func TestTextDraw(t *testing.T) {
	w := &recordingWriter{}
	label := Text{X: 0, Y: 3, Value: "Score: 4", Style: lipgloss.NewStyle()}
	if col := label.Draw(w); col != 1 {
		t.Fatalf("start column = %d, want 1", col)
	}
	if w.col != 1 || w.row != 3 || !strings.Contains(w.out, "Score: 4") {
		t.Fatalf("wrote %q at (%d, %d)", w.out, w.col, w.row)
	}
	if label.Width() != 8 {
		t.Fatalf("width = %d, want 8", label.Width())
	}

	w = &recordingWriter{}
	(Text{X: 4}).Draw(w)
	if w.out != "" || (Text{}).Width() != 0 {
		t.Fatalf("empty text wrote %q", w.out)
	}

	c := Centered(20, 1, "ABCD", lipgloss.NewStyle())
	if c.X != 18 {
		t.Fatalf("centered x = %d, want 18", c.X)
	}
}
