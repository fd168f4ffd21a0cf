package object

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tomz197/tankfall/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. Particles are presentation only
// and never take part in the simulation.
type Particle struct {
	Pos         physics.Vec2
	Vel         physics.Vec2
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
}

// newParticle takes a particle from the pool.
func newParticle(pos, vel physics.Vec2, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Faded reports whether the particle is in the last quarter of its life.
func (p *Particle) Faded() bool {
	return p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25
}

// update moves the particle. Returns true when it has expired.
func (p *Particle) update(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.Vel = p.Vel.Scale(dragFactor)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	return false
}

// Particles owns the live particle effects of one screen.
type Particles struct {
	live []*Particle
}

// Explode creates count particles in a circular burst around pos.
func (ps *Particles) Explode(pos physics.Vec2, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rand.Float64()*0.5)

		vel := physics.Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd}
		ps.live = append(ps.live, newParticle(pos, vel, life))
	}
}

// Update advances all particles and releases the expired ones.
func (ps *Particles) Update(delta time.Duration) {
	dt := delta.Seconds()
	kept := ps.live[:0] // reuse backing array
	for _, p := range ps.live {
		if p.update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(ps.live[len(kept):])
	ps.live = kept
}

// Each calls fn for every visible particle.
func (ps *Particles) Each(fn func(p *Particle)) {
	for _, p := range ps.live {
		if !p.Faded() {
			fn(p)
		}
	}
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.live)
}

// Clear releases every particle.
func (ps *Particles) Clear() {
	for _, p := range ps.live {
		p.Release()
	}
	clear(ps.live)
	ps.live = ps.live[:0]
}
