package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/tankfall/internal/physics"
	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay constant of a session.
// All distances are world units, all durations seconds.
type Tuning struct {
	Court  CourtTuning `yaml:"court"`
	Tank   TankTuning  `yaml:"tank"`
	Enemy  EnemyTuning `yaml:"enemy"`
	Shell  ShellTuning `yaml:"shell"`
	Ammo   AmmoTuning  `yaml:"ammo"`
	Pace   PaceTuning  `yaml:"pace"`
	Scores ScoreTuning `yaml:"scores"`
}

// CourtTuning defines the playfield.
type CourtTuning struct {
	Half physics.Vec2 `yaml:"half"` // Half-extent of the court, centered on the origin
}

// TankTuning defines the player's tank.
type TankTuning struct {
	Half physics.Vec2 `yaml:"half"`
	Step float64      `yaml:"step"` // Lateral move per press
}

// EnemyTuning defines enemy rows.
type EnemyTuning struct {
	Half        physics.Vec2 `yaml:"half"`
	LaneSpacing float64      `yaml:"lane_spacing"` // Distance between neighbouring lanes
	RowSpacing  float64      `yaml:"row_spacing"`  // Vertical gap between spawned rows
	DescentStep float64      `yaml:"descent_step"` // Drop per advance
	HitboxScale float64      `yaml:"hitbox_scale"` // Enemy half-extent multiplier against the tank
}

// ShellTuning defines projectiles.
type ShellTuning struct {
	Half  physics.Vec2 `yaml:"half"`
	Speed float64      `yaml:"speed"` // Upward velocity
}

// AmmoTuning defines the ammunition economy.
type AmmoTuning struct {
	Initial         int `yaml:"initial"`
	Max             int `yaml:"max"`
	EscapesPerShell int `yaml:"escapes_per_shell"`
}

// PaceTuning defines the enemy advance cadence.
type PaceTuning struct {
	InitialInterval float64 `yaml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval"`
}

// ScoreTuning defines points awarded.
type ScoreTuning struct {
	Kill int `yaml:"kill"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Court: CourtTuning{Half: physics.Vec2{X: 3.0, Y: 7.0}},
		Tank: TankTuning{
			Half: physics.Vec2{X: 1.0, Y: 1.0},
			Step: 2.0,
		},
		Enemy: EnemyTuning{
			Half:        physics.Vec2{X: 0.6, Y: 0.6},
			LaneSpacing: 2.0,
			RowSpacing:  3.5,
			DescentStep: 0.5,
			HitboxScale: 0.8,
		},
		Shell: ShellTuning{
			Half:  physics.Vec2{X: 0.2, Y: 0.4},
			Speed: 5.0,
		},
		Ammo: AmmoTuning{
			Initial:         1,
			Max:             5,
			EscapesPerShell: 5,
		},
		Pace: PaceTuning{
			InitialInterval: 1.0,
			MinInterval:     0.12,
		},
		Scores: ScoreTuning{Kill: 2},
	}
}

// Load reads a YAML tuning file. Keys missing from the file keep their
// default values.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML tuning on top of Default and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports every field that would break the simulation.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("court.half.x", t.Court.Half.X)
	positive("court.half.y", t.Court.Half.Y)
	positive("tank.half.x", t.Tank.Half.X)
	positive("tank.half.y", t.Tank.Half.Y)
	positive("tank.step", t.Tank.Step)
	positive("enemy.half.x", t.Enemy.Half.X)
	positive("enemy.half.y", t.Enemy.Half.Y)
	positive("enemy.lane_spacing", t.Enemy.LaneSpacing)
	positive("enemy.row_spacing", t.Enemy.RowSpacing)
	positive("enemy.descent_step", t.Enemy.DescentStep)
	positive("enemy.hitbox_scale", t.Enemy.HitboxScale)
	positive("shell.half.x", t.Shell.Half.X)
	positive("shell.half.y", t.Shell.Half.Y)
	positive("shell.speed", t.Shell.Speed)
	positive("pace.initial_interval", t.Pace.InitialInterval)
	positive("pace.min_interval", t.Pace.MinInterval)

	if len(errs) == 0 {
		errs = append(errs, t.validateField()...)
	}

	if t.Tank.Half.X > t.Court.Half.X {
		errs = append(errs, fmt.Errorf("tank.half.x %v wider than court.half.x %v", t.Tank.Half.X, t.Court.Half.X))
	}
	if t.Ammo.Initial < 0 {
		errs = append(errs, fmt.Errorf("ammo.initial must not be negative, got %d", t.Ammo.Initial))
	}
	if t.Ammo.Max < 1 {
		errs = append(errs, fmt.Errorf("ammo.max must be at least 1, got %d", t.Ammo.Max))
	}
	if t.Ammo.EscapesPerShell < 1 {
		errs = append(errs, fmt.Errorf("ammo.escapes_per_shell must be at least 1, got %d", t.Ammo.EscapesPerShell))
	}
	if t.Scores.Kill < 0 {
		errs = append(errs, fmt.Errorf("scores.kill must not be negative, got %d", t.Scores.Kill))
	}

	return errors.Join(errs...)
}

// TankY returns the tank's fixed height: resting on the bottom of the court.
func (t Tuning) TankY() float64 {
	return -t.Court.Half.Y + t.Tank.Half.Y
}

// FieldRows returns the height of the lowest starting row and the spawn
// line, the first row height at or above the top of the court.
func (t Tuning) FieldRows() (first, spawnY float64) {
	first = t.TankY() + t.Enemy.RowSpacing
	spawnY = first
	for spawnY < t.Court.Half.Y {
		spawnY += t.Enemy.RowSpacing
	}
	return first, spawnY
}

// validateField checks that the enemy field can never run empty on an
// advance: there is a starting row below the spawn line, and one descent
// cannot carry the newest row past the tank. Sizes must already be positive.
func (t Tuning) validateField() []error {
	first, spawnY := t.FieldRows()
	if first >= t.Court.Half.Y {
		return []error{fmt.Errorf("enemy.row_spacing %v leaves no row between the tank and the top of the court", t.Enemy.RowSpacing)}
	}

	// Right after a refill the newest row is at least this high.
	newest := spawnY - t.Enemy.RowSpacing
	threshold := t.TankY() - 2*t.Tank.Half.Y
	if limit := newest - threshold; t.Enemy.DescentStep > limit {
		return []error{fmt.Errorf("enemy.descent_step %v carries a whole row past the tank in one step (at most %v)", t.Enemy.DescentStep, limit)}
	}
	return nil
}

// TuningFromEnv loads the file named by TANKFALL_TUNING, or returns the
// defaults when the variable is unset.
func TuningFromEnv() (Tuning, error) {
	path := GetEnv(EnvTuning, "")
	if path == "" {
		return Default(), nil
	}
	t, err := Load(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s=%s: %w", EnvTuning, path, err)
	}
	return t, nil
}
