package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	data := []byte(`
court:
  half:
    x: 4
ammo:
  max: 3
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Default()
	want.Court.Half.X = 4
	want.Ammo.Max = 3
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"Unknown key", "shell:\n  colour: red\n", "colour"},
		{"Negative speed", "shell:\n  speed: -1\n", "shell.speed"},
		{"Zero interval", "pace:\n  min_interval: 0\n", "pace.min_interval"},
		{"No ammo cap", "ammo:\n  max: 0\n", "ammo.max"},
		{"Tank wider than court", "tank:\n  half:\n    x: 9\n", "wider than court"},
		{"Malformed", "court: [1, 2", "decode tuning"},
		{"Descent skips the field", "enemy:\n  descent_step: 16\n", "enemy.descent_step"},
		{"Descent just past the limit", "enemy:\n  descent_step: 12.6\n", "enemy.descent_step"},
		{"No room for a row", "enemy:\n  row_spacing: 20\n", "enemy.row_spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFieldRows(t *testing.T) {
	tests := []struct {
		name          string
		rowSpacing    float64
		first, spawnY float64
	}{
		{"Default", 3.5, -2.5, 8},
		{"Dense", 2, -4, 8},
		{"Exactly at the top", 13, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := Default()
			tu.Enemy.RowSpacing = tt.rowSpacing
			first, spawnY := tu.FieldRows()
			if first != tt.first || spawnY != tt.spawnY {
				t.Fatalf("FieldRows() = %v, %v, want %v, %v", first, spawnY, tt.first, tt.spawnY)
			}
		})
	}
}

func TestParseAcceptsLongestSafeDescent(t *testing.T) {
	// Newest row at 4.5 lands exactly on the -8 threshold, which still counts
	// as on the field.
	if _, err := Parse([]byte("enemy:\n  descent_step: 12.5\n")); err != nil {
		t.Fatal(err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	tu := Default()
	tu.Tank.Step = 0
	tu.Enemy.RowSpacing = -2
	err := tu.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"tank.step", "enemy.row_spacing"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("scores:\n  kill: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Scores.Kill != 7 {
		t.Fatalf("kill score = %d, want 7", got.Scores.Kill)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("TANKFALL_TEST_SEED", "42")
	if n, ok := GetEnvInt64("TANKFALL_TEST_SEED"); !ok || n != 42 {
		t.Fatalf("GetEnvInt64 = %d, %v, want 42, true", n, ok)
	}
	t.Setenv("TANKFALL_TEST_SEED", "forty-two")
	if _, ok := GetEnvInt64("TANKFALL_TEST_SEED"); ok {
		t.Fatal("expected parse failure")
	}
	if got := GetEnv("TANKFALL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}
