package render

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/tankfall/internal/draw"
	"github.com/tomz197/tankfall/internal/game"
	"github.com/tomz197/tankfall/internal/object"
	"github.com/tomz197/tankfall/internal/physics"
)

// Styles holds the lipgloss styles of one output. Styles must be built from
// the renderer of the writer they end up on so color detection matches the
// client's terminal.
type Styles struct {
	HUD     lipgloss.Style
	Accent  lipgloss.Style
	Banner  lipgloss.Style
	Muted   lipgloss.Style
	Palette []lipgloss.Style // Indexed by Color-1
}

// NewStyles builds the game's styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	fg := func(hex string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return Styles{
		HUD:    fg("#f2d2b6"),
		Accent: fg("#f2ad94").Bold(true),
		Banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#193b59")).Background(lipgloss.Color("#f2ad94")).Padding(0, 2),
		Muted:  fg("#bacac0"),
		Palette: []lipgloss.Style{
			ColorWall - 1:       fg("#f2d2b6"),
			ColorEnemy - 1:      fg("#f2d2b6"),
			ColorShellTip - 1:   fg("#c4cace"),
			ColorShellBody - 1:  fg("#b87333"),
			ColorTankBase - 1:   fg("#6d704f"),
			ColorTankTurret - 1: fg("#969696"),
			ColorSpark - 1:      fg("#f28972"),
		},
	}
}

// Terminal draws snapshots on a half-block canvas. It implements
// game.Renderer. Output is queued on the Screen; the caller flushes.
type Terminal struct {
	canvas    *draw.Canvas
	out       *draw.Screen
	styles    Styles
	particles object.Particles
	view      view
}

var _ game.Renderer = (*Terminal)(nil)

// NewTerminal creates a renderer painting on canvas and writing to out.
// The canvas is used 1:1, one logical unit per sub-pixel.
func NewTerminal(canvas *draw.Canvas, out *draw.Screen, styles Styles) *Terminal {
	canvas.SetPalette(styles.Palette...)
	return &Terminal{
		canvas: canvas,
		out:    out,
		styles: styles,
	}
}

// Canvas returns the canvas the renderer paints on.
func (t *Terminal) Canvas() *draw.Canvas {
	return t.canvas
}

// Styles returns the renderer's styles.
func (t *Terminal) Styles() Styles {
	return t.styles
}

// Step ages the particle effects by delta.
func (t *Terminal) Step(delta time.Duration) {
	t.particles.Update(delta)
}

// Reset drops all running effects.
func (t *Terminal) Reset() {
	t.particles.Clear()
}

// Particles returns how many effect particles are alive.
func (t *Terminal) Particles() int {
	return t.particles.Len()
}

// Render paints snap: court, enemies, shells, ammo, tank, effects and HUD.
func (t *Terminal) Render(snap game.Snapshot) error {
	t.absorb(snap.Events)

	width := float64(t.canvas.TerminalWidth())
	height := float64(2 * t.canvas.TerminalHeight())
	t.canvas.SetLogicalSize(width, height)
	t.view = fit(snap.Court, width, height)

	t.canvas.Clear()
	for _, s := range Shapes(snap) {
		pts := t.canvas.BorrowPoints(len(s.Points))
		for i, p := range s.Points {
			pts[i] = t.view.point(p)
		}
		t.canvas.DrawPolygon(pts, draw.Ink(s.Color), true)
	}
	t.particles.Each(func(p *object.Particle) {
		pt := t.view.point(p.Pos)
		t.canvas.SetFloat(pt.X, pt.Y, draw.Ink(ColorSpark))
	})

	t.canvas.Render(t.out)
	t.out.Border()
	t.drawHUD(snap)
	return nil
}

// Text writes a label over the canvas and marks the covered cells so the
// canvas repaints them once the label is gone.
func (t *Terminal) Text(txt object.Text) {
	col := txt.Draw(t.out)
	t.canvas.MarkTextDirty(col, max(txt.Y, 1), txt.Width())
}

// absorb starts effects for the events of the last update.
func (t *Terminal) absorb(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventKill:
			t.particles.Explode(e.Pos, 12, 4.0, 0.6)
		case game.EventGameOver:
			t.particles.Explode(e.Pos, 30, 6.0, 1.2)
		case game.EventFire:
			t.particles.Explode(e.Pos, 3, 2.0, 0.2)
		}
	}
}

// drawHUD draws score and progress. Fields are padded to a fixed width so
// shrinking values leave no residue.
func (t *Terminal) drawHUD(snap game.Snapshot) {
	cols := t.canvas.TerminalWidth()
	rows := t.canvas.TerminalHeight()

	t.Text(object.Text{X: 2, Y: 1, Value: fmt.Sprintf("Score: %-6d", snap.Score), Style: t.styles.HUD})
	rowsText := fmt.Sprintf("Rows: %-5d", snap.Rows)
	t.Text(object.Text{X: cols - len(rowsText), Y: 1, Value: rowsText, Style: t.styles.Muted})

	ammoText := fmt.Sprintf("Shells %d/%d", snap.Ammo, snap.MaxAmmo)
	t.Text(object.Text{X: cols - len(ammoText), Y: rows, Value: ammoText, Style: t.styles.Muted})

	if snap.Over {
		t.Text(object.Centered(cols/2, rows/2-1, "GAME OVER", t.styles.Banner))
		t.Text(object.Centered(cols/2, rows/2+1, fmt.Sprintf("Final score: %d", snap.Score), t.styles.Accent))
	}
}

// view maps world coordinates onto the canvas with a uniform scale,
// y pointing up in the world and down on the canvas.
type view struct {
	center        physics.Vec2
	scale         float64
	width, height float64
}

func fit(court physics.Vec2, width, height float64) view {
	lo, hi := Bounds(court)
	return view{
		center: lo.Add(hi).Scale(0.5),
		scale:  min(width/(hi.X-lo.X), height/(hi.Y-lo.Y)),
		width:  width,
		height: height,
	}
}

func (v view) point(p physics.Vec2) draw.Point {
	return draw.Point{
		X: v.width/2 + (p.X-v.center.X)*v.scale,
		Y: v.height/2 - (p.Y-v.center.Y)*v.scale,
	}
}
