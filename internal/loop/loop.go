// Package loop runs one player's game: input, simulation and drawing at a
// fixed frame rate, with title and game over screens around each session.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/draw"
	"github.com/tomz197/tankfall/internal/game"
	"github.com/tomz197/tankfall/internal/input"
	"github.com/tomz197/tankfall/internal/render"
)

// Options configures a player's game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Tuning       config.Tuning      // Zero value means config.Default()
	Seed         uint64             // Fixed seed for reproducible sessions; 0 picks one per game
	Username     string             // Shown in logs and the lobby
	Logger       *log.Logger        // nil discards logs
	Renderer     *lipgloss.Renderer // Color detection for the output; nil uses the writer
	Lobby        *Lobby             // Set when serving many players; enables idle disconnects
}

// Game handles input, simulation and rendering for a single player.
type Game struct {
	opts         Options
	state        *PlayerState
	screen       *render.Terminal
	out          *draw.Screen
	inputStream  *input.Stream
	keys         keyIntents
	handle       *Handle
	id           string
	logger       *log.Logger
	termSizeFunc draw.TermSizeFunc
	now          func() time.Time
}

// Run plays until the player quits or the input closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewGame(r, w, opts).Run()
}

// NewGame prepares a game reading keys from r and drawing on w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(w)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:         opts,
		termSizeFunc: opts.TermSizeFunc,
		now:          time.Now,
	}
	if opts.Lobby != nil {
		g.handle = opts.Lobby.Register(opts.Username)
		g.id = g.handle.ID
	} else {
		g.id = uuid.NewString()
	}
	g.logger = logger.With("session", g.id, "user", opts.Username)
	g.state = NewPlayerState(g.now())

	// Canvas sized to the render area, centered in larger terminals
	g.out = draw.NewScreen(w, g.termSizeFunc, config.MaxTermWidth, config.MaxTermHeight)
	if _, err := g.out.Fit(); err != nil {
		g.logger.Warn("terminal size unknown", "err", err)
	}
	area := g.out.Area()
	canvas := draw.NewCanvas(area.Cols, area.Rows)
	canvas.SetOffset(area.Col, area.Row)
	g.screen = render.NewTerminal(canvas, g.out, render.NewStyles(opts.Renderer))

	g.inputStream = input.StartStream(r)
	return g
}

// Run starts the frame loop. Blocks until the player leaves.
func (g *Game) Run() error {
	defer g.leave()

	if err := g.out.Open(); err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer g.out.Close()

	g.logger.Info("player connected")
	lastTime := g.now()

	for g.state.Running {
		frameStart := g.now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := g.frame(input.ReadInput(g.inputStream), delta); err != nil {
			return err
		}

		// Frame timing
		elapsed := g.now().Sub(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// frame runs one Input, Update, Draw cycle.
func (g *Game) frame(inp input.Input, delta time.Duration) error {
	g.processInput(inp)
	g.processLobbyEvents()
	g.updateScreen()

	switch g.state.GameState {
	case GameStateStart:
		g.updateStartState()
	case GameStatePlaying:
		if err := g.updatePlayingState(delta); err != nil {
			return err
		}
	case GameStateOver:
		if err := g.updateOverState(delta); err != nil {
			return err
		}
	case GameStateShutdown:
		g.updateShutdownState(delta)
	}

	if err := g.drawFrame(); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// processInput records the frame's keys and tracks inactivity.
func (g *Game) processInput(inp input.Input) {
	g.state.Input = inp
	now := g.now()

	idle := now.Sub(g.state.lastInput).Seconds()
	switch {
	case len(inp.Pressed) > 0:
		g.state.lastInput = now
		g.state.isInactive = false
	case g.handle != nil && idle > config.InactivityDisconnectUser:
		g.logger.Info("disconnecting idle player")
		g.state.Running = false
	case g.handle != nil && idle > config.InactivityWarnUser:
		g.state.isInactive = true
	}

	if inp.Quit {
		g.state.Running = false
	}
	if g.inputStream.Closed() {
		g.logger.Info("input closed")
		g.state.Running = false
	}
}

// processLobbyEvents handles notices from the lobby.
func (g *Game) processLobbyEvents() {
	if g.handle == nil {
		return
	}
	for {
		select {
		case event := <-g.handle.Events:
			if event == EventServerShutdown && g.state.GameState != GameStateShutdown {
				g.state.GameState = GameStateShutdown
				g.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen follows terminal resizes. A changed area clears the
// terminal, so the canvas repaints in full at its new place.
func (g *Game) updateScreen() {
	changed, err := g.out.Fit()
	if err != nil || !changed {
		return
	}
	area := g.out.Area()
	canvas := g.screen.Canvas()
	canvas.Resize(area.Cols, area.Rows)
	canvas.SetOffset(area.Col, area.Row)
	canvas.ForceRedraw()
}

// updateStartState handles the title screen.
func (g *Game) updateStartState() {
	if g.state.Input.Space || g.state.Input.Enter {
		g.startGame()
	}
}

// updatePlayingState feeds key edges to the session and advances it.
func (g *Game) updatePlayingState(delta time.Duration) error {
	g.keys.observe(g.state.Input)
	g.screen.Step(delta)

	if err := game.Frame(g.state.Session, &g.keys, delta, g); err != nil {
		return err
	}
	if g.state.Session.Over() {
		g.finishGame()
	}
	return nil
}

// updateOverState keeps effects running over the frozen session and waits
// for a restart.
func (g *Game) updateOverState(delta time.Duration) error {
	g.screen.Step(delta)
	if err := game.Frame(g.state.Session, nil, delta, g); err != nil {
		return err
	}

	g.state.overFor += delta
	if g.state.overFor >= config.RestartDelay && (g.state.Input.Space || g.state.Input.Enter) {
		g.startGame()
	}
	return nil
}

// updateShutdownState handles the shutdown screen countdown.
func (g *Game) updateShutdownState(delta time.Duration) {
	g.state.shutdownTimer -= delta.Seconds()
	if g.state.shutdownTimer <= 0 {
		g.state.Running = false
	}
}

// startGame begins a fresh session.
func (g *Game) startGame() {
	input.ResetKeyInput(g.inputStream)
	g.keys.reset()
	g.screen.Reset()

	seed := g.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, uint64(g.state.Games)))

	g.state.Session = game.NewSession(g.opts.Tuning, rng)
	g.state.hasSnap = false
	g.state.Games++
	g.state.GameState = GameStatePlaying

	g.logger.Info("game started", "game", g.state.Games, "seed", seed)
}

// finishGame records a lost session.
func (g *Game) finishGame() {
	s := g.state.Session
	g.state.GameState = GameStateOver
	g.state.overFor = 0
	g.state.Best = max(g.state.Best, s.Score())

	record := false
	if g.opts.Lobby != nil {
		record = g.opts.Lobby.ReportScore(g.opts.Username, s.Score())
	}
	g.logger.Info("game over",
		"game", g.state.Games,
		"score", s.Score(),
		"rows", s.RowsSurvived(),
		"shells", s.AmmoIssued(),
		"record", record,
	)
}

// Render keeps the frame's snapshot for drawing and logs its events.
// It makes Game the game.Renderer of its own sessions.
func (g *Game) Render(snap game.Snapshot) error {
	for _, e := range snap.Events {
		switch e.Type {
		case game.EventKill:
			g.logger.Debug("enemy destroyed", "x", e.Pos.X, "y", e.Pos.Y)
		case game.EventEscape:
			g.logger.Debug("enemies escaped", "count", e.Count)
		case game.EventRowSpawned:
			g.logger.Debug("row spawned", "count", e.Count)
		}
	}
	g.state.snap = snap
	g.state.hasSnap = true
	return nil
}

// leave unregisters from the lobby.
func (g *Game) leave() {
	if g.handle != nil {
		g.opts.Lobby.Unregister(g.handle.ID)
	}
	g.logger.Info("player left", "games", g.state.Games, "best", g.state.Best)
}
