package loop

import (
	"time"

	"github.com/tomz197/tankfall/internal/game"
	"github.com/tomz197/tankfall/internal/input"
)

// GameState represents the current screen of a player.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateOver                      // Session lost, show restart prompt
	GameStateShutdown                  // Server is going away
)

// PlayerState holds one player's screen, timers and current session.
type PlayerState struct {
	GameState     GameState
	prevGameState GameState
	Running       bool

	Session *game.Session // nil until the first game starts
	Games   int           // Sessions started so far
	Best    int           // Best score of this connection

	snap    game.Snapshot // Last snapshot handed over by game.Frame
	hasSnap bool

	Input       input.Input
	lastInput   time.Time
	isInactive  bool
	wasInactive bool

	overFor       time.Duration // Time spent on the game over screen
	shutdownTimer float64       // Seconds left on the shutdown screen
}

// NewPlayerState creates a state showing the title screen.
func NewPlayerState(now time.Time) *PlayerState {
	return &PlayerState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
		lastInput:     now,
	}
}
