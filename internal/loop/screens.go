package loop

import (
	"fmt"

	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/object"
)

var titleArt = []string{
	" _____    _    _  _  _  __ ___    _    _     _    ",
	"|_   _|  /_\\  | \\| || |/ /| __|  /_\\  | |   | |   ",
	"  | |   / _ \\ | .` || ' < | _|  / _ \\ | |__ | |__ ",
	"  |_|  /_/ \\_\\|_|\\_||_|\\_\\|_|  /_/ \\_\\|____||____|",
}

// drawFrame draws the current frame and flushes it.
func (g *Game) drawFrame() error {
	canvas := g.screen.Canvas()

	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := g.state.GameState != g.state.prevGameState
	inactiveChanged := g.state.isInactive != g.state.wasInactive
	if stateChanged || inactiveChanged {
		g.out.Clear()
		canvas.ForceRedraw()
		g.state.prevGameState = g.state.GameState
		g.state.wasInactive = g.state.isInactive
	}

	playing := g.state.GameState == GameStatePlaying || g.state.GameState == GameStateOver
	if playing && g.state.hasSnap && !g.state.isInactive {
		if err := g.screen.Render(g.state.snap); err != nil {
			return err
		}
		g.state.snap.Events = nil
	}

	g.drawUI()
	return g.out.Flush()
}

// drawUI draws the text screens over the canvas.
func (g *Game) drawUI() {
	canvas := g.screen.Canvas()
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	if g.state.GameState == GameStateShutdown {
		g.drawShutdownScreen(centerX, centerY)
		return
	}
	if g.state.isInactive {
		g.drawInactivityScreen(centerX, centerY)
		return
	}

	switch g.state.GameState {
	case GameStateStart:
		g.drawStartScreen(centerX, centerY)
	case GameStateOver:
		g.drawOverPrompt(centerX, centerY)
	}
}

// text draws a line centered on centerX.
func (g *Game) text(centerX, row int, value string, muted bool) {
	styles := g.screen.Styles()
	style := styles.HUD
	if muted {
		style = styles.Muted
	}
	g.screen.Text(object.Centered(centerX, row, value, style))
}

// blinkOn alternates every 600ms for prompts.
func (g *Game) blinkOn() bool {
	return g.now().UnixMilli()/600%2 == 0
}

// drawStartScreen draws the title screen.
func (g *Game) drawStartScreen(centerX, centerY int) {
	styles := g.screen.Styles()
	titleStartY := centerY - 8
	for i, line := range titleArt {
		g.screen.Text(object.Centered(centerX, titleStartY+i, line, styles.Accent))
	}

	row := titleStartY + len(titleArt) + 1
	g.text(centerX, row, "~ Hold the line. Every shell counts. ~", true)

	row += 2
	g.text(centerX, row, "Controls", false)
	controls := []string{
		"A D / < >  . . . . Move",
		"SPACE  . . . . . . Fire",
		"Q  . . . . . . . . Quit",
	}
	for i, line := range controls {
		g.text(centerX, row+1+i, line, false)
	}
	row += len(controls) + 2

	if g.blinkOn() {
		g.text(centerX, row, ">>  Press SPACE to Start  <<", false)
	}
	row += 2

	if lobby := g.opts.Lobby; lobby != nil {
		g.text(centerX, row, fmt.Sprintf("Players online: %d", lobby.Players()), true)
		if best := lobby.Best(); best.Points > 0 {
			g.text(centerX, row+1, fmt.Sprintf("Best today: %d by %s", best.Points, best.Username), true)
		}
	}
}

// drawOverPrompt draws the restart prompt below the game over banner.
func (g *Game) drawOverPrompt(centerX, centerY int) {
	if g.state.Best > 0 {
		g.text(centerX, centerY+3, fmt.Sprintf("Your best: %d", g.state.Best), true)
	}
	if g.state.overFor >= config.RestartDelay && g.blinkOn() {
		g.text(centerX, centerY+5, ">>  Press SPACE to Restart  <<", false)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (g *Game) drawInactivityScreen(centerX, centerY int) {
	g.text(centerX, centerY-2, "INACTIVITY WARNING", false)

	left := int(config.InactivityDisconnectUser - g.now().Sub(g.state.lastInput).Seconds())
	g.text(centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", max(left, 0)), false)
	g.text(centerX, centerY+2, "Press any key to continue", true)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (g *Game) drawShutdownScreen(centerX, centerY int) {
	g.text(centerX, centerY-3, "SERVER SHUTTING DOWN", false)
	g.text(centerX, centerY-1, "The server is restarting for maintenance.", true)
	g.text(centerX, centerY, "Please reconnect in a moment.", true)

	remaining := int(g.state.shutdownTimer) + 1
	g.text(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining), false)
	g.text(centerX, centerY+4, "Press Q to disconnect now", true)
}
