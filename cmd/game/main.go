package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/tankfall/internal/config"
	"github.com/tomz197/tankfall/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tankfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.TuningFromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv(config.EnvLogFile, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := config.NewLogger(logOut, "tankfall")
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Tuning:   tuning,
		Seed:     config.SeedFromEnv(),
		Username: config.GetEnv("USER", "player"),
		Logger:   logger,
		Renderer: lipgloss.NewRenderer(os.Stdout),
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
