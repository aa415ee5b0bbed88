package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/host"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellhost"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/P          - Pause
  Enter/R          - Play again (after game over)
  ?                - More keys
  Q/Ctrl+C         - Quit

The board is sized to the terminal when a game starts. Resizing takes
effect from the next game.

Renderers:
  bubbletea - Bubble Tea program (default)
  tcell     - Direct tcell screen

Examples:
  snake play
  snake play --renderer tcell
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "bubbletea", "Renderer: bubbletea or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	cfg, err := loadSettings(rt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(nil, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	launcher := host.NewLauncher(cfg, rt.Seed, logger)
	logger.Info("starting", "renderer", flagRenderer, "cols", rt.ScreenW, "rows", rt.ScreenH)

	var runErr error
	switch flagRenderer {
	case "bubbletea":
		runErr = tui.Run(launcher, rt.ScreenW, rt.ScreenH)
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		runErr = tcellhost.Run(ctx, launcher, logger)
		stop()
	default:
		runErr = fmt.Errorf("unknown renderer %q (want bubbletea or tcell)", flagRenderer)
	}

	logger.Info("finished", "games", launcher.Games())
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
