// Package tcellhost runs snake sessions directly on a tcell screen. Events
// from a PollEvent goroutine and a ticker meet in one select loop, which is
// the only place a session is touched.
package tcellhost

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/host"
)

// footerText is shown below the board.
const footerText = "space/p pause  arrows/wasd/hjkl move  q quit"

// Host drives sessions on a tcell screen.
type Host struct {
	screen   tcell.Screen
	launcher *host.Launcher
	logger   *log.Logger

	session  *snake.Session
	cells    *canvas.Cells
	ticker   *time.Ticker
	gameOver bool
}

// New creates a host on an initialised screen. The caller owns the screen
// and calls Fini on it.
func New(screen tcell.Screen, l *host.Launcher, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{screen: screen, launcher: l, logger: logger}
}

// Run opens a real terminal screen and plays until the player quits.
func Run(ctx context.Context, l *host.Launcher, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellhost: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellhost: init screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, l, logger).Loop(ctx)
}

// Loop plays games until the player quits or ctx is done.
func (h *Host) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.start()
	defer h.ticker.Stop()
	h.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}

		case <-h.ticker.C:
			h.tick()
		}
	}
}

// start launches a new session sized to the screen and resets the ticker.
func (h *Host) start() {
	cols, rows := h.screen.Size()
	h.session, h.cells = h.launcher.Launch(cols, rows)
	h.gameOver = false

	if h.ticker == nil {
		h.ticker = time.NewTicker(h.session.Interval())
	} else {
		h.ticker.Reset(h.session.Interval())
	}
}

func (h *Host) tick() {
	if h.gameOver {
		return
	}
	result := h.session.Tick()
	if result.State.GameOver {
		h.gameOver = true
		h.ticker.Stop()
		host.DrawGameOver(h.cells.Screen(), result.State.Score,
			core.Color(h.launcher.Config().Colors.Text))
	}
	h.draw()
}

// handleEvent returns false when the player quits.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := MapKey(ev)

		if h.gameOver {
			switch action {
			case core.ActionRestart:
				h.start()
				h.draw()
			case core.ActionQuit:
				return false
			}
			return true
		}

		ke := core.NewKeyEvent(action)
		h.session.HandleKey(&ke)
		if ke.DefaultPrevented() {
			h.draw()
			return true
		}
		if action == core.ActionQuit {
			return false
		}

	case *tcell.EventResize:
		// The next session picks up the new size.
		h.screen.Sync()
		h.draw()
	}
	return true
}

// draw copies the cell buffer and the footer to the tcell screen.
func (h *Host) draw() {
	h.screen.Clear()

	src := h.cells.Screen()
	for y, height := 0, src.Height(); y < height; y++ {
		for x, width := 0, src.Width(); x < width; x++ {
			c := src.GetCell(x, y)
			h.screen.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}

	_, rows := h.screen.Size()
	footer := rows - host.FooterRows + 1
	for i, r := range footerText {
		h.screen.SetContent(i, footer, r, nil, tcell.StyleDefault.Dim(true))
	}

	h.screen.Show()
}

// Session returns the game currently hosted.
func (h *Host) Session() *snake.Session {
	return h.session
}

// GameOver reports whether the game over notice is up.
func (h *Host) GameOver() bool {
	return h.gameOver
}
