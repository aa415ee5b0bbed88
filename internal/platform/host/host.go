// Package host holds what the terminal hosts share: turning a terminal size
// into a fresh session and drawing the game over notice.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FooterRows is the number of terminal rows kept below the board for the
// key help.
const FooterRows = 2

// Viewport converts a terminal size in cells to a pixel viewport.
func Viewport(cols, rows, tile int) (w, h int) {
	return max(cols/canvas.ColsPerTile, 0) * tile, max(rows-FooterRows, 0) * tile
}

// Launcher builds sessions for one player. Each game over is followed by a
// new Launch, so a Launcher must not be shared between players.
type Launcher struct {
	cfg    config.SnakeConfig
	seed   int64
	logger *log.Logger
	games  int
}

// NewLauncher creates a launcher. A zero seed picks a time based seed for
// every game; any other seed makes the sequence of games reproducible.
func NewLauncher(cfg config.SnakeConfig, seed int64, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{cfg: cfg, seed: seed, logger: logger}
}

// Config returns the settings every session is built with.
func (l *Launcher) Config() config.SnakeConfig {
	return l.cfg
}

// Games returns how many sessions have been launched.
func (l *Launcher) Games() int {
	return l.games
}

// Launch starts a session sized for a cols x rows terminal and returns it
// with the cell surface it draws on.
func (l *Launcher) Launch(cols, rows int) (*snake.Session, *canvas.Cells) {
	tile := l.cfg.Grid.TileSize
	w, h := Viewport(cols, rows, tile)

	seed := l.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(l.games)
	}
	l.games++

	cells := canvas.NewCells(core.NewScreen(0, 0), tile)
	s := snake.NewSession(cells, l.cfg, snake.Options{
		ViewportW: w,
		ViewportH: h,
		Seed:      seed,
		Logger:    l.logger.With("game", l.games),
	})
	return s, cells
}
