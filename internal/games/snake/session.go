package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is where a session is in its lifecycle.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Overlay text placement, in pixels.
const (
	scoreInsetX   = 120
	scoreY        = 30
	scoreFontSize = 25
	bannerSize    = 35
	fontFamily    = "sans-serif"
)

// GameOverText is the notification shown when the snake bites itself.
const GameOverText = "GAME OVER!"

// Options configures a new session.
type Options struct {
	ViewportW int   // Viewport width in pixels
	ViewportH int   // Viewport height in pixels
	Seed      int64 // RNG seed for food placement
	Logger    *log.Logger
}

// Session is one game from start to game over. It owns all mutable game
// state; hosts feed it ticks and key events from a single goroutine.
// Restarting means building a new Session.
type Session struct {
	id     string
	cfg    config.SnakeConfig
	grid   Grid
	brush  Brush
	rng    *rand.Rand
	dst    canvas.Surface
	logger *log.Logger

	snake *Snake
	food  *Food
	score int
	phase Phase
	tick  uint64
}

// NewSession sizes the surface to the grid derived from the viewport and
// places the snake at the centre and the first food at random.
func NewSession(dst canvas.Surface, cfg config.SnakeConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := NewGrid(opts.ViewportW, opts.ViewportH, cfg.Grid.TileSize)
	dst.SetSize(grid.Width, grid.Height)

	s := &Session{
		id:   uuid.NewString(),
		cfg:  cfg,
		grid: grid,
		brush: Brush{
			Tile:        grid.Tile,
			Stroke:      core.Color(cfg.Colors.Stroke),
			StrokeWidth: cfg.StrokeWidth,
		},
		rng: rand.New(rand.NewSource(opts.Seed)),
		dst: dst,
	}
	s.logger = logger.With("session", s.id)

	s.food = NewFood(grid.SpawnLocation(s.rng), core.Color(cfg.Colors.Food))
	s.snake = NewSnake(grid.Center(), core.Color(cfg.Colors.Snake), grid.Tile, cfg.Snake.InitialTail)

	s.logger.Info("session started",
		"width", grid.Width,
		"height", grid.Height,
		"tile", grid.Tile,
		"fps", cfg.Loop.FPS,
	)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Grid returns the playable area.
func (s *Session) Grid() Grid {
	return s.grid
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Interval returns the time between ticks.
func (s *Session) Interval() time.Duration {
	return time.Second / time.Duration(max(s.cfg.Loop.FPS, 1))
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase == PhaseTerminated,
		Paused:   s.phase == PhasePaused,
	}
}

// Tick advances the game by one step. Paused and terminated sessions do
// nothing, not even draw.
//
// Order: death check, border wrap, eat check, clear, draw food, draw snake,
// move, draw score. The snake is drawn before it moves, so the frame shows
// the position the collision checks just ran against.
func (s *Session) Tick() core.StepResult {
	if s.phase != PhaseRunning {
		return core.StepResult{State: s.State()}
	}
	s.tick++

	if s.snake.CheckDeath() {
		s.terminate()
		return core.StepResult{State: s.State()}
	}

	s.snake.WrapBorder(s.grid.Width, s.grid.Height)

	if s.snake.CheckEat(s.food.Pos) {
		eaten := s.food.Pos
		s.food = NewFood(s.grid.SpawnLocation(s.rng), core.Color(s.cfg.Colors.Food))
		s.score += s.cfg.Scoring.FoodPoints
		s.logger.Debug("food eaten", "at", eaten, "score", s.score, "length", s.snake.Len())
	}

	s.dst.ClearRect(0, 0, s.grid.Width, s.grid.Height)
	s.food.Render(s.dst, s.brush)
	s.snake.Render(s.dst, s.brush)
	s.snake.Move()
	s.showScore()

	return core.StepResult{State: s.State()}
}

// terminate ends the game and draws the notification.
func (s *Session) terminate() {
	s.phase = PhaseTerminated
	s.showBanner(GameOverText)
	s.logger.Info("game over",
		"score", s.score,
		"ticks", s.tick,
		"length", s.snake.Len()+1,
	)
}

func (s *Session) showScore() {
	s.dst.DrawText(
		fmt.Sprintf("SCORE: %d", s.score),
		s.grid.Width-scoreInsetX, scoreY,
		canvas.Font{Size: scoreFontSize, Family: fontFamily},
		core.Color(s.cfg.Colors.Text),
		canvas.AlignCenter,
	)
}

func (s *Session) showBanner(text string) {
	s.dst.DrawText(
		text,
		s.grid.Width/2, s.grid.Height/2,
		canvas.Font{Size: bannerSize, Family: fontFamily},
		core.Color(s.cfg.Colors.Text),
		canvas.AlignCenter,
	)
}
