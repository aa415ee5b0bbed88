package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/canvas"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/host"
)

// Model is the Bubble Tea model hosting one player's snake games.
type Model struct {
	launcher *host.Launcher
	session  *snake.Session
	cells    *canvas.Cells
	renderer *lipgloss.Renderer
	keys     KeyMap
	help     help.Model

	cols, rows int
	timer      int
	gameOver   bool
	quitting   bool
}

// NewModel starts a session sized for a cols x rows terminal. A nil
// renderer uses the default one on stdout.
func NewModel(l *host.Launcher, cols, rows int, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	session, cells := l.Launch(cols, rows)

	h := help.New()
	h.Width = cols

	return Model{
		launcher: l,
		session:  session,
		cells:    cells,
		renderer: r,
		keys:     DefaultKeyMap(),
		help:     h,
		cols:     cols,
		rows:     rows,
	}
}

// Session returns the game currently hosted.
func (m Model) Session() *snake.Session {
	return m.session
}

// GameOver reports whether the game over notice is up.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval(), m.timer)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The running session keeps its size; the next one uses this.
		m.cols, m.rows = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey offers the key to the session first. Keys the session does not
// consume fall through to the host bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.gameOver {
		switch action {
		case core.ActionRestart:
			return m.restart()
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	ev := core.NewKeyEvent(action)
	m.session.HandleKey(&ev)
	if ev.DefaultPrevented() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick runs one simulation tick and schedules the next. The timer
// stops at game over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Timer != m.timer || m.gameOver {
		return m, nil
	}

	result := m.session.Tick()
	if result.State.GameOver {
		m.gameOver = true
		host.DrawGameOver(m.cells.Screen(), result.State.Score,
			core.Color(m.launcher.Config().Colors.Text))
		return m, nil
	}
	return m, tickCmd(m.session.Interval(), m.timer)
}

// restart replaces the finished session with a new one. Ticks still in
// flight for the old timer are dropped.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.session, m.cells = m.launcher.Launch(m.cols, m.rows)
	m.gameOver = false
	m.timer++
	return m, tickCmd(m.session.Interval(), m.timer)
}

// View renders the board with the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.renderer, m.cells.Screen()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts a local Bubble Tea program in the alternate screen.
func Run(l *host.Launcher, cols, rows int) error {
	model := NewModel(l, cols, rows, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
