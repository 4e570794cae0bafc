package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slider/internal/config"
	"github.com/vovakirdan/tui-slider/internal/core"
	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

const hudHeight = 3

// Options configures the play screen.
type Options struct {
	Config        config.SliderConfig
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	ScreenshotDir string
}

// hud is the status shown above the board. Puzzle listeners write to it.
type hud struct {
	message string
}

// Model is the Bubble Tea model for the puzzle screen.
type Model struct {
	puzzle    *puzzle.Puzzle
	view      *TileView
	sched     *teaScheduler
	screen    *core.Screen
	cfg       config.SliderConfig
	runtime   core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	picker    *PresetPicker
	hud       *hud
	log       *log.Logger
	shotDir   string
	quitting  bool
}

// NewModel creates the play model and configures the starting board.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := NewTileView(cfg.Tiles.Width, cfg.Tiles.Height)
	sched := newTeaScheduler()
	p := puzzle.New(
		puzzle.WithView(view),
		puzzle.WithScheduler(sched),
		puzzle.WithSeed(rt.Seed),
		puzzle.WithSettings(cfg.PuzzleSettings()),
		puzzle.WithLogger(logger),
	)
	if err := p.Configure(cfg.Board.Cols, cfg.Board.Rows); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		puzzle:    p,
		view:      view,
		sched:     sched,
		screen:    core.NewScreen(rt.ScreenW, core.Max(0, rt.ScreenH-1)),
		cfg:       cfg,
		runtime:   rt,
		keyMapper: NewKeyMapper(),
		help:      h,
		hud:       &hud{},
		log:       logger,
		shotDir:   opts.ScreenshotDir,
	}
	p.Subscribe(m.onEvent)

	logger.Info("board ready", "cols", cfg.Board.Cols, "rows", cfg.Board.Rows, "seed", rt.Seed)
	return m, nil
}

// onEvent updates the status line from puzzle events.
func (m Model) onEvent(e puzzle.Event) {
	switch e.Kind {
	case puzzle.EventMoved:
		m.hud.message = ""
	case puzzle.EventShuffled:
		m.hud.message = fmt.Sprintf("Shuffled, %d moves deep", m.puzzle.Steps())
	case puzzle.EventRestoreStarted:
		m.hud.message = "Restoring..."
	case puzzle.EventRestoreFinished:
		m.hud.message = "Restored"
	case puzzle.EventRestoreCancelled:
		m.hud.message = "Restore stopped"
	case puzzle.EventSolved:
		m.hud.message = "Solved!"
		m.log.Info("solved", "steps", m.puzzle.Steps())
	}
}

// Init starts the animation frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.sched.Cmds()

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		m.sched.fire(msg.id)
		return m, m.sched.Cmds()

	case FrameMsg:
		m.view.Step()
		return m, tea.Batch(frameCmd(m.runtime.TickRate), m.sched.Cmds())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		chosen, done, cmd := m.picker.Update(msg)
		if done {
			m.picker = nil
		}
		if chosen != nil {
			m.configure(*chosen)
		}
		return m, cmd
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.puzzle.Move(emptyStep(action))

	case core.ActionShuffle:
		m.puzzle.Shuffle()

	case core.ActionRestore:
		m.puzzle.Restore()

	case core.ActionCancel:
		m.puzzle.CancelRestore()

	case core.ActionCopy:
		m.copyHistory()

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionPresets:
		b := m.puzzle.Board()
		m.picker = NewPresetPicker(m.cfg.Presets, b.Cols(), b.Rows())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.sched.Cmds()
}

// emptyStep converts a slide action into the step of the empty cell,
// which moves opposite to the sliding tile.
func emptyStep(a core.Action) puzzle.Direction {
	switch a {
	case core.ActionUp:
		return puzzle.Down
	case core.ActionDown:
		return puzzle.Up
	case core.ActionLeft:
		return puzzle.Right
	case core.ActionRight:
		return puzzle.Left
	}
	return puzzle.None
}

// handleMouse feeds the left button to the gesture machine as pointer 0.
func (m Model) handleMouse(msg tea.MouseMsg) {
	p := m.toBoard(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.picker != nil {
			return
		}
		cell := m.view.HitTest(m.puzzle.Board(), p)
		m.puzzle.PointerDown(0, p, cell)
	case tea.MouseActionMotion:
		m.puzzle.PointerMove(0, p)
	case tea.MouseActionRelease:
		m.puzzle.PointerUp(0, p)
	}
}

// configure rebuilds the board for a preset.
func (m Model) configure(p config.BoardPreset) {
	if err := m.puzzle.Configure(p.Cols, p.Rows); err != nil {
		m.log.Error("configure failed", "preset", p.Name, "err", err)
		m.hud.message = "Invalid preset " + p.Name
		return
	}
	m.log.Info("board resized", "preset", p.Name, "cols", p.Cols, "rows", p.Rows)
	m.hud.message = p.String()
}

// boardOrigin returns the screen position of the board's top-left cell.
func (m Model) boardOrigin() (x, y int) {
	w, _ := m.view.BoardSize(m.puzzle.Board())
	return (m.screen.Width() - w) / 2, hudHeight + 1
}

// toBoard converts screen coordinates to board-relative view coordinates.
func (m Model) toBoard(x, y int) puzzle.Point {
	bx, by := m.boardOrigin()
	return puzzle.Point{X: float64(x - bx), Y: float64(y - by)}
}

// fits reports whether the board and its frame fit on screen.
func (m Model) fits() bool {
	w, h := m.view.BoardSize(m.puzzle.Board())
	x, y := m.boardOrigin()
	return x >= 1 && x+w < m.screen.Width() && y+h < m.screen.Height()
}

// draw renders the HUD and the board into the screen buffer.
func (m Model) draw() {
	dst := m.screen
	dst.Clear()

	if !m.fits() {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(y+1, "Please resize terminal or pick a smaller board", core.ColorGray)
		return
	}

	m.drawHUD()
	x, y := m.boardOrigin()
	drawBoard(dst, x, y, m.view, m.puzzle.Board())
}

// drawHUD draws the title, step counter and status line.
func (m Model) drawHUD() {
	dst := m.screen
	b := m.puzzle.Board()
	x, _ := m.boardOrigin()
	w, _ := m.view.BoardSize(b)

	dst.DrawTextCentered(0, "S L I D E R", core.ColorBrightWhite)

	dst.DrawTextColored(x, 1, fmt.Sprintf("%03d", m.puzzle.Steps()), core.ColorBrightYellow)
	size := fmt.Sprintf("%dx%d", b.Cols(), b.Rows())
	dst.DrawTextColored(x+w-len(size), 1, size, core.ColorGray)

	status, color := m.hud.message, core.ColorCyan
	switch {
	case m.puzzle.Restoring():
		status, color = "Restoring...", core.ColorMagenta
	case m.puzzle.IsSolved() && status == "":
		status, color = "Solved", core.ColorGreen
	}
	dst.DrawTextCentered(2, status, color)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	body := RenderScreen(m.screen)

	if m.picker != nil {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program for the puzzle.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
