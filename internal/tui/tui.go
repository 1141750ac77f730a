package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/klondike/internal/display"
	"github.com/lox/klondike/internal/solver"
	"github.com/lox/klondike/klondike"
)

// Config configures a Model
type Config struct {
	Seed     int64
	Game     *klondike.GameState // optional; dealt from Seed when nil
	Renderer *display.Renderer
	Logger   *log.Logger
}

// Model is the Bubble Tea model for an interactive game
type Model struct {
	game   *klondike.GameState
	solver *solver.Solver // reset by every player move
	seed   int64
	moves  int

	renderer *display.Renderer
	logger   *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	gameLog     []string
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	width  int
	height int
}

// NewModel creates a model for a new game
func NewModel(cfg Config) (*Model, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = display.NewRenderer(true)
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "d, w 3, t 0 5 2, hint, auto, help"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusedBorder).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		seed:        cfg.Seed,
		renderer:    cfg.Renderer,
		logger:      cfg.Logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}

	if cfg.Game != nil {
		m.game = cfg.Game
		m.AddLogEntry(TitleStyle.Render(" Klondike "))
		return m, nil
	}
	if err := m.deal(cfg.Seed); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) deal(seed int64) error {
	g, err := klondike.NewGameState(klondike.WithSeed(seed))
	if err != nil {
		return err
	}
	m.game = g
	m.solver = nil
	m.seed = seed
	m.moves = 0
	m.AddLogEntry(TitleStyle.Render(fmt.Sprintf(" Klondike #%d ", seed)))
	m.logger.Debug("new game", "seed", seed)
	return nil
}

// Game returns the game being played
func (m *Model) Game() *klondike.GameState { return m.game }

// Log returns the entries shown in the log pane
func (m *Model) Log() []string { return m.gameLog }

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line != "" && m.Execute(line) {
					m.quitting = true
					return m, tea.Quit
				}
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Execute runs one command line and reports whether the player asked to quit.
// Rejected moves are logged and leave the game unchanged.
func (m *Model) Execute(line string) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		m.addError(err)
		return false
	}

	switch cmd.Kind {
	case CmdQuit:
		return true
	case CmdHelp:
		m.AddLogEntry(InfoStyle.Render(helpText))
	case CmdNew:
		if err := m.deal(m.seed + 1); err != nil {
			m.addError(err)
		}
	case CmdDraw:
		m.draw()
	case CmdMove:
		m.move(cmd)
	case CmdHint:
		m.hint()
	case CmdAuto:
		m.auto()
	}
	return false
}

func (m *Model) draw() {
	if !m.game.DrawFromStock() {
		if m.game.IsLost() {
			m.AddLogEntry(WarningStyle.Render("No passes left: the game is lost"))
		} else {
			m.AddLogEntry(WarningStyle.Render("Stock and waste are empty"))
		}
		return
	}
	top, _ := m.game.WasteTop()
	m.played(fmt.Sprintf("draw %s", top))
}

func (m *Model) move(cmd Command) {
	dst := cmd.Dest
	if cmd.AnyFoundation {
		dst = m.acceptingFoundation(cmd.Source)
		if dst == nil {
			m.addError(fmt.Errorf("%w: no foundation accepts %s", klondike.ErrIllegalPlacement, cmd.Source))
			return
		}
	}
	if err := m.game.Move(cmd.Source, dst); err != nil {
		m.logger.Debug("move rejected", "src", cmd.Source, "dst", dst, "err", err)
		m.addError(err)
		return
	}
	m.played(fmt.Sprintf("%s -> %s", cmd.Source, dst))
}

func (m *Model) acceptingFoundation(src klondike.Source) klondike.Destination {
	for f := range klondike.NumFoundations {
		dst := klondike.ToFoundation{Pile: f}
		if m.game.CheckMove(src, dst) == nil {
			return dst
		}
	}
	return nil
}

func (m *Model) played(desc string) {
	m.solver = nil
	m.moves++
	m.AddLogEntry(MoveStyle.Render(fmt.Sprintf("[%03d] %s", m.moves, desc)))
	m.checkOutcome()
}

func (m *Model) ensureSolver() *solver.Solver {
	if m.solver == nil {
		cfg := solver.DefaultConfig()
		cfg.Logger = m.logger
		m.solver = solver.New(m.game, cfg)
	}
	return m.solver
}

func (m *Model) hint() {
	mv, ok := m.ensureSolver().Suggest()
	switch {
	case !ok:
		m.AddLogEntry(WarningStyle.Render("No moves left"))
	case mv.Category == solver.StockDraw:
		m.AddLogEntry(HintStyle.Render("Hint: draw from the stock"))
	default:
		m.AddLogEntry(HintStyle.Render("Hint: " + mv.String()))
	}
}

func (m *Model) auto() {
	s := m.ensureSolver()
	mv, ok := s.Step()
	if !ok {
		m.AddLogEntry(WarningStyle.Render("No moves left"))
		m.checkOutcome()
		return
	}
	m.moves++
	m.AddLogEntry(MoveStyle.Render(fmt.Sprintf("[%03d] %s", m.moves, mv)))
	m.checkOutcome()
}

func (m *Model) checkOutcome() {
	switch {
	case m.game.IsWon():
		m.AddLogEntry(SuccessStyle.Render(fmt.Sprintf("You won in %d moves! Type 'new' for another deal.", m.moves)))
	case m.game.IsLost():
		m.AddLogEntry(WarningStyle.Render(fmt.Sprintf("Game lost with %d cards on the foundations.", m.game.FoundationCount())))
	}
}

func (m *Model) addError(err error) {
	msg := err.Error()
	if errors.Is(err, klondike.ErrIllegalPlacement) || errors.Is(err, klondike.ErrInsufficientCards) {
		msg = "Illegal move: " + strings.TrimPrefix(msg, "klondike: ")
	}
	m.AddLogEntry(ErrorStyle.Render(msg))
}

// AddLogEntry adds an entry to the log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.input.View() + "\n" + InfoStyle.Render("Tab to scroll log • 'help' for commands • Ctrl+C to quit")
	inputHeight := lipgloss.Height(inputContent)
	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(1)).
		Width(max(m.width-2, 1)).
		Render(inputContent)

	board := m.renderer.Board(m.game)
	boardWidth := lipgloss.Width(board)
	paneHeight := max(m.height-inputHeight-4, 1)
	boardPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(boardWidth).
		Height(paneHeight).
		Render(board)

	m.logViewport.Width = max(m.width-boardWidth-4, 1)
	m.logViewport.Height = paneHeight
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(0)).
		Width(m.logViewport.Width).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, logPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, inputPane)
}

func (m *Model) borderColor(pane int) lipgloss.Color {
	if m.focusedPane == pane {
		return focusedBorder
	}
	return blurredBorder
}
