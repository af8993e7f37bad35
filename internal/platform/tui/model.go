package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(runID, character string, score int) (int64, error)
}

// CuePlayer plays a sound for a game event.
type CuePlayer interface {
	Play(e core.Event)
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Config config.DinoConfig
	Scores ScoreSaver           // Optional
	Best   dino.BestScoreWriter // Optional
	Reader dino.BestScoreReader // Optional, read once per app
	Board  ScoreLister          // Optional, backs the scoreboard
	Sound  CuePlayer            // Optional
	Logger *log.Logger          // Optional, discards when nil
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// Model is the Bubble Tea model for one game of the runner.
type Model struct {
	game       *dino.Game
	archetype  dino.Archetype
	deps       Deps
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	duck       DuckLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	tickID     int
	runID      string
	run        int
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
	backToMenu bool
}

// NewModel creates a model that plays the given archetype starting from the
// given best score. tickID tags the model's tick loop.
func NewModel(archetype dino.Archetype, best int, deps Deps, cfg core.RuntimeConfig, tickID int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := dino.New(
		dino.WithConfig(deps.Config),
		dino.WithBest(best),
		dino.WithBestWriter(deps.Best),
	)
	game.Reset(cfg)
	game.Start(archetype)

	return Model{
		game:       game,
		archetype:  archetype,
		deps:       deps,
		logger:     deps.logger(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		duck:       NewDuckLatch(duckHoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		run:        game.State().Run,
		runID:      uuid.NewString(),
		tickID:     tickID,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started", "character", m.archetype, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is scaled at render time, so a resize never resets the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionDuck:
		m.duck.Press()
	case core.ActionJump:
		m.duck.Release()
		m.inputFrame.Set(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.duck.Apply(&m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A restart from game over starts a new run
	if m.gameState.Run != m.run {
		m.run = m.gameState.Run
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.duck.Release()
	}

	if m.deps.Sound != nil {
		for _, e := range result.Events {
			m.deps.Sound.Play(e)
		}
	}

	switch result.Outcome {
	case core.OutcomeQuit:
		m.quitting = true
		return m, tea.Quit

	case core.OutcomeGameOver:
		m.saveScore(result.FinalScore)
	}

	if m.game.Phase() == dino.PhaseMenu {
		m.backToMenu = true
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// saveScore stores the finished run once.
func (m *Model) saveScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.logger.Info("run finished", "character", m.archetype, "score", score, "run", m.runID)

	if m.deps.Scores == nil || score <= 0 {
		return
	}
	if _, err := m.deps.Scores.SaveScore(m.runID, m.archetype.String(), score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Game exposes the underlying game.
func (m Model) Game() *dino.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user went back to character selection.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
