package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

type appScreen int

const (
	screenPicker appScreen = iota
	screenGame
	screenScoreboard
)

// App switches between the character picker, a game and the scoreboard.
// It is the top-level model for both local play and SSH sessions.
type App struct {
	deps     Deps
	config   core.RuntimeConfig
	screen   appScreen
	picker   PickerModel
	game     Model
	board    ScoreboardModel
	best     int
	tickGen  int // Bumped per game so stale ticks are dropped
	quitting bool
}

// NewApp creates the app. A non-nil start skips the picker and plays that
// character right away.
func NewApp(deps Deps, cfg core.RuntimeConfig, start *dino.Archetype) App {
	a := App{
		deps:   deps,
		config: cfg,
		best:   dino.LoadBest(deps.Reader),
	}
	if start != nil {
		a.startGame(*start)
		return a
	}
	a.picker = NewPickerModel(cfg.ScreenW, cfg.ScreenH, a.best)
	return a
}

// Init starts the first screen.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame {
		return a.game.Init()
	}
	return a.picker.Init()
}

// Update routes messages to the active screen and handles screen changes.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenScoreboard:
		return a.updateScoreboard(msg)
	default:
		return a.updatePicker(msg)
	}
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.picker.Update(msg)
	a.picker = next.(PickerModel)

	switch {
	case a.picker.IsQuitting():
		a.quitting = true
		return a, tea.Quit

	case a.picker.WantsScoreboard():
		a.screen = screenScoreboard
		a.board = NewScoreboardModel(a.deps.Board, a.config.ScreenW, a.config.ScreenH)
		return a, a.board.Init()
	}

	if archetype, ok := a.picker.Selected(); ok {
		a.startGame(archetype)
		return a, a.game.Init()
	}
	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	a.game = next.(Model)
	a.best = max(a.best, a.game.State().Best)

	switch {
	case a.game.IsQuitting():
		a.quitting = true
		return a, tea.Quit

	case a.game.BackToMenu():
		a.showPicker()
		return a, a.picker.Init()
	}
	return a, cmd
}

func (a App) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.board.Update(msg)
	a.board = next.(ScoreboardModel)

	switch {
	case a.board.IsQuitting():
		a.quitting = true
		return a, tea.Quit

	case a.board.IsGoingBack():
		a.showPicker()
		return a, a.picker.Init()
	}
	return a, cmd
}

func (a *App) startGame(archetype dino.Archetype) {
	a.tickGen++
	a.game = NewModel(archetype, a.best, a.deps, a.config, a.tickGen)
	a.screen = screenGame
}

func (a *App) showPicker() {
	a.picker = NewPickerModel(a.config.ScreenW, a.config.ScreenH, a.best)
	a.screen = screenPicker
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScoreboard:
		return a.board.View()
	default:
		return a.picker.View()
	}
}

// Best returns the highest score seen by this app.
func (a App) Best() int {
	return a.best
}

// IsQuitting returns true if user requested to quit.
func (a App) IsQuitting() bool {
	return a.quitting
}

// RunApp runs the app in the local terminal.
func RunApp(deps Deps, cfg core.RuntimeConfig, start *dino.Archetype) error {
	p := tea.NewProgram(NewApp(deps, cfg, start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
