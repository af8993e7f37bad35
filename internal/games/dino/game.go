// Package dino implements a Chrome Dino-style endless runner: a character
// runs in place while obstacles scroll toward it, and the run ends on the
// first collision.
//
// The package is pure simulation. Input arrives as core.InputFrame values,
// one per tick, and rendering writes into a core.Screen; timing, terminal
// handling and persistence live in the platform layer.
package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// SpawnerFactory builds the spawner for a new session.
type SpawnerFactory func(seed int64, cfg *config.DinoConfig) Spawner

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.DinoConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithBest seeds the best score, usually from LoadBest.
func WithBest(best int) Option {
	return func(g *Game) { g.best = max(best, 0) }
}

// WithBestWriter sets where new best scores are written.
func WithBestWriter(w BestScoreWriter) Option {
	return func(g *Game) { g.writer = w }
}

// WithSpawner overrides how obstacles are spawned.
func WithSpawner(f SpawnerFactory) Option {
	return func(g *Game) { g.newSpawner = f }
}

// Game drives sessions through the menu, play, pause and game over phases.
type Game struct {
	cfg        config.DinoConfig
	runtime    core.RuntimeConfig
	writer     BestScoreWriter
	newSpawner SpawnerFactory

	phase     Phase
	archetype Archetype
	session   *Session
	best      int
	run       int
}

// New creates a game waiting in the menu.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultDinoConfig(),
		runtime: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset drops any running session and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = PhaseMenu
	g.session = nil
}

// Start leaves the menu and begins a run with the chosen archetype.
// It is a no-op outside the menu.
func (g *Game) Start(a Archetype) {
	if g.phase != PhaseMenu {
		return
	}
	g.archetype = a
	g.phase = Transition(g.phase, SignalStart)
	g.newSession()
}

func (g *Game) newSession() {
	g.run++
	seed := g.runtime.Seed + int64(g.run)
	opts := SessionOptions{
		Archetype: g.archetype,
		Best:      g.best,
		Seed:      seed,
		Writer:    g.writer,
	}
	if g.newSpawner != nil {
		opts.Spawner = g.newSpawner(seed, &g.cfg)
	}
	g.session = NewSession(&g.cfg, opts)
}

// Step advances the game by one tick and reports the outcome.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.phase = Transition(g.phase, SignalQuit)
	}

	switch g.phase {
	case PhaseQuit:
		return g.result(core.OutcomeQuit, nil)

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = Transition(g.phase, SignalPauseToggle)
			g.session.SetPaused(false)
			return g.result(core.OutcomeContinue, nil)
		}
		return g.result(core.OutcomePaused, nil)

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionJump):
			g.phase = Transition(g.phase, SignalRestart)
			g.newSession()
			return g.result(core.OutcomeContinue, nil)
		case in.Has(core.ActionBack):
			g.phase = Transition(g.phase, SignalBack)
			g.session = nil
			return g.result(core.OutcomeContinue, nil)
		}
		return g.result(core.OutcomeGameOver, nil)

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = Transition(g.phase, SignalPauseToggle)
			g.session.SetPaused(true)
			return g.result(core.OutcomePaused, nil)
		}
		res := g.session.Tick(IntentFrom(in))
		g.best = max(g.best, g.session.Best())
		if res.Over {
			g.phase = Transition(g.phase, SignalCollision)
			return g.result(core.OutcomeGameOver, res.Events)
		}
		return g.result(core.OutcomeContinue, res.Events)
	}

	return g.result(core.OutcomeContinue, nil)
}

func (g *Game) result(outcome core.Outcome, events []core.Event) core.StepResult {
	r := core.StepResult{
		State:   g.State(),
		Outcome: outcome,
		Events:  events,
	}
	if outcome == core.OutcomeGameOver && g.session != nil {
		r.FinalScore = g.session.Score()
	}
	return r
}

// State returns the scalar game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Best:     g.best,
		Speed:    g.cfg.Difficulty.BaseSpeed,
		Run:      g.run,
		Paused:   g.phase == PhasePaused,
		GameOver: g.phase == PhaseGameOver,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.Speed = g.session.Speed()
	}
	return st
}

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase { return g.phase }

// Archetype returns the archetype of the current or last run.
func (g *Game) Archetype() Archetype { return g.archetype }

// Session returns the current run, or nil in the menu.
func (g *Game) Session() *Session { return g.session }

// Config returns the active configuration.
func (g *Game) Config() config.DinoConfig { return g.cfg }
