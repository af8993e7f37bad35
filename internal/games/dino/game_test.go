package dino

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

// crashSpawner puts a hazard on top of the character at the start of every run.
func crashSpawner(int64, *config.DinoConfig) Spawner {
	return &scriptedSpawner{batches: [][]Obstacle{{small(100)}}}
}

// emptySpawner never spawns anything.
func emptySpawner(int64, *config.DinoConfig) Spawner {
	return &scriptedSpawner{}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from Phase
		sig  Signal
		to   Phase
	}{
		{PhaseMenu, SignalStart, PhasePlaying},
		{PhaseMenu, SignalPauseToggle, PhaseMenu},
		{PhaseMenu, SignalQuit, PhaseQuit},
		{PhasePlaying, SignalPauseToggle, PhasePaused},
		{PhasePlaying, SignalCollision, PhaseGameOver},
		{PhasePlaying, SignalRestart, PhasePlaying},
		{PhasePlaying, SignalQuit, PhaseQuit},
		{PhasePaused, SignalPauseToggle, PhasePlaying},
		{PhasePaused, SignalBack, PhasePaused},
		{PhasePaused, SignalCollision, PhasePaused},
		{PhasePaused, SignalQuit, PhaseQuit},
		{PhaseGameOver, SignalRestart, PhasePlaying},
		{PhaseGameOver, SignalBack, PhaseMenu},
		{PhaseGameOver, SignalPauseToggle, PhaseGameOver},
		{PhaseGameOver, SignalQuit, PhaseQuit},
		{PhaseQuit, SignalStart, PhaseQuit},
		{PhaseQuit, SignalRestart, PhaseQuit},
	}
	for _, tc := range tests {
		if got := Transition(tc.from, tc.sig); got != tc.to {
			t.Errorf("Transition(%v, %d) = %v, expected %v", tc.from, tc.sig, got, tc.to)
		}
	}
}

func TestGameMenuDoesNotTick(t *testing.T) {
	g := New(WithSpawner(emptySpawner))
	g.Reset(testRuntime(1))

	res := g.Step(core.FrameOf(core.ActionJump))
	if res.Outcome != core.OutcomeContinue || g.Phase() != PhaseMenu {
		t.Errorf("menu step: outcome=%v phase=%v", res.Outcome, g.Phase())
	}
	if g.Session() != nil || res.State.Score != 0 {
		t.Error("menu should not run a session")
	}
}

func TestGamePauseAndResume(t *testing.T) {
	g := New(WithSpawner(emptySpawner))
	g.Reset(testRuntime(1))
	g.Start(ArchetypeDino)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(core.FrameOf(core.ActionPause))
	if res.Outcome != core.OutcomePaused || !res.State.Paused {
		t.Fatalf("pause: %+v", res)
	}
	for i := 0; i < 5; i++ {
		res = g.Step(core.FrameOf(core.ActionJump))
		if res.Outcome != core.OutcomePaused || res.State.Score != 10 {
			t.Fatalf("paused step advanced: %+v", res)
		}
	}

	// Resuming does not consume a tick
	res = g.Step(core.FrameOf(core.ActionPause))
	if res.Outcome != core.OutcomeContinue || res.State.Score != 10 {
		t.Fatalf("resume: %+v", res)
	}
	res = g.Step(core.NewInputFrame())
	if res.State.Score != 11 {
		t.Errorf("score after resume = %d, expected 11", res.State.Score)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New(WithSpawner(crashSpawner))
	g.Reset(testRuntime(1))
	g.Start(ArchetypePterodactyl)

	res := g.Step(core.NewInputFrame())
	if res.Outcome != core.OutcomeGameOver || res.FinalScore != 0 || !res.Has(core.EventCrashed) {
		t.Fatalf("expected game over, got %+v", res)
	}

	res = g.Step(core.NewInputFrame())
	if res.Outcome != core.OutcomeGameOver || res.Has(core.EventCrashed) {
		t.Errorf("idle game over step: %+v", res)
	}

	run := res.State.Run
	res = g.Step(core.FrameOf(core.ActionRestart))
	if res.Outcome != core.OutcomeContinue || g.Phase() != PhasePlaying {
		t.Fatalf("restart: outcome=%v phase=%v", res.Outcome, g.Phase())
	}
	if g.Archetype() != ArchetypePterodactyl {
		t.Errorf("restart changed archetype to %v", g.Archetype())
	}
	if res.State.Run != run+1 || res.State.Score != 0 {
		t.Errorf("restart state: %+v", res.State)
	}

	// Jump also restarts from the game over screen
	g.Step(core.NewInputFrame())
	g.Step(core.FrameOf(core.ActionJump))
	if g.Phase() != PhasePlaying {
		t.Errorf("jump did not restart, phase=%v", g.Phase())
	}
}

func TestGameOverBackToMenu(t *testing.T) {
	g := New(WithSpawner(crashSpawner))
	g.Reset(testRuntime(1))
	g.Start(ArchetypeCactus)
	g.Step(core.NewInputFrame())

	g.Step(core.FrameOf(core.ActionBack))
	if g.Phase() != PhaseMenu || g.Session() != nil {
		t.Fatalf("back: phase=%v", g.Phase())
	}

	g.Start(ArchetypeDino)
	if g.Phase() != PhasePlaying || g.Archetype() != ArchetypeDino {
		t.Errorf("start from menu: phase=%v archetype=%v", g.Phase(), g.Archetype())
	}
}

func TestGameQuitFromEveryPhase(t *testing.T) {
	setups := map[string]func(g *Game){
		"menu":    func(g *Game) {},
		"playing": func(g *Game) { g.Start(ArchetypeDino) },
		"paused": func(g *Game) {
			g.Start(ArchetypeDino)
			g.Step(core.FrameOf(core.ActionPause))
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g := New(WithSpawner(emptySpawner))
			g.Reset(testRuntime(1))
			setup(g)
			res := g.Step(core.FrameOf(core.ActionQuit))
			if res.Outcome != core.OutcomeQuit || g.Phase() != PhaseQuit {
				t.Errorf("quit: outcome=%v phase=%v", res.Outcome, g.Phase())
			}
			if res := g.Step(core.FrameOf(core.ActionRestart)); res.Outcome != core.OutcomeQuit {
				t.Error("quit should be terminal")
			}
		})
	}
}

func TestGameBestNeverDecreases(t *testing.T) {
	w := &recordingWriter{}
	g := New(WithSpawner(crashSpawner), WithBest(100), WithBestWriter(w))
	g.Reset(testRuntime(1))
	g.Start(ArchetypeDino)

	res := g.Step(core.NewInputFrame())
	if res.State.Best != 100 {
		t.Errorf("best = %d after a short run, expected 100", res.State.Best)
	}
	if len(w.scores) != 0 {
		t.Errorf("unexpected best writes: %v", w.scores)
	}

	g2 := New(WithSpawner(emptySpawner), WithBestWriter(w))
	g2.Reset(testRuntime(1))
	g2.Start(ArchetypeDino)
	for i := 0; i < 20; i++ {
		g2.Step(core.NewInputFrame())
	}
	if g2.State().Best != 20 || len(w.scores) != 20 {
		t.Errorf("best=%d writes=%d", g2.State().Best, len(w.scores))
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%23 == 0:
			inputs[i].Set(core.ActionJump)
		case i%7 == 0:
			inputs[i].Set(core.ActionDuck)
		}
	}

	run := func() []Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		g.Start(ArchetypeDino)
		var snaps []Snapshot
		for _, in := range inputs {
			res := g.Step(in)
			snaps = append(snaps, g.Session().Snapshot())
			if res.Outcome == core.OutcomeGameOver {
				break
			}
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds and inputs produced different runs")
	}
}

func TestGameRender(t *testing.T) {
	g := New(WithSpawner(emptySpawner), WithBest(7))
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "DINO RUNNER") {
		t.Error("menu frame should show the title")
	}

	g.Start(ArchetypeDino)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	hud := screen.Row(0)
	if !strings.Contains(hud, "High Score: 7") || !strings.Contains(hud, "Points: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(screen.String(), DinoHead) {
		t.Error("character not drawn")
	}
	if !strings.ContainsRune(screen.String(), GroundChar) {
		t.Error("ground not drawn")
	}

	g.Step(core.FrameOf(core.ActionPause))
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "PAUSED") || !strings.Contains(out, "Press P to resume, Q to quit") {
		t.Error("pause overlay missing")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := New(WithSpawner(crashSpawner))
	g.Reset(testRuntime(1))
	g.Start(ArchetypeDino)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 0") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}
