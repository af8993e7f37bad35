package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

type fakeLister struct {
	entries []storage.ScoreEntry
	queries []string
}

func (f *fakeLister) TopScores(character string, limit int) ([]storage.ScoreEntry, error) {
	f.queries = append(f.queries, character)
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if character == "" || e.Character == character {
			out = append(out, e)
		}
	}
	return out, nil
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	return next.(App), cmd
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return a
}

func TestPickerSelectsTypedCharacter(t *testing.T) {
	tests := []struct {
		typed string
		want  dino.Archetype
	}{
		{"cactus", dino.ArchetypeCactus},
		{"Pterodactyl", dino.ArchetypePterodactyl},
		{"dino", dino.ArchetypeDino},
		{"trex", dino.ArchetypeDino},
		{"", dino.ArchetypeDino},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			m := NewPickerModel(80, 24, 0)
			if tt.typed != "" {
				next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.typed)})
				m = next.(PickerModel)
			}
			if _, ok := m.Selected(); ok {
				t.Fatal("nothing should be selected before enter")
			}
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			got, ok := next.(PickerModel).Selected()
			if !ok || got != tt.want {
				t.Errorf("Selected() = (%v, %v), want (%v, true)", got, ok, tt.want)
			}
		})
	}
}

func TestPickerCapsTypedName(t *testing.T) {
	m := NewPickerModel(80, 24, 0)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.Repeat("x", 20))})

	if v := next.(PickerModel).input.Value(); len(v) != 15 {
		t.Errorf("typed name = %q (%d chars), want 15 chars", v, len(v))
	}
}

func TestPickerCyclesCharacters(t *testing.T) {
	m := NewPickerModel(80, 24, 0)
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	next, _ := m.Update(up)
	if v := next.(PickerModel).input.Value(); v != "pterodactyl" {
		t.Errorf("up from empty = %q, want pterodactyl", v)
	}

	want := []string{"dino", "cactus", "pterodactyl", "dino"}
	for i, w := range want {
		next, _ := m.Update(down)
		m = next.(PickerModel)
		if v := m.input.Value(); v != w {
			t.Errorf("down #%d = %q, want %q", i+1, v, w)
		}
	}
}

func TestPickerViewShowsBestAndCharacters(t *testing.T) {
	view := NewPickerModel(80, 24, 321).View()
	for _, want := range []string{"High Score: 321", "dino", "cactus", "pterodactyl"} {
		if !strings.Contains(view, want) {
			t.Errorf("picker view missing %q", want)
		}
	}
}

func TestAppPickerToGame(t *testing.T) {
	deps, _, _ := testDeps()
	a := NewApp(deps, testRuntime(), nil)
	if a.screen != screenPicker {
		t.Fatal("app should open on the picker")
	}

	a = typeText(t, a, "cactus")
	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.screen != screenGame {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if a.game.Game().Archetype() != dino.ArchetypeCactus {
		t.Errorf("archetype = %v, want cactus", a.game.Game().Archetype())
	}
}

func TestAppStartSkipsPicker(t *testing.T) {
	deps, _, _ := testDeps()
	start := dino.ArchetypePterodactyl
	a := NewApp(deps, testRuntime(), &start)
	if a.screen != screenGame || a.game.Game().Archetype() != start {
		t.Fatal("start archetype should go straight to the game")
	}
}

func TestAppLoadsBestOnce(t *testing.T) {
	deps, _, _ := testDeps()
	deps.Reader = fixedReader(77)
	a := NewApp(deps, testRuntime(), nil)
	if a.Best() != 77 {
		t.Errorf("best = %d, want 77", a.Best())
	}
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.game.State().Best != 77 {
		t.Errorf("game best = %d, want 77", a.game.State().Best)
	}
}

func TestAppGameBackToPickerCarriesBest(t *testing.T) {
	deps, _, _ := testDeps()
	start := dino.ArchetypeDino
	a := NewApp(deps, testRuntime(), &start)
	firstGen := a.tickGen

	for range 1000 {
		a, _ = send(t, a, TickMsg{ID: a.tickGen})
		if a.game.State().GameOver {
			break
		}
	}
	if !a.game.State().GameOver {
		t.Fatal("run never ended")
	}
	best := a.game.State().Best
	if best == 0 {
		t.Fatal("a finished run should set a best")
	}

	a, _ = send(t, a, runeKey('b'))
	a, _ = send(t, a, TickMsg{ID: a.tickGen})
	if a.screen != screenPicker {
		t.Fatal("back should return to the picker")
	}
	if a.Best() != best {
		t.Errorf("app best = %d, want %d", a.Best(), best)
	}
	if !strings.Contains(a.View(), "High Score:") {
		t.Error("picker should show the carried best")
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.tickGen == firstGen {
		t.Fatal("new game needs a new tick generation")
	}
	ticks := a.game.Game().Session().Ticks()
	a, _ = send(t, a, TickMsg{ID: firstGen, Time: time.Now()})
	if a.game.Game().Session().Ticks() != ticks {
		t.Error("tick from the previous game advanced the new one")
	}
	if a.game.State().Best != best {
		t.Errorf("new game best = %d, want %d", a.game.State().Best, best)
	}
}

func TestAppScoreboardRoundTrip(t *testing.T) {
	deps, _, _ := testDeps()
	board := &fakeLister{entries: []storage.ScoreEntry{
		{ID: 1, Character: "dino", Score: 90, CreatedAt: time.Now()},
		{ID: 2, Character: "cactus", Score: 40, CreatedAt: time.Now()},
	}}
	deps.Board = board
	a := NewApp(deps, testRuntime(), nil)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.screen != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(a.View(), "HIGH SCORES - All") {
		t.Error("scoreboard should open on the All tab")
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if got := board.queries[len(board.queries)-1]; got != "dino" {
		t.Errorf("second tab queried %q, want dino", got)
	}
	if len(a.board.scores) != 1 || a.board.scores[0].Score != 90 {
		t.Errorf("dino tab scores = %+v", a.board.scores)
	}

	a, _ = send(t, a, runeKey('b'))
	if a.screen != screenPicker {
		t.Fatal("b should return to the picker")
	}
}

func TestAppQuitFromPicker(t *testing.T) {
	deps, _, _ := testDeps()
	a := NewApp(deps, testRuntime(), nil)
	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEscape})
	if !a.IsQuitting() || cmd == nil {
		t.Error("esc on the picker should quit")
	}
	if a.View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "Points: 42", core.ColorHUD)
	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	if !strings.Contains(out, "Points: 42") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("too long", 3); got != "too long" {
		t.Errorf("centerText should not cut text, got %q", got)
	}
}
