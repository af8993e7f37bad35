package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

var characterBlurbs = map[dino.Archetype]string{
	dino.ArchetypeDino:        "the classic, runs and ducks",
	dino.ArchetypeCactus:      "never moves a muscle",
	dino.ArchetypePterodactyl: "flaps backwards through the desert",
}

// PickerModel lets the player type the name of a character.
type PickerModel struct {
	input          textinput.Model
	keyMapper      *KeyMapper
	width          int
	height         int
	best           int
	selected       *dino.Archetype
	openScoreboard bool // True if user pressed Tab for scoreboard
	quitting       bool
}

// pickerCharLimit caps how many characters can be typed.
const pickerCharLimit = 15

// NewPickerModel creates a character picker.
func NewPickerModel(width, height, best int) PickerModel {
	names := make([]string, 0, len(dino.Archetypes()))
	for _, a := range dino.Archetypes() {
		names = append(names, a.String())
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = dino.ArchetypeDino.String()
	ti.CharLimit = pickerCharLimit
	ti.Width = 20
	ti.SetSuggestions(names)
	ti.ShowSuggestions = true
	// Tab opens the scoreboard, so accept completions with the right arrow
	ti.KeyMap.AcceptSuggestion.SetKeys("right")
	ti.Focus()

	return PickerModel{
		input:     ti,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
		best:      best,
	}
}

// Init starts the cursor blink.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit

		case MenuActionSelect:
			a := dino.SelectArchetype(m.input.Value())
			m.selected = &a
			return m, nil

		case MenuActionScoreboard:
			m.openScoreboard = true
			return m, nil

		case MenuActionUp:
			m.cycle(-1)
			return m, nil

		case MenuActionDown:
			m.cycle(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycle replaces the typed name with the next or previous character.
func (m *PickerModel) cycle(dir int) {
	all := dino.Archetypes()
	idx := -1
	if a, ok := dino.ParseArchetype(m.input.Value()); ok {
		idx = int(a)
	}
	switch {
	case idx < 0 && dir < 0:
		idx = len(all) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + dir + len(all)) % len(all)
	}
	m.input.SetValue(all[idx].String())
	m.input.CursorEnd()
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  D I N O   R U N N E R  "), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Type a character and press Enter", m.width))
	b.WriteString("\n\n")
	for _, a := range dino.Archetypes() {
		line := nameStyle.Render(fmt.Sprintf("%-12s", a.String())) + dimStyle.Render(characterBlurbs[a])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")

	controls := "Enter: Play  |  Up/Down: Cycle  |  Tab: Scores  |  Esc: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen archetype, if any. Unknown names resolve to
// the dino.
func (m PickerModel) Selected() (dino.Archetype, bool) {
	if m.selected == nil {
		return dino.ArchetypeDino, false
	}
	return *m.selected, true
}

// WantsScoreboard returns true if user requested scoreboard.
func (m PickerModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}
