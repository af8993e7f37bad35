package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

const scoreboardLimit = 100

// ScoreLister loads ranked runs. An empty character means all characters.
type ScoreLister interface {
	TopScores(character string, limit int) ([]storage.ScoreEntry, error)
}

// scoreTab filters the board to one character, or all when Character is "".
type scoreTab struct {
	Character string
	Title     string
}

func scoreTabs() []scoreTab {
	tabs := []scoreTab{{Title: "All"}}
	for _, a := range dino.Archetypes() {
		tabs = append(tabs, scoreTab{Character: a.String(), Title: a.Title()})
	}
	return tabs
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// boardKeys are the scoreboard key bindings.
type boardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Up, k.Down, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next character")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev character")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs, one tab per character.
type ScoreboardModel struct {
	lister    ScoreLister // May be nil
	tabs      []scoreTab
	active    int
	scores    []storage.ScoreEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      boardKeys
	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewScoreboardModel creates a scoreboard opened on the All tab.
func NewScoreboardModel(lister ScoreLister, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		lister: lister,
		tabs:   scoreTabs(),
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 14
	if m.width >= 72 {
		dateW = 20
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Character", Width: 12},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		// Title, tabs, frame and help take about nine rows
		table.WithHeight(max(m.height-9, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// reload queries the active tab and refills the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.loadErr = nil, nil
	if m.lister != nil {
		m.scores, m.loadErr = m.lister.TopScores(m.tabs[m.active].Character, scoreboardLimit)
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			s.Character,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders title, tab bar, table and help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES - "+m.tabs[m.active].Title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabBar(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.body())))
	b.WriteString("\n")
	if n := len(m.scores); n > 0 {
		b.WriteString(centerText(fmt.Sprintf("%d runs, best %d", n, m.scores[0].Score), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// tabBar renders every tab, or only the active one when they do not fit.
func (m ScoreboardModel) tabBar() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		style := boardTabStyle
		if i == m.active {
			style = boardActiveTab
		}
		parts[i] = style.Render(tab.Title)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(bar) > m.width-2 {
		return boardActiveTab.Render("< " + m.tabs[m.active].Title + " >")
	}
	return bar
}

func (m ScoreboardModel) body() string {
	switch {
	case m.loadErr != nil:
		return boardErrStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardNoteStyle.Render("No scores recorded yet.\nGo for a run to set a high score!")
	default:
		return m.table.View()
	}
}

// IsGoingBack reports whether the player left for the picker.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own; leaving it ends the program.
func RunScoreboard(lister ScoreLister, width, height int) error {
	_, err := tea.NewProgram(standaloneScoreboard{NewScoreboardModel(lister, width, height)}, tea.WithAltScreen()).Run()
	return err
}

type standaloneScoreboard struct {
	ScoreboardModel
}

func (s standaloneScoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	s.ScoreboardModel = next.(ScoreboardModel)
	if s.IsGoingBack() {
		return s, tea.Quit
	}
	return s, cmd
}
