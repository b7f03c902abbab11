package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForPanel = 80  // Minimum width to show the stats panel
	panelWidth       = 24  // Width of the stats panel
	maxScores        = 100 // Max scores to load
)

// scoreFilter is one tab of the scoreboard.
type scoreFilter struct {
	label      string
	difficulty string
	all        bool
}

// scoreFilters returns the "all" tab followed by one tab per difficulty.
func scoreFilters() []scoreFilter {
	filters := []scoreFilter{{label: "all", all: true}}
	for _, d := range Difficulties {
		filters = append(filters, scoreFilter{label: difficultyLabel(d), difficulty: d})
	}
	return filters
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next level"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for one game's high scores,
// filtered by the difficulty each round was played on.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	filters   []scoreFilter
	filter    int
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
	showPanel bool // Whether to show the stats panel
}

// NewScoreboardModel creates a scoreboard for gameID.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:    gameID,
		title:     registry.Title(gameID),
		store:     store,
		filters:   scoreFilters(),
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showPanel: width >= minWidthForPanel,
	}
	if m.title == "" {
		m.title = gameID
	}

	m.table = m.createTable()
	m.loadScores()
	m.loadStats()

	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showPanel {
		tableWidth -= panelWidth + 3 // Panel + border + gap
	}
	if extra := tableWidth - 44; extra > 0 {
		columns[3].Width += min(extra, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the scores for the current filter.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		f := m.filters[m.filter]

		var scores []storage.ScoreEntry
		var err error
		if f.all {
			scores, err = m.store.TopScores(m.gameID, maxScores)
		} else {
			scores, err = m.store.TopScoresForDifficulty(m.gameID, f.difficulty, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
	}
	m.updateTableRows()
}

// loadStats loads the aggregate stats shown in the panel.
func (m *ScoreboardModel) loadStats() {
	m.stats = nil
	if m.store == nil {
		return
	}
	if stats, err := m.store.GetGameStats(m.gameID); err == nil {
		m.stats = stats
	}
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			difficultyLabel(s.Difficulty),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycleFilter moves the filter by delta tabs, wrapping around.
func (m *ScoreboardModel) cycleFilter(delta int) {
	n := len(m.filters)
	m.filter = ((m.filter+delta)%n + n) % n
	m.loadScores()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.cycleFilter(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.cycleFilter(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPanel = m.width >= minWidthForPanel
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(centerStyled(titleStyle.Render("HIGH SCORES - "+m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showPanel {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.renderPanel())
	}
	b.WriteString(centerStyled(content, m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the difficulty filter tabs.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.label)
		} else {
			tabs[i] = tabStyle.Render(f.label)
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		// Too narrow for every tab: show the current one with arrows
		line = fmt.Sprintf("< %s >", m.filters[m.filter].label)
	}
	return line
}

// renderPanel renders the aggregate stats for the game.
func (m ScoreboardModel) renderPanel() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(panelWidth).
		Padding(0, 1)

	var p strings.Builder
	p.WriteString("Stats\n")
	p.WriteString(strings.Repeat("-", panelWidth-4))
	p.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		p.WriteString("No rounds yet")
		return panelStyle.Render(p.String())
	}

	fmt.Fprintf(&p, "Best     %d\n", m.stats.HighScore)
	fmt.Fprintf(&p, "Rounds   %d\n", m.stats.GamesCount)
	fmt.Fprintf(&p, "Average  %.1f\n", m.stats.AvgScore)
	fmt.Fprintf(&p, "Total    %d\n", m.stats.TotalScore)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&p, "Last     %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return panelStyle.Render(p.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nSurvive a round to set a high score!")
	}

	return m.table.View()
}

// Filter returns the label of the active difficulty tab.
func (m ScoreboardModel) Filter() string {
	return m.filters[m.filter].label
}

// Scores returns the scores shown for the active tab.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
