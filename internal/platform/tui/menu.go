package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

// Difficulties is the cycle offered by the menu. The empty entry keeps
// the config file's own difficulty section.
var Difficulties = []string{"", "easy", "normal", "hard", "fixed"}

// difficultyLabel returns the menu text for a difficulty entry.
func difficultyLabel(d string) string {
	if d == "" {
		return "config"
	}
	return d
}

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // Index into Difficulties
	highScores     map[string]int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. difficulty preselects an entry
// of Difficulties; unknown values fall back to the config entry.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	highScores := make(map[string]int, len(games))

	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil {
				highScores[g.ID] = hs
			}
		}
	}

	m := MenuModel{
		items:      items,
		highScores: highScores,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(Difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		if len(m.items) == 0 {
			return m, nil
		}
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("D O D G E   T H E   C R E E P S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if hs := m.highScores[item.GameID]; hs > 0 {
			line = fmt.Sprintf("%s  (best %d)", line, hs)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", difficultyLabel(m.Difficulty())), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Highlighted returns the game ID under the cursor, or "" if the list is empty.
func (m MenuModel) Highlighted() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].GameID
}

// Difficulty returns the chosen preset; empty means as configured.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text that already carries ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu. GameID is the game to
// play, or the game whose scores to show when WantsScoreboard is set.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		result.GameID = m.Highlighted()
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
