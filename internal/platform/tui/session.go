package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

// sessionScreen is what a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel drives one SSH connection through menu, scoreboard and
// game inside a single Bubble Tea program. Children never quit the
// program; only a quit key ends the session.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	screen     sessionScreen
	menu       MenuModel
	scoreboard *ScoreboardModel
	game       *Model
	quitting   bool
}

// NewSessionModel starts a session on the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) SessionModel {
	return SessionModel{
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		menu:       NewMenuModel(store, cfg, difficulty),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config = m.config.Sized(wsm.Width, wsm.Height)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu rebuilds the menu so high scores from the last round show up.
func (m SessionModel) toMenu() (SessionModel, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config, m.difficulty)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (SessionModel, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}
	m.difficulty = m.menu.Difficulty()

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, m.menu.Highlighted(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, sb.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			return m.toMenu()
		}
		cfg := m.menu.Config()
		cfg.Seed = time.Now().UnixNano()

		gm := NewModel(game, m.store, cfg, m.difficulty)
		gm.embedded = true
		m.game = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
