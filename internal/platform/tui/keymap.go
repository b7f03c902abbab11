package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// quitKeys end the program from any screen.
var quitKeys = map[string]bool{"ctrl+c": true, "q": true}

// gameKeys binds key names to in-game actions. WASD, arrows and vim
// keys all steer.
var gameKeys = map[string]core.Action{
	"w": core.ActionUp, "up": core.ActionUp, "k": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown, "j": core.ActionDown,
	"a": core.ActionLeft, "left": core.ActionLeft, "h": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight, "l": core.ActionRight,
	"enter": core.ActionConfirm, " ": core.ActionConfirm,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
}

// MenuAction is a menu-level intent.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft  // Previous difficulty
	MenuActionRight // Next difficulty
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// menuActions maps the steering actions onto menu navigation, so the
// menu and the game share one set of bindings.
var menuActions = map[core.Action]MenuAction{
	core.ActionUp:      MenuActionUp,
	core.ActionDown:    MenuActionDown,
	core.ActionLeft:    MenuActionLeft,
	core.ActionRight:   MenuActionRight,
	core.ActionConfirm: MenuActionSelect,
	core.ActionBack:    MenuActionBack,
}

// KeyMapper turns Bubble Tea key messages into actions.
type KeyMapper struct{}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action bound to msg and whether msg is a quit key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if quitKeys[key] {
		return core.ActionQuit, true
	}
	return gameKeys[key], false
}

// MapKeyToFrame records msg in frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MapKeyToMenuAction translates msg for the menu. Tab opens the scoreboard;
// pause and restart mean nothing there.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if msg.String() == "tab" {
		return MenuActionScoreboard
	}
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return MenuActionQuit
	}
	return menuActions[action]
}
