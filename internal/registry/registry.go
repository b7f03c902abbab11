// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the CLI and the SSH server can build a game
// by name without importing it directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-step simulation driven by the platform. Implementations
// hold no terminal or Bubble Tea state; input arrives as an InputFrame and
// output goes into a core.Screen.
type Game interface {
	// ID is the stable key used on the command line and in the scores table.
	ID() string

	// Title is shown in menus and score listings.
	Title() string

	// Reset starts a fresh round sized to cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The factory is called once to read
// the title. Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the registered game IDs in order, for shell completion.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// Title returns the display title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}
