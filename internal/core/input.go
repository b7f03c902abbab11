package core

import "strings"

// Action is a player intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // Press the on-screen button
	ActionBack    // Leave to the menu
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions seen during one tick. It is a plain
// value; copying it snapshots the set.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set adds a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was seen this tick.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Len is the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	n := 0
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			n++
		}
	}
	return n
}

// String lists the actions, e.g. "[Left Up]".
func (f InputFrame) String() string {
	names := make([]string, 0, actionCount)
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
