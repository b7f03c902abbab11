package creeps

import "github.com/vovakirdan/dodge-creeps/internal/core"

// Directions tracked by the latch, in Axes field order.
const (
	dirRight = iota
	dirLeft
	dirDown
	dirUp
	dirCount
)

// InputLatch turns discrete key presses into held directions. Terminals
// report presses and auto-repeat but never releases, so a direction stays
// held for a few ticks after its last press.
type InputLatch struct {
	hold      int
	remaining [dirCount]int
}

// NewInputLatch creates a latch that holds each press for hold ticks.
func NewInputLatch(hold int) *InputLatch {
	if hold < 1 {
		hold = 1
	}
	return &InputLatch{hold: hold}
}

// Update consumes one input frame and returns the held axes for this tick.
// Pressing a direction releases its opposite immediately.
func (l *InputLatch) Update(in core.InputFrame) Axes {
	press := func(dir, opposite int) {
		l.remaining[dir] = l.hold
		l.remaining[opposite] = 0
	}
	if in.Has(core.ActionRight) {
		press(dirRight, dirLeft)
	}
	if in.Has(core.ActionLeft) {
		press(dirLeft, dirRight)
	}
	if in.Has(core.ActionDown) {
		press(dirDown, dirUp)
	}
	if in.Has(core.ActionUp) {
		press(dirUp, dirDown)
	}

	var held [dirCount]float64
	for i := range l.remaining {
		if l.remaining[i] > 0 {
			held[i] = 1
			l.remaining[i]--
		}
	}
	return Axes{Right: held[dirRight], Left: held[dirLeft], Down: held[dirDown], Up: held[dirUp]}
}

// Reset releases every direction.
func (l *InputLatch) Reset() {
	l.remaining = [dirCount]int{}
}
