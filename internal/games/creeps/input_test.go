package creeps

import (
	"testing"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func TestInputLatchHoldsPress(t *testing.T) {
	l := NewInputLatch(3)

	if a := l.Update(frame(core.ActionRight)); a.Right != 1 {
		t.Fatalf("press tick: %+v", a)
	}
	for i := 0; i < 2; i++ {
		if a := l.Update(frame()); a.Right != 1 {
			t.Fatalf("hold tick %d: %+v, expected right held", i, a)
		}
	}
	if a := l.Update(frame()); a.Right != 0 {
		t.Errorf("after hold: %+v, expected release", a)
	}
}

func TestInputLatchOppositeReleases(t *testing.T) {
	l := NewInputLatch(5)

	l.Update(frame(core.ActionLeft, core.ActionUp))
	a := l.Update(frame(core.ActionRight))

	if a.Left != 0 || a.Right != 1 {
		t.Errorf("axes = %+v, expected right to replace left", a)
	}
	if a.Up != 1 {
		t.Errorf("axes = %+v, expected up still held", a)
	}
}

func TestInputLatchReset(t *testing.T) {
	l := NewInputLatch(10)
	l.Update(frame(core.ActionDown))
	l.Reset()

	if a := l.Update(frame()); a != (Axes{}) {
		t.Errorf("axes after Reset = %+v, expected none", a)
	}
}

func TestInputLatchMinimumHold(t *testing.T) {
	l := NewInputLatch(0)

	if a := l.Update(frame(core.ActionUp)); a.Up != 1 {
		t.Error("a press should count for at least its own tick")
	}
	if a := l.Update(frame()); a.Up != 0 {
		t.Error("zero hold should release on the next tick")
	}
}
