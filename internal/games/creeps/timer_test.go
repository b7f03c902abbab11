package creeps

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodge-creeps/internal/config"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimerOneShot(t *testing.T) {
	tm := NewTimer(1.0, true)

	if tm.Advance(5) {
		t.Fatal("stopped timer should not fire")
	}

	tm.Start()
	if tm.Advance(0.5) {
		t.Error("timer fired early")
	}
	if !tm.Advance(0.5) {
		t.Error("timer should fire at its wait time")
	}
	if tm.Running() {
		t.Error("one-shot timer should stop after firing")
	}
	if tm.Advance(1.0) {
		t.Error("one-shot timer fired twice")
	}
}

func TestTimerRepeatingCarriesOvershoot(t *testing.T) {
	tm := NewTimer(1.0, false)
	tm.Start()

	if tm.Advance(0.6) {
		t.Fatal("fired early")
	}
	if !tm.Advance(0.6) {
		t.Fatal("should fire after 1.2s")
	}
	if !tm.Running() {
		t.Fatal("repeating timer should keep running")
	}
	if !near(tm.TimeLeft(), 0.8) {
		t.Errorf("TimeLeft() = %g, expected 0.8", tm.TimeLeft())
	}
}

func TestTimerFiresAtMostOncePerAdvance(t *testing.T) {
	tm := NewTimer(0.1, false)
	tm.Start()

	if !tm.Advance(1.0) {
		t.Fatal("should fire")
	}
	if !near(tm.TimeLeft(), 0.1) {
		t.Errorf("TimeLeft() = %g, expected a full interval", tm.TimeLeft())
	}
}

func TestTimerStopAndRestart(t *testing.T) {
	tm := NewTimer(2.0, true)
	tm.Start()
	tm.Advance(1.5)
	tm.Start()

	if !near(tm.TimeLeft(), 2.0) {
		t.Errorf("Start() should rearm from the full wait time, got %g", tm.TimeLeft())
	}

	tm.Stop()
	if tm.Running() || tm.TimeLeft() != 0 {
		t.Error("Stop() should disarm the timer")
	}
}

func TestTimersAdvanceInIDOrder(t *testing.T) {
	ts := NewTimers(config.CreepsTimers{
		Start: 1, Score: 1, Mob: 1,
		GetReadyMessage: 1, StartMessage: 1, StartButton: 1,
	})
	for id := TimerID(0); id < timerCount; id++ {
		ts.Get(id).Start()
	}

	var fired []TimerID
	ts.advance(1.0, func(id TimerID) { fired = append(fired, id) })

	if len(fired) != int(timerCount) {
		t.Fatalf("fired %v, expected all timers", fired)
	}
	for i, id := range fired {
		if id != TimerID(i) {
			t.Errorf("fired[%d] = %s, expected %s", i, id, TimerID(i))
		}
	}
}

func TestNewTimersKinds(t *testing.T) {
	ts := NewTimers(config.DefaultCreepsConfig().Timers)

	tests := []struct {
		id      TimerID
		oneShot bool
		wait    float64
	}{
		{TimerStart, true, 2.0},
		{TimerScore, false, 1.0},
		{TimerMob, false, 0.5},
		{TimerGetReadyMessage, true, 2.0},
		{TimerStartMessage, true, 2.0},
		{TimerStartButton, true, 1.0},
	}

	for _, tc := range tests {
		tm := ts.Get(tc.id)
		if tm.OneShot != tc.oneShot || tm.WaitTime != tc.wait {
			t.Errorf("%s: got {wait %g, oneShot %v}, expected {%g, %v}",
				tc.id, tm.WaitTime, tm.OneShot, tc.wait, tc.oneShot)
		}
		if tm.Running() {
			t.Errorf("%s should start stopped", tc.id)
		}
	}
}

func TestDeferredQueue(t *testing.T) {
	q := &deferredQueue{}
	var order []int

	q.Defer(func() {
		order = append(order, 1)
		q.Defer(func() { order = append(order, 3) })
	})
	q.Defer(func() { order = append(order, 2) })

	if q.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2", q.Pending())
	}

	q.Flush()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, expected [1 2 3]", order)
	}
	if q.Pending() != 0 {
		t.Error("queue should be empty after Flush")
	}
}
