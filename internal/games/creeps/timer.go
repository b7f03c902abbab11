package creeps

import "github.com/vovakirdan/dodge-creeps/internal/config"

// TimerID names one of the game's timers.
type TimerID int

const (
	TimerStart           TimerID = iota // One-shot: Get Ready window before play
	TimerScore                          // Repeating: +1 score
	TimerMob                            // Repeating: spawn one mob
	TimerGetReadyMessage                // HUD one-shot: hide "Get Ready"
	TimerStartMessage                   // HUD one-shot: show title after "Game Over"
	TimerStartButton                    // HUD one-shot: show the start button
	timerCount
)

// String returns the timer's name.
func (id TimerID) String() string {
	switch id {
	case TimerStart:
		return "start"
	case TimerScore:
		return "score"
	case TimerMob:
		return "mob"
	case TimerGetReadyMessage:
		return "get_ready_message"
	case TimerStartMessage:
		return "start_message"
	case TimerStartButton:
		return "start_button"
	default:
		return "unknown"
	}
}

// Timer counts down WaitTime seconds of simulated time.
type Timer struct {
	WaitTime float64
	OneShot  bool
	left     float64
	running  bool
}

// NewTimer creates a stopped timer.
func NewTimer(wait float64, oneShot bool) *Timer {
	return &Timer{WaitTime: wait, OneShot: oneShot}
}

// Start (re)arms the timer from its full wait time.
func (t *Timer) Start() {
	t.left = t.WaitTime
	t.running = true
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	t.running = false
	t.left = 0
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool {
	return t.running
}

// TimeLeft returns the seconds until the next expiry, or 0 when stopped.
func (t *Timer) TimeLeft() float64 {
	if !t.running {
		return 0
	}
	return t.left
}

// Advance moves the timer forward by dt seconds and reports whether it
// expired. A timer fires at most once per call. Repeating timers rearm
// carrying the overshoot; one-shot timers stop.
func (t *Timer) Advance(dt float64) bool {
	if !t.running {
		return false
	}
	t.left -= dt
	if t.left > 0 {
		return false
	}

	if t.OneShot {
		t.Stop()
		return true
	}

	t.left += t.WaitTime
	if t.left <= 0 {
		// Interval shorter than a tick; never fall behind by more than one
		t.left = t.WaitTime
	}
	return true
}

// Timers is the game's timer table, indexed by TimerID.
type Timers struct {
	table [timerCount]*Timer
}

// NewTimers builds the timer table from configured wait times.
func NewTimers(cfg config.CreepsTimers) *Timers {
	ts := &Timers{}
	ts.table[TimerStart] = NewTimer(cfg.Start, true)
	ts.table[TimerScore] = NewTimer(cfg.Score, false)
	ts.table[TimerMob] = NewTimer(cfg.Mob, false)
	ts.table[TimerGetReadyMessage] = NewTimer(cfg.GetReadyMessage, true)
	ts.table[TimerStartMessage] = NewTimer(cfg.StartMessage, true)
	ts.table[TimerStartButton] = NewTimer(cfg.StartButton, true)
	return ts
}

// Get returns the timer for id.
func (ts *Timers) Get(id TimerID) *Timer {
	return ts.table[id]
}

// advance steps every timer in TimerID order and calls fire for each expiry.
func (ts *Timers) advance(dt float64, fire func(TimerID)) {
	for id := TimerID(0); id < timerCount; id++ {
		if ts.table[id].Advance(dt) {
			fire(id)
		}
	}
}

// deferredQueue holds calls that must run after the current physics step.
type deferredQueue struct {
	calls []func()
}

// Defer schedules fn for the next flush.
func (q *deferredQueue) Defer(fn func()) {
	q.calls = append(q.calls, fn)
}

// Pending returns the number of queued calls.
func (q *deferredQueue) Pending() int {
	return len(q.calls)
}

// Flush runs queued calls in order, including any queued while flushing.
func (q *deferredQueue) Flush() {
	for len(q.calls) > 0 {
		calls := q.calls
		q.calls = nil
		for _, fn := range calls {
			fn()
		}
	}
}
