package drill

// Countdown durations in units (one tick per unit) and the fixed display
// delays around item resolution.
const (
	QuizItemUnits     = 10
	FlashItemUnits    = 5
	GraceUnits        = 1 // expired display state before auto-advance
	QuizFeedbackUnits = 2 // answer feedback before the next question
)

// TimerEvent is what a Countdown reports for one elapsed unit.
type TimerEvent int

const (
	TimerTick        TimerEvent = iota // a unit elapsed, time remains
	TimerExpired                       // reached zero; grace display begins
	TimerAutoAdvance                   // grace elapsed; item must auto-resolve
	TimerDone                          // already finished; nothing to report
)

// Countdown is the per-item deadline clock. One Countdown is armed per
// presented item and discarded on resolution; re-arming for the next item
// always means a fresh Countdown at full duration. Cancellation is the
// controller's job: it bumps its generation token so ticks addressed to a
// discarded Countdown are never delivered.
type Countdown struct {
	remaining int
	grace     bool
	done      bool
}

// NewCountdown arms a fresh countdown of the given duration.
func NewCountdown(units int) *Countdown {
	return &Countdown{remaining: units}
}

// Tick advances the clock by one unit. It emits TimerExpired exactly once,
// holds the expired display state for GraceUnits, then emits
// TimerAutoAdvance exactly once and goes inert.
func (c *Countdown) Tick() TimerEvent {
	if c.done {
		return TimerDone
	}
	if c.grace {
		c.done = true
		return TimerAutoAdvance
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.grace = true
		return TimerExpired
	}
	return TimerTick
}

// Remaining returns the units left on the clock (0 during grace).
func (c *Countdown) Remaining() int {
	return c.remaining
}

// InGrace reports whether the clock is in the expired display state.
func (c *Countdown) InGrace() bool {
	return c.grace && !c.done
}
