// Package timer tracks drill time as either a countdown against a limit or an
// open-ended stopwatch. The display value is always re-derived from the
// session start instant and the wall clock, never accumulated tick by tick,
// so a remount (resume from snapshot, window re-init) picks up exactly where
// the wall clock says it should.
package timer

import "time"

// Mode selects how the engine interprets elapsed time.
type Mode int

const (
	// ModeCountdown counts down from a fixed limit toward zero.
	ModeCountdown Mode = iota
	// ModeStopwatch counts up without bound and never expires.
	ModeStopwatch
)

// Level classifies how close a countdown is to running out.
type Level int

const (
	LevelNormal Level = iota
	LevelWarning
	LevelCritical
)

const (
	warningSeconds  = 120
	criticalSeconds = 60
)

// Compute returns the display seconds for the given inputs: remaining time in
// countdown mode (limitSeconds > 0), elapsed time otherwise. A zero startedAt
// means the session has not begun, so countdown shows the full limit and
// stopwatch shows zero. Negative limits are a caller contract violation.
func Compute(startedAt time.Time, limitSeconds int, now time.Time) int {
	if startedAt.IsZero() {
		if limitSeconds > 0 {
			return limitSeconds
		}
		return 0
	}
	elapsed := int(now.Sub(startedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if limitSeconds > 0 {
		remaining := limitSeconds - elapsed
		if remaining < 0 {
			remaining = 0
		}
		return remaining
	}
	return elapsed
}

// LevelFor classifies remaining seconds. Stopwatch sessions (limitSeconds <= 0)
// are always LevelNormal.
func LevelFor(limitSeconds, remaining int) Level {
	if limitSeconds <= 0 {
		return LevelNormal
	}
	switch {
	case remaining <= criticalSeconds:
		return LevelCritical
	case remaining <= warningSeconds:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// Engine is the timer state machine for one drill session. It is not safe for
// concurrent use; the owning UI drives it from its single event loop.
type Engine struct {
	startedAt time.Time
	limit     int
	seconds   int
	running   bool
	expired   bool
	notified  bool
	onExpire  func()
	now       func() time.Time
}

// New creates an engine for a session. limitSeconds > 0 selects countdown
// mode, anything else is a stopwatch. onExpire (may be nil) is invoked at
// most once per session, the first time a countdown reaches zero. The engine
// starts running when startedAt is set; a zero startedAt leaves it idle until
// the session is (re)configured.
func New(startedAt time.Time, limitSeconds int, onExpire func()) *Engine {
	e := &Engine{
		startedAt: startedAt,
		limit:     limitSeconds,
		onExpire:  onExpire,
		now:       time.Now,
	}
	e.seconds = Compute(startedAt, limitSeconds, e.now())
	e.running = !startedAt.IsZero()
	return e
}

// SetClock replaces the wall-clock source. Tests use this to pin "now".
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
	e.seconds = Compute(e.startedAt, e.limit, e.now())
}

// Mode reports countdown or stopwatch.
func (e *Engine) Mode() Mode {
	if e.limit > 0 {
		return ModeCountdown
	}
	return ModeStopwatch
}

// Seconds is the current display value: remaining in countdown mode, elapsed
// in stopwatch mode.
func (e *Engine) Seconds() int { return e.seconds }

// Running reports whether ticks currently advance the display.
func (e *Engine) Running() bool { return e.running }

// Expired reports whether a countdown has run out. Terminal once set.
func (e *Engine) Expired() bool { return e.expired }

// Limit returns the configured limit in seconds, 0 for stopwatch sessions.
func (e *Engine) Limit() int { return e.limit }

// StartedAt returns the session start instant (zero if not started).
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// Level classifies the current display value.
func (e *Engine) Level() Level {
	return LevelFor(e.limit, e.seconds)
}

// Tick re-derives the display value from the wall clock. When a countdown
// reaches zero it stops, flips to expired, and fires the expiry callback;
// later ticks are no-ops and never re-fire it. Any error the callback wants
// to surface is its own business, the engine does not retry or suppress.
func (e *Engine) Tick() {
	if !e.running || e.expired {
		return
	}
	e.seconds = Compute(e.startedAt, e.limit, e.now())
	if e.limit > 0 && e.seconds == 0 {
		e.expired = true
		e.running = false
		if !e.notified {
			e.notified = true
			if e.onExpire != nil {
				e.onExpire()
			}
		}
	}
}

// Pause stops ticks from advancing the display. The stored value stays as-is.
func (e *Engine) Pause() {
	e.running = false
}

// Resume restarts the ticks. It refuses to restart an expired or never
// started session, and it does not touch startedAt: the next Tick re-derives
// the value from the wall clock, so time spent paused still counts against a
// countdown.
func (e *Engine) Resume() {
	if e.expired || e.startedAt.IsZero() {
		return
	}
	e.running = true
}
