// Package timer provides game-time clocks and countdown timers.
package timer

// Clock is the simulation time source. It only moves when Advance is called,
// so timers are deterministic under test.
type Clock struct {
	now float64
}

// Now returns the elapsed game time in seconds.
func (c *Clock) Now() float64 { return c.now }

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) { c.now += dt }

// Timer measures a period of game time. A zero period means stopped.
type Timer struct {
	clock      *Clock
	period     float64
	cycleStart float64
	cyclic     bool
}

// New returns a stopped timer reading from clock.
func New(clock *Clock) Timer {
	return Timer{clock: clock}
}

// Start begins a one-shot period.
func (t *Timer) Start(period float64) {
	t.StartCyclic(period, false)
}

// StartCyclic begins a period that restarts itself every time Check fires.
func (t *Timer) StartCyclic(period float64, cyclic bool) {
	t.period = period
	t.cyclic = cyclic
	t.cycleStart = t.clock.Now()
}

// Stop clears the timer.
func (t *Timer) Stop() {
	t.period = 0
}

// Check reports whether the period has elapsed. A one-shot timer stops
// itself; a cyclic one restarts.
func (t *Timer) Check() bool {
	if t.period == 0 {
		return false
	}
	if t.clock.Now()-t.cycleStart >= t.period {
		if t.cyclic {
			t.cycleStart = t.clock.Now()
		} else {
			t.period = 0
		}
		return true
	}
	return false
}

// Started reports whether the timer is running and has time left.
func (t *Timer) Started() bool {
	return t.period != 0 && t.TimeLeft() > 0
}

func (t *Timer) Period() float64 { return t.period }

func (t *Timer) TimeGone() float64 {
	return t.clock.Now() - t.cycleStart
}

func (t *Timer) TimeLeft() float64 {
	return t.period - t.TimeGone()
}
