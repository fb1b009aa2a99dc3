package core

import "time"

// Clock is the simulation time source. It advances only when Tick is
// called, once per fixed-rate loop iteration, so elapsed time is an exact
// function of the tick count.
type Clock struct {
	tickRate int
	ticks    uint64
}

// NewClock creates a clock for the given tick rate. Non-positive rates fall back to 60.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{tickRate: tickRate}
}

// Tick advances the clock by one tick.
func (c *Clock) Tick() {
	c.ticks++
}

// Ticks returns the number of ticks since the clock was created.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// TickRate returns the number of ticks per second.
func (c *Clock) TickRate() int {
	return c.tickRate
}

// Now returns the elapsed simulation time.
func (c *Clock) Now() time.Duration {
	//nolint:gosec // tick counts stay far below MaxInt64
	return time.Duration(c.ticks) * time.Second / time.Duration(c.tickRate)
}

// Interval is a repeating timer evaluated against a Clock once per tick.
// It replaces event-queue timers with a plain elapsed-time comparison.
type Interval struct {
	period time.Duration
	next   time.Duration
	armed  bool
}

// NewInterval creates a disarmed interval timer with the given period.
func NewInterval(period time.Duration) Interval {
	return Interval{period: period}
}

// Period returns the timer period.
func (i *Interval) Period() time.Duration {
	return i.period
}

// Start arms the timer so that it first fires one period after now.
func (i *Interval) Start(now time.Duration) {
	i.next = now + i.period
	i.armed = true
}

// Stop disarms the timer.
func (i *Interval) Stop() {
	i.armed = false
}

// Armed reports whether the timer is running.
func (i *Interval) Armed() bool {
	return i.armed
}

// Due reports whether the timer fired at time now, and rearms it for the
// next period. Missed periods collapse into a single firing.
func (i *Interval) Due(now time.Duration) bool {
	if !i.armed || i.period <= 0 || now < i.next {
		return false
	}
	for i.next <= now {
		i.next += i.period
	}
	return true
}
