package flappy

import "time"

// Event is raised by a timer when it fires.
type Event int

const (
	EventSpawnRow    Event = iota + 1 // Spawn timer tick
	EventRevealScore                  // Game over overlay delay elapsed
)

// Timer is a scheduled event owned by a Clock.
type Timer struct {
	event   Event
	delay   time.Duration
	elapsed time.Duration
	loop    bool
	paused  bool
	removed bool
}

// Pause stops the timer from advancing. Safe to call repeatedly.
func (t *Timer) Pause() {
	if t != nil {
		t.paused = true
	}
}

// Resume lets a paused timer advance again.
func (t *Timer) Resume() {
	if t != nil && !t.removed {
		t.paused = false
	}
}

// Remove cancels the timer. A removed timer never fires. Safe to call
// repeatedly and on a nil timer.
func (t *Timer) Remove() {
	if t != nil {
		t.removed = true
	}
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool { return t != nil && t.paused }

// Removed reports whether the timer was cancelled or has fired for good.
func (t *Timer) Removed() bool { return t == nil || t.removed }

// Clock drives timers from host frame time. Nothing fires on its own:
// timers only fire inside Advance, in the order they were added.
type Clock struct {
	now    time.Duration
	timers []*Timer
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// AddEvent schedules an event every delay when loop is set, or once after
// delay otherwise. A non-positive delay is raised to one nanosecond.
func (c *Clock) AddEvent(delay time.Duration, event Event, loop, paused bool) *Timer {
	if delay <= 0 {
		delay = time.Nanosecond
	}
	t := &Timer{event: event, delay: delay, loop: loop, paused: paused}
	c.timers = append(c.timers, t)
	return t
}

// DelayedCall schedules a one-shot event.
func (c *Clock) DelayedCall(delay time.Duration, event Event) *Timer {
	return c.AddEvent(delay, event, false, false)
}

// Advance moves the clock forward by dt and returns the events that fired.
// A looping timer fires once per whole delay elapsed.
func (c *Clock) Advance(dt time.Duration) []Event {
	if dt <= 0 {
		return nil
	}
	c.now += dt

	var fired []Event
	for _, t := range c.timers {
		if t.removed || t.paused {
			continue
		}
		t.elapsed += dt
		for t.elapsed >= t.delay && !t.removed {
			t.elapsed -= t.delay
			fired = append(fired, t.event)
			if !t.loop {
				t.removed = true
			}
		}
	}
	c.compact()
	return fired
}

// Now returns the total time advanced.
func (c *Clock) Now() time.Duration { return c.now }

// Len returns the number of live timers.
func (c *Clock) Len() int {
	n := 0
	for _, t := range c.timers {
		if !t.removed {
			n++
		}
	}
	return n
}

// Clear removes every timer.
func (c *Clock) Clear() {
	for _, t := range c.timers {
		t.removed = true
	}
	c.timers = c.timers[:0]
}

func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.removed {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
