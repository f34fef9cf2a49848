package clock

// Clock turns a wall-clock source into per-frame deltas.
type Clock struct {
	now     func() float64
	last    float64
	elapsed float64
	delta   float32
}

// New starts a clock at the current reading of now, which must return seconds.
func New(now func() float64) *Clock {
	start := now()
	return &Clock{
		now:     now,
		last:    start,
		elapsed: start,
	}
}

// Tick samples the source once and returns the seconds since the previous
// tick. A source that steps backwards is treated as no time passing.
func (c *Clock) Tick() float32 {
	current := c.now()
	if current < c.last {
		current = c.last
	}
	c.delta = float32(current - c.last)
	c.last = current
	c.elapsed = current
	return c.delta
}

// Delta returns the value produced by the most recent Tick.
func (c *Clock) Delta() float32 {
	return c.delta
}

// Elapsed returns the last time sample in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
