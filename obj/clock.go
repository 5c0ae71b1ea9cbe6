package obj

// Clock supplies the current simulation time in seconds. Every timer in the
// game (switch cooldowns, the invincibility window, fireball drops) reads the
// same clock, and the game coordinator advances it exactly once per tick.
type Clock interface {
	Now() float64
}

// SimClock counts simulated seconds. It only moves when the game loop calls
// Advance, which keeps timers deterministic and lets tests drive time by hand.
type SimClock struct {
	t float64
}

func NewSimClock() *SimClock {
	return &SimClock{}
}

func (c *SimClock) Advance(dt float64) {
	c.t += dt
}

func (c *SimClock) Now() float64 {
	return c.t
}
