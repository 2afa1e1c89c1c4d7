package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	f.step = StepDuration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// StepDuration returns the frame budget for a tick rate, defaulting to 60 TPS.
func StepDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// TickBudget accumulates tick durations against a fixed per-tick budget.
// Overruns are observations, never errors.
type TickBudget struct {
	Budget time.Duration

	Ticks    int
	Overruns int
	Total    time.Duration
	Max      time.Duration
	Last     time.Duration
}

// NewTickBudget returns a TickBudget for the given tick rate.
func NewTickBudget(tps int) *TickBudget {
	return &TickBudget{Budget: StepDuration(tps)}
}

// Observe records one tick duration and reports whether it exceeded the budget.
func (b *TickBudget) Observe(d time.Duration) bool {
	b.Ticks++
	b.Total += d
	b.Last = d
	if d > b.Max {
		b.Max = d
	}
	if d > b.Budget {
		b.Overruns++
		return true
	}
	return false
}

// Time runs fn, records its duration, and returns it with the overrun flag.
func (b *TickBudget) Time(fn func()) (time.Duration, bool) {
	start := time.Now()
	fn()
	d := time.Since(start)
	return d, b.Observe(d)
}

// Mean returns the average observed tick duration.
func (b *TickBudget) Mean() time.Duration {
	if b.Ticks == 0 {
		return 0
	}
	return b.Total / time.Duration(b.Ticks)
}
