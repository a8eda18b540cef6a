package core

import "time"

// DefaultStepDelay is used when a non-positive delay is configured.
const DefaultStepDelay = 200 * time.Millisecond

// FixedStep paces simulation steps at a fixed delay regardless of frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per delay.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	return fs
}

// SetDelay changes the pause between steps. It is safe to call from the main loop.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultStepDelay
	}
	f.step = delay
}

// Delay returns the configured pause between steps.
func (f *FixedStep) Delay() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
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
