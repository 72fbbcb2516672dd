package game

import "time"

// Stepper is the simulation driven by a TickScheduler
type Stepper interface {
	Step() StepResult
	Interval() time.Duration
}

// TickScheduler turns an irregular frame signal into ticks spaced by the
// stepper's current interval. At most one step runs per frame, even when
// several intervals have elapsed since the last one.
type TickScheduler struct {
	stepper Stepper

	lastTick time.Time
	hasTick  bool
	running  bool
	ticks    uint64
}

// NewTickScheduler returns a stopped scheduler; call Start before feeding frames
func NewTickScheduler(stepper Stepper) *TickScheduler {
	return &TickScheduler{stepper: stepper}
}

// Start enables stepping. The next frame only establishes the baseline.
func (ts *TickScheduler) Start() {
	ts.running = true
	ts.hasTick = false
}

// Stop disables stepping until Start is called again
func (ts *TickScheduler) Stop() {
	ts.running = false
	ts.hasTick = false
}

func (ts *TickScheduler) Running() bool {
	return ts.running
}

// Ticks counts steps taken since construction
func (ts *TickScheduler) Ticks() uint64 {
	return ts.ticks
}

// Frame handles one frame signal stamped now. It reports whether a step ran.
func (ts *TickScheduler) Frame(now time.Time) (StepResult, bool) {
	if !ts.running {
		return StepResult{}, false
	}
	if !ts.hasTick {
		ts.lastTick = now
		ts.hasTick = true
		return StepResult{}, false
	}
	if now.Sub(ts.lastTick) < ts.stepper.Interval() {
		return StepResult{}, false
	}

	ts.lastTick = now
	ts.ticks++
	return ts.stepper.Step(), true
}
