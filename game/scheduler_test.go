package game

import (
	"testing"
	"time"
)

// countingStepper records how often the scheduler stepped it
type countingStepper struct {
	interval time.Duration
	steps    int
}

func (c *countingStepper) Step() StepResult {
	c.steps++
	return StepResult{Moved: true}
}

func (c *countingStepper) Interval() time.Duration {
	return c.interval
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestSchedulerFrameSequence(t *testing.T) {
	stepper := &countingStepper{interval: 150 * time.Millisecond}
	ts := NewTickScheduler(stepper)
	ts.Start()

	frames := []struct {
		ms       int
		wantStep bool
	}{
		{0, false},   // baseline
		{100, false}, // 100 < 150
		{160, true},  // 160 >= 150, baseline moves to 160
		{200, false}, // 40 since last tick
		{309, false}, // 149
		{310, true},  // exactly one interval
	}

	for _, f := range frames {
		_, stepped := ts.Frame(at(f.ms))
		if stepped != f.wantStep {
			t.Errorf("frame at %dms: stepped=%v, want %v", f.ms, stepped, f.wantStep)
		}
	}
	if stepper.steps != 2 {
		t.Errorf("Expected 2 steps, got %d", stepper.steps)
	}
	if ts.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", ts.Ticks())
	}
}

func TestSchedulerNoCatchUp(t *testing.T) {
	stepper := &countingStepper{interval: 100 * time.Millisecond}
	ts := NewTickScheduler(stepper)
	ts.Start()

	ts.Frame(at(0))
	ts.Frame(at(1000))
	if stepper.steps != 1 {
		t.Fatalf("Expected a single step after a long stall, got %d", stepper.steps)
	}

	// The baseline is the late frame, not a multiple of the interval
	if _, stepped := ts.Frame(at(1050)); stepped {
		t.Error("Stepped 50ms after the late frame")
	}
	if _, stepped := ts.Frame(at(1100)); !stepped {
		t.Error("Expected a step 100ms after the late frame")
	}
}

func TestSchedulerFollowsIntervalChanges(t *testing.T) {
	stepper := &countingStepper{interval: 150 * time.Millisecond}
	ts := NewTickScheduler(stepper)
	ts.Start()

	ts.Frame(at(0))
	stepper.interval = 50 * time.Millisecond
	if _, stepped := ts.Frame(at(60)); !stepped {
		t.Error("Expected the shorter interval to apply on the next frame")
	}
}

func TestSchedulerStopAndRestart(t *testing.T) {
	stepper := &countingStepper{interval: 100 * time.Millisecond}
	ts := NewTickScheduler(stepper)

	if _, stepped := ts.Frame(at(0)); stepped || ts.Running() {
		t.Fatal("A new scheduler must not step before Start")
	}

	ts.Start()
	ts.Frame(at(0))
	ts.Frame(at(100))
	ts.Stop()

	for ms := 200; ms < 2000; ms += 100 {
		if _, stepped := ts.Frame(at(ms)); stepped {
			t.Fatalf("Stepped at %dms after Stop", ms)
		}
	}
	if stepper.steps != 1 {
		t.Fatalf("Expected 1 step before Stop, got %d", stepper.steps)
	}

	// Start re-establishes the baseline instead of stepping immediately
	ts.Start()
	if _, stepped := ts.Frame(at(5000)); stepped {
		t.Error("First frame after Start must only set the baseline")
	}
	if _, stepped := ts.Frame(at(5100)); !stepped {
		t.Error("Expected a step one interval after restart")
	}
}
