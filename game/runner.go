package game

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"gridsnake/game/types"
)

// ErrRunnerStarted is returned when Run is called a second time
var ErrRunnerStarted = errors.New("runner already started")

// Update is published after every accepted step and after restarts
type Update struct {
	Snapshot Snapshot
	Result   StepResult
	Stepped  bool
	Paused   bool
}

// Runner serialises frame signals, steering and restarts onto the goroutine
// running Run, so the Session keeps a single writer while input arrives from
// elsewhere.
type Runner struct {
	session *Session

	steerChan   chan types.Direction
	restartChan chan struct{}
	pauseChan   chan struct{}
	updates     chan Update

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  atomic.Bool
}

func NewRunner(session *Session) *Runner {
	return &Runner{
		session:     session,
		steerChan:   make(chan types.Direction, 8),
		restartChan: make(chan struct{}, 1),
		pauseChan:   make(chan struct{}, 1),
		updates:     make(chan Update, 16),
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Steer queues a direction request. Excess input is dropped rather than blocking the caller.
func (r *Runner) Steer(d types.Direction) {
	select {
	case r.steerChan <- d:
	default:
	}
}

func (r *Runner) Restart() {
	select {
	case r.restartChan <- struct{}{}:
	default:
	}
}

func (r *Runner) TogglePause() {
	select {
	case r.pauseChan <- struct{}{}:
	default:
	}
}

// Updates delivers snapshots to the renderer. A slow reader loses the oldest updates, never the newest.
func (r *Runner) Updates() <-chan Update {
	return r.updates
}

// Run processes events until ctx is cancelled, Stop is called or frames is closed
func (r *Runner) Run(ctx context.Context, frames <-chan time.Time) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrRunnerStarted
	}
	defer close(r.done)

	if done, err := r.interrupted(ctx); done {
		return err
	}
	r.publish(Update{Snapshot: r.session.Snapshot()})

	for {
		// Stop and cancellation win over any other ready case
		if done, err := r.interrupted(ctx); done {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-r.stopChan:
			return nil

		case d := <-r.steerChan:
			r.session.RequestDirection(d)

		case <-r.restartChan:
			r.session.Restart()
			r.publish(Update{Snapshot: r.session.Snapshot()})

		case <-r.pauseChan:
			r.session.TogglePause()
			r.publish(Update{Snapshot: r.session.Snapshot()})

		case now, ok := <-frames:
			if !ok {
				return nil
			}
			wasOver := r.session.game.IsGameOver()
			res, stepped := r.session.Frame(now)
			if stepped || wasOver != r.session.game.IsGameOver() {
				r.publish(Update{Snapshot: r.session.Snapshot(), Result: res, Stepped: stepped})
			}
		}
	}
}

// Stop ends Run and waits for it to return. No session mutation happens after Stop returns.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	if r.started.Load() {
		<-r.done
	}
}

// interrupted reports whether ctx is done or Stop was called, without blocking
func (r *Runner) interrupted(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return true, ctx.Err()
	case <-r.stopChan:
		return true, nil
	default:
		return false, nil
	}
}

// publish never blocks. When the buffer is full the oldest update is dropped
// so the latest snapshot always gets through.
func (r *Runner) publish(u Update) {
	u.Paused = r.session.Paused()
	for {
		select {
		case r.updates <- u:
			return
		default:
		}
		select {
		case <-r.updates:
		default:
		}
	}
}
