package game

import (
	"log"
	"time"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Session ties a Game to its scheduler and the scoreboard. Like Game, it must
// be driven from a single goroutine; Runner does that for concurrent frontends.
type Session struct {
	game      *Game
	scheduler *TickScheduler
	stats     *manager.StateManager

	autoRestart time.Duration
	paused      bool
	startTime   time.Time
	overAt      time.Time
	now         func() time.Time
}

func NewSession(cfg Config) (*Session, error) {
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		game:        g,
		scheduler:   NewTickScheduler(g),
		stats:       manager.NewStateManager(),
		autoRestart: cfg.AutoRestart,
		now:         time.Now,
	}
	s.startTime = s.now()
	s.scheduler.Start()
	return s, nil
}

func (s *Session) RequestDirection(d types.Direction) {
	s.game.RequestDirection(d)
}

// Frame forwards a frame signal to the scheduler. Once the game is over it
// records the result and, when auto restart is enabled, restarts after the delay.
func (s *Session) Frame(now time.Time) (StepResult, bool) {
	if s.game.IsGameOver() {
		if s.autoRestart > 0 && !s.paused && now.Sub(s.overAt) >= s.autoRestart {
			s.Restart()
		}
		return StepResult{}, false
	}

	res, stepped := s.scheduler.Frame(now)
	if stepped && res.GameOver {
		s.overAt = now
		s.recordGame(res)
	}
	return res, stepped
}

func (s *Session) recordGame(res StepResult) {
	snap := s.game.Snapshot()
	s.stats.AddToHistory(manager.GameRecord{
		SessionID: snap.SessionID,
		Score:     snap.Score,
		Length:    len(snap.Body),
		Reason:    res.Reason.String(),
		StartTime: s.startTime,
		EndTime:   s.now(),
	})
	log.Printf("game %s over: reason=%s score=%d length=%d steps=%d",
		snap.SessionID, res.Reason, snap.Score, len(snap.Body), snap.Steps)
}

// Restart stops the scheduler, resets the game and starts ticking again
// unless the session is paused.
func (s *Session) Restart() {
	s.scheduler.Stop()
	s.game.Reset()
	s.startTime = s.now()
	if !s.paused {
		s.scheduler.Start()
	}
}

// TogglePause stops or resumes ticking; the game state is left untouched
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if s.paused {
		s.scheduler.Stop()
	} else {
		s.scheduler.Start()
	}
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) Snapshot() Snapshot {
	return s.game.Snapshot()
}

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}

func (s *Session) Game() *Game {
	return s.game
}
