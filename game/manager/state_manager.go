package manager

import (
	"sort"
	"sync"
	"time"
)

// maxHistory bounds the score history kept for the scoreboard graph
const maxHistory = 200

// GameRecord describes one finished game
type GameRecord struct {
	SessionID string
	Score     int
	Length    int
	Reason    string
	StartTime time.Time
	EndTime   time.Time
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the scoreboard of the current process. Nothing is written to disk.
// Renderers read it from their own goroutine, hence the lock.
type StateManager struct {
	mu          sync.RWMutex
	highScore   int
	gamesPlayed int
	history     []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]GameRecord, 0),
	}
}

// AddToHistory records a finished game and updates the high score
func (sm *StateManager) AddToHistory(record GameRecord) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, record)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

// GetGamesPlayed counts every recorded game, including those trimmed from history
func (sm *StateManager) GetGamesPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gamesPlayed
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	scores := make([]int, len(sm.history))
	for i, r := range sm.history {
		scores[i] = r.Score
	}
	return scores
}

func (sm *StateManager) GetHistory() []GameRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]GameRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

func (sm *StateManager) GetAverageScore() float64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if len(sm.history) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.history {
		total += r.Score
	}
	return float64(total) / float64(len(sm.history))
}

func (sm *StateManager) GetMedianScore() float64 {
	scores := sm.GetScoreHistory()
	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StateManager) GetAverageDuration() time.Duration {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if len(sm.history) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.history {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.history))
}

func (sm *StateManager) GetMaxDuration() time.Duration {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var longest time.Duration
	for _, r := range sm.history {
		if d := r.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}
