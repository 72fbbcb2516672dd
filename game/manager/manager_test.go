package manager

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

var testGrid = types.Grid{Width: types.GridSize, Height: types.GridSize}

func TestDirectionBufferRejectsReversal(t *testing.T) {
	b := NewDirectionBuffer(types.Right)

	if b.Request(types.Left) {
		t.Error("Expected LEFT to be rejected while committed RIGHT")
	}
	if b.Pending() != types.Right {
		t.Errorf("Pending changed after rejected request: %v", b.Pending())
	}
	if got := b.Commit(); got != types.Right {
		t.Errorf("Commit() = %v, want right", got)
	}
}

func TestDirectionBufferChecksCommittedNotPending(t *testing.T) {
	b := NewDirectionBuffer(types.Right)

	// UP is accepted, then LEFT is still checked against RIGHT and rejected
	if !b.Request(types.Up) {
		t.Fatal("Expected UP to be accepted")
	}
	if b.Request(types.Left) {
		t.Error("Expected LEFT to be rejected against committed RIGHT")
	}
	if b.Pending() != types.Up {
		t.Errorf("Pending = %v, want up", b.Pending())
	}

	// DOWN is not opposite of RIGHT, so it overwrites UP within the same tick
	if !b.Request(types.Down) {
		t.Error("Expected DOWN to be accepted against committed RIGHT")
	}
	if got := b.Commit(); got != types.Down {
		t.Errorf("Commit() = %v, want down", got)
	}
	if b.Request(types.Up) {
		t.Error("Expected UP to be rejected after DOWN was committed")
	}
}

func TestDirectionBufferIgnoresInvalid(t *testing.T) {
	b := NewDirectionBuffer(types.Up)
	if b.Request(types.Direction(0)) || b.Request(types.Direction(42)) {
		t.Error("Expected out-of-range directions to be ignored")
	}
	if b.Pending() != types.Up {
		t.Errorf("Pending = %v, want up", b.Pending())
	}
}

func TestCollisionManager(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	snake := &entity.Snake{Body: []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}}

	tests := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"free cell", types.Point{X: 4, Y: 5}, NoCollision},
		{"right wall", types.Point{X: 20, Y: 10}, WallCollision},
		{"left wall", types.Point{X: -1, Y: 10}, WallCollision},
		{"top wall", types.Point{X: 3, Y: -1}, WallCollision},
		{"bottom wall", types.Point{X: 3, Y: 20}, WallCollision},
		{"body", types.Point{X: 6, Y: 5}, SelfCollision},
		{"tail about to move", types.Point{X: 5, Y: 6}, SelfCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}

	if WallCollision.String() != "wall" || SelfCollision.String() != "self" || NoCollision.String() != "" {
		t.Error("Unexpected collision reason strings")
	}
}

func TestFoodManagerStaysOnGridAndIsDeterministic(t *testing.T) {
	a := NewFoodManager(testGrid, 7)
	b := NewFoodManager(testGrid, 7)

	for i := 0; i < 500; i++ {
		fa, fb := a.Respawn(), b.Respawn()
		if fa != fb {
			t.Fatalf("Same seed diverged at %d: %v vs %v", i, fa, fb)
		}
		if !testGrid.Contains(fa) {
			t.Fatalf("Food spawned off grid: %v", fa)
		}
	}
}

func TestFoodManagerIgnoresOccupancy(t *testing.T) {
	// A 1x1 grid leaves a single cell; respawn must not loop looking for a free one.
	fm := NewFoodManager(types.Grid{Width: 1, Height: 1}, 1)
	if got := fm.Respawn(); got != (types.Point{}) {
		t.Errorf("Respawn() = %v, want (0,0)", got)
	}
}

func TestStateManagerScoreboard(t *testing.T) {
	sm := NewStateManager()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, score := range []int{30, 10, 50, 20} {
		sm.AddToHistory(GameRecord{
			Score:     score,
			StartTime: start,
			EndTime:   start.Add(time.Duration(i+1) * time.Second),
		})
	}

	if sm.GetHighScore() != 50 {
		t.Errorf("HighScore = %d, want 50", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 4 {
		t.Errorf("GamesPlayed = %d, want 4", sm.GetGamesPlayed())
	}
	if avg := sm.GetAverageScore(); avg != 27.5 {
		t.Errorf("AverageScore = %v, want 27.5", avg)
	}
	if med := sm.GetMedianScore(); med != 25 {
		t.Errorf("MedianScore = %v, want 25", med)
	}
	if d := sm.GetMaxDuration(); d != 4*time.Second {
		t.Errorf("MaxDuration = %v, want 4s", d)
	}
	if d := sm.GetAverageDuration(); d != 2500*time.Millisecond {
		t.Errorf("AverageDuration = %v, want 2.5s", d)
	}

	history := sm.GetScoreHistory()
	history[0] = 999
	if sm.GetScoreHistory()[0] != 30 {
		t.Error("GetScoreHistory leaked internal storage")
	}
}

func TestStateManagerBoundsHistory(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxHistory+5; i++ {
		sm.AddToHistory(GameRecord{Score: i})
	}
	if n := len(sm.GetHistory()); n != maxHistory {
		t.Errorf("history length = %d, want %d", n, maxHistory)
	}
	if sm.GetGamesPlayed() != maxHistory+5 {
		t.Errorf("GamesPlayed = %d, want %d", sm.GetGamesPlayed(), maxHistory+5)
	}
	if sm.GetScoreHistory()[0] != 5 {
		t.Errorf("oldest kept score = %d, want 5", sm.GetScoreHistory()[0])
	}
}
