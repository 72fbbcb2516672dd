package fx

import (
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

func TestTrailExpiresInOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trail := NewTrail(100 * time.Millisecond)

	trail.Push(types.Point{X: 1, Y: 1}, start)
	trail.Push(types.Point{X: 2, Y: 2}, start.Add(50*time.Millisecond))

	trail.Expire(start.Add(99 * time.Millisecond))
	if trail.Len() != 2 {
		t.Fatalf("Expected 2 marks before expiry, got %d", trail.Len())
	}

	trail.Expire(start.Add(100 * time.Millisecond))
	points := trail.Points()
	if len(points) != 1 || points[0] != (types.Point{X: 2, Y: 2}) {
		t.Fatalf("Expected only (2,2) to remain, got %v", points)
	}

	trail.Expire(start.Add(time.Second))
	if trail.Len() != 0 {
		t.Errorf("Expected empty trail, got %d marks", trail.Len())
	}
}

func TestTrailFade(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trail := NewTrail(200 * time.Millisecond)
	trail.Push(types.Point{X: 3, Y: 4}, start)

	fade := trail.Fade(start.Add(50 * time.Millisecond))
	if len(fade) != 1 || fade[0] != 0.75 {
		t.Errorf("Fade = %v, want [0.75]", fade)
	}
	if fade := trail.Fade(start.Add(time.Second)); fade[0] != 0 {
		t.Errorf("Fade past expiry = %v, want 0", fade[0])
	}
}

func TestTrailDefaultsAndClear(t *testing.T) {
	trail := NewTrail(0)
	if trail.ttl != DefaultTrailTTL {
		t.Errorf("ttl = %v, want %v", trail.ttl, DefaultTrailTTL)
	}
	trail.Push(types.Point{}, time.Now())
	trail.Clear()
	if trail.Len() != 0 {
		t.Error("Clear left marks behind")
	}
}

func TestTrailFollowClearsOnNewSession(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trail := NewTrail(time.Minute)

	if trail.Follow("a") {
		t.Error("First session id must not clear the trail")
	}
	trail.Push(types.Point{X: 1, Y: 1}, now)

	if trail.Follow("a") || trail.Len() != 1 {
		t.Fatalf("Same session cleared the trail: len=%d", trail.Len())
	}
	if !trail.Follow("b") || trail.Len() != 0 {
		t.Errorf("New session kept %d marks", trail.Len())
	}
}

func TestTrailClearedByAutoRestart(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 5
	cfg.AutoRestart = time.Second
	session, err := game.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trail := NewTrail(time.Hour)
	trail.Follow(session.Snapshot().SessionID)
	trail.Push(types.Point{X: 3, Y: 3}, now)

	// Heading right from the centre, the snake reaches the wall within a grid width
	session.Frame(now)
	for i := 0; i < 100 && !session.Snapshot().GameOver; i++ {
		now = now.Add(200 * time.Millisecond)
		session.Frame(now)
	}
	if !session.Snapshot().GameOver {
		t.Fatal("snake never reached the wall")
	}
	trail.Follow(session.Snapshot().SessionID)
	if trail.Len() != 1 {
		t.Fatalf("Game over alone cleared the trail")
	}

	session.Frame(now.Add(time.Second))
	snap := session.Snapshot()
	if snap.GameOver {
		t.Fatal("Expected auto restart")
	}
	if !trail.Follow(snap.SessionID) || trail.Len() != 0 {
		t.Errorf("Trail kept %d marks across the auto restart", trail.Len())
	}
}
