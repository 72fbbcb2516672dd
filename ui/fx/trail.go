package fx

import (
	"time"

	"gridsnake/game/types"
)

// DefaultTrailTTL is how long a growth marker stays visible
const DefaultTrailTTL = 600 * time.Millisecond

type trailMark struct {
	pos       types.Point
	expiresAt time.Time
}

// Trail is a time-to-live queue of cells where the snake grew. Marks are
// pushed in time order, so expiry only ever pops from the front.
type Trail struct {
	ttl     time.Duration
	marks   []trailMark
	session string
}

func NewTrail(ttl time.Duration) *Trail {
	if ttl <= 0 {
		ttl = DefaultTrailTTL
	}
	return &Trail{ttl: ttl}
}

func (t *Trail) Push(pos types.Point, now time.Time) {
	t.marks = append(t.marks, trailMark{pos: pos, expiresAt: now.Add(t.ttl)})
}

// Expire drops every mark whose lifetime ended at or before now
func (t *Trail) Expire(now time.Time) {
	i := 0
	for i < len(t.marks) && !now.Before(t.marks[i].expiresAt) {
		i++
	}
	t.marks = t.marks[i:]
}

// Fade returns the remaining lifetime of each live mark in [0,1], aligned with Points
func (t *Trail) Fade(now time.Time) []float32 {
	out := make([]float32, len(t.marks))
	for i, m := range t.marks {
		left := m.expiresAt.Sub(now)
		if left < 0 {
			left = 0
		}
		out[i] = float32(left) / float32(t.ttl)
	}
	return out
}

func (t *Trail) Points() []types.Point {
	out := make([]types.Point, len(t.marks))
	for i, m := range t.marks {
		out[i] = m.pos
	}
	return out
}

// Follow ties the trail to a game session. Marks from an earlier session are
// cleared as soon as a different id is seen; it reports whether that happened.
func (t *Trail) Follow(sessionID string) bool {
	if sessionID == t.session {
		return false
	}
	first := t.session == ""
	t.session = sessionID
	if first {
		return false
	}
	t.Clear()
	return true
}

func (t *Trail) Clear() {
	t.marks = t.marks[:0]
}

func (t *Trail) Len() int {
	return len(t.marks)
}
