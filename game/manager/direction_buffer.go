package manager

import "gridsnake/game/types"

// DirectionBuffer stages steering input between ticks. Requests are validated
// against the committed direction only, so several presses inside one interval
// never chain into a reversal.
type DirectionBuffer struct {
	committed types.Direction
	pending   types.Direction
}

func NewDirectionBuffer(initial types.Direction) *DirectionBuffer {
	return &DirectionBuffer{
		committed: initial,
		pending:   initial,
	}
}

// Request overwrites the pending direction unless d reverses the committed one.
// Rejected requests are dropped silently.
func (b *DirectionBuffer) Request(d types.Direction) bool {
	if !d.Valid() || d.IsOpposite(b.committed) {
		return false
	}
	b.pending = d
	return true
}

// Commit promotes the pending direction and returns it
func (b *DirectionBuffer) Commit() types.Direction {
	b.committed = b.pending
	return b.committed
}

func (b *DirectionBuffer) Committed() types.Direction {
	return b.committed
}

func (b *DirectionBuffer) Pending() types.Direction {
	return b.pending
}
