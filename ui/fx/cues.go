package fx

import (
	"time"

	"gridsnake/game"
)

// Cues receives the audible side of step events
type Cues interface {
	PlayEat()
	PlayGameOver()
}

// Silent is used when audio is disabled or failed to initialise
type Silent struct{}

func (Silent) PlayEat()      {}
func (Silent) PlayGameOver() {}

// Apply turns one step result into presentation effects: growth leaves a
// trail mark and a blip, a collision plays the game-over tone.
func Apply(res game.StepResult, now time.Time, trail *Trail, cues Cues) {
	switch {
	case res.Grew:
		trail.Push(res.Head, now)
		cues.PlayEat()
	case res.GameOver:
		cues.PlayGameOver()
	}
}
