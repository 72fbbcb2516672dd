package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a non-steering command read from the keyboard
type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionPause
	ActionQuit
)

var directionKeys = []struct {
	key       int32
	direction types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// PollDirections returns every direction key pressed since the last frame,
// in table order, so two quick turns within one tick are both seen.
func PollDirections() []types.Direction {
	var pressed []types.Direction
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			pressed = append(pressed, k.direction)
		}
	}
	return pressed
}

func PollAction() Action {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return ActionQuit
	case rl.IsKeyPressed(rl.KeyR), rl.IsKeyPressed(rl.KeyEnter):
		return ActionRestart
	case rl.IsKeyPressed(rl.KeyP), rl.IsKeyPressed(rl.KeySpace):
		return ActionPause
	}
	return ActionNone
}
