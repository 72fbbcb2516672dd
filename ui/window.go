package ui

import (
	"time"

	"gridsnake/game"
	"gridsnake/ui/fx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type WindowOptions struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
	Cues   fx.Cues
}

func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:  1280,
		Height: 800,
		Title:  "Snake",
		FPS:    60,
		Cues:   fx.Silent{},
	}
}

// RunWindow drives the session from the raylib frame loop until the window
// is closed or Q is pressed. Everything runs on the calling goroutine.
func RunWindow(session *game.Session, opts WindowOptions) {
	if opts.Cues == nil {
		opts.Cues = fx.Silent{}
	}

	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(opts.FPS)

	renderer := NewRenderer()
	trail := fx.NewTrail(fx.DefaultTrailTTL)

	for !rl.WindowShouldClose() {
		switch PollAction() {
		case ActionQuit:
			return
		case ActionRestart:
			session.Restart()
		case ActionPause:
			session.TogglePause()
		}

		for _, d := range PollDirections() {
			session.RequestDirection(d)
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		now := time.Now()
		if res, stepped := session.Frame(now); stepped {
			fx.Apply(res, now, trail, opts.Cues)
		}

		// Manual and automatic restarts both start a new session id
		snap := session.Snapshot()
		trail.Follow(snap.SessionID)
		trail.Expire(now)

		renderer.Draw(snap, session.Stats(), trail, now, session.Paused())
	}
}
