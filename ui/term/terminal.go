package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui/fx"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Each grid cell is two terminal columns wide so cells look roughly square
const cellWidth = 2

type Options struct {
	FrameRate time.Duration
	Cues      fx.Cues
}

func DefaultOptions() Options {
	return Options{
		FrameRate: time.Second / 60,
		Cues:      fx.Silent{},
	}
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Background(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorLime).Foreground(tcell.ColorBlack).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	trailStyle  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	statsStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// Run plays the session in the terminal until ctx is cancelled or the player
// quits. The session is only touched by a game.Runner; this package reads
// the snapshots it publishes.
func Run(ctx context.Context, session *game.Session, opts Options) error {
	if opts.Cues == nil {
		opts.Cues = fx.Silent{}
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultOptions().FrameRate
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := game.NewRunner(session)
	ticker := time.NewTicker(opts.FrameRate)
	defer ticker.Stop()

	resized := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runner.Run(gctx, ticker.C)
	})

	g.Go(func() error {
		return pumpEvents(screen, runner, resized, cancel)
	})

	g.Go(func() error {
		renderLoop(gctx, screen, runner, session, resized, opts)
		return nil
	})

	// Fini unblocks PollEvent so the event pump can return
	g.Go(func() error {
		<-gctx.Done()
		screen.Fini()
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func pumpEvents(screen tcell.Screen, runner *game.Runner, resized chan<- struct{}, quit context.CancelFunc) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			select {
			case resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			if isQuit(e) {
				quit()
				return nil
			}
			if d, ok := keyDirection(e); ok {
				runner.Steer(d)
				continue
			}
			switch e.Rune() {
			case 'r', 'R':
				runner.Restart()
			case 'p', 'P', ' ':
				runner.TogglePause()
			}
			if e.Key() == tcell.KeyEnter {
				runner.Restart()
			}
		}
	}
}

func renderLoop(ctx context.Context, screen tcell.Screen, runner *game.Runner, session *game.Session, resized <-chan struct{}, opts Options) {
	trail := fx.NewTrail(fx.DefaultTrailTTL)
	// Redraw between steps so trail marks fade out on time
	fade := time.NewTicker(100 * time.Millisecond)
	defer fade.Stop()

	var (
		last   game.Snapshot
		paused bool
		have   bool
	)
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-runner.Updates():
			now := time.Now()
			trail.Follow(u.Snapshot.SessionID)
			if u.Stepped {
				fx.Apply(u.Result, now, trail, opts.Cues)
			}
			last, paused, have = u.Snapshot, u.Paused, true
		case <-resized:
		case <-fade.C:
			if trail.Len() == 0 {
				continue
			}
		}
		if !have {
			continue
		}
		now := time.Now()
		trail.Expire(now)
		draw(screen, last, session, trail, now, paused)
	}
}

func draw(screen tcell.Screen, snap game.Snapshot, session *game.Session, trail *fx.Trail, now time.Time, paused bool) {
	screen.Clear()
	w, h := screen.Size()
	gridW := snap.Grid.Width*cellWidth + 2
	gridH := snap.Grid.Height + 2
	if w < gridW || h < gridH+2 {
		drawText(screen, 0, 0, fmt.Sprintf("Terminal too small: need %dx%d", gridW, gridH+2), hudStyle)
		screen.Show()
		return
	}

	drawBorder(screen, gridW, gridH)

	fade := trail.Fade(now)
	for i, p := range trail.Points() {
		ch := '·'
		if fade[i] > 0.5 {
			ch = '*'
		}
		setCell(screen, p, ch, trailStyle)
	}

	setCell(screen, snap.Food, '●', foodStyle)

	for i := len(snap.Body) - 1; i >= 1; i-- {
		setCell(screen, snap.Body[i], ' ', snakeStyle)
	}
	setCell(screen, snap.Head(), headGlyph(snap.Direction), headStyle)

	stats := session.Stats()
	drawText(screen, 0, gridH, fmt.Sprintf("Score %d  Length %d  Tick %dms",
		snap.Score, len(snap.Body), snap.Interval.Milliseconds()), hudStyle)
	drawText(screen, 0, gridH+1, fmt.Sprintf("High %d  Games %d  Avg %.1f  Median %.1f",
		stats.GetHighScore(), stats.GetGamesPlayed(), stats.GetAverageScore(), stats.GetMedianScore()), statsStyle)

	switch {
	case snap.GameOver:
		drawCentered(screen, gridW/2, gridH/2, fmt.Sprintf(" Game Over (%s) - R to restart ", snap.Reason), bannerStyle)
	case paused:
		drawCentered(screen, gridW/2, gridH/2, " Paused ", bannerStyle)
	}

	screen.Show()
}

func drawBorder(screen tcell.Screen, w, h int) {
	for x := 1; x < w-1; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func setCell(screen tcell.Screen, p types.Point, ch rune, st tcell.Style) {
	x := 1 + p.X*cellWidth
	y := 1 + p.Y
	screen.SetContent(x, y, ch, nil, st)
	screen.SetContent(x+1, y, ' ', nil, st)
}

func headGlyph(d types.Direction) rune {
	switch d {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	default:
		return '>'
	}
}

func keyDirection(e *tcell.EventKey) (types.Direction, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'w', 'W', 'k':
			return types.Up, true
		case 's', 'S', 'j':
			return types.Down, true
		case 'a', 'A', 'h':
			return types.Left, true
		case 'd', 'D', 'l':
			return types.Right, true
		}
	}
	return 0, false
}

func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	r := e.Rune()
	return r == 'q' || r == 'Q'
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	if x < 0 {
		x = 0
	}
	drawText(s, x, cy, text, st)
}
