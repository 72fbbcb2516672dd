package ui

import (
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/ui/fx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	maxScores     = 50 // Scores shown in the graph
)

var (
	snakeColor = rl.Color{R: 70, G: 200, B: 120, A: 255}
	headColor  = rl.Color{R: 110, G: 255, B: 160, A: 255}
	trailColor = rl.Color{R: 255, G: 215, B: 0, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	statsPanel      int32
	graphWidth      int32
	graphHeight     int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame from a snapshot; it never touches the game itself
func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StateManager, trail *fx.Trail, now time.Time, paused bool) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/30, r.statsPanel/12)
	lineHeight := fontSize + fontSize/3

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)
	r.cellSize = min(availableWidth/int32(snap.Grid.Width), availableHeight/int32(snap.Grid.Height))
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)
	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			rl.DrawRectangleLines(r.cellX(x), r.cellY(y), r.cellSize, r.cellSize, rl.Color{R: 30, G: 30, B: 40, A: 255})
		}
	}

	fade := trail.Fade(now)
	for i, p := range trail.Points() {
		rl.DrawRectangle(r.cellX(p.X), r.cellY(p.Y), r.cellSize, r.cellSize, rl.Fade(trailColor, 0.6*fade[i]))
	}

	rl.DrawRectangle(r.cellX(snap.Food.X), r.cellY(snap.Food.Y), r.cellSize, r.cellSize, rl.Red)

	// Tail first so the head is drawn on top
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(r.cellX(p.X), r.cellY(p.Y), r.cellSize, r.cellSize, color)
	}
	r.drawHeadIndicator(snap.Head(), snap.Direction)

	switch {
	case snap.GameOver:
		r.drawCentered(fmt.Sprintf("Game Over (%s) - R to restart", snap.Reason), fontSize, rl.White)
	case paused:
		r.drawCentered("Paused - P to resume", fontSize, rl.White)
	}

	r.drawStatsPanel(snap, stats, fontSize, lineHeight)
}

func (r *Renderer) cellX(x int) int32 {
	return r.offsetX + int32(x)*r.cellSize
}

func (r *Renderer) cellY(y int) int32 {
	return r.offsetY + int32(y)*r.cellSize
}

func (r *Renderer) drawHeadIndicator(head types.Point, direction types.Direction) {
	headX := float32(r.cellX(head.X))
	headY := float32(r.cellY(head.Y))
	size := float32(r.cellSize)
	half := size / 2

	switch direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawCentered(text string, fontSize int32, color rl.Color) {
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+r.totalGridHeight/2-fontSize/2,
		fontSize, color)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, stats *manager.StateManager, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []struct {
		text  string
		color rl.Color
	}{
		{fmt.Sprintf("Score: %d", snap.Score), rl.White},
		{fmt.Sprintf("Length: %d", len(snap.Body)), rl.White},
		{fmt.Sprintf("Tick: %dms", snap.Interval.Milliseconds()), rl.White},
		{fmt.Sprintf("High: %d", stats.GetHighScore()), rl.Green},
		{fmt.Sprintf("Games: %d", stats.GetGamesPlayed()), rl.Green},
		{fmt.Sprintf("Avg: %.1f", stats.GetAverageScore()), rl.Green},
		{fmt.Sprintf("Avg time: %.1fs", stats.GetAverageDuration().Seconds()), rl.Purple},
	}
	for _, line := range lines {
		rl.DrawText(line.text, statsX, statsY, fontSize, line.color)
		statsY += lineHeight
	}

	r.drawPerformanceGraph(stats, statsX, fontSize)
}

func (r *Renderer) drawPerformanceGraph(stats *manager.StateManager, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := stats.GetScoreHistory()
	if len(scores) > maxScores {
		scores = scores[len(scores)-maxScores:]
	}
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores-1))
		y1 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(scores[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores-1))
		y2 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(scores[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}

	// Dashed average line
	avg := stats.GetAverageScore()
	avgY := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(avg)/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Purple)
	}
}
