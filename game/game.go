package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// StepResult reports what one tick did. Grew drives cosmetic effects such as trails.
type StepResult struct {
	Moved    bool
	Grew     bool
	Head     types.Point
	GameOver bool
	Reason   manager.CollisionType
}

// Snapshot is a read-only copy of the game handed to renderers
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Body      []types.Point
	Food      types.Point
	Direction types.Direction
	Score     int
	Interval  time.Duration
	GameOver  bool
	Reason    string
	Steps     int
}

func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// Game owns the authoritative state. It has a single writer: whoever calls
// Step, Reset and RequestDirection must do so from one goroutine.
type Game struct {
	UUID string

	cfg          Config
	grid         types.Grid
	snake        *entity.Snake
	directions   *manager.DirectionBuffer
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	score         int
	interval      time.Duration
	gameOver      bool
	lastCollision manager.CollisionType
	steps         int
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, cfg.seed()),
	}
	g.Reset()
	return g, nil
}

// Reset replaces the state with the initial configuration. Food is the only
// randomised field.
func (g *Game) Reset() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(g.cfg.StartPosition())
	g.directions = manager.NewDirectionBuffer(types.InitialDirection)
	g.foodMgr.Respawn()
	g.score = 0
	g.interval = g.cfg.InitialInterval
	g.gameOver = false
	g.lastCollision = manager.NoCollision
	g.steps = 0
}

// RequestDirection stages d for the next tick; reversals are ignored,
// as is any input after game over.
func (g *Game) RequestDirection(d types.Direction) {
	if g.gameOver {
		return
	}
	g.directions.Request(d)
}

// Step advances the game by one tick. It is a no-op once the game is over.
func (g *Game) Step() StepResult {
	if g.gameOver {
		return StepResult{GameOver: true, Reason: g.lastCollision, Head: g.snake.GetHead()}
	}

	dir := g.directions.Commit()
	newHead := g.calculateNewPosition(dir)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.gameOver = true
		g.lastCollision = collision
		return StepResult{GameOver: true, Reason: collision, Head: g.snake.GetHead()}
	}

	g.steps++
	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.score += g.cfg.FoodReward
		g.interval -= g.cfg.IntervalStep
		if g.interval < g.cfg.MinInterval {
			g.interval = g.cfg.MinInterval
		}
		g.foodMgr.Respawn()
		return StepResult{Moved: true, Grew: true, Head: newHead}
	}

	g.snake.RemoveTail()
	return StepResult{Moved: true, Head: newHead}
}

func (g *Game) calculateNewPosition(dir types.Direction) types.Point {
	return g.snake.GetHead().Add(dir.Delta())
}

// Interval is the current minimum time between ticks
func (g *Game) Interval() time.Duration {
	return g.interval
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) GetScore() int {
	return g.score
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake.Clone()
}

func (g *Game) Snapshot() Snapshot {
	body := g.snake.Clone().Body
	return Snapshot{
		SessionID: g.UUID,
		Grid:      g.grid,
		Body:      body,
		Food:      g.foodMgr.GetFood(),
		Direction: g.directions.Committed(),
		Score:     g.score,
		Interval:  g.interval,
		GameOver:  g.gameOver,
		Reason:    g.lastCollision.String(),
		Steps:     g.steps,
	}
}
