package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	food types.Point
	rng  *rand.Rand
}

// NewFoodManager seeds its own generator so a fixed seed replays the same food sequence
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.food = fm.GenerateFood()
	return fm
}

// GenerateFood picks a uniformly random cell. Occupancy is not checked, so food
// can land under the snake body.
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Respawn replaces the current food and returns its new position
func (fm *FoodManager) Respawn() types.Point {
	fm.food = fm.GenerateFood()
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood places food at an explicit cell; used by scripted scenarios
func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}
