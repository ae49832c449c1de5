package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// maxFoodRerolls bounds overlap re-rolls when AvoidSnake is set.
const maxFoodRerolls = 64

type FoodManager struct {
	grid       types.Grid
	rng        *rand.Rand
	avoidSnake bool
}

// NewFoodManager draws positions from a generator seeded with seed. With
// avoidSnake false, food may land on the snake.
func NewFoodManager(grid types.Grid, seed uint64, avoidSnake bool) *FoodManager {
	return &FoodManager{
		grid:       grid,
		rng:        rand.New(rand.NewSource(seed)),
		avoidSnake: avoidSnake,
	}
}

// PlaceFood picks x and y independently and uniformly on the grid.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) types.Point {
	food := fm.randomPoint()
	if !fm.avoidSnake || snake == nil {
		return food
	}

	for i := 0; i < maxFoodRerolls && snake.Contains(food); i++ {
		food = fm.randomPoint()
	}
	return food
}

func (fm *FoodManager) randomPoint() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
