package ui

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	headerHeight  = 40 // Score line above the grid
	cellGap       = 2  // Cells are drawn CellSize-cellGap wide
)

// Renderer draws the latest snapshot. Observe may be called from any
// goroutine; Draw must run on the raylib thread.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	grid         types.Grid

	mu   sync.RWMutex
	last game.Snapshot
	seen bool
}

func NewRenderer() *Renderer {
	r := &Renderer{grid: types.DefaultGrid()}
	r.UpdateDimensions()
	return r
}

// WindowSize is the initial window size for one grid at the nominal cell size.
func WindowSize() (int32, int32) {
	return types.CanvasSize + 2*borderPadding, types.CanvasSize + 2*borderPadding + headerHeight
}

// Observe is an EventSnapshot handler.
func (r *Renderer) Observe(e game.Event) {
	r.mu.Lock()
	r.last = e.Snapshot
	r.seen = true
	r.mu.Unlock()
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - headerHeight
	r.cellSize = min(availableWidth/int32(r.grid.Width), availableHeight/int32(r.grid.Height))
	if r.cellSize < cellGap+1 {
		r.cellSize = cellGap + 1
	}

	r.offsetX = (r.screenWidth - r.cellSize*int32(r.grid.Width)) / 2
	r.offsetY = headerHeight + borderPadding
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw() {
	r.mu.RLock()
	snap, seen := r.last, r.seen
	r.mu.RUnlock()

	r.UpdateDimensions()
	palette := PaletteFor(snap.Theme)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(palette.Background)
	if !seen {
		return
	}

	fontSize := int32(headerHeight / 2)
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.offsetX, borderPadding, fontSize, palette.Text)
	best := fmt.Sprintf("Best: %d", snap.BestScore)
	gridWidth := r.cellSize * int32(r.grid.Width)
	gridHeight := r.cellSize * int32(r.grid.Height)
	rl.DrawText(best, r.offsetX+gridWidth-rl.MeasureText(best, fontSize), borderPadding, fontSize, palette.Text)

	// Grid background, with a red frame after hitting the wall
	border := palette.Grid
	if snap.Status == game.GameOver && snap.Collision == types.WallCollision {
		border = crashRed
	}
	rl.DrawRectangle(r.offsetX, r.offsetY, gridWidth, gridHeight, palette.Grid)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(r.offsetX - 2),
		Y:      float32(r.offsetY - 2),
		Width:  float32(gridWidth + 4),
		Height: float32(gridHeight + 4),
	}, 2, border)

	body, glow := palette.snakeColors(snap.Status == game.GameOver && snap.Collision == types.SelfCollision)
	for _, p := range snap.Snake {
		r.drawCell(p, body, glow)
	}
	r.drawCell(snap.Food, palette.Food, palette.Food)

	r.drawOverlay(snap, fontSize*2, gridWidth, gridHeight, palette)
}

func (r *Renderer) drawCell(p types.Point, color, glow rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x-1, y-1, r.cellSize-cellGap+2, r.cellSize-cellGap+2, rl.Fade(glow, 0.35))
	rl.DrawRectangle(x, y, r.cellSize-cellGap, r.cellSize-cellGap, color)
}

func (r *Renderer) drawOverlay(snap game.Snapshot, fontSize, gridWidth, gridHeight int32, palette Palette) {
	text, color := overlayText(snap.Status), palette.Text
	if text == "" {
		return
	}
	if snap.Status == game.GameOver {
		color = crashRed
	}
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(gridWidth-textWidth)/2,
		r.offsetY+(gridHeight-fontSize)/2,
		fontSize, color)
}

// overlayText is the banner shown over the grid for a status.
func overlayText(status game.Status) string {
	switch status {
	case game.NotStarted:
		return "Press Arrow to Start"
	case game.Paused:
		return "PAUSED"
	case game.GameOver:
		return "GAME OVER"
	default:
		return ""
	}
}
