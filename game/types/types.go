package types

import (
	"fmt"
	"time"
)

// Board and speed constants
const (
	CanvasSize = 400 // Pixel size of the play field
	CellSize   = 20  // Pixels per grid cell
	GridDim    = CanvasSize / CellSize

	BaseInterval = 150 * time.Millisecond // Tick interval at score 0
	MinInterval  = 50 * time.Millisecond  // Fastest tick interval
	SpeedUpRate  = 2 * time.Millisecond   // Interval shrink per point
)

// Point is a cell coordinate. X grows right, Y grows down.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the fixed GridDim x GridDim board.
func DefaultGrid() Grid {
	return Grid{Width: GridDim, Height: GridDim}
}

// IsInBounds reports whether p lies on the grid.
func (g Grid) IsInBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Heading is the direction of travel. Stopped only exists before the first move.
type Heading int

const (
	Stopped Heading = iota
	Up
	Right
	Down
	Left
)

// Delta converts a Heading into its unit displacement vector
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading. Stopped has no reverse.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return h
	}
}

// TurnLeft returns the heading after a 90° counter-clockwise turn.
func (h Heading) TurnLeft() Heading {
	switch h {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return h
	}
}

// TurnRight returns the heading after a 90° clockwise turn.
func (h Heading) TurnRight() Heading {
	switch h {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return h
	}
}

func (h Heading) IsStopped() bool {
	return h == Stopped
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "stopped"
	}
}

// MarshalText lets headings appear by name in JSON snapshots.
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Headings lists the four moving headings in clockwise order.
var Headings = [4]Heading{Up, Right, Down, Left}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return ""
	}
}

func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CollisionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*c = NoCollision
	case "wall":
		*c = WallCollision
	case "self":
		*c = SelfCollision
	default:
		return fmt.Errorf("unknown collision type %q", text)
	}
	return nil
}

// TickInterval returns the tick cadence for a score: it shrinks by
// SpeedUpRate per point and never drops below MinInterval.
func TickInterval(score int) time.Duration {
	interval := BaseInterval - time.Duration(score)*SpeedUpRate
	if interval < MinInterval {
		return MinInterval
	}
	return interval
}
