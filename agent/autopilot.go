package agent

import (
	"context"
	"time"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/logging"
)

// Sender accepts input commands, normally a *game.Runner.
type Sender interface {
	Send(ctx context.Context, cmd game.Command) error
}

// Autopilot is an input source that steers toward the food while avoiding
// walls, its own body and pockets too small to hold it.
type Autopilot struct {
	grid         types.Grid
	collisions   *manager.CollisionManager
	restartDelay time.Duration
	snapshots    chan game.Snapshot
}

// NewAutopilot restarts finished rounds after restartDelay; zero disables it.
func NewAutopilot(restartDelay time.Duration) *Autopilot {
	grid := types.DefaultGrid()
	return &Autopilot{
		grid:         grid,
		collisions:   manager.NewCollisionManager(grid),
		restartDelay: restartDelay,
		snapshots:    make(chan game.Snapshot, 1),
	}
}

// Observe is an EventSnapshot handler. Only the latest snapshot is kept so
// the run loop never blocks on the pilot.
func (a *Autopilot) Observe(e game.Event) {
	select {
	case <-a.snapshots:
	default:
	}
	a.snapshots <- e.Snapshot
}

// Run feeds decisions to s until ctx is done.
func (a *Autopilot) Run(ctx context.Context, s Sender) error {
	for {
		var snap game.Snapshot
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap = <-a.snapshots:
		}

		cmd, ok := a.react(snap)
		if !ok {
			continue
		}
		if snap.Status == game.GameOver {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(a.restartDelay):
			}
		}
		if err := s.Send(ctx, cmd); err != nil {
			return err
		}
	}
}

func (a *Autopilot) react(snap game.Snapshot) (game.Command, bool) {
	switch snap.Status {
	case game.GameOver:
		if a.restartDelay <= 0 {
			return game.Command{}, false
		}
		logging.Log.Debugf("autopilot restarting after %s collision", snap.Collision)
		return game.Command{Type: game.CmdReset}, true
	case game.Paused:
		return game.Command{}, false
	}

	h := a.Decide(snap)
	if h == snap.Heading || h.IsStopped() {
		return game.Command{}, false
	}
	return game.Turn(h), true
}

// Decide picks the heading for the next tick. It prefers moves that leave
// enough room for the body, then the shortest distance to food, then
// going straight.
func (a *Autopilot) Decide(snap game.Snapshot) types.Heading {
	if len(snap.Snake) == 0 {
		return types.Stopped
	}
	snake := entity.NewSnake(snap.Snake)
	body := make(map[types.Point]bool, len(snap.Snake))
	for _, p := range snap.Snake {
		body[p] = true
	}

	best := types.Stopped
	bestRoomy, bestDist := false, 0
	for _, h := range candidates(snap.Heading) {
		next := snake.GetHead().Add(h.Delta())
		if a.collisions.IsDanger(next, snake) {
			continue
		}

		roomy := a.freeArea(next, body, snake.Len()) >= snake.Len()
		dist := manhattanDistance(next, snap.Food)
		if best.IsStopped() || (roomy && !bestRoomy) || (roomy == bestRoomy && dist < bestDist) {
			best, bestRoomy, bestDist = h, roomy, dist
		}
	}
	return best
}

// candidates lists straight, left and right for a moving snake and every
// heading for a stopped one. Reversing is never a candidate.
func candidates(current types.Heading) []types.Heading {
	if current.IsStopped() {
		return types.Headings[:]
	}
	return []types.Heading{current, current.TurnLeft(), current.TurnRight()}
}

// freeArea counts reachable free cells from start, stopping at limit.
func (a *Autopilot) freeArea(start types.Point, body map[types.Point]bool, limit int) int {
	seen := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	for len(queue) > 0 && len(seen) < limit {
		p := queue[0]
		queue = queue[1:]
		for _, h := range types.Headings {
			n := p.Add(h.Delta())
			if seen[n] || body[n] || !a.grid.IsInBounds(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}
