package agent

import (
	"context"
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

func snapshotAt(body []types.Point, heading types.Heading, food types.Point) game.Snapshot {
	return game.Snapshot{
		Snake:   body,
		Food:    food,
		Status:  game.Running,
		Heading: heading,
	}
}

func TestDecideHeadsForFood(t *testing.T) {
	a := NewAutopilot(0)
	snap := snapshotAt([]types.Point{{X: 10, Y: 10}}, types.Up, types.Point{X: 15, Y: 10})
	if got := a.Decide(snap); got != types.Right {
		t.Errorf("Expected right toward food, got %v", got)
	}
}

func TestDecideFirstMove(t *testing.T) {
	a := NewAutopilot(0)
	snap := snapshotAt([]types.Point{{X: 10, Y: 10}}, types.Stopped, types.Point{X: 10, Y: 2})
	if got := a.Decide(snap); got != types.Up {
		t.Errorf("Expected up toward food, got %v", got)
	}
}

func TestDecideNeverReversesOrHitsWall(t *testing.T) {
	a := NewAutopilot(0)
	// food behind the snake, wall ahead
	snap := snapshotAt([]types.Point{{X: 19, Y: 5}, {X: 18, Y: 5}}, types.Right, types.Point{X: 0, Y: 5})
	got := a.Decide(snap)
	if got == types.Left || got == types.Right {
		t.Errorf("Expected a vertical escape, got %v", got)
	}
}

func TestDecideAvoidsPocket(t *testing.T) {
	a := NewAutopilot(0)
	// the food sits in a one-cell pocket walled in by the body
	body := []types.Point{
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 3, Y: 6},
		{X: 3, Y: 5}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 3},
	}
	snap := snapshotAt(body, types.Up, types.Point{X: 4, Y: 5})
	if got := a.Decide(snap); got != types.Up {
		t.Errorf("Expected up instead of the pocket, got %v", got)
	}
}

type recordingSender struct {
	cmds chan game.Command
}

func (rs *recordingSender) Send(ctx context.Context, cmd game.Command) error {
	rs.cmds <- cmd
	return nil
}

func TestRunSendsTurnsAndRestarts(t *testing.T) {
	a := NewAutopilot(time.Millisecond)
	rs := &recordingSender{cmds: make(chan game.Command, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Run(ctx, rs)

	start := snapshotAt([]types.Point{{X: 10, Y: 10}}, types.Stopped, types.Point{X: 4, Y: 10})
	start.Status = game.NotStarted
	a.Observe(game.Event{Type: game.EventSnapshot, Snapshot: start})
	select {
	case cmd := <-rs.cmds:
		if cmd.Type != game.CmdTurn || cmd.Heading != types.Left {
			t.Errorf("Expected turn left, got %+v", cmd)
		}
	case <-time.After(time.Second):
		t.Fatal("no command sent")
	}

	over := start
	over.Status = game.GameOver
	a.Observe(game.Event{Type: game.EventSnapshot, Snapshot: over})
	select {
	case cmd := <-rs.cmds:
		if cmd.Type != game.CmdReset {
			t.Errorf("Expected reset, got %+v", cmd)
		}
	case <-time.After(time.Second):
		t.Fatal("no reset sent")
	}
}
