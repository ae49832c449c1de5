package game

import (
	"context"
	"errors"
	"time"

	"gridsnake/game/types"
	"gridsnake/logging"
)

// ErrStopped is returned by Send once the run loop has exited.
var ErrStopped = errors.New("runner stopped")

type CommandType int

const (
	CmdTurn CommandType = iota
	CmdTogglePause
	CmdReset
	CmdCycleTheme
	CmdQuit
)

// Command is one discrete input event.
type Command struct {
	Type    CommandType
	Heading types.Heading // CmdTurn only
}

func Turn(h types.Heading) Command {
	return Command{Type: CmdTurn, Heading: h}
}

// Timer is a single scheduled tick.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates tick timers.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

type realTimer struct {
	t *time.Timer
}

func (realClock) NewTimer(d time.Duration) Timer {
	return realTimer{t: time.NewTimer(d)}
}

func (rt realTimer) C() <-chan time.Time { return rt.t.C }
func (rt realTimer) Stop() bool          { return rt.t.Stop() }

// Runner serialises inputs and ticks for one Game on a single goroutine.
// It owns at most one outstanding tick timer.
type Runner struct {
	game     *Game
	clock    Clock
	commands chan Command
	done     chan struct{}
	timer    Timer
}

// NewRunner uses the wall clock when clock is nil.
func NewRunner(g *Game, clock Clock) *Runner {
	if clock == nil {
		clock = realClock{}
	}
	return &Runner{
		game:     g,
		clock:    clock,
		commands: make(chan Command, 16),
		done:     make(chan struct{}),
	}
}

// Send queues cmd for the run loop.
func (r *Runner) Send(ctx context.Context, cmd Command) error {
	select {
	case <-r.done:
		return ErrStopped
	default:
	}
	select {
	case r.commands <- cmd:
		return nil
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes commands and ticks until ctx is done or a CmdQuit arrives.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer r.disarm()

	r.game.Publish()
	r.sync()

	for {
		var tick <-chan time.Time
		if r.timer != nil {
			tick = r.timer.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.commands:
			if cmd.Type == CmdQuit {
				logging.Log.Debug("quit requested")
				return nil
			}
			r.apply(cmd)
		case <-tick:
			r.timer = nil
			r.game.Tick()
		}
		r.sync()
	}
}

func (r *Runner) apply(cmd Command) {
	switch cmd.Type {
	case CmdTurn:
		r.game.HandleTurn(cmd.Heading)
	case CmdTogglePause:
		r.game.TogglePause()
	case CmdReset:
		// the old round's timer must be gone before the new round exists
		r.disarm()
		r.game.Reset()
	case CmdCycleTheme:
		r.game.CycleTheme()
	}
}

// sync arms a timer while Running and cancels it otherwise. An armed timer
// is left alone so inputs do not delay the next tick.
func (r *Runner) sync() {
	if r.game.Status() != Running {
		r.disarm()
		return
	}
	if r.timer == nil {
		r.timer = r.clock.NewTimer(r.game.TickInterval())
	}
}

func (r *Runner) disarm() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
