package game

import (
	"time"

	"gridsnake/game/types"
	"gridsnake/logging"
)

// HandleTurn applies a directional input. While Paused the input resumes
// the round even if the turn itself is rejected. The first accepted turn of
// a round starts it.
func (g *Game) HandleTurn(h types.Heading) bool {
	if g.status == GameOver {
		return false
	}

	changed := false
	if g.status == Paused {
		g.status = Running
		changed = true
	}

	accepted := g.directionMgr.RequestTurn(h)
	if !accepted {
		logging.Log.Debugf("turn %s rejected (heading %s)", h, g.directionMgr.Current())
	}

	if accepted && g.status == NotStarted {
		g.status = Running
		g.startTime = time.Now()
		logging.Log.Infof("round %s started heading %s", g.UUID, h)
		g.emit(EventRoundStarted)
		changed = true
	}

	if changed {
		g.emit(EventSnapshot)
	}
	return accepted
}

// TogglePause flips Running and Paused. It does nothing before the first
// move or after game over.
func (g *Game) TogglePause() bool {
	switch g.status {
	case Running:
		g.status = Paused
	case Paused:
		g.status = Running
	default:
		return false
	}
	g.emit(EventSnapshot)
	return true
}

// Reset throws the round away and starts a NotStarted one. The best score
// lives in the store and survives.
func (g *Game) Reset() {
	old := g.UUID
	g.newRound()
	logging.Log.Debugf("round %s reset, new round %s", old, g.UUID)
	g.emit(EventSnapshot)
}

// CycleTheme moves to the next theme name.
func (g *Game) CycleTheme() {
	for i, t := range Themes {
		if t == g.theme {
			g.theme = Themes[(i+1)%len(Themes)]
			break
		}
	}
	g.emit(EventSnapshot)
}
