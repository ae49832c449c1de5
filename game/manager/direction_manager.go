package manager

import (
	"gridsnake/game/types"
)

// DirectionManager turns raw directional input into the heading the next
// tick uses. At most one turn is accepted between two BeginTick calls.
type DirectionManager struct {
	current  types.Heading
	implicit types.Heading // heading a Stopped snake is treated as facing
	locked   bool
	halted   bool
}

// NewDirectionManager starts Stopped. implicit is the facing used to reject
// the first move of a multi-segment snake; pass types.Stopped to allow any.
func NewDirectionManager(implicit types.Heading) *DirectionManager {
	dm := &DirectionManager{}
	dm.Reset(implicit)
	return dm
}

// RequestTurn reports whether h became the current heading.
func (dm *DirectionManager) RequestTurn(h types.Heading) bool {
	if dm.locked || dm.halted || h.IsStopped() {
		return false
	}

	facing := dm.current
	if facing.IsStopped() {
		facing = dm.implicit
	}
	if !facing.IsStopped() && h == facing.Opposite() {
		return false
	}

	dm.current = h
	dm.locked = true
	return true
}

// BeginTick unlocks turning for the tick that is starting.
func (dm *DirectionManager) BeginTick() {
	dm.locked = false
}

// Halt rejects all further turns until Reset. Used on game over.
func (dm *DirectionManager) Halt() {
	dm.halted = true
}

func (dm *DirectionManager) Reset(implicit types.Heading) {
	dm.current = types.Stopped
	dm.implicit = implicit
	dm.locked = false
	dm.halted = false
}

func (dm *DirectionManager) Current() types.Heading {
	return dm.current
}

func (dm *DirectionManager) Locked() bool {
	return dm.locked
}
