package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

type binding struct {
	keys []int32
	cmd  game.Command
}

var bindings = []binding{
	{[]int32{rl.KeyUp, rl.KeyW}, game.Turn(types.Up)},
	{[]int32{rl.KeyDown, rl.KeyS}, game.Turn(types.Down)},
	{[]int32{rl.KeyLeft, rl.KeyA}, game.Turn(types.Left)},
	{[]int32{rl.KeyRight, rl.KeyD}, game.Turn(types.Right)},
	{[]int32{rl.KeyP, rl.KeySpace}, game.Command{Type: game.CmdTogglePause}},
	{[]int32{rl.KeyR}, game.Command{Type: game.CmdReset}},
	{[]int32{rl.KeyT}, game.Command{Type: game.CmdCycleTheme}},
	{[]int32{rl.KeyQ, rl.KeyEscape}, game.Command{Type: game.CmdQuit}},
}

// PollInput returns the commands for keys pressed since the last frame.
func PollInput() []game.Command {
	return commandsFor(rl.IsKeyPressed)
}

func commandsFor(pressed func(key int32) bool) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		for _, k := range b.keys {
			if pressed(k) {
				cmds = append(cmds, b.cmd)
				break
			}
		}
	}
	return cmds
}
