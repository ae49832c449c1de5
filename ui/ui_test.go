package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

func TestCommandsFor(t *testing.T) {
	tests := []struct {
		name    string
		pressed []int32
		want    []game.Command
	}{
		{"nothing", nil, nil},
		{"arrow", []int32{rl.KeyLeft}, []game.Command{game.Turn(types.Left)}},
		{"wasd", []int32{rl.KeyW}, []game.Command{game.Turn(types.Up)}},
		{"both keys of one binding", []int32{rl.KeyUp, rl.KeyW}, []game.Command{game.Turn(types.Up)}},
		{"pause", []int32{rl.KeySpace}, []game.Command{{Type: game.CmdTogglePause}}},
		{"reset and quit", []int32{rl.KeyR, rl.KeyQ}, []game.Command{{Type: game.CmdReset}, {Type: game.CmdQuit}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := map[int32]bool{}
			for _, k := range tt.pressed {
				down[k] = true
			}
			got := commandsFor(func(k int32) bool { return down[k] })
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("command %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor("matrix").Snake != (rl.Color{R: 0x00, G: 0xff, B: 0x41, A: 255}) {
		t.Errorf("unexpected matrix snake colour")
	}
	if PaletteFor("nope") != PaletteFor("sci") {
		t.Errorf("unknown theme should fall back to sci")
	}
	body, _ := PaletteFor("space").snakeColors(true)
	if body != crashRed {
		t.Errorf("self collision should paint the snake red")
	}
}

func TestOverlayText(t *testing.T) {
	tests := map[game.Status]string{
		game.NotStarted: "Press Arrow to Start",
		game.Running:    "",
		game.Paused:     "PAUSED",
		game.GameOver:   "GAME OVER",
	}
	for status, want := range tests {
		if got := overlayText(status); got != want {
			t.Errorf("%v: expected %q, got %q", status, want, got)
		}
	}
}
