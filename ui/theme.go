package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palette is the colour set of one theme.
type Palette struct {
	Background rl.Color
	Grid       rl.Color
	Snake      rl.Color
	Glow       rl.Color
	Food       rl.Color
	Text       rl.Color
}

var (
	crashRed = rl.Color{R: 0xff, G: 0x00, B: 0x00, A: 255}

	palettes = map[string]Palette{
		"sci": {
			Background: rl.Color{R: 0x0a, G: 0x0a, B: 0x1a, A: 255},
			Grid:       rl.Color{R: 0x14, G: 0x14, B: 0x2e, A: 255},
			Snake:      rl.Color{R: 0x00, G: 0xf2, B: 0xff, A: 255},
			Glow:       rl.Color{R: 0x00, G: 0xf2, B: 0xff, A: 255},
			Food:       rl.Color{R: 0xff, G: 0x00, B: 0x55, A: 255},
			Text:       rl.RayWhite,
		},
		"matrix": {
			Background: rl.Black,
			Grid:       rl.Color{R: 0x00, G: 0x1a, B: 0x08, A: 255},
			Snake:      rl.Color{R: 0x00, G: 0xff, B: 0x41, A: 255},
			Glow:       rl.Color{R: 0x00, G: 0xff, B: 0x41, A: 255},
			Food:       rl.White,
			Text:       rl.Color{R: 0x00, G: 0xff, B: 0x41, A: 255},
		},
		"space": {
			Background: rl.Color{R: 0x05, G: 0x05, B: 0x12, A: 255},
			Grid:       rl.Color{R: 0x12, G: 0x12, B: 0x26, A: 255},
			Snake:      rl.White,
			Glow:       rl.Color{R: 0x88, G: 0x88, B: 0xff, A: 255},
			Food:       rl.Color{R: 0xff, G: 0xcc, B: 0x00, A: 255},
			Text:       rl.White,
		},
	}
)

// PaletteFor falls back to the sci theme for unknown names.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["sci"]
}

// snakeColors turns the whole snake red after it bit itself.
func (p Palette) snakeColors(selfHit bool) (body, glow rl.Color) {
	if selfHit {
		return crashRed, crashRed
	}
	return p.Snake, p.Glow
}
