package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/vmath"
)

var keyNames = map[string]ebiten.Key{
	sim.KeyMute: ebiten.KeyM,
	"p":         ebiten.KeyP,
	"escape":    ebiten.KeyEscape,
}

// Input polls ebiten. Edge state is kept by inpututil per ebiten tick, so
// Tick has nothing to advance.
type Input struct{}

// PointerPosition returns the cursor in logical screen coordinates, which
// Layout maps one to one onto the arena.
func (Input) PointerPosition() vmath.Vec2 {
	x, y := ebiten.CursorPosition()
	return vmath.V(float64(x), float64(y))
}

// PointerReleased reports a release of button, numbered left 0, middle 1,
// right 2.
func (Input) PointerReleased(button int) bool {
	var b ebiten.MouseButton
	switch button {
	case 0:
		b = ebiten.MouseButtonLeft
	case 1:
		b = ebiten.MouseButtonMiddle
	case 2:
		b = ebiten.MouseButtonRight
	default:
		return false
	}
	return inpututil.IsMouseButtonJustReleased(b)
}

func (Input) KeyReleased(key string) bool {
	k, ok := keyNames[key]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustReleased(k)
}

func (Input) Tick() {}
