package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

const (
	strokeWidth   = 4
	pointerRadius = 16
	bodyAlpha     = 0.35
)

var clearColor = color.RGBA{252, 255, 238, 255}

// Renderer keeps the latest presentation scene handed over by the driver and
// paints it when ebiten asks for a frame.
type Renderer struct {
	scene   world.Scene
	pointer vmath.Vec2
	ready   bool
}

// Render implements loop.Renderer.
func (r *Renderer) Render(scene world.Scene, pointer vmath.Vec2) {
	r.scene = scene
	r.pointer = pointer
	r.ready = true
}

// Draw paints the latest scene onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	if !r.ready {
		return
	}
	scene := &r.scene

	vector.DrawFilledCircle(screen, float32(r.pointer.X), float32(r.pointer.Y), pointerRadius, pointerColor(scene), true)

	for _, body := range []*world.Character{scene.ABody, scene.BBody} {
		if body != nil {
			drawCharacter(screen, body, bodyAlpha)
		}
	}
	drawCharacter(screen, &scene.A, 1)
	drawCharacter(screen, &scene.B, 1)
	for i := range scene.Enemies {
		drawCharacter(screen, &scene.Enemies[i], 1)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %.0f", scene.Score), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("A %3d  B %3d  ENEMIES %d",
		scene.A.Health, scene.B.Health, len(scene.Enemies)), 16, 32)
	if scene.AliveCount() == 0 {
		centerText(screen, "GAME OVER")
	}
}

func drawCharacter(screen *ebiten.Image, c *world.Character, alpha float64) {
	x, y := float32(c.Pos.X), float32(c.Pos.Y)
	w, h := float32(c.Size.X), float32(c.Size.Y)

	vector.DrawFilledRect(screen, x, y, w, h, rgba(c.Color, alpha), false)
	if c.FollowPointer {
		vector.StrokeRect(screen, x, y, w, h, strokeWidth, rgba(darken(c.Color, 50), alpha), false)
	}
}

func centerText(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	// the debug font is 6x16 per glyph
	x := b.Dx()/2 - len(msg)*6/2
	y := b.Dy()/2 - 8
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}
