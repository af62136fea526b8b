package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tethered/loop"
	"github.com/plus3/tethered/sim"
)

// Game adapts the loop driver to ebiten. Every ebiten update is one frame
// callback; ebiten's own tick rate has no influence on the fixed step.
type Game struct {
	Settings sim.Settings
	Driver   *loop.Driver
	Renderer *Renderer

	origin  time.Time
	started bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.started {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.started = true
			g.origin = time.Now()
			g.Driver.Start()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Driver.Toggle()
	}
	g.Driver.Frame(time.Since(g.origin))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)
	switch {
	case !g.started:
		centerText(screen, "CLICK TO START")
	case !g.Driver.Running():
		centerText(screen, "PAUSED")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.Settings.Resolution.Width), int(g.Settings.Resolution.Height)
}
