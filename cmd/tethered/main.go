package main

import (
	"flag"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/tethered/loop"
	"github.com/plus3/tethered/sim"
)

var (
	configPath = flag.String("config", "", "YAML settings file overlaying the defaults")
	seed       = flag.String("seed", "", "override the random seed")
	muted      = flag.Bool("mute", false, "start with audio muted")
	verbose    = flag.Bool("verbose", false, "log simulation events to stderr")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	settings := sim.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = sim.LoadSettings(*configPath)
		if err != nil {
			log.SetOutput(flag.CommandLine.Output())
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	if *seed != "" {
		settings.Seed = *seed
	}

	simulation, err := sim.NewSimulation(settings)
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("Failed to create simulation: %v", err)
	}

	renderer := &Renderer{}
	sound := newAudio(audio.NewContext(sampleRate), *muted)
	driver := loop.NewDriver(simulation, Input{},
		loop.WithRenderer(renderer),
		loop.WithAudio(sound),
		loop.WithEventSink(sound),
	)

	ebiten.SetWindowSize(int(settings.Resolution.Width)/2, int(settings.Resolution.Height)/2)
	ebiten.SetWindowTitle("tethered")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		Settings: settings,
		Driver:   driver,
		Renderer: renderer,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("Game exited: %v", err)
	}
}
