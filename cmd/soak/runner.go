package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/plus3/tethered/loop"
	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// Config describes one soak run.
type Config struct {
	Settings sim.Settings

	// Frames is the number of frame callbacks fed to the driver.
	Frames int

	// MinFrame and MaxFrame bound the pseudo-random frame deltas.
	MinFrame time.Duration
	MaxFrame time.Duration

	// StallEvery inserts a frame longer than MaxFrameDelta every n frames.
	// Zero disables stalls.
	StallEvery int

	// ToggleEvery releases the primary button every n frames, so the players
	// alternate between following the pointer and standing still.
	ToggleEvery int
}

// DefaultConfig returns a configuration exercising every driver path.
func DefaultConfig(settings sim.Settings) Config {
	return Config{
		Settings:    settings,
		Frames:      20000,
		MinFrame:    time.Millisecond,
		MaxFrame:    34 * time.Millisecond,
		StallEvery:  5000,
		ToggleEvery: 240,
	}
}

// EventCount is the number of events of one kind.
type EventCount struct {
	Kind  sim.EventKind
	Count int
}

// Result is what a soak run measured.
type Result struct {
	Ticks      uint64
	Driver     loop.Stats
	Scheduler  *sim.SchedulerStats
	Events     []EventCount
	Score      float64
	Alive      int
	MaxEnemies int
	Rendered   int
	Digest     uint64
	Elapsed    time.Duration
}

type headless struct {
	frames     int
	maxEnemies int
}

func (h *headless) Render(scene world.Scene, _ vmath.Vec2) {
	h.frames++
	h.maxEnemies = max(h.maxEnemies, len(scene.Enemies))
}

type recorder struct {
	digest *digest
	counts map[sim.EventKind]int
	err    error
}

func (r *recorder) HandleEvent(e sim.Event) {
	r.counts[e.Kind]++
	if err := r.digest.event(e); err != nil && r.err == nil {
		r.err = err
	}
}

// runSoak drives a fresh simulation through cfg.Frames scripted frames. The
// frame deltas and input are derived from the settings seed, so equal configs
// produce equal digests.
func runSoak(cfg Config) (*Result, error) {
	simulation, err := sim.NewSimulation(cfg.Settings)
	if err != nil {
		return nil, err
	}
	if cfg.MinFrame <= 0 || cfg.MaxFrame < cfg.MinFrame {
		return nil, fmt.Errorf("invalid frame range %s..%s", cfg.MinFrame, cfg.MaxFrame)
	}

	renderer := &headless{}
	rec := &recorder{digest: newDigest(), counts: make(map[sim.EventKind]int)}
	input := &sim.StaticInput{}
	driver := loop.NewDriver(simulation, input,
		loop.WithRenderer(renderer),
		loop.WithEventSink(rec),
	)

	frames := vmath.NewRand(cfg.Settings.Seed + "/frames")
	center := cfg.Settings.Resolution.Center()
	radius := min(cfg.Settings.Resolution.Width, cfg.Settings.Resolution.Height) * 0.3

	start := time.Now()
	driver.Start()

	var now time.Duration
	driver.Frame(now)
	for i := 1; i <= cfg.Frames; i++ {
		if cfg.StallEvery > 0 && i%cfg.StallEvery == 0 {
			now += cfg.Settings.MaxFrameDelta + time.Millisecond
		} else {
			now += time.Duration(frames.Range(float64(cfg.MinFrame), float64(cfg.MaxFrame)))
		}

		angle := float64(i) * 0.01
		input.Pointer = center.Add(vmath.V(math.Cos(angle), math.Sin(angle)).Scale(radius))
		if cfg.ToggleEvery > 0 && i%cfg.ToggleEvery == 0 {
			input.Release(sim.ButtonPrimary)
		}

		driver.Frame(now)
		if err := rec.digest.scene(simulation.Tick(), simulation.Scene()); err != nil {
			return nil, fmt.Errorf("failed to encode scene at frame %d: %w", i, err)
		}
		if rec.err != nil {
			return nil, fmt.Errorf("failed to encode event at frame %d: %w", i, rec.err)
		}
	}
	driver.Stop()

	scene := simulation.Scene()
	result := &Result{
		Ticks:      simulation.Tick(),
		Driver:     driver.Stats(),
		Scheduler:  simulation.Stats(),
		Score:      scene.Score,
		Alive:      scene.AliveCount(),
		MaxEnemies: renderer.maxEnemies,
		Rendered:   renderer.frames,
		Digest:     rec.digest.Sum64(),
		Elapsed:    time.Since(start),
	}
	for _, kind := range []sim.EventKind{sim.EnemySpawned, sim.PlayerDied, sim.PlayerRespawned, sim.BothDead} {
		result.Events = append(result.Events, EventCount{Kind: kind, Count: rec.counts[kind]})
	}

	log.Printf("[Soak] %d frames, %d ticks, digest %016x", cfg.Frames, result.Ticks, result.Digest)
	return result, nil
}
