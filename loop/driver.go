// Package loop drives a simulation from an external frame callback.
//
// The Driver turns arbitrary frame timestamps into whole fixed steps,
// carrying the remainder between frames, and hands an interpolated copy of
// the scene to the renderer.
package loop

import (
	"log"
	"time"

	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// Renderer receives one presentation scene per frame. The scene is a copy the
// renderer may keep or modify.
type Renderer interface {
	Render(scene world.Scene, pointer vmath.Vec2)
}

// Audio is the sequencer advanced once per frame.
type Audio interface {
	Tick()
	ToggleMute()
}

// Stats summarizes what the driver has done.
type Stats struct {
	Frames    uint64
	Steps     uint64
	Discarded uint64
	LastSteps int
	Alpha     float64
}

// Option configures a Driver.
type Option func(*Driver)

// WithRenderer sets the renderer.
func WithRenderer(r Renderer) Option {
	return func(d *Driver) { d.renderer = r }
}

// WithAudio sets the audio sequencer.
func WithAudio(a Audio) Option {
	return func(d *Driver) { d.audio = a }
}

// WithEventSink forwards the events of every step to sink.
func WithEventSink(sink sim.EventSink) Option {
	return func(d *Driver) { d.sink = sink }
}

// Driver is the fixed-timestep loop. It is Stopped until Start is called.
type Driver struct {
	sim      *sim.Simulation
	input    sim.Input
	renderer Renderer
	audio    Audio
	sink     sim.EventSink

	step     time.Duration
	maxDelta time.Duration

	running     bool
	then        time.Duration
	hasThen     bool
	accumulator time.Duration

	// prev is the scene as it was before the latest step.
	prev world.Scene

	stats Stats
}

// NewDriver creates a stopped driver for simulation polling input.
func NewDriver(simulation *sim.Simulation, input sim.Input, opts ...Option) *Driver {
	settings := simulation.Settings()
	d := &Driver{
		sim:      simulation,
		input:    input,
		step:     settings.StepDuration,
		maxDelta: settings.MaxFrameDelta,
		prev:     simulation.Scene().Clone(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start resumes frame processing.
func (d *Driver) Start() {
	if !d.running {
		log.Printf("[Driver] started at tick %d", d.sim.Tick())
	}
	d.running = true
}

// Stop halts frame processing and forgets the reference timestamp, so the
// first frame after Start is not measured against the time spent stopped.
func (d *Driver) Stop() {
	if d.running {
		log.Printf("[Driver] stopped at tick %d", d.sim.Tick())
	}
	d.running = false
	d.hasThen = false
}

// Toggle switches between Start and Stop.
func (d *Driver) Toggle() {
	if d.running {
		d.Stop()
	} else {
		d.Start()
	}
}

// Running reports whether frames are being processed.
func (d *Driver) Running() bool {
	return d.running
}

// Simulation returns the driven simulation.
func (d *Driver) Simulation() *sim.Simulation {
	return d.sim
}

// Stats returns a snapshot of the driver counters.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Alpha returns the fraction of a step left in the accumulator after the
// latest frame.
func (d *Driver) Alpha() float64 {
	return d.stats.Alpha
}

// Frame processes one frame callback at timestamp now and returns the number
// of fixed steps it executed.
//
// The first frame after Start only records the timestamp. A frame more than
// MaxFrameDelta after the previous one is discarded and the clock resynced.
// Otherwise the elapsed time is accumulated and consumed in whole steps,
// after which input is processed and the interpolated scene is rendered.
func (d *Driver) Frame(now time.Duration) int {
	if !d.running {
		return 0
	}
	if !d.hasThen {
		d.then, d.hasThen = now, true
		return 0
	}

	delta := now - d.then
	d.then = now
	if delta > d.maxDelta {
		d.stats.Discarded++
		log.Printf("[Driver] discarded frame delta of %s", delta)
		return 0
	}

	d.accumulator += delta
	steps := 0
	for d.accumulator >= d.step {
		d.prev = d.sim.Scene().Clone()
		events := d.sim.Step(d.input)
		if d.sink != nil {
			for _, e := range events {
				d.sink.HandleEvent(e)
			}
		}
		d.accumulator -= d.step
		steps++
	}

	d.stats.Frames++
	d.stats.Steps += uint64(steps)
	d.stats.LastSteps = steps
	d.stats.Alpha = float64(d.accumulator) / float64(d.step)

	if d.audio != nil {
		d.audio.Tick()
	}
	d.processInput()
	d.render()
	return steps
}

func (d *Driver) processInput() {
	if d.input == nil {
		return
	}
	d.sim.ApplyInput(d.input)
	if d.input.KeyReleased(sim.KeyMute) && d.audio != nil {
		d.audio.ToggleMute()
	}
	d.input.Tick()
}

func (d *Driver) render() {
	if d.renderer == nil {
		return
	}
	var pointer vmath.Vec2
	if d.input != nil {
		pointer = d.input.PointerPosition()
	}
	d.renderer.Render(world.Interpolate(&d.prev, d.sim.Scene(), d.stats.Alpha), pointer)
}
