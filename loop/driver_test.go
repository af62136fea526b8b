package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tethered/loop"
	"github.com/plus3/tethered/sim"
	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	scenes   []world.Scene
	pointers []vmath.Vec2
}

func (r *recordingRenderer) Render(scene world.Scene, pointer vmath.Vec2) {
	r.scenes = append(r.scenes, scene)
	r.pointers = append(r.pointers, pointer)
}

type countingAudio struct {
	ticks  int
	toggle int
}

func (a *countingAudio) Tick()       { a.ticks++ }
func (a *countingAudio) ToggleMute() { a.toggle++ }

type fixture struct {
	sim      *sim.Simulation
	input    *sim.StaticInput
	renderer *recordingRenderer
	audio    *countingAudio
	events   []sim.Event
	driver   *loop.Driver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := sim.NewSimulation(sim.DefaultSettings())
	require.NoError(t, err)

	f := &fixture{
		sim:      s,
		input:    &sim.StaticInput{},
		renderer: &recordingRenderer{},
		audio:    &countingAudio{},
	}
	f.driver = loop.NewDriver(s, f.input,
		loop.WithRenderer(f.renderer),
		loop.WithAudio(f.audio),
		loop.WithEventSink(sim.EventSinkFunc(func(e sim.Event) { f.events = append(f.events, e) })),
	)
	f.driver.Start()
	return f
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestDriverStartsStopped(t *testing.T) {
	s, err := sim.NewSimulation(sim.DefaultSettings())
	require.NoError(t, err)
	d := loop.NewDriver(s, nil)

	assert.False(t, d.Running())
	d.Frame(0)
	assert.Equal(t, 0, d.Frame(ms(50)))
	assert.Equal(t, uint64(0), s.Tick())
}

func TestDriverFirstFrameOnlyRecordsTimestamp(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, 0, f.driver.Frame(ms(5000)))
	assert.Empty(t, f.renderer.scenes)
	assert.Equal(t, 0, f.audio.ticks)
	assert.Equal(t, uint64(0), f.sim.Tick())

	assert.Equal(t, 2, f.driver.Frame(ms(5025)))
	assert.InDelta(t, 0.5, f.driver.Alpha(), 1e-9)
	assert.Len(t, f.renderer.scenes, 1)
	assert.Equal(t, 1, f.audio.ticks)
}

func TestDriverAccumulatesRemainder(t *testing.T) {
	f := newFixture(t)
	f.driver.Frame(0)

	for i, tc := range []struct {
		at    int
		steps int
		alpha float64
	}{
		{4, 0, 0.4},
		{8, 0, 0.8},
		{12, 1, 0.2},
		{47, 3, 0.7},
		{1047, 100, 0.7},
	} {
		assert.Equal(t, tc.steps, f.driver.Frame(ms(tc.at)), "frame %d", i)
		assert.InDelta(t, tc.alpha, f.driver.Alpha(), 1e-9, "frame %d", i)
	}
	assert.Equal(t, uint64(104), f.sim.Tick())

	stats := f.driver.Stats()
	assert.Equal(t, uint64(5), stats.Frames)
	assert.Equal(t, uint64(104), stats.Steps)
	assert.Equal(t, 100, stats.LastSteps)
	assert.Equal(t, uint64(0), stats.Discarded)
}

func TestDriverDiscardsLongFrames(t *testing.T) {
	f := newFixture(t)
	f.driver.Frame(0)
	f.driver.Frame(ms(15))
	require.Equal(t, uint64(1), f.sim.Tick())
	rendered := len(f.renderer.scenes)

	assert.Equal(t, 0, f.driver.Frame(ms(15+1001)))
	assert.Equal(t, uint64(1), f.sim.Tick(), "no catch-up after a stall")
	assert.Len(t, f.renderer.scenes, rendered, "a discarded frame is not rendered")
	assert.Equal(t, uint64(1), f.driver.Stats().Discarded)

	// the clock is resynced to the discarded frame; the remainder is kept
	assert.Equal(t, 1, f.driver.Frame(ms(15+1001+5)))
	assert.Equal(t, uint64(2), f.sim.Tick())
}

func TestDriverStopClearsTimestamp(t *testing.T) {
	f := newFixture(t)
	f.driver.Frame(0)
	f.driver.Frame(ms(10))
	require.Equal(t, uint64(1), f.sim.Tick())

	f.driver.Stop()
	assert.False(t, f.driver.Running())
	assert.Equal(t, 0, f.driver.Frame(ms(20)), "frames are ignored while stopped")

	f.driver.Start()
	assert.Equal(t, 0, f.driver.Frame(ms(900_000)))
	assert.Equal(t, uint64(0), f.driver.Stats().Discarded, "resuming is not a stall")
	assert.Equal(t, 1, f.driver.Frame(ms(900_010)))
}

func TestDriverToggle(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.driver.Running())

	f.driver.Toggle()
	assert.False(t, f.driver.Running())
	f.driver.Toggle()
	assert.True(t, f.driver.Running())
}

func TestDriverRendersInterpolatedCopy(t *testing.T) {
	f := newFixture(t)
	scene := f.sim.Scene()
	scene.A.FollowPointer = true
	scene.B.FollowPointer = true
	f.input.Pointer = vmath.V(1e6, scene.A.Center().Y)
	start := scene.A.Pos

	f.driver.Frame(0)
	f.driver.Frame(ms(15))
	require.Len(t, f.renderer.scenes, 1)

	rendered := f.renderer.scenes[0]
	assert.InDelta(t, start.X+0.5, rendered.A.Pos.X, 1e-6, "half way between the last two steps")
	assert.InDelta(t, start.X+1, scene.A.Pos.X, 1e-6)
	assert.Equal(t, vmath.V(1e6, scene.A.Center().Y), f.renderer.pointers[0])

	rendered.A.Pos = vmath.V(-1, -1)
	rendered.Enemies[0].Pos = vmath.V(-1, -1)
	assert.NotEqual(t, vmath.V(-1, -1), scene.A.Pos)
	assert.NotEqual(t, vmath.V(-1, -1), scene.Enemies[0].Pos)
}

func TestDriverForwardsEvents(t *testing.T) {
	f := newFixture(t)
	f.driver.Frame(0)
	f.driver.Frame(ms(30))

	require.Len(t, f.events, 1)
	assert.Equal(t, sim.EnemySpawned, f.events[0].Kind)
}

func TestDriverProcessesInputOncePerFrame(t *testing.T) {
	f := newFixture(t)
	f.driver.Frame(0)

	f.input.Release(sim.ButtonPrimary)
	f.input.ReleaseKey(sim.KeyMute)
	f.driver.Frame(ms(40))

	scene := f.sim.Scene()
	assert.True(t, scene.A.FollowPointer)
	assert.True(t, scene.B.FollowPointer)
	assert.Equal(t, 1, f.audio.toggle)
	assert.Equal(t, 1, f.input.Ticks, "input edges are consumed after the frame")

	f.driver.Frame(ms(41))
	assert.True(t, scene.A.FollowPointer, "a consumed edge does not toggle again")
	assert.Equal(t, 1, f.audio.toggle)
	assert.Equal(t, 2, f.input.Ticks)
	assert.True(t, f.renderer.scenes[len(f.renderer.scenes)-1].A.FollowPointer)
}

func TestRun(t *testing.T) {
	s, err := sim.NewSimulation(sim.DefaultSettings())
	require.NoError(t, err)
	renderer := &recordingRenderer{}
	d := loop.NewDriver(s, &sim.StaticInput{}, loop.WithRenderer(renderer))

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	loop.Run(ctx, d, 5*time.Millisecond)

	assert.False(t, d.Running(), "Run stops the driver on return")
	assert.Greater(t, s.Tick(), uint64(0))
	assert.NotEmpty(t, renderer.scenes)
}
