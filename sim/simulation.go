// Package sim implements the fixed-step simulation of the two tethered
// players and the enemies chasing them.
//
// A Simulation owns the authoritative scene. Each call to Step advances it by
// exactly one fixed step, running these systems in order: player movement,
// enemy pursuit, enemy spawn, contact damage, lifecycle, step counter, score.
package sim

import (
	"fmt"

	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// Player template.
const (
	playerWidth   = 42
	playerHeight  = 64
	playerPadding = 2
)

// Simulation advances the authoritative scene one fixed step at a time.
// It is not safe for concurrent use; all scene mutation happens on the
// goroutine that calls Step and ApplyInput.
type Simulation struct {
	settings  Settings
	scene     *world.Scene
	tick      uint64
	rand      *vmath.Rand
	scheduler *Scheduler
	events    []Event
	collect   EventSinkFunc
}

// NewSimulation validates settings and creates a simulation holding the
// initial two-player scene.
func NewSimulation(settings Settings) (*Simulation, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return NewSimulationWithScene(settings, SetupScene(settings))
}

// NewSimulationWithScene creates a simulation that starts from scene, which it
// takes ownership of.
func NewSimulationWithScene(settings Settings, scene *world.Scene) (*Simulation, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("sim: nil scene")
	}

	s := &Simulation{
		settings:  settings,
		scene:     scene,
		rand:      vmath.NewRand(settings.Seed),
		scheduler: NewScheduler(),
	}
	s.collect = func(e Event) { s.events = append(s.events, e) }

	s.scheduler.Register(PlayerMovementSystem{})
	s.scheduler.Register(EnemyPursuitSystem{})
	s.scheduler.Register(EnemySpawnSystem{})
	s.scheduler.Register(ContactDamageSystem{})
	s.scheduler.Register(&LifecycleSystem{})
	s.scheduler.Register(StepCounterSystem{})
	s.scheduler.Register(ScoreSystem{})
	return s, nil
}

// SetupScene returns the initial scene: player a (red) and player b (green)
// side by side at the arena center with a small gap, and no enemies.
func SetupScene(settings Settings) *world.Scene {
	c := settings.Resolution.Center()
	const offset = playerWidth*0.5 + playerPadding

	a := world.NewCharacter(world.KindPlayer, "a")
	a.Pos = vmath.V(c.X-offset, c.Y)
	a.Size = vmath.V(playerWidth, playerHeight)
	a.Color = world.RGB{255, 0, 0}

	b := world.NewCharacter(world.KindPlayer, "b")
	b.Pos = vmath.V(c.X+offset, c.Y)
	b.Size = vmath.V(playerWidth, playerHeight)
	b.Color = world.RGB{0, 255, 0}

	return world.NewScene(a, b)
}

// Scene returns the authoritative scene. Callers must not mutate it while a
// step may run.
func (s *Simulation) Scene() *world.Scene {
	return s.scene
}

// Tick returns the number of steps executed.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Settings returns the configuration the simulation was created with.
func (s *Simulation) Settings() Settings {
	return s.settings
}

// Stats returns per-system execution statistics.
func (s *Simulation) Stats() *SchedulerStats {
	return s.scheduler.GetStats()
}

// Step runs one fixed step using the pointer position from input. The
// returned events stay valid until the next call to Step.
func (s *Simulation) Step(input Input) []Event {
	var pointer vmath.Vec2
	if input != nil {
		pointer = input.PointerPosition()
	}

	s.events = s.events[:0]
	frame := newStepFrame(s.tick, s.scene, pointer, &s.settings, s.rand)
	s.scheduler.Once(frame, s.collect)
	s.tick = frame.Tick
	return s.events
}

// ApplyInput applies the per-frame follow toggles: a released primary button
// toggles a, a released secondary button toggles b, and while the players are
// bound the partner takes the toggled value. It does not call input.Tick.
func (s *Simulation) ApplyInput(input Input) {
	if input == nil {
		return
	}
	if input.PointerReleased(ButtonPrimary) {
		s.toggleFollow(world.SlotA)
	}
	if input.PointerReleased(ButtonSecondary) {
		s.toggleFollow(world.SlotB)
	}
}

func (s *Simulation) toggleFollow(slot world.PlayerSlot) {
	p := s.scene.Player(slot)
	p.FollowPointer = !p.FollowPointer
	if s.scene.Bound() {
		s.scene.Player(slot.Other()).FollowPointer = p.FollowPointer
	}
}
