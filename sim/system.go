package sim

import (
	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// System is one stage of the fixed step. Systems may keep state in their own
// fields between steps.
type System interface {
	Execute(frame *StepFrame)
}

// StepFrame is what a system sees during one fixed step.
type StepFrame struct {
	// Tick is the step counter. It holds the value from before this step until
	// StepCounterSystem advances it.
	Tick uint64

	Scene    *world.Scene
	Pointer  vmath.Vec2
	Settings *Settings
	Rand     *vmath.Rand
	Events   *Events
}

func newStepFrame(tick uint64, scene *world.Scene, pointer vmath.Vec2, settings *Settings, rng *vmath.Rand) *StepFrame {
	return &StepFrame{
		Tick:     tick,
		Scene:    scene,
		Pointer:  pointer,
		Settings: settings,
		Rand:     rng,
		Events:   newEvents(),
	}
}
