package sim

import (
	"fmt"

	"github.com/plus3/tethered/vmath"
	"github.com/plus3/tethered/world"
)

// EventKind identifies what happened during a step.
type EventKind uint8

const (
	EnemySpawned EventKind = iota + 1
	PlayerDied
	PlayerRespawned
	// BothDead is the terminal signal: it is emitted on the step both players
	// become Dead. The core takes no action on it.
	BothDead
)

func (k EventKind) String() string {
	switch k {
	case EnemySpawned:
		return "enemy-spawned"
	case PlayerDied:
		return "player-died"
	case PlayerRespawned:
		return "player-respawned"
	case BothDead:
		return "both-dead"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is a notification produced by a step.
type Event struct {
	Kind EventKind
	// Tick is the step counter value the step started with.
	Tick     uint64
	Entity   world.EntityId
	Slot     world.PlayerSlot
	Position vmath.Vec2
}

// EventSink receives flushed events.
type EventSink interface {
	HandleEvent(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) HandleEvent(e Event) {
	f(e)
}

// Events buffers notifications emitted by systems. They are delivered after
// all systems of the step ran, so no collaborator observes a partial step.
type Events struct {
	queued []Event
	defers []func()
}

func newEvents() *Events {
	return &Events{}
}

// Emit queues an event.
func (e *Events) Emit(ev Event) {
	e.queued = append(e.queued, ev)
}

// Defer queues a function to run after the queued events were delivered.
func (e *Events) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.queued)
}

// Flush delivers every queued event to sink in emission order, runs deferred
// functions and resets the buffer. A nil sink drops the events.
func (e *Events) Flush(sink EventSink) {
	if sink != nil {
		for _, ev := range e.queued {
			sink.HandleEvent(ev)
		}
	}
	for _, fn := range e.defers {
		fn()
	}
	e.queued = e.queued[:0]
	e.defers = e.defers[:0]
}
