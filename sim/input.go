package sim

import "github.com/plus3/tethered/vmath"

// Pointer buttons read by the follow toggles.
const (
	ButtonPrimary   = 0
	ButtonSecondary = 2
)

// KeyMute toggles audio.
const KeyMute = "m"

// Input is the polled input provider. The released queries report edges
// since the previous Tick; Tick is called once per frame after the
// simulation has read them.
type Input interface {
	PointerPosition() vmath.Vec2
	PointerReleased(button int) bool
	KeyReleased(key string) bool
	Tick()
}

// StaticInput is an Input whose state is set directly. It is used by
// headless runners and tests.
type StaticInput struct {
	Pointer vmath.Vec2
	Buttons map[int]bool
	Keys    map[string]bool
	Ticks   int
}

func (s *StaticInput) PointerPosition() vmath.Vec2 {
	return s.Pointer
}

func (s *StaticInput) PointerReleased(button int) bool {
	return s.Buttons[button]
}

func (s *StaticInput) KeyReleased(key string) bool {
	return s.Keys[key]
}

// Release marks button as released until the next Tick.
func (s *StaticInput) Release(button int) {
	if s.Buttons == nil {
		s.Buttons = make(map[int]bool)
	}
	s.Buttons[button] = true
}

// ReleaseKey marks key as released until the next Tick.
func (s *StaticInput) ReleaseKey(key string) {
	if s.Keys == nil {
		s.Keys = make(map[string]bool)
	}
	s.Keys[key] = true
}

// Tick clears every released edge.
func (s *StaticInput) Tick() {
	clear(s.Buttons)
	clear(s.Keys)
	s.Ticks++
}
