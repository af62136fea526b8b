package world

import (
	"fmt"

	"github.com/plus3/tethered/vmath"
)

// PlayerSlot names one of the two fixed player positions of a Scene.
type PlayerSlot uint8

const (
	SlotA PlayerSlot = iota
	SlotB
)

// Other returns the partner slot.
func (p PlayerSlot) Other() PlayerSlot {
	return 1 - p
}

func (p PlayerSlot) String() string {
	if p == SlotA {
		return "a"
	}
	return "b"
}

// Slots lists both player slots in update order.
var Slots = [2]PlayerSlot{SlotA, SlotB}

// Scene is the authoritative state of one simulation tick.
//
// ABody and BBody are present exactly while the corresponding player is Dead.
// Enemies keep spawn order and are identified across ticks by Id.
type Scene struct {
	A, B    Character
	ABody   *Character
	BBody   *Character
	Enemies []Character
	Score   float64

	serial uint32
	index  enemyIndex
}

// NewScene creates the scene holding players a and b, assigning their ids.
func NewScene(a, b Character) *Scene {
	s := &Scene{}
	a.Kind = KindPlayer
	b.Kind = KindPlayer
	a.Id = s.allocate(KindPlayer)
	b.Id = s.allocate(KindPlayer)
	s.A = a
	s.B = b
	s.index = newEnemyIndex(nil)
	return s
}

func (s *Scene) allocate(kind Kind) EntityId {
	s.serial++
	return NewEntityId(kind, s.serial)
}

// Spawn adds c to the enemy list under a fresh id and returns the id.
func (s *Scene) Spawn(c Character) EntityId {
	c.Kind = KindEnemy
	c.Id = s.allocate(KindEnemy)
	valid := s.index.valid(s.Enemies)
	s.Enemies = append(s.Enemies, c)
	if valid {
		s.index.appended(s.Enemies)
	} else {
		s.index = newEnemyIndex(s.Enemies)
	}
	return c.Id
}

// Player returns the player in slot.
func (s *Scene) Player(slot PlayerSlot) *Character {
	if slot == SlotA {
		return &s.A
	}
	return &s.B
}

// Body returns the body left by the player in slot, or nil.
func (s *Scene) Body(slot PlayerSlot) *Character {
	if slot == SlotA {
		return s.ABody
	}
	return s.BBody
}

func (s *Scene) setBody(slot PlayerSlot, body *Character) {
	if slot == SlotA {
		s.ABody = body
	} else {
		s.BBody = body
	}
}

// Find resolves id to a character of this scene, or nil if it is not present.
func (s *Scene) Find(id EntityId) *Character {
	if !id.Valid() {
		return nil
	}
	switch id {
	case s.A.Id:
		return &s.A
	case s.B.Id:
		return &s.B
	}
	if s.ABody != nil && s.ABody.Id == id {
		return s.ABody
	}
	if s.BBody != nil && s.BBody.Id == id {
		return s.BBody
	}
	if slot, ok := s.enemySlot(id); ok {
		return &s.Enemies[slot]
	}
	return nil
}

func (s *Scene) enemySlot(id EntityId) (int, bool) {
	if !s.index.valid(s.Enemies) {
		s.index = newEnemyIndex(s.Enemies)
	}
	slot, ok, stale := s.index.lookup(s.Enemies, id)
	if stale {
		s.index = newEnemyIndex(s.Enemies)
		slot, ok, _ = s.index.lookup(s.Enemies, id)
	}
	return slot, ok
}

// AliveCount returns how many of the two players are Alive.
func (s *Scene) AliveCount() int {
	n := 0
	if s.A.IsAlive() {
		n++
	}
	if s.B.IsAlive() {
		n++
	}
	return n
}

// Bound reports whether the players move as a pair, which holds while both
// are alive.
func (s *Scene) Bound() bool {
	return s.A.IsAlive() && s.B.IsAlive()
}

// Clone returns a deep copy that shares no memory with s.
func (s *Scene) Clone() Scene {
	c := Scene{
		A:      s.A,
		B:      s.B,
		ABody:  cloneBody(s.ABody),
		BBody:  cloneBody(s.BBody),
		Score:  s.Score,
		serial: s.serial,
	}
	if s.Enemies != nil {
		c.Enemies = make([]Character, len(s.Enemies))
		copy(c.Enemies, s.Enemies)
	}
	c.index = newEnemyIndex(c.Enemies)
	return c
}

func cloneBody(b *Character) *Character {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// Kill moves the player in slot from Alive to Dead. A body with the player's
// current appearance is left behind and the player is recentered on
// respawnAt.
//
// Kill panics if the player is not Alive or already has a body.
func (s *Scene) Kill(slot PlayerSlot, respawnAt vmath.Vec2) *Character {
	p := s.Player(slot)
	if !p.IsAlive() {
		panic(fmt.Sprintf("world: kill of player %s that is not alive", slot))
	}
	if s.Body(slot) != nil {
		panic(fmt.Sprintf("world: kill of player %s that already has a body", slot))
	}

	body := p.Clone()
	body.Id = s.allocate(KindPlayerBody)
	body.Kind = KindPlayerBody
	body.Status = StatusDead
	body.FollowPointer = false
	body.Target = 0
	s.setBody(slot, &body)

	p.SetCenter(respawnAt)
	p.Status = StatusDead
	return &body
}

// Revive moves the player in slot from Dead back to Alive, reclaiming its body
// and restoring health, which is clamped to [1, MaxHealth].
//
// Revive panics if the player is not Dead or has no body.
func (s *Scene) Revive(slot PlayerSlot, health int) {
	p := s.Player(slot)
	if p.IsAlive() {
		panic(fmt.Sprintf("world: revive of player %s that is alive", slot))
	}
	if s.Body(slot) == nil {
		panic(fmt.Sprintf("world: revive of player %s without a body", slot))
	}

	s.setBody(slot, nil)
	p.Health = min(max(health, 1), p.MaxHealth)
	p.Status = StatusAlive
}
