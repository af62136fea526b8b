// Package world contains the entity model of the game: characters, the
// authoritative scene of one simulation tick, and the interpolation used to
// present a scene between two ticks.
package world

import (
	"github.com/plus3/tethered/geom"
	"github.com/plus3/tethered/vmath"
)

// Status is the lifecycle state of a character.
type Status uint8

const (
	StatusAlive Status = iota
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Kind selects how a character is presented and which systems move it.
// It never changes collision behavior.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlayerBody
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlayerBody:
		return "body"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// RGB is an 8-bit color triple.
type RGB [3]uint8

// Character is a player, a player's body or an enemy. Pos is the top-left
// anchor; the bounding rectangle and center are always derived from Pos and Size.
type Character struct {
	Id            EntityId
	Pos           vmath.Vec2
	Size          vmath.Vec2
	Color         RGB
	Name          string
	Speed         float64
	Health        int
	MaxHealth     int
	Status        Status
	Kind          Kind
	FollowPointer bool

	// Target is the pursuit target last resolved for this character, or zero.
	// It is a lookup key into the owning Scene, not a reference.
	Target EntityId
}

// NewCharacter returns a character of the given kind with default
// appearance and stats. The Id is assigned when it joins a Scene.
func NewCharacter(kind Kind, name string) Character {
	return Character{
		Size:      vmath.V(64, 64),
		Color:     RGB{0, 0, 255},
		Name:      name,
		Speed:     1,
		Health:    100,
		MaxHealth: 100,
		Status:    StatusAlive,
		Kind:      kind,
	}
}

// Center returns Pos + Size/2.
func (c *Character) Center() vmath.Vec2 {
	return vmath.Vec2{X: c.Pos.X + c.Size.X*0.5, Y: c.Pos.Y + c.Size.Y*0.5}
}

// SetCenter moves the character so its center lies on p.
func (c *Character) SetCenter(p vmath.Vec2) {
	c.Pos = vmath.Vec2{X: p.X - c.Size.X*0.5, Y: p.Y - c.Size.Y*0.5}
}

// Bounds returns the bounding rectangle.
func (c *Character) Bounds() geom.Rectangle {
	return geom.Rectangle{Position: c.Pos, Size: c.Size}
}

// IsAlive reports whether the character is in the Alive state.
func (c *Character) IsAlive() bool {
	return c.Status == StatusAlive
}

// Collides reports whether the bounding rectangles of c and o overlap,
// edges included.
func (c *Character) Collides(o *Character) bool {
	return geom.RectangleRectangle(c.Bounds(), o.Bounds())
}

// Closest returns whichever of a and b has its center nearer to c's center.
// Ties resolve to b.
func (c *Character) Closest(a, b *Character) *Character {
	center := c.Center()
	da := center.DistanceSquared(a.Center())
	db := center.DistanceSquared(b.Center())
	if da < db {
		return a
	}
	return b
}

// Clone returns an independent copy. Character holds no shared state, so
// the copy keeps the same Id.
func (c *Character) Clone() Character {
	return *c
}
