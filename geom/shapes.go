// Package geom holds the 2D shape primitives and the stateless overlap
// predicates the simulation uses for contact and respawn checks.
package geom

import (
	"math"

	"github.com/plus3/tethered/vmath"
)

// Rectangle is an axis-aligned rectangle anchored at Position with extent Size.
// Size may be negative on either axis.
type Rectangle struct {
	Position vmath.Vec2
	Size     vmath.Vec2
}

// NewRectangle returns the rectangle anchored at origin with the given size.
func NewRectangle(origin, size vmath.Vec2) Rectangle {
	return Rectangle{Position: origin, Size: size}
}

// RectangleFromMinMax returns the rectangle spanning min to max.
func RectangleFromMinMax(min, max vmath.Vec2) Rectangle {
	return Rectangle{Position: min, Size: max.Sub(min)}
}

// Min returns the corner with the smallest coordinates on both axes.
func (r Rectangle) Min() vmath.Vec2 {
	p2 := r.Position.Add(r.Size)
	return vmath.Vec2{X: math.Min(r.Position.X, p2.X), Y: math.Min(r.Position.Y, p2.Y)}
}

// Max returns the corner with the largest coordinates on both axes.
func (r Rectangle) Max() vmath.Vec2 {
	p2 := r.Position.Add(r.Size)
	return vmath.Vec2{X: math.Max(r.Position.X, p2.X), Y: math.Max(r.Position.Y, p2.Y)}
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() vmath.Vec2 {
	return r.Position.Add(r.Size.Scale(0.5))
}

// OrientedRectangle is a rectangle centered on Position, rotated by
// Orientation radians, extending HalfExtents along its local axes.
type OrientedRectangle struct {
	Position    vmath.Vec2
	HalfExtents vmath.Vec2
	Orientation float64
}

// NewOrientedRectangle returns an oriented rectangle. A zero HalfExtents
// defaults to (1, 1).
func NewOrientedRectangle(position, halfExtents vmath.Vec2, orientation float64) OrientedRectangle {
	if halfExtents.IsZero() {
		halfExtents = vmath.V(1, 1)
	}
	return OrientedRectangle{Position: position, HalfExtents: halfExtents, Orientation: orientation}
}

// toLocal maps p into the rectangle's axis-aligned frame, where the
// rectangle spans (0, 0) to 2*HalfExtents.
func (o OrientedRectangle) toLocal(p vmath.Vec2) vmath.Vec2 {
	var r vmath.Vec2
	vmath.SubInto(&r, p, o.Position)
	vmath.TransformPointInto(&r, vmath.FromRotation(-o.Orientation), r)
	return *vmath.AddInto(&r, r, o.HalfExtents)
}

// localBounds is the oriented rectangle expressed in its own frame.
func (o OrientedRectangle) localBounds() Rectangle {
	return Rectangle{Size: o.HalfExtents.Scale(2)}
}

// Circle is a circle centered on Position.
type Circle struct {
	Position vmath.Vec2
	Radius   float64
}

// NewCircle returns a circle.
func NewCircle(position vmath.Vec2, radius float64) Circle {
	return Circle{Position: position, Radius: radius}
}

// PointAt returns the point on the circle at angle radians.
func (c Circle) PointAt(angle float64) vmath.Vec2 {
	s, co := math.Sincos(angle)
	return vmath.Vec2{X: c.Position.X + c.Radius*co, Y: c.Position.Y + c.Radius*s}
}

// Line is a segment from Start to End.
type Line struct {
	Start vmath.Vec2
	End   vmath.Vec2
}

// NewLine returns a segment.
func NewLine(start, end vmath.Vec2) Line {
	return Line{Start: start, End: end}
}

// Midpoint returns the middle of the segment.
func (l Line) Midpoint() vmath.Vec2 {
	return l.Start.Lerp(l.End, 0.5)
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// LengthSquared returns the squared segment length.
func (l Line) LengthSquared() float64 {
	return l.Start.DistanceSquared(l.End)
}

// Direction returns End - Start.
func (l Line) Direction() vmath.Vec2 {
	return l.End.Sub(l.Start)
}

// Lengthen returns the segment extended by n beyond End, keeping Start.
// A degenerate segment is returned unchanged.
func (l Line) Lengthen(n float64) Line {
	dir := l.Direction().Normalize()
	if dir.IsZero() {
		return l
	}
	return Line{Start: l.Start, End: l.Start.Add(dir.Scale(l.Length() + n))}
}
