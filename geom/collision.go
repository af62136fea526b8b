package geom

import "github.com/plus3/tethered/vmath"

// CircleCircle reports whether a and b overlap. Circles that only touch do
// not overlap.
func CircleCircle(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Position.DistanceSquared(b.Position) < r*r
}

// CircleRectangle reports whether c overlaps r. The circle center is clamped
// into r to find the nearest point, which must lie within the radius.
func CircleRectangle(c Circle, r Rectangle) bool {
	min := r.Min()
	max := r.Max()
	nearest := vmath.Vec2{
		X: vmath.Clamp(c.Position.X, min.X, max.X),
		Y: vmath.Clamp(c.Position.Y, min.Y, max.Y),
	}
	return c.Position.DistanceSquared(nearest) <= c.Radius*c.Radius
}

// CircleOrientedRectangle reports whether c overlaps o, by moving the circle
// into o's local frame and testing against the axis-aligned equivalent.
func CircleOrientedRectangle(c Circle, o OrientedRectangle) bool {
	local := Circle{Position: o.toLocal(c.Position), Radius: c.Radius}
	return CircleRectangle(local, o.localBounds())
}

// RectangleRectangle reports whether a and b overlap on both axes.
// Bounds are inclusive: rectangles sharing an edge or a corner collide.
func RectangleRectangle(a, b Rectangle) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMax.X >= bMin.X &&
		aMin.X <= bMax.X &&
		aMax.Y >= bMin.Y &&
		aMin.Y <= bMax.Y
}
