package geom

import (
	"math"

	"github.com/plus3/tethered/vmath"
)

// PointOnLine reports whether p lies on segment l, within vmath.Epsilon
// scaled by the segment length.
func PointOnLine(p vmath.Vec2, l Line) bool {
	d := l.Direction()
	l2 := d.LengthSquared()
	if l2 == 0 {
		return vmath.NearlyEqual(p.X, l.Start.X) && vmath.NearlyEqual(p.Y, l.Start.Y)
	}

	rel := p.Sub(l.Start)
	if math.Abs(d.Cross(rel)) > vmath.Epsilon*math.Max(1, l2) {
		return false
	}

	t := rel.Dot(d) / l2
	return t >= 0 && t <= 1
}

// PointInCircle reports whether p lies strictly inside c.
func PointInCircle(p vmath.Vec2, c Circle) bool {
	return p.DistanceSquared(c.Position) < c.Radius*c.Radius
}

// PointInRectangle reports whether p lies inside r, edges included.
func PointInRectangle(p vmath.Vec2, r Rectangle) bool {
	min := r.Min()
	max := r.Max()
	return min.X <= p.X && min.Y <= p.Y && p.X <= max.X && p.Y <= max.Y
}

// PointInOrientedRectangle reports whether p lies inside o, edges included.
func PointInOrientedRectangle(p vmath.Vec2, o OrientedRectangle) bool {
	return PointInRectangle(o.toLocal(p), o.localBounds())
}
