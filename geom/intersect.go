package geom

import (
	"math"

	"github.com/plus3/tethered/vmath"
)

// LinePoint reports whether p lies on l.
func LinePoint(l Line, p vmath.Vec2) bool {
	return PointOnLine(p, l)
}

// PointLine is LinePoint with its arguments swapped.
func PointLine(p vmath.Vec2, l Line) bool {
	return PointOnLine(p, l)
}

// LineCircle reports whether segment l passes within c. The circle center is
// projected onto the segment; projections falling outside [0, 1] are rejected
// before the distance test.
func LineCircle(l Line, c Circle) bool {
	ab := l.Direction()
	ab2 := ab.Dot(ab)
	if ab2 == 0 {
		return PointInCircle(l.Start, c)
	}

	t := c.Position.Sub(l.Start).Dot(ab) / ab2
	if t < 0 || t > 1 {
		return false
	}

	var closest vmath.Vec2
	vmath.ScaleInto(&closest, ab, t)
	vmath.AddInto(&closest, closest, l.Start)
	return PointInCircle(closest, c)
}

// CircleLine is LineCircle with its arguments swapped.
func CircleLine(c Circle, l Line) bool {
	return LineCircle(l, c)
}

// LineRectangle reports whether segment l touches r. Segments with an
// endpoint inside r always intersect; otherwise the segment is clipped
// against both slabs of r and the entry distance must lie on the segment.
func LineRectangle(l Line, r Rectangle) bool {
	if PointInRectangle(l.Start, r) || PointInRectangle(l.End, r) {
		return true
	}

	dir := l.Direction().Normalize()
	if dir.IsZero() {
		return false
	}

	min := r.Min()
	max := r.Max()
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for _, axis := range [2]struct{ start, dir, lo, hi float64 }{
		{l.Start.X, dir.X, min.X, max.X},
		{l.Start.Y, dir.Y, min.Y, max.Y},
	} {
		if axis.dir == 0 {
			// parallel to this slab: must already be inside it
			if axis.start < axis.lo || axis.start > axis.hi {
				return false
			}
			continue
		}
		inv := 1 / axis.dir
		t1 := (axis.lo - axis.start) * inv
		t2 := (axis.hi - axis.start) * inv
		tmin = math.Max(tmin, math.Min(t1, t2))
		tmax = math.Min(tmax, math.Max(t1, t2))
	}

	if tmax < 0 || tmin > tmax {
		return false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	return t > 0 && t*t < l.LengthSquared()
}

// RectangleLine is LineRectangle with its arguments swapped.
func RectangleLine(r Rectangle, l Line) bool {
	return LineRectangle(l, r)
}

// LineOrientedRectangle reports whether segment l touches o. Both endpoints
// are moved into o's local frame and tested against the axis-aligned bounds.
func LineOrientedRectangle(l Line, o OrientedRectangle) bool {
	local := Line{Start: o.toLocal(l.Start), End: o.toLocal(l.End)}
	return LineRectangle(local, o.localBounds())
}

// OrientedRectangleLine is LineOrientedRectangle with its arguments swapped.
func OrientedRectangleLine(o OrientedRectangle, l Line) bool {
	return LineOrientedRectangle(l, o)
}
