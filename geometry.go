package graphview

import "math"

// maxFlattenDepth bounds bezier subdivision so a bad tolerance cannot
// recurse forever.
const maxFlattenDepth = 16

// DistanceSegmentToPoint returns the distance from point p to the
// segment ab. The segment must not be degenerate (a != b); callers
// guard against zero-length segments before calling.
func DistanceSegmentToPoint(a, b, p Vec2) float32 {
	ac := p.Sub(a)
	ab := b.Sub(a)

	d := a.Add(proj(ac, ab))
	ad := d.Sub(a)

	var k float32
	if absf(ab.X) > absf(ab.Y) {
		k = ad.X / ab.X
	} else {
		k = ad.Y / ab.Y
	}

	switch {
	case k <= 0:
		return float32(math.Sqrt(float64(hypot2(p, a))))
	case k >= 1:
		return float32(math.Sqrt(float64(hypot2(p, b))))
	}
	return float32(math.Sqrt(float64(hypot2(p, d))))
}

// hypot2 returns the squared distance between two points.
func hypot2(a, b Vec2) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// proj returns the projection of a onto b.
func proj(a, b Vec2) Vec2 {
	k := a.Dot(b) / b.Dot(b)
	return Vec2{X: k * b.X, Y: k * b.Y}
}

// Rotate returns vec rotated counter-clockwise by angle radians.
func Rotate(vec Vec2, angle float32) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Vec2{X: c*vec.X - s*vec.Y, Y: s*vec.X + c*vec.Y}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 {
	return a.Add(b.Sub(a).Mul(0.5))
}

// FlattenQuadBezier approximates a quadratic bezier with a polyline.
// tolerance is the maximum distance the polyline may deviate from the
// true curve; smaller values produce more segments.
func FlattenQuadBezier(start, control, end Vec2, tolerance float32) []Vec2 {
	pts := make([]Vec2, 1, 8)
	pts[0] = start
	flattenQuad(&pts, start, control, end, tolerance, 0)
	return pts
}

func flattenQuad(pts *[]Vec2, p0, c, p1 Vec2, tolerance float32, depth int) {
	if depth >= maxFlattenDepth || controlDeviation(p0, p1, c) <= tolerance {
		*pts = append(*pts, p1)
		return
	}
	l := Midpoint(p0, c)
	r := Midpoint(c, p1)
	m := Midpoint(l, r)
	flattenQuad(pts, p0, l, m, tolerance, depth+1)
	flattenQuad(pts, m, r, p1, tolerance, depth+1)
}

// FlattenCubicBezier approximates a cubic bezier with a polyline.
func FlattenCubicBezier(start, control1, control2, end Vec2, tolerance float32) []Vec2 {
	pts := make([]Vec2, 1, 16)
	pts[0] = start
	flattenCubic(&pts, start, control1, control2, end, tolerance, 0)
	return pts
}

func flattenCubic(pts *[]Vec2, p0, c1, c2, p1 Vec2, tolerance float32, depth int) {
	if depth >= maxFlattenDepth ||
		(controlDeviation(p0, p1, c1) <= tolerance && controlDeviation(p0, p1, c2) <= tolerance) {
		*pts = append(*pts, p1)
		return
	}
	ab := Midpoint(p0, c1)
	bc := Midpoint(c1, c2)
	cd := Midpoint(c2, p1)
	abc := Midpoint(ab, bc)
	bcd := Midpoint(bc, cd)
	m := Midpoint(abc, bcd)
	flattenCubic(pts, p0, ab, abc, m, tolerance, depth+1)
	flattenCubic(pts, m, bcd, cd, p1, tolerance, depth+1)
}

// controlDeviation measures how far a control point strays from the
// chord ab, falling back to point distance when the chord degenerates.
func controlDeviation(a, b, c Vec2) float32 {
	if a == b {
		return c.Sub(a).Length()
	}
	return DistanceSegmentToPoint(a, b, c)
}

// pointNearPolyline reports whether p lies within threshold of any
// segment of the polyline.
func pointNearPolyline(points []Vec2, p Vec2, threshold float32) bool {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if a == b {
			if p.Sub(a).Length() < threshold {
				return true
			}
			continue
		}
		if DistanceSegmentToPoint(a, b, p) < threshold {
			return true
		}
	}
	return false
}

// LoopPoints returns the cubic bezier describing a self-loop drawn
// above a node. The loop leaves and re-enters the node circle at 45
// degrees; size controls how far the loop extends from the center, so
// parallel self-loops with growing sizes nest without overlapping.
func LoopPoints(center Vec2, radius, size float32) (start, control1, control2, end Vec2) {
	const centerHorizonAngle = math.Pi / 4
	y := center.Y - radius*float32(math.Sin(centerHorizonAngle))
	x := radius * float32(math.Cos(centerHorizonAngle))

	start = Vec2{X: center.X + x, Y: y}
	end = Vec2{X: center.X - x, Y: y}
	control1 = Vec2{X: center.X + size, Y: center.Y - size}
	control2 = Vec2{X: center.X - size, Y: center.Y - size}
	return start, control1, control2, end
}

// CurvePoints returns the quadratic bezier for a curved edge between
// two distinct nodes. Endpoints are pulled in by each node's radius and
// the control point sits on the perpendicular of the base line, offset
// away from it.
func CurvePoints(from, to Vec2, radFrom, radTo, offset float32) (start, control, end Vec2) {
	dir := to.Sub(from).Normalized()

	start = from.Add(dir.Mul(radFrom))
	end = to.Sub(dir.Mul(radTo))
	control = Midpoint(start, end).Add(dir.Perp().Mul(offset))
	return start, control, end
}
