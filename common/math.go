package common

import "math"

// Epsilon is the tolerance used for point and scalar equality across the
// navigation code.
const Epsilon = 1e-6

// Sqr returns the square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// Abs returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Clamp clamps the value to the [mn, mx] range.
func Clamp[T IT](v, mn, mx T) T {
	if v < mn {
		return mn
	}
	if v > mx {
		return mx
	}
	return v
}

// Lerp returns the linear interpolation between a and b at parameter t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Vequal performs an approximate equality test of two points.
func Vequal(a, b Vec3) bool {
	return VdistSqr(a, b) < Sqr(Epsilon)
}

// Vdist returns the distance between two points.
func Vdist(a, b Vec3) float64 {
	return b.Sub(a).Len()
}

// VdistSqr returns the square of the distance between two points.
func VdistSqr(a, b Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// TriArea2D derives the signed xy-plane area of the triangle ABC, negated.
// The result is negative when C lies to the left of the ray A->B.
func TriArea2D(a, b, c Vec3) float64 {
	abx := b.X() - a.X()
	aby := b.Y() - a.Y()
	acx := c.X() - a.X()
	acy := c.Y() - a.Y()
	return acx*aby - abx*acy
}

// DistPtSegSqr returns the projection parameter of pt on the segment pq,
// clamped to [0, 1], and the squared distance between pt and the projection.
func DistPtSegSqr(pt, p, q Vec3) (t, d2 float64) {
	pq := q.Sub(p)
	d := pq.Dot(pq)
	t = pq.Dot(pt.Sub(p))
	if d > 0 {
		t /= d
	}
	t = Clamp(t, 0, 1)
	diff := p.Add(pq.Mul(t)).Sub(pt)
	return t, diff.Dot(diff)
}

// ClosestPtPointTriangle returns the point on the triangle ABC closest to p,
// on the face or clamped to an edge or a vertex.
func ClosestPtPointTriangle(p, a, b, c Vec3) Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// PointInTriangle reports whether the projection of p onto the plane of the
// triangle ABC lies inside the triangle, within tolerance.
func PointInTriangle(p, a, b, c Vec3) bool {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if Abs(denom) < Epsilon {
		return false
	}
	inv := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= -Epsilon && v >= -Epsilon && u+v <= 1+Epsilon
}

// DistPtPlane returns the signed distance of p from the plane through origin
// with unit normal n.
func DistPtPlane(p, origin, n Vec3) float64 {
	return p.Sub(origin).Dot(n)
}

// ProjectPtPlane projects p onto the plane through origin with unit normal n.
func ProjectPtPlane(p, origin, n Vec3) Vec3 {
	return p.Sub(n.Mul(DistPtPlane(p, origin, n)))
}

// IsFinite reports whether all components of v are finite numbers.
func IsFinite(v Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}
