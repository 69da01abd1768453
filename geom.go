// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import "math"

// degenerateCrossNorm2 is the threshold below which a triangle's squared
// cross-product norm marks it as collinear (spec §4.1 numerical policy).
const degenerateCrossNorm2 = 1e-24

// circumcenter computes the circumcenter q and squared circumradius r2 of triangle
// abc, along with its unit normal. ok is false if the triangle is
// degenerate (collinear within tolerance).
func circumcenter(a, b, c Vec3) (q Vec3, r2 float64, nhat Vec3, ok bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.Cross(ac)
	cross2 := cross.Norm2()
	if round32(cross2) < degenerateCrossNorm2 {
		return Vec3{}, 0, Vec3{}, false
	}

	ab2 := ab.Norm2()
	ac2 := ac.Norm2()
	toCenter := cross.Cross(ab).Mul(ac2).Add(ac.Cross(cross).Mul(ab2)).Mul(1 / (2 * cross2))

	q = a.Add(toCenter)
	r2 = toCenter.Norm2()
	nhat = cross.Mul(1 / math.Sqrt(cross2))
	return q, r2, nhat, true
}

// ballCenter implements BALL_CENTER(a,b,c,ρ): the two candidate centers of a
// sphere of radius rho through a, b, c, or ok=false if no such sphere
// exists (degenerate triangle, the triangle's circumradius exceeds rho, or
// rho is large enough that ρ² overflows single precision, per the
// numerical policy in vec3.go — at that scale the offset along nhat is no
// longer a meaningful finite point).
func ballCenter(a, b, c Vec3, rho float64) (q, plus, minus Vec3, ok bool) {
	q, r2, nhat, ok := circumcenter(a, b, c)
	if !ok {
		return Vec3{}, Vec3{}, Vec3{}, false
	}
	rho2 := round32(rho * rho)
	if round32(r2) > rho2 {
		return Vec3{}, Vec3{}, Vec3{}, false
	}
	h := math.Sqrt(math.Max(0, rho2-r2))
	offset := nhat.Mul(h)
	plus, minus = q.Add(offset), q.Sub(offset)
	if !finite3(plus) || !finite3(minus) {
		return Vec3{}, Vec3{}, Vec3{}, false
	}
	return q, plus, minus, true
}

// selectOrientedCenter chooses the candidate center whose direction from q
// agrees with the outward normal direction implied by normalSum (the sum of
// the three vertex normals). If both or neither candidate qualifies, the
// triangle is orientation-ambiguous and rejected.
func selectOrientedCenter(q, plus, minus, normalSum Vec3) (Vec3, bool) {
	dPlus := plus.Sub(q).Dot(normalSum)
	dMinus := minus.Sub(q).Dot(normalSum)
	plusOK := dPlus > 0
	minusOK := dMinus > 0
	switch {
	case plusOK && !minusOK:
		return plus, true
	case minusOK && !plusOK:
		return minus, true
	default:
		return Vec3{}, false
	}
}

// touchingBall computes the oriented ρ-ball center that passes through the
// three given points with consistent orientation, combining BALL_CENTER and
// the orientation selection of spec §4.1.
func touchingBall(a, b, c Point, rho float64) (Vec3, bool) {
	q, plus, minus, ok := ballCenter(a.Position, b.Position, c.Position, rho)
	if !ok {
		return Vec3{}, false
	}
	normalSum := a.Normal.Add(b.Normal).Add(c.Normal)
	return selectOrientedCenter(q, plus, minus, normalSum)
}

// pivotAngle computes the signed angle, normalized to [0, 2π), from c0 to ck
// about the edge axis (unit vector from a to b), measured in the plane
// perpendicular to the edge through its midpoint.
func pivotAngle(midpoint, axis, c0, ck Vec3) float64 {
	u := projectPerp(c0.Sub(midpoint), axis)
	u2 := u.Norm2()
	if u2 == 0 {
		return 0
	}
	u = u.Mul(1 / math.Sqrt(u2))
	v := axis.Cross(u)

	w := projectPerp(ck.Sub(midpoint), axis)
	theta := math.Atan2(w.Dot(v), w.Dot(u))
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// projectPerp projects v onto the plane perpendicular to the unit vector
// axis.
func projectPerp(v, axis Vec3) Vec3 {
	return v.Sub(axis.Mul(v.Dot(axis)))
}
