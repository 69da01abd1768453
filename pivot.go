// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"github.com/martinfrances107/bpa-go/front"
	"github.com/martinfrances107/bpa-go/grid"
)

// pivotTieEpsilon bounds how close two pivot angles must be to be treated as
// tied for the purposes of the Free-over-OnFront tie-break (spec §9 Open
// Question). Exact bitwise ties occur naturally on the symmetric fixtures
// (cube, icosphere) this package is tested against; this tolerance widens
// that to account for floating-point rounding across geometrically
// equivalent but not identically-computed candidates.
const pivotTieEpsilon = 1e-9

type pivotCandidate struct {
	id     PointID
	theta  float64
	center Vec3
}

// pivot implements PIVOT(e, ρ): rotating the ball around edge e, find the
// next point it touches. It returns (point, center, true) on success, or
// (_, _, false) if no candidate survives (the edge becomes Boundary).
func pivot(cloud Cloud, reg *front.Registry, g *grid.Grid, positions []Vec3, e *front.Edge,
	rho, eps float64, preferFree bool) (PointID, Vec3, bool) {
	a, b, o := PointID(e.A), PointID(e.B), PointID(e.Opposite)
	midpoint := positions[a].Add(positions[b]).Mul(0.5)
	axis := positions[b].Sub(positions[a])
	axisNorm := axis.Norm()
	if axisNorm == 0 {
		return 0, Vec3{}, false
	}
	axis = axis.Mul(1 / axisNorm)

	c0 := e.Center
	armLen := c0.Sub(midpoint).Norm()
	searchRadius := rho + armLen

	haveBest := false
	bestTheta := 0.0
	var tied []pivotCandidate

	for id := range g.SphericalNeighbors(positions, midpoint, searchRadius) {
		k := PointID(id)
		if k == a || k == b || k == o {
			continue
		}
		if reg.State(front.PointID(k)) == front.Used {
			continue
		}
		center, ok := touchingBall(cloud[a], cloud[b], cloud[k], rho)
		if !ok {
			continue
		}
		if !emptyBall(g, positions, center, rho, eps, a, b, k) {
			continue
		}
		theta := pivotAngle(midpoint, axis, c0, center)
		cand := pivotCandidate{id: k, theta: theta, center: center}

		switch {
		case !haveBest || theta < bestTheta-pivotTieEpsilon:
			haveBest = true
			bestTheta = theta
			tied = append(tied[:0], cand)
		case theta < bestTheta+pivotTieEpsilon:
			tied = append(tied, cand)
			if theta < bestTheta {
				bestTheta = theta
			}
		}
	}
	if !haveBest {
		return 0, Vec3{}, false
	}
	winner := resolveTie(reg, tied, preferFree)
	return winner.id, winner.center, true
}

// resolveTie breaks ties among angularly-equivalent pivot candidates. If
// preferFree is set, a Free candidate wins over an OnFront one; otherwise,
// and as the final tie-break in all cases, the smallest point identity
// wins (spec §4.4 default: "tie-break: smallest point identity").
func resolveTie(reg *front.Registry, tied []pivotCandidate, preferFree bool) pivotCandidate {
	best := tied[0]
	for _, c := range tied[1:] {
		if preferFree {
			bf := reg.State(front.PointID(best.id)) == front.Free
			cf := reg.State(front.PointID(c.id)) == front.Free
			if cf && !bf {
				best = c
				continue
			}
			if bf && !cf {
				continue
			}
		}
		if c.id < best.id {
			best = c
		}
	}
	return best
}

// emptyBall implements the empty-ball check: no input point other than
// those in exempt lies within rho-eps of center.
func emptyBall(g *grid.Grid, positions []Vec3, center Vec3, rho, eps float64, exempt ...PointID) bool {
	threshold := rho - eps
	for id := range g.SphericalNeighbors(positions, center, rho) {
		pid := PointID(id)
		if containsPointID(exempt, pid) {
			continue
		}
		if round32(positions[pid].Sub(center).Norm()) < round32(threshold) {
			return false
		}
	}
	return true
}

func containsPointID(ids []PointID, id PointID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
