// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"sort"

	"github.com/martinfrances107/bpa-go/front"
	"github.com/martinfrances107/bpa-go/grid"
)

// findSeed implements the seed-finder procedure of spec §4.3: the first
// point-identity-order Free candidate a with a pair of neighbors (b, c) that
// form an empty oriented ρ-ball triangle yields the seed. The seed is wound
// so that (B-A)×(C-A) agrees with the sum of its vertex normals.
func findSeed(cloud Cloud, reg *front.Registry, g *grid.Grid, positions []Vec3,
	rho, eps float64) (Triangle, Vec3, bool) {
	for a := PointID(0); int(a) < len(cloud); a++ {
		if reg.State(front.PointID(a)) != front.Free {
			continue
		}
		neighbors := neighborsByDistanceThenID(g, positions, a, 2*rho)
		for i := 0; i < len(neighbors); i++ {
			b := neighbors[i]
			if reg.State(front.PointID(b)) == front.Used {
				continue
			}
			for j := i + 1; j < len(neighbors); j++ {
				c := neighbors[j]
				if reg.State(front.PointID(c)) == front.Used {
					continue
				}
				center, ok := touchingBall(cloud[a], cloud[b], cloud[c], rho)
				if !ok {
					continue
				}
				if !emptyBall(g, positions, center, rho, eps, a, b, c) {
					continue
				}
				tri := Triangle{A: a, B: b, C: c}
				normalSum := cloud[a].Normal.Add(cloud[b].Normal).Add(cloud[c].Normal)
				if positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a])).Dot(normalSum) < 0 {
					tri.B, tri.C = c, b
				}
				return tri, center, true
			}
		}
	}
	return Triangle{}, Vec3{}, false
}

// neighborsByDistanceThenID returns the identities of points within radius
// of cloud[center] (excluding center itself), ordered by ascending distance
// from center, ties broken by ascending identity — the deterministic
// enumeration order required by spec §4.3.
func neighborsByDistanceThenID(g *grid.Grid, positions []Vec3, center PointID, radius float64) []PointID {
	type candidate struct {
		id PointID
		d2 float64
	}
	var candidates []candidate
	for id := range g.SphericalNeighbors(positions, positions[center], radius) {
		if PointID(id) == center {
			continue
		}
		candidates = append(candidates, candidate{
			id: PointID(id),
			d2: positions[center].Sub(positions[id]).Norm2(),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].d2 != candidates[j].d2 {
			return candidates[i].d2 < candidates[j].d2
		}
		return candidates[i].id < candidates[j].id
	})
	out := make([]PointID, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}
	return out
}
