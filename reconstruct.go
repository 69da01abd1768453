// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"github.com/martinfrances107/bpa-go/front"
	"github.com/martinfrances107/bpa-go/grid"
)

// Reconstruct runs the Ball-Pivoting Algorithm over cloud with ball radius
// rho, returning the triangulated mesh. It returns (nil, nil) if no
// triangle could be produced — a successful "no mesh" result, not an error
// (spec §7) — and a non-nil error for invalid input or, if configured, an
// iteration-cap timeout. A should-continue hook that returns false ends the
// run without an error.
func Reconstruct(cloud Cloud, rho float64, setters ...ReconstructOption) (*Mesh, error) {
	opts := ReconstructOptions{EpsScale: defaultEpsScale}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if err := validateInput(cloud, rho); err != nil {
		return nil, err
	}

	positions := cloud.positions()
	g, err := grid.Build(positions, rho)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	reg := front.NewRegistry(len(cloud))
	fr := front.New(reg)
	eps := opts.EpsScale * rho

	var triangles []Triangle
	var marked []*front.Edge
	iterations := 0

	for {
		if opts.ShouldContinue != nil && !opts.ShouldContinue() {
			break
		}
		if opts.IterationCap > 0 && iterations >= opts.IterationCap {
			return &Mesh{cloud: cloud, triangles: triangles, boundary: boundaryEdges(marked)},
				timeout("iteration cap %d exceeded", opts.IterationCap)
		}
		iterations++

		if e, ok := fr.PopActive(); ok {
			k, center, ok := pivot(cloud, reg, g, positions, e, rho, eps, opts.PreferFree)
			if !ok {
				fr.MarkBoundary(e)
				marked = append(marked, e)
				continue
			}
			a, b := PointID(e.A), PointID(e.B)
			triangles = append(triangles, Triangle{A: b, B: a, C: k})
			fr.Freeze(e)
			fr.Offer(&front.Edge{A: front.PointID(a), B: front.PointID(k), Opposite: front.PointID(b), Center: center})
			fr.Offer(&front.Edge{A: front.PointID(k), B: front.PointID(b), Opposite: front.PointID(a), Center: center})
			continue
		}

		tri, center, ok := findSeed(cloud, reg, g, positions, rho, eps)
		if !ok {
			break
		}
		triangles = append(triangles, tri)
		fr.Offer(&front.Edge{A: front.PointID(tri.A), B: front.PointID(tri.B), Opposite: front.PointID(tri.C), Center: center})
		fr.Offer(&front.Edge{A: front.PointID(tri.B), B: front.PointID(tri.C), Opposite: front.PointID(tri.A), Center: center})
		fr.Offer(&front.Edge{A: front.PointID(tri.C), B: front.PointID(tri.A), Opposite: front.PointID(tri.B), Center: center})
	}

	if len(triangles) == 0 {
		return nil, nil
	}
	return &Mesh{cloud: cloud, triangles: triangles, boundary: boundaryEdges(marked)}, nil
}

// boundaryEdges filters edges once marked Boundary down to those still in
// that state. MarkBoundary deliberately leaves an edge glueable (front.go),
// so a later Offer of its reverse can flip it to Frozen; at that point it
// is an interior edge and must not be reported as boundary.
func boundaryEdges(marked []*front.Edge) [][2]PointID {
	var out [][2]PointID
	for _, e := range marked {
		if e.Status == front.Boundary {
			out = append(out, [2]PointID{PointID(e.A), PointID(e.B)})
		}
	}
	return out
}

// validateInput enforces spec §6.1 / §7: ρ must be positive, the cloud must
// be non-empty (a cloud that is non-empty but too small to form a triangle
// is not an error — it simply yields no seed and Reconstruct returns
// (nil, nil), per P8), and every position/normal must be finite with a
// non-zero normal.
func validateInput(cloud Cloud, rho float64) error {
	if rho <= 0 {
		return invalidInput("radius must be positive, got %v", rho)
	}
	if len(cloud) == 0 {
		return invalidInput("point cloud is empty")
	}
	for i, p := range cloud {
		if !finite3(p.Position) {
			return invalidInput("point %d has a non-finite position", i)
		}
		if !finite3(p.Normal) {
			return invalidInput("point %d has a non-finite normal", i)
		}
		if p.Normal.Norm2() == 0 {
			return invalidInput("point %d has a zero-length normal", i)
		}
	}
	return nil
}
