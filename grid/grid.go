// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package grid implements a uniform 3D voxel index over a point set, used by
// the reconstruction core for radius-bounded neighbor queries.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/r3"
)

// ID identifies a point by its position in the slice the Grid was built
// over. It is stable for the lifetime of the Grid.
type ID int

// Grid is a uniform axis-aligned lattice with cell side 2·radius, storing
// the set of point identities whose position falls in each cell.
type Grid struct {
	cellSize float64
	origin   r3.Vector
	cells    map[cellCoord][]ID
}

type cellCoord struct {
	x, y, z int64
}

// Options configures Build. The zero value is the default configuration.
type Options struct{}

// Option is a functional option for Build.
type Option func(*Options) error

// Build constructs a Grid over positions with cell side 2·radius.
// It fails with an error if radius is non-positive or any position has a
// non-finite coordinate.
func Build(positions []r3.Vector, radius float64, setters ...Option) (*Grid, error) {
	opts := Options{}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if radius <= 0 {
		return nil, fmt.Errorf("grid.Build: radius must be positive, got %v", radius)
	}
	if len(positions) == 0 {
		return nil, errors.New("grid.Build: positions must not be empty")
	}

	origin := positions[0]
	for _, p := range positions {
		if !finite(p) {
			return nil, fmt.Errorf("grid.Build: non-finite position %v", p)
		}
		origin.X = math.Min(origin.X, p.X)
		origin.Y = math.Min(origin.Y, p.Y)
		origin.Z = math.Min(origin.Z, p.Z)
	}

	g := &Grid{
		cellSize: 2 * radius,
		origin:   origin,
		cells:    make(map[cellCoord][]ID, len(positions)),
	}
	for i, p := range positions {
		c := g.coordOf(p)
		g.cells[c] = append(g.cells[c], ID(i))
	}
	return g, nil
}

func finite(v r3.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

func (g *Grid) coordOf(p r3.Vector) cellCoord {
	return cellCoord{
		x: int64(math.Floor((p.X - g.origin.X) / g.cellSize)),
		y: int64(math.Floor((p.Y - g.origin.Y) / g.cellSize)),
		z: int64(math.Floor((p.Z - g.origin.Z) / g.cellSize)),
	}
}

// SphericalNeighbors returns a lazy sequence of point identities q (indices
// into positions) with ||positions[q] - center|| <= radius. The contract is
// that radius is typically at most 2x the cell radius used in Build, though
// larger radii are answered correctly at cost linear in the number of cells
// overlapping the query's bounding box.
//
// Iteration order is unspecified; callers that need determinism must sort
// the results themselves.
func (g *Grid) SphericalNeighbors(positions []r3.Vector, center r3.Vector, radius float64) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		lo := g.coordOf(r3.Vector{X: center.X - radius, Y: center.Y - radius, Z: center.Z - radius})
		hi := g.coordOf(r3.Vector{X: center.X + radius, Y: center.Y + radius, Z: center.Z + radius})
		radius2 := radius * radius

		for x := lo.x; x <= hi.x; x++ {
			for y := lo.y; y <= hi.y; y++ {
				for z := lo.z; z <= hi.z; z++ {
					for _, id := range g.cells[cellCoord{x, y, z}] {
						if positions[id].Sub(center).Norm2() <= radius2 {
							if !yield(id) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// NumCells returns the number of non-empty cells in the grid. It exists
// mainly to support load-factor assertions in tests and benchmarks.
func (g *Grid) NumCells() int {
	return len(g.cells)
}
