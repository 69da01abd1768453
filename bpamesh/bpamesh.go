// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package bpamesh generates synthetic oriented point clouds for testing and
// demonstrating reconstruction, mirroring the teacher's utils package
// (utils.GenerateRandomPoints) but for euclidean point clouds with outward
// normals instead of points on the unit sphere.
package bpamesh

import (
	"fmt"
	"math"
	"math/rand"

	bpa "github.com/martinfrances107/bpa-go"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// Tetrahedron returns the four vertices of a regular-ish tetrahedron at
// (0,0,0), (1,0,0), (0,1,0), (0,0,1), each normal pointing outward from the
// centroid.
func Tetrahedron() bpa.Cloud {
	positions := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	return cloudWithCentroidNormals(positions)
}

// Cube returns the eight corners of the unit cube, each normal pointing
// along the corresponding body diagonal (outward from the cube's center).
func Cube() bpa.Cloud {
	positions := make([]r3.Vector, 0, 8)
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				positions = append(positions, r3.Vector{X: x, Y: y, Z: z})
			}
		}
	}
	return cloudWithCentroidNormals(positions)
}

// Icosphere returns a point cloud sampled on the unit sphere by subdividing
// a regular icosahedron depth times, each normal equal to its (already
// unit-length) position. depth=0 yields the 12 base icosahedron vertices;
// each additional depth quadruples the triangle count (V = 10·4^depth + 2).
func Icosphere(depth int) bpa.Cloud {
	verts, faces := icosahedron()
	for range depth {
		verts, faces = subdivide(verts, faces)
	}
	cloud := make(bpa.Cloud, len(verts))
	for i, v := range verts {
		n := v.Normalize()
		cloud[i] = bpa.Point{Position: n, Normal: n}
	}
	return cloud
}

// RandomCloud returns cnt points sampled uniformly at random inside a cube
// of the given side length, with normals pointing away from the cube's
// center — not a valid BPA input in general (the normals are not a true
// surface orientation), but useful for exercising InvalidInput and
// NoMesh paths deterministically. seed makes the cloud reproducible.
func RandomCloud(cnt int, side float64, seed int64) bpa.Cloud {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	center := r3.Vector{X: side / 2, Y: side / 2, Z: side / 2}
	cloud := make(bpa.Cloud, cnt)
	for i := range cnt {
		p := r3.Vector{X: random.Float64() * side, Y: random.Float64() * side, Z: random.Float64() * side}
		n := p.Sub(center)
		if n.Norm2() == 0 {
			n = r3.Vector{X: 1}
		}
		cloud[i] = bpa.Point{Position: p, Normal: n.Normalize()}
	}
	return cloud
}

// ConvexHullTriangleCount computes the convex hull of cloud's positions via
// quickhull-go and returns its triangle count. For the closed, convex
// fixtures this package produces (Tetrahedron, Cube, Icosphere), BPA with a
// suitably small radius should reconstruct a mesh with the same triangle
// count and Euler characteristic — an independent oracle for those
// scenarios, grounded in the exact convex-hull library the teacher already
// depends on (see s2delaunay.NewTriangulation's own use of quickhull.QuickHull).
func ConvexHullTriangleCount(cloud bpa.Cloud, eps float64) (int, error) {
	positions := make([]r3.Vector, len(cloud))
	for i, p := range cloud {
		positions[i] = p.Position
	}
	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(positions, true, true, eps)
	if len(hull.Indices)%3 != 0 {
		return 0, fmt.Errorf("bpamesh.ConvexHullTriangleCount: hull index count %d not a multiple of 3",
			len(hull.Indices))
	}
	return len(hull.Indices) / 3, nil
}

func cloudWithCentroidNormals(positions []r3.Vector) bpa.Cloud {
	centroid := r3.Vector{}
	for _, p := range positions {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(positions)))

	cloud := make(bpa.Cloud, len(positions))
	for i, p := range positions {
		n := p.Sub(centroid).Normalize()
		cloud[i] = bpa.Point{Position: p, Normal: n}
	}
	return cloud
}

// icosahedron returns the 12 vertices and 20 triangles of a regular
// icosahedron inscribed in the unit sphere.
func icosahedron() ([]r3.Vector, [][3]int) {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vector{
		{X: -1, Y: phi, Z: 0}, {X: 1, Y: phi, Z: 0}, {X: -1, Y: -phi, Z: 0}, {X: 1, Y: -phi, Z: 0},
		{X: 0, Y: -1, Z: phi}, {X: 0, Y: 1, Z: phi}, {X: 0, Y: -1, Z: -phi}, {X: 0, Y: 1, Z: -phi},
		{X: phi, Y: 0, Z: -1}, {X: phi, Y: 0, Z: 1}, {X: -phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1},
	}
	verts := make([]r3.Vector, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize()
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return verts, faces
}

// subdivide splits every face into four by inserting a new vertex at each
// edge midpoint (re-projected onto the unit sphere) and sharing midpoints
// between the two faces that border each edge.
func subdivide(verts []r3.Vector, faces [][3]int) ([]r3.Vector, [][3]int) {
	type edgeKey struct{ i, j int }
	midpoint := make(map[edgeKey]int)

	midpointOf := func(i, j int) int {
		if i > j {
			i, j = j, i
		}
		k := edgeKey{i, j}
		if idx, ok := midpoint[k]; ok {
			return idx
		}
		m := verts[i].Add(verts[j]).Mul(0.5).Normalize()
		verts = append(verts, m)
		idx := len(verts) - 1
		midpoint[k] = idx
		return idx
	}

	newFaces := make([][3]int, 0, len(faces)*4)
	for _, f := range faces {
		ab := midpointOf(f[0], f[1])
		bc := midpointOf(f[1], f[2])
		ca := midpointOf(f[2], f[0])
		newFaces = append(newFaces,
			[3]int{f[0], ab, ca},
			[3]int{f[1], bc, ab},
			[3]int{f[2], ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	return verts, newFaces
}
