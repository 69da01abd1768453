// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import "fmt"

// Mesh is the result of a reconstruction: the full input cloud the
// triangles index into, the emitted triangles in emission order, and any edges
// left on the boundary. It is a thin view over the data the driver
// produced, in the spirit of the teacher's Diagram/Cell view-struct
// pattern.
type Mesh struct {
	cloud     Cloud
	triangles []Triangle
	boundary  [][2]PointID
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.triangles)
}

// Triangle returns the triangle at index i, in emission order. It panics if
// i is out of range.
func (m *Mesh) Triangle(i int) Triangle {
	if i < 0 || i >= len(m.triangles) {
		panic(fmt.Sprintf("Triangle: index %d out of range [0 %d)", i, len(m.triangles)))
	}
	return m.triangles[i]
}

// Triangles returns the full emitted triangle sequence, in emission order.
// Callers must not mutate the returned slice.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// Vertex returns the input point with the given identity. It panics if id
// is out of range.
func (m *Mesh) Vertex(id PointID) Point {
	return m.cloud[id]
}

// BoundaryEdges returns the directed edges that pivoting could not resolve
// (front edges left in the Boundary state at termination), in the order
// they were marked.
func (m *Mesh) BoundaryEdges() [][2]PointID {
	return m.boundary
}
