// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"math"
	"os"

	bpa "github.com/martinfrances107/bpa-go"
	svg "github.com/ajstarks/svgo"
)

const (
	previewWidth  = 800
	previewHeight = 800
	edgeStyle     = "stroke:rgb(60,60,60);stroke-width:1;fill:none"
	vertexStyle   = "fill:rgb(200,30,30)"
)

// writePreviewSVG projects the reconstructed mesh's triangle edges onto the
// XY plane and writes them to an SVG file, mirroring the teacher's own
// examples/s2voronoi and examples/s2delaunay debug renderers. Never touched
// by the core; purely a development aid for the CLI.
func writePreviewSVG(path string, mesh *bpa.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bpa preview: %w", err)
	}
	defer file.Close()

	minX, minY, maxX, maxY := boundsXY(mesh)
	scale, offsetX, offsetY := fitScale(minX, minY, maxX, maxY, previewWidth, previewHeight)

	project := func(v bpa.Vec3) (int, int) {
		return int((v.X-minX)*scale + offsetX), int(previewHeight - ((v.Y-minY)*scale + offsetY))
	}

	canvas := svg.New(file)
	canvas.Start(previewWidth, previewHeight)
	canvas.Rect(0, 0, previewWidth, previewHeight, "fill:rgb(255,255,255)")

	for i := 0; i < mesh.NumTriangles(); i++ {
		tri := mesh.Triangle(i)
		ax, ay := project(mesh.Vertex(tri.A).Position)
		bx, by := project(mesh.Vertex(tri.B).Position)
		cx, cy := project(mesh.Vertex(tri.C).Position)
		canvas.Polygon([]int{ax, bx, cx}, []int{ay, by, cy}, edgeStyle)
	}
	for i := 0; i < mesh.NumTriangles(); i++ {
		tri := mesh.Triangle(i)
		for _, id := range [3]bpa.PointID{tri.A, tri.B, tri.C} {
			x, y := project(mesh.Vertex(id).Position)
			canvas.Circle(x, y, 2, vertexStyle)
		}
	}
	canvas.End()
	return nil
}

func boundsXY(mesh *bpa.Mesh) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < mesh.NumTriangles(); i++ {
		tri := mesh.Triangle(i)
		for _, id := range [3]bpa.PointID{tri.A, tri.B, tri.C} {
			p := mesh.Vertex(id).Position
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}

func fitScale(minX, minY, maxX, maxY float64, width, height int) (scale, offsetX, offsetY float64) {
	const margin = 20
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	sx := (float64(width) - 2*margin) / spanX
	sy := (float64(height) - 2*margin) / spanY
	scale = sx
	if sy < scale {
		scale = sy
	}
	return scale, margin, margin
}
