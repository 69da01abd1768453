// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpaio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	bpa "github.com/martinfrances107/bpa-go"
)

// SaveSTL writes mesh to path as a binary STL file: 80 bytes of zeros, a
// uint32 triangle count, then per triangle 12 little-endian float32s (face
// normal + three vertices) and a uint16 attribute byte count of 0.
func SaveSTL(path string, mesh *bpa.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bpaio.SaveSTL: %w", err)
	}
	defer f.Close()
	return WriteSTL(f, mesh)
}

// WriteSTL writes mesh to w in the same binary STL format as SaveSTL.
func WriteSTL(w io.Writer, mesh *bpa.Mesh) error {
	var header [80]byte
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("bpaio.WriteSTL: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(mesh.NumTriangles())); err != nil {
		return fmt.Errorf("bpaio.WriteSTL: %w", err)
	}

	for i := 0; i < mesh.NumTriangles(); i++ {
		tri := mesh.Triangle(i)
		a := mesh.Vertex(tri.A).Position
		b := mesh.Vertex(tri.B).Position
		c := mesh.Vertex(tri.C).Position
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()

		values := [12]float32{
			float32(normal.X), float32(normal.Y), float32(normal.Z),
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z),
			float32(c.X), float32(c.Y), float32(c.Z),
		}
		for _, v := range values {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("bpaio.WriteSTL: %w", err)
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("bpaio.WriteSTL: %w", err)
		}
	}
	return nil
}
