// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

// PointID is a point's stable integer identity: its index in the input
// cloud.
type PointID int

// Point is an immutable input sample: a position and a caller-supplied unit
// normal. The normal is never renormalized.
type Point struct {
	Position Vec3
	Normal   Vec3
}

// Cloud is an oriented point cloud, indexed by PointID.
type Cloud []Point

func (c Cloud) positions() []Vec3 {
	out := make([]Vec3, len(c))
	for i, p := range c {
		out[i] = p.Position
	}
	return out
}

// Triangle is an ordered triple of point identities. Orientation is
// meaningful: the outward normal is (B-A)×(C-A) normalized, consistent with
// the average of the three vertex normals.
type Triangle struct {
	A, B, C PointID
}

// unordered returns the triangle's vertex identities as a sorted triple,
// used to detect duplicate emission (invariant I2) independent of winding.
func (t Triangle) unordered() [3]PointID {
	v := [3]PointID{t.A, t.B, t.C}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
	return v
}
