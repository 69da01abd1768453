// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package bpa reconstructs a triangulated surface mesh from an oriented 3D
// point cloud using the Ball-Pivoting Algorithm of Bernardini et al.
package bpa

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a position or direction in ℝ³. It is an alias for r3.Vector,
// giving the core addition, subtraction, scaling, dot and cross products,
// and norms without reimplementing them.
type Vec3 = r3.Vector

func finite3(v Vec3) bool {
	return finite1(v.X) && finite1(v.Y) && finite1(v.Z)
}

func finite1(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// round32 rounds x through float32 precision. The core's numerical policy
// (spec §4.1) calls for single precision matching the input; Vec3 is
// float64 underneath (inherited from r3.Vector) so the ball-center
// predicate and the empty-ball check round their comparison inputs through
// this to honor that policy without reimplementing vector arithmetic in
// float32.
func round32(x float64) float64 {
	return float64(float32(x))
}
