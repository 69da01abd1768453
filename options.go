// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"errors"
	"fmt"
)

const defaultEpsScale = 1e-7

// ReconstructOptions holds configuration for Reconstruct.
type ReconstructOptions struct {
	// EpsScale scales the empty-ball tolerance ε = EpsScale·ρ (spec §4.3,
	// §8 P1). Defaults to 1e-7.
	EpsScale float64
	// IterationCap bounds the number of driver iterations. Zero means
	// unlimited. Exceeding it surfaces a Timeout error alongside the
	// triangles accumulated so far (spec §4.6 "Known pathology").
	IterationCap int
	// ShouldContinue, if set, is polled at the top of each driver
	// iteration; returning false stops the driver and returns the
	// triangles accumulated so far (spec §5).
	ShouldContinue func() bool
	// PreferFree breaks pivot angle ties in favor of Free-state candidate
	// points over OnFront ones before falling back to identity order. See
	// DESIGN.md for the Open Question this setting resolves.
	PreferFree bool
}

// ReconstructOption is a functional option for Reconstruct, following the
// same validated-setter pattern as the teacher's DiagramOption.
type ReconstructOption func(*ReconstructOptions) error

// WithEpsScale sets the empty-ball tolerance scale factor k in ε = k·ρ. It
// must be positive.
func WithEpsScale(k float64) ReconstructOption {
	return func(o *ReconstructOptions) error {
		if k <= 0 {
			return fmt.Errorf("WithEpsScale: scale must be positive, got %v", k)
		}
		o.EpsScale = k
		return nil
	}
}

// WithIterationCap sets the maximum number of driver iterations. It must be
// non-negative; zero means unlimited.
func WithIterationCap(n int) ReconstructOption {
	return func(o *ReconstructOptions) error {
		if n < 0 {
			return fmt.Errorf("WithIterationCap: cap must be non-negative, got %v", n)
		}
		o.IterationCap = n
		return nil
	}
}

// WithShouldContinue installs a cooperative cancellation hook. It must not
// be nil.
func WithShouldContinue(fn func() bool) ReconstructOption {
	return func(o *ReconstructOptions) error {
		if fn == nil {
			return errors.New("WithShouldContinue: hook must not be nil")
		}
		o.ShouldContinue = fn
		return nil
	}
}

// WithPreferFree sets the Free-over-OnFront pivot tie-break preference.
func WithPreferFree(prefer bool) ReconstructOption {
	return func(o *ReconstructOptions) error {
		o.PreferFree = prefer
		return nil
	}
}
