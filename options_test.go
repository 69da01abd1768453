// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import "testing"

func TestWithEpsScale(t *testing.T) {
	var opts ReconstructOptions
	if err := WithEpsScale(1e-4)(&opts); err != nil {
		t.Fatalf("WithEpsScale(1e-4) error = %v", err)
	}
	if opts.EpsScale != 1e-4 {
		t.Errorf("EpsScale = %v, want 1e-4", opts.EpsScale)
	}
	if err := WithEpsScale(0)(&opts); err == nil {
		t.Errorf("WithEpsScale(0) error = nil, want error")
	}
	if err := WithEpsScale(-1)(&opts); err == nil {
		t.Errorf("WithEpsScale(-1) error = nil, want error")
	}
}

func TestWithIterationCap(t *testing.T) {
	var opts ReconstructOptions
	if err := WithIterationCap(50)(&opts); err != nil {
		t.Fatalf("WithIterationCap(50) error = %v", err)
	}
	if opts.IterationCap != 50 {
		t.Errorf("IterationCap = %v, want 50", opts.IterationCap)
	}
	if err := WithIterationCap(0)(&opts); err != nil {
		t.Errorf("WithIterationCap(0) error = %v, want nil (zero means unlimited)", err)
	}
	if err := WithIterationCap(-1)(&opts); err == nil {
		t.Errorf("WithIterationCap(-1) error = nil, want error")
	}
}

func TestWithShouldContinue(t *testing.T) {
	var opts ReconstructOptions
	hook := func() bool { return true }
	if err := WithShouldContinue(hook)(&opts); err != nil {
		t.Fatalf("WithShouldContinue(hook) error = %v", err)
	}
	if opts.ShouldContinue == nil {
		t.Errorf("ShouldContinue = nil, want hook")
	}
	if err := WithShouldContinue(nil)(&opts); err == nil {
		t.Errorf("WithShouldContinue(nil) error = nil, want error")
	}
}

func TestWithPreferFree(t *testing.T) {
	var opts ReconstructOptions
	if err := WithPreferFree(true)(&opts); err != nil {
		t.Fatalf("WithPreferFree(true) error = %v", err)
	}
	if !opts.PreferFree {
		t.Errorf("PreferFree = false, want true")
	}
}
