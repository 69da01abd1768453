// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"testing"

	"github.com/martinfrances107/bpa-go/front"
	"github.com/martinfrances107/bpa-go/grid"
)

func TestContainsPointID(t *testing.T) {
	ids := []PointID{1, 3, 5}
	if !containsPointID(ids, 3) {
		t.Errorf("containsPointID(%v, 3) = false, want true", ids)
	}
	if containsPointID(ids, 4) {
		t.Errorf("containsPointID(%v, 4) = true, want false", ids)
	}
	if containsPointID(nil, 0) {
		t.Errorf("containsPointID(nil, 0) = true, want false")
	}
}

func TestResolveTie_SmallestIdentityWins(t *testing.T) {
	reg := front.NewRegistry(5)
	tied := []pivotCandidate{{id: 4}, {id: 1}, {id: 3}}
	got := resolveTie(reg, tied, false)
	if got.id != 1 {
		t.Errorf("resolveTie() = %v, want id 1", got.id)
	}
}

func TestResolveTie_PreferFreeOverOnFront(t *testing.T) {
	reg := front.NewRegistry(5)
	e := &front.Edge{A: 0, B: 1, Opposite: 2}
	fr := front.New(reg)
	fr.Offer(e) // marks 0 and 1 OnFront

	tied := []pivotCandidate{{id: 0}, {id: 4}}
	got := resolveTie(reg, tied, true)
	if got.id != 4 {
		t.Errorf("resolveTie(preferFree) = %v, want id 4 (Free beats OnFront)", got.id)
	}
}

func TestResolveTie_SingleCandidate(t *testing.T) {
	reg := front.NewRegistry(3)
	tied := []pivotCandidate{{id: 2, theta: 1.5}}
	got := resolveTie(reg, tied, false)
	if got.id != 2 {
		t.Errorf("resolveTie(single) = %v, want id 2", got.id)
	}
}

func TestPivot_NoCandidatesReturnsFalse(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0), Normal: vec(0, 0, 1)},
		{Position: vec(1, 0, 0), Normal: vec(0, 0, 1)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 1)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	reg := front.NewRegistry(len(cloud))
	e := &front.Edge{A: 0, B: 1, Opposite: 0, Center: vec(0.5, 0, 1)}

	if _, _, ok := pivot(cloud, reg, g, positions, e, 1, 1e-7, false); ok {
		t.Errorf("pivot() with only two points in the cloud ok = true, want false")
	}
}

func TestPivot_DegenerateEdgeReturnsFalse(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0), Normal: vec(0, 0, 1)},
		{Position: vec(0, 0, 0), Normal: vec(0, 0, 1)},
		{Position: vec(1, 0, 0), Normal: vec(0, 0, 1)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 1)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	reg := front.NewRegistry(len(cloud))
	e := &front.Edge{A: 0, B: 1, Opposite: 2, Center: vec(0, 0, 1)}

	if _, _, ok := pivot(cloud, reg, g, positions, e, 1, 1e-7, false); ok {
		t.Errorf("pivot() on a zero-length edge ok = true, want false")
	}
}
