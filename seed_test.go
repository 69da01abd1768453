// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpa

import (
	"testing"

	"github.com/martinfrances107/bpa-go/front"
	"github.com/martinfrances107/bpa-go/grid"
)

func TestFindSeed_Tetrahedron(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0), Normal: vec(-1, -1, -1)},
		{Position: vec(1, 0, 0), Normal: vec(1, -1, -1)},
		{Position: vec(0, 1, 0), Normal: vec(-1, 1, -1)},
		{Position: vec(0, 0, 1), Normal: vec(-1, -1, 1)},
	}
	const rho = 10.0
	positions := cloud.positions()
	g, err := grid.Build(positions, rho)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	reg := front.NewRegistry(len(cloud))

	tri, _, ok := findSeed(cloud, reg, g, positions, rho, rho*defaultEpsScale)
	if !ok {
		t.Fatalf("findSeed() ok = false, want a seed triangle")
	}
	ids := tri.unordered()
	for i := 1; i < 3; i++ {
		if ids[i] == ids[i-1] {
			t.Errorf("findSeed() returned a degenerate triangle: %+v", tri)
		}
	}
}

func TestFindSeed_TooFewPointsFails(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0)},
		{Position: vec(1, 0, 0)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 1)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	reg := front.NewRegistry(len(cloud))
	if _, _, ok := findSeed(cloud, reg, g, positions, 1, 1e-7); ok {
		t.Errorf("findSeed() with only two points ok = true, want false")
	}
}

func TestNeighborsByDistanceThenID_OrderedByDistance(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0)},
		{Position: vec(3, 0, 0)},
		{Position: vec(1, 0, 0)},
		{Position: vec(2, 0, 0)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 10)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}

	got := neighborsByDistanceThenID(g, positions, 0, 10)
	want := []PointID{2, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("neighborsByDistanceThenID() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighborsByDistanceThenID()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighborsByDistanceThenID_TiesBrokenByID(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0)},
		{Position: vec(1, 0, 0)},
		{Position: vec(-1, 0, 0)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 10)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}

	got := neighborsByDistanceThenID(g, positions, 0, 10)
	want := []PointID{1, 2}
	if len(got) != len(want) {
		t.Fatalf("neighborsByDistanceThenID() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighborsByDistanceThenID()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighborsByDistanceThenID_ExcludesCenter(t *testing.T) {
	cloud := Cloud{
		{Position: vec(0, 0, 0)},
		{Position: vec(1, 0, 0)},
	}
	positions := cloud.positions()
	g, err := grid.Build(positions, 10)
	if err != nil {
		t.Fatalf("grid.Build() error = %v", err)
	}
	got := neighborsByDistanceThenID(g, positions, 0, 10)
	for _, id := range got {
		if id == 0 {
			t.Errorf("neighborsByDistanceThenID() included the center point itself")
		}
	}
}
