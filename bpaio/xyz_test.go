// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bpaio

import (
	"errors"
	"strings"
	"testing"

	bpa "github.com/martinfrances107/bpa-go"
	"github.com/google/go-cmp/cmp"
)

func TestParseXYZ_ValidLines(t *testing.T) {
	input := "" +
		"# comment\n" +
		"\n" +
		"0 0 0 1 0 0\n" +
		"1 2 3 0 1 0\n"
	got, err := ParseXYZ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseXYZ() error = %v", err)
	}
	want := bpa.Cloud{
		{Position: bpa.Vec3{X: 0, Y: 0, Z: 0}, Normal: bpa.Vec3{X: 1, Y: 0, Z: 0}},
		{Position: bpa.Vec3{X: 1, Y: 2, Z: 3}, Normal: bpa.Vec3{X: 0, Y: 1, Z: 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseXYZ() mismatch (-want +got):\n%v", diff)
	}
}

func TestParseXYZ_MalformedLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "0 0 0 1 0\n"},
		{"non-numeric field", "0 0 0 1 0 x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXYZ(strings.NewReader(tt.input))
			if err == nil {
				t.Errorf("ParseXYZ(%q) error = nil, want ParseError", tt.input)
			}
			var pe *ParseError
			if err != nil && !errors.As(err, &pe) {
				t.Errorf("ParseXYZ(%q) error type = %T, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestParseXYZ_Empty(t *testing.T) {
	got, err := ParseXYZ(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseXYZ(\"\") error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseXYZ(\"\") len = %v, want 0", len(got))
	}
}
