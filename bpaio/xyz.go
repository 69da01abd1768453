// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package bpaio implements the ASCII point-cloud parser and binary STL
// writer consumed by the reconstruction core as external collaborators
// (spec §1 "Out of scope", §6 "Consumed external interfaces").
package bpaio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	bpa "github.com/martinfrances107/bpa-go"
)

// ParseError marks a malformed xyz line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bpaio: line %d: %s", e.Line, e.Msg)
}

// LoadXYZ parses an ASCII point cloud from path: one point per line as six
// whitespace-separated floats "x y z nx ny nz". Blank lines and lines
// starting with '#' are ignored.
func LoadXYZ(path string) (bpa.Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bpaio.LoadXYZ: %w", err)
	}
	defer f.Close()
	return ParseXYZ(f)
}

// ParseXYZ parses an ASCII point cloud from r, with the same line format as
// LoadXYZ.
func ParseXYZ(r io.Reader) (bpa.Cloud, error) {
	var cloud bpa.Cloud
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
		}
		var values [6]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("field %d: %v", i, err)}
			}
			values[i] = v
		}
		cloud = append(cloud, bpa.Point{
			Position: bpa.Vec3{X: values[0], Y: values[1], Z: values[2]},
			Normal:   bpa.Vec3{X: values[3], Y: values[4], Z: values[5]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bpaio.ParseXYZ: %w", err)
	}
	return cloud, nil
}
