// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command bpa is a thin CLI front-end over the reconstruction core (spec §6
// "Executable surface"), out of core scope but specified for completeness.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	bpa "github.com/martinfrances107/bpa-go"
	"github.com/martinfrances107/bpa-go/bpaio"
	"github.com/martinfrances107/bpa-go/bpamesh"
)

func main() {
	var (
		input   = flag.String("input", "", "path to an xyz point cloud")
		demo    = flag.String("demo", "", "skip --input and reconstruct a synthetic cloud instead: one of tetrahedron, cube, icosphere")
		radius  = flag.Float64("radius", 0, "ball-pivoting radius")
		output  = flag.String("output", "", "path to write the reconstructed STL (default: input with .stl extension, or NAME.stl for --demo NAME)")
		preview = flag.String("preview", "", "optional path to write a 2D SVG projection of the reconstructed mesh")
	)
	flag.Parse()

	if (*input == "" && *demo == "") || *radius <= 0 {
		fmt.Fprintln(os.Stderr, "usage: bpa (--input PATH | --demo NAME) --radius FLOAT [--output PATH] [--preview PATH]")
		os.Exit(1)
	}

	cloud, err := loadCloud(*input, *demo)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	mesh, err := bpa.Reconstruct(cloud, *radius)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
	if mesh == nil {
		log.Print(fmt.Errorf("bpa: %s: %w", *input+*demo, bpa.ErrNoMesh))
		os.Exit(2)
	}

	outPath := *output
	if outPath == "" {
		switch {
		case *input != "":
			ext := filepath.Ext(*input)
			outPath = strings.TrimSuffix(*input, ext) + ".stl"
		default:
			outPath = *demo + ".stl"
		}
	}
	if err := bpaio.SaveSTL(outPath, mesh); err != nil {
		log.Print(err)
		os.Exit(1)
	}

	if *preview != "" {
		if err := writePreviewSVG(*preview, mesh); err != nil {
			log.Print(err)
			os.Exit(1)
		}
	}
}

// loadCloud resolves the --input/--demo pair into a point cloud: a parsed
// xyz file, or one of bpamesh's synthetic generators for quick smoke-testing
// without a fixture file on disk.
func loadCloud(input, demo string) (bpa.Cloud, error) {
	if input != "" {
		return bpaio.LoadXYZ(input)
	}
	switch demo {
	case "tetrahedron":
		return bpamesh.Tetrahedron(), nil
	case "cube":
		return bpamesh.Cube(), nil
	case "icosphere":
		return bpamesh.Icosphere(2), nil
	default:
		return nil, fmt.Errorf("bpa: unknown --demo %q (want tetrahedron, cube, or icosphere)", demo)
	}
}
