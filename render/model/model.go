// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package model implements the model importer: geometry
// validation, normal/tangent generation, and batch coalescing
// by material. It does not read any file format; callers
// populate an Importer's fields directly from a parser.
package model

import (
	"log/slog"

	"github.com/halvard/rendercore/linear"
)

const modelPrefix = "model/importer: "

// Mesh names a contiguous range of the element buffer
// rendered with a single material.
type Mesh struct {
	Offset   int
	Count    int
	Material string
	Bounds   linear.AABB3
}

// Tangent is a unit tangent vector with a handedness sign
// carried in W (+1 or -1), used to reconstruct the bitangent
// in the shader as cross(normal, tangent.xyz) * tangent.w.
type Tangent struct {
	X, Y, Z, W float32
}

// Importer holds the raw geometry of one loaded model and
// produces a validated, fully-attributed, material-coalesced
// Model from it.
type Importer struct {
	Name string

	Positions []linear.V3
	// Coordinates, Normals and Tangents are optional on
	// input; Load generates missing Normals and Tangents
	// (Tangents only from Coordinates, which it does not
	// generate) and resizes whichever are present but
	// mismatched in length.
	Coordinates []linear.V2
	Normals     []linear.V3
	Tangents    []Tangent

	// BlendIndices and BlendWeights carry per-vertex skinning
	// data for animated models; Load passes them through
	// unvalidated, without checking their lengths.
	BlendIndices [][4]uint8
	BlendWeights [][4]float32

	Elements []uint32
	Meshes   []Mesh

	log *slog.Logger
}

// Model is the validated, fully-attributed result of Load:
// geometry ready for GPU upload, with meshes coalesced to one
// per distinct material.
type Model struct {
	Positions    []linear.V3
	Coordinates  []linear.V2
	Normals      []linear.V3
	Tangents     []Tangent
	BlendIndices [][4]uint8
	BlendWeights [][4]float32
	Elements     []uint32
	Meshes       []Mesh
}

// NewImporter constructs an Importer identified by name, used
// only to prefix its log lines.
func NewImporter(name string) *Importer {
	l := slog.Default().With("subsystem", "model/importer")
	if name != "" {
		l = l.With("model", name)
	}
	return &Importer{Name: name, log: l}
}
