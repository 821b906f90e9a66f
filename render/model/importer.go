// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package model

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/halvard/rendercore/linear"
)

// epsilon bounds degenerate UV-space triangle rejection during
// tangent generation.
const epsilon = 1e-8

// Load validates i's geometry, fills in missing normals and
// tangents, resizes mismatched attribute arrays (warning on
// each), and coalesces meshes sharing a material into single
// batches. It returns an error for unrecoverable input: no
// elements, an out-of-range element, an element count not a
// multiple of 3, or missing tangents with no UV coordinates
// to derive them from.
func (i *Importer) Load() (*Model, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}

	vertices := len(i.Positions)

	if len(i.Normals) == 0 {
		i.log.Warn("missing normals")
		i.generateNormals()
	}

	if len(i.Tangents) == 0 {
		if len(i.Coordinates) == 0 {
			return nil, errors.New(modelPrefix + "missing tangents and texture coordinates, bailing")
		}
		i.log.Warn("missing tangents, generating them")
		if !i.generateTangents() {
			return nil, errors.New(modelPrefix + "could not generate tangents, degenerate tangents formed")
		}
	}

	i.resizeWarn(&i.Normals, vertices, "normals")
	i.resizeTangentsWarn(vertices)
	if len(i.Coordinates) != 0 {
		i.resizeCoordsWarn(vertices)
	}

	meshes, elements := i.coalesce()

	return &Model{
		Positions:    i.Positions,
		Coordinates:  i.Coordinates,
		Normals:      i.Normals,
		Tangents:     i.Tangents,
		BlendIndices: i.BlendIndices,
		BlendWeights: i.BlendWeights,
		Elements:     elements,
		Meshes:       meshes,
	}, nil
}

func (i *Importer) validate() error {
	if len(i.Elements) == 0 || len(i.Positions) == 0 {
		return errors.New(modelPrefix + "missing vertices")
	}
	vertices := uint32(len(i.Positions))
	for _, e := range i.Elements {
		if e >= vertices {
			return fmt.Errorf(modelPrefix+"element %d out of bounds", e)
		}
	}
	if len(i.Elements)%3 != 0 {
		return errors.New(modelPrefix + "unfinished triangles")
	}
	return nil
}

// generateNormals accumulates each triangle's unit face normal
// onto its three vertices, then normalizes every vertex's
// accumulated normal.
func (i *Importer) generateNormals() {
	i.Normals = make([]linear.V3, len(i.Positions))

	var p1p0, p2p0, normal linear.V3
	for e := 0; e < len(i.Elements); e += 3 {
		i0, i1, i2 := i.Elements[e], i.Elements[e+1], i.Elements[e+2]

		p1p0.Sub(&i.Positions[i1], &i.Positions[i0])
		p2p0.Sub(&i.Positions[i2], &i.Positions[i0])
		normal.Cross(&p1p0, &p2p0)
		normal.Norm(&normal)

		i.Normals[i0].Add(&i.Normals[i0], &normal)
		i.Normals[i1].Add(&i.Normals[i1], &normal)
		i.Normals[i2].Add(&i.Normals[i2], &normal)
	}

	for v := range i.Normals {
		i.Normals[v].Norm(&i.Normals[v])
	}
}

// generateTangents accumulates per-vertex tangent and
// bitangent vectors from UV-space inverse derivatives, then
// Gram-Schmidt-orthonormalizes each tangent against its vertex
// normal and derives the bitangent's handedness sign. It
// returns false if every triangle is UV-degenerate.
//
// The reference implementation's bitangent accumulation joins
// its two terms with a stray multiplication instead of the
// subtraction the surrounding tangent-space derivation
// requires; this port uses the standard two-term formula
// (see DESIGN.md) rather than reproduce that defect.
func (i *Importer) generateTangents() bool {
	vertexCount := len(i.Positions)
	tangents := make([]linear.V3, vertexCount)
	bitangents := make([]linear.V3, vertexCount)

	var anyValid bool
	var q1, q2, uv0, uv1, tangent, bitangent, term linear.V3
	for e := 0; e < len(i.Elements); e += 3 {
		i0, i1, i2 := i.Elements[e], i.Elements[e+1], i.Elements[e+2]

		var uv0v2, uv1v2 linear.V2
		uv0v2.Sub(&i.Coordinates[i1], &i.Coordinates[i0])
		uv1v2.Sub(&i.Coordinates[i2], &i.Coordinates[i0])
		uv0 = linear.V3{uv0v2[0], uv0v2[1], 0}
		uv1 = linear.V3{uv1v2[0], uv1v2[1], 0}

		q1.Sub(&i.Positions[i1], &i.Positions[i0])
		q2.Sub(&i.Positions[i2], &i.Positions[i0])

		det := uv0[0]*uv1[1] - uv1[0]*uv0[1]
		if math32.Abs(det) <= epsilon {
			continue
		}
		anyValid = true
		invDet := 1 / det

		tangent.Scale(uv1[1], &q1)
		term.Scale(uv0[1], &q2)
		tangent.Sub(&tangent, &term)
		tangent.Scale(invDet, &tangent)

		bitangent.Scale(-uv1[0], &q1)
		term.Scale(uv0[0], &q2)
		bitangent.Add(&bitangent, &term)
		bitangent.Scale(invDet, &bitangent)

		tangents[i0].Add(&tangents[i0], &tangent)
		tangents[i1].Add(&tangents[i1], &tangent)
		tangents[i2].Add(&tangents[i2], &tangent)

		bitangents[i0].Add(&bitangents[i0], &bitangent)
		bitangents[i1].Add(&bitangents[i1], &bitangent)
		bitangents[i2].Add(&bitangents[i2], &bitangent)
	}
	if !anyValid {
		return false
	}

	i.Tangents = make([]Tangent, vertexCount)
	var cross, scaled, real linear.V3
	for v := 0; v < vertexCount; v++ {
		var normal linear.V3
		if v < len(i.Normals) {
			normal = i.Normals[v]
		}
		t := tangents[v]

		d := normal.Dot(&t)
		scaled.Scale(d, &normal)
		real.Sub(&t, &scaled)
		real.Norm(&real)

		cross.Cross(&normal, &t)
		sign := float32(1)
		if cross.Dot(&bitangents[v]) < 0 {
			sign = -1
		}

		i.Tangents[v] = Tangent{real[0], real[1], real[2], sign}
	}
	return true
}

func (i *Importer) resizeWarn(arr *[]linear.V3, want int, name string) {
	if len(*arr) == want {
		return
	}
	if len(*arr) > want {
		i.log.Warn("too many " + name)
	} else {
		i.log.Warn("too few " + name)
	}
	resized := make([]linear.V3, want)
	copy(resized, *arr)
	*arr = resized
}

func (i *Importer) resizeTangentsWarn(want int) {
	if len(i.Tangents) == want {
		return
	}
	if len(i.Tangents) > want {
		i.log.Warn("too many tangents")
	} else {
		i.log.Warn("too few tangents")
	}
	resized := make([]Tangent, want)
	copy(resized, i.Tangents)
	i.Tangents = resized
}

func (i *Importer) resizeCoordsWarn(want int) {
	if len(i.Coordinates) == want {
		return
	}
	if len(i.Coordinates) > want {
		i.log.Warn("too many coordinates")
	} else {
		i.log.Warn("too few coordinates")
	}
	resized := make([]linear.V2, want)
	copy(resized, i.Coordinates)
	i.Coordinates = resized
}

// coalesce groups i.Meshes by material, in first-encountered
// material order, concatenating each group's element ranges
// into a single contiguous run and computing its combined
// AABB.
func (i *Importer) coalesce() ([]Mesh, []uint32) {
	order := make([]string, 0, len(i.Meshes))
	batches := make(map[string][]Mesh, len(i.Meshes))

	for _, m := range i.Meshes {
		var bounds linear.AABB3
		bounds.Reset()
		for k := 0; k < m.Count; k++ {
			p := i.Positions[i.Elements[m.Offset+k]]
			bounds.Extend(&p)
		}
		b := m
		b.Bounds = bounds
		if _, ok := batches[m.Material]; !ok {
			order = append(order, m.Material)
		}
		batches[m.Material] = append(batches[m.Material], b)
	}

	meshes := make([]Mesh, 0, len(order))
	elements := make([]uint32, 0, len(i.Elements))

	for _, material := range order {
		var bounds linear.AABB3
		bounds.Reset()
		offset := len(elements)
		for _, b := range batches[material] {
			elements = append(elements, i.Elements[b.Offset:b.Offset+b.Count]...)
			bounds.Union(&bounds, &b.Bounds)
		}
		meshes = append(meshes, Mesh{
			Offset:   offset,
			Count:    len(elements) - offset,
			Material: material,
			Bounds:   bounds,
		})
	}

	return meshes, elements
}
