// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"errors"

	"github.com/halvard/rendercore/internal/bitvec"
)

const progPrefix = "program: "

// MaxUniformSlots is the maximum number of uniforms a single
// Program may declare; it is bounded by the width of the
// dirty-uniform bitset.
const MaxUniformSlots = 64

// IOVar names one declared shader input or output and the
// attribute location it is bound to.
type IOVar struct {
	Name     string
	Location int
}

// ShaderSource is one stage of a Program, with its declared
// input/output interface.
type ShaderSource struct {
	Stage   ShaderStage
	Source  string
	Inputs  []IOVar
	Outputs []IOVar
}

// ProgramDesc describes a program: its name and #define set.
// Technique.Permute caches programs by Permutation flags;
// nothing in this package looks programs up by ProgramDesc.
type ProgramDesc struct {
	Name    string
	Defines []string
}

// Uniform is one entry of a Program's ordered uniform list.
// Padding uniforms (Kind == UPad) reserve a slot index with
// no backing storage, so that unrelated uniforms keep stable
// indices across permutations that drop a feature.
type Uniform struct {
	Name  string
	Kind  UniformKind
	value []byte
}

// Program is a linked shader program: an ordered list of
// typed uniforms, an ordered list of shader stages, a
// ProgramDesc description, and a 64-bit dirty-uniform bitset.
type Program struct {
	Resource

	desc    ProgramDesc
	descSet bool

	shaders  []ShaderSource
	uniforms []Uniform
	dirty    bitvec.V[uint64]
}

// RecordDesc records p's description. It must be
// called exactly once, before Initialize.
func (p *Program) RecordDesc(desc ProgramDesc) {
	if p.descSet {
		panic("render: program description recorded twice")
	}
	p.desc = desc
	p.descSet = true
}

// Desc returns the program's recorded description.
func (p *Program) Desc() ProgramDesc { return p.desc }

// RecordShader appends a shader stage to p's ordered shader
// list. It must be called before Initialize.
func (p *Program) RecordShader(src ShaderSource) {
	p.shaders = append(p.shaders, src)
}

// Shaders returns the program's ordered shader stage list.
func (p *Program) Shaders() []ShaderSource { return p.shaders }

// RecordUniform appends a uniform declaration to p's ordered
// uniform list and returns its slot index, for later use with
// RecordValue and the backend's location table. It panics if the
// program already has MaxUniformSlots uniforms.
func (p *Program) RecordUniform(name string, kind UniformKind) int {
	if len(p.uniforms) >= MaxUniformSlots {
		panic("render: program uniform slots exceeded")
	}
	if p.dirty.Len() == 0 {
		p.dirty.Grow(1)
	}
	p.uniforms = append(p.uniforms, Uniform{Name: name, Kind: kind, value: make([]byte, kind.Size())})
	return len(p.uniforms) - 1
}

// Uniforms returns the program's ordered uniform list.
func (p *Program) Uniforms() []Uniform { return p.uniforms }

// validate asserts that every field required before
// Initialize has in fact been recorded.
func (p *Program) validate() error {
	if !p.descSet {
		return errors.New(progPrefix + "description not recorded")
	}
	var hasVertex, hasFragment bool
	for _, s := range p.shaders {
		switch s.Stage {
		case SVertex:
			hasVertex = true
		case SFragment:
			hasFragment = true
		}
	}
	if !hasVertex || !hasFragment {
		return errors.New(progPrefix + "program requires both a vertex and a fragment shader")
	}
	return nil
}

// RecordValue writes raw value bytes for the uniform at
// slot and marks it dirty. It panics if len(data) does not
// match the uniform's fixed size, or if slot is a padding
// uniform (Kind == UPad).
func (p *Program) RecordValue(slot int, data []byte) {
	u := &p.uniforms[slot]
	if u.Kind == UPad {
		panic("render: cannot record a value for a padding uniform")
	}
	if len(data) != len(u.value) {
		panic("render: uniform value size mismatch")
	}
	copy(u.value, data)
	p.dirty.Set(slot)
}

// DirtyUniformsSize returns the sum of the sizes of every
// uniform whose dirty bit is currently set.
func (p *Program) DirtyUniformsSize() int {
	var n int
	for i := range p.uniforms {
		if p.dirty.Len() > i && p.dirty.IsSet(i) {
			n += len(p.uniforms[i].value)
		}
	}
	return n
}

// flushDirtyUniforms writes the value bytes of every dirty
// uniform to dst, in ascending slot index, concatenated
// without padding, and returns the number of bytes written.
// This is the snapshot captured into a draw command's tail
// at enqueue time.
func (p *Program) flushDirtyUniforms(dst []byte) int {
	var n int
	for i := range p.uniforms {
		if p.dirty.Len() <= i || !p.dirty.IsSet(i) {
			continue
		}
		n += copy(dst[n:], p.uniforms[i].value)
	}
	return n
}

// clearDirty unsets every dirty bit, as happens when a draw
// carrying this program's uniform snapshot is enqueued.
func (p *Program) clearDirty() {
	for i := range p.uniforms {
		if p.dirty.Len() > i {
			p.dirty.Unset(i)
		}
	}
}

// DirtyBits returns the current 64-bit dirty-uniform mask.
func (p *Program) DirtyBits() uint64 {
	var mask uint64
	for i := range p.uniforms {
		if p.dirty.Len() > i && p.dirty.IsSet(i) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
