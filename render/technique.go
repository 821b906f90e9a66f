// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "sync"

// Permutation is a 64-bit set of feature flags selecting one
// concrete Program within a Technique family.
type Permutation uint64

// TechniqueBuilder builds the shader source and uniform list
// for one permutation of a technique. It is supplied by the
// material/shader layer (materials are structured inputs to
// this package, not parsed here) and invoked lazily the first
// time a given permutation is requested.
type TechniqueBuilder func(flags Permutation) (vertex, fragment ShaderSource, uniforms []Uniform, desc ProgramDesc)

// Technique is a named shader permutation family. Permute
// returns the concrete Program for a given flag set, creating
// and initializing it on first use and reusing it afterward.
type Technique struct {
	Name  string
	build TechniqueBuilder
	front *FrontendContext

	mu       sync.Mutex
	programs map[Permutation]*Program
}

// NewTechnique creates a technique that lazily builds
// permutations via build, registering programs with front.
func NewTechnique(front *FrontendContext, name string, build TechniqueBuilder) *Technique {
	return &Technique{
		Name:     name,
		build:    build,
		front:    front,
		programs: make(map[Permutation]*Program),
	}
}

// Permute returns the Program for the given flags, building
// and initializing it the first time it is requested.
func (t *Technique) Permute(flags Permutation) (*Program, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.programs[flags]; ok {
		return p, nil
	}
	vs, fs, uniforms, desc := t.build(flags)
	prog, err := t.front.CreateProgram()
	if err != nil {
		return nil, err
	}
	prog.RecordDesc(desc)
	prog.RecordShader(vs)
	prog.RecordShader(fs)
	for _, u := range uniforms {
		prog.RecordUniform(u.Name, u.Kind)
	}
	if err := t.front.InitializeProgram(prog); err != nil {
		t.front.DestroyProgram(prog)
		return nil, err
	}
	t.programs[flags] = prog
	return prog, nil
}

// Release drops every permutation this technique has built.
func (t *Technique) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.programs {
		t.front.DestroyProgram(p)
	}
	t.programs = make(map[Permutation]*Program)
}
