// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"strings"
	"testing"

	"github.com/halvard/rendercore/render"
)

func TestAssembleSourceIncludesPreludeAndBody(t *testing.T) {
	stage := render.ShaderSource{
		Stage:   render.SFragment,
		Source:  "void main() { rx_position; }",
		Inputs:  []render.IOVar{{Name: "v_normal", Location: 0}},
		Outputs: []render.IOVar{{Name: "frag_color", Location: 0}},
	}
	uniforms := []render.Uniform{
		{Name: "u_albedo", Kind: render.USampler2D},
		{Name: "u_pad", Kind: render.UPad},
	}
	src := assembleSource(stage, uniforms)

	if !strings.HasPrefix(src, shaderPrelude) {
		t.Fatal("assembleSource: prelude not emitted first")
	}
	if !strings.Contains(src, "layout(location = 0) in vec4 v_normal;") {
		t.Fatalf("assembleSource: missing input declaration, got:\n%s", src)
	}
	if !strings.Contains(src, "layout(location = 0) out vec4 frag_color;") {
		t.Fatalf("assembleSource: missing output declaration, got:\n%s", src)
	}
	if !strings.Contains(src, "uniform rx_sampler2D u_albedo;") {
		t.Fatalf("assembleSource: missing uniform declaration, got:\n%s", src)
	}
	if strings.Contains(src, "u_pad") {
		t.Fatal("assembleSource: padding uniform must not be declared")
	}
	if !strings.Contains(src, "#line 0\nvoid main()") {
		t.Fatalf("assembleSource: body not appended after #line reset, got:\n%s", src)
	}
	if !strings.HasSuffix(src, "\x00") {
		t.Fatal("assembleSource: missing NUL terminator")
	}
}

func TestGlslTypeNameCoversEveryKind(t *testing.T) {
	kinds := []render.UniformKind{
		render.USampler2D, render.USamplerCube, render.UScalar,
		render.UVec2, render.UVec3, render.UVec4,
		render.UMat3x3, render.UMat4x4, render.UBones,
	}
	for _, k := range kinds {
		if glslTypeName(k) == "" {
			t.Fatalf("glslTypeName(%v): empty result", k)
		}
	}
}
