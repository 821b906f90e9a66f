// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

// shaderPrelude is injected verbatim ahead of every compiled
// shader stage: language version, an extension needed by
// tangent-space shading, and the engine's scalar/vector type
// aliases and intrinsic name mappings.
const shaderPrelude = `#version 330 core
#extension GL_OES_standard_derivatives : enable
#define vec2f vec2
#define vec3f vec3
#define vec4f vec4
#define mat3x3f mat3
#define mat4x4f mat4
#define bonesf mat3x4[80]
#define rx_sampler2D sampler2D
#define rx_samplerCube samplerCube
#define rx_texture2D texture
#define rx_texture2DLod textureLod
#define rx_position gl_Position
#define rx_point_size gl_PointSize
`

// ioLayout renders the recorded input/output declarations of
// a shader stage as explicit layout(location=N) in/out lines.
func ioLayout(vars []render.IOVar, qualifier string) string {
	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "layout(location = %d) %s vec4 %s;\n", v.Location, qualifier, v.Name)
	}
	return b.String()
}

// uniformDecls renders the recorded uniform list as GLSL
// uniform declarations, skipping padding uniforms (which
// reserve an engine-side slot index but have no GPU-visible
// counterpart).
func uniformDecls(uniforms []render.Uniform) string {
	var b strings.Builder
	for _, u := range uniforms {
		if u.Kind == render.UPad {
			continue
		}
		b.WriteString("uniform ")
		b.WriteString(glslTypeName(u.Kind))
		b.WriteByte(' ')
		b.WriteString(u.Name)
		b.WriteString(";\n")
	}
	return b.String()
}

func glslTypeName(k render.UniformKind) string {
	switch k {
	case render.USampler2D:
		return "rx_sampler2D"
	case render.USamplerCube:
		return "rx_samplerCube"
	case render.UScalar:
		return "float"
	case render.UVec2:
		return "vec2f"
	case render.UVec3:
		return "vec3f"
	case render.UVec4:
		return "vec4f"
	case render.UMat3x3:
		return "mat3x3f"
	case render.UMat4x4:
		return "mat4x4f"
	case render.UBones:
		return "bonesf"
	default:
		panic("gl3: undefined UniformKind constant")
	}
}

// assembleSource composes the full source handed to
// glShaderSource: prelude, generated layout/uniform
// declarations, a #line reset, then the user body.
func assembleSource(stage render.ShaderSource, uniforms []render.Uniform) string {
	var b strings.Builder
	b.WriteString(shaderPrelude)
	qualifier := "in"
	if stage.Stage == render.SFragment {
		// Fragment inputs were declared "out" by the vertex
		// stage; the Inputs/Outputs lists already carry the
		// correct qualifier expectation per stage.
	}
	b.WriteString(ioLayout(stage.Inputs, qualifier))
	b.WriteString(ioLayout(stage.Outputs, "out"))
	b.WriteString(uniformDecls(uniforms))
	b.WriteString("#line 0\n")
	b.WriteString(stage.Source)
	if !strings.HasSuffix(b.String(), "\x00") {
		b.WriteByte(0)
	}
	return b.String()
}

// compileShader compiles one GLSL stage and returns its
// object name. The caller is responsible for deleting it
// after linking.
func compileShader(stage render.ShaderSource, uniforms []render.Uniform) (uint32, error) {
	var kind uint32
	switch stage.Stage {
	case render.SVertex:
		kind = gl.VERTEX_SHADER
	case render.SFragment:
		kind = gl.FRAGMENT_SHADER
	default:
		panic("gl3: undefined ShaderStage constant")
	}
	src := assembleSource(stage, uniforms)
	id := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)
	if logMsg := shaderLog(id, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); logMsg != "" {
		gl.DeleteShader(id)
		return 0, fmt.Errorf("gl3: shader compile failed: %s", logMsg)
	}
	return id, nil
}

// linkProgram compiles and links every recorded shader stage
// of p into a fresh GL program object.
func linkProgram(p *render.Program) (uint32, error) {
	rid := gl.CreateProgram()
	var attached []uint32
	defer func() {
		for _, id := range attached {
			gl.DetachShader(rid, id)
			gl.DeleteShader(id)
		}
	}()
	for _, s := range p.Shaders() {
		id, err := compileShader(s, p.Uniforms())
		if err != nil {
			return 0, err
		}
		gl.AttachShader(rid, id)
		attached = append(attached, id)
	}
	gl.LinkProgram(rid)
	if logMsg := shaderLog(rid, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); logMsg != "" {
		gl.DeleteProgram(rid)
		return 0, fmt.Errorf("gl3: program link failed: %s", logMsg)
	}
	return rid, nil
}

// shaderLog returns the compile/link info log for id when the
// queried status parameter is false, or an empty string on
// success.
func shaderLog(id, statusParam uint32,
	getIV func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8)) string {
	var ok int32
	getIV(id, statusParam, &ok)
	if ok != gl.FALSE {
		return ""
	}
	var n int32
	getIV(id, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return "unknown error"
	}
	buf := make([]byte, n)
	getLog(id, n, nil, &buf[0])
	return string(buf[:len(buf)-1])
}
