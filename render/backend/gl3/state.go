// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

// shadow mirrors the subset of GL state the backend touches,
// so that each use* helper can elide a driver call when the
// incoming value already matches. It is only ever touched
// from the render thread.
type shadow struct {
	valid bool

	vbo, ebo, vao uint32
	drawFBO       uint32
	readFBO       uint32
	program       uint32
	activeUnit    uint32
	texBound      map[uint32]uint32 // GL texture unit -> bound object name

	state    render.State
	hasState bool
}

func newShadow() *shadow {
	return &shadow{texBound: make(map[uint32]uint32)}
}

func (s *shadow) useVAO(id uint32) {
	if s.vao != id {
		gl.BindVertexArray(id)
		s.vao = id
	}
}

func (s *shadow) useVBO(id uint32) {
	if s.vbo != id {
		gl.BindBuffer(gl.ARRAY_BUFFER, id)
		s.vbo = id
	}
}

func (s *shadow) useEBO(id uint32) {
	if s.ebo != id {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
		s.ebo = id
	}
}

func (s *shadow) useDrawFBO(id uint32) {
	if s.drawFBO != id {
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, id)
		s.drawFBO = id
	}
}

func (s *shadow) useReadFBO(id uint32) {
	if s.readFBO != id {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, id)
		s.readFBO = id
	}
}

func (s *shadow) useProgram(id uint32) {
	if s.program != id {
		gl.UseProgram(id)
		s.program = id
	}
}

// useTexture binds obj to the given texture unit, under the
// given target, only if the unit's shadowed binding differs.
func (s *shadow) useTexture(unit uint32, target, obj uint32) {
	if s.activeUnit != unit {
		gl.ActiveTexture(gl.TEXTURE0 + unit)
		s.activeUnit = unit
	}
	if s.texBound[unit] != obj {
		gl.BindTexture(target, obj)
		s.texBound[unit] = obj
	}
}

// useState applies every sub-field of the high-level State
// that differs from the shadowed copy. A hash/equality check
// against the whole struct short-circuits the common case of
// an unchanged State between consecutive commands.
func (s *shadow) useState(next render.State) {
	if s.hasState && s.state.Equal(next) {
		return
	}
	if !s.hasState || s.state.Viewport != next.Viewport {
		v := next.Viewport
		gl.Viewport(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height))
		gl.DepthRange(float64(v.MinDepth), float64(v.MaxDepth))
	}
	if !s.hasState || s.state.Scissor != next.Scissor {
		if next.Scissor.Enabled {
			gl.Enable(gl.SCISSOR_TEST)
			sc := next.Scissor
			gl.Scissor(int32(sc.X), int32(sc.Y), int32(sc.Width), int32(sc.Height))
		} else {
			gl.Disable(gl.SCISSOR_TEST)
		}
	}
	if !s.hasState || s.state.Blend != next.Blend {
		applyBlend(next.Blend)
	}
	if !s.hasState || s.state.Depth != next.Depth {
		applyDepth(next.Depth)
	}
	if !s.hasState || s.state.Cull != next.Cull {
		applyCull(next.Cull)
	}
	if !s.hasState || s.state.Stencil != next.Stencil {
		applyStencil(next.Stencil)
	}
	if !s.hasState || s.state.Polygon != next.Polygon {
		gl.PolygonMode(gl.FRONT_AND_BACK, convertPolygonMode(next.Polygon))
	}
	s.state = next
	s.hasState = true
}

func applyBlend(b render.BlendState) {
	if !b.Enabled {
		gl.Disable(gl.BLEND)
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(
		convertBlendFunc(b.SrcColor), convertBlendFunc(b.DstColor),
		convertBlendFunc(b.SrcAlpha), convertBlendFunc(b.DstAlpha),
	)
	gl.BlendColor(b.ConstantColor[0], b.ConstantColor[1], b.ConstantColor[2], b.ConstantColor[3])
	gl.ColorMask(b.ColorMask[0], b.ColorMask[1], b.ColorMask[2], b.ColorMask[3])
}

func applyDepth(d render.DepthState) {
	if d.TestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(convertCompareFunc(d.Compare))
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(d.WriteEnabled)
}

func applyCull(c render.CullMode) {
	if c == render.CullNone {
		gl.Disable(gl.CULL_FACE)
		return
	}
	gl.Enable(gl.CULL_FACE)
	if c == render.CullFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

func applyStencil(st render.StencilState) {
	if !st.Enabled {
		gl.Disable(gl.STENCIL_TEST)
		return
	}
	gl.Enable(gl.STENCIL_TEST)
	applyStencilFace(gl.FRONT, st.Front, st.Reference)
	applyStencilFace(gl.BACK, st.Back, st.Reference)
}

func applyStencilFace(face uint32, f render.StencilFace, ref uint32) {
	gl.StencilFuncSeparate(face, convertCompareFunc(f.Compare), int32(ref), f.ReadMask)
	gl.StencilOpSeparate(face, convertStencilOp(f.Fail), convertStencilOp(f.DepthFail), convertStencilOp(f.Pass))
	gl.StencilMaskSeparate(face, f.WriteMask)
}
