// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

// kMaxColorAttachments mirrors render's unexported bound on
// the number of color attachments a Target may carry.
const kMaxColorAttachments = 8

// fboOf resolves a render.Target to the GL framebuffer object
// name shadowing it, defaulting to the captured default
// framebuffer for the swapchain.
func (b *Backend) fboOf(t *render.Target) uint32 {
	ts, ok := b.targets[t.Handle()]
	if !ok {
		return 0
	}
	return ts.fbo
}

func drawBufferEnums(indices []int) []uint32 {
	if len(indices) == 0 {
		return []uint32{gl.NONE}
	}
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = gl.COLOR_ATTACHMENT0 + uint32(idx)
	}
	return out
}

func (b *Backend) clear(p render.ClearPayload) {
	b.shadow.useDrawFBO(b.fboOf(p.Target))
	bufs := drawBufferEnums(p.DrawBuffers)
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	b.shadow.useState(p.State)

	for i := 0; i < kMaxColorAttachments; i++ {
		if p.Mask&(1<<uint(2+i)) != 0 {
			c := p.ColorValues[i]
			gl.ClearBufferfv(gl.COLOR, int32(i), &c[0])
		}
	}
	const depthBit, stencilBit = 1 << 0, 1 << 1
	switch {
	case p.Mask&depthBit != 0 && p.Mask&stencilBit != 0:
		gl.ClearBufferfi(gl.DEPTH_STENCIL, 0, p.DepthValue, p.StencilValue)
	case p.Mask&depthBit != 0:
		gl.ClearBufferfv(gl.DEPTH, 0, &p.DepthValue)
	case p.Mask&stencilBit != 0:
		v := p.StencilValue
		gl.ClearBufferiv(gl.STENCIL, 0, &v)
	}
}

func (b *Backend) draw(p render.DrawPayload) {
	b.shadow.useDrawFBO(b.fboOf(p.Target))
	bufs := drawBufferEnums(p.DrawBuffers)
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])

	// A bufferless draw (nil Buffer) keeps the zero BufferDesc,
	// whose ENone element type selects DrawArrays below.
	var desc render.BufferDesc
	if p.Buffer != nil {
		bs := b.buffers[p.Buffer.Handle()]
		b.shadow.useVAO(bs.vao)
		b.shadow.useEBO(bs.ebo)
		desc = p.Buffer.Desc()
	}

	ps := b.programs[p.Program.Handle()]
	b.shadow.useProgram(ps.id)
	b.shadow.useState(p.State)

	b.bindDrawTextures(p.DrawTextures, p.TextureTypes)
	b.uploadDirtyUniforms(ps, p.Program, p.UniformBytes, p.DirtyUniforms)

	if desc.Element == render.ENone {
		gl.DrawArrays(convertPrimitive(p.Primitive), int32(p.Offset), int32(p.Count))
		return
	}
	offset := glOffset(p.Offset * desc.Element.Size())
	gl.DrawElements(convertPrimitive(p.Primitive), int32(p.Count), convertElementType(desc.Element), offset)
}

// bindDrawTextures binds each draw texture to a distinct
// texture unit in argument order, matching the unit indices
// the shader's samplers were assigned at link time.
func (b *Backend) bindDrawTextures(textures []*render.Texture, types []render.TextureType) {
	for i, tex := range textures {
		target := textureTarget(types[i])
		m := b.texMapFor(kindForTextureType(types[i]))
		ts := m[tex.Handle()]
		b.shadow.useTexture(uint32(i), target, ts.id)
	}
}

func kindForTextureType(t render.TextureType) render.Kind {
	switch t {
	case render.TTexture1D:
		return render.KTexture1D
	case render.TTexture2D:
		return render.KTexture2D
	case render.TTexture3D:
		return render.KTexture3D
	case render.TTextureCM:
		return render.KTextureCM
	default:
		panic("gl3: undefined TextureType constant")
	}
}

// uploadDirtyUniforms walks the dirty-uniform bitset in
// ascending slot order, consuming the matching chunk of the
// packed snapshot and issuing the appropriate Uniform* call
// for each set slot.
func (b *Backend) uploadDirtyUniforms(ps *programState, p *render.Program, packed []byte, mask uint64) {
	uniforms := p.Uniforms()
	var off int
	for slot := 0; slot < len(uniforms) && slot < 64; slot++ {
		if mask&(1<<uint(slot)) == 0 {
			continue
		}
		u := uniforms[slot]
		size := u.Kind.Size()
		data := packed[off : off+size]
		off += size
		loc := ps.locs[slot]
		if loc < 0 {
			continue
		}
		uploadUniform(loc, u.Kind, data)
	}
}

// f32At decodes the little-endian float32 at byte offset i.
func f32At(data []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[i : i+4]))
}

// floatPtr returns a pointer to the first float32 decoded
// from data, for the matrix/array Uniform*fv calls. data is
// expected to already hold native-endian float32 values, as
// produced by RecordValue from a math32 source.
func floatPtr(data []byte) *float32 {
	return (*float32)(unsafe.Pointer(&data[0]))
}

func uploadUniform(loc int32, kind render.UniformKind, data []byte) {
	switch kind {
	case render.USampler2D, render.USamplerCube:
		gl.Uniform1i(loc, int32(binary.LittleEndian.Uint32(data)))
	case render.UScalar:
		gl.Uniform1f(loc, f32At(data, 0))
	case render.UVec2:
		gl.Uniform2f(loc, f32At(data, 0), f32At(data, 4))
	case render.UVec3:
		gl.Uniform3f(loc, f32At(data, 0), f32At(data, 4), f32At(data, 8))
	case render.UVec4:
		gl.Uniform4f(loc, f32At(data, 0), f32At(data, 4), f32At(data, 8), f32At(data, 12))
	case render.UMat3x3:
		gl.UniformMatrix3fv(loc, 1, false, floatPtr(data))
	case render.UMat4x4:
		gl.UniformMatrix4fv(loc, 1, false, floatPtr(data))
	case render.UBones:
		gl.UniformMatrix3x4fv(loc, int32(render.MaxBones), false, floatPtr(data))
	}
}

// blit copies a single color attachment; the frontend's Blit
// contract admits only color attachments as blit endpoints, so
// this is the only path needed here.
func (b *Backend) blit(p render.BlitPayload) {
	b.shadow.useReadFBO(b.fboOf(p.SrcTarget))
	b.shadow.useDrawFBO(b.fboOf(p.DstTarget))

	gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + uint32(p.SrcAttachment))
	bufs := []uint32{gl.COLOR_ATTACHMENT0 + uint32(p.DstAttachment)}
	gl.DrawBuffers(1, &bufs[0])

	sw, sh := p.SrcTarget.Width(), p.SrcTarget.Height()
	dw, dh := p.DstTarget.Width(), p.DstTarget.Height()
	w, h := sw, sh
	if dw < w {
		w = dw
	}
	if dh < h {
		h = dh
	}
	gl.BlitFramebuffer(0, 0, int32(w), int32(h), 0, 0, int32(w), int32(h), gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (b *Backend) profile(p render.ProfilePayload) {
	// GPU timer-query sampling is environment-specific and is
	// left to a higher-level profiling integration; this
	// backend only logs the tag boundary.
	if p.Tag == "" {
		b.log.Debug("profile sample end")
		return
	}
	b.log.Debug("profile sample begin", "tag", p.Tag)
}
