// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

// bufferSlabBytes is the size reserved for an otherwise-empty
// vertex or element side at construct time, so that a later
// update within this budget can use BufferSubData instead of
// a respec'd BufferData.
const bufferSlabBytes = 16 * 1024 * 1024

func (b *Backend) resourceAllocate(p render.ResourcePayload) {
	handle := p.Obj.(interface{ Handle() int }).Handle()
	switch p.Kind {
	case render.KBuffer:
		bs := &bufferState{}
		gl.GenBuffers(1, &bs.vbo)
		gl.GenBuffers(1, &bs.ebo)
		gl.GenVertexArrays(1, &bs.vao)
		b.buffers[handle] = bs
	case render.KTexture1D, render.KTexture2D, render.KTexture3D, render.KTextureCM:
		ts := &textureState{}
		gl.GenTextures(1, &ts.id)
		b.texMapFor(p.Kind)[handle] = ts
	case render.KTarget:
		t := p.Obj.(*render.Target)
		if t.IsSwapchain() {
			// The swapchain's default-framebuffer entry was
			// already captured in Init.
			return
		}
		ts := &targetState{owning: true}
		gl.GenFramebuffers(1, &ts.fbo)
		b.targets[handle] = ts
	case render.KProgram:
		b.programs[handle] = &programState{}
	}
}

func (b *Backend) texMapFor(kind render.Kind) map[int]*textureState {
	switch kind {
	case render.KTexture1D:
		return b.tex1D
	case render.KTexture2D:
		return b.tex2D
	case render.KTexture3D:
		return b.tex3D
	case render.KTextureCM:
		return b.texCM
	default:
		panic("gl3: not a texture kind")
	}
}

func (b *Backend) resourceConstruct(p render.ResourcePayload) {
	switch p.Kind {
	case render.KBuffer:
		b.constructBuffer(p.Obj.(*render.Buffer))
	case render.KTexture1D, render.KTexture2D, render.KTexture3D, render.KTextureCM:
		b.constructTexture(p.Obj.(*render.Texture))
	case render.KTarget:
		b.constructTarget(p.Obj.(*render.Target))
	case render.KProgram:
		b.constructProgram(p.Obj.(*render.Program))
	}
}

func (b *Backend) constructBuffer(buf *render.Buffer) {
	bs := b.buffers[buf.Handle()]
	desc := buf.Desc()
	usage := uint32(gl.STATIC_DRAW)
	if desc.Usage == render.UDynamic {
		usage = gl.DYNAMIC_DRAW
	}

	b.shadow.useVAO(bs.vao)
	vData := buf.VertexData()
	vCap := len(vData)
	if vCap == 0 {
		vCap = bufferSlabBytes
	}
	b.shadow.useVBO(bs.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vCap, glPtr(vData), usage)
	bs.vertexCap = vCap

	for i, a := range desc.Attribs {
		idx := uint32(i)
		gl.EnableVertexAttribArray(idx)
		gl.VertexAttribPointer(idx, int32(a.Count), convertAttribType(a.Type), false, int32(desc.Stride), glOffset(a.Offset))
		if desc.Instancing {
			gl.VertexAttribDivisor(idx, 1)
		}
	}

	eData := buf.ElementData()
	eCap := len(eData)
	if eCap == 0 {
		eCap = bufferSlabBytes
	}
	b.shadow.useEBO(bs.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, eCap, glPtr(eData), usage)
	bs.elemCap = eCap
}

func (b *Backend) constructTexture(tex *render.Texture) {
	ts := b.texMapFor(tex.Kind())[tex.Handle()]
	desc := tex.Desc()
	target := textureTarget(render.TextureType(int(tex.Kind()) - int(render.KTexture1D)))
	gl.BindTexture(target, ts.id)

	minFilter, magFilter := int32(gl.NEAREST), int32(gl.NEAREST)
	if desc.Filter.Min {
		minFilter = gl.LINEAR
	}
	if desc.Filter.Mag {
		magFilter = gl.LINEAR
	}
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, magFilter)
	gl.TexParameteri(target, gl.TEXTURE_WRAP_S, convertWrap(desc.WrapU))
	gl.TexParameteri(target, gl.TEXTURE_WRAP_T, convertWrap(desc.WrapV))
	if tex.Kind() == render.KTexture3D {
		gl.TexParameteri(target, gl.TEXTURE_WRAP_R, convertWrap(desc.WrapW))
	}
	if desc.Filter.Border {
		gl.TexParameterfv(target, gl.TEXTURE_BORDER_COLOR, &desc.BorderColor[0])
	}

	fmtTriple := convertTextureFormat(desc.Format)
	if desc.Usage == render.TexAttachment {
		// Attachment storage is allocated with no initial
		// data; resource_construct (Target) attaches it.
		for lvl := 0; lvl < tex.Levels(); lvl++ {
			lv := tex.LevelInfo(lvl)
			uploadLevel(target, tex.Kind(), lvl, fmtTriple, lv, nil)
		}
		return
	}
	data := tex.Data()
	for lvl := 0; lvl < tex.Levels(); lvl++ {
		lv := tex.LevelInfo(lvl)
		uploadLevel(target, tex.Kind(), lvl, fmtTriple, lv, data[lv.Offset:lv.Offset+lv.Size])
	}
}

func uploadLevel(target uint32, kind render.Kind, level int, f texFormat, lv render.Level, data []byte) {
	switch kind {
	case render.KTexture1D:
		gl.TexImage1D(target, int32(level), f.internal, int32(lv.Width), 0, f.pixel, f.typ, glPtr(data))
	case render.KTexture2D:
		gl.TexImage2D(target, int32(level), f.internal, int32(lv.Width), int32(lv.Height), 0, f.pixel, f.typ, glPtr(data))
	case render.KTexture3D:
		gl.TexImage3D(target, int32(level), f.internal, int32(lv.Width), int32(lv.Height), int32(lv.Depth), 0, f.pixel, f.typ, glPtr(data))
	case render.KTextureCM:
		faceSize := lv.Size / 6
		for face := 0; face < 6; face++ {
			var faceData []byte
			if data != nil {
				faceData = data[face*faceSize : (face+1)*faceSize]
			}
			gl.TexImage2D(cubeFaceTarget(face), int32(level), f.internal, int32(lv.Width), int32(lv.Height), 0, f.pixel, f.typ, glPtr(faceData))
		}
	}
}

func (b *Backend) constructTarget(t *render.Target) {
	if t.IsSwapchain() {
		return
	}
	ts := b.targets[t.Handle()]
	b.shadow.useDrawFBO(ts.fbo)

	for i := 0; i < t.ColorCount(); i++ {
		c := t.Color(i)
		tts := b.tex2D[c.Texture.Handle()]
		if c.Texture.Kind() == render.KTextureCM {
			tts = b.texCM[c.Texture.Handle()]
			gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), cubeFaceTarget(c.Face), tts.id, int32(c.Level))
			continue
		}
		gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), gl.TEXTURE_2D, tts.id, int32(c.Level))
	}
	if t.HasDepth() && t.HasStencil() {
		dts := b.tex2D[t.DepthStencil().Handle()]
		gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.TEXTURE_2D, dts.id, 0)
	} else if t.HasDepth() {
		dts := b.tex2D[t.DepthStencil().Handle()]
		gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, dts.id, 0)
	} else if t.HasStencil() {
		dts := b.tex2D[t.DepthStencil().Handle()]
		gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.TEXTURE_2D, dts.id, 0)
	}
}

func (b *Backend) constructProgram(p *render.Program) {
	ps := b.programs[p.Handle()]
	id, err := linkProgram(p)
	if err != nil {
		b.log.Error("program rejected", "name", p.Desc().Name, "error", err)
		ps.id = 0
		return
	}
	ps.id = id
	uniforms := p.Uniforms()
	ps.locs = make([]int32, len(uniforms))
	for i, u := range uniforms {
		if u.Kind == render.UPad {
			ps.locs[i] = -1
			continue
		}
		ps.locs[i] = gl.GetUniformLocation(id, gl.Str(u.Name+"\x00"))
	}
}

func (b *Backend) resourceUpdate(p render.ResourcePayload) {
	switch p.Kind {
	case render.KBuffer:
		b.updateBuffer(p.Obj.(*render.Buffer), p.Edits)
	case render.KTexture1D, render.KTexture2D, render.KTexture3D, render.KTextureCM:
		b.constructTexture(p.Obj.(*render.Texture))
	}
}

func (b *Backend) updateBuffer(buf *render.Buffer, edits []render.Edit) {
	bs := b.buffers[buf.Handle()]
	for _, e := range edits {
		switch e.Kind {
		case render.EditVertex:
			data := buf.VertexData()[e.Offset : e.Offset+e.Size]
			if e.Offset+e.Size <= bs.vertexCap {
				b.shadow.useVBO(bs.vbo)
				gl.BufferSubData(gl.ARRAY_BUFFER, e.Offset, e.Size, glPtr(data))
			} else {
				b.shadow.useVBO(bs.vbo)
				gl.BufferData(gl.ARRAY_BUFFER, len(buf.VertexData()), glPtr(buf.VertexData()), gl.DYNAMIC_DRAW)
				bs.vertexCap = len(buf.VertexData())
			}
		case render.EditElement:
			data := buf.ElementData()[e.Offset : e.Offset+e.Size]
			if e.Offset+e.Size <= bs.elemCap {
				b.shadow.useEBO(bs.ebo)
				gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, e.Offset, e.Size, glPtr(data))
			} else {
				b.shadow.useEBO(bs.ebo)
				gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.ElementData()), glPtr(buf.ElementData()), gl.DYNAMIC_DRAW)
				bs.elemCap = len(buf.ElementData())
			}
		}
	}
}

func (b *Backend) resourceDestroy(p render.ResourcePayload) {
	r := resourceOf(p.Obj)
	handle := r.Handle()
	switch p.Kind {
	case render.KBuffer:
		bs, ok := b.buffers[handle]
		if !ok {
			return
		}
		if b.shadow.vbo == bs.vbo {
			b.shadow.vbo = 0
		}
		if b.shadow.ebo == bs.ebo {
			b.shadow.ebo = 0
		}
		if b.shadow.vao == bs.vao {
			b.shadow.vao = 0
		}
		gl.DeleteBuffers(1, &bs.vbo)
		gl.DeleteBuffers(1, &bs.ebo)
		gl.DeleteVertexArrays(1, &bs.vao)
		delete(b.buffers, handle)
	case render.KTexture1D, render.KTexture2D, render.KTexture3D, render.KTextureCM:
		m := b.texMapFor(p.Kind)
		ts, ok := m[handle]
		if !ok {
			return
		}
		gl.DeleteTextures(1, &ts.id)
		delete(m, handle)
	case render.KTarget:
		ts, ok := b.targets[handle]
		if !ok || !ts.owning {
			return
		}
		if b.shadow.drawFBO == ts.fbo {
			b.shadow.drawFBO = 0
		}
		if b.shadow.readFBO == ts.fbo {
			b.shadow.readFBO = 0
		}
		gl.DeleteFramebuffers(1, &ts.fbo)
		delete(b.targets, handle)
	case render.KProgram:
		ps, ok := b.programs[handle]
		if !ok {
			return
		}
		if b.shadow.program == ps.id {
			b.shadow.program = 0
		}
		gl.DeleteProgram(ps.id)
		delete(b.programs, handle)
	}
}

// resourceOf extracts the embedded *render.Resource from a
// concrete resource pointer carried in a command payload.
func resourceOf(obj any) *render.Resource {
	switch v := obj.(type) {
	case *render.Buffer:
		return &v.Resource
	case *render.Texture:
		return &v.Resource
	case *render.Target:
		return &v.Resource
	case *render.Program:
		return &v.Resource
	default:
		panic("gl3: resource payload holds an unrecognized type")
	}
}
