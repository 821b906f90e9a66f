// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package gl3 implements render.Backend against desktop
// OpenGL 3.3 core / ES 3 via github.com/go-gl/gl.
package gl3

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

func init() {
	render.RegisterBackend("gl3", func() render.Backend { return New() })
}

// bufferState is the GL-private shadow of a render.Buffer:
// its vertex/element buffer object names and the byte
// capacity currently reserved for each, used to decide
// between BufferSubData and a respec'd BufferData on update.
type bufferState struct {
	vbo, ebo, vao      uint32
	vertexCap, elemCap int
}

// textureState is the GL-private shadow of a render.Texture.
type textureState struct {
	id uint32
}

// targetState is the GL-private shadow of a render.Target.
type targetState struct {
	fbo     uint32
	owning  bool // false for the swapchain's captured default FBO
}

// programState is the GL-private shadow of a render.Program.
type programState struct {
	id   uint32
	locs []int32 // per uniform slot; -1 for padding uniforms
}

// Backend is a render.Backend implementation targeting a
// single native GL 3.3 core context. It must only be driven
// (via Process/Swap) from the thread that owns that context.
type Backend struct {
	log *slog.Logger

	shadow *shadow

	buffers  map[int]*bufferState
	tex1D    map[int]*textureState
	tex2D    map[int]*textureState
	tex3D    map[int]*textureState
	texCM    map[int]*textureState
	targets  map[int]*targetState
	programs map[int]*programState

	swapWindow func()
}

// New constructs an uninitialized Backend. The function Swap
// calls after presenting (e.g. a GLFW window's SwapBuffers) is
// installed with SetSwapFunc; without one, as in headless or
// profile contexts, Swap calls nothing.
func New() *Backend {
	return &Backend{
		log:      slog.Default().With("subsystem", "render/gl3"),
		shadow:   newShadow(),
		buffers:  make(map[int]*bufferState),
		tex1D:    make(map[int]*textureState),
		tex2D:    make(map[int]*textureState),
		tex3D:    make(map[int]*textureState),
		texCM:    make(map[int]*textureState),
		targets:  make(map[int]*targetState),
		programs: make(map[int]*programState),
	}
}

// SetSwapFunc installs the function Swap calls after
// presenting, typically a windowing library's buffer swap.
func (b *Backend) SetSwapFunc(f func()) { b.swapWindow = f }

// Init initializes the GL function pointers against the
// context already current on the calling thread. window is
// unused beyond being a documented hand-off point: the opaque
// handle is expected to have made a GL context current before
// Init runs.
func (b *Backend) Init(window any) bool {
	if err := gl.Init(); err != nil {
		b.log.Error("gl.Init failed", "error", err)
		return false
	}
	var fbo int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &fbo)
	b.targets[0] = &targetState{fbo: uint32(fbo), owning: false}
	return true
}

// AllocationInfo reports zero backend-private trailer bytes
// for every kind: this backend keys its shadow state by
// Resource.Handle() into the maps above instead of an
// appended byte trailer (see DESIGN.md, Design Note 9).
func (b *Backend) AllocationInfo() render.AllocationInfo { return render.AllocationInfo{} }

// DeviceInfo reports the GL_VENDOR/_RENDERER/_VERSION triple.
func (b *Backend) DeviceInfo() render.DeviceInfo {
	return render.DeviceInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
}

// Process replays an ordered command list against the shadow
// GPU state.
func (b *Backend) Process(cmds []*render.CmdHeader) {
	for _, c := range cmds {
		switch c.Kind {
		case render.CmdResourceAllocate:
			b.resourceAllocate(c.Payload.(render.ResourcePayload))
		case render.CmdResourceConstruct:
			b.resourceConstruct(c.Payload.(render.ResourcePayload))
		case render.CmdResourceUpdate:
			b.resourceUpdate(c.Payload.(render.ResourcePayload))
		case render.CmdResourceDestroy:
			b.resourceDestroy(c.Payload.(render.ResourcePayload))
		case render.CmdClear:
			b.clear(c.Payload.(render.ClearPayload))
		case render.CmdDraw:
			b.draw(c.Payload.(render.DrawPayload))
		case render.CmdBlit:
			b.blit(c.Payload.(render.BlitPayload))
		case render.CmdProfile:
			b.profile(c.Payload.(render.ProfilePayload))
		default:
			b.log.Warn("unknown command kind", "kind", c.Kind)
		}
	}
}

// Swap presents the swapchain image.
func (b *Backend) Swap() {
	if b.swapWindow != nil {
		b.swapWindow()
	}
}
