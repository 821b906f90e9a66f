// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "fmt"

// CmdKind identifies the kind of a recorded command.
type CmdKind uint32

// Command kinds.
const (
	CmdResourceAllocate CmdKind = iota
	CmdResourceConstruct
	CmdResourceUpdate
	CmdResourceDestroy
	CmdClear
	CmdDraw
	CmdBlit
	CmdProfile
)

// String implements fmt.Stringer.
func (k CmdKind) String() string {
	switch k {
	case CmdResourceAllocate:
		return "resource_allocate"
	case CmdResourceConstruct:
		return "resource_construct"
	case CmdResourceUpdate:
		return "resource_update"
	case CmdResourceDestroy:
		return "resource_destroy"
	case CmdClear:
		return "clear"
	case CmdDraw:
		return "draw"
	case CmdBlit:
		return "blit"
	case CmdProfile:
		return "profile"
	default:
		return "!render.CmdKind"
	}
}

// CmdTag identifies the call site that recorded a command.
// It is carried through to the backend purely for logging
// and statistics; it has no effect on command semantics.
type CmdTag struct {
	File string
	Line int
	Desc string
}

// String implements fmt.Stringer.
func (t CmdTag) String() string {
	if t.Desc != "" {
		return fmt.Sprintf("%s:%d (%s)", t.File, t.Line, t.Desc)
	}
	return fmt.Sprintf("%s:%d", t.File, t.Line)
}

// CmdHeader prefixes every command record in the command
// buffer's arena. The concrete payload that follows depends
// on Kind; Payload holds that payload struct by value so that the
// backend can type-switch without reinterpreting raw bytes
// (the C++ original reinterprets the arena in place; this
// port stores a typed union instead).
type CmdHeader struct {
	Kind    CmdKind
	Tag     CmdTag
	Payload any
}

// the default command buffer capacity, matching the
// reference implementation's ~2MiB arena. This port does
// not allocate a raw byte arena (there is no pointer
// arithmetic or reinterpretation to emulate); instead it
// bounds the number of records a CommandBuffer may hold,
// which is the only externally observable capacity.
const defaultCmdCapacity = 2 << 20 / 64

// CommandBuffer accumulates an ordered list of command
// records produced by a FrontendContext. Allocate is the
// only mutating entry point besides Reset; both must only
// be called while the frontend mutex is held.
type CommandBuffer struct {
	cap  int
	cmds []*CmdHeader
}

// NewCommandBuffer creates a CommandBuffer with the given
// capacity, in number of records. A capacity of 0 selects
// the default capacity.
func NewCommandBuffer(capacity int) *CommandBuffer {
	if capacity <= 0 {
		capacity = defaultCmdCapacity
	}
	return &CommandBuffer{cap: capacity, cmds: make([]*CmdHeader, 0, capacity)}
}

// Allocate appends a new command record with the given kind,
// tag and payload, and returns its header.
// It panics if the buffer's capacity has been exhausted;
// exceeding the command buffer's capacity is a programmer
// error, not a recoverable condition.
func (c *CommandBuffer) Allocate(kind CmdKind, tag CmdTag, payload any) *CmdHeader {
	if len(c.cmds) >= c.cap {
		panic("render: command buffer capacity exceeded")
	}
	h := &CmdHeader{Kind: kind, Tag: tag, Payload: payload}
	c.cmds = append(c.cmds, h)
	return h
}

// Len returns the number of commands currently recorded.
func (c *CommandBuffer) Len() int { return len(c.cmds) }

// Commands returns the ordered list of command headers
// recorded so far. The returned slice is only valid until
// the next call to Reset.
func (c *CommandBuffer) Commands() []*CmdHeader { return c.cmds }

// Reset rewinds the buffer, discarding all recorded commands.
func (c *CommandBuffer) Reset() { c.cmds = c.cmds[:0] }

// ResourcePayload is the payload of resource_allocate,
// resource_construct, resource_update and resource_destroy
// commands.
type ResourcePayload struct {
	Kind Kind
	// Obj holds the concrete *Buffer, *Texture, *Target or
	// *Program pointer (matching Kind), so that the backend
	// can read its full recorded description rather than
	// only the embedded Resource base.
	Obj any
	// Edits carries the buffer edit-record tail for
	// resource_update commands targeting a Buffer; it is
	// nil for every other resource kind and command.
	Edits []Edit
}

// ClearPayload is the payload of a clear command.
type ClearPayload struct {
	State       State
	Target      *Target
	DrawBuffers []int
	// Mask bit 0 = depth, bit 1 = stencil, bits 2..(2+kMaxColorAttachments-1)
	// select per-color-attachment clears.
	Mask         uint32
	DepthValue   float32
	StencilValue int32
	ColorValues  [kMaxColorAttachments][4]float32
}

// DrawPayload is the payload of a draw command.
type DrawPayload struct {
	State         State
	Target        *Target
	Buffer        *Buffer
	Program       *Program
	Count         int
	Offset        int
	Primitive     Primitive
	DrawBuffers   []int
	DrawTextures  []*Texture
	TextureTypes  []TextureType
	DirtyUniforms uint64
	// UniformBytes is the tightly packed, ascending-slot-order
	// snapshot of dirty uniform values taken at enqueue time.
	UniformBytes []byte
}

// BlitPayload is the payload of a blit command.
type BlitPayload struct {
	State         State
	SrcTarget     *Target
	SrcAttachment int
	DstTarget     *Target
	DstAttachment int
}

// ProfilePayload is the payload of a profile command.
// An empty Tag ends the most recently begun sample.
type ProfilePayload struct {
	Tag string
}
