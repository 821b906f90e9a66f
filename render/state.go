// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

// BlendFunc selects a source or destination blend factor.
type BlendFunc int

// Blend factors.
const (
	BZero BlendFunc = iota
	BOne
	BSrcColor
	BOneMinusSrcColor
	BDstColor
	BOneMinusDstColor
	BSrcAlpha
	BOneMinusSrcAlpha
	BDstAlpha
	BOneMinusDstAlpha
)

// CompareFunc selects a depth/stencil comparison function.
type CompareFunc int

// Compare functions.
const (
	CNever CompareFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// StencilOp selects a stencil update operation.
type StencilOp int

// Stencil operations.
const (
	SOKeep StencilOp = iota
	SOZero
	SOReplace
	SOIncrClamp
	SODecrClamp
	SOInvert
	SOIncrWrap
	SODecrWrap
)

// CullMode selects which triangle winding is culled.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// PolygonMode selects how triangles are rasterized.
type PolygonMode int

// Polygon modes.
const (
	PolyFill PolygonMode = iota
	PolyLine
	PolyPoint
)

// Viewport describes the viewport rectangle and depth range
// used to map clip-space coordinates to the target.
type Viewport struct {
	X, Y          int
	Width, Height int
	MinDepth      float32
	MaxDepth      float32
}

// Empty reports whether the viewport covers no area, which
// is rejected by Draw and Clear.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Scissor describes an optional scissor rectangle. Enabled
// must be set for the rectangle to take effect.
type Scissor struct {
	Enabled       bool
	X, Y          int
	Width, Height int
}

// BlendState describes per-draw color blending.
type BlendState struct {
	Enabled       bool
	SrcColor      BlendFunc
	DstColor      BlendFunc
	SrcAlpha      BlendFunc
	DstAlpha      BlendFunc
	ColorMask     [4]bool
	ConstantColor [4]float32
}

// DepthState describes per-draw depth testing.
type DepthState struct {
	TestEnabled  bool
	WriteEnabled bool
	Compare      CompareFunc
}

// StencilFace describes the stencil operation for one
// triangle winding.
type StencilFace struct {
	Compare   CompareFunc
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
	ReadMask  uint32
	WriteMask uint32
}

// StencilState describes per-draw stencil testing.
type StencilState struct {
	Enabled   bool
	Front     StencilFace
	Back      StencilFace
	Reference uint32
}

// State is the high-level GPU state consulted by draw, clear
// and blit commands. The backend compares an incoming State
// against its shadow copy as a whole before inspecting
// individual sub-fields, so that an unchanged State costs a
// single comparison rather than one per category.
type State struct {
	Viewport Viewport
	Scissor  Scissor
	Blend    BlendState
	Depth    DepthState
	Cull     CullMode
	Stencil  StencilState
	Polygon  PolygonMode
}

// Equal reports whether s and o describe the same state.
// State is comparable (no slices/maps), so this is a plain
// value comparison; it exists to give the backend a single
// named call site to gate its full state-diff path on.
func (s State) Equal(o State) bool { return s == o }
