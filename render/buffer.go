// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "errors"

const bufPrefix = "buffer: "

// VertexAttrib describes one attribute of a Buffer's vertex
// layout.
type VertexAttrib struct {
	Type   AttribType
	Count  int
	Offset int
}

// BufferDesc is the immutable configuration of a Buffer,
// recorded exactly once by the owner before the buffer is
// initialized.
type BufferDesc struct {
	Stride     int
	Element    ElementType
	Usage      BufferUsage
	Instancing bool
	Attribs    []VertexAttrib
}

// EditKind distinguishes the two byte ranges a Buffer
// stores data in.
type EditKind int

// Edit kinds.
const (
	EditVertex EditKind = iota
	EditElement
)

// Edit records a pending mutation to a Buffer's data,
// consumed by an update command. Edits within a single
// update must be strictly increasing in command order, and
// each edit's byte range must lie within the buffer's
// current data.
type Edit struct {
	Offset int
	Size   int
	Kind   EditKind
}

// Buffer is a typed GPU buffer resource: two append-only
// byte vectors (vertex data and element data) plus a
// description recorded once by the owner.
type Buffer struct {
	Resource

	desc BufferDesc

	vertexData []byte
	elementData []byte

	// initialized is set once Initialize has run; further
	// calls to RecordDesc are rejected afterward (recording
	// a field twice is a programmer error).
	initialized bool
	descSet     bool

	edits []Edit
}

// RecordDesc records b's immutable configuration. It must
// be called exactly once, before Initialize.
func (b *Buffer) RecordDesc(desc BufferDesc) {
	if b.descSet {
		panic("render: buffer description recorded twice")
	}
	b.desc = desc
	b.descSet = true
}

// Desc returns the buffer's recorded configuration.
func (b *Buffer) Desc() BufferDesc { return b.desc }

// validate asserts that every field required before
// Initialize has in fact been recorded.
func (b *Buffer) validate() error {
	if !b.descSet {
		return errors.New(bufPrefix + "description not recorded")
	}
	if b.desc.Stride <= 0 && len(b.desc.Attribs) > 0 {
		return errors.New(bufPrefix + "non-zero stride required for vertex attributes")
	}
	return nil
}

// Write appends vertex and/or element data to the buffer
// and records an Edit for each non-empty range. It may be
// called both before and after Initialize; calls prior to
// Initialize seed the initial upload, calls afterward are
// captured as edits consumed by the next update command.
func (b *Buffer) Write(vertex, element []byte) {
	if len(vertex) > 0 {
		off := len(b.vertexData)
		b.vertexData = append(b.vertexData, vertex...)
		b.edits = append(b.edits, Edit{Offset: off, Size: len(vertex), Kind: EditVertex})
		b.addBytes(int64(len(vertex)))
	}
	if len(element) > 0 {
		off := len(b.elementData)
		b.elementData = append(b.elementData, element...)
		b.edits = append(b.edits, Edit{Offset: off, Size: len(element), Kind: EditElement})
		b.addBytes(int64(len(element)))
	}
}

// VertexData returns the buffer's full append-only vertex
// byte vector.
func (b *Buffer) VertexData() []byte { return b.vertexData }

// ElementData returns the buffer's full append-only element
// byte vector.
func (b *Buffer) ElementData() []byte { return b.elementData }

// PendingEdits returns the edit records accumulated since
// the last call to clearEdits, in command order.
func (b *Buffer) PendingEdits() []Edit { return b.edits }

// clearEdits discards the accumulated edit list; called
// once an update command carrying them has been enqueued.
func (b *Buffer) clearEdits() { b.edits = nil }

// VertexCount returns the number of vertices the buffer
// currently holds, derived from the vertex data length and
// the recorded stride. It returns 0 if no stride was
// recorded.
func (b *Buffer) VertexCount() int {
	if b.desc.Stride <= 0 {
		return 0
	}
	return len(b.vertexData) / b.desc.Stride
}
