// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "sync/atomic"

// Kind identifies the concrete type of a pooled Resource.
type Kind int

// Resource kinds.
const (
	KBuffer Kind = iota
	KTexture1D
	KTexture2D
	KTexture3D
	KTextureCM
	KTarget
	KProgram
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KBuffer:
		return "Buffer"
	case KTexture1D:
		return "Texture1D"
	case KTexture2D:
		return "Texture2D"
	case KTexture3D:
		return "Texture3D"
	case KTextureCM:
		return "TextureCM"
	case KTarget:
		return "Target"
	case KProgram:
		return "Program"
	default:
		return "!render.Kind"
	}
}

// Resource is the base entity embedded by every pooled
// resource type (Buffer, Texture*, Target, Program).
// Its address is stable for as long as it is reachable
// through the owning FrontendContext: it lives in one pool
// slot from creation until destruction completes after a
// successful Process call.
type Resource struct {
	kind  Kind
	owner *FrontendContext

	// handle is this resource's pool slot index: a stable,
	// integer identity a Backend can use to key its own
	// parallel shadow-state storage instead of relying on
	// pointer arithmetic into a trailer (see DESIGN.md).
	handle int

	// refs is the number of live references to this
	// resource. It reaches zero exactly once, at which
	// point release scheduled its destruction.
	refs atomic.Int32

	// bytes is an accounting-only counter of client-side
	// bytes charged against this resource (e.g. a Buffer's
	// vertex/index data, or a Texture's CPU-side image
	// data). It never includes backend-private storage.
	bytes atomic.Int64
}

// initResource prepares r as a fresh resource of the given
// kind and pool handle, owned by f, with one outstanding
// reference.
func initResource(r *Resource, kind Kind, handle int, f *FrontendContext) {
	r.kind = kind
	r.owner = f
	r.handle = handle
	r.refs.Store(1)
	r.bytes.Store(0)
}

// Kind returns the resource's kind.
func (r *Resource) Kind() Kind { return r.kind }

// Handle returns the resource's stable pool slot index.
func (r *Resource) Handle() int { return r.handle }

// ByteUsage returns the number of client-side bytes
// currently accounted against this resource.
func (r *Resource) ByteUsage() int64 { return r.bytes.Load() }

// addBytes atomically adjusts the byte-usage counter.
func (r *Resource) addBytes(n int64) { r.bytes.Add(n) }

// Acquire increments the resource's reference count.
// It must not be called on a resource whose count has
// already reached zero.
func (r *Resource) Acquire() {
	if r.refs.Add(1) <= 1 {
		panic("render: acquired a resource with no outstanding references")
	}
}

// Release decrements the resource's reference count.
// It returns true exactly once, the first time the count
// reaches zero, at which point the caller (FrontendContext)
// schedules the resource's destruction. Calling Release
// again afterward is a programmer error.
func (r *Resource) Release() bool {
	n := r.refs.Add(-1)
	if n < 0 {
		panic("render: released a resource with no outstanding references")
	}
	return n == 0
}

// RefCount returns the current number of outstanding
// references. It is intended for diagnostics and tests.
func (r *Resource) RefCount() int32 { return r.refs.Load() }
