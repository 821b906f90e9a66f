// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import "unsafe"

// glPtr returns the data pointer go-gl expects for a buffer
// upload call, or nil for an empty/absent slice (which
// reserves storage without initializing it).
func glPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// glOffset returns the pointer-sized offset go-gl expects for
// a vertex attribute's byte offset into its bound buffer.
func glOffset(off int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(off))
}
