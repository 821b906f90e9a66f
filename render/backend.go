// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

// Backend is the interface that a concrete graphics API
// implementation must satisfy so that a FrontendContext can
// replay recorded commands against it.
//
// A Backend owns exactly one native graphics context. Process
// and Swap must only be called from the thread that created
// (or otherwise owns) that context; every other method may be
// called from any thread prior to the first Process call.
type Backend interface {
	// Init acquires the native context associated with the
	// opaque window handle and prepares the backend for use.
	// It returns false if the context could not be acquired.
	Init(window any) bool

	// AllocationInfo reports, for each resource Kind, the
	// number of backend-private bytes that a Pool must
	// append after the Resource subclass fields of a slot
	// of that kind.
	AllocationInfo() AllocationInfo

	// DeviceInfo reports identifying information about the
	// underlying graphics device.
	DeviceInfo() DeviceInfo

	// Process replays an ordered list of command headers
	// against the shadow GPU state, issuing the minimum
	// set of driver calls needed to realize each command.
	Process(cmds []*CmdHeader)

	// Swap presents the swapchain image. It does not tick
	// a frame timer; none is kept.
	Swap()
}

// AllocationInfo reports the backend-private trailer size,
// in bytes, required for each resource Kind. The frontend
// appends these bytes to every pool slot of the matching
// kind so that the backend may cast resource+1 (conceptually;
// in this port, an index into a parallel slice) to its own
// shadow-state struct.
type AllocationInfo struct {
	Buffer    int
	Target    int
	Program   int
	Texture1D int
	Texture2D int
	Texture3D int
	TextureCM int
}

// DeviceInfo reports identifying strings for the underlying
// graphics device, as queried once at backend initialization.
type DeviceInfo struct {
	Vendor   string
	Renderer string
	Version  string
}
