// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

// Config configures the resource pools and command buffer of
// a FrontendContext. It stands in for the console/CVar layer
// of the reference implementation (render.max_buffers,
// render.max_targets, render.max_programs, render.max_texture*,
// render.command_memory, render.max_texture_dimensions,
// display.resolution, display.hdr): an external collaborator
// is expected to translate parsed CVars into a Config and
// pass it to NewFrontendContext.
type Config struct {
	// MaxBuffers is the capacity of the buffer pool.
	MaxBuffers int
	// MaxTargets is the capacity of the target pool.
	MaxTargets int
	// MaxPrograms is the capacity of the program pool.
	MaxPrograms int
	// MaxTexture1D, MaxTexture2D, MaxTexture3D and
	// MaxTextureCM are the capacities of the respective
	// texture pools.
	MaxTexture1D int
	MaxTexture2D int
	MaxTexture3D int
	MaxTextureCM int
	// MaxTextureDimensions bounds the width/height/depth
	// accepted by InitializeTexture.
	MaxTextureDimensions int
	// CommandMemory is the command buffer's capacity, in
	// number of records (the reference CVar expresses this
	// in MiB of a raw arena; this port counts records, since
	// there is no raw byte arena to size).
	CommandMemory int
	// Resolution is the initial swapchain size.
	Resolution [2]int
	// HDR selects a floating-point swapchain format.
	HDR bool
}

// DefaultConfig returns the configuration used when no
// explicit Config is supplied to NewFrontendContext.
func DefaultConfig() Config {
	return Config{
		MaxBuffers:           4096,
		MaxTargets:           256,
		MaxPrograms:          1024,
		MaxTexture1D:         256,
		MaxTexture2D:         4096,
		MaxTexture3D:         64,
		MaxTextureCM:         256,
		MaxTextureDimensions: 8192,
		CommandMemory:        defaultCmdCapacity,
		Resolution:           [2]int{1920, 1080},
		HDR:                  false,
	}
}
