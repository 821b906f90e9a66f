// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"errors"
	"math/bits"
)

const texPrefix = "texture: "

// FilterParam describes a texture's min/mag/mip filtering.
type FilterParam struct {
	Min    bool
	Mag    bool
	Mip    bool
	Border bool
}

// TexDesc is the immutable configuration of a Texture,
// recorded exactly once by the owner before the texture is
// initialized.
type TexDesc struct {
	Format      DataFormat
	Usage       TextureUsage
	Filter      FilterParam
	WrapU       WrapMode
	WrapV       WrapMode
	WrapW       WrapMode
	Width       int
	Height      int
	Depth       int
	BorderColor [4]float32
}

// Level describes the placement of one mip level's data
// within a Texture's contiguous byte buffer.
type Level struct {
	Offset int
	Size   int
	Width  int
	Height int
	Depth  int
}

// ComputeLevels returns the number of mip levels implied by
// the largest of the three dimensions (a dimension of 0 is
// treated as 1, matching a 1D/2D texture with unused axes).
func ComputeLevels(w, h, d int) int {
	m := w
	if h > m {
		m = h
	}
	if d > m {
		m = d
	}
	if m < 1 {
		m = 1
	}
	return bits.Len(uint(m))
}

// Texture is a typed GPU image resource shared by the four
// dimensional variants (Kind is one of KTexture1D, KTexture2D,
// KTexture3D, KTextureCM). It is recorded exactly once, then
// initialized; Texture.Write afterward changes its client-side
// data, which UpdateTexture re-uploads whole (unlike Buffer,
// a texture keeps no edit records).
type Texture struct {
	Resource

	desc    TexDesc
	descSet bool

	levels []Level
	// data is nil for attachment textures, which allocate
	// no client-side bytes.
	data []byte
}

// RecordDesc records t's immutable configuration. It must be
// called exactly once, before Initialize.
func (t *Texture) RecordDesc(desc TexDesc) {
	if t.descSet {
		panic("render: texture description recorded twice")
	}
	t.desc = desc
	t.descSet = true
}

// Desc returns the texture's recorded configuration.
func (t *Texture) Desc() TexDesc { return t.desc }

// validate asserts that every field required before
// Initialize has in fact been recorded.
func (t *Texture) validate() error {
	if !t.descSet {
		return errors.New(texPrefix + "description not recorded")
	}
	if t.desc.Width < 1 {
		return errors.New(texPrefix + "width must be at least 1")
	}
	return nil
}

// faces returns the number of independently addressable
// faces per mip level: 6 for a cubemap, 1 otherwise.
func (t *Texture) faces() int {
	if t.kind == KTextureCM {
		return 6
	}
	return 1
}

// computeLevels allocates the Level table and, unless the
// texture is an attachment, the backing byte buffer.
// It must be called once Desc has been recorded.
func (t *Texture) computeLevels() {
	n := ComputeLevels(t.desc.Width, t.desc.Height, t.desc.Depth)
	t.levels = make([]Level, n)
	w, h, d := t.desc.Width, t.desc.Height, t.desc.Depth
	off := 0
	texelSize := t.desc.Format.Size()
	for i := 0; i < n; i++ {
		lw, lh, ld := w, h, d
		if lw < 1 {
			lw = 1
		}
		if t.kind != KTexture1D && lh < 1 {
			lh = 1
		}
		if t.kind == KTexture3D && ld < 1 {
			ld = 1
		} else if t.kind != KTexture3D {
			ld = 1
		}
		sz := lw * lh * ld * texelSize * t.faces()
		t.levels[i] = Level{Offset: off, Size: sz, Width: lw, Height: lh, Depth: ld}
		off += sz
		w, h, d = w/2, h/2, d/2
	}
	if t.desc.Usage != TexAttachment {
		t.data = make([]byte, off)
	}
}

// resizeSwapchain updates the swapchain's owned attachment
// texture to match its target's new surface size and
// recomputes the level table. Only the swapchain's own texture
// is ever resized this way; every other texture's dimensions
// are immutable once recorded.
func (t *Texture) resizeSwapchain(w, h int) {
	t.desc.Width, t.desc.Height = w, h
	t.computeLevels()
}

// Levels returns the number of mip levels.
func (t *Texture) Levels() int { return len(t.levels) }

// LevelInfo returns the placement of the given mip level.
// It panics if level is out of bounds.
func (t *Texture) LevelInfo(level int) Level {
	if level < 0 || level >= len(t.levels) {
		panic("render: out-of-bounds mipmap level")
	}
	return t.levels[level]
}

// Write copies data into the given mip level (and, for
// cubemaps, the given face within that level). It panics if
// the texture is an attachment (which has no client-side
// storage) or if level/face are out of range.
func (t *Texture) Write(level, face int, data []byte) {
	if t.desc.Usage == TexAttachment {
		panic("render: cannot write client data to an attachment texture")
	}
	lv := t.LevelInfo(level)
	faceSize := lv.Size / t.faces()
	if face < 0 || face >= t.faces() {
		panic("render: out-of-bounds cubemap face")
	}
	off := lv.Offset + face*faceSize
	n := copy(t.data[off:off+faceSize], data)
	_ = n
	t.addBytes(int64(len(data)))
}

// Data returns the texture's full contiguous byte buffer,
// laid out level-major and, for cubemaps, face-minor within
// each level. It is nil for attachment textures.
func (t *Texture) Data() []byte { return t.data }
