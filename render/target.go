// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "errors"

const targetPrefix = "target: "

// ColorAttachment references a single color attachment of a
// Target: either a 2D texture at a given mip level, or one
// face of a cubemap.
type ColorAttachment struct {
	Texture *Texture
	Level   int
	// Face is only meaningful when Texture is a KTextureCM
	// resource.
	Face int
	// owned reports whether this attachment's Texture was
	// created by a request_* call (and is therefore
	// destroyed together with the Target), as opposed to
	// attach_*-ed from an externally owned Texture.
	owned bool
}

// dsKind distinguishes the three mutually exclusive depth/
// stencil attachment configurations a Target may have.
type dsKind int

const (
	dsNone dsKind = iota
	dsDepth
	dsStencil
	dsDepthStencil
)

// Target composes a set of attachments that draw and clear
// commands render into. A non-swapchain target's attachments
// must all share the same dimensions; the swapchain target
// is the sole exception, and is the only target that may
// have no attachments recorded by the user (its single
// texture is created with it by NewFrontendContext and
// resized by Resize).
type Target struct {
	Resource

	swapchain bool

	width, height int

	depthStencilKind dsKind
	depthStencil     *Texture
	depthStencilOwn  bool

	colors []ColorAttachment
}

// IsSwapchain reports whether t is the presentable target.
func (t *Target) IsSwapchain() bool { return t.swapchain }

// Width and Height return the target's recorded dimensions.
func (t *Target) Width() int  { return t.width }
func (t *Target) Height() int { return t.height }

// ColorCount returns the number of color attachments.
func (t *Target) ColorCount() int { return len(t.colors) }

// Color returns the color attachment at the given index.
func (t *Target) Color(i int) ColorAttachment { return t.colors[i] }

// HasDepth reports whether t carries a depth or combined
// depth/stencil attachment.
func (t *Target) HasDepth() bool {
	return t.depthStencilKind == dsDepth || t.depthStencilKind == dsDepthStencil
}

// HasStencil reports whether t carries a stencil or combined
// depth/stencil attachment.
func (t *Target) HasStencil() bool {
	return t.depthStencilKind == dsStencil || t.depthStencilKind == dsDepthStencil
}

// DepthStencil returns the depth/stencil texture, or nil if
// none was recorded.
func (t *Target) DepthStencil() *Texture { return t.depthStencil }

// checkDims verifies that a candidate attachment's dimensions
// match every attachment already recorded on a non-swapchain
// target.
func (t *Target) checkDims(w, h int) error {
	if t.swapchain {
		return nil
	}
	if t.width == 0 && t.height == 0 && len(t.colors) == 0 && t.depthStencilKind == dsNone {
		return nil
	}
	if w != t.width || h != t.height {
		return errors.New(targetPrefix + "attachment dimensions do not match target")
	}
	return nil
}

func (t *Target) setDims(w, h int) {
	if t.width == 0 && t.height == 0 {
		t.width, t.height = w, h
	}
}

// AddColor attaches an externally-owned 2D texture (or
// cubemap face) as the next color attachment.
func (t *Target) AddColor(tex *Texture, level, face int) error {
	if len(t.colors) >= kMaxColorAttachments {
		return errors.New(targetPrefix + "too many color attachments")
	}
	lv := tex.LevelInfo(level)
	if err := t.checkDims(lv.Width, lv.Height); err != nil {
		return err
	}
	t.setDims(lv.Width, lv.Height)
	t.colors = append(t.colors, ColorAttachment{Texture: tex, Level: level, Face: face})
	return nil
}

// RequestColor allocates a new owned 2D attachment texture
// matching param and attaches it as the next color
// attachment.
func (t *Target) RequestColor(f *FrontendContext, param TexDesc) (*Texture, error) {
	tex, err := f.createAttachmentTexture2D(param, callerTag())
	if err != nil {
		return nil, err
	}
	if err := t.checkDims(param.Width, param.Height); err != nil {
		f.DestroyTexture(tex)
		return nil, err
	}
	t.setDims(param.Width, param.Height)
	t.colors = append(t.colors, ColorAttachment{Texture: tex, owned: true})
	return tex, nil
}

// attachDS is the shared implementation for Attach{Depth,
// Stencil,DepthStencil} and Request{Depth,Stencil,
// DepthStencil}.
func (t *Target) attachDS(kind dsKind, tex *Texture, own bool) error {
	if t.depthStencilKind != dsNone {
		return errors.New(targetPrefix + "target already has a depth/stencil attachment")
	}
	lv := tex.LevelInfo(0)
	if err := t.checkDims(lv.Width, lv.Height); err != nil {
		return err
	}
	t.setDims(lv.Width, lv.Height)
	t.depthStencilKind = kind
	t.depthStencil = tex
	t.depthStencilOwn = own
	return nil
}

// AttachDepth references an externally-owned depth texture.
func (t *Target) AttachDepth(tex *Texture) error { return t.attachDS(dsDepth, tex, false) }

// AttachStencil references an externally-owned stencil
// texture.
func (t *Target) AttachStencil(tex *Texture) error { return t.attachDS(dsStencil, tex, false) }

// AttachDepthStencil references an externally-owned combined
// depth/stencil texture.
func (t *Target) AttachDepthStencil(tex *Texture) error {
	return t.attachDS(dsDepthStencil, tex, false)
}

// RequestDepth allocates and owns a depth attachment texture
// matching the target's existing dimensions.
func (t *Target) RequestDepth(f *FrontendContext, format DataFormat) (*Texture, error) {
	return t.requestDS(f, format, dsDepth, callerTag())
}

// RequestStencil allocates and owns a stencil attachment
// texture matching the target's existing dimensions.
func (t *Target) RequestStencil(f *FrontendContext, format DataFormat) (*Texture, error) {
	return t.requestDS(f, format, dsStencil, callerTag())
}

// RequestDepthStencil allocates and owns a combined depth/
// stencil attachment texture matching the target's existing
// dimensions.
func (t *Target) RequestDepthStencil(f *FrontendContext, format DataFormat) (*Texture, error) {
	return t.requestDS(f, format, dsDepthStencil, callerTag())
}

func (t *Target) requestDS(f *FrontendContext, format DataFormat, kind dsKind, tag CmdTag) (*Texture, error) {
	if t.width == 0 || t.height == 0 {
		return nil, errors.New(targetPrefix + "target has no dimensions to match")
	}
	tex, err := f.createAttachmentTexture2D(TexDesc{
		Format: format,
		Width:  t.width,
		Height: t.height,
	}, tag)
	if err != nil {
		return nil, err
	}
	if err := t.attachDS(kind, tex, true); err != nil {
		f.DestroyTexture(tex)
		return nil, err
	}
	return tex, nil
}

// resizeSwapchain updates the swapchain target (and its
// owned texture) to a new size. It does not rebuild any
// backend allocation; the backend observes the new Width/
// Height at its own pace via the resource's current state.
func (t *Target) resizeSwapchain(w, h int) {
	t.width, t.height = w, h
	if len(t.colors) > 0 {
		t.colors[0].Texture.resizeSwapchain(w, h)
	}
}
