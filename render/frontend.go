// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import (
	"errors"
	"runtime"
	"sync"
)

const frontPrefix = "render: "

// FrontendContext is the thread-safe recording half of the
// render abstraction: every public method may be called from
// any goroutine, serialized by a single mutex, and does
// nothing but validate arguments, mutate pool-resident state
// and append command records. Process and Swap hand the
// accumulated commands to the Backend and must only be
// called from the thread that owns the backend's native
// context.
type FrontendContext struct {
	mu sync.Mutex

	backend Backend
	alloc   AllocationInfo
	cfg     Config

	buffers    *Pool[Buffer]
	textures1D *Pool[Texture]
	textures2D *Pool[Texture]
	textures3D *Pool[Texture]
	texturesCM *Pool[Texture]
	targets    *Pool[Target]
	programs   *Pool[Program]

	cmdBuf *CommandBuffer

	// pending holds resources whose reference count reached
	// zero since the last Process call; their pool slots are
	// freed once Process has handed the matching
	// resource_destroy commands to the backend.
	pending []*Resource

	cache resourceCache

	swapchain *Target

	// stats[0] accumulates the frame currently being
	// recorded; stats[1] holds the last frame Process
	// completed, and is what Stats returns.
	stats [2]Stats
}

// NewFrontendContext creates a FrontendContext backed by the
// given Backend, sized according to cfg, and initializes the
// backend against window. It returns an error if the backend
// fails to acquire its native context.
func NewFrontendContext(cfg Config, backend Backend, window any) (*FrontendContext, error) {
	if !backend.Init(window) {
		return nil, errors.New(frontPrefix + "backend failed to initialize")
	}
	alloc := backend.AllocationInfo()
	f := &FrontendContext{
		backend:    backend,
		alloc:      alloc,
		cfg:        cfg,
		buffers:    NewPool[Buffer](cfg.MaxBuffers, alloc.Buffer),
		textures1D: NewPool[Texture](cfg.MaxTexture1D, alloc.Texture1D),
		textures2D: NewPool[Texture](cfg.MaxTexture2D, alloc.Texture2D),
		textures3D: NewPool[Texture](cfg.MaxTexture3D, alloc.Texture3D),
		texturesCM: NewPool[Texture](cfg.MaxTextureCM, alloc.TextureCM),
		targets:    NewPool[Target](cfg.MaxTargets, alloc.Target),
		programs:   NewPool[Program](cfg.MaxPrograms, alloc.Program),
		cmdBuf:     NewCommandBuffer(cfg.CommandMemory),
		cache:      newResourceCache(),
	}
	idx, t := f.targets.Create()
	initResource(&t.Resource, KTarget, idx, f)
	t.swapchain = true
	t.width, t.height = cfg.Resolution[0], cfg.Resolution[1]

	texIdx, tex := f.textures2D.Create()
	initResource(&tex.Resource, KTexture2D, texIdx, f)
	tex.desc = TexDesc{
		Format: FRGBA8,
		Usage:  TexAttachment,
		Width:  t.width,
		Height: t.height,
	}
	tex.descSet = true
	tex.computeLevels()
	t.colors = append(t.colors, ColorAttachment{Texture: tex, owned: true})

	f.swapchain = t
	return f, nil
}

// Swapchain returns the presentable target created alongside
// the FrontendContext. It is never destroyed by DestroyTarget.
func (f *FrontendContext) Swapchain() *Target { return f.swapchain }

// callerTag captures the file and line of the code that called
// the currently executing FrontendContext method, for inclusion
// in the command recorded by that call.
func callerTag() CmdTag {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return CmdTag{}
	}
	return CmdTag{File: file, Line: line}
}

// scheduleDestroy records a resource_destroy command for r
// and queues its pool slot to be freed once the command has
// been handed to the backend. Callers must hold f.mu.
func (f *FrontendContext) scheduleDestroy(r *Resource, tag CmdTag) {
	f.cache.removeByResource(r)
	var obj any
	switch r.kind {
	case KBuffer:
		obj = f.buffers.At(r.handle)
	case KTexture1D, KTexture2D, KTexture3D, KTextureCM:
		obj = f.poolForTextureKind(r.kind).At(r.handle)
	case KTarget:
		obj = f.targets.At(r.handle)
	case KProgram:
		obj = f.programs.At(r.handle)
	}
	f.cmdBuf.Allocate(CmdResourceDestroy, tag, ResourcePayload{Kind: r.kind, Obj: obj})
	f.pending = append(f.pending, r)
}

// freePending returns every resource queued by scheduleDestroy
// to its pool. Callers must hold f.mu.
func (f *FrontendContext) freePending() {
	for _, r := range f.pending {
		switch r.kind {
		case KBuffer:
			f.buffers.Destroy(r.handle)
		case KTexture1D:
			f.textures1D.Destroy(r.handle)
		case KTexture2D:
			f.textures2D.Destroy(r.handle)
		case KTexture3D:
			f.textures3D.Destroy(r.handle)
		case KTextureCM:
			f.texturesCM.Destroy(r.handle)
		case KTarget:
			f.targets.Destroy(r.handle)
		case KProgram:
			f.programs.Destroy(r.handle)
		}
	}
	f.pending = f.pending[:0]
}

// --- Buffer ---

// CreateBuffer allocates a new Buffer and records its
// resource_allocate command.
func (f *FrontendContext) CreateBuffer() *Buffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, b := f.buffers.Create()
	initResource(&b.Resource, KBuffer, idx, f)
	f.cmdBuf.Allocate(CmdResourceAllocate, callerTag(), ResourcePayload{Kind: KBuffer, Obj: b})
	return b
}

// InitializeBuffer records a resource_construct command for
// b, once its description and initial data have been
// recorded. It returns an error if b's recorded state is
// incomplete.
func (f *FrontendContext) InitializeBuffer(b *Buffer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := b.validate(); err != nil {
		return err
	}
	b.initialized = true
	f.cmdBuf.Allocate(CmdResourceConstruct, callerTag(), ResourcePayload{Kind: KBuffer, Obj: b})
	b.clearEdits()
	return nil
}

// UpdateBuffer records a resource_update command carrying b's
// pending edits, if any. It is a no-op if b has no pending
// edits.
func (f *FrontendContext) UpdateBuffer(b *Buffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(b.edits) == 0 {
		return
	}
	edits := append([]Edit(nil), b.edits...)
	f.cmdBuf.Allocate(CmdResourceUpdate, callerTag(), ResourcePayload{Kind: KBuffer, Obj: b, Edits: edits})
	b.clearEdits()
}

// DestroyBuffer releases b's reference, scheduling its
// destruction once the count reaches zero.
func (f *FrontendContext) DestroyBuffer(b *Buffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.Release() {
		f.scheduleDestroy(&b.Resource, callerTag())
	}
}

// --- Texture ---

func (f *FrontendContext) poolForTextureKind(kind Kind) *Pool[Texture] {
	switch kind {
	case KTexture1D:
		return f.textures1D
	case KTexture2D:
		return f.textures2D
	case KTexture3D:
		return f.textures3D
	case KTextureCM:
		return f.texturesCM
	default:
		panic("render: not a texture kind")
	}
}

func (f *FrontendContext) createTexture(kind Kind, tag CmdTag) *Texture {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, t := f.poolForTextureKind(kind).Create()
	initResource(&t.Resource, kind, idx, f)
	f.cmdBuf.Allocate(CmdResourceAllocate, tag, ResourcePayload{Kind: kind, Obj: t})
	return t
}

// CreateTexture1D, CreateTexture2D, CreateTexture3D and
// CreateTextureCM allocate a new Texture of the matching
// dimensionality and record its resource_allocate command.
// The caller must record a description with RecordDesc and
// then call InitializeTexture before using it in a draw,
// clear, blit or attachment.
func (f *FrontendContext) CreateTexture1D() *Texture { return f.createTexture(KTexture1D, callerTag()) }
func (f *FrontendContext) CreateTexture2D() *Texture { return f.createTexture(KTexture2D, callerTag()) }
func (f *FrontendContext) CreateTexture3D() *Texture { return f.createTexture(KTexture3D, callerTag()) }
func (f *FrontendContext) CreateTextureCM() *Texture { return f.createTexture(KTextureCM, callerTag()) }

// createAttachmentTexture2D allocates, describes and
// initializes a 2D attachment texture in a single call; it
// backs Target's Request{Color,Depth,Stencil,DepthStencil}
// helpers, which need a fully constructed texture before they
// can validate it against the target's dimensions.
func (f *FrontendContext) createAttachmentTexture2D(desc TexDesc, tag CmdTag) (*Texture, error) {
	desc.Usage = TexAttachment
	t := f.createTexture(KTexture2D, tag)
	t.RecordDesc(desc)
	if err := f.initializeTexture(t, tag); err != nil {
		f.destroyTexture(t, tag)
		return nil, err
	}
	return t, nil
}

// InitializeTexture records a resource_construct command for
// t, once its description has been recorded. It computes t's
// mip level table and backing storage as a side effect.
func (f *FrontendContext) InitializeTexture(t *Texture) error {
	return f.initializeTexture(t, callerTag())
}

func (f *FrontendContext) initializeTexture(t *Texture, tag CmdTag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := t.validate(); err != nil {
		return err
	}
	if t.desc.Width > f.cfg.MaxTextureDimensions ||
		t.desc.Height > f.cfg.MaxTextureDimensions ||
		t.desc.Depth > f.cfg.MaxTextureDimensions {
		return errors.New(texPrefix + "dimensions exceed configured maximum")
	}
	t.computeLevels()
	f.cmdBuf.Allocate(CmdResourceConstruct, tag, ResourcePayload{Kind: t.kind, Obj: t})
	return nil
}

// UpdateTexture records a resource_update command for t. It
// is the caller's responsibility to have called Write since
// the last update; this port carries no separate edit list
// for textures (the whole client-side buffer is re-uploaded).
func (f *FrontendContext) UpdateTexture(t *Texture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmdBuf.Allocate(CmdResourceUpdate, callerTag(), ResourcePayload{Kind: t.kind, Obj: t})
}

// DestroyTexture releases t's reference, scheduling its
// destruction once the count reaches zero.
func (f *FrontendContext) DestroyTexture(t *Texture) {
	f.destroyTexture(t, callerTag())
}

func (f *FrontendContext) destroyTexture(t *Texture, tag CmdTag) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.Release() {
		f.scheduleDestroy(&t.Resource, tag)
	}
}

// --- Target ---

// CreateTarget allocates a new, empty Target with no
// attachments recorded.
func (f *FrontendContext) CreateTarget() *Target {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, t := f.targets.Create()
	initResource(&t.Resource, KTarget, idx, f)
	f.cmdBuf.Allocate(CmdResourceAllocate, callerTag(), ResourcePayload{Kind: KTarget, Obj: t})
	return t
}

// InitializeTarget records a resource_construct command for
// t, once at least one attachment has been recorded.
func (f *FrontendContext) InitializeTarget(t *Target) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.ColorCount() == 0 && t.depthStencilKind == dsNone {
		return errors.New(targetPrefix + "target has no attachments")
	}
	f.cmdBuf.Allocate(CmdResourceConstruct, callerTag(), ResourcePayload{Kind: KTarget, Obj: t})
	return nil
}

// DestroyTarget releases t's reference. When the count
// reaches zero, it also releases (and, if owned, destroys)
// every attachment the target requested for itself. It is a
// programmer error to call DestroyTarget on the swapchain.
func (f *FrontendContext) DestroyTarget(t *Target) {
	tag := callerTag()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyTargetLocked(t, tag)
}

func (f *FrontendContext) destroyTargetLocked(t *Target, tag CmdTag) {
	if t.swapchain {
		panic("render: the swapchain target cannot be destroyed")
	}
	if !t.Release() {
		return
	}
	for _, c := range t.colors {
		if c.owned {
			f.destroyTextureLocked(c.Texture, tag)
		}
	}
	if t.depthStencilOwn && t.depthStencil != nil {
		f.destroyTextureLocked(t.depthStencil, tag)
	}
	f.scheduleDestroy(&t.Resource, tag)
}

func (f *FrontendContext) destroyTextureLocked(t *Texture, tag CmdTag) {
	if t.Release() {
		f.scheduleDestroy(&t.Resource, tag)
	}
}

// Resize updates the swapchain target's dimensions, as
// reported by the windowing layer after the window surface
// changes size.
func (f *FrontendContext) Resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.swapchain.resizeSwapchain(width, height)
}

// --- Program ---

// CreateProgram allocates a new, empty Program.
func (f *FrontendContext) CreateProgram() (*Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, p := f.programs.Create()
	initResource(&p.Resource, KProgram, idx, f)
	f.cmdBuf.Allocate(CmdResourceAllocate, callerTag(), ResourcePayload{Kind: KProgram, Obj: p})
	return p, nil
}

// InitializeProgram records a resource_construct command for
// p, once its description, shaders and uniforms have all
// been recorded.
func (f *FrontendContext) InitializeProgram(p *Program) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := p.validate(); err != nil {
		return err
	}
	f.cmdBuf.Allocate(CmdResourceConstruct, callerTag(), ResourcePayload{Kind: KProgram, Obj: p})
	return nil
}

// DestroyProgram releases p's reference, scheduling its
// destruction once the count reaches zero.
func (f *FrontendContext) DestroyProgram(p *Program) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.Release() {
		f.scheduleDestroy(&p.Resource, callerTag())
	}
}

// --- Drawing ---

// Clear records a clear command against target, clearing the
// color attachments named by drawBuffers (indices into
// target's color attachment list) and/or the depth/stencil
// attachment, according to mask.
func (f *FrontendContext) Clear(state State, target *Target, drawBuffers []int, mask uint32, depth float32, stencil int32, colors [kMaxColorAttachments][4]float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if target == nil {
		return errors.New(targetPrefix + "clear requires a target")
	}
	if len(drawBuffers) == 0 {
		return errors.New(frontPrefix + "clear requires a non-empty draw-buffer set")
	}
	if mask == 0 {
		return errors.New(frontPrefix + "clear requires a non-zero clear mask")
	}
	if state.Viewport.Empty() {
		return errors.New(frontPrefix + "clear requires a non-empty viewport")
	}
	f.cmdBuf.Allocate(CmdClear, callerTag(), ClearPayload{
		State:        state,
		Target:       target,
		DrawBuffers:  drawBuffers,
		Mask:         mask,
		DepthValue:   depth,
		StencilValue: stencil,
		ColorValues:  colors,
	})
	f.stats[0].ClearCalls.Add(1)
	return nil
}

// Draw records a draw command. prog's currently dirty
// uniforms are snapshotted into the command's UniformBytes
// tail and the program's dirty bitset is cleared, so that
// later mutations to prog do not retroactively affect an
// already-recorded draw.
func (f *FrontendContext) Draw(state State, target *Target, buf *Buffer, prog *Program, primitive Primitive, count, offset int, drawBuffers []int, textures []*Texture, textureTypes []TextureType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if target == nil {
		return errors.New(targetPrefix + "draw requires a target")
	}
	if buf == nil && offset != 0 {
		return errors.New(bufPrefix + "bufferless draw requires a zero offset")
	}
	if prog == nil {
		return errors.New(progPrefix + "draw requires a program")
	}
	if count <= 0 {
		return errors.New(frontPrefix + "draw requires a positive vertex/element count")
	}
	if len(drawBuffers) == 0 {
		return errors.New(frontPrefix + "draw requires a non-empty draw-buffer set")
	}
	if state.Viewport.Empty() {
		return errors.New(frontPrefix + "draw requires a non-empty viewport")
	}
	if len(textures) != len(textureTypes) {
		return errors.New(frontPrefix + "draw textures and texture types must have equal length")
	}
	if len(textures) > kMaxTextures {
		return errors.New(frontPrefix + "too many textures bound to draw")
	}

	n := prog.DirtyUniformsSize()
	bytes := make([]byte, n)
	prog.flushDirtyUniforms(bytes)
	dirty := prog.DirtyBits()
	prog.clearDirty()

	f.cmdBuf.Allocate(CmdDraw, callerTag(), DrawPayload{
		State:         state,
		Target:        target,
		Buffer:        buf,
		Program:       prog,
		Count:         count,
		Offset:        offset,
		Primitive:     primitive,
		DrawBuffers:   drawBuffers,
		DrawTextures:  textures,
		TextureTypes:  textureTypes,
		DirtyUniforms: dirty,
		UniformBytes:  bytes,
	})
	f.stats[0].DrawCalls.Add(1)
	f.stats[0].addPrimitives(primitive, count)
	return nil
}

// Blit records a blit command copying the color attachment at
// srcAttachment of src into the color attachment at
// dstAttachment of dst. Blit only ever targets color
// attachments (spec.md §4.3); it forbids a self-target, the
// swapchain as a source, and copying an attachment onto
// itself.
func (f *FrontendContext) Blit(state State, src *Target, srcAttachment int, dst *Target, dstAttachment int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if src == nil || dst == nil {
		return errors.New(targetPrefix + "blit requires both a source and a destination target")
	}
	if src == dst {
		return errors.New(targetPrefix + "blit forbids a self-target")
	}
	if src.IsSwapchain() {
		return errors.New(targetPrefix + "blit forbids the swapchain as a source")
	}
	srcColor, err := colorAttachment(src, srcAttachment)
	if err != nil {
		return err
	}
	dstColor, err := colorAttachment(dst, dstAttachment)
	if err != nil {
		return err
	}
	if srcColor.Texture == dstColor.Texture && srcColor.Level == dstColor.Level && srcColor.Face == dstColor.Face {
		return errors.New(targetPrefix + "blit forbids copying an attachment onto itself")
	}
	srcFmt := srcColor.Texture.Desc().Format
	dstFmt := dstColor.Texture.Desc().Format
	if srcFmt.IsFloatOrNorm() != dstFmt.IsFloatOrNorm() {
		return errors.New(targetPrefix + "blit endpoints must agree on float/normalized classification")
	}
	f.cmdBuf.Allocate(CmdBlit, callerTag(), BlitPayload{
		State:         state,
		SrcTarget:     src,
		SrcAttachment: srcAttachment,
		DstTarget:     dst,
		DstAttachment: dstAttachment,
	})
	f.stats[0].BlitCalls.Add(1)
	return nil
}

// colorAttachment resolves one of a target's color attachments
// by index. Blit requires color attachments on both ends
// (spec.md §4.3); depth/stencil attachments are never valid
// blit endpoints.
func colorAttachment(t *Target, index int) (ColorAttachment, error) {
	if index < 0 || index >= len(t.colors) {
		return ColorAttachment{}, errors.New(targetPrefix + "blit requires a color attachment")
	}
	return t.colors[index], nil
}

// Profile records a profile command. An empty tag ends the
// most recently begun sample.
func (f *FrontendContext) Profile(tag string) {
	ct := callerTag()
	ct.Desc = tag
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmdBuf.Allocate(CmdProfile, ct, ProfilePayload{Tag: tag})
}

// --- Frame lifecycle ---

// Process hands every command recorded since the last call to
// the backend, frees pool slots for resources destroyed
// during that span, and rotates the statistics snapshot. It
// returns false if no commands were pending, in which case
// the backend is not invoked.
func (f *FrontendContext) Process() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdBuf.Len() == 0 {
		return false
	}
	f.backend.Process(f.cmdBuf.Commands())
	f.freePending()
	f.cmdBuf.Reset()
	f.stats[0].snapshotInto(&f.stats[1])
	f.stats[0].reset()
	return true
}

// Swap presents the swapchain. It must be called after
// Process, from the thread that owns the backend's native
// context.
func (f *FrontendContext) Swap() { f.backend.Swap() }

// Stats returns the accumulated counters for the last frame
// that completed Process.
func (f *FrontendContext) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	var s Stats
	f.stats[1].snapshotInto(&s)
	return s
}

// DeviceInfo reports identifying information about the
// backend's underlying graphics device.
func (f *FrontendContext) DeviceInfo() DeviceInfo { return f.backend.DeviceInfo() }

// --- Resource cache ---

// InsertCached caches r under name, acquiring a reference on
// the cache's behalf.
func (f *FrontendContext) InsertCached(name string, r *Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache.insert(name, r)
}

// FindCached looks up a resource previously cached under
// name.
func (f *FrontendContext) FindCached(name string) (*Resource, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache.find(name)
}

// EvictCached removes name from the cache, releasing the
// reference the cache held.
func (f *FrontendContext) EvictCached(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache.evict(name)
}
