// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

// Primitive identifies the topology of a draw command.
type Primitive int

// Primitive topologies.
const (
	PPoints Primitive = iota
	PLines
	PTriangleStrip
	PTriangles
)

// ElementType identifies the integer type used to index
// into a Buffer's vertex data.
type ElementType int

// Element types. ENone means no element data: the draw is
// non-indexed, as is every bufferless draw.
const (
	ENone ElementType = iota
	EUint8
	EUint16
	EUint32
)

// Size returns the size in bytes of one element.
func (e ElementType) Size() int {
	switch e {
	case EUint8:
		return 1
	case EUint16:
		return 2
	case EUint32:
		return 4
	default:
		return 0
	}
}

// AttribType identifies the type of a vertex attribute.
type AttribType int

// Vertex attribute types.
const (
	AttrFloat32 AttribType = iota
	AttrUint8
)

// Size returns the size in bytes of one component of t.
func (t AttribType) Size() int {
	switch t {
	case AttrFloat32:
		return 4
	case AttrUint8:
		return 1
	default:
		return 0
	}
}

// BufferUsage distinguishes buffers that change rarely
// (static) from ones updated frequently (dynamic).
type BufferUsage int

// Buffer usage kinds.
const (
	UStatic BufferUsage = iota
	UDynamic
)

// TextureUsage distinguishes the lifetime/use pattern of a
// Texture's backing store.
type TextureUsage int

// Texture usage kinds.
const (
	TexStatic TextureUsage = iota
	TexDynamic
	TexAttachment
)

// TextureType tags a draw's bound texture so that the
// backend can select the matching bind target ('1', '2',
// '3' or 'c' in the reference implementation).
type TextureType int

// Texture types.
const (
	TTexture1D TextureType = iota
	TTexture2D
	TTexture3D
	TTextureCM
)

// WrapMode selects the addressing mode applied outside the
// [0,1] texture coordinate range.
type WrapMode int

// Wrap modes.
const (
	WClampToEdge WrapMode = iota
	WClampToBorder
	WRepeat
	WMirrorClampToEdge
	WMirroredRepeat
)

// DataFormat identifies the pixel layout and numeric
// interpretation of texture data.
type DataFormat int

// Supported formats. FIsFloat reports whether a format is
// normalized/float (as opposed to integer).
const (
	FRGBA8 DataFormat = iota
	FRGBA8Srgb
	FBGRA8
	FBGRA8Srgb
	FR8
	FRG8
	FRGBA16Float
	FR32Float
	FD16
	FD24
	FD24S8
	FD32
)

// IsFloatOrNorm reports whether the format's color values
// are interpreted as normalized/floating-point, as opposed
// to pure integers. Blit requires both endpoints to agree
// on this classification.
func (f DataFormat) IsFloatOrNorm() bool {
	switch f {
	case FRGBA8, FRGBA8Srgb, FBGRA8, FBGRA8Srgb, FR8, FRG8, FRGBA16Float, FR32Float:
		return true
	default:
		return false
	}
}

// IsDepth reports whether f carries a depth component.
func (f DataFormat) IsDepth() bool {
	switch f {
	case FD16, FD24, FD24S8, FD32:
		return true
	default:
		return false
	}
}

// IsStencil reports whether f carries a stencil component.
func (f DataFormat) IsStencil() bool { return f == FD24S8 }

// Size returns the size in bytes of one texel of f.
func (f DataFormat) Size() int {
	switch f {
	case FR8:
		return 1
	case FRG8, FD16:
		return 2
	case FRGBA8, FRGBA8Srgb, FBGRA8, FBGRA8Srgb, FD24, FD24S8, FD32, FR32Float:
		return 4
	case FRGBA16Float:
		return 8
	default:
		panic("render: undefined DataFormat constant")
	}
}

// UniformKind identifies the category of a Program uniform,
// which determines its storage size and the backend upload
// call used to set it.
type UniformKind int

// Uniform kinds.
const (
	USampler2D UniformKind = iota
	USamplerCube
	UScalar
	UVec2
	UVec3
	UVec4
	UMat3x3
	UMat4x4
	UBones
	// UPad reserves a slot index with no backing GPU
	// uniform and no storage (its Size is 0); the backend
	// skips the upload.
	UPad
)

// MaxBones is the maximum number of joint matrices carried
// by a UBones uniform.
const MaxBones = 80

// Size returns the fixed size in bytes of a value of kind k.
func (k UniformKind) Size() int {
	switch k {
	case USampler2D, USamplerCube, UScalar:
		return 4
	case UVec2:
		return 8
	case UVec3:
		return 12
	case UVec4:
		return 16
	case UMat3x3:
		return 36
	case UMat4x4:
		return 64
	case UBones:
		return MaxBones * 48
	case UPad:
		return 0
	default:
		panic("render: undefined UniformKind constant")
	}
}

// ShaderStage identifies a programmable stage of a Program.
type ShaderStage int

// Shader stages.
const (
	SVertex ShaderStage = iota
	SFragment
)

// kMaxColorAttachments bounds the number of color
// attachments a Target may have, and the number of bits in
// a clear mask's color-attachment range.
const kMaxColorAttachments = 8

// kMaxTextures bounds the number of textures a single draw
// may bind.
const kMaxTextures = 16
