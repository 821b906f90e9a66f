// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package gl3

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/halvard/rendercore/render"
)

// convertPrimitive translates a render.Primitive into the
// matching GL topology constant.
func convertPrimitive(p render.Primitive) uint32 {
	switch p {
	case render.PPoints:
		return gl.POINTS
	case render.PLines:
		return gl.LINES
	case render.PTriangleStrip:
		return gl.TRIANGLE_STRIP
	case render.PTriangles:
		return gl.TRIANGLES
	default:
		panic("gl3: undefined Primitive constant")
	}
}

// convertElementType translates a render.ElementType into the
// matching GL index type constant. It panics for ENone, which
// callers must special-case as a DrawArrays dispatch.
func convertElementType(e render.ElementType) uint32 {
	switch e {
	case render.EUint8:
		return gl.UNSIGNED_BYTE
	case render.EUint16:
		return gl.UNSIGNED_SHORT
	case render.EUint32:
		return gl.UNSIGNED_INT
	default:
		panic("gl3: convertElementType called with ENone")
	}
}

// convertAttribType translates a render.AttribType into the
// matching GL vertex attribute type constant.
func convertAttribType(a render.AttribType) uint32 {
	switch a {
	case render.AttrFloat32:
		return gl.FLOAT
	case render.AttrUint8:
		return gl.UNSIGNED_BYTE
	default:
		panic("gl3: undefined AttribType constant")
	}
}

// convertWrap translates a render.WrapMode into the matching
// GL texture wrap constant.
func convertWrap(w render.WrapMode) int32 {
	switch w {
	case render.WClampToEdge:
		return gl.CLAMP_TO_EDGE
	case render.WClampToBorder:
		return gl.CLAMP_TO_BORDER
	case render.WRepeat:
		return gl.REPEAT
	case render.WMirrorClampToEdge:
		// GL 3.3 core has no GL_MIRROR_CLAMP_TO_EDGE; the
		// closest portable fallback is CLAMP_TO_EDGE.
		return gl.CLAMP_TO_EDGE
	case render.WMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		panic("gl3: undefined WrapMode constant")
	}
}

// texFormat is the triple a texture upload call needs: sized
// internal format, client pixel format, and client pixel type.
type texFormat struct {
	internal int32
	pixel    uint32
	typ      uint32
}

// convertTextureFormat translates a render.DataFormat into
// the internal/pixel/type triple consumed by TexImage*D.
func convertTextureFormat(f render.DataFormat) texFormat {
	switch f {
	case render.FRGBA8:
		return texFormat{gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE}
	case render.FRGBA8Srgb:
		return texFormat{gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE}
	case render.FBGRA8:
		return texFormat{gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE}
	case render.FBGRA8Srgb:
		return texFormat{gl.SRGB8_ALPHA8, gl.BGRA, gl.UNSIGNED_BYTE}
	case render.FR8:
		return texFormat{gl.R8, gl.RED, gl.UNSIGNED_BYTE}
	case render.FRG8:
		return texFormat{gl.RG8, gl.RG, gl.UNSIGNED_BYTE}
	case render.FRGBA16Float:
		return texFormat{gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT}
	case render.FR32Float:
		return texFormat{gl.R32F, gl.RED, gl.FLOAT}
	case render.FD16:
		return texFormat{gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT}
	case render.FD24:
		return texFormat{gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT}
	case render.FD24S8:
		return texFormat{gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8}
	case render.FD32:
		return texFormat{gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT}
	default:
		panic("gl3: undefined DataFormat constant")
	}
}

// convertBlendFunc translates a render.BlendFunc into the
// matching GL blend factor constant.
func convertBlendFunc(b render.BlendFunc) uint32 {
	switch b {
	case render.BZero:
		return gl.ZERO
	case render.BOne:
		return gl.ONE
	case render.BSrcColor:
		return gl.SRC_COLOR
	case render.BOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case render.BDstColor:
		return gl.DST_COLOR
	case render.BOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case render.BSrcAlpha:
		return gl.SRC_ALPHA
	case render.BOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case render.BDstAlpha:
		return gl.DST_ALPHA
	case render.BOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		panic("gl3: undefined BlendFunc constant")
	}
}

// convertCompareFunc translates a render.CompareFunc into the
// matching GL comparison constant.
func convertCompareFunc(c render.CompareFunc) uint32 {
	switch c {
	case render.CNever:
		return gl.NEVER
	case render.CLess:
		return gl.LESS
	case render.CEqual:
		return gl.EQUAL
	case render.CLessEqual:
		return gl.LEQUAL
	case render.CGreater:
		return gl.GREATER
	case render.CNotEqual:
		return gl.NOTEQUAL
	case render.CGreaterEqual:
		return gl.GEQUAL
	case render.CAlways:
		return gl.ALWAYS
	default:
		panic("gl3: undefined CompareFunc constant")
	}
}

// convertStencilOp translates a render.StencilOp into the
// matching GL stencil operation constant.
func convertStencilOp(s render.StencilOp) uint32 {
	switch s {
	case render.SOKeep:
		return gl.KEEP
	case render.SOZero:
		return gl.ZERO
	case render.SOReplace:
		return gl.REPLACE
	case render.SOIncrClamp:
		return gl.INCR
	case render.SODecrClamp:
		return gl.DECR
	case render.SOInvert:
		return gl.INVERT
	case render.SOIncrWrap:
		return gl.INCR_WRAP
	case render.SODecrWrap:
		return gl.DECR_WRAP
	default:
		panic("gl3: undefined StencilOp constant")
	}
}

// convertPolygonMode translates a render.PolygonMode into the
// matching GL rasterization mode constant.
func convertPolygonMode(p render.PolygonMode) uint32 {
	switch p {
	case render.PolyFill:
		return gl.FILL
	case render.PolyLine:
		return gl.LINE
	case render.PolyPoint:
		return gl.POINT
	default:
		panic("gl3: undefined PolygonMode constant")
	}
}

// textureTypeTag mirrors the reference implementation's
// single-character texture-type tags ('1', '2', '3', 'c').
// The draw path does not use it; it binds by textureTarget.
func textureTypeTag(t render.TextureType) byte {
	switch t {
	case render.TTexture1D:
		return '1'
	case render.TTexture2D:
		return '2'
	case render.TTexture3D:
		return '3'
	case render.TTextureCM:
		return 'c'
	default:
		panic("gl3: undefined TextureType constant")
	}
}

// textureTarget returns the GL binding target for a texture
// of the given type.
func textureTarget(t render.TextureType) uint32 {
	switch t {
	case render.TTexture1D:
		return gl.TEXTURE_1D
	case render.TTexture2D:
		return gl.TEXTURE_2D
	case render.TTexture3D:
		return gl.TEXTURE_3D
	case render.TTextureCM:
		return gl.TEXTURE_CUBE_MAP
	default:
		panic("gl3: undefined TextureType constant")
	}
}

// cubeFaceTarget returns the GL binding target for face i
// (0..5) of a cubemap, in the engine's face-index order.
func cubeFaceTarget(i int) uint32 {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(i)
}
