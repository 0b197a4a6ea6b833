// Package shaderkey defines the value types the shader cache uses to decide
// whether a previously compiled specialization can be reused for the
// current draw (spec.md §4.4 "Shaders", §4.6). Both types are plain,
// comparable structs so the cache can key a map on them directly.
package shaderkey

// VertexAttribType enumerates the host-side type a guest vertex attribute
// format decodes to, used to specialize vertex shader input decoding.
type VertexAttribType uint8

const (
	VertexAttribFloat VertexAttribType = iota
	VertexAttribInt
	VertexAttribUInt
	VertexAttribNormalized
)

// PrimitiveTopology mirrors the handful of guest draw topologies that affect
// shader specialization (point-size handling, provoking vertex, geometry
// stage presence).
type PrimitiveTopology uint8

const (
	TopologyPoints PrimitiveTopology = iota
	TopologyLines
	TopologyLineStrip
	TopologyTriangles
	TopologyTriangleStrip
	TopologyTriangleFan
	TopologyPatches
)

// TessellationMode records whether tessellation stages participate and, if
// so, their domain.
type TessellationMode uint8

const (
	TessellationNone TessellationMode = iota
	TessellationTriangles
	TessellationQuads
	TessellationIsolines
)

// DepthMode records whether the active viewport uses a [0,1] or [-1,1]
// clip-space depth range, inferred by the Viewport updater and folded into
// the specialization key because it changes the depth-output transform a
// vertex shader must emit.
type DepthMode uint8

const (
	DepthModeZeroToOne DepthMode = iota
	DepthModeNegOneToOne
)

// AlphaTestFunc mirrors the legacy fixed-function alpha test comparison,
// emulated in-shader on hosts with no native alpha test.
type AlphaTestFunc uint8

const (
	AlphaTestNever AlphaTestFunc = iota
	AlphaTestLess
	AlphaTestEqual
	AlphaTestLessEqual
	AlphaTestGreater
	AlphaTestNotEqual
	AlphaTestGreaterEqual
	AlphaTestAlways
)

// MaxVertexAttribs bounds the per-location attribute type array.
const MaxVertexAttribs = 16

// Key is the full shader specialization key: every piece of register state
// that changes the semantics of the generated host shader, as opposed to
// merely its resource bindings (those are covered by reflect.Program).
// Key is intentionally a flat comparable struct so two keys can be compared
// with ==.
type Key struct {
	Topology             PrimitiveTopology
	Tessellation         TessellationMode
	EarlyZForce          bool
	MultisampleEnabled    bool
	AlphaToCoverage       bool
	ViewportTransformOff  bool
	Depth                 DepthMode
	ProgramPointSize      bool
	PointSize             float32
	AlphaTestEnabled      bool
	AlphaTestFunc         AlphaTestFunc
	AlphaTestRef          float32
	VertexAttribTypes     [MaxVertexAttribs]VertexAttribType
	VertexAttribEnabled   [MaxVertexAttribs]bool
}

// PoolKey identifies the texture/sampler pool window and texture-buffer
// index a shader's resource bindings were resolved against. A change here
// does not require shader recompilation by itself but is carried alongside
// Key as part of the cache lookup composite (spec.md §4.4).
type PoolKey struct {
	TexturePoolBase     uint32
	TexturePoolMaxIndex uint32
	SamplerPoolBase     uint32
	TextureBufferIndex  uint32
}
