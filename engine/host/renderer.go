// Package host defines the downward interfaces the translator drives: the
// fixed-function state the host renderer must apply before a draw, texture
// and buffer binding management, and the shader cache the Shaders update
// group consults. These are the "Downward (to host renderer)" operations
// named in spec.md §6 — this package only declares the contract; concrete
// implementations (a host application's backend, or a test fake) live
// elsewhere.
package host

import "github.com/nv3d/maxwell3d/engine/shaderkey"

// CullMode mirrors the guest face-culling mode.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// FrontFace mirrors the guest winding convention used to classify front
// faces.
type FrontFace uint8

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// CompareFunc mirrors the guest depth/stencil/alpha comparison functions.
type CompareFunc uint8

const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// StencilOp mirrors the guest stencil update operations.
type StencilOp uint8

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilDecrementClamp
	StencilInvert
	StencilIncrementWrap
	StencilDecrementWrap
)

// BlendOp mirrors the guest blend equation.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// BlendFactor mirrors the guest blend factor.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// LogicOp mirrors the guest logic op applied in place of blending.
type LogicOp uint8

const (
	LogicOpClear LogicOp = iota
	LogicOpCopy
	LogicOpNoop
	LogicOpInvert
	LogicOpAnd
	LogicOpOr
	LogicOpXor
)

// Topology mirrors the guest primitive topology.
type Topology = shaderkey.PrimitiveTopology

// BlendState is the fully resolved blend configuration for one color
// target, as produced by the Blend update group.
type BlendState struct {
	Enabled  bool
	ColorOp  BlendOp
	ColorSrc BlendFactor
	ColorDst BlendFactor
	AlphaOp  BlendOp
	AlphaSrc BlendFactor
	AlphaDst BlendFactor
}

// StencilFaceState is the resolved stencil configuration for one face.
type StencilFaceState struct {
	Func      CompareFunc
	Ref       uint32
	ReadMask  uint32
	WriteMask uint32
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
}

// Viewport is a resolved, render-target-scale-applied viewport.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// Scissor is a resolved, render-target-scale-applied scissor rectangle.
type Scissor struct {
	X, Y          int32
	Width, Height int32
}

// Renderer is the set of fixed-function state mutations and draw-time calls
// the translator issues on the host renderer every time an update group
// resolves new state, plus the final Draw/DrawIndexed entry points the
// Draw Preamble invokes once every group has been applied (spec.md §4.3,
// §6). Viewport/scissor/stencil-reference are genuinely per-draw dynamic
// state on most hosts; everything else typically participates in a cached,
// lazily-rebuilt pipeline object owned by the implementation.
type Renderer interface {
	SetBlendState(target int, state BlendState)
	SetBlendConstant(r, g, b, a float32)
	SetColorWriteMask(target int, mask uint8)
	SetCullMode(mode CullMode)
	SetFrontFace(face FrontFace)
	SetDepthTest(enabled bool, fn CompareFunc, writeEnabled bool)
	SetDepthBias(enabled bool, constant, clamp, slope float32)
	SetDepthClamp(enabled bool, near, far float32)
	SetStencilTest(enabled bool, front, back StencilFaceState)
	SetPrimitiveTopology(topology Topology)
	SetPolygonMode(frontFill, backFill bool)
	SetRasterizerDiscard(enabled bool)
	SetLineWidth(width float32)
	SetLogicOp(enabled bool, op LogicOp)
	SetMultisample(enabled bool, sampleCount uint32, alphaToCoverage bool)
	SetPrimitiveRestart(enabled bool, index uint32)
	SetTessellationPatchControlPoints(count int)

	// SetDepthMode selects the host's clip-space depth-range convention.
	// Must be invoked before SetViewport for the same pass, since the
	// viewports that follow are only meaningful under the mode just set.
	SetDepthMode(mode shaderkey.DepthMode)
	SetViewport(index int, v Viewport)
	SetScissor(index int, enabled bool, s Scissor)

	BeginTransformFeedback()
	EndTransformFeedback()

	// Draw issues a non-indexed draw call with the currently bound vertex
	// buffers and the most recently resolved pipeline state.
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) error
	// DrawIndexed issues an indexed draw call with the currently bound
	// index and vertex buffers.
	DrawIndexed(indexCount, instanceCount uint32, firstIndex int32, baseVertex int32, firstInstance uint32) error
}
