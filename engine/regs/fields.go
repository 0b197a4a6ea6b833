package regs

// Word offsets into the register bank. Layout follows spec.md §4.2's field
// groupings; each array field reserves a fixed stride per element so that
// per-element accessors can compute offset+index*stride without a table.
const (
	// Render target control: how many of the 8 color targets are active and
	// whether layered rendering is requested.
	OffRTControlCount  uint16 = 0x0200
	OffRTControlLayer  uint16 = 0x0201
	OffRTControlUseCtl uint16 = 0x0202

	// Color render targets: 8 slots, 16 words apart. Each slot holds address
	// (2 words, unused here beyond presence), width, height, format, tile
	// mode and array layer count.
	OffRTColorBase   uint16 = 0x0210
	RTColorStride    uint16 = 0x0010
	RTColorOffWidth  uint16 = 0x02
	RTColorOffHeight uint16 = 0x03
	RTColorOffFormat uint16 = 0x04
	RTColorOffLayers uint16 = 0x05

	// Depth render target, single slot.
	OffRTDepthWidth   uint16 = 0x02B0
	OffRTDepthHeight  uint16 = 0x02B1
	OffRTDepthFormat  uint16 = 0x02B2
	OffRTDepthEnabled uint16 = 0x02B3

	// Render-target-scale factor, stored as an IEEE-754 float32 bit pattern
	// and read via Float.
	OffRenderTargetScale uint16 = 0x02C0

	// Viewports: 16 slots, 8 words apart (scale x/y/z, translate x/y/z,
	// swizzle, clip range).
	OffViewportBase     uint16 = 0x0300
	ViewportStride      uint16 = 0x0008
	ViewportOffScaleX   uint16 = 0x00
	ViewportOffScaleY   uint16 = 0x01
	ViewportOffScaleZ   uint16 = 0x02
	ViewportOffTransX   uint16 = 0x03
	ViewportOffTransY   uint16 = 0x04
	ViewportOffTransZ   uint16 = 0x05
	ViewportOffSwizzle  uint16 = 0x06
	ViewportOffClipCtrl uint16 = 0x07

	// Viewport extents (separate array, NV-style split from the transform
	// block): x, y, width, height, min depth, max depth.
	OffViewportExtentBase uint16 = 0x0400
	ViewportExtentStride  uint16 = 0x0008
	ExtentOffX            uint16 = 0x00
	ExtentOffY            uint16 = 0x01
	ExtentOffWidth        uint16 = 0x02
	ExtentOffHeight       uint16 = 0x03
	ExtentOffDepthMin     uint16 = 0x04
	ExtentOffDepthMax     uint16 = 0x05

	// Scissor rectangles: 16 slots, 4 words apart (enable, x-min, x-max,
	// y-min, y-max packed into 4 words).
	OffScissorBase   uint16 = 0x0500
	ScissorStride    uint16 = 0x0004
	ScissorOffEnable uint16 = 0x00
	ScissorOffXRange uint16 = 0x01
	ScissorOffYRange uint16 = 0x02

	// Vertex attributes: 16 slots, 1 word each, packed bitfield.
	OffVertexAttribBase uint16 = 0x0458
	VertexAttribStride  uint16 = 0x0001

	// Vertex buffers: 16 slots, 4 words apart (config, divisor, start
	// address high/low collapsed to a single "size" word for this layer).
	OffVertexBufferBase   uint16 = 0x0600
	VertexBufferStride    uint16 = 0x0004
	VBOffConfig           uint16 = 0x00
	VBOffDivisor           uint16 = 0x01
	VBOffSize             uint16 = 0x02

	// Index buffer.
	OffIndexBufferFormat uint16 = 0x0680
	OffIndexBufferSize   uint16 = 0x0681
	OffIndexBufferFirst  uint16 = 0x0682

	// Primitive restart.
	OffPrimitiveRestartEnable uint16 = 0x0690
	OffPrimitiveRestartIndex  uint16 = 0x0691

	// Blend: one common-control word plus per-target (8) color/alpha
	// op+factor words.
	OffBlendCommon      uint16 = 0x0700
	OffBlendIndependent uint16 = 0x0701
	OffBlendBase        uint16 = 0x0710
	BlendStride         uint16 = 0x0008
	BlendOffColorOp     uint16 = 0x00
	BlendOffColorSrc    uint16 = 0x01
	BlendOffColorDst    uint16 = 0x02
	BlendOffAlphaOp     uint16 = 0x03
	BlendOffAlphaSrc    uint16 = 0x04
	BlendOffAlphaDst    uint16 = 0x05
	BlendOffEnable      uint16 = 0x06

	// Color write mask: shared word plus 8 per-target words.
	OffColorMaskShared uint16 = 0x0790
	OffColorMaskBase   uint16 = 0x0791
	ColorMaskStride    uint16 = 0x0001

	// Depth test.
	OffDepthTestEnable uint16 = 0x07A0
	OffDepthTestFunc   uint16 = 0x07A1
	OffDepthWriteMask  uint16 = 0x07A2
	OffDepthClampNear  uint16 = 0x07A3
	OffDepthClampFar   uint16 = 0x07A4

	// Depth bias.
	OffDepthBiasEnable   uint16 = 0x07B0
	OffDepthBiasConstant uint16 = 0x07B1
	OffDepthBiasClamp    uint16 = 0x07B2
	OffDepthBiasSlope    uint16 = 0x07B3

	// Stencil test, front and back face.
	OffStencilTwoSided  uint16 = 0x07C0
	OffStencilFrontBase uint16 = 0x07C1
	OffStencilBackBase  uint16 = 0x07C8
	StencilOffEnable    uint16 = 0x00
	StencilOffFunc      uint16 = 0x01
	StencilOffRef       uint16 = 0x02
	StencilOffMask      uint16 = 0x03
	StencilOffWriteMask uint16 = 0x04
	StencilOffFail      uint16 = 0x05
	StencilOffZFail     uint16 = 0x06
	StencilOffPass      uint16 = 0x07

	// Face / culling state.
	OffFaceCullEnable uint16 = 0x07D0
	OffFaceCullMode   uint16 = 0x07D1
	OffFaceFrontFace  uint16 = 0x07D2
	OffFaceFlipY      uint16 = 0x07D3

	// Y-control: screen-space Y negation and triangle winding flip used by
	// some host presentation paths.
	OffYControlNegate uint16 = 0x07E0
	OffYControlFlip   uint16 = 0x07E1

	// Polygon / rasterizer mode.
	OffPolygonModeFront   uint16 = 0x07F0
	OffPolygonModeBack    uint16 = 0x07F1
	OffRasterizerDiscard  uint16 = 0x07F2
	OffProvokingVertex    uint16 = 0x07F3
	OffLineWidth          uint16 = 0x07F4
	OffLineSmoothEnable   uint16 = 0x07F5

	// Logic op.
	OffLogicOpEnable uint16 = 0x0800
	OffLogicOpFunc   uint16 = 0x0801

	// Multisample.
	OffMultisampleEnable      uint16 = 0x0810
	OffMultisampleSampleCount uint16 = 0x0811
	OffAlphaToCoverageEnable  uint16 = 0x0812
	OffAlphaToOneEnable       uint16 = 0x0813

	// Point state.
	OffPointSize           uint16 = 0x0820
	OffPointSpriteEnable   uint16 = 0x0821
	OffProgramPointSize    uint16 = 0x0822

	// Alpha test (legacy fixed-function, still exposed by the guest driver).
	OffAlphaTestEnable uint16 = 0x0830
	OffAlphaTestFunc   uint16 = 0x0831
	OffAlphaTestRef    uint16 = 0x0832

	// Tessellation.
	OffTessPatchControlPoints uint16 = 0x0840
	OffTessDomainMode         uint16 = 0x0841
	OffTessSpacing            uint16 = 0x0842
	OffTessPrimWinding        uint16 = 0x0843

	// Clip distances: one enable-mask word, bit per plane.
	OffUserClipEnableMask uint16 = 0x0850

	// Transform feedback: 4 buffer slots.
	OffTransformFeedbackEnable uint16 = 0x0860
	OffTransformFeedbackBase   uint16 = 0x0861
	TFStride                  uint16 = 0x0004
	TFOffSize                 uint16 = 0x00
	TFOffOffset               uint16 = 0x01
	TFOffVaryingCount         uint16 = 0x02

	// Shader stage state: 6 stages, stage 1 being the vertex stage, 4 words
	// each (enable, offset-hi,
	// offset-lo collapsed to one "address" word, constant-buffer-0 size).
	OffShaderStageBase uint16 = 0x0900
	ShaderStageStride  uint16 = 0x0004
	ShaderOffEnable    uint16 = 0x00
	ShaderOffAddress   uint16 = 0x01
	ShaderOffCB0Size   uint16 = 0x02

	// Graphics constant-buffer-0 base, used as the fixed-offset storage
	// buffer binding window (spec.md §4.4 "Shaders").
	OffGraphicsCB0Base uint16 = 0x0A00

	// Texture / sampler pool descriptors.
	OffTexturePoolBase       uint16 = 0x0B00
	OffTexturePoolMaxIndex   uint16 = 0x0B01
	OffSamplerPoolBase       uint16 = 0x0B02
	OffSamplerPoolMaxIndex   uint16 = 0x0B03
	OffTextureBufferIndex    uint16 = 0x0B04
)

// ShaderStageCount is the number of programmable stage slots the guest
// engine exposes; slot 1 is the vertex stage.
const ShaderStageCount = 6

// ColorTargetCount is the number of color render targets / blend slots /
// color-mask slots the guest engine exposes.
const ColorTargetCount = 8

// ViewportCount is the number of viewport/scissor slots.
const ViewportCount = 16

// VertexAttribCount is the number of vertex attribute slots.
const VertexAttribCount = 16

// VertexBufferCount is the number of vertex buffer binding slots.
const VertexBufferCount = 16

// TransformFeedbackBufferCount is the number of transform feedback buffer
// slots.
const TransformFeedbackBufferCount = 4
