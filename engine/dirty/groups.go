// Package dirty tracks which of the 28 update groups (spec.md §4.2) have
// pending register writes, and hands a stable apply function the chance to
// re-run the corresponding updater in a fixed, ascending order.
package dirty

import "github.com/nv3d/maxwell3d/engine/regs"

// GroupIndex names one of the 28 update groups a register write can mark
// dirty. Numeric order is the order Update walks them in — later groups may
// rely on earlier ones having already run within the same update pass.
type GroupIndex int

const (
	GroupVertexBuffer GroupIndex = iota
	GroupVertexAttrib
	GroupIndexBuffer
	GroupPrimitiveRestart
	GroupBlend
	GroupColorMask
	GroupFace
	GroupStencil
	GroupDepth
	GroupDepthBias
	GroupDepthClamp
	GroupTessellation
	GroupViewport
	GroupScissor
	GroupLogicOp
	GroupPolygonMode
	GroupRasterizer
	GroupLine
	GroupMultisample
	GroupPoint
	GroupAlphaTest
	GroupUserClip
	GroupTransformFeedback
	GroupSamplerPool
	GroupTexturePool
	GroupTextureBufferIndex
	// GroupShader precedes GroupRenderTargets: Render Targets reads the
	// bound program's writes_rt_layer flag, so the program must already be
	// resolved by the time it runs.
	GroupShader
	GroupRenderTargets

	// GroupCount is the number of update groups. Keep last.
	GroupCount
)

// AllGroups is a mask with every group's bit set.
const AllGroups = uint64(1)<<uint(GroupCount) - 1

// groupRanges maps each group to the half-open register-offset ranges that
// belong to it. A write inside any of a group's ranges marks that group
// dirty. Ranges come straight from the field layout in engine/regs.
var groupRanges = map[GroupIndex][][2]uint16{
	GroupVertexBuffer: {{regs.OffVertexBufferBase, regs.OffVertexBufferBase + regs.VertexBufferStride*regs.VertexBufferCount}},
	GroupVertexAttrib: {{regs.OffVertexAttribBase, regs.OffVertexAttribBase + regs.VertexAttribStride*regs.VertexAttribCount}},
	GroupIndexBuffer:  {{regs.OffIndexBufferFormat, regs.OffIndexBufferFirst + 1}},
	GroupPrimitiveRestart: {{regs.OffPrimitiveRestartEnable, regs.OffPrimitiveRestartIndex + 1}},
	GroupBlend: {
		{regs.OffBlendCommon, regs.OffBlendIndependent + 1},
		{regs.OffBlendBase, regs.OffBlendBase + regs.BlendStride*regs.ColorTargetCount},
	},
	GroupColorMask: {{regs.OffColorMaskShared, regs.OffColorMaskBase + regs.ColorMaskStride*regs.ColorTargetCount}},
	GroupFace:      {{regs.OffFaceCullEnable, regs.OffFaceFlipY + 1}, {regs.OffYControlNegate, regs.OffYControlFlip + 1}},
	GroupStencil: {
		{regs.OffStencilTwoSided, regs.OffStencilTwoSided + 1},
		{regs.OffStencilFrontBase, regs.OffStencilFrontBase + 8},
		{regs.OffStencilBackBase, regs.OffStencilBackBase + 8},
	},
	GroupDepth:         {{regs.OffDepthTestEnable, regs.OffDepthClampFar + 1}},
	GroupDepthBias:     {{regs.OffDepthBiasEnable, regs.OffDepthBiasSlope + 1}},
	GroupDepthClamp:    {{regs.OffDepthClampNear, regs.OffDepthClampFar + 1}},
	GroupTessellation:  {{regs.OffTessPatchControlPoints, regs.OffTessPrimWinding + 1}},
	GroupViewport:      {{regs.OffViewportBase, regs.OffViewportBase + regs.ViewportStride*regs.ViewportCount}, {regs.OffViewportExtentBase, regs.OffViewportExtentBase + regs.ViewportExtentStride*regs.ViewportCount}},
	GroupScissor:       {{regs.OffScissorBase, regs.OffScissorBase + regs.ScissorStride*regs.ViewportCount}},
	GroupLogicOp:       {{regs.OffLogicOpEnable, regs.OffLogicOpFunc + 1}},
	GroupPolygonMode:   {{regs.OffPolygonModeFront, regs.OffProvokingVertex + 1}},
	GroupRasterizer:    {{regs.OffRasterizerDiscard, regs.OffRasterizerDiscard + 1}},
	GroupLine:          {{regs.OffLineWidth, regs.OffLineSmoothEnable + 1}},
	GroupMultisample:   {{regs.OffMultisampleEnable, regs.OffAlphaToOneEnable + 1}},
	GroupPoint:         {{regs.OffPointSize, regs.OffProgramPointSize + 1}},
	GroupAlphaTest:     {{regs.OffAlphaTestEnable, regs.OffAlphaTestRef + 1}},
	GroupUserClip:      {{regs.OffUserClipEnableMask, regs.OffUserClipEnableMask + 1}},
	GroupTransformFeedback: {{regs.OffTransformFeedbackEnable, regs.OffTransformFeedbackBase + regs.TFStride*regs.TransformFeedbackBufferCount}},
	GroupSamplerPool:       {{regs.OffSamplerPoolBase, regs.OffSamplerPoolMaxIndex + 1}},
	GroupTexturePool:       {{regs.OffTexturePoolBase, regs.OffTexturePoolMaxIndex + 1}},
	GroupTextureBufferIndex: {{regs.OffTextureBufferIndex, regs.OffTextureBufferIndex + 1}},
	GroupRenderTargets: {
		{regs.OffRTControlCount, regs.OffRTControlUseCtl + 1},
		{regs.OffRTColorBase, regs.OffRTColorBase + regs.RTColorStride*regs.ColorTargetCount},
		{regs.OffRTDepthWidth, regs.OffRTDepthEnabled + 1},
		{regs.OffRenderTargetScale, regs.OffRenderTargetScale + 1},
	},
	GroupShader: {{regs.OffShaderStageBase, regs.OffShaderStageBase + regs.ShaderStageStride*regs.ShaderStageCount}},
}

// GroupForOffset returns the update group that owns the register word at
// offset, and whether any group claims it. Where the ranges of several
// groups contain offset, which of them is returned is not defined;
// Tracker.SetDirty marks all of them. Register words outside every
// known field (reserved/future) return (0, false) and are silently ignored
// by the tracker, matching spec.md §7 class 1 (malformed/unknown register
// state should degrade gracefully, never panic).
func GroupForOffset(offset uint16) (GroupIndex, bool) {
	for group, ranges := range groupRanges {
		for _, r := range ranges {
			if offset >= r[0] && offset < r[1] {
				return group, true
			}
		}
	}
	return 0, false
}
