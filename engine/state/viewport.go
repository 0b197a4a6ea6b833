package state

import (
	"github.com/nv3d/maxwell3d/common"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// updateViewport resolves all 16 viewports. The render-target scale factor
// accumulated by the Render Targets group is applied here rather than
// stored pre-scaled in the register file, since the guest always programs
// viewports in logical (unscaled) render-target coordinates (spec.md §4.4
// "Viewport", §8 boundary scenario: viewport scale change).
//
// A viewport whose transform is disabled is synthesized from the screen
// scissor (the Render Targets group's clip region) scaled by the
// render-target scale, rather than derived from its own scale/translate
// fields. The depth mode inferred below is pushed to the host once, before
// any SetViewport call, since it describes a convention every viewport in
// the pass shares.
func (r *Resolver) updateViewport() error {
	scale := r.Snapshot.RenderTargetScale

	mode := r.inferDepthMode()
	r.Snapshot.DepthMode = mode
	r.Snapshot.ShaderKey.Depth = mode
	r.Host.Renderer.SetDepthMode(mode)

	for i := 0; i < regs.ViewportCount; i++ {
		extentOff := regs.OffViewportExtentBase + uint16(i)*regs.ViewportExtentStride
		x := r.Mirror.Float(extentOff + regs.ExtentOffX)
		y := r.Mirror.Float(extentOff + regs.ExtentOffY)
		width := r.Mirror.Float(extentOff + regs.ExtentOffWidth)
		height := r.Mirror.Float(extentOff + regs.ExtentOffHeight)
		minDepth := r.Mirror.Float(extentOff + regs.ExtentOffDepthMin)
		maxDepth := r.Mirror.Float(extentOff + regs.ExtentOffDepthMax)

		transformOff := regs.OffViewportBase + uint16(i)*regs.ViewportStride
		scaleZ := r.Mirror.Float(transformOff + regs.ViewportOffScaleZ)
		viewportTransformOff := r.Mirror.Bit(transformOff+regs.ViewportOffClipCtrl, 1)

		if scaleZ < 0 {
			minDepth, maxDepth = maxDepth, minDepth
		}

		var vp host.Viewport
		if viewportTransformOff {
			clip := r.Snapshot.ClipRegion
			vp = host.Viewport{
				X: 0, Y: 0,
				Width:    float32(clip.Width) * scale,
				Height:   float32(clip.Height) * scale,
				MinDepth: minDepth, MaxDepth: maxDepth,
			}
		} else {
			if r.Snapshot.ViewportYFlip {
				y = height - y
			}
			scaledRect := common.Rect{X: x, Y: y, Width: width, Height: height}.ScaledBy(scale)
			vp = host.Viewport{
				X: scaledRect.X, Y: scaledRect.Y,
				Width: scaledRect.Width, Height: scaledRect.Height,
				MinDepth: minDepth, MaxDepth: maxDepth,
			}
		}

		r.Snapshot.Viewports[i] = vp
		r.Host.Renderer.SetViewport(i, vp)

		if i == 0 {
			r.Snapshot.ShaderKey.ViewportTransformOff = viewportTransformOff
		}
	}
	return nil
}

// inferDepthMode derives the host clip-space depth-range convention from
// viewport 0's extents and transform (spec.md §4.4 "Depth mode inference"):
// -1..1 iff both depth_near and depth_far differ from translate_z, else
// 0..1. A degenerate extent (depth_near == depth_far) can't distinguish the
// two conventions, so it falls back to the guest's own clip-control bit.
func (r *Resolver) inferDepthMode() shaderkey.DepthMode {
	near := r.Mirror.Float(regs.OffViewportExtentBase + regs.ExtentOffDepthMin)
	far := r.Mirror.Float(regs.OffViewportExtentBase + regs.ExtentOffDepthMax)
	translateZ := r.Mirror.Float(regs.OffViewportBase + regs.ViewportOffTransZ)
	clipNegOneToOne := r.Mirror.Bit(regs.OffViewportBase+regs.ViewportOffClipCtrl, 0)

	if near == far {
		if clipNegOneToOne {
			return shaderkey.DepthModeNegOneToOne
		}
		return shaderkey.DepthModeZeroToOne
	}
	if near != translateZ && far != translateZ {
		return shaderkey.DepthModeNegOneToOne
	}
	return shaderkey.DepthModeZeroToOne
}
