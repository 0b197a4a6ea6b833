package state

import (
	"github.com/nv3d/maxwell3d/engine/dirty"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// SetTracker lets updateRenderTargets force Viewport and Scissor back onto
// the dirty mask when the render-target scale changes mid-pass, and lets
// updateShaders force User Clip.
// The resolver doesn't own a dirty.Tracker itself (the engine facade does),
// so this is supplied by the caller via SetTracker before Update runs.
func (r *Resolver) SetTracker(tracker *dirty.Tracker) {
	r.tracker = tracker
}

// updateRenderTargets resolves every bound color and depth render target,
// iterating the guest's slot permutation map (a 4-bit guest render-target
// index per host attachment, packed one nibble per attachment into the
// control word) so that a target bound at guest slot 3 but mapped to host
// attachment 0 lands in the right place. Layered rendering follows the
// bound program's writes_rt_layer flag, which is why this group must run
// after Shaders. The clip region — the intersection of every active
// target's bounds — is recomputed here and recorded in the snapshot, where
// Viewport and Scissor read it as the full-target extent. A render-target-scale
// change forces both of those groups to re-run even if their own registers
// did not change (spec.md §4.4 "Render Targets", §8 boundary scenario:
// viewport scale change).
func (r *Resolver) updateRenderTargets() error {
	count := int(r.Mirror.Word(regs.OffRTControlCount))
	useControl := r.Mirror.Bit(regs.OffRTControlUseCtl, 0)
	permMap := r.Mirror.Word(regs.OffRTControlUseCtl)
	layered := r.Snapshot.Program != nil && r.Snapshot.Program.WritesRTLayer()

	var clip host.ClipRegion
	first := true

	for slot := 0; slot < regs.ColorTargetCount; slot++ {
		if slot >= count {
			r.Host.TextureManager.ClearColorRenderTarget(slot)
			continue
		}

		mapped := slot
		if useControl {
			mapped = int((permMap >> uint(slot*4)) & 0xF)
		}

		off := regs.OffRTColorBase + uint16(mapped)*regs.RTColorStride
		width := r.Mirror.Word(off + regs.RTColorOffWidth)
		height := r.Mirror.Word(off + regs.RTColorOffHeight)
		if width == 0 || height == 0 {
			r.Host.TextureManager.ClearColorRenderTarget(slot)
			continue
		}
		format := host.RenderTargetFormat(r.Mirror.Word(off + regs.RTColorOffFormat))
		layers := r.Mirror.Word(off + regs.RTColorOffLayers)
		if !layered {
			layers = 1
		}

		r.Host.TextureManager.SetColorRenderTarget(slot, host.ColorTargetDescriptor{
			Width: width, Height: height, Format: format, ArrayLayers: layers,
		})

		if first || width < clip.Width {
			clip.Width = width
		}
		if first || height < clip.Height {
			clip.Height = height
		}
		first = false
	}

	if r.Mirror.Bit(regs.OffRTDepthEnabled, 0) {
		depthWidth := r.Mirror.Word(regs.OffRTDepthWidth)
		depthHeight := r.Mirror.Word(regs.OffRTDepthHeight)
		r.Host.TextureManager.SetDepthRenderTarget(host.DepthTargetDescriptor{
			Width: depthWidth, Height: depthHeight,
			Format: host.RenderTargetFormat(r.Mirror.Word(regs.OffRTDepthFormat)),
		})
		if first || depthWidth < clip.Width {
			clip.Width = depthWidth
		}
		if first || depthHeight < clip.Height {
			clip.Height = depthHeight
		}
		first = false
	} else {
		r.Host.TextureManager.ClearDepthRenderTarget()
	}

	r.Snapshot.ClipRegion = clip
	r.Host.TextureManager.SetClipRegion(clip)

	scale := r.Mirror.Float(regs.OffRenderTargetScale)
	if scale <= 0 {
		scale = 1.0
	}
	if scale != r.Snapshot.RenderTargetScale {
		r.Snapshot.RenderTargetScale = scale
		r.Host.TextureManager.UpdateRenderTargetScale(scale)
		if r.tracker != nil {
			r.tracker.ForceDirty(dirty.GroupViewport)
			r.tracker.ForceDirty(dirty.GroupScissor)
		}
	}

	return nil
}
