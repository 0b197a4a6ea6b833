package state

import (
	"github.com/nv3d/maxwell3d/common"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateScissor resolves all 16 scissor rectangles. A disabled scissor is
// forwarded as the full render-target extent rather than an empty
// rectangle, since hosts that require scissor to always be bound (most
// WebGPU-class APIs) would otherwise clip away the entire target (spec.md
// §4.4 "Scissor", §8 boundary scenario: scissor Y-flip).
func (r *Resolver) updateScissor() error {
	scale := r.Snapshot.RenderTargetScale

	for i := 0; i < regs.ViewportCount; i++ {
		off := regs.OffScissorBase + uint16(i)*regs.ScissorStride
		enabled := r.Mirror.Bit(off+regs.ScissorOffEnable, 0)
		xMin := r.Mirror.Bits(off+regs.ScissorOffXRange, 0, 15)
		xMax := r.Mirror.Bits(off+regs.ScissorOffXRange, 16, 31)
		yMin := r.Mirror.Bits(off+regs.ScissorOffYRange, 0, 15)
		yMax := r.Mirror.Bits(off+regs.ScissorOffYRange, 16, 31)

		if !enabled {
			xMin, yMin = 0, 0
			xMax, yMax = r.Snapshot.ClipRegion.Width, r.Snapshot.ClipRegion.Height
		}

		if r.Snapshot.ViewportYFlip && r.Snapshot.ClipRegion.Height > 0 {
			flippedMin := r.Snapshot.ClipRegion.Height - yMax
			flippedMax := r.Snapshot.ClipRegion.Height - yMin
			yMin, yMax = flippedMin, flippedMax
		}

		scaled := common.Rect{
			X: float32(xMin), Y: float32(yMin),
			Width: float32(xMax - xMin), Height: float32(yMax - yMin),
		}.ScaledBy(scale)
		rect := host.Scissor{
			X:      int32(scaled.X),
			Y:      int32(scaled.Y),
			Width:  int32(scaled.Width),
			Height: int32(scaled.Height),
		}
		r.Snapshot.Scissors[i].Enabled = enabled
		r.Snapshot.Scissors[i].Rect = rect
		r.Host.Renderer.SetScissor(i, true, rect)
	}
	return nil
}
