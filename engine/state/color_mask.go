package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateColorMask resolves per-target color write masks. A shared mask
// register exists alongside the per-target ones; a nonzero per-target word
// is used as is, and a per-target word of zero falls back to the shared
// word (spec.md §4.4 "Color Mask").
func (r *Resolver) updateColorMask() error {
	shared := uint8(r.Mirror.Bits(regs.OffColorMaskShared, 0, 3))

	for target := 0; target < regs.ColorTargetCount; target++ {
		off := regs.OffColorMaskBase + uint16(target)*regs.ColorMaskStride
		mask := uint8(r.Mirror.Bits(off, 0, 3))
		if r.Mirror.Word(off) == 0 {
			mask = shared
		}
		r.Host.Renderer.SetColorWriteMask(target, mask)
	}
	return nil
}
