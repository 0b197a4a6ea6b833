package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateBlend resolves per-target blend state. When independent blending is
// disabled, target 0's configuration is broadcast to every target rather
// than re-read per slot, matching the guest engine's own "common" blend
// register semantics (spec.md §4.4 "Blend").
func (r *Resolver) updateBlend() error {
	independent := r.Mirror.Bit(regs.OffBlendIndependent, 0)

	var base host.BlendState
	for target := 0; target < regs.ColorTargetCount; target++ {
		if !independent && target > 0 {
			r.Host.Renderer.SetBlendState(target, base)
			continue
		}
		off := regs.OffBlendBase + uint16(target)*regs.BlendStride
		st := host.BlendState{
			Enabled:  r.Mirror.Bit(off+regs.BlendOffEnable, 0),
			ColorOp:  host.BlendOp(r.Mirror.Bits(off+regs.BlendOffColorOp, 0, 2)),
			ColorSrc: host.BlendFactor(r.Mirror.Bits(off+regs.BlendOffColorSrc, 0, 3)),
			ColorDst: host.BlendFactor(r.Mirror.Bits(off+regs.BlendOffColorDst, 0, 3)),
			AlphaOp:  host.BlendOp(r.Mirror.Bits(off+regs.BlendOffAlphaOp, 0, 2)),
			AlphaSrc: host.BlendFactor(r.Mirror.Bits(off+regs.BlendOffAlphaSrc, 0, 3)),
			AlphaDst: host.BlendFactor(r.Mirror.Bits(off+regs.BlendOffAlphaDst, 0, 3)),
		}
		if target == 0 {
			base = st
		}
		r.Host.Renderer.SetBlendState(target, st)
	}
	return nil
}
