package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateDepthBias resolves polygon offset state.
func (r *Resolver) updateDepthBias() error {
	enabled := r.Mirror.Bit(regs.OffDepthBiasEnable, 0)
	constant := r.Mirror.Float(regs.OffDepthBiasConstant)
	clamp := r.Mirror.Float(regs.OffDepthBiasClamp)
	slope := r.Mirror.Float(regs.OffDepthBiasSlope)

	r.Host.Renderer.SetDepthBias(enabled, constant, clamp, slope)
	return nil
}
