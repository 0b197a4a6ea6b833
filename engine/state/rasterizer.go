package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateRasterizer resolves the rasterizer-discard flag, which suppresses
// fragment processing entirely (used by the guest for transform-feedback
// only passes).
func (r *Resolver) updateRasterizer() error {
	discard := r.Mirror.Bit(regs.OffRasterizerDiscard, 0)
	r.Host.Renderer.SetRasterizerDiscard(discard)
	return nil
}
