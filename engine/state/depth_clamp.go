package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateDepthClamp resolves whether fragments outside [near, far] are
// clamped to the depth range instead of being clipped, and the clamp
// bounds themselves.
func (r *Resolver) updateDepthClamp() error {
	enabled := r.Mirror.Word(regs.OffDepthClampNear) != 0 || r.Mirror.Word(regs.OffDepthClampFar) != 0
	near := r.Mirror.Float(regs.OffDepthClampNear)
	far := r.Mirror.Float(regs.OffDepthClampFar)

	r.Host.Renderer.SetDepthClamp(enabled, near, far)
	return nil
}
