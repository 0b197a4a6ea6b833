package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateLine resolves line rasterization width. The line smoothing register
// is neither read nor forwarded — hosts without native smooth-line support
// approximate it via MSAA, which is covered by the Multisample group.
func (r *Resolver) updateLine() error {
	width := r.Mirror.Float(regs.OffLineWidth)
	if width <= 0 {
		width = 1.0
	}
	r.Host.Renderer.SetLineWidth(width)
	return nil
}
