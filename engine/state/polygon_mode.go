package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updatePolygonMode resolves front/back fill mode. Hosts lacking native
// line/point polygon-fill modes are expected to emulate them at the
// renderer layer; this group only forwards the guest's requested fill kind
// per face.
func (r *Resolver) updatePolygonMode() error {
	front := r.Mirror.Bits(regs.OffPolygonModeFront, 0, 1) == 0
	back := r.Mirror.Bits(regs.OffPolygonModeBack, 0, 1) == 0

	r.Host.Renderer.SetPolygonMode(front, back)
	return nil
}
