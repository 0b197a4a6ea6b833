package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateFace resolves culling and winding state. The guest's front-face
// convention is inverted relative to the host's whenever the Y-flip flag is
// set (e.g. rendering into an offscreen target with a flipped Y axis),
// since flipping Y also flips the apparent winding of every triangle
// (spec.md §4.4 "Face", §8 boundary scenario: idempotent front-face
// resolution must not double-invert across repeated calls with the same
// register state).
func (r *Resolver) updateFace() error {
	cullEnabled := r.Mirror.Bit(regs.OffFaceCullEnable, 0)
	cullMode := host.CullMode(r.Mirror.Bits(regs.OffFaceCullMode, 0, 1))
	guestFront := host.FrontFace(r.Mirror.Bits(regs.OffFaceFrontFace, 0, 0))
	flipY := r.Mirror.Bit(regs.OffFaceFlipY, 0) || r.Mirror.Bit(regs.OffYControlNegate, 0)

	resolved := guestFront
	if flipY {
		resolved = invertFrontFace(guestFront)
	}

	r.Snapshot.GuestFrontFace = guestFront
	r.Snapshot.ViewportYFlip = flipY
	r.Snapshot.FrontFace = resolved
	r.Snapshot.CullEnabled = cullEnabled

	r.Host.Renderer.SetCullMode(cullMode)
	r.Host.Renderer.SetFrontFace(resolved)
	return nil
}

func invertFrontFace(f host.FrontFace) host.FrontFace {
	if f == host.FrontFaceCCW {
		return host.FrontFaceCW
	}
	return host.FrontFaceCCW
}
