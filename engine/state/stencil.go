package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateStencil resolves front and back stencil state. When the guest has
// not enabled two-sided stencil, the front-face configuration is replicated
// to the back face rather than leaving it at whatever the back-face
// registers happen to hold, since most guest drivers never bother to write
// the back-face registers in the one-sided case (spec.md §4.4 "Stencil",
// §8 boundary scenario: one-sided stencil replication).
func (r *Resolver) updateStencil() error {
	twoSided := r.Mirror.Bit(regs.OffStencilTwoSided, 0)

	front := r.readStencilFace(regs.OffStencilFrontBase)
	back := front
	if twoSided {
		back = r.readStencilFace(regs.OffStencilBackBase)
	}

	enabled := r.Mirror.Bit(regs.OffStencilFrontBase+regs.StencilOffEnable, 0)
	r.Host.Renderer.SetStencilTest(enabled, front, back)
	return nil
}

func (r *Resolver) readStencilFace(base uint16) host.StencilFaceState {
	return host.StencilFaceState{
		Func:      host.CompareFunc(r.Mirror.Bits(base+regs.StencilOffFunc, 0, 2)),
		Ref:       r.Mirror.Word(base + regs.StencilOffRef),
		ReadMask:  r.Mirror.Word(base + regs.StencilOffMask),
		WriteMask: r.Mirror.Word(base + regs.StencilOffWriteMask),
		Fail:      host.StencilOp(r.Mirror.Bits(base+regs.StencilOffFail, 0, 2)),
		DepthFail: host.StencilOp(r.Mirror.Bits(base+regs.StencilOffZFail, 0, 2)),
		Pass:      host.StencilOp(r.Mirror.Bits(base+regs.StencilOffPass, 0, 2)),
	}
}
