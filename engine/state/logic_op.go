package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateLogicOp resolves logic-op state. Logic ops and blending are
// mutually exclusive on most hosts; the renderer implementation decides
// precedence, this layer just forwards the raw guest state.
func (r *Resolver) updateLogicOp() error {
	enabled := r.Mirror.Bit(regs.OffLogicOpEnable, 0)
	op := host.LogicOp(r.Mirror.Bits(regs.OffLogicOpFunc, 0, 3))

	r.Host.Renderer.SetLogicOp(enabled, op)
	return nil
}
