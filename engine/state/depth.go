package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateDepth resolves the depth test triplet (enable, comparison function,
// write mask). This is one of the smallest update groups but still gets its
// own file since it corresponds to a single, independently-addressed
// register cluster the guest can dirty on its own (spec.md §4.4 "Depth").
func (r *Resolver) updateDepth() error {
	enabled := r.Mirror.Bit(regs.OffDepthTestEnable, 0)
	fn := host.CompareFunc(r.Mirror.Bits(regs.OffDepthTestFunc, 0, 2))
	writeEnabled := r.Mirror.Bit(regs.OffDepthWriteMask, 0)

	r.Host.Renderer.SetDepthTest(enabled, fn, writeEnabled)
	return nil
}
