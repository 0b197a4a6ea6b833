package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updatePrimitiveRestart resolves primitive restart enable/index state.
// Some host topology families (point and line lists without strip
// adjacency) have no meaningful restart semantics; this layer still
// forwards the raw enable bit to the renderer and leaves host-family
// gating to the renderer implementation, which is the one that knows its
// own topology support matrix (spec.md §4.4 "Primitive Restart").
func (r *Resolver) updatePrimitiveRestart() error {
	enabled := r.Mirror.Bit(regs.OffPrimitiveRestartEnable, 0)
	index := r.Mirror.Word(regs.OffPrimitiveRestartIndex)

	r.Snapshot.PrimitiveRestartEnabled = enabled
	r.Host.Renderer.SetPrimitiveRestart(enabled, index)
	return nil
}
