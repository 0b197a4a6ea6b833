package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateTransformFeedback resolves the 4 transform feedback buffer
// bindings. Begin/end of the transform feedback capture itself is a
// draw-preamble concern (spec.md §4.3), not something this group decides —
// it only keeps buffer bindings current.
func (r *Resolver) updateTransformFeedback() error {
	for slot := 0; slot < regs.TransformFeedbackBufferCount; slot++ {
		off := regs.OffTransformFeedbackBase + uint16(slot)*regs.TFStride
		size := uint64(r.Mirror.Word(off + regs.TFOffSize))
		if size == 0 {
			continue
		}
		r.Host.BufferManager.SetTransformFeedbackBuffer(slot, 0, size)
	}
	return nil
}
