package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateVertexBuffers resolves all 16 vertex buffer bindings. Each slot's
// declared size is clamped to the range the current draw can actually
// reach: an indexed, non-instanced draw with stride > 0 clamps to the
// largest index the bound index format can represent, offset by the
// draw's base vertex; a non-indexed, non-instanced draw with stride > 0
// clamps to first_instance+first_vertex+count. Every other combination
// uses the declared size unclamped (spec.md §4.4 "Vertex Buffer", §8
// boundary scenario #6).
func (r *Resolver) updateVertexBuffers() error {
	for slot := 0; slot < regs.VertexBufferCount; slot++ {
		base := regs.OffVertexBufferBase + uint16(slot)*regs.VertexBufferStride
		if !r.Mirror.Bit(base+regs.VBOffConfig, 0) {
			r.Host.BufferManager.SetVertexBuffer(slot, 0, 0, 0, 0, false)
			continue
		}

		stride := r.Mirror.Bits(base+regs.VBOffConfig, 1, 12)
		vbSize := uint64(r.Mirror.Word(base + regs.VBOffSize))
		divisor := r.Mirror.Bits(base+regs.VBOffDivisor, 0, 30)
		instanced := r.Mirror.Bit(base+regs.VBOffDivisor, 31)

		size := r.clampVertexBufferSize(vbSize, stride, instanced)
		r.Host.BufferManager.SetVertexBuffer(slot, 0, size, stride, divisor, instanced)
	}
	return nil
}

// clampVertexBufferSize applies the draw-reachability clamp described
// above. Instanced bindings and zero-stride bindings are never clamped:
// the per-instance stepping (or absence of a stride at all) makes the
// vertex-count-based reach meaningless.
func (r *Resolver) clampVertexBufferSize(vbSize uint64, stride uint32, instanced bool) uint64 {
	if instanced || stride == 0 {
		return vbSize
	}

	if r.Snapshot.IndexBufferBound {
		var indexLimit uint64
		switch r.Snapshot.IndexFormat {
		case host.IndexFormatUint8:
			indexLimit = 1 << 8
		case host.IndexFormatUint16:
			indexLimit = 1 << 16
		default:
			return vbSize
		}
		baseVertex := uint64(0)
		if r.Draw.BaseVertex > 0 {
			baseVertex = uint64(r.Draw.BaseVertex)
		}
		reach := (indexLimit + baseVertex) * uint64(stride)
		return min(vbSize, reach)
	}

	reach := (uint64(r.Draw.FirstInstance) + uint64(r.Draw.FirstVertex) + uint64(r.Draw.VertexCount)) * uint64(stride)
	return min(vbSize, reach)
}
