package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateIndexBuffer resolves the index buffer binding. Transitioning
// between indexed and non-indexed draws is not itself represented by a
// dedicated register — it is inferred at draw time by the Draw Preamble
// from whether this group last saw a nonzero size (spec.md §4.3 step 5,
// §8 boundary scenario: indexed→non-indexed transition).
func (r *Resolver) updateIndexBuffer() error {
	size := uint64(r.Mirror.Word(regs.OffIndexBufferSize))
	format := indexFormatFromGuest(r.Mirror.Bits(regs.OffIndexBufferFormat, 0, 1))

	r.Snapshot.IndexBufferBound = size > 0
	r.Snapshot.IndexFormat = format

	if size == 0 {
		return nil
	}
	r.Host.BufferManager.SetIndexBuffer(0, size, format)
	return nil
}

func indexFormatFromGuest(code uint32) host.IndexFormat {
	switch code {
	case 0:
		return host.IndexFormatUint8
	case 1:
		return host.IndexFormatUint16
	default:
		return host.IndexFormatUint32
	}
}
