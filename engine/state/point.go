package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updatePoint resolves point size and program-point-size mode. Both feed
// the specialization key because point-sprite rasterization needs a
// different vertex shader output path than the fixed function equivalent
// on hosts without native point-size control.
func (r *Resolver) updatePoint() error {
	size := r.Mirror.Float(regs.OffPointSize)
	programPointSize := r.Mirror.Bit(regs.OffProgramPointSize, 0)

	r.Snapshot.ShaderKey.PointSize = size
	r.Snapshot.ShaderKey.ProgramPointSize = programPointSize
	return nil
}
