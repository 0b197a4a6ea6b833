package state

import (
	"github.com/nv3d/maxwell3d/engine/dirty"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// updateShaders collects the guest shader binary address for every enabled
// stage — stage 1, the vertex stage, is always collected regardless of its
// enable bit — queries the shader cache with the accumulated specialization key
// and pool key, and wires the resulting program's reflection data into the
// snapshot so Commit knows what to bind. If the compiled program's
// clip-distance-write count disagrees with the User Clip group's last seen
// enable mask, User Clip is forced to re-run; it re-reads the enable mask
// from the register file and does not forward anything to the renderer
// (spec.md §4.4 "Shaders").
func (r *Resolver) updateShaders() error {
	const vertexStage = 1

	var addresses [regs.ShaderStageCount]host.ShaderAddress
	for stage := 0; stage < regs.ShaderStageCount; stage++ {
		off := regs.OffShaderStageBase + uint16(stage)*regs.ShaderStageStride
		if stage != vertexStage && !r.Mirror.Bit(off+regs.ShaderOffEnable, 0) {
			continue
		}
		addr := uint64(r.Mirror.Word(off + regs.ShaderOffAddress))
		addresses[stage] = host.ShaderAddress(addr)
	}

	r.Snapshot.ShaderAddresses = addresses

	program, err := r.Host.ShaderCache.GetGraphicsShader(addresses, r.Snapshot.ShaderKey, r.Snapshot.PoolKey)
	if err != nil {
		return err
	}

	r.Snapshot.Program = program
	r.Snapshot.Reflection = program.Reflection()

	clipDistancesExpected := popcount32(r.Snapshot.UserClipEnableMask)
	if program.ClipDistancesWritten() != clipDistancesExpected && r.tracker != nil {
		r.tracker.ForceDirty(dirty.GroupUserClip)
	}

	return nil
}

func popcount32(v uint32) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
