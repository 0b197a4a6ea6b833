package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateSamplerPool resolves the active sampler pool window, forwarded to
// the texture manager and recorded in the pool key the shader cache is
// queried against.
func (r *Resolver) updateSamplerPool() error {
	base := r.Mirror.Word(regs.OffSamplerPoolBase)
	maxIndex := r.Mirror.Word(regs.OffSamplerPoolMaxIndex)

	r.Snapshot.PoolKey.SamplerPoolBase = base
	r.Host.TextureManager.SetSamplerPool(base, maxIndex)
	return nil
}
