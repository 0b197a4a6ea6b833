package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateTexturePool resolves the active texture pool window.
func (r *Resolver) updateTexturePool() error {
	base := r.Mirror.Word(regs.OffTexturePoolBase)
	maxIndex := r.Mirror.Word(regs.OffTexturePoolMaxIndex)

	r.Snapshot.PoolKey.TexturePoolBase = base
	r.Snapshot.PoolKey.TexturePoolMaxIndex = maxIndex
	r.Host.TextureManager.SetTexturePool(base, maxIndex)
	return nil
}
