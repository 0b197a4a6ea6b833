package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateTextureBufferIndex resolves the guest's texture-buffer-object
// binding index. It exists as its own update group independently
// of the texture/sampler pool groups because the guest can rebind it
// without touching either pool.
func (r *Resolver) updateTextureBufferIndex() error {
	index := r.Mirror.Word(regs.OffTextureBufferIndex)

	r.Snapshot.PoolKey.TextureBufferIndex = index
	r.Host.TextureManager.SetTextureBufferIndex(index)
	return nil
}
