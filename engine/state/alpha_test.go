package state

import (
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// updateAlphaTest resolves the legacy fixed-function alpha test. Hosts with
// no native alpha test emulate it with a fragment-shader discard, so enable
// state, comparison function and reference value all belong in the
// specialization key rather than being forwarded to the renderer directly.
func (r *Resolver) updateAlphaTest() error {
	enabled := r.Mirror.Bit(regs.OffAlphaTestEnable, 0)
	fn := shaderkey.AlphaTestFunc(r.Mirror.Bits(regs.OffAlphaTestFunc, 0, 2))
	ref := r.Mirror.Float(regs.OffAlphaTestRef)

	r.Snapshot.ShaderKey.AlphaTestEnabled = enabled
	r.Snapshot.ShaderKey.AlphaTestFunc = fn
	r.Snapshot.ShaderKey.AlphaTestRef = ref
	return nil
}
