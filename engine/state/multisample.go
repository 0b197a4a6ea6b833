package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateMultisample resolves MSAA enable, sample count and
// alpha-to-coverage. The enable flag and alpha-to-coverage are folded into
// the specialization key since they change whether the fragment shader
// needs to emit per-sample coverage; the sample count is only forwarded to
// the renderer.
func (r *Resolver) updateMultisample() error {
	enabled := r.Mirror.Bit(regs.OffMultisampleEnable, 0)
	sampleCount := r.Mirror.Word(regs.OffMultisampleSampleCount)
	alphaToCoverage := r.Mirror.Bit(regs.OffAlphaToCoverageEnable, 0)

	if sampleCount == 0 {
		sampleCount = 1
	}

	r.Snapshot.ShaderKey.MultisampleEnabled = enabled
	r.Snapshot.ShaderKey.AlphaToCoverage = alphaToCoverage
	r.Host.Renderer.SetMultisample(enabled, sampleCount, alphaToCoverage)
	return nil
}
