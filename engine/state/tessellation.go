package state

import (
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// updateTessellation resolves patch control point count and domain mode,
// folding the domain into the specialization key since it changes which
// tessellation-evaluation entry point the shader cache must select.
func (r *Resolver) updateTessellation() error {
	points := int(r.Mirror.Bits(regs.OffTessPatchControlPoints, 0, 5))
	domain := r.Mirror.Bits(regs.OffTessDomainMode, 0, 1)

	r.Host.Renderer.SetTessellationPatchControlPoints(points)

	switch domain {
	case 1:
		r.Snapshot.ShaderKey.Tessellation = shaderkey.TessellationTriangles
	case 2:
		r.Snapshot.ShaderKey.Tessellation = shaderkey.TessellationQuads
	case 3:
		r.Snapshot.ShaderKey.Tessellation = shaderkey.TessellationIsolines
	default:
		r.Snapshot.ShaderKey.Tessellation = shaderkey.TessellationNone
	}
	return nil
}
