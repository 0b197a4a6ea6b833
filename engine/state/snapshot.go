// Package state holds the Pipeline Snapshot — the translator's resolved,
// host-ready mirror of everything the register file currently describes —
// and the 28 update-group functions that keep each piece of it in sync with
// the dirty tracker (spec.md §4.2, §4.4). Snapshot fields exist purely to
// let one update group's result influence another's within the same pass
// (e.g. a render-target-scale change forcing Viewport and Scissor to
// re-run); nothing outside this package inspects them directly.
package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// Snapshot is the CPU-side picture of the state that the last completed
// update pass resolved. It is not a cache of GPU objects — that lives in
// the host implementation — it is the bookkeeping the updater functions
// need to detect cross-group side effects and to build the specialization
// key and pool key the shader cache is queried with.
type Snapshot struct {
	RenderTargetScale float32

	ClipRegion host.ClipRegion

	Viewports [16]host.Viewport
	Scissors  [16]struct {
		Enabled bool
		Rect    host.Scissor
	}

	IndexBufferBound bool
	IndexFormat      host.IndexFormat

	FrontFace       host.FrontFace
	CullEnabled     bool
	GuestFrontFace  host.FrontFace
	ViewportYFlip   bool

	DepthMode shaderkey.DepthMode

	UserClipEnableMask uint32

	ShaderAddresses [6]host.ShaderAddress
	ShaderKey       shaderkey.Key
	PoolKey         shaderkey.PoolKey
	Program         host.Program
	Reflection      *reflect.Program

	PrimitiveRestartEnabled bool
	PrimitiveTopology       shaderkey.PrimitiveTopology
}

// NewSnapshot returns a Snapshot seeded with the identity defaults a fresh
// engine should present before any update group has run.
func NewSnapshot() *Snapshot {
	s := &Snapshot{
		RenderTargetScale: 1.0,
		DepthMode:         shaderkey.DepthModeZeroToOne,
	}
	return s
}
