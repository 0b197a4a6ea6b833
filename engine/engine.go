// Package engine is the top-level facade: it wires a register mirror, dirty
// tracker and update-group resolver together behind the small set of
// entry points a guest command-stream processor actually needs to drive a
// draw (spec.md §1, §4.1). Everything underneath — regs, dirty, state,
// host, compiler — is plumbing this package assembles; callers only ever
// see Engine.
package engine

import (
	"github.com/nv3d/maxwell3d/engine/dirty"
	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/profiler"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/state"
)

// translatorEngine implements the Engine interface.
type translatorEngine struct {
	mirror   *regs.Mirror
	tracker  *dirty.Tracker
	resolver *state.Resolver

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine is the per-channel register-state translator. A guest 3D engine
// channel owns exactly one Engine; every register write the guest issues
// funnels through Write, and every draw the guest issues funnels through
// Draw.
type Engine interface {
	// Write stores a 32-bit value at the given register word offset and
	// marks the owning update group dirty.
	//
	// Parameters:
	//   - offset: the register word offset written
	//   - value: the raw value written
	Write(offset uint16, value uint32)

	// MarkDirty marks the update group owning offset as dirty without
	// performing a write, used when an external path (e.g. a DMA-triggered
	// state reload) needs to force re-resolution.
	//
	// Parameters:
	//   - offset: the register word offset whose owning group should be marked dirty
	MarkDirty(offset uint16)

	// MarkAllDirty marks every update group dirty, forcing a full
	// resolution on the next Update call. Used on context creation and
	// after any operation that invalidates the entire snapshot.
	MarkAllDirty()

	// Update resolves every update group currently marked dirty, in
	// ascending order, without issuing a draw.
	//
	// Returns:
	//   - error: the first update-group error encountered
	Update() error

	// UpdateAll resolves every update group unconditionally.
	//
	// Returns:
	//   - error: the first update-group error encountered
	UpdateAll() error

	// ForceShaderUpdate marks only the Shaders update group dirty, used
	// when the guest rebinds a shader program without otherwise touching
	// shader-stage registers (e.g. a driver-internal shader patch).
	ForceShaderUpdate()

	// UpdateRenderTargetState re-resolves the Render Targets update group
	// with the given permutation-map parameters, used when the guest
	// reconfigures render target binding mode outside the ordinary
	// register-write path.
	//
	// Parameters:
	//   - useControl: whether the guest's render-target permutation map is active
	//   - layered: stored in the render-target layer register; the Render
	//     Targets group takes layering from the bound program's
	//     WritesRTLayer instead, so this value does not change what is bound
	//   - singleUse: whether only a single render target slot is bound
	UpdateRenderTargetState(useControl, layered, singleUse bool) error

	// Draw runs the full draw preamble (resolve dirty state, commit
	// bindings, issue the draw). The draw is issued as indexed when the
	// Index Buffer group last saw a nonzero index buffer size, and as
	// non-indexed otherwise.
	//
	// Parameters:
	//   - args: the draw call's own parameters
	//
	// Returns:
	//   - error: the first error encountered resolving state, committing, or drawing
	Draw(args state.DrawArgs) error

	// EnableProfiler enables per-draw timing output to the log.
	EnableProfiler()

	// DisableProfiler disables per-draw timing output.
	DisableProfiler()
}

var _ Engine = &translatorEngine{}

// NewEngine constructs an Engine around the given host collaborators. Every
// update group starts dirty so the first Draw call fully resolves state.
//
// Parameters:
//   - collaborators: the host renderer, texture manager, buffer manager and shader cache
//   - options: functional options configuring profiling, etc.
//
// Returns:
//   - Engine: a ready-to-use per-channel translator
func NewEngine(collaborators state.Collaborators, options ...EngineBuilderOption) Engine {
	mirror := regs.NewMirror()
	tracker := dirty.NewTracker()
	mirror.SetWriteHook(tracker.SetDirty)

	e := &translatorEngine{
		mirror:   mirror,
		tracker:  tracker,
		resolver: state.NewResolver(mirror, collaborators),
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *translatorEngine) Write(offset uint16, value uint32) {
	e.mirror.Write(offset, value)
}

func (e *translatorEngine) MarkDirty(offset uint16) {
	e.tracker.SetDirty(offset)
}

func (e *translatorEngine) MarkAllDirty() {
	e.tracker.SetAllDirty()
}

func (e *translatorEngine) Update() error {
	e.resolver.SetTracker(e.tracker)
	return e.resolver.Update(e.tracker.Take())
}

func (e *translatorEngine) UpdateAll() error {
	e.resolver.SetTracker(e.tracker)
	return e.resolver.UpdateAll()
}

func (e *translatorEngine) ForceShaderUpdate() {
	e.tracker.ForceDirty(dirty.GroupShader)
}

func (e *translatorEngine) UpdateRenderTargetState(useControl, layered, singleUse bool) error {
	e.mirror.Write(regs.OffRTControlUseCtl, boolToWord(useControl))
	e.mirror.Write(regs.OffRTControlLayer, boolToWord(layered))
	if singleUse {
		e.mirror.Write(regs.OffRTControlCount, 1)
	}
	e.resolver.SetTracker(e.tracker)
	return e.resolver.Update(e.tracker.Take())
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (e *translatorEngine) Draw(args state.DrawArgs) error {
	if e.profilingEnabled {
		stop := e.profiler.Begin("draw")
		defer stop()
	}
	if err := state.RunDrawPreamble(e.resolver, e.tracker, args); err != nil {
		glog.Logger().Warn("draw preamble failed", "error", err)
		return err
	}
	return nil
}

func (e *translatorEngine) EnableProfiler()  { e.profilingEnabled = true }
func (e *translatorEngine) DisableProfiler() { e.profilingEnabled = false }
