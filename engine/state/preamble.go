package state

import (
	"github.com/nv3d/maxwell3d/engine/dirty"
)

// DrawArgs carries the guest-issued draw call's own parameters, as opposed
// to the fixed-function state the update groups resolve.
type DrawArgs struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32

	IndexCount uint32
	FirstIndex int32
	BaseVertex int32
}

// maxCascadePasses bounds how many times the preamble will drain
// newly-forced dirty groups before giving up. A single render-target-scale
// change cascades into at most two forced groups (Viewport, Scissor); this
// headroom exists only to guard against a future updater introducing a
// forcing cycle.
const maxCascadePasses = 4

// RunDrawPreamble executes the ordered per-draw sequence (spec.md §4.3):
// resolve every dirty update group, drain any groups those updates forced
// dirty as a side effect, materialize bindings via Commit, then issue the
// draw call the guest requested.
//
// Parameters:
//   - r: the resolver holding the current register mirror, snapshot and host collaborators
//   - tracker: the dirty tracker whose pending groups (and any forced during resolution) are drained
//   - args: the draw call's own parameters
//
// Returns:
//   - error: the first error encountered resolving state, committing bindings, or issuing the draw
func RunDrawPreamble(r *Resolver, tracker *dirty.Tracker, args DrawArgs) error {
	r.SetTracker(tracker)
	r.Draw = args

	for pass := 0; pass < maxCascadePasses; pass++ {
		mask := tracker.Take()
		if mask == 0 {
			break
		}
		if err := r.Update(mask); err != nil {
			return err
		}
	}

	if err := r.Commit(); err != nil {
		return err
	}

	if r.Snapshot.IndexBufferBound {
		return r.Host.Renderer.DrawIndexed(args.IndexCount, args.InstanceCount, args.FirstIndex, args.BaseVertex, args.FirstInstance)
	}
	return r.Host.Renderer.Draw(args.VertexCount, args.InstanceCount, args.FirstVertex, args.FirstInstance)
}
