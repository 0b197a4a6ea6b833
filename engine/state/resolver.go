package state

import (
	"fmt"

	"github.com/nv3d/maxwell3d/engine/dirty"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// Collaborators bundles the host-side objects every update group is allowed
// to drive. A single struct (rather than four separate parameters on every
// function) keeps the per-group function signatures uniform.
type Collaborators struct {
	Renderer       host.Renderer
	TextureManager host.TextureManager
	BufferManager  host.BufferManager
	ShaderCache    host.ShaderCache
}

// Resolver runs update groups against a register mirror and snapshot,
// driving the host collaborators. It is the engine for the Draw Preamble
// and the per-offset Update entry points (spec.md §4.3, §4.4).
type Resolver struct {
	Mirror   *regs.Mirror
	Snapshot *Snapshot
	Host     Collaborators

	// tracker lets update groups (Render Targets and Shaders) force a
	// downstream group dirty as a side effect. Set via SetTracker.
	tracker *dirty.Tracker

	// Draw is the most recently issued draw call's own parameters. Update
	// groups that need to know whether the draw is indexed, or its vertex/
	// instance offsets (e.g. Vertex Buffer's reach clamp), read it here
	// rather than threading it through every updater's signature. It is
	// set once per draw by RunDrawPreamble and otherwise holds whatever
	// the last draw left behind.
	Draw DrawArgs
}

// NewResolver wires a fresh resolver around the given register mirror and
// host collaborators, with a snapshot at its identity defaults.
func NewResolver(mirror *regs.Mirror, collaborators Collaborators) *Resolver {
	return &Resolver{
		Mirror:   mirror,
		Snapshot: NewSnapshot(),
		Host:     collaborators,
	}
}

// groupUpdaters maps each update group to the function that applies it.
// Ascending GroupIndex order (dirty.Groups's contract) is what lets a group
// late in the table rely on an earlier group's snapshot fields already
// being current within the same pass.
var groupUpdaters = map[dirty.GroupIndex]func(*Resolver) error{
	dirty.GroupVertexBuffer:       (*Resolver).updateVertexBuffers,
	dirty.GroupVertexAttrib:       (*Resolver).updateVertexAttribs,
	dirty.GroupIndexBuffer:        (*Resolver).updateIndexBuffer,
	dirty.GroupPrimitiveRestart:   (*Resolver).updatePrimitiveRestart,
	dirty.GroupBlend:              (*Resolver).updateBlend,
	dirty.GroupColorMask:          (*Resolver).updateColorMask,
	dirty.GroupFace:               (*Resolver).updateFace,
	dirty.GroupStencil:            (*Resolver).updateStencil,
	dirty.GroupDepth:              (*Resolver).updateDepth,
	dirty.GroupDepthBias:          (*Resolver).updateDepthBias,
	dirty.GroupDepthClamp:         (*Resolver).updateDepthClamp,
	dirty.GroupTessellation:       (*Resolver).updateTessellation,
	dirty.GroupViewport:           (*Resolver).updateViewport,
	dirty.GroupScissor:            (*Resolver).updateScissor,
	dirty.GroupLogicOp:            (*Resolver).updateLogicOp,
	dirty.GroupPolygonMode:        (*Resolver).updatePolygonMode,
	dirty.GroupRasterizer:         (*Resolver).updateRasterizer,
	dirty.GroupLine:               (*Resolver).updateLine,
	dirty.GroupMultisample:        (*Resolver).updateMultisample,
	dirty.GroupPoint:              (*Resolver).updatePoint,
	dirty.GroupAlphaTest:          (*Resolver).updateAlphaTest,
	dirty.GroupUserClip:           (*Resolver).updateUserClip,
	dirty.GroupTransformFeedback:  (*Resolver).updateTransformFeedback,
	dirty.GroupSamplerPool:        (*Resolver).updateSamplerPool,
	dirty.GroupTexturePool:        (*Resolver).updateTexturePool,
	dirty.GroupTextureBufferIndex: (*Resolver).updateTextureBufferIndex,
	dirty.GroupShader:             (*Resolver).updateShaders,
	dirty.GroupRenderTargets:      (*Resolver).updateRenderTargets,
}

// Update runs every update group set in mask, in ascending order, and
// returns the first error encountered. A group's updater may call
// tracker.ForceDirty for a downstream group as a side effect (e.g. Render
// Targets forcing Viewport/Scissor on a scale change); the caller is
// expected to drain the tracker again after Update returns if it reports
// any newly-forced groups.
//
// Parameters:
//   - mask: the dirty groups to run, typically obtained from dirty.Tracker.Take
//
// Returns:
//   - error: the first update-group error encountered, wrapped with the group's index
func (r *Resolver) Update(mask uint64) error {
	for _, group := range dirty.Groups(mask) {
		fn, ok := groupUpdaters[group]
		if !ok {
			continue
		}
		if err := fn(r); err != nil {
			return fmt.Errorf("update group %d: %w", group, err)
		}
	}
	return nil
}

// UpdateAll runs every update group unconditionally, used on first draw and
// after a full state invalidation.
func (r *Resolver) UpdateAll() error {
	return r.Update(dirty.AllGroups)
}

