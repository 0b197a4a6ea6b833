// Package reflect describes the resource bindings a compiled shader stage
// expects — which constant buffers, storage buffers, textures and images it
// reads, plus the feature flags the draw preamble needs to know about
// (spec.md §4.4 "Shaders", §4.5 "Commit"). It is a pure data package: the
// actual parsing of a shader's binary into this shape is the shader
// compiler's job (engine/compiler), not this package's.
//
// This mirrors the shape of the teacher's shader.Shader reflection surface
// (BindGroupLayoutDescriptors / BindGroupVarNames) without the WGSL source
// parsing, since shader-source translation is out of scope here — the
// guest shaders are opaque binaries the host shader cache compiles.
package reflect

// ResourceKind distinguishes the binding types a stage reflection can
// report.
type ResourceKind uint8

const (
	ResourceConstantBuffer ResourceKind = iota
	ResourceStorageBuffer
	ResourceTexture
	ResourceImage
)

// Binding is a single resolved resource slot within a stage's reflection.
type Binding struct {
	Kind ResourceKind
	// Slot is the guest-visible binding slot (constant buffer index,
	// storage buffer index, texture/image unit).
	Slot uint32
	// Name is the binding's debug name as reported by the shader compiler,
	// used only for logging.
	Name string
}

// Stage is the reflection data for a single programmable shader stage.
type Stage struct {
	ConstantBuffers []Binding
	StorageBuffers  []Binding
	Textures        []Binding
	Images          []Binding

	// WritesRTLayer reports whether this stage writes gl_Layer / the
	// SV_RenderTargetArrayIndex equivalent, which determines whether layered
	// rendering needs a geometry-stage passthrough on hosts that lack native
	// vertex-shader layer output.
	WritesRTLayer bool
	// UsesInstanceID reports whether the stage consumes the instance index,
	// which the host renderer must supply via SV_InstanceID / instance_index
	// regardless of whether the draw is actually instanced.
	UsesInstanceID bool
	// ClipDistancesWritten is the number of user clip distances this stage
	// writes, used to validate against the User Clip update group's enabled
	// mask (spec.md §4.4 "Shaders": a clip-distance-count change re-runs the
	// User Clip updater).
	ClipDistancesWritten int
}

// Program is the full per-draw reflection across every enabled shader
// stage, keyed by stage index (stage 1 is the vertex stage, see
// regs.ShaderStageCount).
type Program struct {
	Stages [6]Stage
	// Enabled marks which of the 6 stages actually participate in this
	// program; a disabled stage's Stage value is zero and must not be
	// inspected.
	Enabled [6]bool
}

// ConstantBufferCount returns the number of constant buffers bound across
// every enabled stage.
func (p *Program) ConstantBufferCount() int {
	n := 0
	for i, enabled := range p.Enabled {
		if enabled {
			n += len(p.Stages[i].ConstantBuffers)
		}
	}
	return n
}
