package host

// RenderTargetFormat mirrors the guest surface formats a color or depth
// render target can be created with.
type RenderTargetFormat uint8

const (
	FormatRGBA8Unorm RenderTargetFormat = iota
	FormatBGRA8Unorm
	FormatRGBA16Float
	FormatDepth24PlusStencil8
	FormatDepth32Float
)

// ColorTargetDescriptor describes one bound color render target.
type ColorTargetDescriptor struct {
	Width, Height uint32
	Format        RenderTargetFormat
	ArrayLayers   uint32
}

// DepthTargetDescriptor describes the bound depth/stencil render target.
type DepthTargetDescriptor struct {
	Width, Height uint32
	Format        RenderTargetFormat
}

// ClipRegion is the intersection of every active render target's bounds,
// computed by the Render Targets update group. Viewport uses it as the
// extent of a transform-disabled viewport; Scissor uses it as the extent of
// a disabled scissor and as the height Y-flipped scissors are mirrored
// against (spec.md §4.4 "Render Targets").
type ClipRegion struct {
	Width, Height uint32
}

// TextureManager owns render target, texture-pool and sampler-pool binding
// state on the host side (spec.md §6).
type TextureManager interface {
	SetColorRenderTarget(slot int, desc ColorTargetDescriptor)
	ClearColorRenderTarget(slot int)
	SetDepthRenderTarget(desc DepthTargetDescriptor)
	ClearDepthRenderTarget()
	SetClipRegion(region ClipRegion)
	UpdateRenderTargetScale(scale float32)

	SetTexturePool(base, maxIndex uint32)
	SetSamplerPool(base, maxIndex uint32)
	SetTextureBufferIndex(index uint32)

	// RentTextureBindings resolves count texture slots starting at the
	// shader's first expected binding, returning an opaque handle Commit
	// holds until the commit finishes and then releases. Mirrors the teacher's BindGroupProvider
	// texture-view lifecycle, minus material/game-object framing.
	RentTextureBindings(stage int, count int) (BindingHandle, error)
	RentImageBindings(stage int, count int) (BindingHandle, error)
	SetMaxBindings(stage int, textures, images int)

	CommitGraphicsBindings() error
}

// BindingHandle is an opaque reference to a batch of resolved resource
// bindings a host implementation owns; the translator never inspects it and
// only calls Release once Commit is done with it.
type BindingHandle interface {
	// Release returns the binding batch to the host implementation's pool.
	Release()
}
