package state

import (
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// fakeRenderer records every call so tests can assert on the resolved
// state without a real GPU backend.
type fakeRenderer struct {
	blendStates   map[int]host.BlendState
	cullMode      host.CullMode
	frontFace     host.FrontFace
	stencilFront  host.StencilFaceState
	stencilBack   host.StencilFaceState
	stencilEnable bool
	viewports     map[int]host.Viewport
	scissors      map[int]host.Scissor
	depthMode     shaderkey.DepthMode
	drawCalls     int
	drawIndexed   int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		blendStates: make(map[int]host.BlendState),
		viewports:   make(map[int]host.Viewport),
		scissors:    make(map[int]host.Scissor),
	}
}

func (f *fakeRenderer) SetBlendState(target int, state host.BlendState) { f.blendStates[target] = state }
func (f *fakeRenderer) SetBlendConstant(r, g, b, a float32)             {}
func (f *fakeRenderer) SetColorWriteMask(target int, mask uint8)        {}
func (f *fakeRenderer) SetCullMode(mode host.CullMode)                  { f.cullMode = mode }
func (f *fakeRenderer) SetFrontFace(face host.FrontFace)                { f.frontFace = face }
func (f *fakeRenderer) SetDepthTest(enabled bool, fn host.CompareFunc, writeEnabled bool) {}
func (f *fakeRenderer) SetDepthBias(enabled bool, constant, clamp, slope float32)         {}
func (f *fakeRenderer) SetDepthClamp(enabled bool, near, far float32)                     {}
func (f *fakeRenderer) SetStencilTest(enabled bool, front, back host.StencilFaceState) {
	f.stencilEnable = enabled
	f.stencilFront = front
	f.stencilBack = back
}
func (f *fakeRenderer) SetPrimitiveTopology(topology host.Topology)             {}
func (f *fakeRenderer) SetPolygonMode(frontFill, backFill bool)                {}
func (f *fakeRenderer) SetRasterizerDiscard(enabled bool)                      {}
func (f *fakeRenderer) SetLineWidth(width float32)                            {}
func (f *fakeRenderer) SetLogicOp(enabled bool, op host.LogicOp)               {}
func (f *fakeRenderer) SetMultisample(enabled bool, sampleCount uint32, alphaToCoverage bool) {}
func (f *fakeRenderer) SetPrimitiveRestart(enabled bool, index uint32)         {}
func (f *fakeRenderer) SetTessellationPatchControlPoints(count int)           {}
func (f *fakeRenderer) SetDepthMode(mode shaderkey.DepthMode)                  { f.depthMode = mode }
func (f *fakeRenderer) SetViewport(index int, v host.Viewport)                { f.viewports[index] = v }
func (f *fakeRenderer) SetScissor(index int, enabled bool, s host.Scissor)    { f.scissors[index] = s }
func (f *fakeRenderer) BeginTransformFeedback()                               {}
func (f *fakeRenderer) EndTransformFeedback()                                 {}
func (f *fakeRenderer) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) error {
	f.drawCalls++
	return nil
}
func (f *fakeRenderer) DrawIndexed(indexCount, instanceCount uint32, firstIndex, baseVertex int32, firstInstance uint32) error {
	f.drawIndexed++
	return nil
}

var _ host.Renderer = &fakeRenderer{}

type fakeBindingHandle struct{}

func (fakeBindingHandle) Release() {}

type fakeTextureManager struct {
	clipRegion  host.ClipRegion
	scale       float32
	colorSlots  map[int]host.ColorTargetDescriptor
	clearedSlot map[int]bool
}

func (f *fakeTextureManager) SetColorRenderTarget(slot int, desc host.ColorTargetDescriptor) {
	if f.colorSlots == nil {
		f.colorSlots = make(map[int]host.ColorTargetDescriptor)
	}
	f.colorSlots[slot] = desc
}
func (f *fakeTextureManager) ClearColorRenderTarget(slot int) {
	if f.clearedSlot == nil {
		f.clearedSlot = make(map[int]bool)
	}
	f.clearedSlot[slot] = true
}
func (f *fakeTextureManager) SetDepthRenderTarget(desc host.DepthTargetDescriptor)            {}
func (f *fakeTextureManager) ClearDepthRenderTarget()                                         {}
func (f *fakeTextureManager) SetClipRegion(region host.ClipRegion)                            { f.clipRegion = region }
func (f *fakeTextureManager) UpdateRenderTargetScale(scale float32)                           { f.scale = scale }
func (f *fakeTextureManager) SetTexturePool(base, maxIndex uint32)                            {}
func (f *fakeTextureManager) SetSamplerPool(base, maxIndex uint32)                            {}
func (f *fakeTextureManager) SetTextureBufferIndex(index uint32)                              {}
func (f *fakeTextureManager) RentTextureBindings(stage, count int) (host.BindingHandle, error) {
	return fakeBindingHandle{}, nil
}
func (f *fakeTextureManager) RentImageBindings(stage, count int) (host.BindingHandle, error) {
	return fakeBindingHandle{}, nil
}
func (f *fakeTextureManager) SetMaxBindings(stage int, textures, images int) {}
func (f *fakeTextureManager) CommitGraphicsBindings() error                 { return nil }

var _ host.TextureManager = &fakeTextureManager{}

type fakeBufferManager struct {
	vertexBuffers map[int]struct {
		size   uint64
		stride uint32
	}
}

func newFakeBufferManager() *fakeBufferManager {
	return &fakeBufferManager{vertexBuffers: make(map[int]struct {
		size   uint64
		stride uint32
	})}
}

func (f *fakeBufferManager) SetVertexBuffer(slot int, address, size uint64, stride, divisor uint32, instanced bool) {
	f.vertexBuffers[slot] = struct {
		size   uint64
		stride uint32
	}{size, stride}
}
func (f *fakeBufferManager) SetIndexBuffer(address, size uint64, format host.IndexFormat)   {}
func (f *fakeBufferManager) SetGraphicsStorageBuffer(stage, slot int, address, size uint64) {}
func (f *fakeBufferManager) SetGraphicsUniformBuffer(stage, slot int, address, size uint64) {}
func (f *fakeBufferManager) SetTransformFeedbackBuffer(slot int, address, size uint64)      {}
func (f *fakeBufferManager) SetGraphicsStorageBufferBindings(stage int, slots []int)        {}
func (f *fakeBufferManager) SetGraphicsUniformBufferBindings(stage int, slots []int)        {}
func (f *fakeBufferManager) CommitGraphicsBindings() error                                  { return nil }

var _ host.BufferManager = &fakeBufferManager{}

type fakeProgram struct {
	reflection  *reflect.Program
	clipWritten int
}

func (p *fakeProgram) Reflection() *reflect.Program   { return p.reflection }
func (p *fakeProgram) WritesRTLayer() bool            { return false }
func (p *fakeProgram) UsesInstanceID() bool           { return false }
func (p *fakeProgram) ClipDistancesWritten() int       { return p.clipWritten }

var _ host.Program = &fakeProgram{}

type fakeShaderCache struct {
	calls   int
	program *fakeProgram
}

func (c *fakeShaderCache) GetGraphicsShader(addresses [6]host.ShaderAddress, key shaderkey.Key, pool shaderkey.PoolKey) (host.Program, error) {
	c.calls++
	if c.program == nil {
		c.program = &fakeProgram{reflection: &reflect.Program{}}
	}
	return c.program, nil
}

var _ host.ShaderCache = &fakeShaderCache{}

func newTestCollaborators() (Collaborators, *fakeRenderer, *fakeBufferManager) {
	renderer := newFakeRenderer()
	bufferManager := newFakeBufferManager()
	return Collaborators{
		Renderer:       renderer,
		TextureManager: &fakeTextureManager{},
		BufferManager:  bufferManager,
		ShaderCache:    &fakeShaderCache{},
	}, renderer, bufferManager
}
