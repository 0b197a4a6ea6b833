package engine

import (
	"testing"

	"github.com/nv3d/maxwell3d/engine/dirty"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
	"github.com/nv3d/maxwell3d/engine/state"
)

type noopRenderer struct{ draws int }

func (n *noopRenderer) SetBlendState(int, host.BlendState)                        {}
func (n *noopRenderer) SetBlendConstant(float32, float32, float32, float32)       {}
func (n *noopRenderer) SetColorWriteMask(int, uint8)                              {}
func (n *noopRenderer) SetCullMode(host.CullMode)                                 {}
func (n *noopRenderer) SetFrontFace(host.FrontFace)                              {}
func (n *noopRenderer) SetDepthTest(bool, host.CompareFunc, bool)                 {}
func (n *noopRenderer) SetDepthBias(bool, float32, float32, float32)              {}
func (n *noopRenderer) SetDepthClamp(bool, float32, float32)                      {}
func (n *noopRenderer) SetStencilTest(bool, host.StencilFaceState, host.StencilFaceState) {}
func (n *noopRenderer) SetPrimitiveTopology(host.Topology)                        {}
func (n *noopRenderer) SetPolygonMode(bool, bool)                                 {}
func (n *noopRenderer) SetRasterizerDiscard(bool)                                 {}
func (n *noopRenderer) SetLineWidth(float32)                                      {}
func (n *noopRenderer) SetLogicOp(bool, host.LogicOp)                             {}
func (n *noopRenderer) SetMultisample(bool, uint32, bool)                         {}
func (n *noopRenderer) SetPrimitiveRestart(bool, uint32)                          {}
func (n *noopRenderer) SetTessellationPatchControlPoints(int)                     {}
func (n *noopRenderer) SetDepthMode(shaderkey.DepthMode)                          {}
func (n *noopRenderer) SetViewport(int, host.Viewport)                           {}
func (n *noopRenderer) SetScissor(int, bool, host.Scissor)                       {}
func (n *noopRenderer) BeginTransformFeedback()                                   {}
func (n *noopRenderer) EndTransformFeedback()                                     {}
func (n *noopRenderer) Draw(uint32, uint32, uint32, uint32) error {
	n.draws++
	return nil
}
func (n *noopRenderer) DrawIndexed(uint32, uint32, int32, int32, uint32) error { return nil }

var _ host.Renderer = &noopRenderer{}

type noopBindingHandle struct{}

func (noopBindingHandle) Release() {}

type noopTextureManager struct{}

func (noopTextureManager) SetColorRenderTarget(int, host.ColorTargetDescriptor) {}
func (noopTextureManager) ClearColorRenderTarget(int)                          {}
func (noopTextureManager) SetDepthRenderTarget(host.DepthTargetDescriptor)     {}
func (noopTextureManager) ClearDepthRenderTarget()                            {}
func (noopTextureManager) SetClipRegion(host.ClipRegion)                      {}
func (noopTextureManager) UpdateRenderTargetScale(float32)                    {}
func (noopTextureManager) SetTexturePool(uint32, uint32)                      {}
func (noopTextureManager) SetSamplerPool(uint32, uint32)                      {}
func (noopTextureManager) SetTextureBufferIndex(uint32)                       {}
func (noopTextureManager) RentTextureBindings(int, int) (host.BindingHandle, error) {
	return noopBindingHandle{}, nil
}
func (noopTextureManager) RentImageBindings(int, int) (host.BindingHandle, error) {
	return noopBindingHandle{}, nil
}
func (noopTextureManager) SetMaxBindings(int, int, int) {}
func (noopTextureManager) CommitGraphicsBindings() error { return nil }

var _ host.TextureManager = noopTextureManager{}

type noopBufferManager struct{}

func (noopBufferManager) SetVertexBuffer(int, uint64, uint64, uint32, uint32, bool) {}
func (noopBufferManager) SetIndexBuffer(uint64, uint64, host.IndexFormat)           {}
func (noopBufferManager) SetGraphicsStorageBuffer(int, int, uint64, uint64)         {}
func (noopBufferManager) SetGraphicsUniformBuffer(int, int, uint64, uint64)         {}
func (noopBufferManager) SetTransformFeedbackBuffer(int, uint64, uint64)            {}
func (noopBufferManager) SetGraphicsStorageBufferBindings(int, []int)               {}
func (noopBufferManager) SetGraphicsUniformBufferBindings(int, []int)               {}
func (noopBufferManager) CommitGraphicsBindings() error                             { return nil }

var _ host.BufferManager = noopBufferManager{}

type noopProgram struct{ reflection reflect.Program }

func (p *noopProgram) Reflection() *reflect.Program { return &p.reflection }
func (p *noopProgram) WritesRTLayer() bool          { return false }
func (p *noopProgram) UsesInstanceID() bool         { return false }
func (p *noopProgram) ClipDistancesWritten() int    { return 0 }

type noopShaderCache struct{}

func (noopShaderCache) GetGraphicsShader([6]host.ShaderAddress, shaderkey.Key, shaderkey.PoolKey) (host.Program, error) {
	return &noopProgram{}, nil
}

var _ host.ShaderCache = noopShaderCache{}

func newTestEngine() (Engine, *noopRenderer) {
	renderer := &noopRenderer{}
	e := NewEngine(state.Collaborators{
		Renderer:       renderer,
		TextureManager: noopTextureManager{},
		BufferManager:  noopBufferManager{},
		ShaderCache:    noopShaderCache{},
	})
	return e, renderer
}

func TestEngine_DrawRunsFullPreambleOnFirstCall(t *testing.T) {
	e, renderer := newTestEngine()

	if err := e.Draw(state.DrawArgs{VertexCount: 3, InstanceCount: 1}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if renderer.draws != 1 {
		t.Errorf("draws = %d, want 1", renderer.draws)
	}
}

func TestEngine_WriteMarksOnlyOwningGroupDirty(t *testing.T) {
	e, renderer := newTestEngine()

	if err := e.Draw(state.DrawArgs{}); err != nil {
		t.Fatalf("initial Draw: %v", err)
	}
	renderer.draws = 0

	e.Write(regs.OffDepthTestEnable, 1)
	if got, want := e.(*translatorEngine).tracker.Peek(), uint64(1)<<uint(dirty.GroupDepth); got != want {
		t.Errorf("dirty mask after single register write = %b, want only GroupDepth (%b)", got, want)
	}
	if err := e.Draw(state.DrawArgs{}); err != nil {
		t.Fatalf("second Draw: %v", err)
	}
	if renderer.draws != 1 {
		t.Errorf("draws after single register write = %d, want 1", renderer.draws)
	}
}

func TestEngine_ForceShaderUpdateMarksShaderGroupDirty(t *testing.T) {
	e, _ := newTestEngine()
	e.Draw(state.DrawArgs{})

	e.ForceShaderUpdate()
	if !e.(*translatorEngine).tracker.IsDirty(dirty.GroupShader) {
		t.Errorf("GroupShader not dirty after ForceShaderUpdate")
	}
	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
