// Command devshell is a small manual exercise harness for the translator:
// it wires an Engine against logging stand-ins for the four host
// collaborators, pushes a handful of register writes through it and drives
// one synthetic draw, the way the teacher's examples/*.go programs wire a
// renderer and call into a window. Passing -interactive additionally opens
// a real window and bootstraps a real WebGPU device/surface so window
// resize events can be observed driving UpdateRenderTargetState, without
// building the host-API pipeline-object plumbing spec.md's Non-goals place
// out of scope.
package main

import (
	"log/slog"

	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/reflect"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

// loggingRenderer logs every fixed-function state change and draw call
// instead of touching a real device, so the demo runs without a GPU.
type loggingRenderer struct {
	draws int
}

func (r *loggingRenderer) SetBlendState(target int, state host.BlendState) {
	glog.Logger().Debug("SetBlendState", slog.Int("target", target), slog.Bool("enabled", state.Enabled))
}
func (r *loggingRenderer) SetBlendConstant(red, green, blue, alpha float32) {}
func (r *loggingRenderer) SetColorWriteMask(target int, mask uint8)       {}
func (r *loggingRenderer) SetCullMode(mode host.CullMode)                 {}
func (r *loggingRenderer) SetFrontFace(face host.FrontFace)               {}
func (r *loggingRenderer) SetDepthTest(enabled bool, fn host.CompareFunc, writeEnabled bool) {
	glog.Logger().Debug("SetDepthTest", slog.Bool("enabled", enabled))
}
func (r *loggingRenderer) SetDepthBias(enabled bool, constant, clamp, slope float32)       {}
func (r *loggingRenderer) SetDepthClamp(enabled bool, near, far float32)                   {}
func (r *loggingRenderer) SetStencilTest(enabled bool, front, back host.StencilFaceState)  {}
func (r *loggingRenderer) SetPrimitiveTopology(topology host.Topology)                     {}
func (r *loggingRenderer) SetPolygonMode(frontFill, backFill bool)                         {}
func (r *loggingRenderer) SetRasterizerDiscard(enabled bool)                               {}
func (r *loggingRenderer) SetLineWidth(width float32)                                      {}
func (r *loggingRenderer) SetLogicOp(enabled bool, op host.LogicOp)                         {}
func (r *loggingRenderer) SetMultisample(enabled bool, sampleCount uint32, a2c bool)        {}
func (r *loggingRenderer) SetPrimitiveRestart(enabled bool, index uint32)                   {}
func (r *loggingRenderer) SetTessellationPatchControlPoints(count int)                      {}
func (r *loggingRenderer) SetDepthMode(mode shaderkey.DepthMode) {
	glog.Logger().Debug("SetDepthMode", slog.Int("mode", int(mode)))
}

func (r *loggingRenderer) SetViewport(index int, v host.Viewport) {
	glog.Logger().Debug("SetViewport", slog.Int("index", index), slog.Float64("width", float64(v.Width)), slog.Float64("height", float64(v.Height)))
}
func (r *loggingRenderer) SetScissor(index int, enabled bool, s host.Scissor) {
	glog.Logger().Debug("SetScissor", slog.Int("index", index), slog.Bool("enabled", enabled))
}

func (r *loggingRenderer) BeginTransformFeedback() {}
func (r *loggingRenderer) EndTransformFeedback()   {}

func (r *loggingRenderer) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) error {
	r.draws++
	glog.Logger().Info("Draw", slog.Int("count", r.draws), slog.Uint64("vertexCount", uint64(vertexCount)))
	return nil
}

func (r *loggingRenderer) DrawIndexed(indexCount, instanceCount uint32, firstIndex int32, baseVertex int32, firstInstance uint32) error {
	r.draws++
	glog.Logger().Info("DrawIndexed", slog.Int("count", r.draws), slog.Uint64("indexCount", uint64(indexCount)))
	return nil
}

var _ host.Renderer = &loggingRenderer{}

type releaseLoggingHandle struct{}

func (releaseLoggingHandle) Release() {}

// loggingTextureManager logs render-target and binding-pool changes.
type loggingTextureManager struct{}

func (loggingTextureManager) SetColorRenderTarget(slot int, desc host.ColorTargetDescriptor) {
	glog.Logger().Info("SetColorRenderTarget", slog.Int("slot", slot), slog.Uint64("width", uint64(desc.Width)), slog.Uint64("height", uint64(desc.Height)))
}
func (loggingTextureManager) ClearColorRenderTarget(slot int)                      {}
func (loggingTextureManager) SetDepthRenderTarget(desc host.DepthTargetDescriptor) {}
func (loggingTextureManager) ClearDepthRenderTarget()                             {}
func (loggingTextureManager) SetClipRegion(region host.ClipRegion) {
	glog.Logger().Debug("SetClipRegion", slog.Uint64("width", uint64(region.Width)), slog.Uint64("height", uint64(region.Height)))
}
func (loggingTextureManager) UpdateRenderTargetScale(scale float32) {
	glog.Logger().Info("UpdateRenderTargetScale", slog.Float64("scale", float64(scale)))
}
func (loggingTextureManager) SetTexturePool(base, maxIndex uint32)                {}
func (loggingTextureManager) SetSamplerPool(base, maxIndex uint32)                {}
func (loggingTextureManager) SetTextureBufferIndex(index uint32)                  {}
func (loggingTextureManager) RentTextureBindings(stage, count int) (host.BindingHandle, error) {
	return releaseLoggingHandle{}, nil
}
func (loggingTextureManager) RentImageBindings(stage, count int) (host.BindingHandle, error) {
	return releaseLoggingHandle{}, nil
}
func (loggingTextureManager) SetMaxBindings(stage, textures, images int) {}
func (loggingTextureManager) CommitGraphicsBindings() error              { return nil }

var _ host.TextureManager = loggingTextureManager{}

// loggingBufferManager logs buffer bindings in place of touching GPU memory.
type loggingBufferManager struct{}

func (loggingBufferManager) SetVertexBuffer(slot int, address, size uint64, stride, divisor uint32, instanced bool) {
}
func (loggingBufferManager) SetIndexBuffer(address, size uint64, format host.IndexFormat) {}
func (loggingBufferManager) SetGraphicsStorageBuffer(stage, slot int, address, size uint64) {}
func (loggingBufferManager) SetGraphicsUniformBuffer(stage, slot int, address, size uint64) {}
func (loggingBufferManager) SetTransformFeedbackBuffer(slot int, address, size uint64)      {}
func (loggingBufferManager) SetGraphicsStorageBufferBindings(stage int, slots []int)        {}
func (loggingBufferManager) SetGraphicsUniformBufferBindings(stage int, slots []int)        {}
func (loggingBufferManager) CommitGraphicsBindings() error                                  { return nil }

var _ host.BufferManager = loggingBufferManager{}

// fixedProgram is the one shader program the demo ever resolves: no
// bindings, no clip distances, matching the bare register state the demo
// drives.
type fixedProgram struct {
	reflection reflect.Program
}

func (p *fixedProgram) Reflection() *reflect.Program { return &p.reflection }
func (p *fixedProgram) WritesRTLayer() bool          { return false }
func (p *fixedProgram) UsesInstanceID() bool         { return false }
func (p *fixedProgram) ClipDistancesWritten() int    { return 0 }

// loggingShaderCache always resolves to the same fixedProgram, logging each
// specialization it is asked for.
type loggingShaderCache struct {
	program *fixedProgram
}

func newLoggingShaderCache() *loggingShaderCache {
	return &loggingShaderCache{program: &fixedProgram{}}
}

func (c *loggingShaderCache) GetGraphicsShader(addresses [6]host.ShaderAddress, key shaderkey.Key, pool shaderkey.PoolKey) (host.Program, error) {
	glog.Logger().Debug("GetGraphicsShader", slog.Uint64("vertexAddress", uint64(addresses[1])), slog.String("topology", "fixed"))
	return c.program, nil
}

var _ host.ShaderCache = (*loggingShaderCache)(nil)
