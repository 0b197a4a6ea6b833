package state

import (
	"math"
	"testing"

	"github.com/nv3d/maxwell3d/engine/host"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/shaderkey"
)

func newTestResolver() (*Resolver, *fakeRenderer, *fakeBufferManager) {
	mirror := regs.NewMirror()
	collaborators, renderer, bufferManager := newTestCollaborators()
	return NewResolver(mirror, collaborators), renderer, bufferManager
}

func TestUpdateFace_IdempotentAcrossRepeatedCalls(t *testing.T) {
	r, renderer, _ := newTestResolver()
	r.Mirror.Write(regs.OffFaceFlipY, 1)
	r.Mirror.Write(regs.OffFaceFrontFace, uint32(host.FrontFaceCCW))

	if err := r.updateFace(); err != nil {
		t.Fatalf("updateFace: %v", err)
	}
	first := renderer.frontFace

	if err := r.updateFace(); err != nil {
		t.Fatalf("updateFace (second call): %v", err)
	}
	second := renderer.frontFace

	if first != second {
		t.Errorf("front face resolution not idempotent: first=%v second=%v", first, second)
	}
	if first != host.FrontFaceCW {
		t.Errorf("expected Y-flip to invert CCW to CW, got %v", first)
	}
}

func TestUpdateStencil_OneSidedReplicatesFrontToBack(t *testing.T) {
	r, renderer, _ := newTestResolver()
	r.Mirror.Write(regs.OffStencilTwoSided, 0)
	r.Mirror.Write(regs.OffStencilFrontBase+regs.StencilOffEnable, 1)
	r.Mirror.Write(regs.OffStencilFrontBase+regs.StencilOffFunc, uint32(host.CompareAlways))
	r.Mirror.Write(regs.OffStencilFrontBase+regs.StencilOffRef, 7)

	if err := r.updateStencil(); err != nil {
		t.Fatalf("updateStencil: %v", err)
	}

	if renderer.stencilBack != renderer.stencilFront {
		t.Errorf("one-sided stencil: back = %+v, want front %+v", renderer.stencilBack, renderer.stencilFront)
	}
	if renderer.stencilFront.Ref != 7 {
		t.Errorf("stencilFront.Ref = %d, want 7", renderer.stencilFront.Ref)
	}
}

func TestUpdateViewport_AppliesRenderTargetScale(t *testing.T) {
	r, renderer, _ := newTestResolver()
	r.Snapshot.RenderTargetScale = 2.0
	r.Mirror.Write(regs.OffViewportExtentBase+regs.ExtentOffWidth, floatBits(640))
	r.Mirror.Write(regs.OffViewportExtentBase+regs.ExtentOffHeight, floatBits(480))
	r.Mirror.Write(regs.OffViewportExtentBase+regs.ExtentOffDepthMax, floatBits(1))

	if err := r.updateViewport(); err != nil {
		t.Fatalf("updateViewport: %v", err)
	}

	vp := renderer.viewports[0]
	if vp.Width != 1280 || vp.Height != 960 {
		t.Errorf("scaled viewport = %+v, want 1280x960", vp)
	}
}

func TestUpdateScissor_YFlipInvertsRange(t *testing.T) {
	r, renderer, _ := newTestResolver()
	r.Snapshot.ViewportYFlip = true
	r.Snapshot.ClipRegion = host.ClipRegion{Width: 640, Height: 480}
	r.Snapshot.RenderTargetScale = 1.0

	off := regs.OffScissorBase
	r.Mirror.Write(off+regs.ScissorOffEnable, 1)
	r.Mirror.Write(off+regs.ScissorOffXRange, packRange(0, 100))
	r.Mirror.Write(off+regs.ScissorOffYRange, packRange(50, 150))

	if err := r.updateScissor(); err != nil {
		t.Fatalf("updateScissor: %v", err)
	}

	got := renderer.scissors[0]
	wantY := int32(480 - 150)
	wantHeight := int32(150 - 50)
	if got.Y != wantY || got.Height != wantHeight {
		t.Errorf("flipped scissor = %+v, want Y=%d Height=%d", got, wantY, wantHeight)
	}
}

func TestUpdateVertexBuffers_ClampsToIndexedDrawReach(t *testing.T) {
	r, _, bufferManager := newTestResolver()
	base := regs.OffVertexBufferBase
	const stride = uint32(32)
	r.Mirror.Write(base+regs.VBOffConfig, 1|(stride<<1))
	r.Mirror.Write(base+regs.VBOffSize, 1<<30)

	r.Snapshot.IndexBufferBound = true
	r.Snapshot.IndexFormat = host.IndexFormatUint16
	r.Draw = DrawArgs{BaseVertex: 4}

	if err := r.updateVertexBuffers(); err != nil {
		t.Fatalf("updateVertexBuffers: %v", err)
	}

	const want = uint64((1<<16 + 4) * stride)
	vb := bufferManager.vertexBuffers[0]
	if vb.size != want {
		t.Errorf("clamped vertex buffer size = %d, want %d", vb.size, want)
	}
}

func TestUpdateVertexBuffers_DisabledSlotClearsBinding(t *testing.T) {
	r, _, bufferManager := newTestResolver()

	if err := r.updateVertexBuffers(); err != nil {
		t.Fatalf("updateVertexBuffers: %v", err)
	}

	vb, ok := bufferManager.vertexBuffers[0]
	if !ok {
		t.Fatalf("disabled slot 0 was never bound, want an explicit clear")
	}
	if vb.size != 0 {
		t.Errorf("disabled slot 0 size = %d, want 0", vb.size)
	}
}

func TestUpdateIndexBuffer_TransitionToNonIndexed(t *testing.T) {
	r, _, _ := newTestResolver()
	r.Mirror.Write(regs.OffIndexBufferSize, 1024)
	if err := r.updateIndexBuffer(); err != nil {
		t.Fatalf("updateIndexBuffer: %v", err)
	}
	if !r.Snapshot.IndexBufferBound {
		t.Fatalf("expected IndexBufferBound=true")
	}

	r.Mirror.Write(regs.OffIndexBufferSize, 0)
	if err := r.updateIndexBuffer(); err != nil {
		t.Fatalf("updateIndexBuffer (second): %v", err)
	}
	if r.Snapshot.IndexBufferBound {
		t.Errorf("expected IndexBufferBound=false after size drops to 0")
	}
}

func TestUpdateRenderTargets_PermutationShiftsPerSlot(t *testing.T) {
	r, _, _ := newTestResolver()
	r.Mirror.Write(regs.OffRTControlCount, 2)
	// useControl bit set, slot 1's nibble (bits 4-7) maps to register slot 3.
	r.Mirror.Write(regs.OffRTControlUseCtl, 1|(3<<4))

	off := regs.OffRTColorBase + 3*regs.RTColorStride
	r.Mirror.Write(off+regs.RTColorOffWidth, 800)
	r.Mirror.Write(off+regs.RTColorOffHeight, 600)

	textureManager := r.Host.TextureManager.(*fakeTextureManager)
	if err := r.updateRenderTargets(); err != nil {
		t.Fatalf("updateRenderTargets: %v", err)
	}

	desc, ok := textureManager.colorSlots[1]
	if !ok {
		t.Fatalf("host slot 1 was never bound")
	}
	if desc.Width != 800 || desc.Height != 600 {
		t.Errorf("permuted slot 1 = %+v, want 800x600 (mapped from register slot 3)", desc)
	}
}

func TestUpdateRenderTargets_OverCountSlotsClearedEvenWithUseControl(t *testing.T) {
	r, _, _ := newTestResolver()
	r.Mirror.Write(regs.OffRTControlCount, 1)
	r.Mirror.Write(regs.OffRTControlUseCtl, 1)

	textureManager := r.Host.TextureManager.(*fakeTextureManager)
	if err := r.updateRenderTargets(); err != nil {
		t.Fatalf("updateRenderTargets: %v", err)
	}

	if !textureManager.clearedSlot[1] {
		t.Errorf("slot 1 (>= count) was not cleared despite useControl being set")
	}
}

func TestInferDepthMode_NegOneToOneWhenNearAndFarDifferFromTranslate(t *testing.T) {
	r, _, _ := newTestResolver()
	r.Mirror.Write(regs.OffViewportExtentBase+regs.ExtentOffDepthMin, floatBits(0.0))
	r.Mirror.Write(regs.OffViewportExtentBase+regs.ExtentOffDepthMax, floatBits(1.0))
	r.Mirror.Write(regs.OffViewportBase+regs.ViewportOffTransZ, floatBits(0.5))

	if got := r.inferDepthMode(); got != shaderkey.DepthModeNegOneToOne {
		t.Errorf("inferDepthMode = %v, want DepthModeNegOneToOne", got)
	}
}

func TestUpdateShaders_VertexStageAlwaysIncludedWhenDisabled(t *testing.T) {
	r, _, _ := newTestResolver()
	shaderCache := r.Host.ShaderCache.(*fakeShaderCache)

	off := regs.OffShaderStageBase + 1*regs.ShaderStageStride
	r.Mirror.Write(off+regs.ShaderOffAddress, 0x2000)
	// Stage 1's enable bit is left clear.

	if err := r.updateShaders(); err != nil {
		t.Fatalf("updateShaders: %v", err)
	}
	if shaderCache.calls != 1 {
		t.Fatalf("shader cache calls = %d, want 1", shaderCache.calls)
	}
	if r.Snapshot.ShaderAddresses[1] != host.ShaderAddress(0x2000) {
		t.Errorf("vertex stage address = %#x, want 0x2000 even with its enable bit clear", r.Snapshot.ShaderAddresses[1])
	}
}

func floatBits(f float32) uint32 {
	return math.Float32bits(f)
}

func packRange(lo, hi uint32) uint32 {
	return (lo & 0xFFFF) | ((hi & 0xFFFF) << 16)
}
