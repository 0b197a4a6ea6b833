package state

import (
	"log/slog"

	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/regs"
)

// graphicsCB0Base is the fixed offset storage-buffer binding window every
// stage's storage buffers are materialized at: cb0_base + 0x110 +
// stage*0x100 + slot*0x10 (spec.md §4.4 "Shaders", §4.5 "Commit").
const graphicsCB0Base = regs.OffGraphicsCB0Base

// storageBufferOffset computes the fixed-offset storage buffer address for
// a given stage and slot, per the formula every guest driver targeting this
// engine relies on.
func storageBufferOffset(stage, slot int) uint64 {
	return uint64(graphicsCB0Base) + 0x110 + uint64(stage)*0x100 + uint64(slot)*0x10
}

// Commit materializes the current snapshot's resource bindings on the host
// (spec.md §4.5): rent texture/image bindings sized to the compiled
// program's reflection, bind storage buffers at their fixed offsets, then
// commit both the texture and buffer managers. If committing fails — most
// commonly because the shader cache handed back a program whose reflection
// no longer matches the currently bound pool state — Commit re-resolves the
// Shaders group once and retries before giving up, matching the recoverable
// shader-cache-incompatibility class of error (spec.md §7 class 2).
func (r *Resolver) Commit() error {
	if err := r.commitOnce(); err != nil {
		glog.Logger().Warn("graphics binding commit failed, retrying after shader re-resolution",
			slog.String("error", err.Error()))
		if retryErr := r.updateShaders(); retryErr != nil {
			return retryErr
		}
		if err := r.commitOnce(); err != nil {
			glog.Logger().Warn("graphics binding commit failed again after retry, giving up",
				slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

func (r *Resolver) commitOnce() error {
	reflection := r.Snapshot.Reflection
	if reflection == nil {
		return nil
	}

	for stage := 0; stage < regs.ShaderStageCount; stage++ {
		if !reflection.Enabled[stage] {
			continue
		}
		stageReflection := reflection.Stages[stage]

		if len(stageReflection.Textures) > 0 {
			handle, err := r.Host.TextureManager.RentTextureBindings(stage, len(stageReflection.Textures))
			if err != nil {
				return err
			}
			defer handle.Release()
		}
		if len(stageReflection.Images) > 0 {
			handle, err := r.Host.TextureManager.RentImageBindings(stage, len(stageReflection.Images))
			if err != nil {
				return err
			}
			defer handle.Release()
		}

		slots := make([]int, 0, len(stageReflection.StorageBuffers))
		for _, binding := range stageReflection.StorageBuffers {
			slot := int(binding.Slot)
			slots = append(slots, slot)
			r.Host.BufferManager.SetGraphicsStorageBuffer(stage, slot, storageBufferOffset(stage, slot), 0)
		}
		if len(slots) > 0 {
			r.Host.BufferManager.SetGraphicsStorageBufferBindings(stage, slots)
		}

		uniformSlots := make([]int, 0, len(stageReflection.ConstantBuffers))
		for _, binding := range stageReflection.ConstantBuffers {
			uniformSlots = append(uniformSlots, int(binding.Slot))
		}
		if len(uniformSlots) > 0 {
			r.Host.BufferManager.SetGraphicsUniformBufferBindings(stage, uniformSlots)
		}
	}

	if err := r.Host.TextureManager.CommitGraphicsBindings(); err != nil {
		return err
	}
	return r.Host.BufferManager.CommitGraphicsBindings()
}
