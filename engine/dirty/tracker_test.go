package dirty

import (
	"testing"

	"github.com/nv3d/maxwell3d/engine/regs"
)

func TestNewTracker_StartsAllDirty(t *testing.T) {
	tr := NewTracker()
	if tr.Peek() != AllGroups {
		t.Errorf("Peek() = %b, want %b", tr.Peek(), AllGroups)
	}
}

func TestTracker_SetDirty_MapsOffsetToGroup(t *testing.T) {
	tr := &Tracker{}
	tr.SetDirty(regs.OffDepthTestEnable)

	if !tr.IsDirty(GroupDepth) {
		t.Errorf("GroupDepth not dirty after writing OffDepthTestEnable")
	}
	if tr.IsDirty(GroupBlend) {
		t.Errorf("GroupBlend unexpectedly dirty")
	}
}

func TestTracker_SetDirty_UnknownOffsetIgnored(t *testing.T) {
	tr := &Tracker{}
	tr.SetDirty(0x0001) // not claimed by any group range

	if tr.Peek() != 0 {
		t.Errorf("Peek() = %b, want 0 for unclaimed offset", tr.Peek())
	}
}

func TestTracker_Take_ClearsMask(t *testing.T) {
	tr := &Tracker{}
	tr.ForceDirty(GroupShader)

	mask := tr.Take()
	if mask&(uint64(1)<<uint(GroupShader)) == 0 {
		t.Errorf("Take() mask missing GroupShader")
	}
	if tr.Peek() != 0 {
		t.Errorf("Peek() after Take() = %b, want 0", tr.Peek())
	}
}

func TestGroups_AscendingOrder(t *testing.T) {
	mask := uint64(1)<<uint(GroupShader) | uint64(1)<<uint(GroupVertexBuffer) | uint64(1)<<uint(GroupDepth)

	groups := Groups(mask)
	for i := 1; i < len(groups); i++ {
		if groups[i] <= groups[i-1] {
			t.Errorf("Groups() not ascending: %v", groups)
		}
	}
	if len(groups) != 3 {
		t.Errorf("Groups() len = %d, want 3", len(groups))
	}
}

func TestGroupForOffset_RenderTargetScaleBelongsToRenderTargets(t *testing.T) {
	group, ok := GroupForOffset(regs.OffRenderTargetScale)
	if !ok || group != GroupRenderTargets {
		t.Errorf("GroupForOffset(OffRenderTargetScale) = (%v, %v), want (GroupRenderTargets, true)", group, ok)
	}
}
