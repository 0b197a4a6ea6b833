package dirty

// Tracker accumulates which update groups have pending register writes.
// It holds no knowledge of what an update group actually does — that is
// engine/state's job; Tracker only decides which groups need to run and in
// what order.
type Tracker struct {
	mask uint64
}

// NewTracker returns a tracker with every group already dirty, matching the
// state a freshly constructed engine must start a draw preamble from.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.SetAllDirty()
	return t
}

// SetDirty marks every update group whose ranges contain offset as dirty.
// Writes to register words not claimed by any group are ignored.
//
// Parameters:
//   - offset: the register word offset that was just written
func (t *Tracker) SetDirty(offset uint16) {
	for group, ranges := range groupRanges {
		for _, r := range ranges {
			if offset >= r[0] && offset < r[1] {
				t.ForceDirty(group)
				break
			}
		}
	}
}

// ForceDirty marks a specific group dirty regardless of which register word
// triggered it. Used by updaters that must re-run a downstream group as a
// side effect — e.g. a render-target scale change re-running Viewport and
// Scissor (spec.md §4.4 "Render Targets").
//
// Parameters:
//   - group: the group to mark dirty
func (t *Tracker) ForceDirty(group GroupIndex) {
	t.mask |= uint64(1) << uint(group)
}

// SetAllDirty marks every update group dirty.
func (t *Tracker) SetAllDirty() {
	t.mask = AllGroups
}

// IsDirty reports whether group is currently marked dirty.
func (t *Tracker) IsDirty(group GroupIndex) bool {
	return t.mask&(uint64(1)<<uint(group)) != 0
}

// Take returns the current dirty mask and clears it. Callers should run the
// returned groups' updaters in ascending index order (use Groups to iterate)
// before the mask is mutated again, since an updater may call ForceDirty for
// a downstream group mid-pass.
//
// Returns:
//   - uint64: the dirty mask at the moment of the call
func (t *Tracker) Take() uint64 {
	m := t.mask
	t.mask = 0
	return m
}

// Peek returns the current dirty mask without clearing it.
func (t *Tracker) Peek() uint64 {
	return t.mask
}

// Groups yields the set bits of mask in ascending GroupIndex order.
//
// Parameters:
//   - mask: a dirty mask, typically obtained from Take
//
// Returns:
//   - []GroupIndex: the dirty groups, ascending
func Groups(mask uint64) []GroupIndex {
	groups := make([]GroupIndex, 0, GroupCount)
	for i := GroupIndex(0); i < GroupCount; i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			groups = append(groups, i)
		}
	}
	return groups
}
