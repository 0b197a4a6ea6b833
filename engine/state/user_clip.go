package state

import "github.com/nv3d/maxwell3d/engine/regs"

// updateUserClip resolves the user clip-distance enable mask. Re-run
// automatically by the Shaders group whenever the compiled program's
// reported clip-distance-write count disagrees with this mask, so that a
// shader swap which changes clip-distance usage cannot leave a stale mask
// behind (spec.md §4.4 "Shaders").
func (r *Resolver) updateUserClip() error {
	r.Snapshot.UserClipEnableMask = r.Mirror.Word(regs.OffUserClipEnableMask)
	return nil
}
