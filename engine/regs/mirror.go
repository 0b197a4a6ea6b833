// Package regs is the structured view over the guest 3D engine's
// memory-mapped register bank (spec.md §3 "Register Mirror"). It exposes
// named, typed fields at fixed word offsets; the offset is the identity key
// the dirty tracker indexes on. The bank itself is mutated by the guest
// command-stream processor, which is out of scope here — this package is
// read-only except for the Write entry point that processor calls through.
package regs

import (
	"math"

	"github.com/nv3d/maxwell3d/common"
)

// WordCount is the size of the register bank in 32-bit words. Offsets are
// 14-bit word indices (spec.md §4.1), so the bank comfortably covers the
// documented field set with room for guest driver versions to grow.
const WordCount = 1 << 14

// Mirror is a fixed, contiguous block of 32-bit words reinterpreted through
// the typed accessors in fields.go. It is the single source of truth the
// dirty tracker and every update-group updater reads from.
type Mirror struct {
	words [WordCount]uint32

	// onWrite, if set, is invoked with the word offset after every Write.
	// The engine wires this to dirty.Tracker.SetDirty at construction time;
	// regs itself has no dependency on the dirty tracker.
	onWrite func(offset uint16)
}

// NewMirror allocates a zeroed register bank.
//
// Returns:
//   - *Mirror: a new, all-zero register mirror
func NewMirror() *Mirror {
	return &Mirror{}
}

// SetWriteHook installs the callback invoked after every Write. Passing nil
// disables the hook.
//
// Parameters:
//   - hook: the function to call with the written word offset, or nil
func (m *Mirror) SetWriteHook(hook func(offset uint16)) {
	m.onWrite = hook
}

// Write stores value at the given word offset and, if a write hook is
// installed, reports the offset so the dirty tracker can mark dependent
// update groups. This is the only mutation entry point; everything else in
// this package only reads.
//
// Parameters:
//   - offset: the word offset to write
//   - value: the raw 32-bit value to store
func (m *Mirror) Write(offset uint16, value uint32) {
	m.words[offset] = value
	if m.onWrite != nil {
		m.onWrite(offset)
	}
}

// Word reads a single raw 32-bit word at the given offset.
//
// Parameters:
//   - offset: the word offset to read
//
// Returns:
//   - uint32: the raw value at that offset
func (m *Mirror) Word(offset uint16) uint32 {
	return m.words[offset]
}

// Bits reads an inclusive bit range [lo, hi] from the word at offset.
//
// Parameters:
//   - offset: the word offset to read
//   - lo, hi: the inclusive bit range within that word
//
// Returns:
//   - uint32: the field value, right-aligned
func (m *Mirror) Bits(offset uint16, lo, hi int) uint32 {
	return common.Bits(m.words[offset], lo, hi)
}

// Bit reads a single bit from the word at offset.
func (m *Mirror) Bit(offset uint16, index int) bool {
	return common.Bit(m.words[offset], index)
}

// Float reads the word at offset as an IEEE-754 float32.
func (m *Mirror) Float(offset uint16) float32 {
	return math.Float32frombits(m.words[offset])
}
