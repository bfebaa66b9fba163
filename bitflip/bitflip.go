// Package bitflip provides the bit-parallel primitives the core engine
// is built from: population count, trailing/leading zero count,
// first-set, byte swap (full bit reversal, the primitive the
// Hyperbola-Quintessence slider kernels reverse-subtract against) and
// rotation over 64-bit words.
//
// The accelerated forms live in bitflip/asm and bitflip/attacks as
// avo (github.com/mmcloughlin/avo) code generators, mirroring the
// upstream avo workflow: `go run ./bitflip/asm` emits an architecture
// asm file that a build tag would prefer over the portable
// implementations below. The portable implementations here are the
// ones actually linked until that generation step is run, and are
// always correct regardless of target architecture.
package bitflip

import "math/bits"

// PopCount returns the number of set bits in x.
func PopCount(x uint64) int {
	return bits.OnesCount64(x)
}

// TrailingZeros returns the index of the lowest set bit in x, or 64
// if x is zero.
func TrailingZeros(x uint64) int {
	return bits.TrailingZeros64(x)
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros(x uint64) int {
	return bits.LeadingZeros64(x)
}

// FirstSet returns the index of the lowest set bit in x and whether x
// was nonzero.
func FirstSet(x uint64) (int, bool) {
	if x == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(x), true
}

// ByteSwap64 reverses the bit order of x (bit i <-> bit 63-i). This is
// the "byte-swapped reverse subtraction" primitive spec.md §4.2 builds
// the Hyperbola-Quintessence slider kernels from.
func ByteSwap64(x uint64) uint64 {
	return bits.Reverse64(x)
}

// RotateLeft64 rotates x left by k bits (k may be negative to rotate
// right).
func RotateLeft64(x uint64, k int) uint64 {
	return bits.RotateLeft64(x, k)
}

// RotateRight64 rotates x right by k bits.
func RotateRight64(x uint64, k int) uint64 {
	return bits.RotateLeft64(x, -k)
}
