package bitflip

import (
	"math/bits"
	"testing"
)

func TestPopCount(t *testing.T) {
	cases := []uint64{0, 1, 0xff, 0x8000000000000000, 0xffffffffffffffff, 0x0123456789abcdef}
	for _, x := range cases {
		if got, want := PopCount(x), bits.OnesCount64(x); got != want {
			t.Errorf("PopCount(%#x) = %d, want %d", x, got, want)
		}
	}
}

func TestTrailingZeros(t *testing.T) {
	if got := TrailingZeros(0); got != 64 {
		t.Errorf("TrailingZeros(0) = %d, want 64", got)
	}
	if got := TrailingZeros(0x58); got != 3 {
		t.Errorf("TrailingZeros(0x58) = %d, want 3", got)
	}
}

func TestFirstSet(t *testing.T) {
	if _, ok := FirstSet(0); ok {
		t.Errorf("FirstSet(0) reported a bit set")
	}
	if idx, ok := FirstSet(0x58); !ok || idx != 3 {
		t.Errorf("FirstSet(0x58) = (%d, %v), want (3, true)", idx, ok)
	}
}

func TestByteSwap64(t *testing.T) {
	in := uint64(0x0123456789abcdef)
	if got, want := ByteSwap64(in), bits.Reverse64(in); got != want {
		t.Errorf("ByteSwap64(%#x) = %#x, want %#x", in, got, want)
	}
	if ByteSwap64(ByteSwap64(in)) != in {
		t.Errorf("ByteSwap64 is not its own inverse for %#x", in)
	}
}

func TestRotate(t *testing.T) {
	in := uint64(0x58)
	if got, want := RotateLeft64(in, 4), bits.RotateLeft64(in, 4); got != want {
		t.Errorf("RotateLeft64 = %#x, want %#x", got, want)
	}
	if RotateRight64(RotateLeft64(in, 9), 9) != in {
		t.Errorf("RotateRight64 did not invert RotateLeft64")
	}
}

const benchInput = 0x0123456789abcdef

func BenchmarkByteSwap64(b *testing.B) {
	for n := 0; n < b.N; n++ {
		ByteSwap64(benchInput)
	}
}

func BenchmarkPopCount(b *testing.B) {
	for n := 0; n < b.N; n++ {
		PopCount(benchInput)
	}
}
