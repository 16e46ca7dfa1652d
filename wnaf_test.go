package msm

import "testing"

// wnafValue reconstructs the integer a digit sequence encodes, using
// int64 arithmetic that wraps modulo 2^64. The round-trip test compares
// against int64(c), which wraps the same way, so its all-ones 64-bit case
// is checked modulo 2^64.
func wnafValue(d []int32) int64 {
	var v int64
	for j, digit := range d {
		v += int64(digit) << uint(j)
	}
	return v
}

func TestFindWNAFRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 2, 3, 255, 256, 0x1234_5678_9abc, 0xFFFF_FFFF_FFFF_FFFF}
	for _, c := range cases {
		for w := uint(2); w <= 6; w++ {
			s := BigIntFromUint64(4, c)
			d := FindWNAF(w, s)
			if got := wnafValue(d); got != int64(c) {
				t.Errorf("FindWNAF(%d, %d) reconstructs to %d, want %d", w, c, got, c)
			}
			for _, digit := range d {
				if digit == 0 {
					continue
				}
				if digit%2 == 0 {
					t.Errorf("FindWNAF(%d, %d): non-zero digit %d is even", w, c, digit)
				}
				bound := int32(1) << w
				if digit >= bound || digit <= -bound {
					t.Errorf("FindWNAF(%d, %d): digit %d exceeds window bound %d", w, c, digit, bound)
				}
			}
		}
	}
}

func TestFindWNAFNonAdjacency(t *testing.T) {
	w := uint(4)
	s := BigIntFromUint64(4, 0x1234_5678_9abc)
	d := FindWNAF(w, s)
	lastNonZero := -1
	for i, digit := range d {
		if digit == 0 {
			continue
		}
		if lastNonZero >= 0 && i-lastNonZero < int(w) {
			t.Errorf("non-zero digits at %d and %d closer than window width %d", lastNonZero, i, w)
		}
		lastNonZero = i
	}
}

func TestFindWNAFPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for w == 0")
		}
	}()
	FindWNAF(0, BigIntFromUint64(4, 1))
}
