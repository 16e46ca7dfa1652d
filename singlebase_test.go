package msm_test

import (
	"testing"

	msm "msm.mleku.dev"
	"msm.mleku.dev/internal/bn254adapter"
)

func TestFixedWindowWNAFExpAgreesWithScalarMul(t *testing.T) {
	base := bn254adapter.Generator
	for _, k := range []uint64{0, 1, 2, 3, 12345, 0xFFFF_FFFF} {
		s := msm.BigIntFromUint64(4, k)
		for w := uint(2); w <= 6; w++ {
			got := msm.FixedWindowWNAFExp(w, base, s)
			want := base.ScalarMul(s)
			if !elementsEqual(t, got, want) {
				t.Errorf("msm.FixedWindowWNAFExp(w=%d, k=%d) disagrees with ScalarMul", w, k)
			}
		}
	}
}

func TestOptWindowWNAFExpAgreesWithScalarMul(t *testing.T) {
	g := bn254adapter.Group{}
	base := bn254adapter.Generator
	for _, k := range []uint64{0, 1, 7, 1_000_003} {
		s := msm.BigIntFromUint64(4, k)
		got := msm.OptWindowWNAFExp(g, base, s)
		want := base.ScalarMul(s)
		if !elementsEqual(t, got, want) {
			t.Errorf("msm.OptWindowWNAFExp(k=%d) disagrees with ScalarMul", k)
		}
	}
}

func TestOptWindowWNAFExpFallsBackOnEmptyTable(t *testing.T) {
	g := emptyTableGroup{}
	base := bn254adapter.Generator
	for _, k := range []uint64{0, 1, 7, 1_000_003} {
		s := msm.BigIntFromUint64(4, k)
		got := msm.OptWindowWNAFExp(g, base, s)
		want := base.ScalarMul(s)
		if !elementsEqual(t, got, want) {
			t.Errorf("msm.OptWindowWNAFExp(k=%d) with empty table disagrees with ScalarMul", k)
		}
	}
}

// elementsEqual compares two Elements by round-tripping both through the
// affine encoding bn254adapter.Element exposes, since msm.Element itself has
// no equality method: the core never needs to compare elements, only to
// compute with them.
func elementsEqual(t *testing.T, a, b msm.Element) bool {
	t.Helper()
	pa, ok := a.(bn254adapter.Element)
	if !ok {
		t.Fatalf("element %v is not a bn254adapter.Element", a)
	}
	pb, ok := b.(bn254adapter.Element)
	if !ok {
		t.Fatalf("element %v is not a bn254adapter.Element", b)
	}
	return pa.Equal(pb)
}
