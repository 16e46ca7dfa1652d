package msm_test

import (
	"testing"

	msm "msm.mleku.dev"
	"msm.mleku.dev/internal/bn254adapter"
)

// TestBosCosterMixedMagnitudes exercises Bos-Coster's core advantage: wildly
// different exponent sizes among the terms.
func TestBosCosterMixedMagnitudes(t *testing.T) {
	g := bn254adapter.Group{}
	gen := bn254adapter.Generator

	exps := []uint{250, 2, 3, 200}
	terms := make([]msm.Element, len(exps))
	scalars := make([]msm.Scalar, len(exps))
	for i, e := range exps {
		var k msm.BigInt
		if e < 64 {
			k = msm.BigIntFromUint64(4, uint64(1)<<e)
		} else {
			limbIdx := e / 64
			bitIdx := e % 64
			limbs := make([]msm.Limb, 4)
			limbs[limbIdx] = uint64(1) << bitIdx
			k = msm.BigIntFromLimbs(limbs)
		}
		terms[i] = gen.ScalarMul(k)
		scalars[i] = bn254adapter.NewScalar(bigIntTo32BE(k))
	}

	want := msm.MultiExp(g, terms, scalars, msm.Naive, msm.DefaultConfig())
	got := msm.MultiExp(g, terms, scalars, msm.BosCoster, msm.DefaultConfig())
	if !elementsEqual(t, got, want) {
		t.Fatal("Bos-Coster disagrees with msm.Naive on mixed-magnitude scalars")
	}
}

func bigIntTo32BE(k msm.BigInt) []byte {
	buf := make([]byte, 32)
	for i := 0; i < 256; i++ {
		if k.TestBit(i) {
			byteIdx := 31 - i/8
			buf[byteIdx] |= 1 << uint(i%8)
		}
	}
	return buf
}

func TestBosCosterOddLengthAndSingleton(t *testing.T) {
	g := bn254adapter.Group{}
	gen := bn254adapter.Generator

	// Singleton.
	single := msm.MultiExp(g, []msm.Element{gen}, []msm.Scalar{testScalar(7)}, msm.BosCoster, msm.DefaultConfig())
	want := gen.ScalarMul(msm.BigIntFromUint64(4, 7))
	if !elementsEqual(t, single, want) {
		t.Fatal("Bos-Coster singleton disagrees with direct scalar mult")
	}

	// Odd length (3 terms) forces internal padding.
	terms := []msm.Element{gen, gen, gen}
	scalars := []msm.Scalar{testScalar(3), testScalar(5), testScalar(9)}
	got := msm.MultiExp(g, terms, scalars, msm.BosCoster, msm.DefaultConfig())
	wantOdd := gen.ScalarMul(msm.BigIntFromUint64(4, 17))
	if !elementsEqual(t, got, wantOdd) {
		t.Fatal("Bos-Coster odd-length input disagrees with direct scalar mult")
	}
}
