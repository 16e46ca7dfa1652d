package msm_test

import (
	"math/rand"
	"testing"

	msm "msm.mleku.dev"
	"msm.mleku.dev/internal/bn254adapter"
)

func TestMultiExpWithMixedAdditionAgreesWithPlain(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	g := bn254adapter.Group{}
	const n = 30
	bases := make([]msm.Element, n)
	scalars := make([]msm.Scalar, n)
	for i := 0; i < n; i++ {
		bases[i] = randPoint(t, rnd)
		scalars[i] = randScalar(t, rnd)
	}

	for _, method := range []msm.Method{msm.Naive, msm.BDLO12, msm.BosCoster} {
		plain := msm.MultiExp(g, bases, scalars, method, msm.DefaultConfig())
		mixed := msm.MultiExpWithMixedAddition(g, bases, scalars, method, msm.DefaultConfig())
		if !elementsEqual(t, mixed, plain) {
			t.Errorf("method %s: mixed-addition preprocessor disagrees with plain msm.MultiExp", method)
		}
	}
}

func TestMultiExpWithMixedAdditionHandlesZeroScalars(t *testing.T) {
	g := bn254adapter.Group{}
	gen := bn254adapter.Generator
	bases := []msm.Element{gen, gen, gen}
	scalars := []msm.Scalar{testScalar(0), testScalar(1), testScalar(5)}

	got := msm.MultiExpWithMixedAddition(g, bases, scalars, msm.BDLO12, msm.DefaultConfig())
	want := gen.ScalarMul(msm.BigIntFromUint64(4, 6))
	if !elementsEqual(t, got, want) {
		t.Fatal("mixed-addition path mishandles zero/one scalars")
	}
}
