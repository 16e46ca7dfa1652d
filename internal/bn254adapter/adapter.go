// Package bn254adapter wraps gnark-crypto's bn254 G1 group and scalar
// field as an msm.Group/msm.Element/msm.Scalar, so the multi-scalar
// multiplication core can be cross-validated against an independent,
// widely used pairing-curve implementation.
package bn254adapter

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	msm "msm.mleku.dev"
)

// Element wraps a bn254 G1 point in Jacobian coordinates.
type Element struct {
	j bn254.G1Jac
}

// Generator is bn254's G1 base point, ready to use as an msm.Element.
var Generator Element

func init() {
	g1Jac, _, _, _ := bn254.Generators()
	Generator = Element{j: g1Jac}
}

// WrapElement lifts a G1Jac point into an msm.Element.
func WrapElement(j bn254.G1Jac) Element { return Element{j: j} }

// Equal compares two elements by their affine coordinates. Not part of
// msm.Element (the core never needs it); exported for use in tests that
// compare results produced through different code paths.
func (e Element) Equal(other Element) bool {
	a := Affine(e)
	b := Affine(other)
	return a.Equal(&b)
}

// Affine converts an msm.Element known to be a bn254adapter.Element back
// to affine form, for comparison against a reference computation.
func Affine(e msm.Element) bn254.G1Affine {
	el := mustElement(e)
	var aff bn254.G1Affine
	aff.FromJacobian(&el.j)
	return aff
}

func mustElement(e msm.Element) Element {
	el, ok := e.(Element)
	if !ok {
		panic("bn254adapter: element is not a bn254adapter.Element")
	}
	return el
}

func (e Element) IsZero() bool { return e.j.Z.IsZero() }

func (e Element) Add(other msm.Element) msm.Element {
	o := mustElement(other)
	var r bn254.G1Jac
	r.Set(&e.j)
	r.AddAssign(&o.j)
	return Element{j: r}
}

func (e Element) Sub(other msm.Element) msm.Element {
	o := mustElement(other)
	var negJ bn254.G1Jac
	negJ.Neg(&o.j)
	var r bn254.G1Jac
	r.Set(&e.j)
	r.AddAssign(&negJ)
	return Element{j: r}
}

func (e Element) Neg() msm.Element {
	var r bn254.G1Jac
	r.Neg(&e.j)
	return Element{j: r}
}

func (e Element) Dbl() msm.Element {
	var r bn254.G1Jac
	r.Double(&e.j)
	return Element{j: r}
}

func (e Element) MixedAdd(special msm.Element) msm.Element {
	o := mustElement(special)
	if !o.IsSpecial() {
		panic("bn254adapter: MixedAdd: argument is not in special form")
	}
	var aff bn254.G1Affine
	aff.FromJacobian(&o.j)
	var r bn254.G1Jac
	r.Set(&e.j)
	r.AddMixed(&aff)
	return Element{j: r}
}

func (e Element) ToSpecial() msm.Element {
	if e.IsSpecial() {
		return e
	}
	var aff bn254.G1Affine
	aff.FromJacobian(&e.j)
	var r bn254.G1Jac
	r.FromAffine(&aff)
	return Element{j: r}
}

func (e Element) IsSpecial() bool {
	if e.j.Z.IsZero() {
		return true
	}
	var one fp.Element
	one.SetOne()
	return e.j.Z.Equal(&one)
}

func (e Element) ScalarMul(k msm.BigInt) msm.Element {
	var r bn254.G1Jac
	r.ScalarMultiplication(&e.j, bigIntFromMSM(k))
	return Element{j: r}
}

func bigIntFromMSM(k msm.BigInt) *big.Int {
	n := new(big.Int)
	for i := k.MaxBits() - 1; i >= 0; i-- {
		n.Lsh(n, 1)
		if k.TestBit(i) {
			n.SetBit(n, 0, 1)
		}
	}
	return n
}

// Group is a stateless msm.Group backed by gnark-crypto's bn254 G1.
type Group struct{}

func (Group) Zero() msm.Element {
	var j bn254.G1Jac
	return Element{j: j}
}

func (Group) WNAFWindowTable() []int {
	return []int{1, 3, 7, 20, 34, 50, 70, 100, 150, 200, 250}
}

func (Group) FixedBaseExpWindowTable() []int {
	return []int{1, 10, 30, 80, 200, 500, 1000, 2000, 4000}
}

// BatchToSpecialAllNonZeros converts each element of xs to special form
// with its own affine conversion, so every element costs one field
// inversion; the inversions are not batched. It panics on a zero element.
func (Group) BatchToSpecialAllNonZeros(xs []msm.Element) {
	for i, x := range xs {
		el := mustElement(x)
		if el.IsZero() {
			panic("bn254adapter: BatchToSpecialAllNonZeros: element must not be zero")
		}
		xs[i] = el.ToSpecial()
	}
}

// Scalar wraps an bn254 scalar-field element (the BN254 Fr, i.e. the
// order of G1) as an msm.Scalar.
type Scalar struct {
	e fr.Element
}

// WrapScalar lifts an fr.Element into an msm.Scalar.
func WrapScalar(e fr.Element) Scalar { return Scalar{e: e} }

// NewScalar decodes a big-endian byte string into a Scalar, reducing
// modulo the scalar field's order if necessary.
func NewScalar(buf []byte) Scalar {
	v := new(big.Int).SetBytes(buf)
	var e fr.Element
	e.SetBigInt(v)
	return Scalar{e: e}
}

// GroupOrder returns bn254 G1's order (the scalar field's modulus), for
// order-annihilation property tests (r*P == identity for every P).
func GroupOrder() msm.BigInt {
	buf := make([]byte, 32)
	fr.Modulus().FillBytes(buf)
	return msm.BigIntFromBytesBE(4, buf)
}

// NegateScalar returns -s mod the group order.
func NegateScalar(s Scalar) Scalar {
	var r fr.Element
	r.Neg(&s.e)
	return Scalar{e: r}
}

func (s Scalar) NumLimbs() int { return 4 }

func (s Scalar) AsBigInt() msm.BigInt {
	var v big.Int
	s.e.BigInt(&v)
	buf := make([]byte, 32)
	v.FillBytes(buf)
	return msm.BigIntFromBytesBE(4, buf)
}

func (s Scalar) IsZero() bool { return s.e.IsZero() }

func (s Scalar) IsOne() bool {
	var one fr.Element
	one.SetOne()
	return s.e.Equal(&one)
}

func (s Scalar) Mul(other msm.Scalar) msm.Scalar {
	o, ok := other.(Scalar)
	if !ok {
		panic("bn254adapter: Mul: other scalar is not a bn254adapter.Scalar")
	}
	var r fr.Element
	r.Mul(&s.e, &o.e)
	return Scalar{e: r}
}
