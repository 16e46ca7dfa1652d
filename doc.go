// Package msm implements the scalar-multiplication core of a prover-side
// elliptic-curve library: wNAF encoding, single-base and fixed-base
// windowed exponentiation, and three interchangeable multi-scalar
// multiplication strategies (naive, BDLO12 bucketed Pippenger, and
// Bos-Coster heap reduction) driving
//
//	R = sum_{i=0}^{n-1} s_i * P_i
//
// over an additive abelian group G. The package never touches field or
// group arithmetic directly; it consumes the Group and Scalar
// capabilities defined in group.go and is exercised in this repository's
// tests by the concrete bn254 curve in internal/bn254adapter.
//
// The package favours throughput over constant-time execution: this is
// prover-side code, not a signing or key-handling path, so branching on
// scalar bits and skipping zero terms is intentional and safe.
package msm
