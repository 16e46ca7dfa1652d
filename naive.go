package msm

// naiveMSM evaluates each term with the single-base wNAF exponentiator
// (OptWindowWNAFExp) and accumulates the results with the group's general
// addition. Baseline strategy: correct for any input, no bucket or heap
// bookkeeping, used as the reference the other strategies are checked
// against.
func naiveMSM(g Group, bases []Element, scalars []Scalar) Element {
	if len(bases) != len(scalars) {
		panic("msm: naiveMSM: bases and scalars must have equal length")
	}
	result := g.Zero()
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		term := OptWindowWNAFExp(g, bases[i], s.AsBigInt())
		result = result.Add(term)
	}
	return result
}

// naivePlainMSM evaluates each term with the group's own generic
// ScalarMul, bypassing the wNAF path entirely. Used to cross-check that
// FindWNAF/FixedWindowWNAFExp agree with whatever scalar-multiply the
// concrete group provides on its own.
func naivePlainMSM(g Group, bases []Element, scalars []Scalar) Element {
	if len(bases) != len(scalars) {
		panic("msm: naivePlainMSM: bases and scalars must have equal length")
	}
	result := g.Zero()
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		result = result.Add(bases[i].ScalarMul(s.AsBigInt()))
	}
	return result
}
