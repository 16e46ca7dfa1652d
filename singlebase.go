package msm

// FixedWindowWNAFExp computes k*base using a fixed window width w chosen by
// the caller, without consulting the group's break-even table. It builds a
// small odd-multiple table {base, 3*base, 5*base, ..., (2^w-1)*base}, wNAF
// encodes k with FindWNAF, and folds the digits from the top down: double
// once per digit, then add (or subtract, for a negative digit) the looked
// up odd multiple whenever the digit is non-zero.
func FixedWindowWNAFExp(w uint, base Element, k BigInt) Element {
	if w == 0 || w >= 31 {
		panic("msm: FixedWindowWNAFExp: window width must satisfy 1 <= w < 31")
	}
	table := oddMultiples(w, base)
	naf := FindWNAF(w, k)
	result := table[0].Sub(table[0]) // zero element with the same concrete type
	for i := len(naf) - 1; i >= 0; i-- {
		result = result.Dbl()
		d := naf[i]
		switch {
		case d > 0:
			result = result.Add(table[(d-1)/2])
		case d < 0:
			result = result.Sub(table[(-d-1)/2])
		}
	}
	return result
}

// oddMultiples returns {1*base, 3*base, 5*base, ..., (2^w-1)*base}.
func oddMultiples(w uint, base Element) []Element {
	n := 1 << (w - 1)
	table := make([]Element, n)
	table[0] = base
	if n > 1 {
		dbl := base.Dbl()
		for i := 1; i < n; i++ {
			table[i] = table[i-1].Add(dbl)
		}
	}
	return table
}

// OptWindowWNAFExp picks the wNAF window width from the group's
// WNAFWindowTable using k's bit length, then delegates to
// FixedWindowWNAFExp. This is the entry point single-term callers (the
// Naive strategy) should use. When the table is empty or k's bit length
// doesn't clear any tuned threshold, it falls back to the group's generic
// ScalarMul rather than guessing a window width.
func OptWindowWNAFExp(g Group, base Element, k BigInt) Element {
	w, ok := wnafWindowSize(g, k.NumBits())
	if !ok {
		return base.ScalarMul(k)
	}
	return FixedWindowWNAFExp(w, base, k)
}

// wnafWindowSize picks the widest window width whose break-even threshold
// in the group's table is at most numBits: table[i] is the bit-length past
// which window width i+1 pays for the cost of building its odd-multiple
// table, so the largest satisfied threshold is the best choice. Reports ok
// == false when the table is empty or numBits is below every threshold, in
// which case the caller should fall back to generic scalar multiplication.
func wnafWindowSize(g Group, numBits int) (w uint, ok bool) {
	table := g.WNAFWindowTable()
	if len(table) == 0 {
		return 0, false
	}
	for i, threshold := range table {
		if numBits >= threshold {
			w = uint(i + 1)
			ok = true
		}
	}
	return w, ok
}
