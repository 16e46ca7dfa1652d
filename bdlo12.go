package msm

import "math/bits"

// bdlo12WindowSize picks the bucket window width from the term count:
// c = floor(log2(L)) - (floor(log2(L))/3 - 2), the empirically-derived
// balance between bucket-array size (grows with 2^c) and the number of
// per-window doublings (grows with num_bits/c).
func bdlo12WindowSize(numTerms int) uint {
	if numTerms < 2 {
		return 1
	}
	lg := bits.Len(uint(numTerms)) - 1
	c := lg - (lg/3 - 2)
	if c < 1 {
		c = 1
	}
	if c > 24 {
		c = 24
	}
	return uint(c)
}

// batchToSpecialPresent normalizes every non-zero element of xs to special
// form with one amortized inversion, leaving zero elements untouched.
// Group.BatchToSpecialAllNonZeros requires its argument to contain no zero
// elements, so this filters them out and splices the results back in.
func batchToSpecialPresent(g Group, xs []Element) []Element {
	out := make([]Element, len(xs))
	nonZero := make([]Element, 0, len(xs))
	idx := make([]int, 0, len(xs))
	for i, x := range xs {
		if x.IsZero() {
			out[i] = x
			continue
		}
		nonZero = append(nonZero, x)
		idx = append(idx, i)
	}
	if len(nonZero) > 0 {
		g.BatchToSpecialAllNonZeros(nonZero)
		for j, i := range idx {
			out[i] = nonZero[j]
		}
	}
	return out
}

// bdlo12MSM evaluates the multi-scalar product with a bucketed
// Pippenger-style sweep over c-bit windows of the scalars. Within a
// window, term i contributes to bucket[digit_i - 1] where digit_i is the
// window's slice of scalar i (digit 0 contributes nothing); each bucket is
// then folded into the window total with the descending running-sum trick
// (sum_d d*bucket[d] computed as a prefix of suffix sums, two adds per
// bucket instead of one add per term per doubling). Window totals combine
// with c doublings each, Horner-style, from the most significant window
// down.
func bdlo12MSM(g Group, bases []Element, scalars []Scalar, cfg Config) Element {
	n := len(bases)
	if n != len(scalars) {
		panic("msm: bdlo12MSM: bases and scalars must have equal length")
	}
	if n == 0 {
		return g.Zero()
	}

	digits := make([]BigInt, n)
	maxBits := 0
	for i, s := range scalars {
		digits[i] = s.AsBigInt()
		if nb := digits[i].NumBits(); nb > maxBits {
			maxBits = nb
		}
	}
	if maxBits == 0 {
		return g.Zero()
	}
	c := bdlo12WindowSize(n)
	numBuckets := (1 << c) - 1
	numWindows := (maxBits + int(c) - 1) / int(c)

	work := bases
	if cfg.MixedAddition {
		work = batchToSpecialPresent(g, bases)
	}

	windowSum := func(level int) Element {
		offset := level * int(c)
		if offset >= maxBits {
			return g.Zero()
		}
		width := int(c)
		if offset+width > maxBits {
			width = maxBits - offset
		}
		buckets := make([]Element, numBuckets)
		present := make([]bool, numBuckets)
		for i := 0; i < n; i++ {
			digit := digits[i].Bits(offset, width)
			if digit == 0 {
				continue
			}
			idx := int(digit) - 1
			if !present[idx] {
				buckets[idx] = work[i]
				present[idx] = true
				continue
			}
			if cfg.MixedAddition && work[i].IsSpecial() {
				buckets[idx] = buckets[idx].MixedAdd(work[i])
			} else {
				buckets[idx] = buckets[idx].Add(work[i])
			}
		}
		runningSum := g.Zero()
		total := g.Zero()
		for idx := numBuckets - 1; idx >= 0; idx-- {
			if present[idx] {
				runningSum = runningSum.Add(buckets[idx])
			}
			total = total.Add(runningSum)
		}
		return total
	}

	result := g.Zero()
	for level := numWindows - 1; level >= 0; level-- {
		for i := uint(0); i < c; i++ {
			result = result.Dbl()
		}
		result = result.Add(windowSum(level))
	}
	return result
}
