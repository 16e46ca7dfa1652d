package msm

import "container/heap"

// bosCosterDeltaClamp bounds how many doublings bosCosterReduce batches
// into a single merge step. Bos-Coster's classic form subtracts the
// smaller exponent from the larger one exponent-bit by exponent-bit;
// batching up to this many doublings turns runs of similar-magnitude
// scalars into a handful of merges instead of one per bit of difference,
// while staying cheap enough that a single merge step never dominates.
// bosCosterMSM also clamps the bit gap between its two largest exponents
// to this value when deciding whether to finish the larger one directly.
const bosCosterDeltaClamp = 20

// orderedExponent pairs a scalar's residue with the base it multiplies,
// the unit the Bos-Coster heap reduces.
type orderedExponent struct {
	exponent BigInt
	base     Element
}

// bosCosterHeap is a max-heap over orderedExponent.exponent.
type bosCosterHeap []orderedExponent

func (h bosCosterHeap) Len() int            { return len(h) }
func (h bosCosterHeap) Less(i, j int) bool  { return h[i].exponent.Cmp(h[j].exponent) > 0 }
func (h bosCosterHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bosCosterHeap) Push(x interface{}) { *h = append(*h, x.(orderedExponent)) }
func (h *bosCosterHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// bosCosterReduce merges the heap's two largest entries. It exploits the
// identity
//
//	c1*P1 + c2*P2 == (c1 - c2*2^s)*P1 + c2*(P2 + 2^s*P1)
//
// which holds for any s with c2*2^s <= c1: it picks the largest such s up
// to bosCosterDeltaClamp by repeatedly doubling a working copy of c2 and
// P1 together, then applies the identity once. Doing this instead of a
// single s=0 subtraction collapses long runs of exponents that differ by
// only a handful of bits into one merge.
func bosCosterReduce(c1, c2 BigInt, p1, p2 Element) (newC1 BigInt, newP1 Element, newP2 Element) {
	shiftedC := c2
	shiftedP := p1
	for steps := 0; steps < bosCosterDeltaClamp; steps++ {
		doubled, overflow := shiftedC.AddN(shiftedC)
		if overflow || doubled.Cmp(c1) > 0 {
			break
		}
		shiftedC = doubled
		shiftedP = shiftedP.Dbl()
	}
	return c1.SubN(shiftedC), p1, p2.Add(shiftedP)
}

// bosCosterMSM evaluates the multi-scalar product by repeatedly merging
// the two heap entries with the largest remaining exponents (see
// bosCosterReduce) until at most one non-zero entry survives, then
// finishes that entry with a single scalar multiplication. An entry whose
// exponent is far larger than the next one (see the delta check in the
// loop) is finished the same way instead of being merged. An odd-length
// input is padded with a zero-exponent, zero-base entry so every merge
// step has a partner to combine with.
func bosCosterMSM(g Group, bases []Element, scalars []Scalar) Element {
	if len(bases) != len(scalars) {
		panic("msm: bosCosterMSM: bases and scalars must have equal length")
	}

	h := make(bosCosterHeap, 0, len(bases)+1)
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		h = append(h, orderedExponent{exponent: s.AsBigInt(), base: bases[i]})
	}
	if len(h) == 0 {
		return g.Zero()
	}
	if len(h) == 1 {
		return OptWindowWNAFExp(g, h[0].base, h[0].exponent)
	}
	if len(h)%2 != 0 {
		h = append(h, orderedExponent{
			exponent: BigIntFromUint64(h[0].exponent.NumLimbs(), 0),
			base:     g.Zero(),
		})
	}
	heap.Init(&h)

	result := g.Zero()
	for h.Len() > 1 {
		top := heap.Pop(&h).(orderedExponent)
		if top.exponent.IsZero() {
			continue
		}
		if h[0].exponent.IsZero() {
			result = result.Add(OptWindowWNAFExp(g, top.base, top.exponent))
			continue
		}
		// delta is the bit gap to the next entry, clamped. When the next entry
		// has fewer than 2^delta bits, finishing top directly is cheaper than
		// merging it down.
		nextBits := h[0].exponent.NumBits()
		delta := top.exponent.NumBits() - nextBits
		if delta > bosCosterDeltaClamp {
			delta = bosCosterDeltaClamp
		}
		if nextBits < 1<<uint(delta) {
			result = result.Add(OptWindowWNAFExp(g, top.base, top.exponent))
			continue
		}
		second := heap.Pop(&h).(orderedExponent)
		newC1, p1, newP2 := bosCosterReduce(top.exponent, second.exponent, top.base, second.base)
		heap.Push(&h, orderedExponent{exponent: newC1, base: p1})
		heap.Push(&h, orderedExponent{exponent: second.exponent, base: newP2})
	}
	if h.Len() == 1 && !h[0].exponent.IsZero() {
		result = result.Add(OptWindowWNAFExp(g, h[0].base, h[0].exponent))
	}
	return result
}
