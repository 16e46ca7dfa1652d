package msm

// FindWNAF encodes s in windowed non-adjacent form with window width w:
// it returns digits d such that s = sum_j d[j]*2^j, every non-zero digit
// is odd with |d[j]| < 2^w, and consecutive non-zero digits are separated
// by at least w zeros.
//
// Algorithm: walk a working copy of s from the low bit up. A zero low bit
// emits a zero digit and shifts. A set low bit takes u = c mod 2^(w+1),
// re-centers u into (-2^w, 2^w] by subtracting 2^(w+1) when it overflows
// half the window, subtracts u from c (equivalently adds |u| when u is
// negative), emits u, and shifts. c is guaranteed even after the
// subtraction because u matches c's low w+1 bits.
func FindWNAF(w uint, s BigInt) []int32 {
	if w == 0 || w >= 31 {
		panic("msm: FindWNAF: window width must satisfy 1 <= w < 31")
	}
	nLimbs := s.NumLimbs()
	c := s.Clone()
	d := make([]int32, 0, c.MaxBits()+1)
	// half/full stay in int64 so the w==30 case (full == 1<<31) doesn't
	// wrap the way it would in int32; the emitted digit u always fits
	// back into int32 once w is bounded below 31.
	half := int64(1) << w
	full := int64(1) << (w + 1)
	for !c.IsZero() {
		if !c.TestBit(0) {
			d = append(d, 0)
			c = c.Rsh1()
			continue
		}
		u := int64(c.Bits(0, int(w+1)))
		if u > half {
			u -= full
		}
		if u >= 0 {
			c = c.SubN(BigIntFromUint64(nLimbs, uint64(u)))
		} else {
			sum, _ := c.AddN(BigIntFromUint64(nLimbs, uint64(-u)))
			c = sum
		}
		d = append(d, int32(u))
		c = c.Rsh1()
	}
	return d
}
