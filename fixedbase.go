package msm

import "golang.org/x/sync/errgroup"

// WindowTable is a precomputed fixed-base table: outerSize blocks of
// 2^windowSize entries each (including the identity at digit 0), where
//
//	Table[outer][digit] = digit * 2^(outer*windowSize) * base,   digit in [0, 2^windowSize)
//
// so that any scalar k < 2^(outerSize*windowSize) can be split into
// outerSize base-2^windowSize digits and reconstructed with one table
// lookup and one addition per non-zero digit, no doublings.
type WindowTable struct {
	windowSize uint
	outerSize  int
	table      [][]Element
}

// GetExpWindowSize picks the fixed-base window width from the group's
// FixedBaseExpWindowTable using the number of scalar multiplications the
// caller intends to perform against the same base, same ascending
// break-even convention as wnafWindowSize. cfg.LowMemory caps the result
// at 14. An empty table is not a contract violation: it defaults to 14
// (cfg.LowMemory) or 17, the same compile-time constants a group with no
// tuned break-even data would fall back to.
func GetExpWindowSize(g Group, numScalars int, cfg Config) uint {
	table := g.FixedBaseExpWindowTable()
	if len(table) == 0 {
		if cfg.LowMemory {
			return 14
		}
		return 17
	}
	w := uint(1)
	for i, threshold := range table {
		if numScalars >= threshold {
			w = uint(i + 1)
		}
	}
	if cfg.LowMemory && w > 14 {
		w = 14
	}
	return w
}

// GetWindowTable builds a WindowTable for base wide enough to cover
// scalarMaxBits bits at the given window width. Each row's inner index runs
// over the full digit range [0, 2^windowSize), with entry 0 the group
// identity, so WindowedExp never needs a special case for a zero digit.
func GetWindowTable(windowSize uint, scalarMaxBits int, base Element) WindowTable {
	if windowSize == 0 || windowSize >= 32 {
		panic("msm: GetWindowTable: window width must satisfy 1 <= w < 32")
	}
	outerSize := (scalarMaxBits + int(windowSize) - 1) / int(windowSize)
	if outerSize == 0 {
		outerSize = 1
	}
	innerSize := 1 << windowSize
	identity := base.Sub(base)
	table := make([][]Element, outerSize)
	blockBase := base
	for outer := 0; outer < outerSize; outer++ {
		row := make([]Element, innerSize)
		row[0] = identity
		row[1] = blockBase
		for inner := 2; inner < innerSize; inner++ {
			row[inner] = row[inner-1].Add(blockBase)
		}
		table[outer] = row
		if outer+1 < outerSize {
			for i := uint(0); i < windowSize; i++ {
				blockBase = blockBase.Dbl()
			}
		}
	}
	return WindowTable{windowSize: windowSize, outerSize: outerSize, table: table}
}

// WindowedExp evaluates k*base against a precomputed WindowTable: split k
// into outerSize digits of windowSize bits each and sum the corresponding
// table entries. The accumulator starts at table[0][0], the group identity
// by construction, so k == 0 returns it directly with no separate branch.
func (t WindowTable) WindowedExp(k BigInt) Element {
	result := t.table[0][0]
	for outer := 0; outer < t.outerSize; outer++ {
		offset := outer * int(t.windowSize)
		if offset >= k.MaxBits() {
			break
		}
		width := int(t.windowSize)
		if offset+width > k.MaxBits() {
			width = k.MaxBits() - offset
		}
		digit := k.Bits(offset, width)
		if digit == 0 {
			continue
		}
		result = result.Add(t.table[outer][digit])
	}
	return result
}

// BatchExp computes ks[i]*base for every scalar in ks, where base is the
// single base the WindowTable was built for. When cfg.Parallel is set the ks are partitioned
// into cfg.tasks() disjoint chunks evaluated concurrently.
func BatchExp(table WindowTable, ks []BigInt, cfg Config) []Element {
	out := make([]Element, len(ks))
	if !cfg.Parallel || len(ks) < 2 {
		for i, k := range ks {
			out[i] = table.WindowedExp(k)
		}
		return out
	}
	nTasks := cfg.tasks()
	if nTasks > len(ks) {
		nTasks = len(ks)
	}
	chunk := (len(ks) + nTasks - 1) / nTasks
	var g errgroup.Group
	for start := 0; start < len(ks); start += chunk {
		end := start + chunk
		if end > len(ks) {
			end = len(ks)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = table.WindowedExp(ks[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// BatchExpWithCoeff evaluates coeff.Mul(ks[i])*base for every i, folding a
// shared scalar coefficient into each exponent before the table lookup.
// Used when every term of an MSM shares a random linear-combination
// coefficient (e.g. batch verification).
func BatchExpWithCoeff(table WindowTable, coeff Scalar, ks []Scalar, cfg Config) []Element {
	scaled := make([]BigInt, len(ks))
	for i, k := range ks {
		scaled[i] = coeff.Mul(k).AsBigInt()
	}
	return BatchExp(table, scaled, cfg)
}
