package msm

import "golang.org/x/sync/errgroup"

// MultiExp evaluates R = sum s_i*P_i with the requested strategy. All
// four strategies (Naive, NaivePlain, BDLO12, BosCoster) agree on every
// input; the choice only affects performance.
func MultiExp(g Group, bases []Element, scalars []Scalar, method Method, cfg Config) Element {
	if len(bases) != len(scalars) {
		panic("msm: MultiExp: bases and scalars must have equal length")
	}
	switch method {
	case Naive:
		return naiveMSM(g, bases, scalars)
	case NaivePlain:
		return naivePlainMSM(g, bases, scalars)
	case BDLO12:
		return bdlo12MSM(g, bases, scalars, cfg)
	case BosCoster:
		return bosCosterMSM(g, bases, scalars)
	default:
		panic("msm: MultiExp: unknown method")
	}
}

// ChunkedMultiExp partitions bases/scalars into disjoint, contiguous
// chunks, evaluates MultiExp independently on each chunk, and sums the
// partial results. The chunk count and boundaries never affect the
// result, only how the work is spread across cfg.tasks() goroutines when
// cfg.Parallel is set. chunkSize <= 0 means "one chunk", i.e. behave like
// a plain MultiExp call.
func ChunkedMultiExp(g Group, bases []Element, scalars []Scalar, method Method, cfg Config, chunkSize int) Element {
	n := len(bases)
	if n != len(scalars) {
		panic("msm: ChunkedMultiExp: bases and scalars must have equal length")
	}
	if n == 0 {
		return g.Zero()
	}
	if chunkSize <= 0 || chunkSize >= n {
		return MultiExp(g, bases, scalars, method, cfg)
	}

	numChunks := (n + chunkSize - 1) / chunkSize
	partials := make([]Element, numChunks)

	if !cfg.Parallel {
		for i := 0; i < numChunks; i++ {
			start := i * chunkSize
			end := start + chunkSize
			if end > n {
				end = n
			}
			partials[i] = MultiExp(g, bases[start:end], scalars[start:end], method, cfg)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(cfg.tasks())
		for i := 0; i < numChunks; i++ {
			i := i
			start := i * chunkSize
			end := start + chunkSize
			if end > n {
				end = n
			}
			eg.Go(func() error {
				partials[i] = MultiExp(g, bases[start:end], scalars[start:end], method, cfg)
				return nil
			})
		}
		_ = eg.Wait()
	}

	result := g.Zero()
	for _, p := range partials {
		result = result.Add(p)
	}
	return result
}
