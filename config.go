package msm

import "runtime"

// Config carries the build/runtime flags described in the concurrency and
// resource model: parallelism, mixed-addition, and low-memory mode. It is
// plain data so callers can construct it as a literal instead of going
// through functional options; none of the algorithms in this package
// retain a Config beyond the call they were passed to.
type Config struct {
	// Parallel fans the chunked driver and the fixed-base batch loops out
	// across NbTasks goroutines. Static, disjoint partitioning: no shared
	// mutable state crosses workers within a pass.
	Parallel bool
	// NbTasks bounds worker fan-out when Parallel is set. Zero means
	// runtime.GOMAXPROCS(0).
	NbTasks int
	// MixedAddition routes BDLO12 bucket accumulation and the
	// ones-preprocessor through mixed_add instead of the general +.
	MixedAddition bool
	// LowMemory caps the fixed-base window width at 14 and lowers the
	// default (used when the group's FixedBaseExpWindowTable is empty) from
	// 17 to 14.
	LowMemory bool
}

// DefaultConfig returns single-threaded, mixed-addition-enabled defaults.
func DefaultConfig() Config {
	return Config{
		Parallel:      false,
		NbTasks:       runtime.GOMAXPROCS(0),
		MixedAddition: true,
		LowMemory:     false,
	}
}

func (c Config) tasks() int {
	if c.NbTasks > 0 {
		return c.NbTasks
	}
	return runtime.GOMAXPROCS(0)
}
