package cfr

import "runtime"

// Config controls the solver's training behavior. Zero values are not
// usable directly, build from one of the preset constructors and
// override fields as needed.
type Config struct {
	MaxIterations        uint32
	ConvergenceThreshold float64
	NumThreads           int
	UseGPUAcceleration   bool
	BatchSize            int
	ExplorationRate      float64
	DiscountFactor       float64
}

// StandardConfig is the balanced default profile.
func StandardConfig() Config {
	return Config{
		MaxIterations:        10000,
		ConvergenceThreshold: 0.01,
		NumThreads:           runtime.NumCPU(),
		UseGPUAcceleration:   false,
		BatchSize:            1000,
		ExplorationRate:      0.1,
		DiscountFactor:       0.95,
	}
}

// HighPerformanceConfig trades startup cost for the fastest wall-clock
// convergence on a dedicated machine.
func HighPerformanceConfig() Config {
	cfg := StandardConfig()
	cfg.NumThreads = runtime.NumCPU()
	cfg.UseGPUAcceleration = true
	cfg.BatchSize = 2000
	cfg.MaxIterations = 50000
	return cfg
}

// LowLatencyConfig keeps batches tiny so strategy queries interleave
// with training without long stalls.
func LowLatencyConfig() Config {
	cfg := StandardConfig()
	cfg.NumThreads = min(4, runtime.NumCPU())
	cfg.UseGPUAcceleration = false
	cfg.BatchSize = 100
	cfg.MaxIterations = 1000
	return cfg
}

// HighThroughputConfig oversubscribes workers to hide memory stalls on
// very large batches.
func HighThroughputConfig() Config {
	cfg := StandardConfig()
	cfg.NumThreads = runtime.NumCPU() * 2
	cfg.UseGPUAcceleration = true
	cfg.BatchSize = 5000
	cfg.MaxIterations = 100000
	return cfg
}
