package appconfig

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"pokersolver/cfr"
)

type AppConfig struct {
	Profile       string `env:"SOLVER_PROFILE" env-default:"standard"`
	NumThreads    int    `env:"SOLVER_THREADS" env-default:"0"`
	BatchSize     int    `env:"SOLVER_BATCH_SIZE" env-default:"0"`
	MaxIterations uint32 `env:"SOLVER_MAX_ITERATIONS" env-default:"0"`

	ModelPath     string `env:"SOLVER_MODEL_PATH" env-default:"solver-model.db"`
	StatsInterval int    `env:"SOLVER_STATS_INTERVAL" env-default:"50"`
	LogLevel      string `env:"SOLVER_LOG_LEVEL" env-default:"info"`
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// EngineConfig resolves the selected profile preset and applies any
// explicit overrides on top of it.
func (c *AppConfig) EngineConfig() (cfr.Config, error) {
	var cfg cfr.Config
	switch strings.ToLower(c.Profile) {
	case "standard":
		cfg = cfr.StandardConfig()
	case "high-performance":
		cfg = cfr.HighPerformanceConfig()
	case "low-latency":
		cfg = cfr.LowLatencyConfig()
	case "high-throughput":
		cfg = cfr.HighThroughputConfig()
	default:
		return cfr.Config{}, fmt.Errorf("unknown solver profile %q", c.Profile)
	}
	if c.NumThreads > 0 {
		cfg.NumThreads = c.NumThreads
	}
	if c.BatchSize > 0 {
		cfg.BatchSize = c.BatchSize
	}
	if c.MaxIterations > 0 {
		cfg.MaxIterations = c.MaxIterations
	}
	return cfg, nil
}
