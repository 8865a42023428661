package appconfig

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "standard", cfg.Profile)
	assert.Equal(t, "solver-model.db", cfg.ModelPath)

	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, uint32(10000), engineCfg.MaxIterations)
	assert.Equal(t, 1000, engineCfg.BatchSize)
	assert.Equal(t, runtime.NumCPU(), engineCfg.NumThreads)
	assert.InDelta(t, 0.1, engineCfg.ExplorationRate, 1e-12)
	assert.InDelta(t, 0.95, engineCfg.DiscountFactor, 1e-12)
}

func TestProfileSelection(t *testing.T) {
	t.Setenv("SOLVER_PROFILE", "high-performance")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 2000, engineCfg.BatchSize)
	assert.Equal(t, uint32(50000), engineCfg.MaxIterations)
	// No GPU backend exists, the engine downgrades this on Initialize.
	assert.True(t, engineCfg.UseGPUAcceleration)
}

func TestOverrides(t *testing.T) {
	t.Setenv("SOLVER_PROFILE", "low-latency")
	t.Setenv("SOLVER_THREADS", "3")
	t.Setenv("SOLVER_BATCH_SIZE", "250")
	t.Setenv("SOLVER_MAX_ITERATIONS", "42")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, engineCfg.NumThreads)
	assert.Equal(t, 250, engineCfg.BatchSize)
	assert.Equal(t, uint32(42), engineCfg.MaxIterations)
	assert.False(t, engineCfg.UseGPUAcceleration)
}

func TestUnknownProfile(t *testing.T) {
	t.Setenv("SOLVER_PROFILE", "turbo")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	_, err = cfg.EngineConfig()
	assert.Error(t, err)
}
