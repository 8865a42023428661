package main

import (
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"lukechampine.com/frand"

	"pokersolver/appconfig"
	"pokersolver/cfr"
	"pokersolver/holdem"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()

	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
		log = log.Level(level)
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("bad solver profile")
	}

	engine := cfr.NewEngine(engineCfg, log)
	if err := engine.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("engine initialization failed")
	}

	if _, err := os.Stat(cfg.ModelPath); err == nil {
		if err := engine.LoadModel(cfg.ModelPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.ModelPath).Msg("could not load previous model, starting fresh")
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	batches := int(engineCfg.MaxIterations)
	rng := rand.New(rand.NewSource(int64(frand.Uint64n(math.MaxInt64))))
	bar := progressbar.Default(int64(batches), "training")

	log.Info().
		Str("profile", cfg.Profile).
		Int("batches", batches).
		Int("batch_size", engineCfg.BatchSize).
		Int("threads", engineCfg.NumThreads).
		Float64("exploration", engineCfg.ExplorationRate).
		Float64("discount", engineCfg.DiscountFactor).
		Msg("training started")

	interrupted := false
	for i := 0; i < batches && !interrupted; i++ {
		batch := holdem.RandomBatch(rng, engineCfg.BatchSize)
		convergence := engine.TrainBatch(batch)
		bar.Add(1)

		if cfg.StatsInterval > 0 && (i+1)%cfg.StatsInterval == 0 {
			stats := engine.GetPerformanceStats()
			log.Info().
				Uint64("iterations", stats.TotalIterations).
				Str("infosets", humanize.Comma(int64(stats.TotalInfoSets))).
				Float64("avg_convergence", stats.AverageConvergence).
				Msg("training progress")
		}
		if convergence > 0 && convergence < engineCfg.ConvergenceThreshold {
			log.Info().Float64("convergence", convergence).Msg("converged below threshold, stopping early")
			break
		}

		select {
		case <-sigCh:
			log.Warn().Msg("interrupt received, finishing up")
			interrupted = true
		default:
		}
	}

	stats := engine.GetPerformanceStats()
	log.Info().
		Str("iterations", humanize.Comma(int64(stats.TotalIterations))).
		Str("infosets", humanize.Comma(int64(stats.TotalInfoSets))).
		Str("simulations", humanize.Comma(int64(stats.TotalSimulations))).
		Float64("avg_convergence", stats.AverageConvergence).
		Msg("training finished")

	if err := engine.SaveModel(cfg.ModelPath); err != nil {
		log.Error().Err(err).Str("path", cfg.ModelPath).Msg("model save failed")
	}
	engine.Shutdown()
}
