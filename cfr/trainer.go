package cfr

import (
	"golang.org/x/sync/errgroup"

	"pokersolver/common/bench"
	"pokersolver/holdem"
)

// TrainBatch runs one synchronous training pass over states, fanned
// out across the configured workers, and returns the mean node
// utility of the batch. Each worker owns a contiguous slice and its
// own random stream; the call returns only after every worker is done.
func (e *Engine) TrainBatch(states []holdem.GameState) float64 {
	if len(states) == 0 {
		return 0.0
	}
	// One batch at a time: each stream stays exclusively owned by its
	// worker even when callers overlap, and shutdown cannot clear the
	// table under a running batch.
	e.trainMu.Lock()
	defer e.trainMu.Unlock()
	if !e.initialized.Load() {
		return 0.0
	}

	numWorkers := len(e.rngs)
	perWorker := len(states) / numWorkers
	if perWorker < 1 {
		perWorker = 1
	}

	results := make([]float64, numWorkers)
	launched := 0

	var g errgroup.Group
	elapsed := bench.MeasureExec(func() {
		for workerID := 0; workerID < numWorkers; workerID++ {
			start := workerID * perWorker
			if start >= len(states) {
				break
			}
			end := start + perWorker
			if workerID == numWorkers-1 {
				end = len(states)
			}
			launched++

			slice := states[start:end]
			rng := e.rngs[workerID]
			g.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						e.log.Error().
							Int("worker", workerID).
							Interface("panic", r).
							Msg("training worker panicked")
						results[workerID] = 0.0
					}
				}()
				sum := 0.0
				// Regret updates commute, so each worker walks its
				// slice in an order drawn from its own stream.
				for _, i := range rng.Perm(len(slice)) {
					if e.stopping.Load() {
						break
					}
					sum += e.Evaluate(&slice[i], 1.0)
				}
				results[workerID] = sum / float64(len(slice))
				return nil
			})
		}
		_ = g.Wait()
	})

	convergence := 0.0
	for i := 0; i < launched; i++ {
		convergence += results[i]
	}
	convergence /= float64(launched)

	e.stats.recordBatch(convergence, e.table.Size())
	e.log.Debug().
		Int("states", len(states)).
		Int("workers", launched).
		Float64("convergence", convergence).
		Dur("took", elapsed).
		Msg("batch trained")
	return convergence
}

// TrainBatchAsync schedules TrainBatch on its own goroutine and
// delivers the result on the returned channel.
func (e *Engine) TrainBatchAsync(states []holdem.GameState) <-chan float64 {
	out := make(chan float64, 1)
	go func() {
		out <- e.TrainBatch(states)
		close(out)
	}()
	return out
}
