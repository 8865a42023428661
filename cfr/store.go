package cfr

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pokersolver/holdem"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS infosets (
	key              TEXT PRIMARY KEY,
	visit_count      INTEGER NOT NULL,
	total_regret     REAL    NOT NULL,
	avg_strategy_sum REAL    NOT NULL,
	weights          TEXT    NOT NULL
);`

type infoSetRow struct {
	Key            string  `db:"key"`
	VisitCount     uint64  `db:"visit_count"`
	TotalRegret    float64 `db:"total_regret"`
	AvgStrategySum float64 `db:"avg_strategy_sum"`
	Weights        string  `db:"weights"`
}

// SaveModel writes every learned infoset to a SQLite database at
// path, replacing whatever model the file held before.
func (e *Engine) SaveModel(path string) error {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return fmt.Errorf("open model db: %w", err)
	}
	defer db.Close()

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(storeSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM infosets`); err != nil {
		return fmt.Errorf("clear previous model: %w", err)
	}

	var rows []infoSetRow
	var snapErr error
	e.table.Foreach(func(is *InfoSet) bool {
		is.mu.Lock()
		weights, err := json.Marshal(is.Strategy.Weights)
		row := infoSetRow{
			Key:            is.Key,
			VisitCount:     is.Strategy.VisitCount,
			TotalRegret:    is.Strategy.TotalRegret,
			AvgStrategySum: is.AverageStrategySum,
			Weights:        string(weights),
		}
		is.mu.Unlock()
		if err != nil {
			snapErr = fmt.Errorf("encode weights for %s: %w", row.Key, err)
			return false
		}
		rows = append(rows, row)
		return true
	})
	if snapErr != nil {
		return snapErr
	}

	for _, row := range rows {
		_, err = tx.NamedExec(`
			INSERT INTO infosets (key, visit_count, total_regret, avg_strategy_sum, weights)
			VALUES (:key, :visit_count, :total_regret, :avg_strategy_sum, :weights)`, row)
		if err != nil {
			return fmt.Errorf("insert infoset %s: %w", row.Key, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	e.log.Info().Str("path", path).Int("infosets", len(rows)).Msg("model saved")
	return nil
}

// LoadModel replaces the current table with the model stored at path.
func (e *Engine) LoadModel(path string) error {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return fmt.Errorf("open model db: %w", err)
	}
	defer db.Close()

	var rows []infoSetRow
	if err = db.Select(&rows, `SELECT key, visit_count, total_regret, avg_strategy_sum, weights FROM infosets`); err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	e.table.Clear()
	for _, row := range rows {
		weights := make(map[holdem.Action]float64)
		if err = json.Unmarshal([]byte(row.Weights), &weights); err != nil {
			return fmt.Errorf("decode weights for %s: %w", row.Key, err)
		}
		is := e.table.GetOrCreate(row.Key)
		is.mu.Lock()
		is.Strategy.Weights = weights
		is.Strategy.TotalRegret = row.TotalRegret
		is.Strategy.VisitCount = row.VisitCount
		is.AverageStrategySum = row.AvgStrategySum
		is.mu.Unlock()
	}

	e.log.Info().Str("path", path).Int("infosets", len(rows)).Msg("model loaded")
	return nil
}
