package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"reactor_valuation/pkg/core/valuation"
)

// RunRepo stores completed valuation runs, one row per run.
type RunRepo struct {
	pool *pgxpool.Pool
}

// NewRunRepo creates a repository bound to the shared pool. Construct it
// after InitDB; a repo built without a pool reports the error on use.
func NewRunRepo() *RunRepo {
	return &RunRepo{pool: GetPool()}
}

// Save persists a finished run keyed by its ID. The whole summary goes into a
// single JSONB column; separate columns are not worth it while the result
// shape is still settling.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS valuation_runs (
//	  run_id UUID PRIMARY KEY,
//	  params_json JSONB,
//	  result_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
func (r *RunRepo) Save(ctx context.Context, runID uuid.UUID, summary *valuation.Summary) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	paramsJSON, err := json.Marshal(summary.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}
	resultJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	query := `
		INSERT INTO valuation_runs (run_id, params_json, result_json, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_id)
		DO UPDATE SET params_json = $2, result_json = $3, created_at = $4`

	if _, err := r.pool.Exec(ctx, query, runID, paramsJSON, resultJSON, time.Now()); err != nil {
		return fmt.Errorf("failed to save valuation run: %w", err)
	}
	return nil
}

// Load fetches a stored run by ID.
func (r *RunRepo) Load(ctx context.Context, runID uuid.UUID) (*valuation.Summary, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var resultJSON []byte
	row := r.pool.QueryRow(ctx, `SELECT result_json FROM valuation_runs WHERE run_id = $1`, runID)
	if err := row.Scan(&resultJSON); err != nil {
		return nil, fmt.Errorf("failed to load valuation run %s: %w", runID, err)
	}

	var summary valuation.Summary
	if err := json.Unmarshal(resultJSON, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode valuation run %s: %w", runID, err)
	}
	return &summary, nil
}
