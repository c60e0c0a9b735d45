// Package valuation exposes the valuation engine over HTTP.
package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"reactor_valuation/pkg/core/assumption"
	"reactor_valuation/pkg/core/report"
	"reactor_valuation/pkg/core/store"
	coreval "reactor_valuation/pkg/core/valuation"
)

var defaults assumption.Set

// InitHandler sets the assumption set used when a request omits parameters
// or scenarios.
func InitHandler(set assumption.Set) {
	defaults = set
}

// ReportRequest carries optional overrides; omitted parameter fields keep
// their configured defaults.
type ReportRequest struct {
	Parameters *coreval.Parameters `json:"parameters,omitempty"`
	Scenarios  []coreval.Scenario  `json:"scenarios,omitempty"`
}

// ReportResponse is the full valuation output for one run.
type ReportResponse struct {
	RunID       string             `json:"run_id"`
	Summary     *coreval.Summary   `json:"summary"`
	SeriesStats report.SeriesStats `json:"series_stats"`
	Markdown    string             `json:"markdown"`
}

// HandleValuationReport runs the base case plus scenarios and returns the
// complete result. POST /api/valuation/report.
func HandleValuationReport(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Pre-fill with defaults so a partial body only overrides what it names.
	params := defaults.Parameters
	req := ReportRequest{Parameters: &params}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// A JSON null zeroes the pointer; treat it the same as an absent block.
	if req.Parameters == nil {
		params = defaults.Parameters
		req.Parameters = &params
	}

	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = defaults.Scenarios
	}

	fmt.Printf("[VALUATION] Request: investment=%.0f horizon=%dy scenarios=%d\n",
		params.InitialInvestment, params.TimeToMaturity, len(scenarios))

	summary, err := coreval.RunFullValuation(*req.Parameters, scenarios)
	if err != nil {
		switch {
		case errors.Is(err, coreval.ErrInvalidParameter):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, coreval.ErrOptionDomain):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	md, err := report.Markdown(summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := ReportResponse{
		RunID:       uuid.NewString(),
		Summary:     summary,
		SeriesStats: report.Summarize(summary.Base.CashFlows),
		Markdown:    md,
	}

	// Persistence is best-effort: a missing database never fails the request.
	if store.GetPool() != nil {
		runID, _ := uuid.Parse(resp.RunID)
		if err := store.NewRunRepo().Save(context.Background(), runID, summary); err != nil {
			fmt.Printf("[VALUATION] WARN: failed to persist run %s: %v\n", resp.RunID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fmt.Printf("[VALUATION] WARN: failed to encode response: %v\n", err)
	}
}
