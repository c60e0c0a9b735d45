package valuation

import "fmt"

// =============================================================================
// UTILISATION SCENARIOS
// =============================================================================

// Scenario is a named utilisation level applied to the base-case valuation.
// Scenarios are kept as an ordered slice, not a map, so that evaluation and
// reporting order always follows definition order.
type Scenario struct {
	Name            string  `json:"name" yaml:"name"`
	UtilisationRate float64 `json:"utilisation_rate" yaml:"utilisation_rate"`
}

// DefaultScenarios returns the fixed adoption scenarios, in reporting order.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Low", UtilisationRate: 0.10},
		{Name: "Medium", UtilisationRate: 0.20},
		{Name: "High", UtilisationRate: 0.40},
		{Name: "Optimal", UtilisationRate: 0.90},
	}
}

// ScenarioResult is one scenario's re-priced valuation.
type ScenarioResult struct {
	Scenario        string  `json:"scenario"`
	UtilisationRate float64 `json:"utilisation_rate"`
	AdjustedPV      float64 `json:"adjusted_present_value"`
	OptionValue     float64 `json:"option_value"`
}

// EvaluateScenarios rescales the base-case present value by each scenario's
// utilisation rate and re-prices the option at the adjusted value. The
// rescaling is applied to the aggregate PV directly; the cash-flow projection
// is not re-run per scenario. A domain failure in any scenario aborts the
// batch and names the scenario in the error.
func EvaluateScenarios(basePV, initialInvestment float64, years int, rate, sigma float64, scenarios []Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		adjusted := basePV * sc.UtilisationRate
		option, err := OptionValue(adjusted, initialInvestment, float64(years), rate, sigma)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		results = append(results, ScenarioResult{
			Scenario:        sc.Name,
			UtilisationRate: sc.UtilisationRate,
			AdjustedPV:      adjusted,
			OptionValue:     option,
		})
	}
	return results, nil
}
