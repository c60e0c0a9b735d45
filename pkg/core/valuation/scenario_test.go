package valuation

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultScenarios_FixedRates(t *testing.T) {
	scenarios := DefaultScenarios()
	want := []struct {
		name string
		rate float64
	}{
		{"Low", 0.10},
		{"Medium", 0.20},
		{"High", 0.40},
		{"Optimal", 0.90},
	}

	if len(scenarios) != len(want) {
		t.Fatalf("expected %d scenarios, got %d", len(want), len(scenarios))
	}
	for i, w := range want {
		if scenarios[i].Name != w.name || scenarios[i].UtilisationRate != w.rate {
			t.Errorf("scenario %d: got {%s %v}, want {%s %v}",
				i, scenarios[i].Name, scenarios[i].UtilisationRate, w.name, w.rate)
		}
	}
}

func TestEvaluateScenarios_ExactRescaling(t *testing.T) {
	p := DefaultParameters()
	base, err := Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := EvaluateScenarios(base.PresentValue, p.InitialInvestment,
		p.TimeToMaturity, p.DiscountRate, p.Volatility, DefaultScenarios())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, sc := range DefaultScenarios() {
		if results[i].Scenario != sc.Name {
			t.Errorf("result %d: scenario %q, want %q (order must be preserved)", i, results[i].Scenario, sc.Name)
		}
		// Linear rescaling of the aggregate PV, bit-for-bit.
		if results[i].AdjustedPV != base.PresentValue*sc.UtilisationRate {
			t.Errorf("scenario %s: adjusted PV %v, want %v",
				sc.Name, results[i].AdjustedPV, base.PresentValue*sc.UtilisationRate)
		}
	}
}

func TestEvaluateScenarios_Oracles(t *testing.T) {
	p := DefaultParameters()
	base, err := Evaluate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := EvaluateScenarios(base.PresentValue, p.InitialInvestment,
		p.TimeToMaturity, p.DiscountRate, p.Volatility, DefaultScenarios())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oracles := map[string]struct {
		pv, option, npv float64
	}{
		"Low":     {1299903543.95, 564234565.48, -7200096456.05},
		"Optimal": {11699131895.53, 10313593064.38, 3199131895.53},
	}

	for _, res := range results {
		want, ok := oracles[res.Scenario]
		if !ok {
			continue
		}
		if !approxEqual(res.AdjustedPV, want.pv, oracleTolerance) {
			t.Errorf("%s: adjusted PV %v, want %v", res.Scenario, res.AdjustedPV, want.pv)
		}
		if !approxEqual(res.OptionValue, want.option, oracleTolerance) {
			t.Errorf("%s: option value %v, want %v", res.Scenario, res.OptionValue, want.option)
		}
		npv := NetPresentValue(res.AdjustedPV, p.InitialInvestment)
		if !approxEqual(npv, want.npv, oracleTolerance) {
			t.Errorf("%s: NPV %v, want %v", res.Scenario, npv, want.npv)
		}
	}
}

func TestEvaluateScenarios_FailureNamesScenario(t *testing.T) {
	p := DefaultParameters()
	// A negative base PV drives every adjusted PV out of the log domain.
	_, err := EvaluateScenarios(-1e9, p.InitialInvestment,
		p.TimeToMaturity, p.DiscountRate, p.Volatility, DefaultScenarios())
	if err == nil {
		t.Fatal("expected domain error, got nil")
	}
	if !errors.Is(err, ErrOptionDomain) {
		t.Errorf("expected ErrOptionDomain, got %v", err)
	}
	if !strings.Contains(err.Error(), "Low") {
		t.Errorf("error should name the failing scenario: %v", err)
	}
}

func TestRunFullValuation(t *testing.T) {
	summary, err := RunFullValuation(DefaultParameters(), DefaultScenarios())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Scenarios) != 4 {
		t.Fatalf("expected 4 scenario results, got %d", len(summary.Scenarios))
	}
	if !approxEqual(summary.BaseNPV, 4499035439.48, oracleTolerance) {
		t.Errorf("base NPV %v, want 4499035439.48", summary.BaseNPV)
	}
}
