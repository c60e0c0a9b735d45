package valuation

// Summary bundles the base case with its scenario re-pricings, the unit of
// work the report layer, the store and the API all consume.
type Summary struct {
	Parameters Parameters       `json:"parameters"`
	Base       Result           `json:"base"`
	BaseNPV    float64          `json:"base_npv"`
	Scenarios  []ScenarioResult `json:"scenarios"`
}

// RunFullValuation evaluates the base case, then re-prices it under each
// scenario. Scenario order in the result follows definition order.
func RunFullValuation(p Parameters, scenarios []Scenario) (*Summary, error) {
	base, err := Evaluate(p)
	if err != nil {
		return nil, err
	}

	scenarioResults, err := EvaluateScenarios(
		base.PresentValue, p.InitialInvestment, p.TimeToMaturity, p.DiscountRate, p.Volatility, scenarios)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Parameters: p,
		Base:       *base,
		BaseNPV:    NetPresentValue(base.PresentValue, p.InitialInvestment),
		Scenarios:  scenarioResults,
	}, nil
}
