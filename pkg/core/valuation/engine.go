package valuation

import (
	"fmt"
	"math"
)

// Validate checks the parameter ranges before any computation runs.
func (p Parameters) Validate() error {
	if p.InitialInvestment <= 0 {
		return fmt.Errorf("%w: initial_investment must be > 0, got %v", ErrInvalidParameter, p.InitialInvestment)
	}
	if p.BaseCashFlow <= 0 {
		return fmt.Errorf("%w: base_cash_flow must be > 0, got %v", ErrInvalidParameter, p.BaseCashFlow)
	}
	if p.DiscountRate <= 0 || p.DiscountRate >= 1 {
		return fmt.Errorf("%w: discount_rate must be in (0,1), got %v", ErrInvalidParameter, p.DiscountRate)
	}
	if p.Volatility <= 0 || p.Volatility >= 1 {
		return fmt.Errorf("%w: volatility must be in (0,1), got %v", ErrInvalidParameter, p.Volatility)
	}
	return nil
}

// Evaluate projects the plant's annual net cash flows, discounts them to a
// present value, and prices the investment as a call option on that value.
// Pure function: no I/O, no shared state.
func Evaluate(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	flows := projectCashFlows(p)
	pv := presentValue(flows, p.DiscountRate)

	option, err := OptionValue(pv, p.InitialInvestment, float64(p.TimeToMaturity), p.DiscountRate, p.Volatility)
	if err != nil {
		return nil, err
	}

	return &Result{
		PresentValue: pv,
		OptionValue:  option,
		CashFlows:    flows,
	}, nil
}

// projectCashFlows builds the per-year net cash flow series.
//
// Year t (0-based) earns BaseCashFlow grown at GrowthRate and scaled by the
// commissioning ramp-up, less a constant maintenance charge. Decommissioning
// is concentrated entirely in the final year.
func projectCashFlows(p Parameters) []float64 {
	// A non-positive horizon has no years to project. The empty series
	// discounts to zero, which the option-pricing step rejects as a domain
	// error rather than a validation failure.
	if p.TimeToMaturity <= 0 {
		return nil
	}

	maintenance := p.InitialInvestment * MaintenanceRate

	flows := make([]float64, 0, p.TimeToMaturity)
	for t := 0; t < p.TimeToMaturity; t++ {
		rampUp := math.Min(1.0, float64(t+1)/rampUpYears)
		annual := p.BaseCashFlow*math.Pow(1+p.GrowthRate, float64(t))*rampUp - maintenance
		flows = append(flows, annual)
	}

	if len(flows) > 0 {
		flows[len(flows)-1] -= p.DecommissioningCost
	}
	return flows
}

// presentValue discounts the series with standard discrete annual compounding.
// The first cash flow is discounted one full period.
func presentValue(flows []float64, rate float64) float64 {
	pv := 0.0
	discountFactor := 1.0
	for _, cf := range flows {
		discountFactor /= 1 + rate
		pv += cf * discountFactor
	}
	return pv
}
