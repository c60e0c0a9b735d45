// Package valuation implements the discounted-cash-flow and real-option
// valuation of a nuclear power plant. The plant's projected cash flows are
// discounted to a present value, and the investment decision is then priced
// as a European call option on that value (Black-Scholes), treating the
// initial capital outlay as the strike.
package valuation

import "errors"

// =============================================================================
// MODEL PARAMETERS
// =============================================================================

// Default model parameters for the reference plant (all amounts in AUD).
// These match the documented base case in the README.
const (
	DefaultInitialInvestment   = 8.5e9 // Capital cost of the plant
	DefaultBaseCashFlow        = 1.2e9 // Annual net revenue at full output
	DefaultDiscountRate        = 0.07  // Also used as the risk-free rate in the option step
	DefaultVolatility          = 0.25  // Volatility of the underlying project value
	DefaultTimeToMaturity      = 25    // Operating horizon in years
	DefaultGrowthRate          = 0.02  // Annual cash-flow growth
	DefaultDecommissioningCost = 9e8   // End-of-life cost, charged to the final year
)

// MaintenanceRate is the fixed annual maintenance charge as a fraction of the
// initial investment, deducted from every year's cash flow.
const MaintenanceRate = 0.025

// rampUpYears is the commissioning period: output scales linearly from 1/3 in
// year one to full output in year three.
const rampUpYears = 3

// Parameters holds the financial inputs for a single plant valuation.
type Parameters struct {
	InitialInvestment   float64 `json:"initial_investment" yaml:"initial_investment"`
	BaseCashFlow        float64 `json:"base_cash_flow" yaml:"base_cash_flow"`
	DiscountRate        float64 `json:"discount_rate" yaml:"discount_rate"`
	Volatility          float64 `json:"volatility" yaml:"volatility"`
	TimeToMaturity      int     `json:"time_to_maturity" yaml:"time_to_maturity"`
	GrowthRate          float64 `json:"growth_rate" yaml:"growth_rate"`
	DecommissioningCost float64 `json:"decommissioning_cost" yaml:"decommissioning_cost"`
}

// DefaultParameters returns the documented base case.
func DefaultParameters() Parameters {
	return Parameters{
		InitialInvestment:   DefaultInitialInvestment,
		BaseCashFlow:        DefaultBaseCashFlow,
		DiscountRate:        DefaultDiscountRate,
		Volatility:          DefaultVolatility,
		TimeToMaturity:      DefaultTimeToMaturity,
		GrowthRate:          DefaultGrowthRate,
		DecommissioningCost: DefaultDecommissioningCost,
	}
}

// Result holds the valuation outputs. CashFlows carries the projected net
// cash flow per operating year (index 0 is year one).
type Result struct {
	PresentValue float64   `json:"present_value"`
	OptionValue  float64   `json:"option_value"`
	CashFlows    []float64 `json:"cash_flows"`
}

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// ErrInvalidParameter marks eager validation failures. The wrapped message
// names the violated constraint.
var ErrInvalidParameter = errors.New("invalid valuation parameter")

// ErrOptionDomain marks failures inside the option-pricing step (logarithm or
// square root fed an out-of-domain value). Deterministic: re-running with the
// same inputs fails the same way.
var ErrOptionDomain = errors.New("option pricing domain error")
