package valuation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal supplies Φ, the standard normal CDF, for the Black-Scholes terms.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// OptionValue prices the right (not the obligation) to commit strike in
// exchange for an asset worth pv, as a Black-Scholes European call:
//
//	d1 = (ln(pv/strike) + (r + σ²/2)·T) / (σ·√T)
//	d2 = d1 − σ·√T
//	C  = pv·Φ(d1) − strike·e^(−rT)·Φ(d2)
//
// The project discount rate doubles as the risk-free rate here. That is a
// deliberate model simplification, not an oversight.
func OptionValue(pv, strike, years, rate, sigma float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("%w: time to maturity must be positive, got %v years", ErrOptionDomain, years)
	}
	if pv <= 0 {
		return 0, fmt.Errorf("%w: present value must be positive to take log-moneyness, got %v", ErrOptionDomain, pv)
	}

	sqrtT := math.Sqrt(years)
	d1 := (math.Log(pv/strike) + (rate+0.5*sigma*sigma)*years) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	return pv*stdNormal.CDF(d1) - strike*math.Exp(-rate*years)*stdNormal.CDF(d2), nil
}

// NetPresentValue derives NPV from a present value and the committed capital.
// Not stored on Result: callers compute it for the base case and for each
// scenario's adjusted present value alike.
func NetPresentValue(pv, initialInvestment float64) float64 {
	return pv - initialInvestment
}
