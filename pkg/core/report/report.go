// Package report renders completed valuations for people: currency-formatted
// text lines, a markdown report, descriptive statistics of the projected
// series, and an Excel workbook. All three numeric quantities (present value,
// option value, NPV) are exposed for the base case and every scenario.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"reactor_valuation/pkg/core/valuation"
)

// currencyCode prefixes every formatted amount.
const currencyCode = "AUD"

// FormatCurrency renders an amount with two decimals and thousands
// separators, e.g. "AUD 12,999,035,439.48".
func FormatCurrency(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s.%s", currencyCode, sign, b.String(), fracPart)
}

// Lines renders the base case and each scenario as report lines, in
// evaluation order.
func Lines(summary *valuation.Summary) []string {
	invest := summary.Parameters.InitialInvestment

	lines := []string{
		"Base case:",
		fmt.Sprintf("  Present value: %s", FormatCurrency(summary.Base.PresentValue)),
		fmt.Sprintf("  Option value:  %s", FormatCurrency(summary.Base.OptionValue)),
		fmt.Sprintf("  NPV:           %s", FormatCurrency(summary.BaseNPV)),
	}

	for _, sc := range summary.Scenarios {
		npv := valuation.NetPresentValue(sc.AdjustedPV, invest)
		lines = append(lines,
			fmt.Sprintf("%s adoption (%.0f%% utilisation):", sc.Scenario, sc.UtilisationRate*100),
			fmt.Sprintf("  Present value: %s", FormatCurrency(sc.AdjustedPV)),
			fmt.Sprintf("  Option value:  %s", FormatCurrency(sc.OptionValue)),
			fmt.Sprintf("  NPV:           %s", FormatCurrency(npv)),
		)
	}
	return lines
}

// Markdown renders the summary as a markdown report and checks that it
// parses. Goldmark is permissive, so the check is structural rather than
// strict, but it guards against broken table generation.
func Markdown(summary *valuation.Summary) (string, error) {
	invest := summary.Parameters.InitialInvestment

	var b strings.Builder
	b.WriteString("# Plant Valuation Report\n\n")
	b.WriteString(fmt.Sprintf("Initial investment: %s over a %d-year horizon.\n\n",
		FormatCurrency(invest), summary.Parameters.TimeToMaturity))

	b.WriteString("| Scenario | Present Value | Option Value | NPV |\n")
	b.WriteString("|---|---|---|---|\n")
	b.WriteString(fmt.Sprintf("| Base | %s | %s | %s |\n",
		FormatCurrency(summary.Base.PresentValue),
		FormatCurrency(summary.Base.OptionValue),
		FormatCurrency(summary.BaseNPV)))
	for _, sc := range summary.Scenarios {
		b.WriteString(fmt.Sprintf("| %s (%.0f%%) | %s | %s | %s |\n",
			sc.Scenario, sc.UtilisationRate*100,
			FormatCurrency(sc.AdjustedPV),
			FormatCurrency(sc.OptionValue),
			FormatCurrency(valuation.NetPresentValue(sc.AdjustedPV, invest))))
	}

	md := b.String()
	parser := goldmark.DefaultParser()
	if doc := parser.Parse(text.NewReader([]byte(md))); doc == nil {
		return "", fmt.Errorf("generated report is not valid markdown")
	}
	return md, nil
}

// SeriesStats summarizes the projected cash-flow series.
type SeriesStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics over the per-year net cash flows.
func Summarize(flows []float64) SeriesStats {
	mean, _ := stats.Mean(flows)
	median, _ := stats.Median(flows)
	min, _ := stats.Min(flows)
	max, _ := stats.Max(flows)
	stdDev, _ := stats.StandardDeviation(flows)

	return SeriesStats{
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: stdDev,
	}
}
