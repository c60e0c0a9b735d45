package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reactor_valuation/pkg/core/valuation"
)

const (
	summarySheet  = "Valuation"
	cashFlowSheet = "Cash Flows"
)

// WriteWorkbook exports the summary to an .xlsx workbook: one sheet with the
// base case and scenario results, one with the projected cash-flow series.
func WriteWorkbook(path string, summary *valuation.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)

	headers := []string{"Scenario", "Utilisation", "Present Value (AUD)", "Option Value (AUD)", "NPV (AUD)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		f.SetCellValue(summarySheet, cell, h)
	}

	invest := summary.Parameters.InitialInvestment
	writeRow := func(row int, name string, utilisation, pv, option float64) error {
		values := []interface{}{name, utilisation, pv, option, valuation.NetPresentValue(pv, invest)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			f.SetCellValue(summarySheet, cell, v)
		}
		return nil
	}

	if err := writeRow(2, "Base", 1.0, summary.Base.PresentValue, summary.Base.OptionValue); err != nil {
		return err
	}
	for i, sc := range summary.Scenarios {
		if err := writeRow(i+3, sc.Scenario, sc.UtilisationRate, sc.AdjustedPV, sc.OptionValue); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(cashFlowSheet); err != nil {
		return fmt.Errorf("failed to create cash flow sheet: %w", err)
	}
	f.SetCellValue(cashFlowSheet, "A1", "Year")
	f.SetCellValue(cashFlowSheet, "B1", "Net Cash Flow (AUD)")
	for i, cf := range summary.Base.CashFlows {
		f.SetCellValue(cashFlowSheet, fmt.Sprintf("A%d", i+2), i+1)
		f.SetCellValue(cashFlowSheet, fmt.Sprintf("B%d", i+2), cf)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}
