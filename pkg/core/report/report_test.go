package report

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"reactor_valuation/pkg/core/valuation"
)

func runSummary(t *testing.T) *valuation.Summary {
	t.Helper()
	summary, err := valuation.RunFullValuation(valuation.DefaultParameters(), valuation.DefaultScenarios())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return summary
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12999035439.477, "AUD 12,999,035,439.48"},
		{1200, "AUD 1,200.00"},
		{999.994, "AUD 999.99"},
		{0, "AUD 0.00"},
		{-7200096456.05, "AUD -7,200,096,456.05"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLines(t *testing.T) {
	lines := Lines(runSummary(t))

	// Base block plus four scenario blocks, four lines each.
	if len(lines) != 20 {
		t.Fatalf("expected 20 report lines, got %d", len(lines))
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"AUD 12,999,035,439.48",
		"AUD 11,600,372,593.65",
		"AUD 4,499,035,439.48",
		"Low adoption (10% utilisation):",
		"AUD -7,200,096,456.05",
		"Optimal adoption (90% utilisation):",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("report missing %q\n%s", want, joined)
		}
	}
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(runSummary(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"# Plant Valuation Report",
		"| Base |",
		"| Low (10%) |",
		"| Optimal (90%) |",
		"AUD 12,999,035,439.48",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.Mean != 2.5 || s.Median != 2.5 || s.Min != 1 || s.Max != 4 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if math.Abs(s.StdDev-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("std dev %v", s.StdDev)
	}
}

func TestWriteWorkbook(t *testing.T) {
	summary := runSummary(t)
	path := filepath.Join(t.TempDir(), "valuation.xlsx")

	if err := WriteWorkbook(path, summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Valuation", "A3")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if got != "Low" {
		t.Errorf("first scenario row %q, want Low", got)
	}

	rows, err := f.GetRows("Cash Flows")
	if err != nil {
		t.Fatalf("failed to read cash flow sheet: %v", err)
	}
	// Header plus one row per projected year.
	if len(rows) != summary.Parameters.TimeToMaturity+1 {
		t.Errorf("cash flow sheet has %d rows, want %d", len(rows), summary.Parameters.TimeToMaturity+1)
	}
}
