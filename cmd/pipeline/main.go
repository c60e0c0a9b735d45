package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"reactor_valuation/pkg/core/assumption"
	"reactor_valuation/pkg/core/report"
	"reactor_valuation/pkg/core/store"
	"reactor_valuation/pkg/core/valuation"
)

func main() {
	configPath := flag.String("config", "", "YAML assumption file (defaults used when empty)")
	scenarioPath := flag.String("scenarios", "", "HJSON scenario preset file (fixed scenarios when empty)")
	xlsxPath := flag.String("xlsx", "", "write an Excel workbook to this path")
	persist := flag.Bool("store", false, "persist the run to Postgres (DATABASE_URL)")
	flag.Parse()

	// Load environment variables
	godotenv.Load()

	set := assumption.Default()
	if *configPath != "" {
		loaded, err := assumption.LoadYAML(*configPath)
		if err != nil {
			fmt.Printf("[PIPELINE] Failed to load assumptions: %v\n", err)
			os.Exit(1)
		}
		set = loaded
	}
	if *scenarioPath != "" {
		scenarios, err := assumption.LoadScenariosHJSON(*scenarioPath)
		if err != nil {
			fmt.Printf("[PIPELINE] Failed to load scenario presets: %v\n", err)
			os.Exit(1)
		}
		set.Scenarios = scenarios
	}

	summary, err := valuation.RunFullValuation(set.Parameters, set.Scenarios)
	if err != nil {
		fmt.Printf("[PIPELINE] Valuation failed: %v\n", err)
		os.Exit(1)
	}

	for _, line := range report.Lines(summary) {
		fmt.Println(line)
	}

	stats := report.Summarize(summary.Base.CashFlows)
	fmt.Printf("Cash flow series: mean %s, min %s, max %s\n",
		report.FormatCurrency(stats.Mean), report.FormatCurrency(stats.Min), report.FormatCurrency(stats.Max))

	if *xlsxPath != "" {
		if err := report.WriteWorkbook(*xlsxPath, summary); err != nil {
			fmt.Printf("[PIPELINE] Failed to write workbook: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[PIPELINE] Workbook written to %s\n", *xlsxPath)
	}

	if *persist {
		ctx := context.Background()
		if err := store.InitDB(ctx, os.Getenv("DATABASE_URL")); err != nil {
			fmt.Printf("[PIPELINE] WARNING: persistence skipped: %v\n", err)
			return
		}
		defer store.Close()

		runID := uuid.New()
		if err := store.NewRunRepo().Save(ctx, runID, summary); err != nil {
			fmt.Printf("[PIPELINE] WARNING: failed to persist run: %v\n", err)
			return
		}
		fmt.Printf("[PIPELINE] Run stored as %s\n", runID)
	}
}
