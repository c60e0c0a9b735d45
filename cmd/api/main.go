package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apivaluation "reactor_valuation/pkg/api/valuation"
	"reactor_valuation/pkg/core/assumption"
	"reactor_valuation/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Assumptions: YAML file when present, documented defaults otherwise.
	set := assumption.Default()
	configPath := os.Getenv("ASSUMPTIONS_FILE")
	if configPath == "" {
		configPath = "config/assumptions.yaml"
	}
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := assumption.LoadYAML(configPath)
		if err != nil {
			fmt.Printf("[API] Failed to load %s: %v\n", configPath, err)
			os.Exit(1)
		}
		set = loaded
		fmt.Printf("[API] Loaded assumptions from %s\n", configPath)
	} else {
		fmt.Println("[API] No assumption file found, using documented defaults")
	}

	// Persistence is optional; the service answers without a database.
	if err := store.InitDB(context.Background(), os.Getenv("DATABASE_URL")); err != nil {
		fmt.Printf("[API] WARNING: run persistence disabled: %v\n", err)
	} else {
		defer store.Close()
		fmt.Println("[API] Run persistence enabled")
	}

	apivaluation.InitHandler(set)
	http.HandleFunc("/api/valuation/report", apivaluation.HandleValuationReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}
	fmt.Printf("[API] Valuation service listening on :%s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[API] Server failed: %v\n", err)
		os.Exit(1)
	}
}
