// Package assumption holds the model assumptions for a valuation case:
// the financial parameters and the utilisation scenarios. Assumptions can
// come from the documented defaults, a YAML parameter file, or an HJSON
// scenario preset file.
package assumption

import (
	"encoding/json"
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"reactor_valuation/pkg/core/valuation"
)

// Set is the full collection of assumptions for one valuation run.
type Set struct {
	Parameters valuation.Parameters `json:"parameters" yaml:"parameters"`
	Scenarios  []valuation.Scenario `json:"scenarios" yaml:"scenarios"`
}

// Default returns the documented base case with the fixed adoption scenarios.
func Default() Set {
	return Set{
		Parameters: valuation.DefaultParameters(),
		Scenarios:  valuation.DefaultScenarios(),
	}
}

// LoadYAML reads a parameter file over the defaults: keys present in the file
// override, everything else keeps its default value.
func LoadYAML(path string) (Set, error) {
	set := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("failed to read assumption file: %w", err)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, fmt.Errorf("failed to parse assumption file %s: %w", path, err)
	}

	if err := validateScenarios(set.Scenarios); err != nil {
		return set, err
	}
	return set, nil
}

// LoadScenariosHJSON reads utilisation scenario presets from an HJSON file.
// The file holds a list of {name, utilisation_rate} records; order in the
// file is evaluation and reporting order.
func LoadScenariosHJSON(path string) ([]valuation.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario presets: %w", err)
	}

	// HJSON -> interim value -> JSON -> struct, so struct tags apply.
	var raw interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scenario presets %s: %w", path, err)
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize scenario presets: %w", err)
	}

	var scenarios []valuation.Scenario
	if err := json.Unmarshal(jsonBytes, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenario presets: %w", err)
	}

	if err := validateScenarios(scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func validateScenarios(scenarios []valuation.Scenario) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	for _, sc := range scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario with empty name")
		}
		if sc.UtilisationRate <= 0 || sc.UtilisationRate > 1 {
			return fmt.Errorf("scenario %q: utilisation rate must be in (0,1], got %v", sc.Name, sc.UtilisationRate)
		}
	}
	return nil
}
