package benchmark

import (
	"fmt"
	"strings"
)

// DefaultScenarios returns the four measured configurations in the order
// they run.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Single-core, unoptimized", Optimized: false, Multicore: false},
		{Name: "Single-core, optimized", Optimized: true, Multicore: false},
		{Name: "Multicore, unoptimized", Optimized: false, Multicore: true},
		{Name: "Multicore, optimized", Optimized: true, Multicore: true},
	}
}

// SelectScenarios keeps the scenarios whose names contain any of the given
// filters, case-insensitively, preserving order. No filters keeps all.
func SelectScenarios(all []Scenario, filters []string) ([]Scenario, error) {
	var cleaned []string
	for _, f := range filters {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) == 0 {
		return all, nil
	}

	var selected []Scenario
	for _, sc := range all {
		name := strings.ToLower(sc.Name)
		for _, f := range cleaned {
			if strings.Contains(name, f) {
				selected = append(selected, sc)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no scenario matches %q", strings.Join(filters, ", "))
	}
	return selected, nil
}
