package benchmark

import (
	"context"
	"fmt"

	"github.com/mwiater/ortbench/internal/logging"
)

// Reporter receives progress as the driver works through the scenarios.
type Reporter interface {
	ScenarioStarted(sc Scenario)
	ScenarioFinished(res Result)
}

// RunAll measures every scenario in slice order, one fresh session each.
// The first error aborts the remaining scenarios and is returned together
// with the results gathered so far.
func RunAll(ctx context.Context, runner *Runner, modelPath string, scenarios []Scenario, reporter Reporter) (Summary, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	summary := make(Summary, 0, len(scenarios))
	for i, sc := range scenarios {
		logging.LogEvent("Running scenario %d of %d: %s", i+1, len(scenarios), sc.Name)
		if reporter != nil {
			reporter.ScenarioStarted(sc)
		}

		res, err := runner.Measure(ctx, modelPath, sc)
		if err != nil {
			return summary, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		summary = append(summary, res)

		if reporter != nil {
			reporter.ScenarioFinished(res)
		}
	}
	return summary, nil
}
