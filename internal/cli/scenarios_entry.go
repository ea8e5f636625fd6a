package ortbench

import (
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/benchmark"
)

func runListScenarios(cfg *appconfig.Config, out io.Writer) error {
	if cfg == nil {
		return errors.New("config is not loaded")
	}
	scenarios, err := benchmark.SelectScenarios(benchmark.DefaultScenarios(), cfg.Scenarios)
	if err != nil {
		return err
	}

	runner := benchmark.NewRunner(nil)
	runner.Threads = cfg.Threads

	width := 0
	for _, sc := range scenarios {
		if len(sc.Name) > width {
			width = len(sc.Name)
		}
	}

	fmt.Fprintln(out, "Scenarios:")
	for i, sc := range scenarios {
		opts := runner.SessionOptions(sc)
		fmt.Fprintf(out, "  %d. %-*s  graph=%-8s intra-op=%d inter-op=%d\n",
			i+1, width, sc.Name, opts.OptimizationLevel, opts.IntraOpThreads, opts.InterOpThreads)
	}
	return nil
}
