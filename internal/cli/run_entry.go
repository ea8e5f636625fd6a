package ortbench

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/benchmark"
	"github.com/mwiater/ortbench/internal/engine"
	"github.com/mwiater/ortbench/internal/engine/ort"
	"github.com/mwiater/ortbench/internal/logging"
	"github.com/mwiater/ortbench/internal/report"
	"github.com/mwiater/ortbench/internal/sysinfo"
)

// benchEngine is the engine surface the commands need.
type benchEngine interface {
	engine.Engine
	Describe(modelPath string) ([]engine.TensorInfo, []engine.TensorInfo, error)
	Close() error
}

var newEngine = func(cfg *appconfig.Config) (benchEngine, error) {
	e, err := ort.New(cfg.SharedLibraryPath)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func runBenchmark(ctx context.Context, cfg *appconfig.Config, out io.Writer) (err error) {
	if cfg == nil {
		return errors.New("config is not loaded")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	scenarios, err := benchmark.SelectScenarios(benchmark.DefaultScenarios(), cfg.Scenarios)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release engine: %w", cerr)
		}
	}()

	runner := benchmark.NewRunner(eng)
	runner.Iterations = cfg.Iterations
	runner.Warmup = cfg.Warmup
	runner.Threads = cfg.Threads
	runner.Rand = benchmark.NewSeededSource(cfg.Seed)

	host := sysinfo.Detect()
	logging.LogEvent("benchmark start: model=%s iterations=%d warmup=%d scenarios=%d host=%s", cfg.ModelPath, cfg.Iterations, cfg.Warmup, len(scenarios), host)

	console := report.NewConsole(out)
	console.Header(cfg.ModelPath, cfg.Iterations, cfg.Warmup, host.String())

	summary, err := benchmark.RunAll(ctx, runner, cfg.ModelPath, scenarios, console)
	if err != nil {
		return err
	}

	console.Summary(summary)
	console.Chart(summary)
	return nil
}
