// internal/benchmark/benchmark.go
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mwiater/ortbench/internal/engine"
	"github.com/mwiater/ortbench/internal/logging"
	"github.com/mwiater/ortbench/internal/sysinfo"
)

const (
	// DefaultIterations is the number of timed inferences per scenario.
	DefaultIterations = 100000
	// DefaultWarmup is the number of untimed inferences run before timing.
	DefaultWarmup = 10
)

// Runner measures the mean latency of one scenario at a time. Each call to
// Measure opens and closes its own session.
type Runner struct {
	Engine engine.Engine
	// Rand supplies input values. Nil means a generator seeded from entropy.
	Rand NormalSource
	// Iterations is the timed call count; zero means DefaultIterations.
	Iterations int
	// Warmup is the untimed call count; negative means DefaultWarmup.
	Warmup int
	// Threads is the intra-op thread count for multicore scenarios; zero
	// means the hardware concurrency.
	Threads int
	// Now is the clock used for timing; nil means time.Now.
	Now func() time.Time
}

// NewRunner returns a Runner with default iteration and warmup counts.
func NewRunner(e engine.Engine) *Runner {
	return &Runner{
		Engine:     e,
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
	}
}

// NewSeededSource returns a deterministic NormalSource for seed, or an
// entropy-seeded one when seed is zero.
func NewSeededSource(seed uint64) NormalSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SessionOptions returns the engine configuration for sc.
func (r *Runner) SessionOptions(sc Scenario) engine.SessionOptions {
	opts := engine.SessionOptions{
		OptimizationLevel: engine.OptimizationDisabled,
		IntraOpThreads:    1,
		InterOpThreads:    1,
	}
	if sc.Optimized {
		opts.OptimizationLevel = engine.OptimizationExtended
	}
	if sc.Multicore {
		opts.IntraOpThreads = r.threads()
	}
	return opts
}

// Measure runs the warmup phase and the timed loop for sc against the model
// at modelPath. A model without inputs yields a Result carrying
// NoInputsLatency and a nil error; every other failure is returned.
func (r *Runner) Measure(ctx context.Context, modelPath string, sc Scenario) (res Result, err error) {
	if r.Engine == nil {
		return Result{}, errors.New("benchmark runner has no engine")
	}
	iterations := r.iterations()
	if iterations < 1 {
		return Result{}, fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}
	warmup := r.warmup()
	now := r.clock()
	src := r.Rand
	if src == nil {
		src = NewSeededSource(0)
	}

	opts := r.SessionOptions(sc)
	res = Result{Scenario: sc, Options: opts, Iterations: iterations, Warmup: warmup}
	logging.LogScenario("open", modelPath, sc.Name, opts)

	session, err := r.Engine.Open(modelPath, opts)
	if err != nil {
		return Result{}, fmt.Errorf("open session for %s: %w", modelPath, err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close session for %s: %w", modelPath, cerr)
		}
	}()

	inputs := session.Inputs()
	if len(inputs) == 0 {
		logging.LogEvent("ERROR: %s: %v", modelPath, engine.ErrNoInputs)
		res.AvgLatencyMs = NoInputsLatency
		res.Iterations = 0
		res.Warmup = 0
		return res, nil
	}

	shape := ResolveShape(inputs[0].Shape)
	res.InputName = inputs[0].Name
	res.InputShape = shape
	size, err := shape.Size()
	if err != nil {
		return Result{}, fmt.Errorf("input %s: %w", inputs[0].Name, err)
	}
	buf := make([]float32, size)
	FillNormal(buf, src)
	logging.LogScenario("input", modelPath, sc.Name, fmt.Sprintf("name=%s declared=%v resolved=%v elements=%d", inputs[0].Name, inputs[0].Shape, shape, len(buf)))

	for i := 0; i < warmup; i++ {
		if err := session.Run(buf, shape); err != nil {
			return Result{}, fmt.Errorf("warmup inference %d of %d: %w", i+1, warmup, err)
		}
	}
	logging.LogScenario("warmup", modelPath, sc.Name, fmt.Sprintf("%d runs", warmup))

	start := now()
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("benchmark interrupted after %d of %d inferences: %w", i, iterations, err)
		}
		FillNormal(buf, src)
		callStart := now()
		if err := session.Run(buf, shape); err != nil {
			return Result{}, fmt.Errorf("inference %d of %d: %w", i+1, iterations, err)
		}
		res.Stats.Add(durationMillis(now().Sub(callStart)))
	}
	res.Total = now().Sub(start)
	res.AvgLatencyMs = durationMillis(res.Total) / float64(iterations)

	logging.LogScenario("done", modelPath, sc.Name, fmt.Sprintf("avg=%.6fms total=%s", res.AvgLatencyMs, res.Total))
	return res, nil
}

func (r *Runner) iterations() int {
	if r.Iterations == 0 {
		return DefaultIterations
	}
	return r.Iterations
}

func (r *Runner) warmup() int {
	if r.Warmup < 0 {
		return DefaultWarmup
	}
	return r.Warmup
}

func (r *Runner) threads() int {
	if r.Threads > 0 {
		return r.Threads
	}
	return sysinfo.HardwareConcurrency()
}

func (r *Runner) clock() func() time.Time {
	if r.Now != nil {
		return r.Now
	}
	return time.Now
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
