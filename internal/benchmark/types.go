// internal/benchmark/types.go
package benchmark

import (
	"time"

	"github.com/mwiater/ortbench/internal/engine"
	"github.com/mwiater/ortbench/internal/metrics"
)

// NoInputsLatency is the average latency reported for a model that declares
// no inputs.
const NoInputsLatency = -1.0

// Scenario is one (optimization, concurrency) configuration to measure.
type Scenario struct {
	Name      string `json:"name"`
	Optimized bool   `json:"optimized"`
	Multicore bool   `json:"multicore"`
}

// Result holds the measurements of a single scenario.
type Result struct {
	Scenario     Scenario              `json:"scenario"`
	Options      engine.SessionOptions `json:"options"`
	InputName    string                `json:"inputName,omitempty"`
	InputShape   engine.Shape          `json:"inputShape,omitempty"`
	Iterations   int                   `json:"iterations"`
	Warmup       int                   `json:"warmup"`
	Total        time.Duration         `json:"total"`
	AvgLatencyMs float64               `json:"avgLatencyMs"`
	Stats        metrics.RunningStat   `json:"stats"`
}

// NoInputs reports whether the result carries the no-inputs sentinel.
func (r Result) NoInputs() bool {
	return r.AvgLatencyMs < 0
}

// Summary lists scenario results in the order they ran.
type Summary []Result

// Lookup returns the result recorded for the named scenario.
func (s Summary) Lookup(name string) (Result, bool) {
	for _, r := range s {
		if r.Scenario.Name == name {
			return r, true
		}
	}
	return Result{}, false
}
