// internal/engine/engine.go
// Package engine defines the contract between the benchmark harness and the
// inference runtime that actually executes a model.
package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputs reports a model that declares no named inputs.
	ErrNoInputs = errors.New("model has no inputs")
	// ErrShapeTooLarge reports a shape whose element count exceeds MaxElements.
	ErrShapeTooLarge = errors.New("tensor shape too large")
)

// MaxElements bounds the element count of an input buffer (4 GiB of float32).
const MaxElements = 1 << 30

// OptimizationLevel selects how aggressively the runtime rewrites the graph
// before execution.
type OptimizationLevel int

const (
	// OptimizationDisabled runs the graph exactly as stored in the model.
	OptimizationDisabled OptimizationLevel = iota
	// OptimizationBasic applies semantics-preserving node eliminations.
	OptimizationBasic
	// OptimizationExtended adds complex node fusions.
	OptimizationExtended
	// OptimizationAll adds layout optimizations.
	OptimizationAll
)

// String returns the level name used in logs and reports.
func (l OptimizationLevel) String() string {
	switch l {
	case OptimizationDisabled:
		return "disabled"
	case OptimizationBasic:
		return "basic"
	case OptimizationExtended:
		return "extended"
	case OptimizationAll:
		return "all"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// SessionOptions configures a single inference session.
type SessionOptions struct {
	OptimizationLevel OptimizationLevel `json:"optimization_level"`
	IntraOpThreads    int               `json:"intra_op_threads"`
	InterOpThreads    int               `json:"inter_op_threads"`
}

// Shape lists tensor dimensions. Negative entries mark dynamic dimensions.
type Shape []int64

// Size returns the number of elements a tensor of this shape holds.
// A rank-0 shape holds a single scalar. Negative dimensions and products
// above MaxElements are errors.
func (s Shape) Size() (int, error) {
	size := int64(1)
	for i, d := range s {
		if d < 0 {
			return 0, fmt.Errorf("dimension %d of %v is negative", i, []int64(s))
		}
		if d != 0 && size > MaxElements/d {
			return 0, fmt.Errorf("%v: %w (limit %d elements)", []int64(s), ErrShapeTooLarge, MaxElements)
		}
		size *= d
	}
	return int(size), nil
}

// TensorInfo describes one named model input or output.
type TensorInfo struct {
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
}

// Engine opens configured sessions over model files.
type Engine interface {
	Open(modelPath string, opts SessionOptions) (Session, error)
}

// Session is a loaded model ready to accept inference calls. Callers must
// Close every session they open.
type Session interface {
	// Inputs returns the model's declared inputs in declaration order.
	Inputs() []TensorInfo
	// Outputs returns the model's declared outputs in declaration order.
	Outputs() []TensorInfo
	// Run feeds input, viewed with the given shape, to the first declared
	// input and requests every declared output. Output values are discarded.
	Run(input []float32, shape Shape) error
	Close() error
}
