// internal/engine/ort/ort.go
// Package ort runs models through ONNX Runtime.
package ort

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mwiater/ortbench/internal/engine"
	"github.com/mwiater/ortbench/internal/logging"
	onnx "github.com/yalue/onnxruntime_go"
)

var (
	envMu   sync.Mutex
	envRefs int
)

// Engine is an engine.Engine backed by the process-wide ONNX Runtime
// environment. Create it with New and release it with Close.
type Engine struct {
	closeOnce sync.Once
}

// New loads the ONNX Runtime shared library and initializes the
// environment. An empty libraryPath keeps the binding's platform default.
func New(libraryPath string) (*Engine, error) {
	envMu.Lock()
	defer envMu.Unlock()

	if envRefs == 0 {
		if libraryPath != "" {
			onnx.SetSharedLibraryPath(libraryPath)
		}
		if err := onnx.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime environment: %w", err)
		}
		logging.LogEvent("onnxruntime environment initialized (library %q)", libraryPath)
	}
	envRefs++
	return &Engine{}, nil
}

// Close releases the environment once no engine references it.
func (e *Engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		envMu.Lock()
		defer envMu.Unlock()
		envRefs--
		if envRefs == 0 {
			err = onnx.DestroyEnvironment()
		}
	})
	return err
}

// Describe reports the model's inputs and outputs without creating a session.
func (e *Engine) Describe(modelPath string) ([]engine.TensorInfo, []engine.TensorInfo, error) {
	inputs, outputs, err := onnx.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read model metadata %s: %w", modelPath, err)
	}
	return toTensorInfo(inputs), toTensorInfo(outputs), nil
}

// Open creates a session configured with opts. A model without inputs yields
// a session that reports no inputs and refuses to run.
func (e *Engine) Open(modelPath string, opts engine.SessionOptions) (engine.Session, error) {
	inputs, outputs, err := e.Describe(modelPath)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return &session{outputs: outputs}, nil
	}

	options, err := onnx.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	if err := options.SetGraphOptimizationLevel(graphLevel(opts.OptimizationLevel)); err != nil {
		return nil, fmt.Errorf("set graph optimization level %s: %w", opts.OptimizationLevel, err)
	}
	if err := options.SetIntraOpNumThreads(opts.IntraOpThreads); err != nil {
		return nil, fmt.Errorf("set intra-op threads %d: %w", opts.IntraOpThreads, err)
	}
	if err := options.SetInterOpNumThreads(opts.InterOpThreads); err != nil {
		return nil, fmt.Errorf("set inter-op threads %d: %w", opts.InterOpThreads, err)
	}

	outputNames := make([]string, len(outputs))
	for i, out := range outputs {
		outputNames[i] = out.Name
	}

	s, err := onnx.NewDynamicAdvancedSession(modelPath, []string{inputs[0].Name}, outputNames, options)
	if err != nil {
		return nil, fmt.Errorf("create session for %s: %w", modelPath, err)
	}
	return &session{ort: s, inputs: inputs, outputs: outputs}, nil
}

type session struct {
	ort     *onnx.DynamicAdvancedSession
	inputs  []engine.TensorInfo
	outputs []engine.TensorInfo
}

func (s *session) Inputs() []engine.TensorInfo  { return s.inputs }
func (s *session) Outputs() []engine.TensorInfo { return s.outputs }

// Run wraps input in a fresh value, runs the session and destroys
// every runtime-allocated output.
func (s *session) Run(input []float32, shape engine.Shape) error {
	if s.ort == nil {
		return engine.ErrNoInputs
	}

	tensor, err := inputValue(input, shape)
	if err != nil {
		return err
	}
	defer tensor.Destroy()

	outputs := make([]onnx.Value, len(s.outputs))
	runErr := s.ort.Run([]onnx.Value{tensor}, outputs)

	var destroyErr error
	for _, out := range outputs {
		if out == nil {
			continue
		}
		destroyErr = errors.Join(destroyErr, out.Destroy())
	}
	if runErr != nil {
		return fmt.Errorf("run inference: %w", runErr)
	}
	return destroyErr
}

var (
	newTensorValue = func(shape onnx.Shape, data []float32) (onnx.Value, error) { return onnx.NewTensor(shape, data) }
	newScalarValue = func(v float32) (onnx.Value, error) { return onnx.NewScalar(v) }
)

// inputValue views input as an ONNX value. A rank-0 shape becomes a scalar,
// which the runtime cannot express as a tensor with an empty shape.
func inputValue(input []float32, shape engine.Shape) (onnx.Value, error) {
	if len(shape) == 0 {
		if len(input) == 0 {
			return nil, errors.New("create scalar input: empty buffer")
		}
		v, err := newScalarValue(input[0])
		if err != nil {
			return nil, fmt.Errorf("create scalar input: %w", err)
		}
		return v, nil
	}
	v, err := newTensorValue(onnx.Shape(shape), input)
	if err != nil {
		return nil, fmt.Errorf("create input tensor %v: %w", shape, err)
	}
	return v, nil
}

func (s *session) Close() error {
	if s.ort == nil {
		return nil
	}
	err := s.ort.Destroy()
	s.ort = nil
	return err
}

func graphLevel(level engine.OptimizationLevel) onnx.GraphOptimizationLevel {
	switch level {
	case engine.OptimizationBasic:
		return onnx.GraphOptimizationLevelEnableBasic
	case engine.OptimizationExtended:
		return onnx.GraphOptimizationLevelEnableExtended
	case engine.OptimizationAll:
		return onnx.GraphOptimizationLevelEnableAll
	default:
		return onnx.GraphOptimizationLevelDisableAll
	}
}

func toTensorInfo(infos []onnx.InputOutputInfo) []engine.TensorInfo {
	out := make([]engine.TensorInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, engine.TensorInfo{
			Name:  info.Name,
			Shape: engine.Shape(info.Dimensions),
		})
	}
	return out
}
