package ort

import (
	"errors"
	"testing"

	"github.com/mwiater/ortbench/internal/engine"
	onnx "github.com/yalue/onnxruntime_go"
)

func TestGraphLevel(t *testing.T) {
	cases := map[engine.OptimizationLevel]onnx.GraphOptimizationLevel{
		engine.OptimizationDisabled:  onnx.GraphOptimizationLevelDisableAll,
		engine.OptimizationBasic:     onnx.GraphOptimizationLevelEnableBasic,
		engine.OptimizationExtended:  onnx.GraphOptimizationLevelEnableExtended,
		engine.OptimizationAll:       onnx.GraphOptimizationLevelEnableAll,
		engine.OptimizationLevel(42): onnx.GraphOptimizationLevelDisableAll,
	}
	for level, want := range cases {
		if got := graphLevel(level); got != want {
			t.Fatalf("graphLevel(%s) = %v, want %v", level, got, want)
		}
	}
}

func TestToTensorInfo(t *testing.T) {
	infos := []onnx.InputOutputInfo{
		{Name: "input", Dimensions: onnx.NewShape(-1, 3, 224, 224)},
		{Name: "mask", Dimensions: onnx.NewShape(1, 16)},
	}
	got := toTensorInfo(infos)
	if len(got) != 2 {
		t.Fatalf("expected 2 infos, got %d", len(got))
	}
	if got[0].Name != "input" || len(got[0].Shape) != 4 || got[0].Shape[0] != -1 {
		t.Fatalf("unexpected first info: %+v", got[0])
	}
	if size, err := got[1].Shape.Size(); err != nil || size != 16 {
		t.Fatalf("unexpected second info size: %d (%v)", size, err)
	}
}

func TestSessionWithoutInputsRefusesToRun(t *testing.T) {
	s := &session{outputs: []engine.TensorInfo{{Name: "out"}}}
	if len(s.Inputs()) != 0 {
		t.Fatalf("expected no inputs")
	}
	if err := s.Run([]float32{1}, engine.Shape{1}); !errors.Is(err, engine.ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

type fakeValue struct {
	onnx.Value
	scalar float32
	shape  onnx.Shape
	data   []float32
}

func stubValueConstructors(t *testing.T) {
	t.Helper()
	prevTensor, prevScalar := newTensorValue, newScalarValue
	newTensorValue = func(shape onnx.Shape, data []float32) (onnx.Value, error) {
		if err := shape.Validate(); err != nil {
			return nil, err
		}
		return &fakeValue{shape: shape, data: data}, nil
	}
	newScalarValue = func(v float32) (onnx.Value, error) { return &fakeValue{scalar: v}, nil }
	t.Cleanup(func() { newTensorValue, newScalarValue = prevTensor, prevScalar })
}

func TestInputValueRankZeroBecomesScalar(t *testing.T) {
	stubValueConstructors(t)

	v, err := inputValue([]float32{0.25}, engine.Shape{})
	if err != nil {
		t.Fatalf("inputValue: %v", err)
	}
	fv := v.(*fakeValue)
	if fv.shape != nil || fv.scalar != 0.25 {
		t.Fatalf("expected scalar 0.25, got %+v", fv)
	}

	if _, err := inputValue(nil, engine.Shape{}); err == nil {
		t.Fatalf("expected error for empty scalar buffer")
	}
}

func TestInputValueTensor(t *testing.T) {
	stubValueConstructors(t)

	buf := make([]float32, 6)
	v, err := inputValue(buf, engine.Shape{1, 2, 3})
	if err != nil {
		t.Fatalf("inputValue: %v", err)
	}
	fv := v.(*fakeValue)
	if len(fv.shape) != 3 || fv.shape[2] != 3 || len(fv.data) != 6 {
		t.Fatalf("unexpected tensor: %+v", fv)
	}
}

func TestInputValueRequiresEnvironment(t *testing.T) {
	for _, shape := range []engine.Shape{{}, {1, 4}} {
		_, err := inputValue(make([]float32, 4), shape)
		if !errors.Is(err, onnx.NotInitializedError) {
			t.Fatalf("shape %v: expected NotInitializedError, got %v", shape, err)
		}
	}
}
