// Package enginetest provides an in-memory engine.Engine whose inference
// calls take a fixed, simulated duration.
package enginetest

import (
	"errors"
	"sync"
	"time"

	"github.com/mwiater/ortbench/internal/engine"
)

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Engine is a stub engine. Each Run advances Clock by Latency when Clock is
// set, otherwise it sleeps for Latency.
type Engine struct {
	Inputs  []engine.TensorInfo
	Outputs []engine.TensorInfo
	Latency time.Duration
	Clock   *Clock

	OpenErr error
	// RunErr is returned by the Nth Run call (1-based) when FailOnRun > 0.
	RunErr    error
	FailOnRun int
	// Record keeps a copy of every buffer passed to Run.
	Record bool

	mu       sync.Mutex
	opened   []engine.SessionOptions
	runs     int
	closed   int
	buffers  [][]float32
	shapes   []engine.Shape
	released bool
}

// Open records opts and returns a stub session.
func (e *Engine) Open(modelPath string, opts engine.SessionOptions) (engine.Session, error) {
	if e.OpenErr != nil {
		return nil, e.OpenErr
	}
	e.mu.Lock()
	e.opened = append(e.opened, opts)
	e.mu.Unlock()
	return &session{engine: e}, nil
}

// Describe returns the configured inputs and outputs.
func (e *Engine) Describe(modelPath string) ([]engine.TensorInfo, []engine.TensorInfo, error) {
	if e.OpenErr != nil {
		return nil, nil, e.OpenErr
	}
	return e.Inputs, e.Outputs, nil
}

// Close marks the engine released.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.released = true
	return nil
}

// Released reports whether Close was called.
func (e *Engine) Released() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.released
}

// Opened returns the options of every session opened so far.
func (e *Engine) Opened() []engine.SessionOptions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.SessionOptions(nil), e.opened...)
}

// Runs returns the number of Run calls across all sessions.
func (e *Engine) Runs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs
}

// Closed returns the number of sessions closed.
func (e *Engine) Closed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Buffers returns the recorded input buffers in call order.
func (e *Engine) Buffers() [][]float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([][]float32(nil), e.buffers...)
}

// Shapes returns the recorded input shapes in call order.
func (e *Engine) Shapes() []engine.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.Shape(nil), e.shapes...)
}

type session struct {
	engine *Engine
	closed bool
}

func (s *session) Inputs() []engine.TensorInfo  { return s.engine.Inputs }
func (s *session) Outputs() []engine.TensorInfo { return s.engine.Outputs }

func (s *session) Run(input []float32, shape engine.Shape) error {
	e := s.engine
	if s.closed {
		return errors.New("enginetest: run on closed session")
	}
	if len(e.Inputs) == 0 {
		return engine.ErrNoInputs
	}

	e.mu.Lock()
	e.runs++
	n := e.runs
	if e.Record {
		e.buffers = append(e.buffers, append([]float32(nil), input...))
		e.shapes = append(e.shapes, append(engine.Shape(nil), shape...))
	}
	e.mu.Unlock()

	if e.Clock != nil {
		e.Clock.Advance(e.Latency)
	} else if e.Latency > 0 {
		time.Sleep(e.Latency)
	}

	if e.FailOnRun > 0 && n == e.FailOnRun {
		return e.RunErr
	}
	return nil
}

func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.engine.mu.Lock()
	s.engine.closed++
	s.engine.mu.Unlock()
	return nil
}
