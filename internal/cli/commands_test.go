package ortbench

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/engine"
	"github.com/mwiater/ortbench/internal/engine/enginetest"
	"github.com/spf13/cobra"
)

func stubEngine(t *testing.T, stub *enginetest.Engine) {
	t.Helper()
	prev := newEngine
	newEngine = func(cfg *appconfig.Config) (benchEngine, error) { return stub, nil }
	t.Cleanup(func() { newEngine = prev })
}

func testConfig(model string) *appconfig.Config {
	return &appconfig.Config{ModelPath: model, Iterations: 20, Warmup: 2, Threads: 4, Seed: 11}
}

func TestRunBenchmarkPrintsEveryScenario(t *testing.T) {
	stub := &enginetest.Engine{
		Inputs:  []engine.TensorInfo{{Name: "input", Shape: engine.Shape{-1, 4}}},
		Outputs: []engine.TensorInfo{{Name: "output", Shape: engine.Shape{-1, 1}}},
		Latency: 10 * time.Microsecond,
	}
	stubEngine(t, stub)

	var buf bytes.Buffer
	if err := runBenchmark(context.Background(), testConfig("modelo.onnx"), &buf); err != nil {
		t.Fatalf("runBenchmark: %v", err)
	}

	out := buf.String()
	for _, name := range []string{"Single-core, unoptimized", "Single-core, optimized", "Multicore, unoptimized", "Multicore, optimized"} {
		if !strings.Contains(out, "Running: "+name) {
			t.Fatalf("expected running notice for %q in:\n%s", name, out)
		}
	}
	if strings.Count(out, "Average time per inference:") != 4 {
		t.Fatalf("expected four latency lines in:\n%s", out)
	}
	if !strings.Contains(out, "===== SUMMARY =====") {
		t.Fatalf("expected summary in:\n%s", out)
	}
	if stub.Runs() != 4*22 {
		t.Fatalf("expected %d runs, got %d", 4*22, stub.Runs())
	}
	if !stub.Released() {
		t.Fatalf("expected engine released")
	}
	opened := stub.Opened()
	if opened[2].IntraOpThreads != 4 || opened[0].IntraOpThreads != 1 {
		t.Fatalf("unexpected thread settings: %+v", opened)
	}
}

func TestRunBenchmarkScenarioFilter(t *testing.T) {
	stub := &enginetest.Engine{Inputs: []engine.TensorInfo{{Name: "input", Shape: engine.Shape{1}}}}
	stubEngine(t, stub)

	cfg := testConfig("modelo.onnx")
	cfg.Scenarios = []string{"single-core"}
	var buf bytes.Buffer
	if err := runBenchmark(context.Background(), cfg, &buf); err != nil {
		t.Fatalf("runBenchmark: %v", err)
	}
	if len(stub.Opened()) != 2 {
		t.Fatalf("expected two scenarios, opened %d", len(stub.Opened()))
	}
	if strings.Contains(buf.String(), "Running: Multicore") {
		t.Fatalf("multicore scenario ran despite filter:\n%s", buf.String())
	}
}

func TestRunBenchmarkPropagatesEngineErrors(t *testing.T) {
	failure := errors.New("model not found")
	stub := &enginetest.Engine{OpenErr: failure}
	stubEngine(t, stub)

	err := runBenchmark(context.Background(), testConfig("missing.onnx"), &bytes.Buffer{})
	if !errors.Is(err, failure) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if !stub.Released() {
		t.Fatalf("expected engine released after failure")
	}
}

func TestRunBenchmarkEngineInitFailure(t *testing.T) {
	prev := newEngine
	newEngine = func(cfg *appconfig.Config) (benchEngine, error) { return nil, errors.New("no shared library") }
	t.Cleanup(func() { newEngine = prev })

	if err := runBenchmark(context.Background(), testConfig("modelo.onnx"), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected init error")
	}
	if err := runBenchmark(context.Background(), nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestRunInspect(t *testing.T) {
	model := filepath.Join(t.TempDir(), "modelo.onnx")
	if err := os.WriteFile(model+".data", []byte("weights"), 0o644); err != nil {
		t.Fatal(err)
	}
	stub := &enginetest.Engine{
		Inputs: []engine.TensorInfo{
			{Name: "pixel_values", Shape: engine.Shape{-1, 3, 8, 8}},
			{Name: "mask", Shape: engine.Shape{-1, 8}},
		},
		Outputs: []engine.TensorInfo{{Name: "logits", Shape: engine.Shape{-1, 10}}},
	}
	stubEngine(t, stub)

	var buf bytes.Buffer
	if err := runInspect(testConfig(model), &buf); err != nil {
		t.Fatalf("runInspect: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"External data: found " + model + ".data",
		"pixel_values: declared [-1 3 8 8], resolved [1 3 8 8], 192 elements (benchmarked)",
		"mask: declared [-1 8], resolved [1 8], 8 elements\n",
		"logits: [-1 10]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRunInspectNoInputs(t *testing.T) {
	stubEngine(t, &enginetest.Engine{})

	var buf bytes.Buffer
	err := runInspect(testConfig("empty.onnx"), &buf)
	if !errors.Is(err, engine.ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs, got %v", err)
	}
	if !strings.Contains(buf.String(), "External data: not found") || !strings.Contains(buf.String(), "(none)") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRunListScenarios(t *testing.T) {
	var buf bytes.Buffer
	if err := runListScenarios(testConfig("modelo.onnx"), &buf); err != nil {
		t.Fatalf("runListScenarios: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and four scenarios, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], "1. Single-core, unoptimized") || !strings.Contains(lines[1], "graph=disabled") || !strings.Contains(lines[1], "intra-op=1") {
		t.Fatalf("unexpected first scenario line: %q", lines[1])
	}
	if !strings.Contains(lines[4], "4. Multicore, optimized") || !strings.Contains(lines[4], "graph=extended") || !strings.Contains(lines[4], "intra-op=4") {
		t.Fatalf("unexpected last scenario line: %q", lines[4])
	}
}

func TestRunListCommands(t *testing.T) {
	var buf bytes.Buffer
	runListCommands(&buf, rootCmd)
	out := buf.String()
	for _, want := range []string{"ortbench", "ortbench run", "ortbench inspect", "ortbench show config", "ortbench show host", "ortbench scenarios"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "completion") || strings.Contains(out, "ortbench help") {
		t.Fatalf("completion and help commands should be hidden:\n%s", out)
	}
	if !strings.Contains(out, "COMMAND") || !strings.Contains(out, "FLAGS") {
		t.Fatalf("expected table headers in:\n%s", out)
	}
}

func TestCommandRowsIndentAndFlags(t *testing.T) {
	root := &cobra.Command{Use: "tool", Short: "root"}
	child := &cobra.Command{Use: "child", Short: "child cmd", Run: func(*cobra.Command, []string) {}}
	child.Flags().Bool("json", false, "")
	child.Flags().Int("limit", 0, "")
	hidden := &cobra.Command{Use: "secret", Hidden: true, Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child, hidden)

	rows := commandRows(root, 0)
	if len(rows) != 2 {
		t.Fatalf("expected root and child rows, got %v", rows)
	}
	if rows[0][0] != "tool" || rows[0][2] != "-" {
		t.Fatalf("unexpected root row: %v", rows[0])
	}
	if rows[1][0] != "  tool child" || rows[1][1] != "child cmd" || rows[1][2] != "--json --limit" {
		t.Fatalf("unexpected child row: %v", rows[1])
	}
}

func TestRunShowConfigFallback(t *testing.T) {
	prev := currentConfig
	currentConfig = nil
	t.Cleanup(func() { currentConfig = prev })

	var buf bytes.Buffer
	runShowConfig(&buf)
	if !strings.Contains(buf.String(), "No config file loaded") || !strings.Contains(buf.String(), "modelo.onnx") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRunShowHost(t *testing.T) {
	var buf bytes.Buffer
	runShowHost(&buf)
	for _, want := range []string{"CPU:", "Usable CPUs:", "Platform:"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, buf.String())
		}
	}
}
