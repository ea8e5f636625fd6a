package ortbench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/benchmark"
	"github.com/mwiater/ortbench/internal/engine"
)

func runInspect(cfg *appconfig.Config, out io.Writer) (err error) {
	if cfg == nil {
		return errors.New("config is not loaded")
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

	inputs, outputs, err := eng.Describe(cfg.ModelPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Model: %s\n", cfg.ModelPath)
	fmt.Fprintf(out, "External data: %s\n", externalDataStatus(cfg.ModelPath))

	if cfg.Debug {
		pp.Fprintln(out, inputs)
		pp.Fprintln(out, outputs)
	}

	fmt.Fprintln(out, "Inputs:")
	if len(inputs) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for i, in := range inputs {
		resolved := benchmark.ResolveShape(in.Shape)
		marker := ""
		if i == 0 {
			marker = " (benchmarked)"
		}
		size, err := resolved.Size()
		if err != nil {
			fmt.Fprintf(out, "  %s: declared %v, resolved %v, %v%s\n", in.Name, []int64(in.Shape), []int64(resolved), err, marker)
			continue
		}
		fmt.Fprintf(out, "  %s: declared %v, resolved %v, %d elements%s\n", in.Name, []int64(in.Shape), []int64(resolved), size, marker)
	}
	fmt.Fprintln(out, "Outputs:")
	for _, o := range outputs {
		fmt.Fprintf(out, "  %s: %v\n", o.Name, []int64(o.Shape))
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%s: %w", cfg.ModelPath, engine.ErrNoInputs)
	}
	return nil
}

// externalDataStatus reports whether weights stored outside the model file
// sit next to it as <model>.data.
func externalDataStatus(modelPath string) string {
	dataFile := modelPath + ".data"
	if _, err := os.Stat(dataFile); err == nil {
		return "found " + dataFile
	}
	return "not found"
}
