package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	library := cfg.SharedLibraryPath
	if library == "" {
		library = "(platform default)"
	}
	threads := "hardware concurrency"
	if cfg.Threads > 0 {
		threads = fmt.Sprintf("%d", cfg.Threads)
	}
	seed := "entropy"
	if cfg.Seed != 0 {
		seed = fmt.Sprintf("%d", cfg.Seed)
	}
	scenarios := "all"
	if len(cfg.Scenarios) > 0 {
		scenarios = strings.Join(cfg.Scenarios, ", ")
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Model:             %s\n", cfg.ModelPath)
	fmt.Fprintf(out, "  Iterations:        %d\n", cfg.Iterations)
	fmt.Fprintf(out, "  Warmup:            %d\n", cfg.Warmup)
	fmt.Fprintf(out, "  Shared Library:    %s\n", library)
	fmt.Fprintf(out, "  Multicore Threads: %s\n", threads)
	fmt.Fprintf(out, "  Seed:              %s\n", seed)
	fmt.Fprintf(out, "  Scenarios:         %s\n", scenarios)
	fmt.Fprintf(out, "  Log File:          %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:             %v\n", cfg.Debug)
}
