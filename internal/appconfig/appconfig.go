// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultModelPath is the model benchmarked when none is configured.
	DefaultModelPath = "modelo.onnx"
	// DefaultIterations is the number of timed inferences per scenario.
	DefaultIterations = 100000
	// DefaultWarmup is the number of untimed inferences per scenario.
	DefaultWarmup = 10
	// defaultLogFile receives the run log when the config omits logFile.
	defaultLogFile = "ortbench.log"
)

// Config represents the top-level application configuration.
type Config struct {
	ModelPath         string   `json:"modelPath"`
	Iterations        int      `json:"iterations"`
	Warmup            int      `json:"warmup"`
	SharedLibraryPath string   `json:"sharedLibraryPath,omitempty"`
	Seed              uint64   `json:"seed,omitempty"`
	Threads           int      `json:"threads,omitempty"`
	Scenarios         []string `json:"scenarios,omitempty"`
	LogFile           string   `json:"logFile,omitempty"`
	Debug             bool     `json:"debug"`
	ConfigPath        string   `json:"-"`
}

// Defaults returns the settings used for keys absent from the config file
// and the command line.
func Defaults() map[string]any {
	return map[string]any{
		"modelPath":  DefaultModelPath,
		"iterations": DefaultIterations,
		"warmup":     DefaultWarmup,
	}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Validate reports settings that cannot produce a meaningful run.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ModelPath) == "" {
		errs = append(errs, errors.New("modelPath is required"))
	}
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", c.Iterations))
	}
	if c.Warmup < 0 {
		errs = append(errs, fmt.Errorf("warmup must not be negative, got %d", c.Warmup))
	}
	if c.Threads < 0 {
		errs = append(errs, fmt.Errorf("threads must not be negative, got %d", c.Threads))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
