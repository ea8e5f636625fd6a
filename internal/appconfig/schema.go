package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of config files.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "modelPath":         {"type": "string", "minLength": 1},
    "iterations":        {"type": "integer", "minimum": 1},
    "warmup":            {"type": "integer", "minimum": 0},
    "sharedLibraryPath": {"type": "string"},
    "seed":              {"type": "integer", "minimum": 0},
    "threads":           {"type": "integer", "minimum": 0},
    "scenarios":         {"type": "array", "items": {"type": "string"}},
    "logFile":           {"type": "string"},
    "debug":             {"type": "boolean"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// ValidateDocument checks raw JSON config bytes against the config schema.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("config does not match schema: %s", strings.Join(problems, "; "))
}

// ValidateFile reads path and checks it against the config schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := ValidateDocument(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
