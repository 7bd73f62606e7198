package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a config file, returning a Config with missing
// fields filled in from the built-in defaults.
//
// The file format is chosen by extension:
//   - .yaml / .yml  — parsed with gopkg.in/yaml.v3
//   - .json / .jsonc — comments stripped with github.com/tidwall/jsonc,
//     then parsed with encoding/json
//
// Any other extension is an error. Load does not apply environment
// overrides; callers chain ApplyEnv after Load so that precedence
// (defaults < file < environment) stays explicit at the call site.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".json", ".jsonc":
		// jsonc.ToJSON strips // and /* */ comments as well as trailing
		// commas, producing valid JSON for the standard library parser.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (expected .yaml, .yml, .json, or .jsonc)", ext)
	}

	return cfg.withDefaults(), nil
}
