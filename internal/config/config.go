package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when no --config flag is given.
// Its absence is not an error.
const DefaultPath = "resgen.yaml"

// Config represents the top-level configuration structure parsed from resgen.yaml.
// Every field has a default, so an empty Config reproduces the fixed layout
// data/content -> src/res.hpp + src/res.cpp.
type Config struct {
	// Input describes where images are discovered.
	Input InputConfig `yaml:"input"`
	// Output describes the two generated artifacts.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig configures resource discovery.
type InputConfig struct {
	// Dir is the directory scanned for image files (non-recursive).
	Dir string `yaml:"dir"`
	// Extensions is the allowed extension set, without leading period.
	// Matching is case-sensitive.
	Extensions []string `yaml:"extensions"`
}

// OutputConfig configures the generated declarations and definitions files.
type OutputConfig struct {
	// Header is the path of the declarations artifact.
	Header string `yaml:"header"`
	// Source is the path of the definitions artifact.
	Source string `yaml:"source"`
	// Namespace is the C++ namespace wrapping every generated symbol.
	Namespace string `yaml:"namespace"`
	// LicenseHeader is an optional comment block written at the top of both files.
	LicenseHeader string `yaml:"license_header"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

const (
	DefaultInputDir  = "data/content"
	DefaultHeader    = "src/res.hpp"
	DefaultSource    = "src/res.cpp"
	DefaultNamespace = "res"
)

// DefaultExtensions returns the allowed image extensions.
func DefaultExtensions() []string {
	return []string{"jpg", "jpeg", "png", "gif", "bmp"}
}

var (
	cppIdent   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	extPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Load reads and parses the configuration file at path.
// If path does not exist and optional is true, an empty Config is returned.
// Defaults are not applied.
func Load(path string, optional bool) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Input.Dir == "" {
		config.Input.Dir = DefaultInputDir
	}
	if len(config.Input.Extensions) == 0 {
		config.Input.Extensions = DefaultExtensions()
	}
	if config.Output.Header == "" {
		config.Output.Header = DefaultHeader
	}
	if config.Output.Source == "" {
		config.Output.Source = DefaultSource
	}
	if config.Output.Namespace == "" {
		config.Output.Namespace = DefaultNamespace
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors, such as an invalid namespace
// or colliding output paths.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Input.Dir == "" {
		return fmt.Errorf("input directory cannot be empty")
	}
	if len(config.Input.Extensions) == 0 {
		return fmt.Errorf("at least one input extension is required")
	}
	seen := make(map[string]bool)
	for _, ext := range config.Input.Extensions {
		if ext == "" {
			return fmt.Errorf("input extension cannot be empty")
		}
		if strings.HasPrefix(ext, ".") {
			return fmt.Errorf("input extension '%s' must not start with a period", ext)
		}
		if !extPattern.MatchString(ext) {
			return fmt.Errorf("input extension '%s' must only contain alphanumeric characters and underscores", ext)
		}
		if seen[ext] {
			return fmt.Errorf("duplicate input extension: %s", ext)
		}
		seen[ext] = true
	}

	if config.Output.Header == "" || config.Output.Source == "" {
		return fmt.Errorf("output header and source paths cannot be empty")
	}
	if config.Output.Header == config.Output.Source {
		return fmt.Errorf("output header and source must be different files: %s", config.Output.Header)
	}
	if !cppIdent.MatchString(config.Output.Namespace) {
		return fmt.Errorf("invalid namespace: '%s' is not a C++ identifier", config.Output.Namespace)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}
