package cmd

import (
	"github.com/mamonu/syncroboverb/internal/config"
	"github.com/mamonu/syncroboverb/internal/ui"
	"github.com/mamonu/syncroboverb/pkg/log"
)

// cliFlags holds every flag value; empty strings mean "not given".
type cliFlags struct {
	configPath string
	inputDir   string
	header     string
	source     string
	namespace  string
	logLevel   string
	noColor    bool
	dryRun     bool
	quiet      bool
	dump       bool
}

var flags cliFlags

// loadConfig reads the configuration file, applies flag overrides and
// defaults, validates the result and initializes logging.
// The default config file is optional; an explicit --config is not.
func loadConfig(f cliFlags) (*config.Config, error) {
	path := f.configPath
	optional := path == ""
	if optional {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	if f.inputDir != "" {
		cfg.Input.Dir = f.inputDir
	}
	if f.header != "" {
		cfg.Output.Header = f.header
	}
	if f.source != "" {
		cfg.Output.Source = f.source
	}
	if f.namespace != "" {
		cfg.Output.Namespace = f.namespace
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if f.noColor {
		ui.DisableColor()
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}

	return cfg, nil
}
