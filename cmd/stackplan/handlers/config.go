package handlers

import (
	"fmt"

	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/log"
)

// Override applies command-line values on top of a loaded configuration.
type Override func(cfg *config.Config)

// Factory function variables for config loading - can be replaced in tests.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.Load

	// findConfigFile finds the default config file.
	findConfigFile = config.FindConfigFile
)

// loadConfig loads the configuration at configPath, or stackplan.yaml when
// one is found, or the defaults. Flags are applied last.
func loadConfig(configPath string, override Override) (*config.Config, error) {
	if configPath == "" {
		if found, err := findConfigFile(); err == nil {
			configPath = found
		}
	}

	var cfg *config.Config
	if configPath == "" {
		cfg = config.Default()
	} else {
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		logger := log.WithComponent("config")
		logger.Debug().Str("path", configPath).Msg("loaded configuration")
		cfg = loaded
	}

	if override != nil {
		override(cfg)
	}
	return cfg, nil
}
