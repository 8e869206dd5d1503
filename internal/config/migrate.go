package config

import (
	"fmt"
	"os"

	"github.com/zbiljic/vconfig-go"
)

// loadCreateMigrate loads existing config or creates new one, handling migrations
func loadCreateMigrate() (*Config, error) {
	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			// no config file found, return default configuration
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	return loadFile(configPath)
}

// loadFile reads the config at path and migrates it to the latest version.
func loadFile(configPath string) (*Config, error) {
	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}

	var config *Config

	switch version {
	case configVersionV0:
		v0, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		config = v0.migrateV0()
	case configVersionV1:
		config, err = vconfig.LoadConfig[configV1](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
	default:
		return nil, errUnknownVersion(version)
	}

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(configPath, err)
	}

	return config, nil
}
