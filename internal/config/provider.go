// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"log/slog"
)

// LoadOptions selects where settings are read from. The zero value reads
// config.cue from ConfigDir.
type LoadOptions struct {
	// ConfigFilePath is the --config file. It must exist when set.
	ConfigFilePath string
	// ConfigDirPath replaces ConfigDir when ConfigFilePath is empty.
	ConfigDirPath string
}

// Provider is how the command tree obtains settings. A Load reads the file
// and the IRNIX_* environment afresh; nothing is cached between calls.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// ProviderFunc adapts an ordinary function to Provider.
type ProviderFunc func(ctx context.Context, opts LoadOptions) (*Config, error)

// Load calls f.
func (f ProviderFunc) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return f(ctx, opts)
}

// NewProvider returns the Viper provider backed by the CUE config file.
func NewProvider() Provider {
	return ProviderFunc(loadFromFile)
}

func loadFromFile(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	if path == "" {
		slog.Debug("no config file, using defaults and environment")
	} else {
		slog.Debug("config loaded", "path", path)
	}
	return cfg, nil
}
