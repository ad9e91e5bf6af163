package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"

	"github.com/pattyshack/minic/report"
)

const (
	ToolVersion = "0.1.0"

	DefaultFileName = "minic.toml"
)

type tomlReport struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

type tomlLog struct {
	Level string `toml:"level"`
}

type tomlConfig struct {
	Version string     `toml:"version"`
	Report  tomlReport `toml:"report"`
	Log     tomlLog    `toml:"log"`
}

// Validated tool settings.
type Config struct {
	// Semver constraint the running tool must satisfy.  Empty accepts any
	// version.
	VersionConstraint string

	Format   report.Format
	Color    bool
	LogLevel report.LogLevel
}

func Default() *Config {
	return &Config{
		Format:   report.TextFormat,
		Color:    true,
		LogLevel: report.LogLevelVerbose,
	}
}

func Parse(data []byte) (*Config, error) {
	tc := &tomlConfig{}
	if err := toml.Unmarshal(data, tc); err != nil {
		return nil, err
	}

	config := Default()
	config.VersionConstraint = tc.Version

	if tc.Report.Format != "" {
		format, err := report.ParseFormat(tc.Report.Format)
		if err != nil {
			return nil, err
		}
		config.Format = format
	}

	if tc.Report.Color != nil {
		config.Color = *tc.Report.Color
	}

	if tc.Log.Level != "" {
		level, err := report.ParseLogLevel(tc.Log.Level)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}

	if err := config.CheckVersion(ToolVersion); err != nil {
		return nil, err
	}

	return config, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Like Load, but a missing file yields the default settings.
func LoadOptional(path string) (*Config, error) {
	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

func (config *Config) CheckVersion(toolVersion string) error {
	if config.VersionConstraint == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(config.VersionConstraint)
	if err != nil {
		return fmt.Errorf(
			"invalid version constraint (%s): %w",
			config.VersionConstraint,
			err)
	}

	version, err := semver.NewVersion(toolVersion)
	if err != nil {
		return fmt.Errorf("invalid tool version (%s): %w", toolVersion, err)
	}

	if !constraint.Check(version) {
		return fmt.Errorf(
			"minic version %s does not satisfy %s",
			version,
			config.VersionConstraint)
	}
	return nil
}
