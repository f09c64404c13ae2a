// Package config handles exporter configuration loading and management.
package config

import "github.com/Faultbox/daexport/pkg/ascii"

// Config holds all exporter settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig selects where and what to export.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Mesh      bool   `yaml:"mesh"`
	Skeleton  bool   `yaml:"skeleton"`
	Skinning  bool   `yaml:"skinning"`
	Animation bool   `yaml:"animation"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config that exports everything to out/.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			OutputDir: "out",
			Mesh:      true,
			Skeleton:  true,
			Skinning:  true,
			Animation: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Parts returns the export toggles in the form the ascii writers take.
func (c *Config) Parts() ascii.Parts {
	return ascii.Parts{
		Meshes:    c.Export.Mesh,
		Skeleton:  c.Export.Skeleton,
		Skinning:  c.Export.Skinning,
		Animation: c.Export.Animation,
	}
}
