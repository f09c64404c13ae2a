package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvOutputDir = "DAEXPORT_OUTPUT_DIR"
	EnvLogLevel  = "DAEXPORT_LOG_LEVEL"
	EnvLogFile   = "DAEXPORT_LOG_FILE"
)

const (
	configFileName = "config.yaml"
	localFileName  = "daexport.yaml"
	dotEnvFile     = ".env"
)

// Load loads configuration with priority:
// defaults < file < .env < environment < flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()
	if f == nil {
		f = &Flags{}
	}

	configPath := f.Config
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	env, err := readEnv(f.Env)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg, env)

	applyFlags(cfg, f)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		localFileName,
		filepath.Join(ConfigDir(), configFileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "daexport")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "daexport")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "daexport")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "daexport")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// readEnv returns the variables of the .env file at path, overlaid with the
// non-empty process environment. An empty path reads ./.env when it exists.
func readEnv(path string) (map[string]string, error) {
	env := map[string]string{}

	switch {
	case path != "":
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		env = values
	default:
		values, err := godotenv.Read(dotEnvFile)
		if err == nil {
			env = values
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading env file %s: %w", dotEnvFile, err)
		}
	}

	for _, key := range []string{EnvOutputDir, EnvLogLevel, EnvLogFile} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}
	return env, nil
}

// applyEnv applies the non-empty environment values to the config.
func applyEnv(cfg *Config, env map[string]string) {
	if v := env[EnvOutputDir]; v != "" {
		cfg.Export.OutputDir = v
	}
	if v := env[EnvLogLevel]; v != "" {
		cfg.Logging.Level = v
	}
	if v := env[EnvLogFile]; v != "" {
		cfg.Logging.LogFile = v
	}
}
