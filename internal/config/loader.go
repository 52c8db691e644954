package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the config file searched in the root
// directory (interface-enum.json, interface-enum.yaml or interface-enum.yml).
const ConfigName = "interface-enum"

// EnvPrefix prefixes every environment override, e.g. INTERFACE_ENUM_MARKER.
const EnvPrefix = "INTERFACE_ENUM"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader that reads an explicit config file instead of
// searching rootDir.
func NewFileLoader(rootDir, configFile string) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (INTERFACE_ENUM_*), including a .env file in the root
// 2. Config file (interface-enum.json, .yaml or .yml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	// .env never overrides variables that are already set
	if err := godotenv.Load(filepath.Join(l.rootDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		// The extension of the file found decides the format
		v.SetConfigName(ConfigName)
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"paths", "include", "ignore", "marker", "introducers",
		"marker_scope", "extension", "suffix", "workers",
	} {
		v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths", defaults.Paths)
	v.SetDefault("include", defaults.Include)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("marker", defaults.Marker)
	v.SetDefault("introducers", defaults.Introducers)
	v.SetDefault("marker_scope", defaults.MarkerScope)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("suffix", defaults.Suffix)
	v.SetDefault("workers", defaults.Workers)
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
