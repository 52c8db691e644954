package config

// Config represents the complete interface-enum configuration.
// It can be loaded from interface-enum.json (or .yaml/.yml) with environment
// variable overrides.
type Config struct {
	Paths       []string `yaml:"paths" json:"paths" mapstructure:"paths"`                      // source roots to scan
	Include     []string `yaml:"include" json:"include" mapstructure:"include"`                // glob patterns for candidate files
	Ignore      []string `yaml:"ignore" json:"ignore" mapstructure:"ignore"`                   // glob patterns to skip
	Marker      string   `yaml:"marker" json:"marker" mapstructure:"marker"`                   // token that opts a file in
	Introducers []string `yaml:"introducers" json:"introducers" mapstructure:"introducers"`    // e.g. "export interface"
	MarkerScope string   `yaml:"marker_scope" json:"marker_scope" mapstructure:"marker_scope"` // "all" or "next"
	Extension   string   `yaml:"extension" json:"extension" mapstructure:"extension"`          // source file extension
	Suffix      string   `yaml:"suffix" json:"suffix" mapstructure:"suffix"`                   // generated file suffix
	Workers     int      `yaml:"workers" json:"workers" mapstructure:"workers"`                // 0 means one per CPU
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths:   []string{"."},
		Include: []string{"**/*.ts"},
		Ignore: []string{
			"node_modules/**",
			"**/node_modules/**",
			".git/**",
			"dist/**",
			"**/dist/**",
			"build/**",
			"**/build/**",
			"**/*.d.ts",
		},
		Marker:      "generateInterfaceToEnum",
		Introducers: []string{"export interface"},
		MarkerScope: "all",
		Extension:   ".ts",
		Suffix:      ".interfaceEnums.ts",
		Workers:     0,
	}
}
