package config

import (
	"path/filepath"

	"github.com/mvp-joe/interface-enum/internal/extract"
	"github.com/mvp-joe/interface-enum/internal/generator"
)

// ToGeneratorConfig converts a Config to a generator.Config.
// Relative paths are resolved against rootDir.
func (c *Config) ToGeneratorConfig(rootDir string) *generator.Config {
	roots := make([]string, 0, len(c.Paths))
	for _, p := range c.Paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(rootDir, p)
		}
		roots = append(roots, filepath.Clean(p))
	}

	return &generator.Config{
		Roots:           roots,
		IncludePatterns: c.Include,
		IgnorePatterns:  c.Ignore,
		Extract: extract.Options{
			Marker:      c.Marker,
			Introducers: c.Introducers,
			Scope:       normalizeScope(c.MarkerScope),
		},
		Extension: c.Extension,
		Suffix:    c.Suffix,
		Workers:   c.Workers,
	}
}
