package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/interface-enum/internal/extract"
)

var (
	// ErrNoPaths indicates no source roots were configured
	ErrNoPaths = errors.New("no source paths")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrEmptyMarker indicates a missing marker token
	ErrEmptyMarker = errors.New("empty marker")

	// ErrNoIntroducers indicates no declaration introducers were configured
	ErrNoIntroducers = errors.New("no declaration introducers")

	// ErrInvalidScope indicates an unknown marker scope
	ErrInvalidScope = errors.New("invalid marker scope")

	// ErrInvalidExtension indicates a malformed source extension
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrInvalidSuffix indicates a generated-file suffix that is empty or would
	// collide with the sources
	ErrInvalidSuffix = errors.New("invalid suffix")

	// ErrInvalidWorkers indicates a negative worker count
	ErrInvalidWorkers = errors.New("invalid workers")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error
	errs = append(errs, validatePaths(cfg)...)
	errs = append(errs, validateGeneration(cfg)...)

	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers cannot be negative, got %d", ErrInvalidWorkers, cfg.Workers))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *Config) []error {
	var errs []error

	if len(cfg.Paths) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one path is required", ErrNoPaths))
	}
	for _, p := range cfg.Paths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("%w: paths cannot contain empty entries", ErrNoPaths))
		}
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	return errs
}

func validateGeneration(cfg *Config) []error {
	var errs []error

	if strings.TrimSpace(cfg.Marker) == "" {
		errs = append(errs, fmt.Errorf("%w: marker is required", ErrEmptyMarker))
	}

	if len(cfg.Introducers) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one introducer is required", ErrNoIntroducers))
	}
	for _, intro := range cfg.Introducers {
		if strings.TrimSpace(intro) == "" {
			errs = append(errs, fmt.Errorf("%w: introducers cannot be empty", ErrNoIntroducers))
		}
	}

	if scope := normalizeScope(cfg.MarkerScope); scope != extract.ScopeAll && scope != extract.ScopeNext {
		errs = append(errs, fmt.Errorf("%w: must be 'all' or 'next', got '%s'", ErrInvalidScope, cfg.MarkerScope))
	}

	if !strings.HasPrefix(cfg.Extension, ".") || len(cfg.Extension) < 2 {
		errs = append(errs, fmt.Errorf("%w: must start with a dot, got '%s'", ErrInvalidExtension, cfg.Extension))
	}

	switch {
	case strings.TrimSpace(cfg.Suffix) == "":
		errs = append(errs, fmt.Errorf("%w: suffix is required", ErrInvalidSuffix))
	case cfg.Suffix == cfg.Extension:
		errs = append(errs, fmt.Errorf("%w: suffix '%s' would overwrite source files", ErrInvalidSuffix, cfg.Suffix))
	case strings.ContainsAny(cfg.Suffix, `/\`):
		errs = append(errs, fmt.Errorf("%w: suffix cannot contain path separators", ErrInvalidSuffix))
	}

	return errs
}

// normalizeScope folds case and surrounding blanks so "Next" means "next".
func normalizeScope(scope string) extract.Scope {
	return extract.Scope(strings.ToLower(strings.TrimSpace(scope)))
}

// joinErrors combines multiple errors into a single error with clear formatting.
// Every error stays in the chain, so errors.Is matches each sentinel.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	verbs := make([]string, len(errs))
	args := make([]any, len(errs))
	for i, err := range errs {
		verbs[i] = "%w"
		args[i] = err
	}

	return fmt.Errorf("validation failed:\n  - "+strings.Join(verbs, "\n  - "), args...)
}
