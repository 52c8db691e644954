// Package discovery walks source roots and selects candidate files by glob.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery handles file discovery with glob patterns and ignore rules.
type FileDiscovery struct {
	roots           []string
	excludeSuffix   string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// NewFileDiscovery creates a new file discovery instance. Files whose name
// ends in excludeSuffix are never returned, which keeps generated outputs out
// of their own input.
func NewFileDiscovery(roots, includePatterns, ignorePatterns []string, excludeSuffix string) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		roots:         roots,
		excludeSuffix: excludeSuffix,
	}

	var err error
	if fd.includePatterns, err = compilePatterns(includePatterns); err != nil {
		return nil, err
	}
	if fd.ignorePatterns, err = compilePatterns(ignorePatterns); err != nil {
		return nil, err
	}

	return fd, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, compiledPattern{pattern: pattern, glob: g})
	}
	return compiled, nil
}

// DiscoverFiles walks every root and returns matching files as absolute paths.
// Files reachable from more than one root are returned once.
func (fd *FileDiscovery) DiscoverFiles() ([]string, error) {
	seen := make(map[string]bool)
	files := []string{}

	for _, root := range fd.roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
		}

		info, err := os.Stat(absRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", root, err)
		}

		// A file root is taken as-is, bypassing the include patterns
		if !info.IsDir() {
			if !seen[absRoot] && !fd.isGenerated(absRoot) {
				seen[absRoot] = true
				files = append(files, absRoot)
			}
			continue
		}

		var found []string
		err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			relPath, err := filepath.Rel(absRoot, path)
			if err != nil {
				return err
			}
			// Normalize path separators for glob matching
			relPath = filepath.ToSlash(relPath)

			if d.IsDir() {
				if relPath != "." && fd.shouldIgnore(relPath) {
					return filepath.SkipDir
				}
				return nil
			}

			if fd.shouldIgnore(relPath) || fd.isGenerated(path) {
				return nil
			}
			if fd.Matches(relPath) && !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}

		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}

// Matches reports whether a root-relative, slash-separated path is a candidate.
func (fd *FileDiscovery) Matches(relPath string) bool {
	return !fd.shouldIgnore(relPath) && matchesAnyPattern(relPath, fd.includePatterns)
}

// Ignored reports whether a root-relative, slash-separated path matches an
// ignore pattern. Directories are matched as if they carried a /** suffix.
func (fd *FileDiscovery) Ignored(relPath string) bool {
	return fd.shouldIgnore(relPath)
}

func (fd *FileDiscovery) isGenerated(path string) bool {
	return fd.excludeSuffix != "" && strings.HasSuffix(path, fd.excludeSuffix)
}

// shouldIgnore checks if a path matches any ignore pattern.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if matchesAnyPattern(relPath, fd.ignorePatterns) {
		return true
	}

	// Also check if this is a directory that would match with /** suffix
	// For example, "node_modules" should match pattern "node_modules/**"
	return matchesAnyPattern(relPath+"/**", fd.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Special handling: if path is in root (no slash), also try matching against
	// patterns with **/ prefix removed. This makes "**/*.ts" match both "index.ts"
	// and "src/index.ts" as users would expect.
	if !strings.Contains(strings.TrimSuffix(path, "/**"), "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}
