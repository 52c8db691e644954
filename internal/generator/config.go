package generator

import "github.com/mvp-joe/interface-enum/internal/extract"

// Config holds everything a Generator needs, already resolved to absolute
// roots.
type Config struct {
	Roots           []string
	IncludePatterns []string
	IgnorePatterns  []string
	Extract         extract.Options
	Extension       string
	Suffix          string
	Workers         int  // 0 means one per CPU
	DryRun          bool // render without touching disk
}
