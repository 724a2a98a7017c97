package headshift

import (
	"io"
	"os"
)

// Config holds all knobs for a single conversion run.
type Config struct {
	// Root is the directory tree to scan.
	Root string
	// Write enables on-disk modification. False means dry run.
	Write bool
	// Backups creates a timestamped copy before each write. Only
	// consulted when Write is true.
	Backups bool
	// Verbose prints a progress line per affected file.
	Verbose bool
	// Extension is the target file extension, dot included.
	Extension string
	// ExtraExcludes are folder names to skip in addition to the
	// default set, matched at any depth.
	ExtraExcludes []string
	// Output receives the human-readable report.
	Output io.Writer
}

// DefaultConfig returns the default run configuration for root:
// dry run, backups on, quiet, ".md" files, report to stdout.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:      root,
		Write:     false,
		Backups:   true,
		Verbose:   false,
		Extension: ".md",
		Output:    os.Stdout,
	}
}
