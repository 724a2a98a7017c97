package headshift

import "io"

// Option is a function that configures a run Config.
type Option func(*Config)

// WithWrite sets whether files are actually modified. False keeps
// the run in dry-run (preview) mode, which is the default.
func WithWrite(enable bool) Option {
	return func(cfg *Config) {
		cfg.Write = enable
	}
}

// WithBackups sets whether a timestamped backup is created before
// each write. Backups default to on.
func WithBackups(enable bool) Option {
	return func(cfg *Config) {
		cfg.Backups = enable
	}
}

// WithVerbose sets whether per-file progress lines are printed.
func WithVerbose(enable bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = enable
	}
}

// WithExcludes adds folder names to skip, on top of the defaults.
func WithExcludes(names ...string) Option {
	return func(cfg *Config) {
		cfg.ExtraExcludes = append(cfg.ExtraExcludes, names...)
	}
}

// WithExtension sets the target file extension (dot included).
func WithExtension(ext string) Option {
	return func(cfg *Config) {
		cfg.Extension = ext
	}
}

// WithOutput redirects the human-readable report.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Output = w
	}
}

// applyOptions applies the given options to the default config.
func applyOptions(root string, opts ...Option) *Config {
	cfg := DefaultConfig(root)
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
