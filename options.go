package fhirmodels

import (
	"runtime"

	"github.com/gofhir/models/pkg/constraint"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/meta"
)

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// Validation flags
	ValidateStructure   bool
	ValidateConstraints bool
	StrictMode          bool

	// SkipConstraints lists invariant keys that are never evaluated.
	SkipConstraints []string

	// Limits
	MaxIssues   int
	WorkerCount int

	ExpressionCacheSize int

	// Registry supplies the type metadata. Nil means the built-in tables.
	Registry *meta.Registry
	Logger   *logger.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		ValidateStructure:   true,
		ValidateConstraints: true,

		MaxIssues:   0, // unlimited
		WorkerCount: runtime.NumCPU(),

		ExpressionCacheSize: constraint.DefaultCacheSize,
	}
}

// --- Validation Options ---

// WithStructure enables the table-driven structural checks over the whole
// element tree.
func WithStructure(enable bool) Option {
	return func(o *Options) {
		o.ValidateStructure = enable
	}
}

// WithConstraints enables FHIRPath invariant evaluation.
func WithConstraints(enable bool) Option {
	return func(o *Options) {
		o.ValidateConstraints = enable
	}
}

// WithStrictMode treats warnings as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithSkipConstraints disables the invariants with the given keys.
func WithSkipConstraints(keys ...string) Option {
	return func(o *Options) {
		o.SkipConstraints = append(o.SkipConstraints, keys...)
	}
}

// WithRegistry validates against the metadata in reg instead of the
// built-in tables.
func WithRegistry(reg *meta.Registry) Option {
	return func(o *Options) {
		o.Registry = reg
	}
}

// --- Performance Options ---

// WithMaxIssues keeps at most max issues per result, most severe first.
// Use 0 for unlimited.
func WithMaxIssues(max int) Option {
	return func(o *Options) {
		o.MaxIssues = max
	}
}

// WithWorkerCount sets the number of workers for batch validation.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithExpressionCacheSize sets the FHIRPath expression cache size.
func WithExpressionCacheSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.ExpressionCacheSize = size
		}
	}
}

// WithLogger sets the logger. Defaults to logger.Default().
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// --- Presets ---

// FastOptions returns options that only run the structural checks.
func FastOptions() []Option {
	return []Option{
		WithConstraints(false),
	}
}

// StrictOptions returns options for strict validation.
// Enables all checks and treats warnings as errors.
func StrictOptions() []Option {
	return []Option{
		WithStructure(true),
		WithConstraints(true),
		WithStrictMode(true),
	}
}
