package fhirmodels

import (
	"io"
	"runtime"
	"slices"
	"testing"

	"github.com/gofhir/models/pkg/constraint"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/meta"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.ValidateStructure {
		t.Error("ValidateStructure should be true by default")
	}
	if !opts.ValidateConstraints {
		t.Error("ValidateConstraints should be true by default")
	}
	if opts.StrictMode {
		t.Error("StrictMode should be false by default")
	}
	if opts.MaxIssues != 0 {
		t.Errorf("MaxIssues = %d; want 0", opts.MaxIssues)
	}
	if opts.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d; want %d", opts.WorkerCount, runtime.NumCPU())
	}
	if opts.ExpressionCacheSize != constraint.DefaultCacheSize {
		t.Errorf("ExpressionCacheSize = %d; want %d", opts.ExpressionCacheSize, constraint.DefaultCacheSize)
	}
	if opts.Registry != nil || opts.Logger != nil {
		t.Error("Registry and Logger should be unset by default")
	}
}

func TestOptionSetters(t *testing.T) {
	reg := meta.NewRegistry()
	log := logger.New(io.Discard, logger.LevelNone)

	opts := DefaultOptions()
	for _, opt := range []Option{
		WithStructure(false),
		WithConstraints(false),
		WithStrictMode(true),
		WithMaxIssues(10),
		WithSkipConstraints("dom-6"),
		WithSkipConstraints("cnl-0", "cnl-1"),
		WithRegistry(reg),
		WithLogger(log),
		WithExpressionCacheSize(32),
	} {
		opt(opts)
	}

	if opts.ValidateStructure || opts.ValidateConstraints || !opts.StrictMode {
		t.Errorf("flags = %+v", opts)
	}
	if opts.MaxIssues != 10 {
		t.Errorf("MaxIssues = %d; want 10", opts.MaxIssues)
	}
	if !slices.Equal(opts.SkipConstraints, []string{"dom-6", "cnl-0", "cnl-1"}) {
		t.Errorf("SkipConstraints = %v", opts.SkipConstraints)
	}
	if opts.Registry != reg || opts.Logger != log {
		t.Error("Registry or Logger not applied")
	}
	if opts.ExpressionCacheSize != 32 {
		t.Errorf("ExpressionCacheSize = %d; want 32", opts.ExpressionCacheSize)
	}
}

func TestWithWorkerCount(t *testing.T) {
	opts := DefaultOptions()

	WithWorkerCount(4)(opts)
	if opts.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d; want 4", opts.WorkerCount)
	}

	// Zero should not change
	WithWorkerCount(0)(opts)
	if opts.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d; want 4 (unchanged)", opts.WorkerCount)
	}

	// Negative should not change
	WithWorkerCount(-1)(opts)
	if opts.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d; want 4 (unchanged)", opts.WorkerCount)
	}
}

func TestWithExpressionCacheSizeIgnoresNonPositive(t *testing.T) {
	opts := DefaultOptions()
	WithExpressionCacheSize(0)(opts)
	if opts.ExpressionCacheSize != constraint.DefaultCacheSize {
		t.Errorf("ExpressionCacheSize = %d; want unchanged", opts.ExpressionCacheSize)
	}
}

func TestPresets(t *testing.T) {
	fast := DefaultOptions()
	for _, opt := range FastOptions() {
		opt(fast)
	}
	if fast.ValidateConstraints {
		t.Error("FastOptions should disable constraints")
	}
	if !fast.ValidateStructure {
		t.Error("FastOptions should keep structural checks")
	}

	strict := DefaultOptions()
	for _, opt := range StrictOptions() {
		opt(strict)
	}
	if !strict.StrictMode || !strict.ValidateConstraints || !strict.ValidateStructure {
		t.Errorf("StrictOptions = %+v", strict)
	}
}

func BenchmarkApplyOptions(b *testing.B) {
	for range b.N {
		opts := DefaultOptions()
		for _, opt := range StrictOptions() {
			opt(opts)
		}
	}
}
