package fhirmodels

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gofhir/models/pkg/constraint"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

// ErrNilResource is returned when Validate is called without a resource.
var ErrNilResource = errors.New("resource is nil")

// Stage names reported in Metrics.
const (
	StageStructure  = "structure"
	StageConstraint = "constraint"
)

// Validator checks built resources against the metadata tables and their
// FHIRPath invariants. It is safe for concurrent use.
type Validator struct {
	opts        *Options
	registry    *meta.Registry
	constraints *constraint.Validator
	log         *logger.Logger
	metrics     *Metrics
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	reg := o.Registry
	if reg == nil {
		reg = meta.Default()
	}
	log := o.Logger
	if log == nil {
		log = logger.Default()
	}

	cv := constraint.New(reg, o.ExpressionCacheSize)
	cv.Skip(o.SkipConstraints...)

	return &Validator{
		opts:        o,
		registry:    reg,
		constraints: cv,
		log:         log,
		metrics:     NewMetrics(),
	}
}

// Options returns a copy of the configuration.
func (v *Validator) Options() Options {
	o := *v.opts
	o.SkipConstraints = append([]string(nil), o.SkipConstraints...)
	return o
}

// Metrics returns the counters of this validator.
func (v *Validator) Metrics() *Metrics {
	return v.metrics
}

// CacheStats returns the statistics of the FHIRPath expression cache.
func (v *Validator) CacheStats() constraint.CacheStats {
	return v.constraints.CacheStats()
}

// Validate checks res and every element below it. Findings are returned in
// the result; the error is only set for a nil resource or when ctx is done.
func (v *Validator) Validate(ctx context.Context, res model.Resource) (*issue.Result, error) {
	if res == nil {
		return nil, ErrNilResource
	}
	start := time.Now()

	result := issue.NewResult()
	result.Stats = &issue.Stats{ResourceType: res.ResourceType()}

	nodes := model.Descendants(res)
	result.Stats.ElementsChecked = len(nodes)

	if v.opts.ValidateStructure {
		stageStart := time.Now()
		before := len(result.Issues)
		if err := v.validateStructure(ctx, nodes, result); err != nil {
			return nil, err
		}
		v.metrics.RecordStage(StageStructure, time.Since(stageStart), len(result.Issues)-before)
	}

	if v.opts.ValidateConstraints {
		stageStart := time.Now()
		before := len(result.Issues)
		n, err := v.constraints.Validate(ctx, res, result)
		if err != nil {
			return nil, err
		}
		result.Stats.ConstraintsEvaluated = n
		v.metrics.RecordStage(StageConstraint, time.Since(stageStart), len(result.Issues)-before)
	}

	if v.opts.StrictMode {
		result.Escalate()
	}
	result.Truncate(v.opts.MaxIssues)

	duration := time.Since(start)
	result.Stats.Duration = duration.Nanoseconds()

	v.metrics.RecordValidation(duration, !result.HasErrors())
	v.metrics.RecordStats(result.Stats)
	for _, iss := range result.Issues {
		v.metrics.RecordIssue(iss.Severity)
	}

	v.log.Debug("validated %s/%s: %d errors, %d warnings in %s",
		res.ResourceType(), res.ResourceID(), result.ErrorCount(), result.WarningCount(), duration)
	return result, nil
}

// validateStructure applies the metadata tables to every non-primitive
// node. Issues are rebased from the type name onto the node's path.
func (v *Validator) validateStructure(ctx context.Context, nodes []model.Located, result *issue.Result) error {
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, ok := node.Element.(meta.Structured)
		if !ok {
			continue
		}
		info, ok := v.registry.GetByType(record.TypeName())
		if !ok {
			result.AddErrorWithID(issue.DiagUnknownType, map[string]any{"type": record.TypeName()}, node.Path)
			continue
		}
		if info.Kind == meta.KindPrimitive {
			continue
		}

		before := len(result.Issues)
		meta.Validate(info, record, result)
		for i := before; i < len(result.Issues); i++ {
			rebase(result.Issues[i].Expression, info.Name, node.Path)
		}
	}
	return nil
}

func rebase(expressions []string, from, to string) {
	if from == to {
		return
	}
	for i, expr := range expressions {
		if rest, ok := strings.CutPrefix(expr, from); ok && (rest == "" || rest[0] == '.' || rest[0] == '[') {
			expressions[i] = to + rest
		}
	}
}

// BatchResult pairs a resource with its validation outcome.
type BatchResult struct {
	Index  int
	Result *issue.Result
	Err    error
}

// ValidateAll validates resources concurrently with at most WorkerCount
// goroutines. Results keep the input order. It stops at the first
// context error; per-resource failures are reported in BatchResult.Err.
func (v *Validator) ValidateAll(ctx context.Context, resources []model.Resource) ([]BatchResult, error) {
	out := make([]BatchResult, len(resources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.WorkerCount)
	for i, res := range resources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := v.Validate(gctx, res)
			out[i] = BatchResult{Index: i, Result: result, Err: err}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	v.log.Info("validated %d resources", len(resources))
	return out, nil
}
