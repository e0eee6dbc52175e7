// Package constraint evaluates the FHIRPath invariants declared in the
// type metadata against built model elements.
package constraint

import (
	"context"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

// sourceConstraint tags issues raised by invariant evaluation.
const sourceConstraint = "constraint"

// Validator evaluates invariants. It is safe for concurrent use once
// configured.
type Validator struct {
	registry *meta.Registry
	cache    *ExpressionCache
	skip     map[string]bool
}

// New creates a Validator reading metadata from reg. A nil reg uses the
// default registry.
func New(reg *meta.Registry, cacheSize int) *Validator {
	if reg == nil {
		reg = meta.Default()
	}
	return &Validator{
		registry: reg,
		cache:    NewExpressionCache(cacheSize),
		skip:     make(map[string]bool),
	}
}

// Skip disables the invariants with the given keys (e.g. "dom-6"). Call it
// before the first Validate.
func (v *Validator) Skip(keys ...string) {
	for _, k := range keys {
		v.skip[k] = true
	}
}

// CacheStats returns the statistics of the expression cache.
func (v *Validator) CacheStats() CacheStats {
	return v.cache.Stats()
}

// Validate evaluates the invariants of root and of every element below it.
// Failed invariants are reported with the severity they are declared
// with; expressions that cannot be compiled or evaluated become warnings.
// It returns the number of invariants evaluated and stops early with the
// context error when ctx is done.
func (v *Validator) Validate(ctx context.Context, root model.Element, result *issue.Result) (int, error) {
	evaluated := 0
	for _, node := range model.Descendants(root) {
		if err := ctx.Err(); err != nil {
			return evaluated, err
		}
		info, ok := v.registry.GetByType(node.Element.TypeName())
		if !ok || len(info.Constraints) == 0 {
			continue
		}

		data, err := codec.Marshal(node.Element)
		if err != nil {
			result.AddWarningWithID(issue.DiagConstraintEvalError, map[string]any{
				"key":   info.Name,
				"error": err.Error(),
			}, node.Path)
			continue
		}
		evaluated += v.evaluate(data, info.Constraints, node.Path, result)
	}
	return evaluated, nil
}

// evaluate runs constraints against the JSON form of one element.
func (v *Validator) evaluate(data []byte, constraints []meta.Constraint, path string, result *issue.Result) int {
	count := 0
	for _, c := range constraints {
		if c.Expression == "" || v.skip[c.Key] {
			continue
		}
		count++

		expr, err := v.cache.Compile(c.Expression)
		if err != nil {
			addIssue(result, issue.DiagConstraintCompileError, issue.SeverityWarning,
				map[string]any{"key": c.Key, "error": err.Error()}, path)
			continue
		}

		out, err := expr.Evaluate(data)
		if err != nil {
			addIssue(result, issue.DiagConstraintEvalError, issue.SeverityWarning,
				map[string]any{"key": c.Key, "error": err.Error()}, path)
			continue
		}

		if !passed(out) {
			addIssue(result, issue.DiagConstraintFailed, c.Severity,
				map[string]any{"key": c.Key, "human": c.Human}, path)
		}
	}
	return count
}

// passed interprets an invariant result. An empty collection means the
// invariant does not apply; a non-boolean result counts as satisfied.
func passed(out fhirpath.Collection) bool {
	if out.Empty() {
		return true
	}
	b, err := out.ToBoolean()
	if err != nil {
		return true
	}
	return b
}

func addIssue(result *issue.Result, id issue.DiagnosticID, severity issue.Severity, params map[string]any, path string) {
	if severity == issue.SeverityError {
		result.AddErrorWithID(id, params, path)
	} else {
		result.AddWarningWithID(id, params, path)
	}
	result.Issues[len(result.Issues)-1].Source = sourceConstraint
}
