// Package issue defines validation issues aligned with FHIR OperationOutcome.
package issue

import (
	"sort"
	"strings"
	"sync"
)

// Severity represents the severity of a validation issue.
type Severity string

// Severity constants aligned with FHIR IssueSeverity.
const (
	SeverityFatal       Severity = "fatal"
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// rank orders severities from most to least severe.
func (s Severity) rank() int {
	switch s {
	case SeverityFatal:
		return 0
	case SeverityError:
		return 1
	case SeverityWarning:
		return 2
	default:
		return 3
	}
}

// Code represents the type of validation issue (IssueType).
type Code string

// Code constants aligned with FHIR IssueType.
const (
	CodeInvalid       Code = "invalid"
	CodeStructure     Code = "structure"
	CodeRequired      Code = "required"
	CodeValue         Code = "value"
	CodeInvariant     Code = "invariant"
	CodeProcessing    Code = "processing"
	CodeNotSupported  Code = "not-supported"
	CodeNotFound      Code = "not-found"
	CodeTooLong       Code = "too-long"
	CodeCodeInvalid   Code = "code-invalid"
	CodeExtension     Code = "extension"
	CodeBusinessRule  Code = "business-rule"
	CodeException     Code = "exception"
	CodeTimeout       Code = "timeout"
	CodeIncomplete    Code = "incomplete"
	CodeInformational Code = "informational"
)

// Issue represents a single validation issue.
type Issue struct {
	// Severity indicates the severity level (error, warning, etc.)
	Severity Severity `json:"severity" yaml:"severity"`

	// Code indicates the type of issue
	Code Code `json:"code" yaml:"code"`

	// Diagnostics is the human-readable description of the issue
	Diagnostics string `json:"diagnostics" yaml:"diagnostics"`

	// Expression contains FHIRPath expression(s) pointing to the issue location
	Expression []string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Source identifies the check that generated this issue
	// ("structure", "constraint").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// MessageID is the identifier from the diagnostic catalog
	MessageID string `json:"messageId,omitempty" yaml:"messageId,omitempty"`
}

// String renders the issue as "severity path: diagnostics".
func (i Issue) String() string {
	var sb strings.Builder
	sb.WriteString(string(i.Severity))
	if len(i.Expression) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(i.Expression, ", "))
	}
	sb.WriteString(": ")
	sb.WriteString(i.Diagnostics)
	return sb.String()
}

// Stats contains validation statistics.
type Stats struct {
	// ResourceType is the type of resource validated
	ResourceType string `json:"resourceType" yaml:"resourceType"`
	// Duration is the total validation time
	Duration int64 `json:"durationNs" yaml:"durationNs"` // nanoseconds
	// ElementsChecked is the number of elements walked
	ElementsChecked int `json:"elementsChecked" yaml:"elementsChecked"`
	// ConstraintsEvaluated is the number of invariants evaluated
	ConstraintsEvaluated int `json:"constraintsEvaluated" yaml:"constraintsEvaluated"`
}

// DurationMs returns the duration in milliseconds.
func (s *Stats) DurationMs() float64 {
	return float64(s.Duration) / 1e6
}

// Result holds the collection of issues from validation.
type Result struct {
	Issues []Issue `json:"issues" yaml:"issues"`
	Stats  *Stats  `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// defaultIssueCapacity is the pre-allocated capacity for Issues slice.
const defaultIssueCapacity = 16

var resultPool = sync.Pool{
	New: func() any {
		return &Result{
			Issues: make([]Issue, 0, defaultIssueCapacity),
		}
	},
}

// NewResult creates a new empty Result with pre-allocated capacity.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, defaultIssueCapacity),
	}
}

// GetPooledResult returns a Result from the pool.
// Call ReleaseResult when done to return it to the pool.
func GetPooledResult() *Result {
	r, ok := resultPool.Get().(*Result)
	if !ok {
		r = NewResult()
	}
	r.Issues = r.Issues[:0]
	r.Stats = nil
	return r
}

// ReleaseResult returns a Result to the pool for reuse.
// Do not use the Result after calling this function.
func ReleaseResult(r *Result) {
	if r == nil {
		return
	}
	for i := range r.Issues {
		r.Issues[i] = Issue{}
	}
	r.Issues = r.Issues[:0]
	r.Stats = nil
	resultPool.Put(r)
}

// AddIssue adds an issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds an error-level issue.
func (r *Result) AddError(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityError,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddWarning adds a warning-level issue.
func (r *Result) AddWarning(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityWarning,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddInfo adds an information-level issue.
func (r *Result) AddInfo(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityInformation,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	return r.count(func(s Severity) bool { return s == SeverityError || s == SeverityFatal })
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(func(s Severity) bool { return s == SeverityWarning })
}

// InfoCount returns the number of information-level issues.
func (r *Result) InfoCount() int {
	return r.count(func(s Severity) bool { return s == SeverityInformation })
}

func (r *Result) count(match func(Severity) bool) int {
	n := 0
	for _, issue := range r.Issues {
		if match(issue.Severity) {
			n++
		}
	}
	return n
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Filter returns a new Result with only issues matching the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			filtered.Issues = append(filtered.Issues, issue)
		}
	}
	return filtered
}

// Escalate turns every warning into an error.
func (r *Result) Escalate() {
	for i := range r.Issues {
		if r.Issues[i].Severity == SeverityWarning {
			r.Issues[i].Severity = SeverityError
		}
	}
}

// Truncate keeps at most n issues, preferring the most severe ones.
// n <= 0 keeps everything.
func (r *Result) Truncate(n int) {
	if n <= 0 || len(r.Issues) <= n {
		return
	}
	sort.SliceStable(r.Issues, func(i, j int) bool {
		return r.Issues[i].Severity.rank() < r.Issues[j].Severity.rank()
	})
	r.Issues = r.Issues[:n]
}
