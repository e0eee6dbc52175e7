package issue

import (
	"fmt"
	"strings"
)

// ValidationError is returned by Build when a record breaks a structural
// rule. It lists every failure found, not just the first.
type ValidationError struct {
	// Type is the FHIR type being built.
	Type   string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("invalid %s: %s", e.Type, e.Issues[0])
	}
	msgs := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		msgs[i] = iss.String()
	}
	return fmt.Sprintf("invalid %s: %d issues: %s", e.Type, len(e.Issues), strings.Join(msgs, "; "))
}

// HasPath reports whether any issue points at path.
func (e *ValidationError) HasPath(path string) bool {
	for _, iss := range e.Issues {
		for _, expr := range iss.Expression {
			if expr == path {
				return true
			}
		}
	}
	return false
}

// HasMessage reports whether any issue carries the given diagnostic ID.
func (e *ValidationError) HasMessage(id DiagnosticID) bool {
	for _, iss := range e.Issues {
		if iss.MessageID == string(id) {
			return true
		}
	}
	return false
}

// Err returns a *ValidationError for the error-level issues of r, or nil
// when there are none.
func (r *Result) Err(typeName string) error {
	errs := r.Filter(SeverityError)
	errs.Merge(r.Filter(SeverityFatal))
	if len(errs.Issues) == 0 {
		return nil
	}
	return &ValidationError{Type: typeName, Issues: errs.Issues}
}
