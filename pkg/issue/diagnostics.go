package issue

import (
	"fmt"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs for structural validation performed by Build.
const (
	DiagRequired        DiagnosticID = "STRUCTURE_REQUIRED"
	DiagNullElement     DiagnosticID = "STRUCTURE_NULL_ELEMENT"
	DiagChoiceType      DiagnosticID = "STRUCTURE_INVALID_CHOICE_TYPE"
	DiagValueOrChildren DiagnosticID = "STRUCTURE_VALUE_OR_CHILDREN"
	DiagCardinalityMax  DiagnosticID = "CARDINALITY_MAX"
	DiagUnknownType     DiagnosticID = "STRUCTURE_UNKNOWN_TYPE"
)

// Diagnostic IDs for value checks.
const (
	DiagPrimitiveFormat   DiagnosticID = "TYPE_INVALID_FORMAT"
	DiagIDFormat          DiagnosticID = "TYPE_INVALID_ID"
	DiagBindingRequired   DiagnosticID = "BINDING_REQUIRED"
	DiagReferenceFormat   DiagnosticID = "REFERENCE_INVALID_FORMAT"
	DiagReferenceTarget   DiagnosticID = "REFERENCE_INVALID_TARGET"
	DiagReferenceMismatch DiagnosticID = "REFERENCE_TYPE_MISMATCH"
)

// Diagnostic IDs for constraint validation.
const (
	DiagConstraintFailed       DiagnosticID = "CONSTRAINT_FAILED"
	DiagConstraintCompileError DiagnosticID = "CONSTRAINT_COMPILE_ERROR"
	DiagConstraintEvalError    DiagnosticID = "CONSTRAINT_EVAL_ERROR"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Severity Severity
	Code     Code
	Template string
}

// diagnosticTemplates maps diagnostic IDs to their templates.
// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagRequired: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Element '{path}' is required",
	},
	DiagNullElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Element '{path}' must not contain null entries (entry {index})",
	},
	DiagChoiceType: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Invalid choice type '{type}' for {path}. Allowed: {allowed}",
	},
	DiagValueOrChildren: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Element '{path}' must have a value or children",
	},
	DiagCardinalityMax: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Maximum cardinality of '{path}' is {max}, but found {count}",
	},
	DiagUnknownType: {
		Severity: SeverityError,
		Code:     CodeNotSupported,
		Template: "No metadata registered for type '{type}'",
	},
	DiagPrimitiveFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' does not match expected format for type {type}",
	},
	DiagIDFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Element id '{value}' is not a valid id",
	},
	DiagBindingRequired: {
		Severity: SeverityError,
		Code:     CodeCodeInvalid,
		Template: "The value provided ('{code}') is not in the value set '{valueSet}' (required)",
	},
	DiagReferenceFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Invalid reference format: '{reference}'",
	},
	DiagReferenceTarget: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Invalid reference target type '{type}'. Allowed: {allowed}",
	},
	DiagReferenceMismatch: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Reference type element '{type}' does not match reference target '{reference}'",
	},
	DiagConstraintFailed: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Constraint failed: {key}: {human}",
	},
	DiagConstraintCompileError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not compile constraint '{key}': {error}",
	},
	DiagConstraintEvalError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not evaluate constraint '{key}': {error}",
	},
}

// FormatDiagnostic formats a diagnostic message with the given parameters.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// formatTemplate replaces {placeholder} with values from params.
func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
	}
	return result
}

// AddWithID adds an issue using a diagnostic template and its severity.
func (r *Result) AddWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddError(CodeProcessing, string(id), expression...)
		return
	}
	r.add(tmpl.Severity, id, tmpl, params, expression)
}

// AddErrorWithID adds an error using a diagnostic template.
func (r *Result) AddErrorWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddError(CodeProcessing, string(id), expression...)
		return
	}
	r.add(SeverityError, id, tmpl, params, expression)
}

// AddWarningWithID adds a warning using a diagnostic template.
func (r *Result) AddWarningWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddWarning(CodeProcessing, string(id), expression...)
		return
	}
	r.add(SeverityWarning, id, tmpl, params, expression)
}

func (r *Result) add(sev Severity, id DiagnosticID, tmpl DiagnosticTemplate, params map[string]any, expression []string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    sev,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	})
}
