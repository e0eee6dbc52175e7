package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestNewResult(t *testing.T) {
	r := NewResult()
	if r == nil {
		t.Fatal("NewResult() returned nil")
	}
	if len(r.Issues) != 0 {
		t.Errorf("NewResult() should have no issues, got %d", len(r.Issues))
	}
}

func TestResultAddError(t *testing.T) {
	r := NewResult()
	r.AddError(CodeStructure, "Unknown element 'foo'", "Citation.foo")

	if len(r.Issues) != 1 {
		t.Fatalf("Result should have 1 issue, got %d", len(r.Issues))
	}
	if r.Issues[0].Severity != SeverityError {
		t.Errorf("Issue severity = %q, want %q", r.Issues[0].Severity, SeverityError)
	}
	if r.Issues[0].Code != CodeStructure {
		t.Errorf("Issue code = %q, want %q", r.Issues[0].Code, CodeStructure)
	}
	if len(r.Issues[0].Expression) != 1 || r.Issues[0].Expression[0] != "Citation.foo" {
		t.Errorf("Issue expression = %v, want [Citation.foo]", r.Issues[0].Expression)
	}
}

func TestResultCounts(t *testing.T) {
	r := NewResult()
	if r.HasErrors() {
		t.Error("Empty result should not have errors")
	}

	r.AddWarning(CodeInformational, "Warning", "Citation.name")
	r.AddInfo(CodeInformational, "Info")
	if r.HasErrors() {
		t.Error("Result with only warnings should not have errors")
	}

	r.AddError(CodeRequired, "Error", "Citation.status")
	r.AddIssue(Issue{Severity: SeverityFatal, Code: CodeException, Diagnostics: "boom"})

	if got := r.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
	if got := r.WarningCount(); got != 1 {
		t.Errorf("WarningCount() = %d, want 1", got)
	}
	if got := r.InfoCount(); got != 1 {
		t.Errorf("InfoCount() = %d, want 1", got)
	}
}

func TestResultMergeAndFilter(t *testing.T) {
	a := NewResult()
	a.AddError(CodeRequired, "a")
	b := NewResult()
	b.AddWarning(CodeValue, "b")
	a.Merge(b)
	a.Merge(nil)

	if len(a.Issues) != 2 {
		t.Fatalf("Merge: got %d issues, want 2", len(a.Issues))
	}
	if w := a.Filter(SeverityWarning); len(w.Issues) != 1 || w.Issues[0].Diagnostics != "b" {
		t.Errorf("Filter(warning) = %+v", w.Issues)
	}
}

func TestResultEscalate(t *testing.T) {
	r := NewResult()
	r.AddWarning(CodeInvariant, "warn")
	r.AddInfo(CodeInformational, "info")
	r.Escalate()

	if r.Issues[0].Severity != SeverityError {
		t.Errorf("warning not escalated: %q", r.Issues[0].Severity)
	}
	if r.Issues[1].Severity != SeverityInformation {
		t.Errorf("information changed: %q", r.Issues[1].Severity)
	}
}

func TestResultTruncate(t *testing.T) {
	r := NewResult()
	r.AddInfo(CodeInformational, "i")
	r.AddWarning(CodeValue, "w")
	r.AddError(CodeRequired, "e")

	r.Truncate(0)
	if len(r.Issues) != 3 {
		t.Fatalf("Truncate(0) should keep everything, got %d", len(r.Issues))
	}

	r.Truncate(2)
	if len(r.Issues) != 2 {
		t.Fatalf("Truncate(2) kept %d issues", len(r.Issues))
	}
	if r.Issues[0].Diagnostics != "e" || r.Issues[1].Diagnostics != "w" {
		t.Errorf("Truncate should keep the most severe issues, got %+v", r.Issues)
	}
}

func TestPooledResult(t *testing.T) {
	r := GetPooledResult()
	r.AddError(CodeRequired, "x")
	r.Stats = &Stats{ResourceType: "Citation"}
	ReleaseResult(r)
	ReleaseResult(nil)

	r2 := GetPooledResult()
	if len(r2.Issues) != 0 || r2.Stats != nil {
		t.Errorf("pooled result not reset: %+v", r2)
	}
}

func TestAddWithID(t *testing.T) {
	tests := []struct {
		name     string
		add      func(r *Result)
		severity Severity
		code     Code
		contains string
	}{
		{
			name: "required uses template severity",
			add: func(r *Result) {
				r.AddWithID(DiagRequired, map[string]any{"path": "Citation.status"}, "Citation.status")
			},
			severity: SeverityError,
			code:     CodeRequired,
			contains: "'Citation.status' is required",
		},
		{
			name: "compile error is a warning",
			add: func(r *Result) {
				r.AddWithID(DiagConstraintCompileError, map[string]any{"key": "apr-1", "error": "bad"})
			},
			severity: SeverityWarning,
			code:     CodeProcessing,
			contains: "'apr-1': bad",
		},
		{
			name: "warning override",
			add: func(r *Result) {
				r.AddWarningWithID(DiagConstraintFailed, map[string]any{"key": "cnl-0", "human": "Name should be usable"})
			},
			severity: SeverityWarning,
			code:     CodeInvariant,
			contains: "cnl-0: Name should be usable",
		},
		{
			name: "unknown id",
			add: func(r *Result) {
				r.AddErrorWithID(DiagnosticID("NOPE"), nil)
			},
			severity: SeverityError,
			code:     CodeProcessing,
			contains: "NOPE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult()
			tt.add(r)
			if len(r.Issues) != 1 {
				t.Fatalf("got %d issues", len(r.Issues))
			}
			got := r.Issues[0]
			if got.Severity != tt.severity || got.Code != tt.code {
				t.Errorf("got %s/%s, want %s/%s", got.Severity, got.Code, tt.severity, tt.code)
			}
			if !strings.Contains(got.Diagnostics, tt.contains) {
				t.Errorf("diagnostics %q does not contain %q", got.Diagnostics, tt.contains)
			}
		})
	}
}

func TestFormatDiagnostic(t *testing.T) {
	msg := FormatDiagnostic(DiagReferenceTarget, map[string]any{"type": "Device", "allowed": "Practitioner, Organization"})
	want := "Invalid reference target type 'Device'. Allowed: Practitioner, Organization"
	if msg != want {
		t.Errorf("FormatDiagnostic() = %q, want %q", msg, want)
	}
	if FormatDiagnostic("MISSING", nil) != "MISSING" {
		t.Error("unknown IDs should format as themselves")
	}

	tmpl, ok := GetDiagnosticTemplate(DiagNullElement)
	if !ok || tmpl.ID != DiagNullElement {
		t.Errorf("GetDiagnosticTemplate() = %+v, %v", tmpl, ok)
	}
}

func TestValidationError(t *testing.T) {
	r := NewResult()
	r.AddWarning(CodeValue, "ignored")
	if err := r.Err("Citation"); err != nil {
		t.Fatalf("warnings alone should not produce an error, got %v", err)
	}

	r.AddErrorWithID(DiagRequired, map[string]any{"path": "Citation.status"}, "Citation.status")
	r.AddErrorWithID(DiagNullElement, map[string]any{"path": "Citation.note", "index": 1}, "Citation.note[1]")

	err := r.Err("Citation")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Type != "Citation" || len(ve.Issues) != 2 {
		t.Errorf("unexpected error: %+v", ve)
	}
	if !ve.HasPath("Citation.status") || ve.HasPath("Citation.url") {
		t.Error("HasPath mismatch")
	}
	if !ve.HasMessage(DiagNullElement) || ve.HasMessage(DiagChoiceType) {
		t.Error("HasMessage mismatch")
	}
	if !strings.Contains(err.Error(), "2 issues") {
		t.Errorf("Error() = %q", err.Error())
	}
}
