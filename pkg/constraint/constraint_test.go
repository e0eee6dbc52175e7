package constraint

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/resource"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func appointmentResponse(withActor bool) *resource.AppointmentResponse {
	b := resource.NewAppointmentResponseBuilder().
		Appointment(must(datatype.NewReferenceBuilder().ReferenceValue("Appointment/a1").Build())).
		ParticipantStatusValue(resource.ParticipationTentative)
	if withActor {
		b.Actor(must(datatype.NewReferenceBuilder().ReferenceValue("Practitioner/pr1").Build()))
	}
	return must(b.Build())
}

func findConstraint(result *issue.Result, key string) (issue.Issue, bool) {
	for _, iss := range result.Issues {
		if iss.MessageID == string(issue.DiagConstraintFailed) && strings.Contains(iss.Diagnostics, key+":") {
			return iss, true
		}
	}
	return issue.Issue{}, false
}

func TestValidateInvariants(t *testing.T) {
	tests := []struct {
		name     string
		validate func(v *Validator, result *issue.Result) error
		key      string
		want     bool
		severity issue.Severity
		path     string
	}{
		{
			name: "apr-1 fails without participantType or actor",
			validate: func(v *Validator, result *issue.Result) error {
				_, err := v.Validate(context.Background(), appointmentResponse(false), result)
				return err
			},
			key:      "apr-1",
			want:     true,
			severity: issue.SeverityError,
			path:     "AppointmentResponse",
		},
		{
			name: "apr-1 holds with an actor",
			validate: func(v *Validator, result *issue.Result) error {
				_, err := v.Validate(context.Background(), appointmentResponse(true), result)
				return err
			},
			key: "apr-1",
		},
		{
			name: "dom-6 warns about missing narrative",
			validate: func(v *Validator, result *issue.Result) error {
				_, err := v.Validate(context.Background(), appointmentResponse(true), result)
				return err
			},
			key:      "dom-6",
			want:     true,
			severity: issue.SeverityWarning,
			path:     "AppointmentResponse",
		},
		{
			name: "cnl-1 warns about a versioned url",
			validate: func(v *Validator, result *issue.Result) error {
				cit := must(resource.NewCitationBuilder().
					URLValue("http://example.org/Citation/c1|2").
					StatusValue("draft").
					Build())
				_, err := v.Validate(context.Background(), cit, result)
				return err
			},
			key:      "cnl-1",
			want:     true,
			severity: issue.SeverityWarning,
			path:     "Citation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(nil, 0)
			result := issue.NewResult()
			if err := tt.validate(v, result); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			got, found := findConstraint(result, tt.key)
			if found != tt.want {
				t.Fatalf("%s reported = %v, want %v: %v", tt.key, found, tt.want, result.Issues)
			}
			if !found {
				return
			}
			if got.Severity != tt.severity {
				t.Errorf("Severity = %s, want %s", got.Severity, tt.severity)
			}
			if len(got.Expression) != 1 || got.Expression[0] != tt.path {
				t.Errorf("Expression = %v, want %s", got.Expression, tt.path)
			}
			if got.Source != sourceConstraint {
				t.Errorf("Source = %q", got.Source)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	v := New(nil, 0)
	v.Skip("dom-6")
	result := issue.NewResult()
	if _, err := v.Validate(context.Background(), appointmentResponse(true), result); err != nil {
		t.Fatal(err)
	}
	if _, found := findConstraint(result, "dom-6"); found {
		t.Error("skipped invariant was reported")
	}
}

func TestNestedElementsAreEvaluated(t *testing.T) {
	// Invariants of nested datatypes are reported at their own path.
	reg := meta.NewRegistry()
	if err := reg.Register(&meta.TypeInfo{
		Name: "Reference",
		Kind: meta.KindComplex,
		Constraints: []meta.Constraint{
			{Key: "test-1", Severity: issue.SeverityError, Human: "reference must be absent", Expression: "reference.empty()"},
		},
	}); err != nil {
		t.Fatal(err)
	}
	v := New(reg, 0)
	result := issue.NewResult()
	n, err := v.Validate(context.Background(), appointmentResponse(true), result)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("evaluated %d invariants, want 2", n)
	}
	paths := map[string]bool{}
	for _, iss := range result.Issues {
		paths[iss.Expression[0]] = true
	}
	if !paths["AppointmentResponse.appointment"] || !paths["AppointmentResponse.actor"] {
		t.Errorf("missing nested issues: %v", result.Issues)
	}
}

func TestCompileErrorIsWarning(t *testing.T) {
	reg := meta.NewRegistry()
	if err := reg.Register(&meta.TypeInfo{
		Name: "Coding",
		Kind: meta.KindComplex,
		Constraints: []meta.Constraint{
			{Key: "bad-1", Severity: issue.SeverityError, Human: "broken", Expression: "code.exists("},
		},
	}); err != nil {
		t.Fatal(err)
	}
	coding := must(datatype.NewCodingBuilder().CodeValue("x").Build())

	v := New(reg, 0)
	for range 2 {
		result := issue.NewResult()
		if _, err := v.Validate(context.Background(), coding, result); err != nil {
			t.Fatal(err)
		}
		if len(result.Issues) != 1 || result.Issues[0].MessageID != string(issue.DiagConstraintCompileError) {
			t.Fatalf("issues = %v", result.Issues)
		}
		if result.HasErrors() {
			t.Error("compile failures must not be errors")
		}
	}
	stats := v.CacheStats()
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("cache stats = %+v, want 1 miss and 1 hit", stats)
	}
}

func TestValidateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(nil, 0).Validate(ctx, appointmentResponse(true), issue.NewResult())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Validate() error = %v, want context.Canceled", err)
	}
}

func TestExpressionCacheEviction(t *testing.T) {
	c := NewExpressionCache(2)
	for _, expr := range []string{"a.exists()", "b.exists()", "a.exists()", "c.exists()"} {
		if _, err := c.Compile(expr); err != nil {
			t.Fatalf("Compile(%q) error = %v", expr, err)
		}
	}
	stats := c.Stats()
	if stats.Size != 2 || stats.Evicts != 1 || stats.Hits != 1 || stats.Misses != 3 {
		t.Errorf("Stats() = %+v", stats)
	}

	// "b" was least recently used and must have been evicted.
	if _, err := c.Compile("b.exists()"); err != nil {
		t.Fatal(err)
	}
	if got := c.Stats().Misses; got != 4 {
		t.Errorf("Misses = %d, want 4", got)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}
