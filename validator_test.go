package fhirmodels

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/resource"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func quiet() Option {
	return WithLogger(logger.New(io.Discard, logger.LevelNone))
}

func response(withActor bool) *resource.AppointmentResponse {
	b := resource.NewAppointmentResponseBuilder().
		ID("ar1").
		Appointment(must(datatype.NewReferenceBuilder().ReferenceValue("Appointment/a1").Build())).
		ParticipantStatusValue(resource.ParticipationAccepted)
	if withActor {
		b.Actor(must(datatype.NewReferenceBuilder().ReferenceValue("Patient/p1").Build()))
	}
	return must(b.Build())
}

func hasIssue(result *issue.Result, id issue.DiagnosticID, path, text string) bool {
	for _, iss := range result.Issues {
		if iss.MessageID != string(id) || !slices.Contains(iss.Expression, path) {
			continue
		}
		if text == "" || strings.Contains(iss.Diagnostics, text) {
			return true
		}
	}
	return false
}

// strictRegistry copies the built-in tables and makes
// AppointmentResponse.comment and Citation.title required.
func strictRegistry(t *testing.T) *meta.Registry {
	t.Helper()
	reg := meta.NewRegistry()
	for _, name := range meta.Default().AllTypes() {
		info, _ := meta.Default().GetByType(name)
		c := *info
		c.Elements = slices.Clone(info.Elements)
		for i := range c.Elements {
			switch c.Name + "." + c.Elements[i].Name {
			case "AppointmentResponse.comment", "Citation.title":
				c.Elements[i].Min = 1
			}
		}
		if err := reg.Register(&c); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		res        model.Resource
		wantErrors bool
		check      func(t *testing.T, result *issue.Result)
	}{
		{
			name:       "apr-1 reported without actor",
			res:        response(false),
			wantErrors: true,
			check: func(t *testing.T, result *issue.Result) {
				if !hasIssue(result, issue.DiagConstraintFailed, "AppointmentResponse", "apr-1") {
					t.Errorf("apr-1 missing: %v", result.Issues)
				}
			},
		},
		{
			name: "dom-6 is only a warning",
			res:  response(true),
			check: func(t *testing.T, result *issue.Result) {
				if result.WarningCount() == 0 {
					t.Error("expected the narrative warning")
				}
			},
		},
		{
			name:       "strict mode escalates warnings",
			opts:       []Option{WithStrictMode(true)},
			res:        response(true),
			wantErrors: true,
		},
		{
			name: "skipped invariants are not evaluated",
			opts: []Option{WithSkipConstraints("dom-6")},
			res:  response(true),
			check: func(t *testing.T, result *issue.Result) {
				if len(result.Issues) != 0 {
					t.Errorf("issues = %v", result.Issues)
				}
				// dom-2, dom-4, dom-5, apr-1 and ref-2 on both references.
				if result.Stats.ConstraintsEvaluated != 6 {
					t.Errorf("ConstraintsEvaluated = %d; want 6", result.Stats.ConstraintsEvaluated)
				}
			},
		},
		{
			name: "constraints disabled",
			opts: []Option{WithConstraints(false)},
			res:  response(false),
			check: func(t *testing.T, result *issue.Result) {
				if result.Stats.ConstraintsEvaluated != 0 || len(result.Issues) != 0 {
					t.Errorf("result = %+v", result)
				}
			},
		},
		{
			name:       "max issues truncates keeping errors",
			opts:       []Option{WithMaxIssues(1)},
			res:        response(false),
			wantErrors: true,
			check: func(t *testing.T, result *issue.Result) {
				if len(result.Issues) != 1 || result.Issues[0].Severity != issue.SeverityError {
					t.Errorf("issues = %v", result.Issues)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(append([]Option{quiet()}, tt.opts...)...)
			result, err := v.Validate(context.Background(), tt.res)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if result.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v; want %v: %v", result.HasErrors(), tt.wantErrors, result.Issues)
			}
			if result.Stats == nil || result.Stats.ResourceType != "AppointmentResponse" || result.Stats.ElementsChecked == 0 {
				t.Errorf("Stats = %+v", result.Stats)
			}
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestValidateAgainstCustomRegistry(t *testing.T) {
	v := New(quiet(), WithRegistry(strictRegistry(t)), WithConstraints(false))

	citation := must(resource.NewCitationBuilder().ID("c1").StatusValue("active").Build())
	res := must(response(true).ToBuilder().Contained(citation).Build())

	result, err := v.Validate(context.Background(), res)
	if err != nil {
		t.Fatal(err)
	}
	if !hasIssue(result, issue.DiagRequired, "AppointmentResponse.comment", "") {
		t.Errorf("missing comment not reported: %v", result.Issues)
	}
	if !hasIssue(result, issue.DiagRequired, "AppointmentResponse.contained[0].title", "") {
		t.Errorf("contained issue not rebased: %v", result.Issues)
	}
}

func TestValidateNilAndCanceled(t *testing.T) {
	v := New(quiet())
	if _, err := v.Validate(context.Background(), nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil resource: error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.Validate(ctx, response(true)); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: error = %v", err)
	}
}

func TestValidateAll(t *testing.T) {
	v := New(quiet(), WithWorkerCount(2))
	resources := []model.Resource{
		response(true),
		response(false),
		must(resource.NewCitationBuilder().StatusValue("draft").Build()),
		response(true),
	}

	out, err := v.ValidateAll(context.Background(), resources)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(resources) {
		t.Fatalf("got %d results", len(out))
	}
	for i, r := range out {
		if r.Index != i || r.Err != nil || r.Result == nil {
			t.Fatalf("out[%d] = %+v", i, r)
		}
		if want := resources[i].ResourceType(); r.Result.Stats.ResourceType != want {
			t.Errorf("out[%d] type = %s; want %s", i, r.Result.Stats.ResourceType, want)
		}
	}
	if !out[1].Result.HasErrors() || out[0].Result.HasErrors() {
		t.Error("apr-1 should only fail the second resource")
	}

	m := v.Metrics()
	if m.ValidationsTotal() != 4 || m.ValidationsValid() != 3 {
		t.Errorf("metrics = %d total, %d valid", m.ValidationsTotal(), m.ValidationsValid())
	}
	if _, ok := m.StageStats(StageConstraint); !ok {
		t.Error("constraint stage not recorded")
	}
	if v.CacheStats().Hits == 0 {
		t.Error("expression cache was never hit")
	}
}

func TestValidateAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(quiet()).ValidateAll(ctx, []model.Resource{response(true)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v; want context.Canceled", err)
	}
}

func TestRebase(t *testing.T) {
	exprs := []string{"Citation.title", "Citation", "Citations.x", "Other.title", "Citation.summary[0]"}
	rebase(exprs, "Citation", "AppointmentResponse.contained[0]")
	want := []string{
		"AppointmentResponse.contained[0].title",
		"AppointmentResponse.contained[0]",
		"Citations.x",
		"Other.title",
		"AppointmentResponse.contained[0].summary[0]",
	}
	if !slices.Equal(exprs, want) {
		t.Errorf("rebase() = %v", exprs)
	}
}
