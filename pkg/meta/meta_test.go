package meta

import (
	"errors"
	"testing"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/primitive"
	"github.com/gofhir/models/pkg/reference"
)

// fakeCode is a minimal code primitive.
type fakeCode struct {
	value string
	has   bool
}

func code(v string) *fakeCode { return &fakeCode{value: v, has: true} }

func (c *fakeCode) TypeName() string { return "code" }
func (c *fakeCode) Fields() []model.Field {
	fields := []model.Field{model.ID("")}
	if c.has {
		fields = append(fields, model.Value("value", c.value))
	}
	return fields
}
func (c *fakeCode) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}
func (c *fakeCode) PrimitiveValue() (any, bool) { return c.value, c.has }
func (c *fakeCode) ValidateValue() error { return primitive.Check("code", c.value) }

// fakeRef is a minimal Reference.
type fakeRef struct{ ref string }

func (r *fakeRef) TypeName() string { return "Reference" }
func (r *fakeRef) Fields() []model.Field {
	return []model.Field{model.Text("reference", r.ref)}
}
func (r *fakeRef) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, r, r.Fields(), v)
}
func (r *fakeRef) ReferencedType() (string, bool) {
	t := reference.ResourceType(r.ref)
	return t, t != ""
}

// fakeCoding only exists to be an undeclared choice type.
type fakeCoding struct{}

func (c *fakeCoding) TypeName() string { return "Coding" }
func (c *fakeCoding) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, nil, v)
}

type fakeRecord struct {
	id      string
	status  *fakeCode
	tags    []*fakeCode
	subject *fakeRef
	value   model.Element
}

func (f *fakeRecord) TypeName() string { return "Fake.item" }
func (f *fakeRecord) Fields() []model.Field {
	return []model.Field{
		model.ID(f.id),
		model.One("status", f.status),
		model.Many("tag", f.tags),
		model.One("subject", f.subject),
		model.Choice("value", f.value),
	}
}
func (f *fakeRecord) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, f, f.Fields(), v)
}

func fakeInfo() *TypeInfo {
	return &TypeInfo{
		Name: "Fake.item",
		Kind: KindBackbone,
		Elements: []ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "status", Min: 1, Max: "1", Types: []string{"code"},
				Binding: &Binding{Strength: StrengthRequired, ValueSet: "http://example.org/vs", Codes: []string{"on", "off"}}},
			{Name: "tag", Max: "2", Types: []string{"code"}},
			{Name: "subject", Max: "1", Types: []string{"Reference"}, Targets: []string{"Patient", "Group"}},
			{Name: "value", Max: "1", Types: []string{"code", "Reference"}},
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	if err := reg.Register(fakeInfo()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return reg
}

func TestRegistryCheck(t *testing.T) {
	tests := []struct {
		name    string
		record  *fakeRecord
		wantIDs []issue.DiagnosticID
		path    string
	}{
		{
			name:   "valid",
			record: &fakeRecord{status: code("on"), subject: &fakeRef{ref: "Patient/1"}, value: code("x")},
		},
		{
			name:    "missing required",
			record:  &fakeRecord{subject: &fakeRef{ref: "Patient/1"}},
			wantIDs: []issue.DiagnosticID{issue.DiagRequired},
			path:    "Fake.item.status",
		},
		{
			name:    "required binding",
			record:  &fakeRecord{status: code("maybe")},
			wantIDs: []issue.DiagnosticID{issue.DiagBindingRequired},
			path:    "Fake.item.status",
		},
		{
			name:    "primitive format",
			record:  &fakeRecord{status: code(" on")},
			wantIDs: []issue.DiagnosticID{issue.DiagPrimitiveFormat},
			path:    "Fake.item.status",
		},
		{
			name:    "null list entry",
			record:  &fakeRecord{status: code("on"), tags: []*fakeCode{code("a"), nil}},
			wantIDs: []issue.DiagnosticID{issue.DiagNullElement},
			path:    "Fake.item.tag[1]",
		},
		{
			name:    "numeric max",
			record:  &fakeRecord{status: code("on"), tags: []*fakeCode{code("a"), code("b"), code("c")}},
			wantIDs: []issue.DiagnosticID{issue.DiagCardinalityMax},
			path:    "Fake.item.tag",
		},
		{
			name:    "reference target",
			record:  &fakeRecord{status: code("on"), subject: &fakeRef{ref: "Device/d1"}},
			wantIDs: []issue.DiagnosticID{issue.DiagReferenceTarget},
			path:    "Fake.item.subject",
		},
		{
			name:   "untyped reference accepted",
			record: &fakeRecord{status: code("on"), subject: &fakeRef{ref: "#contained"}},
		},
		{
			name:    "choice type",
			record:  &fakeRecord{status: code("on"), value: &fakeCoding{}},
			wantIDs: []issue.DiagnosticID{issue.DiagChoiceType},
			path:    "Fake.item.value[x]",
		},
		{
			name:    "absent primitive without extensions",
			record:  &fakeRecord{status: &fakeCode{}},
			wantIDs: []issue.DiagnosticID{issue.DiagValueOrChildren},
			path:    "Fake.item.status",
		},
		{
			name:    "empty backbone",
			record:  &fakeRecord{id: "only-id"},
			wantIDs: []issue.DiagnosticID{issue.DiagRequired, issue.DiagValueOrChildren},
			path:    "Fake.item",
		},
	}

	reg := newTestRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Check(tt.record)
			if len(tt.wantIDs) == 0 {
				if err != nil {
					t.Fatalf("Check() error = %v", err)
				}
				return
			}
			var ve *issue.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *issue.ValidationError, got %v", err)
			}
			if len(ve.Issues) != len(tt.wantIDs) {
				t.Fatalf("got %d issues, want %d: %v", len(ve.Issues), len(tt.wantIDs), ve)
			}
			for _, id := range tt.wantIDs {
				if !ve.HasMessage(id) {
					t.Errorf("missing %s in %v", id, ve)
				}
			}
			if !ve.HasPath(tt.path) {
				t.Errorf("no issue at %s in %v", tt.path, ve)
			}
			if ve.Issues[0].Source != "structure" {
				t.Errorf("Source = %q", ve.Issues[0].Source)
			}
		})
	}
}

func TestRegistryCheckUnknownType(t *testing.T) {
	err := NewRegistry().Check(&fakeRecord{})
	var ve *issue.ValidationError
	if !errors.As(err, &ve) || !ve.HasMessage(issue.DiagUnknownType) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestRegistryLookups(t *testing.T) {
	reg := newTestRegistry(t)
	if err := reg.Register(&TypeInfo{Name: "Fake", Kind: KindResource}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(&TypeInfo{Name: "Fake", Kind: KindResource}); err == nil {
		t.Error("duplicate registration should fail")
	}
	if err := reg.Register(&TypeInfo{}); err == nil {
		t.Error("nameless registration should fail")
	}

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}
	if got := reg.AllTypes(); len(got) != 2 || got[0] != "Fake" || got[1] != "Fake.item" {
		t.Errorf("AllTypes() = %v", got)
	}
	if !reg.IsResourceType("Fake") || reg.IsResourceType("Fake.item") {
		t.Error("IsResourceType mismatch")
	}
	if _, ok := reg.GetByURL("http://hl7.org/fhir/StructureDefinition/Fake"); !ok {
		t.Error("GetByURL should find the resource")
	}
	if got := reg.TypesOfKind(KindBackbone); len(got) != 1 || got[0] != "Fake.item" {
		t.Errorf("TypesOfKind(backbone) = %v", got)
	}
	if got := reg.Backbones("Fake"); len(got) != 1 {
		t.Errorf("Backbones(Fake) = %d entries", len(got))
	}

	el, ok := reg.GetElement("Fake.item.status")
	if !ok || el.Cardinality() != "1..1" {
		t.Errorf("GetElement() = %+v, %v", el, ok)
	}
	if _, ok := reg.GetElement("Fake.item.nope"); ok {
		t.Error("GetElement should miss unknown elements")
	}
}

func TestElementInfo(t *testing.T) {
	info := fakeInfo()
	value, _ := info.Element("value")
	if !value.IsChoice() || value.JSONName("code") != "valueCode" {
		t.Errorf("choice helpers wrong: %v %s", value.IsChoice(), value.JSONName("code"))
	}
	tag, _ := info.Element("tag")
	if !tag.IsList() || tag.MaxCount() != 2 {
		t.Errorf("tag list helpers wrong: %v %d", tag.IsList(), tag.MaxCount())
	}
	status, _ := info.Element("status")
	if status.IsList() || !status.Required() || !status.Binding.Enforced() {
		t.Error("status helpers wrong")
	}
	if info.URL() != "" || info.Root() != "Fake" {
		t.Errorf("backbone URL/Root = %q/%q", info.URL(), info.Root())
	}
}
