package convert

import (
	"errors"
	"slices"
	"testing"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/meta"
	_ "github.com/gofhir/models/pkg/resource"
)

func lookup(t *testing.T, name string) *meta.TypeInfo {
	t.Helper()
	info, ok := meta.Default().GetByType(name)
	if !ok {
		t.Fatalf("type %s is not registered", name)
	}
	return info
}

func findElement(sd *r4.StructureDefinition, path string) *r4.ElementDefinition {
	for i := range sd.Snapshot.Element {
		if deref(sd.Snapshot.Element[i].Path) == path {
			return &sd.Snapshot.Element[i]
		}
	}
	return nil
}

func TestToStructureDefinition(t *testing.T) {
	c := NewConverter(nil)
	sd := c.ToStructureDefinition(lookup(t, "AppointmentResponse"))

	if got := deref(sd.Url); got != "http://hl7.org/fhir/StructureDefinition/AppointmentResponse" {
		t.Errorf("Url = %q", got)
	}
	if sd.Kind == nil || *sd.Kind != r4.StructureDefinitionKindResource {
		t.Errorf("Kind = %v", sd.Kind)
	}
	if got := deref(sd.BaseDefinition); got != "http://hl7.org/fhir/StructureDefinition/DomainResource" {
		t.Errorf("BaseDefinition = %q", got)
	}

	root := findElement(sd, "AppointmentResponse")
	if root == nil {
		t.Fatal("root element missing")
	}
	keys := make([]string, 0, len(root.Constraint))
	for i := range root.Constraint {
		keys = append(keys, deref(root.Constraint[i].Key))
	}
	if !slices.Contains(keys, "apr-1") {
		t.Errorf("root constraints = %v, want apr-1", keys)
	}

	status := findElement(sd, "AppointmentResponse.participantStatus")
	if status == nil {
		t.Fatal("participantStatus missing")
	}
	if deref(status.Min) != 1 || deref(status.Max) != "1" {
		t.Errorf("participantStatus cardinality = %d..%s", deref(status.Min), deref(status.Max))
	}
	if status.Binding == nil || status.Binding.Strength == nil || *status.Binding.Strength != r4.BindingStrengthRequired {
		t.Errorf("participantStatus binding = %+v", status.Binding)
	}
	if !deref(status.IsModifier) {
		t.Error("participantStatus must be a modifier")
	}

	actor := findElement(sd, "AppointmentResponse.actor")
	if actor == nil || len(actor.Type) != 1 {
		t.Fatal("actor missing")
	}
	if !slices.Contains(actor.Type[0].TargetProfile, "http://hl7.org/fhir/StructureDefinition/Practitioner") {
		t.Errorf("actor targets = %v", actor.Type[0].TargetProfile)
	}
}

func TestToStructureDefinitionExpandsBackbones(t *testing.T) {
	sd := NewConverter(nil).ToStructureDefinition(lookup(t, "Citation"))

	choice := findElement(sd, "Citation.versionAlgorithm[x]")
	if choice == nil || len(choice.Type) != 2 {
		t.Fatalf("versionAlgorithm[x] = %+v", choice)
	}

	cited := findElement(sd, "Citation.citedArtifact")
	if cited == nil || len(cited.Type) != 1 || deref(cited.Type[0].Code) != "BackboneElement" {
		t.Fatalf("citedArtifact = %+v", cited)
	}

	contributor := findElement(sd, "Citation.citedArtifact.contributorship.entry.contributor")
	if contributor == nil {
		t.Fatal("nested backbone element missing")
	}
	if deref(contributor.Min) != 1 {
		t.Errorf("contributor min = %d", deref(contributor.Min))
	}
}

func TestStructureDefinitionRoundTrip(t *testing.T) {
	c := NewConverter(nil)
	for _, name := range []string{"AppointmentResponse", "Citation", "Coding"} {
		t.Run(name, func(t *testing.T) {
			want := lookup(t, name)
			got, err := c.FromStructureDefinition(c.ToStructureDefinition(want))
			if err != nil {
				t.Fatalf("FromStructureDefinition() error = %v", err)
			}
			if got.Name != want.Name || got.Kind != want.Kind || got.Base != want.Base {
				t.Errorf("header = %s/%s/%s, want %s/%s/%s", got.Name, got.Kind, got.Base, want.Name, want.Kind, want.Base)
			}
			if len(got.Constraints) != len(want.Constraints) {
				t.Errorf("constraints = %d, want %d", len(got.Constraints), len(want.Constraints))
			}
			if len(got.Elements) != len(want.Elements) {
				t.Fatalf("elements = %d, want %d", len(got.Elements), len(want.Elements))
			}
			for i := range want.Elements {
				w, g := want.Elements[i], got.Elements[i]
				if g.Name != w.Name || g.Cardinality() != w.Cardinality() {
					t.Errorf("element %d = %s %s, want %s %s", i, g.Name, g.Cardinality(), w.Name, w.Cardinality())
				}
				if !slices.Equal(g.Types, w.Types) {
					t.Errorf("%s types = %v, want %v", w.Name, g.Types, w.Types)
				}
				if !slices.Equal(g.Targets, w.Targets) {
					t.Errorf("%s targets = %v, want %v", w.Name, g.Targets, w.Targets)
				}
				if g.Summary != w.Summary || g.Modifier != w.Modifier {
					t.Errorf("%s flags = %v/%v", w.Name, g.Summary, g.Modifier)
				}
				if (g.Binding == nil) != (w.Binding == nil) {
					t.Errorf("%s binding = %v, want %v", w.Name, g.Binding, w.Binding)
				} else if w.Binding != nil && (g.Binding.Strength != w.Binding.Strength || g.Binding.ValueSet != w.Binding.ValueSet) {
					t.Errorf("%s binding = %+v, want %+v", w.Name, g.Binding, w.Binding)
				}
			}
		})
	}
}

func TestFromStructureDefinitionErrors(t *testing.T) {
	c := NewConverter(nil)
	if _, err := c.FromStructureDefinition(nil); !errors.Is(err, ErrNoType) {
		t.Errorf("nil: error = %v", err)
	}

	sd := &r4.StructureDefinition{
		Type: ptr("Thing"),
		Snapshot: &r4.StructureDefinitionSnapshot{Element: []r4.ElementDefinition{
			{Path: ptr("Thing")},
			{Path: ptr("Thing.name"), Max: ptr("many")},
		}},
	}
	if _, err := c.FromStructureDefinition(sd); err == nil {
		t.Error("expected error for invalid max")
	}
}

func TestFromStructureDefinitionDefaults(t *testing.T) {
	sd := &r4.StructureDefinition{
		Type: ptr("Thing"),
		Snapshot: &r4.StructureDefinitionSnapshot{Element: []r4.ElementDefinition{
			{Path: ptr("Thing"), Constraint: []r4.ElementDefinitionConstraint{{Key: ptr("thg-1"), Expression: ptr("name.exists()")}}},
			{Path: ptr("Thing.name"), Type: []r4.ElementDefinitionType{{Code: ptr("string")}}},
			{Path: ptr("Thing.name.extension")},
		}},
	}
	info, err := NewConverter(nil).FromStructureDefinition(sd)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Elements) != 1 || info.Elements[0].Max != "1" {
		t.Errorf("elements = %+v", info.Elements)
	}
	if len(info.Constraints) != 1 || info.Constraints[0].Severity != "error" {
		t.Errorf("constraints = %+v", info.Constraints)
	}
}

func TestCodeableConceptConversion(t *testing.T) {
	coding, err := datatype.NewCodingBuilder().
		SystemValue("http://loinc.org").
		CodeValue("1234-5").
		DisplayValue("Example").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	cc, err := datatype.NewCodeableConceptBuilder().Coding(coding).TextValue("example").Build()
	if err != nil {
		t.Fatal(err)
	}

	out := CodeableConceptToR4(cc)
	if len(out.Coding) != 1 || deref(out.Coding[0].Code) != "1234-5" || out.Coding[0].Version != nil {
		t.Fatalf("CodeableConceptToR4() = %+v", out)
	}

	back, err := CodeableConceptFromR4(out)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(cc) {
		t.Error("round trip changed the value")
	}
}

func TestIdentifierConversion(t *testing.T) {
	id, err := datatype.NewIdentifierBuilder().
		UseValue("official").
		SystemValue("urn:oid:1.2.36.146.595.217.0.1").
		ValueValue("12345").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	out := IdentifierToR4(id)
	if out.Use == nil || string(*out.Use) != "official" {
		t.Errorf("Use = %v", out.Use)
	}
	back, err := IdentifierFromR4(out)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(id) {
		t.Error("round trip changed the value")
	}

	if IdentifierToR4(nil) != nil {
		t.Error("nil identifier must convert to nil")
	}
}

func TestCodingFromR4Invalid(t *testing.T) {
	if _, err := CodingFromR4(&r4.Coding{Code: ptr("two  spaces")}); err == nil {
		t.Error("expected an invalid code to fail Build")
	}
}
