package codec

import (
	"strings"
	"testing"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/resource"
)

// must unwraps a Build result in fixtures that are valid by construction.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestMarshal(t *testing.T) {
	decimal, err := datatype.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	why := must(datatype.NewExtensionBuilder().
		URL("http://example.org/why").
		ValueStringValue("hidden").
		Build())

	tests := []struct {
		name string
		elem model.Element
		want string
	}{
		{
			name: "resource with primitive companion",
			elem: must(resource.NewAppointmentResponseBuilder().
				ID("r1").
				Appointment(must(datatype.NewReferenceBuilder().ReferenceValue("Appointment/a1").Build())).
				Actor(must(datatype.NewReferenceBuilder().ReferenceValue("Patient/p1").Build())).
				ParticipantStatus(datatype.NewCode("accepted", datatype.WithID("s1"))).
				Build()),
			want: `{"resourceType":"AppointmentResponse","id":"r1",` +
				`"appointment":{"reference":"Appointment/a1"},` +
				`"actor":{"reference":"Patient/p1"},` +
				`"participantStatus":"accepted","_participantStatus":{"id":"s1"}}`,
		},
		{
			name: "decimal keeps precision",
			elem: must(datatype.NewQuantityBuilder().Value(decimal).UnitValue("mg").Build()),
			want: `{"value":1.50,"unit":"mg"}`,
		},
		{
			name: "integer64 as string",
			elem: must(datatype.NewAttachmentBuilder().ContentTypeValue("text/plain").SizeValue(10).Build()),
			want: `{"contentType":"text/plain","size":"10"}`,
		},
		{
			name: "repeating primitive with aligned companions",
			elem: must(datatype.NewMetaBuilder().
				Profile(datatype.NewCanonical("http://example.org/p"), datatype.AbsentCanonical(datatype.WithExtension(why))).
				Build()),
			want: `{"profile":["http://example.org/p",null],` +
				`"_profile":[null,{"extension":[{"url":"http://example.org/why","valueString":"hidden"}]}]}`,
		},
		{
			name: "repeating primitive without companions",
			elem: must(datatype.NewMetaBuilder().ProfileValue("http://example.org/a", "http://example.org/b").Build()),
			want: `{"profile":["http://example.org/a","http://example.org/b"]}`,
		},
		{
			name: "primitive root",
			elem: datatype.NewBoolean(true),
			want: `true`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.elem)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestMarshalContained(t *testing.T) {
	inner := must(resource.NewCitationBuilder().ID("c1").StatusValue("draft").Build())
	outer := must(resource.NewAppointmentResponseBuilder().
		Contained(inner).
		Appointment(must(datatype.NewReferenceBuilder().ReferenceValue("Appointment/a1").Build())).
		ParticipantStatusValue("declined").
		ParticipantType(must(datatype.NewCodeableConceptBuilder().TextValue("patient").Build())).
		Build())

	got, err := Marshal(outer)
	if err != nil {
		t.Fatal(err)
	}
	want := `"contained":[{"resourceType":"Citation","id":"c1","status":"draft"}]`
	if !strings.Contains(string(got), want) {
		t.Errorf("Marshal() = %s, want it to contain %s", got, want)
	}
}

func TestMarshalIndent(t *testing.T) {
	coding := must(datatype.NewCodingBuilder().SystemValue("http://loinc.org").CodeValue("1234-5").Build())
	got, err := MarshalIndent(coding, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"system\": \"http://loinc.org\",\n  \"code\": \"1234-5\"\n}"
	if string(got) != want {
		t.Errorf("MarshalIndent() =\n%s\nwant\n%s", got, want)
	}
}

func TestObject(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	o.Append("list", nil)
	o.prune()

	if got := strings.Join(o.Keys(), ","); got != "b,a" {
		t.Errorf("Keys() = %s", got)
	}
	if v, _ := o.Get("b"); v != 3 {
		t.Errorf("Get(b) = %v", v)
	}
	b, err := o.MarshalJSON()
	if err != nil || string(b) != `{"b":3,"a":2}` {
		t.Errorf("MarshalJSON() = %s, %v", b, err)
	}
}

func TestDocumentNil(t *testing.T) {
	if _, err := Document(nil); err == nil {
		t.Error("expected error for nil element")
	}
}

func TestMarshalYAML(t *testing.T) {
	decimal, err := datatype.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		elem model.Element
		want string
	}{
		{
			name: "keeps key order",
			elem: must(datatype.NewCodingBuilder().SystemValue("http://loinc.org").CodeValue("1234-5").Build()),
			want: "system: http://loinc.org\ncode: 1234-5\n",
		},
		{
			name: "decimal and lists",
			elem: must(datatype.NewQuantityBuilder().Value(decimal).UnitValue("mg").Build()),
			want: "value: 1.50\nunit: mg\n",
		},
		{
			name: "repeating primitive",
			elem: must(datatype.NewMetaBuilder().ProfileValue("http://example.org/a", "http://example.org/b").Build()),
			want: "profile:\n  - http://example.org/a\n  - http://example.org/b\n",
		},
		{
			name: "numeric looking string is quoted",
			elem: must(datatype.NewAttachmentBuilder().ContentTypeValue("text/plain").SizeValue(10).Build()),
			want: "contentType: text/plain\nsize: \"10\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalYAML(tt.elem)
			if err != nil {
				t.Fatalf("MarshalYAML() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalYAML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
