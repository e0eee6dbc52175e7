package datatype

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
)

func mustCoding(t *testing.T, system, code string) *Coding {
	t.Helper()
	c, err := NewCodingBuilder().SystemValue(system).CodeValue(code).Build()
	if err != nil {
		t.Fatalf("Coding Build() error = %v", err)
	}
	return c
}

func wantIssue(t *testing.T, err error, id issue.DiagnosticID, path string) {
	t.Helper()
	var ve *issue.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *issue.ValidationError, got %v", err)
	}
	if !ve.HasMessage(id) {
		t.Errorf("missing %s in %v", id, ve)
	}
	if path != "" && !ve.HasPath(path) {
		t.Errorf("no issue at %s in %v", path, ve)
	}
}

func TestPrimitiveValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		prim    model.Primitive
		wantErr bool
	}{
		{"code", NewCode("accepted"), false},
		{"code with leading space", NewCode(" accepted"), true},
		{"id", NewID("abc-123"), false},
		{"id too long", NewID("0123456789012345678901234567890123456789012345678901234567890123456789"), true},
		{"date partial", NewDate("2024-03"), false},
		{"date bad month", NewDate("2024-13-01"), true},
		{"dateTime", NewDateTime("2024-03-01T10:00:00Z"), false},
		{"instant without zone", NewInstant("2024-03-01T10:00:00"), true},
		{"positiveInt zero", NewPositiveInt(0), true},
		{"positiveInt", NewPositiveInt(3), false},
		{"unsignedInt negative", NewUnsignedInt(-1), true},
		{"uri", NewURI("http://example.org/fhir"), false},
		{"uuid", NewRandomUUID(), false},
		{"uuid without prefix", NewUUID("c757873d-ec9a-4326-a141-556f43239520"), true},
		{"boolean", NewBoolean(false), false},
		{"absent string", AbsentString(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prim.ValidateValue()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrimitiveOptions(t *testing.T) {
	ext, err := NewExtensionBuilder().URL("http://example.org/ext").ValueStringValue("x").Build()
	if err != nil {
		t.Fatal(err)
	}
	s := AbsentString(WithID("s1"), WithExtension(ext))
	if s.HasValue() || s.ID() != "s1" || len(s.Extension()) != 1 {
		t.Fatalf("unexpected primitive state: %v %q %d", s.HasValue(), s.ID(), len(s.Extension()))
	}
	if _, has := s.PrimitiveValue(); has {
		t.Error("absent primitive reports a value")
	}
	if NewString("a").Equal(NewString("a", WithID("x"))) {
		t.Error("element id must take part in equality")
	}
}

func TestDecimalPrecision(t *testing.T) {
	a, err := ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseDecimal("1.5")
	if err != nil {
		t.Fatal(err)
	}
	if a.Text() != "1.50" {
		t.Errorf("Text() = %q, want 1.50", a.Text())
	}
	if a.Equal(b) {
		t.Error("1.50 and 1.5 differ in precision and must not be equal")
	}
	if !a.Equal(NewDecimal(decimal.RequireFromString("1.50"))) {
		t.Error("same literal must be equal")
	}
	if _, err := ParseDecimal("1.5e"); err == nil {
		t.Error("expected parse error")
	}
}

func TestTimeHelpers(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if got := NewDateFromTime(ts).Value(); got != "2024-03-01" {
		t.Errorf("NewDateFromTime() = %q", got)
	}
	got, err := NewInstantFromTime(ts).Time()
	if err != nil || !got.Equal(ts) {
		t.Errorf("Instant.Time() = %v, %v", got, err)
	}
	partial, err := NewDateTime("2024-03").Time()
	if err != nil || partial.Month() != time.March || partial.Day() != 1 {
		t.Errorf("DateTime.Time() = %v, %v", partial, err)
	}
}

func TestBase64Binary(t *testing.T) {
	b := NewBase64BinaryFromBytes([]byte("hello"))
	if err := b.ValidateValue(); err != nil {
		t.Fatal(err)
	}
	got, err := b.Bytes()
	if err != nil || string(got) != "hello" {
		t.Errorf("Bytes() = %q, %v", got, err)
	}
}

func TestComplexBuild(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		want  issue.DiagnosticID
		path  string
	}{
		{
			name: "empty coding",
			build: func() error {
				_, err := NewCodingBuilder().Build()
				return err
			},
			want: issue.DiagValueOrChildren,
			path: "Coding",
		},
		{
			name: "bad code",
			build: func() error {
				_, err := NewCodingBuilder().CodeValue("two  spaces").Build()
				return err
			},
			want: issue.DiagPrimitiveFormat,
			path: "Coding.code",
		},
		{
			name: "absent primitive without extension",
			build: func() error {
				_, err := NewCodingBuilder().SystemValue("http://loinc.org").Code(AbsentCode()).Build()
				return err
			},
			want: issue.DiagValueOrChildren,
			path: "Coding.code",
		},
		{
			name: "identifier use outside value set",
			build: func() error {
				_, err := NewIdentifierBuilder().UseValue("primary").ValueValue("123").Build()
				return err
			},
			want: issue.DiagBindingRequired,
			path: "Identifier.use",
		},
		{
			name: "extension without url",
			build: func() error {
				_, err := NewExtensionBuilder().ValueBooleanValue(true).Build()
				return err
			},
			want: issue.DiagRequired,
			path: "Extension.url",
		},
		{
			name: "nil list entry",
			build: func() error {
				_, err := NewCodeableConceptBuilder().Coding(nil).TextValue("x").Build()
				return err
			},
			want: issue.DiagNullElement,
			path: "CodeableConcept.coding[0]",
		},
		{
			name: "narrative status",
			build: func() error {
				_, err := NewNarrativeBuilder().StatusValue("draft").DivValue(`<div xmlns="http://www.w3.org/1999/xhtml">x</div>`).Build()
				return err
			},
			want: issue.DiagBindingRequired,
			path: "Narrative.status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantIssue(t, tt.build(), tt.want, tt.path)
		})
	}
}

func TestExtensionChoice(t *testing.T) {
	coding := mustCoding(t, "http://loinc.org", "1234-5")
	ext, err := NewExtensionBuilder().
		URL("http://example.org/ext").
		ValueStringValue("first").
		ValueCoding(coding).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ext.ValueString(); ok {
		t.Error("the last choice setter must replace the earlier value")
	}
	if got, ok := ext.ValueCoding(); !ok || !got.Equal(coding) {
		t.Errorf("ValueCoding() = %v, %v", got, ok)
	}

	var names []string
	for _, l := range model.Descendants(ext) {
		names = append(names, l.Name)
	}
	if len(names) < 2 || names[1] != "valueCoding" {
		t.Errorf("choice child name = %v", names)
	}

	_, err = NewExtensionBuilder().URL("http://example.org/ext").Value(NewXHTML("<div/>")).Build()
	wantIssue(t, err, issue.DiagChoiceType, "Extension.value[x]")
}

func TestBuilderCopiesCollections(t *testing.T) {
	a := mustCoding(t, "http://loinc.org", "a")
	b := mustCoding(t, "http://loinc.org", "b")

	input := []*Coding{a}
	cc, err := NewCodeableConceptBuilder().SetCoding(input).Build()
	if err != nil {
		t.Fatal(err)
	}
	input[0] = b
	if got := cc.Coding(); !got[0].Equal(a) {
		t.Error("record shares storage with the builder input")
	}

	got := cc.Coding()
	got[0] = b
	if !cc.Coding()[0].Equal(a) {
		t.Error("getter exposes the record storage")
	}
}

func TestSetNilCollection(t *testing.T) {
	a := mustCoding(t, "http://loinc.org", "a")
	b := NewCodeableConceptBuilder().Coding(a).SetCoding(nil)

	var nce *model.NilCollectionError
	if !errors.As(b.Err(), &nce) || nce.Type != "CodeableConcept" || nce.Field != "coding" {
		t.Fatalf("Err() = %v", b.Err())
	}
	if _, err := b.Build(); !errors.As(err, &nce) {
		t.Fatalf("Build() error = %v, want NilCollectionError", err)
	}
}

func TestToBuilderRoundTrip(t *testing.T) {
	period, err := NewPeriodBuilder().StartValue("2024-01-01").EndValue("2024-12-31").Build()
	if err != nil {
		t.Fatal(err)
	}
	id, err := NewIdentifierBuilder().
		UseValue("official").
		SystemValue("http://example.org/ids").
		ValueValue("42").
		Period(period).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	again, err := id.ToBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(id) || again.Hash() != id.Hash() {
		t.Error("round trip changed the record")
	}

	changed, err := id.ToBuilder().ValueValue("43").Build()
	if err != nil {
		t.Fatal(err)
	}
	if changed.Equal(id) || id.Value().Value() != "42" {
		t.Error("ToBuilder must not alias the original")
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		name     string
		builder  *ReferenceBuilder
		wantType string
		wantErr  issue.DiagnosticID
	}{
		{
			name:     "relative",
			builder:  NewReferenceBuilder().ReferenceValue("Patient/123"),
			wantType: "Patient",
		},
		{
			name:     "versioned absolute",
			builder:  NewReferenceBuilder().ReferenceValue("http://example.org/fhir/Citation/c1/_history/2"),
			wantType: "Citation",
		},
		{
			name:     "type from profile url",
			builder:  NewReferenceBuilder().TypeValue("http://hl7.org/fhir/StructureDefinition/Practitioner").DisplayValue("Dr. X"),
			wantType: "Practitioner",
		},
		{
			name:    "fragment",
			builder: NewReferenceBuilder().ReferenceValue("#p1"),
		},
		{
			name:    "malformed",
			builder: NewReferenceBuilder().ReferenceValue("not a reference"),
			wantErr: issue.DiagReferenceFormat,
		},
		{
			name:    "type disagrees with literal",
			builder: NewReferenceBuilder().ReferenceValue("Patient/1").TypeValue("Group"),
			wantErr: issue.DiagReferenceMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := tt.builder.Build()
			if tt.wantErr != "" {
				wantIssue(t, err, tt.wantErr, "")
				return
			}
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			got, ok := ref.ReferencedType()
			if got != tt.wantType || ok != (tt.wantType != "") {
				t.Errorf("ReferencedType() = %q, %v, want %q", got, ok, tt.wantType)
			}
		})
	}
}
