package convert

import (
	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/pkg/datatype"
)

// Only the value parts carried by both models are converted. Element ids
// and extensions have no counterpart on the r4 side and are dropped.

// CodingToR4 converts c. A nil c gives nil.
func CodingToR4(c *datatype.Coding) *r4.Coding {
	if c == nil {
		return nil
	}
	return &r4.Coding{
		System:  stringValue(c.System()),
		Version: stringValue(c.Version()),
		Code:    stringValue(c.Code()),
		Display: stringValue(c.Display()),
	}
}

// CodingFromR4 builds a Coding from c.
func CodingFromR4(c *r4.Coding) (*datatype.Coding, error) {
	if c == nil {
		return nil, nil
	}
	b := datatype.NewCodingBuilder()
	if c.System != nil {
		b.SystemValue(*c.System)
	}
	if c.Version != nil {
		b.VersionValue(*c.Version)
	}
	if c.Code != nil {
		b.CodeValue(*c.Code)
	}
	if c.Display != nil {
		b.DisplayValue(*c.Display)
	}
	return b.Build()
}

// CodeableConceptToR4 converts cc. A nil cc gives nil.
func CodeableConceptToR4(cc *datatype.CodeableConcept) *r4.CodeableConcept {
	if cc == nil {
		return nil
	}
	out := &r4.CodeableConcept{Text: stringValue(cc.Text())}
	for _, c := range cc.Coding() {
		if c == nil {
			continue
		}
		out.Coding = append(out.Coding, *CodingToR4(c))
	}
	return out
}

// CodeableConceptFromR4 builds a CodeableConcept from cc.
func CodeableConceptFromR4(cc *r4.CodeableConcept) (*datatype.CodeableConcept, error) {
	if cc == nil {
		return nil, nil
	}
	b := datatype.NewCodeableConceptBuilder()
	for i := range cc.Coding {
		coding, err := CodingFromR4(&cc.Coding[i])
		if err != nil {
			return nil, err
		}
		b.Coding(coding)
	}
	if cc.Text != nil {
		b.TextValue(*cc.Text)
	}
	return b.Build()
}

// IdentifierToR4 converts id. A nil id gives nil.
func IdentifierToR4(id *datatype.Identifier) *r4.Identifier {
	if id == nil {
		return nil
	}
	out := &r4.Identifier{
		System: stringValue(id.System()),
		Value:  stringValue(id.Value()),
	}
	if use := stringValue(id.Use()); use != nil {
		setEnum(&out.Use, *use)
	}
	return out
}

// IdentifierFromR4 builds an Identifier from id.
func IdentifierFromR4(id *r4.Identifier) (*datatype.Identifier, error) {
	if id == nil {
		return nil, nil
	}
	b := datatype.NewIdentifierBuilder()
	if id.Use != nil {
		b.UseValue(string(*id.Use))
	}
	if id.System != nil {
		b.SystemValue(*id.System)
	}
	if id.Value != nil {
		b.ValueValue(*id.Value)
	}
	return b.Build()
}

// stringValued is implemented by the string-backed primitives.
type stringValued interface {
	Value() string
	HasValue() bool
}

func stringValue[S any, P interface {
	*S
	stringValued
}](p P) *string {
	if p == nil || !p.HasValue() {
		return nil
	}
	return ptr(p.Value())
}

func setEnum[T ~string](dst **T, s string) {
	v := T(s)
	*dst = &v
}
