package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "UsageContext",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "code", Min: 1, Max: "1", Types: []string{"Coding"}, Summary: true},
			{Name: "value", Min: 1, Max: "1", Types: []string{"CodeableConcept", "Quantity", "Range", "Reference"}, Targets: []string{"PlanDefinition", "ResearchStudy", "InsurancePlan", "HealthcareService", "Group", "Location", "Organization"}, Summary: true},
		},
	})
}

// UsageContext describes the context a resource is intended for.
type UsageContext struct {
	id        string
	extension []*Extension
	code      *Coding
	value     model.Element

	hashCache model.HashCache
}

// TypeName returns "UsageContext".
func (u *UsageContext) TypeName() string { return "UsageContext" }

// ID returns id.
func (u *UsageContext) ID() string { return u.id }

// Extension returns a copy of extension.
func (u *UsageContext) Extension() []*Extension { return slices.Clone(u.extension) }

// Code returns code.
func (u *UsageContext) Code() *Coding { return u.code }

// Value returns the value of value[x], whichever type it holds.
func (u *UsageContext) Value() model.Element { return u.value }

// ValueCodeableConcept returns value[x] when it holds a CodeableConcept.
func (u *UsageContext) ValueCodeableConcept() (*CodeableConcept, bool) {
	v, ok := u.value.(*CodeableConcept)
	return v, ok
}

// ValueQuantity returns value[x] when it holds a Quantity.
func (u *UsageContext) ValueQuantity() (*Quantity, bool) {
	v, ok := u.value.(*Quantity)
	return v, ok
}

// ValueRange returns value[x] when it holds a Range.
func (u *UsageContext) ValueRange() (*Range, bool) {
	v, ok := u.value.(*Range)
	return v, ok
}

// ValueReference returns value[x] when it holds a Reference.
func (u *UsageContext) ValueReference() (*Reference, bool) {
	v, ok := u.value.(*Reference)
	return v, ok
}

// Fields returns the element slots in declaration order.
func (u *UsageContext) Fields() []model.Field {
	return []model.Field{
		model.ID(u.id),
		model.Many("extension", u.extension),
		model.One("code", u.code),
		model.Choice("value", u.value),
	}
}

// Accept walks the record and its descendants with v.
func (u *UsageContext) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, u, u.Fields(), v)
}

// Equal reports whether u and other are structurally equal.
func (u *UsageContext) Equal(other *UsageContext) bool { return model.Equal(u, other) }

// Hash returns the structural hash. It is computed once.
func (u *UsageContext) Hash() uint64 {
	return u.hashCache.Get(func() uint64 { return model.Hash(u) })
}

// ToBuilder returns a builder staged with the values of u.
func (u *UsageContext) ToBuilder() *UsageContextBuilder {
	return &UsageContextBuilder{
		id:        u.id,
		extension: slices.Clone(u.extension),
		code:      u.code,
		value:     u.value,
	}
}

// UsageContextBuilder stages the values of a UsageContext. It is not safe for concurrent use.
type UsageContextBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	code      *Coding
	value     model.Element
}

// NewUsageContextBuilder returns an empty builder.
func NewUsageContextBuilder() *UsageContextBuilder { return &UsageContextBuilder{} }

// ID sets id.
func (b *UsageContextBuilder) ID(v string) *UsageContextBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *UsageContextBuilder) Extension(v ...*Extension) *UsageContextBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *UsageContextBuilder) SetExtension(v []*Extension) *UsageContextBuilder {
	if v == nil {
		b.RejectNil("UsageContext", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Code sets code.
func (b *UsageContextBuilder) Code(v *Coding) *UsageContextBuilder {
	b.code = v
	return b
}

// Value sets value[x] to any of its allowed types; Build rejects others.
func (b *UsageContextBuilder) Value(v model.Element) *UsageContextBuilder {
	b.value = model.ChoiceValue(v)
	return b
}

// ValueCodeableConcept sets value[x] to a CodeableConcept, clearing any other type.
func (b *UsageContextBuilder) ValueCodeableConcept(v *CodeableConcept) *UsageContextBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueQuantity sets value[x] to a Quantity, clearing any other type.
func (b *UsageContextBuilder) ValueQuantity(v *Quantity) *UsageContextBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueRange sets value[x] to a Range, clearing any other type.
func (b *UsageContextBuilder) ValueRange(v *Range) *UsageContextBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueReference sets value[x] to a Reference, clearing any other type.
func (b *UsageContextBuilder) ValueReference(v *Reference) *UsageContextBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *UsageContextBuilder) Build() (*UsageContext, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	u := &UsageContext{
		id:        b.id,
		extension: slices.Clone(b.extension),
		code:      b.code,
		value:     b.value,
	}
	if err := meta.Check(u); err != nil {
		return nil, err
	}
	return u, nil
}
