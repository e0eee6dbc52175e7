package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Identifier",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "use", Max: "1", Types: []string{"code"}, Binding: IdentifierUseBinding, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}, Summary: true},
			{Name: "system", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "value", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "period", Max: "1", Types: []string{"Period"}, Summary: true},
			{Name: "assigner", Max: "1", Types: []string{"Reference"}, Targets: []string{"Organization"}, Summary: true},
		},
	})
}

// Identifier is a business identifier of a resource.
type Identifier struct {
	id        string
	extension []*Extension
	use       *Code
	typ       *CodeableConcept
	system    *URI
	value     *String
	period    *Period
	assigner  *Reference

	hashCache model.HashCache
}

// TypeName returns "Identifier".
func (i *Identifier) TypeName() string { return "Identifier" }

// ID returns id.
func (i *Identifier) ID() string { return i.id }

// Extension returns a copy of extension.
func (i *Identifier) Extension() []*Extension { return slices.Clone(i.extension) }

// Use returns use.
func (i *Identifier) Use() *Code { return i.use }

// Type returns typ.
func (i *Identifier) Type() *CodeableConcept { return i.typ }

// System returns system.
func (i *Identifier) System() *URI { return i.system }

// Value returns value.
func (i *Identifier) Value() *String { return i.value }

// Period returns period.
func (i *Identifier) Period() *Period { return i.period }

// Assigner returns assigner.
func (i *Identifier) Assigner() *Reference { return i.assigner }

// Fields returns the element slots in declaration order.
func (i *Identifier) Fields() []model.Field {
	return []model.Field{
		model.ID(i.id),
		model.Many("extension", i.extension),
		model.One("use", i.use),
		model.One("type", i.typ),
		model.One("system", i.system),
		model.One("value", i.value),
		model.One("period", i.period),
		model.One("assigner", i.assigner),
	}
}

// Accept walks the record and its descendants with v.
func (i *Identifier) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, i, i.Fields(), v)
}

// Equal reports whether i and other are structurally equal.
func (i *Identifier) Equal(other *Identifier) bool { return model.Equal(i, other) }

// Hash returns the structural hash. It is computed once.
func (i *Identifier) Hash() uint64 {
	return i.hashCache.Get(func() uint64 { return model.Hash(i) })
}

// ToBuilder returns a builder staged with the values of i.
func (i *Identifier) ToBuilder() *IdentifierBuilder {
	return &IdentifierBuilder{
		id:        i.id,
		extension: slices.Clone(i.extension),
		use:       i.use,
		typ:       i.typ,
		system:    i.system,
		value:     i.value,
		period:    i.period,
		assigner:  i.assigner,
	}
}

// IdentifierBuilder stages the values of an Identifier. It is not safe for concurrent use.
type IdentifierBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	use       *Code
	typ       *CodeableConcept
	system    *URI
	value     *String
	period    *Period
	assigner  *Reference
}

// NewIdentifierBuilder returns an empty builder.
func NewIdentifierBuilder() *IdentifierBuilder { return &IdentifierBuilder{} }

// ID sets id.
func (b *IdentifierBuilder) ID(v string) *IdentifierBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *IdentifierBuilder) Extension(v ...*Extension) *IdentifierBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *IdentifierBuilder) SetExtension(v []*Extension) *IdentifierBuilder {
	if v == nil {
		b.RejectNil("Identifier", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Use sets use.
func (b *IdentifierBuilder) Use(v *Code) *IdentifierBuilder {
	b.use = v
	return b
}

// UseValue sets use from a plain value.
func (b *IdentifierBuilder) UseValue(v string) *IdentifierBuilder {
	b.use = NewCode(v)
	return b
}

// Type sets typ.
func (b *IdentifierBuilder) Type(v *CodeableConcept) *IdentifierBuilder {
	b.typ = v
	return b
}

// System sets system.
func (b *IdentifierBuilder) System(v *URI) *IdentifierBuilder {
	b.system = v
	return b
}

// SystemValue sets system from a plain value.
func (b *IdentifierBuilder) SystemValue(v string) *IdentifierBuilder {
	b.system = NewURI(v)
	return b
}

// Value sets value.
func (b *IdentifierBuilder) Value(v *String) *IdentifierBuilder {
	b.value = v
	return b
}

// ValueValue sets value from a plain value.
func (b *IdentifierBuilder) ValueValue(v string) *IdentifierBuilder {
	b.value = NewString(v)
	return b
}

// Period sets period.
func (b *IdentifierBuilder) Period(v *Period) *IdentifierBuilder {
	b.period = v
	return b
}

// Assigner sets assigner.
func (b *IdentifierBuilder) Assigner(v *Reference) *IdentifierBuilder {
	b.assigner = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	i := &Identifier{
		id:        b.id,
		extension: slices.Clone(b.extension),
		use:       b.use,
		typ:       b.typ,
		system:    b.system,
		value:     b.value,
		period:    b.period,
		assigner:  b.assigner,
	}
	if err := meta.Check(i); err != nil {
		return nil, err
	}
	return i, nil
}
