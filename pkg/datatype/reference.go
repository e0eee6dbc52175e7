package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Reference",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "reference", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "type", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "identifier", Max: "1", Types: []string{"Identifier"}, Summary: true},
			{Name: "display", Max: "1", Types: []string{"string"}, Summary: true},
		},
		Constraints: []meta.Constraint{
			{Key: "ref-2", Severity: issue.SeverityError, Human: "At least one of reference, identifier and display SHALL be present (unless an extension is provided).", Expression: "reference.exists() or identifier.exists() or display.exists() or extension.exists()"},
		},
		Check: checkReference,
	})
}

// Reference points at another resource, literally or logically.
type Reference struct {
	id         string
	extension  []*Extension
	reference  *String
	typ        *URI
	identifier *Identifier
	display    *String

	hashCache model.HashCache
}

// TypeName returns "Reference".
func (r *Reference) TypeName() string { return "Reference" }

// ID returns id.
func (r *Reference) ID() string { return r.id }

// Extension returns a copy of extension.
func (r *Reference) Extension() []*Extension { return slices.Clone(r.extension) }

// Reference returns reference.
func (r *Reference) Reference() *String { return r.reference }

// Type returns typ.
func (r *Reference) Type() *URI { return r.typ }

// Identifier returns identifier.
func (r *Reference) Identifier() *Identifier { return r.identifier }

// Display returns display.
func (r *Reference) Display() *String { return r.display }

// Fields returns the element slots in declaration order.
func (r *Reference) Fields() []model.Field {
	return []model.Field{
		model.ID(r.id),
		model.Many("extension", r.extension),
		model.One("reference", r.reference),
		model.One("type", r.typ),
		model.One("identifier", r.identifier),
		model.One("display", r.display),
	}
}

// Accept walks the record and its descendants with v.
func (r *Reference) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, r, r.Fields(), v)
}

// Equal reports whether r and other are structurally equal.
func (r *Reference) Equal(other *Reference) bool { return model.Equal(r, other) }

// Hash returns the structural hash. It is computed once.
func (r *Reference) Hash() uint64 {
	return r.hashCache.Get(func() uint64 { return model.Hash(r) })
}

// ToBuilder returns a builder staged with the values of r.
func (r *Reference) ToBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{
		id:         r.id,
		extension:  slices.Clone(r.extension),
		reference:  r.reference,
		typ:        r.typ,
		identifier: r.identifier,
		display:    r.display,
	}
}

// ReferenceBuilder stages the values of a Reference. It is not safe for concurrent use.
type ReferenceBuilder struct {
	model.Staging

	id         string
	extension  []*Extension
	reference  *String
	typ        *URI
	identifier *Identifier
	display    *String
}

// NewReferenceBuilder returns an empty builder.
func NewReferenceBuilder() *ReferenceBuilder { return &ReferenceBuilder{} }

// ID sets id.
func (b *ReferenceBuilder) ID(v string) *ReferenceBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *ReferenceBuilder) Extension(v ...*Extension) *ReferenceBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *ReferenceBuilder) SetExtension(v []*Extension) *ReferenceBuilder {
	if v == nil {
		b.RejectNil("Reference", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Reference sets reference.
func (b *ReferenceBuilder) Reference(v *String) *ReferenceBuilder {
	b.reference = v
	return b
}

// ReferenceValue sets reference from a plain value.
func (b *ReferenceBuilder) ReferenceValue(v string) *ReferenceBuilder {
	b.reference = NewString(v)
	return b
}

// Type sets typ.
func (b *ReferenceBuilder) Type(v *URI) *ReferenceBuilder {
	b.typ = v
	return b
}

// TypeValue sets typ from a plain value.
func (b *ReferenceBuilder) TypeValue(v string) *ReferenceBuilder {
	b.typ = NewURI(v)
	return b
}

// Identifier sets identifier.
func (b *ReferenceBuilder) Identifier(v *Identifier) *ReferenceBuilder {
	b.identifier = v
	return b
}

// Display sets display.
func (b *ReferenceBuilder) Display(v *String) *ReferenceBuilder {
	b.display = v
	return b
}

// DisplayValue sets display from a plain value.
func (b *ReferenceBuilder) DisplayValue(v string) *ReferenceBuilder {
	b.display = NewString(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	r := &Reference{
		id:         b.id,
		extension:  slices.Clone(b.extension),
		reference:  b.reference,
		typ:        b.typ,
		identifier: b.identifier,
		display:    b.display,
	}
	if err := meta.Check(r); err != nil {
		return nil, err
	}
	return r, nil
}
