package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Coding",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "system", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "version", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "code", Max: "1", Types: []string{"code"}, Summary: true},
			{Name: "display", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "userSelected", Max: "1", Types: []string{"boolean"}, Summary: true},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "CodeableConcept",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "coding", Max: "*", Types: []string{"Coding"}, Summary: true},
			{Name: "text", Max: "1", Types: []string{"string"}, Summary: true},
		},
	})
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	id           string
	extension    []*Extension
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean

	hashCache model.HashCache
}

// TypeName returns "Coding".
func (c *Coding) TypeName() string { return "Coding" }

// ID returns id.
func (c *Coding) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *Coding) Extension() []*Extension { return slices.Clone(c.extension) }

// System returns system.
func (c *Coding) System() *URI { return c.system }

// Version returns version.
func (c *Coding) Version() *String { return c.version }

// Code returns code.
func (c *Coding) Code() *Code { return c.code }

// Display returns display.
func (c *Coding) Display() *String { return c.display }

// UserSelected returns userSelected.
func (c *Coding) UserSelected() *Boolean { return c.userSelected }

// Fields returns the element slots in declaration order.
func (c *Coding) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.One("system", c.system),
		model.One("version", c.version),
		model.One("code", c.code),
		model.One("display", c.display),
		model.One("userSelected", c.userSelected),
	}
}

// Accept walks the record and its descendants with v.
func (c *Coding) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *Coding) Equal(other *Coding) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *Coding) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *Coding) ToBuilder() *CodingBuilder {
	return &CodingBuilder{
		id:           c.id,
		extension:    slices.Clone(c.extension),
		system:       c.system,
		version:      c.version,
		code:         c.code,
		display:      c.display,
		userSelected: c.userSelected,
	}
}

// CodingBuilder stages the values of a Coding. It is not safe for concurrent use.
type CodingBuilder struct {
	model.Staging

	id           string
	extension    []*Extension
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

// NewCodingBuilder returns an empty builder.
func NewCodingBuilder() *CodingBuilder { return &CodingBuilder{} }

// ID sets id.
func (b *CodingBuilder) ID(v string) *CodingBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CodingBuilder) Extension(v ...*Extension) *CodingBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CodingBuilder) SetExtension(v []*Extension) *CodingBuilder {
	if v == nil {
		b.RejectNil("Coding", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// System sets system.
func (b *CodingBuilder) System(v *URI) *CodingBuilder {
	b.system = v
	return b
}

// SystemValue sets system from a plain value.
func (b *CodingBuilder) SystemValue(v string) *CodingBuilder {
	b.system = NewURI(v)
	return b
}

// Version sets version.
func (b *CodingBuilder) Version(v *String) *CodingBuilder {
	b.version = v
	return b
}

// VersionValue sets version from a plain value.
func (b *CodingBuilder) VersionValue(v string) *CodingBuilder {
	b.version = NewString(v)
	return b
}

// Code sets code.
func (b *CodingBuilder) Code(v *Code) *CodingBuilder {
	b.code = v
	return b
}

// CodeValue sets code from a plain value.
func (b *CodingBuilder) CodeValue(v string) *CodingBuilder {
	b.code = NewCode(v)
	return b
}

// Display sets display.
func (b *CodingBuilder) Display(v *String) *CodingBuilder {
	b.display = v
	return b
}

// DisplayValue sets display from a plain value.
func (b *CodingBuilder) DisplayValue(v string) *CodingBuilder {
	b.display = NewString(v)
	return b
}

// UserSelected sets userSelected.
func (b *CodingBuilder) UserSelected(v *Boolean) *CodingBuilder {
	b.userSelected = v
	return b
}

// UserSelectedValue sets userSelected from a plain value.
func (b *CodingBuilder) UserSelectedValue(v bool) *CodingBuilder {
	b.userSelected = NewBoolean(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CodingBuilder) Build() (*Coding, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &Coding{
		id:           b.id,
		extension:    slices.Clone(b.extension),
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CodeableConcept is a concept given by codings and/or text.
type CodeableConcept struct {
	id        string
	extension []*Extension
	coding    []*Coding
	text      *String

	hashCache model.HashCache
}

// TypeName returns "CodeableConcept".
func (c *CodeableConcept) TypeName() string { return "CodeableConcept" }

// ID returns id.
func (c *CodeableConcept) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CodeableConcept) Extension() []*Extension { return slices.Clone(c.extension) }

// Coding returns a copy of coding.
func (c *CodeableConcept) Coding() []*Coding { return slices.Clone(c.coding) }

// Text returns text.
func (c *CodeableConcept) Text() *String { return c.text }

// Fields returns the element slots in declaration order.
func (c *CodeableConcept) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("coding", c.coding),
		model.One("text", c.text),
	}
}

// Accept walks the record and its descendants with v.
func (c *CodeableConcept) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CodeableConcept) Equal(other *CodeableConcept) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CodeableConcept) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	return &CodeableConceptBuilder{
		id:        c.id,
		extension: slices.Clone(c.extension),
		coding:    slices.Clone(c.coding),
		text:      c.text,
	}
}

// CodeableConceptBuilder stages the values of a CodeableConcept. It is not safe for concurrent use.
type CodeableConceptBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	coding    []*Coding
	text      *String
}

// NewCodeableConceptBuilder returns an empty builder.
func NewCodeableConceptBuilder() *CodeableConceptBuilder { return &CodeableConceptBuilder{} }

// ID sets id.
func (b *CodeableConceptBuilder) ID(v string) *CodeableConceptBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CodeableConceptBuilder) Extension(v ...*Extension) *CodeableConceptBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CodeableConceptBuilder) SetExtension(v []*Extension) *CodeableConceptBuilder {
	if v == nil {
		b.RejectNil("CodeableConcept", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Coding appends to coding.
func (b *CodeableConceptBuilder) Coding(v ...*Coding) *CodeableConceptBuilder {
	b.coding = append(b.coding, v...)
	return b
}

// SetCoding replaces coding. A nil slice is rejected and leaves the builder unchanged.
func (b *CodeableConceptBuilder) SetCoding(v []*Coding) *CodeableConceptBuilder {
	if v == nil {
		b.RejectNil("CodeableConcept", "coding")
		return b
	}
	b.coding = slices.Clone(v)
	return b
}

// Text sets text.
func (b *CodeableConceptBuilder) Text(v *String) *CodeableConceptBuilder {
	b.text = v
	return b
}

// TextValue sets text from a plain value.
func (b *CodeableConceptBuilder) TextValue(v string) *CodeableConceptBuilder {
	b.text = NewString(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CodeableConcept{
		id:        b.id,
		extension: slices.Clone(b.extension),
		coding:    slices.Clone(b.coding),
		text:      b.text,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}
