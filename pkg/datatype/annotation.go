package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Annotation",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "author", Max: "1", Types: []string{"Reference", "string"}, Targets: []string{"Practitioner", "PractitionerRole", "Patient", "RelatedPerson", "Organization"}, Summary: true},
			{Name: "time", Max: "1", Types: []string{"dateTime"}, Summary: true},
			{Name: "text", Min: 1, Max: "1", Types: []string{"markdown"}, Summary: true},
		},
	})
}

// Annotation is a text note with attribution.
type Annotation struct {
	id        string
	extension []*Extension
	author    model.Element
	time      *DateTime
	text      *Markdown

	hashCache model.HashCache
}

// TypeName returns "Annotation".
func (a *Annotation) TypeName() string { return "Annotation" }

// ID returns id.
func (a *Annotation) ID() string { return a.id }

// Extension returns a copy of extension.
func (a *Annotation) Extension() []*Extension { return slices.Clone(a.extension) }

// Author returns the value of author[x], whichever type it holds.
func (a *Annotation) Author() model.Element { return a.author }

// AuthorReference returns author[x] when it holds a Reference.
func (a *Annotation) AuthorReference() (*Reference, bool) {
	v, ok := a.author.(*Reference)
	return v, ok
}

// AuthorString returns author[x] when it holds a string.
func (a *Annotation) AuthorString() (*String, bool) {
	v, ok := a.author.(*String)
	return v, ok
}

// Time returns time.
func (a *Annotation) Time() *DateTime { return a.time }

// Text returns text.
func (a *Annotation) Text() *Markdown { return a.text }

// Fields returns the element slots in declaration order.
func (a *Annotation) Fields() []model.Field {
	return []model.Field{
		model.ID(a.id),
		model.Many("extension", a.extension),
		model.Choice("author", a.author),
		model.One("time", a.time),
		model.One("text", a.text),
	}
}

// Accept walks the record and its descendants with v.
func (a *Annotation) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, a, a.Fields(), v)
}

// Equal reports whether a and other are structurally equal.
func (a *Annotation) Equal(other *Annotation) bool { return model.Equal(a, other) }

// Hash returns the structural hash. It is computed once.
func (a *Annotation) Hash() uint64 {
	return a.hashCache.Get(func() uint64 { return model.Hash(a) })
}

// ToBuilder returns a builder staged with the values of a.
func (a *Annotation) ToBuilder() *AnnotationBuilder {
	return &AnnotationBuilder{
		id:        a.id,
		extension: slices.Clone(a.extension),
		author:    a.author,
		time:      a.time,
		text:      a.text,
	}
}

// AnnotationBuilder stages the values of an Annotation. It is not safe for concurrent use.
type AnnotationBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	author    model.Element
	time      *DateTime
	text      *Markdown
}

// NewAnnotationBuilder returns an empty builder.
func NewAnnotationBuilder() *AnnotationBuilder { return &AnnotationBuilder{} }

// ID sets id.
func (b *AnnotationBuilder) ID(v string) *AnnotationBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *AnnotationBuilder) Extension(v ...*Extension) *AnnotationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *AnnotationBuilder) SetExtension(v []*Extension) *AnnotationBuilder {
	if v == nil {
		b.RejectNil("Annotation", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Author sets author[x] to any of its allowed types; Build rejects others.
func (b *AnnotationBuilder) Author(v model.Element) *AnnotationBuilder {
	b.author = model.ChoiceValue(v)
	return b
}

// AuthorReference sets author[x] to a Reference, clearing any other type.
func (b *AnnotationBuilder) AuthorReference(v *Reference) *AnnotationBuilder {
	b.author = nil
	if v != nil {
		b.author = v
	}
	return b
}

// AuthorString sets author[x] to a String, clearing any other type.
func (b *AnnotationBuilder) AuthorString(v *String) *AnnotationBuilder {
	b.author = nil
	if v != nil {
		b.author = v
	}
	return b
}

// AuthorStringValue sets author from a plain value.
func (b *AnnotationBuilder) AuthorStringValue(v string) *AnnotationBuilder {
	b.author = NewString(v)
	return b
}

// Time sets time.
func (b *AnnotationBuilder) Time(v *DateTime) *AnnotationBuilder {
	b.time = v
	return b
}

// TimeValue sets time from a plain value.
func (b *AnnotationBuilder) TimeValue(v string) *AnnotationBuilder {
	b.time = NewDateTime(v)
	return b
}

// Text sets text.
func (b *AnnotationBuilder) Text(v *Markdown) *AnnotationBuilder {
	b.text = v
	return b
}

// TextValue sets text from a plain value.
func (b *AnnotationBuilder) TextValue(v string) *AnnotationBuilder {
	b.text = NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	a := &Annotation{
		id:        b.id,
		extension: slices.Clone(b.extension),
		author:    b.author,
		time:      b.time,
		text:      b.text,
	}
	if err := meta.Check(a); err != nil {
		return nil, err
	}
	return a, nil
}
