package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "RelatedArtifact",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "type", Min: 1, Max: "1", Types: []string{"code"}, Binding: RelatedArtifactTypeBinding, Summary: true},
			{Name: "classifier", Max: "*", Types: []string{"CodeableConcept"}, Summary: true},
			{Name: "label", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "display", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "citation", Max: "1", Types: []string{"markdown"}, Summary: true},
			{Name: "document", Max: "1", Types: []string{"Attachment"}, Summary: true},
			{Name: "resource", Max: "1", Types: []string{"canonical"}, Summary: true},
			{Name: "resourceReference", Max: "1", Types: []string{"Reference"}, Summary: true},
			{Name: "publicationStatus", Max: "1", Types: []string{"code"}, Binding: PublicationStatusBinding, Summary: true},
			{Name: "publicationDate", Max: "1", Types: []string{"date"}, Summary: true},
		},
	})
}

// RelatedArtifact is a related resource such as documentation, a citation or a predecessor.
type RelatedArtifact struct {
	id                string
	extension         []*Extension
	typ               *Code
	classifier        []*CodeableConcept
	label             *String
	display           *String
	citation          *Markdown
	document          *Attachment
	resource          *Canonical
	resourceReference *Reference
	publicationStatus *Code
	publicationDate   *Date

	hashCache model.HashCache
}

// TypeName returns "RelatedArtifact".
func (r *RelatedArtifact) TypeName() string { return "RelatedArtifact" }

// ID returns id.
func (r *RelatedArtifact) ID() string { return r.id }

// Extension returns a copy of extension.
func (r *RelatedArtifact) Extension() []*Extension { return slices.Clone(r.extension) }

// Type returns typ.
func (r *RelatedArtifact) Type() *Code { return r.typ }

// Classifier returns a copy of classifier.
func (r *RelatedArtifact) Classifier() []*CodeableConcept { return slices.Clone(r.classifier) }

// Label returns label.
func (r *RelatedArtifact) Label() *String { return r.label }

// Display returns display.
func (r *RelatedArtifact) Display() *String { return r.display }

// Citation returns citation.
func (r *RelatedArtifact) Citation() *Markdown { return r.citation }

// Document returns document.
func (r *RelatedArtifact) Document() *Attachment { return r.document }

// Resource returns resource.
func (r *RelatedArtifact) Resource() *Canonical { return r.resource }

// ResourceReference returns resourceReference.
func (r *RelatedArtifact) ResourceReference() *Reference { return r.resourceReference }

// PublicationStatus returns publicationStatus.
func (r *RelatedArtifact) PublicationStatus() *Code { return r.publicationStatus }

// PublicationDate returns publicationDate.
func (r *RelatedArtifact) PublicationDate() *Date { return r.publicationDate }

// Fields returns the element slots in declaration order.
func (r *RelatedArtifact) Fields() []model.Field {
	return []model.Field{
		model.ID(r.id),
		model.Many("extension", r.extension),
		model.One("type", r.typ),
		model.Many("classifier", r.classifier),
		model.One("label", r.label),
		model.One("display", r.display),
		model.One("citation", r.citation),
		model.One("document", r.document),
		model.One("resource", r.resource),
		model.One("resourceReference", r.resourceReference),
		model.One("publicationStatus", r.publicationStatus),
		model.One("publicationDate", r.publicationDate),
	}
}

// Accept walks the record and its descendants with v.
func (r *RelatedArtifact) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, r, r.Fields(), v)
}

// Equal reports whether r and other are structurally equal.
func (r *RelatedArtifact) Equal(other *RelatedArtifact) bool { return model.Equal(r, other) }

// Hash returns the structural hash. It is computed once.
func (r *RelatedArtifact) Hash() uint64 {
	return r.hashCache.Get(func() uint64 { return model.Hash(r) })
}

// ToBuilder returns a builder staged with the values of r.
func (r *RelatedArtifact) ToBuilder() *RelatedArtifactBuilder {
	return &RelatedArtifactBuilder{
		id:                r.id,
		extension:         slices.Clone(r.extension),
		typ:               r.typ,
		classifier:        slices.Clone(r.classifier),
		label:             r.label,
		display:           r.display,
		citation:          r.citation,
		document:          r.document,
		resource:          r.resource,
		resourceReference: r.resourceReference,
		publicationStatus: r.publicationStatus,
		publicationDate:   r.publicationDate,
	}
}

// RelatedArtifactBuilder stages the values of a RelatedArtifact. It is not safe for concurrent use.
type RelatedArtifactBuilder struct {
	model.Staging

	id                string
	extension         []*Extension
	typ               *Code
	classifier        []*CodeableConcept
	label             *String
	display           *String
	citation          *Markdown
	document          *Attachment
	resource          *Canonical
	resourceReference *Reference
	publicationStatus *Code
	publicationDate   *Date
}

// NewRelatedArtifactBuilder returns an empty builder.
func NewRelatedArtifactBuilder() *RelatedArtifactBuilder { return &RelatedArtifactBuilder{} }

// ID sets id.
func (b *RelatedArtifactBuilder) ID(v string) *RelatedArtifactBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *RelatedArtifactBuilder) Extension(v ...*Extension) *RelatedArtifactBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *RelatedArtifactBuilder) SetExtension(v []*Extension) *RelatedArtifactBuilder {
	if v == nil {
		b.RejectNil("RelatedArtifact", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *RelatedArtifactBuilder) Type(v *Code) *RelatedArtifactBuilder {
	b.typ = v
	return b
}

// TypeValue sets typ from a plain value.
func (b *RelatedArtifactBuilder) TypeValue(v string) *RelatedArtifactBuilder {
	b.typ = NewCode(v)
	return b
}

// Classifier appends to classifier.
func (b *RelatedArtifactBuilder) Classifier(v ...*CodeableConcept) *RelatedArtifactBuilder {
	b.classifier = append(b.classifier, v...)
	return b
}

// SetClassifier replaces classifier. A nil slice is rejected and leaves the builder unchanged.
func (b *RelatedArtifactBuilder) SetClassifier(v []*CodeableConcept) *RelatedArtifactBuilder {
	if v == nil {
		b.RejectNil("RelatedArtifact", "classifier")
		return b
	}
	b.classifier = slices.Clone(v)
	return b
}

// Label sets label.
func (b *RelatedArtifactBuilder) Label(v *String) *RelatedArtifactBuilder {
	b.label = v
	return b
}

// LabelValue sets label from a plain value.
func (b *RelatedArtifactBuilder) LabelValue(v string) *RelatedArtifactBuilder {
	b.label = NewString(v)
	return b
}

// Display sets display.
func (b *RelatedArtifactBuilder) Display(v *String) *RelatedArtifactBuilder {
	b.display = v
	return b
}

// DisplayValue sets display from a plain value.
func (b *RelatedArtifactBuilder) DisplayValue(v string) *RelatedArtifactBuilder {
	b.display = NewString(v)
	return b
}

// Citation sets citation.
func (b *RelatedArtifactBuilder) Citation(v *Markdown) *RelatedArtifactBuilder {
	b.citation = v
	return b
}

// CitationValue sets citation from a plain value.
func (b *RelatedArtifactBuilder) CitationValue(v string) *RelatedArtifactBuilder {
	b.citation = NewMarkdown(v)
	return b
}

// Document sets document.
func (b *RelatedArtifactBuilder) Document(v *Attachment) *RelatedArtifactBuilder {
	b.document = v
	return b
}

// Resource sets resource.
func (b *RelatedArtifactBuilder) Resource(v *Canonical) *RelatedArtifactBuilder {
	b.resource = v
	return b
}

// ResourceValue sets resource from a plain value.
func (b *RelatedArtifactBuilder) ResourceValue(v string) *RelatedArtifactBuilder {
	b.resource = NewCanonical(v)
	return b
}

// ResourceReference sets resourceReference.
func (b *RelatedArtifactBuilder) ResourceReference(v *Reference) *RelatedArtifactBuilder {
	b.resourceReference = v
	return b
}

// PublicationStatus sets publicationStatus.
func (b *RelatedArtifactBuilder) PublicationStatus(v *Code) *RelatedArtifactBuilder {
	b.publicationStatus = v
	return b
}

// PublicationStatusValue sets publicationStatus from a plain value.
func (b *RelatedArtifactBuilder) PublicationStatusValue(v string) *RelatedArtifactBuilder {
	b.publicationStatus = NewCode(v)
	return b
}

// PublicationDate sets publicationDate.
func (b *RelatedArtifactBuilder) PublicationDate(v *Date) *RelatedArtifactBuilder {
	b.publicationDate = v
	return b
}

// PublicationDateValue sets publicationDate from a plain value.
func (b *RelatedArtifactBuilder) PublicationDateValue(v string) *RelatedArtifactBuilder {
	b.publicationDate = NewDate(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *RelatedArtifactBuilder) Build() (*RelatedArtifact, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	r := &RelatedArtifact{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		typ:               b.typ,
		classifier:        slices.Clone(b.classifier),
		label:             b.label,
		display:           b.display,
		citation:          b.citation,
		document:          b.document,
		resource:          b.resource,
		resourceReference: b.resourceReference,
		publicationStatus: b.publicationStatus,
		publicationDate:   b.publicationDate,
	}
	if err := meta.Check(r); err != nil {
		return nil, err
	}
	return r, nil
}
