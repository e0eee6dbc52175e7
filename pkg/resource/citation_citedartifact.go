package resource

import (
	"slices"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "identifier", Max: "*", Types: []string{"Identifier"}},
			{Name: "relatedIdentifier", Max: "*", Types: []string{"Identifier"}},
			{Name: "dateAccessed", Max: "1", Types: []string{"dateTime"}},
			{Name: "version", Max: "1", Types: []string{"Citation.citedArtifact.version"}},
			{Name: "currentState", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "statusDate", Max: "*", Types: []string{"Citation.citedArtifact.statusDate"}},
			{Name: "title", Max: "*", Types: []string{"Citation.citedArtifact.title"}},
			{Name: "abstract", Max: "*", Types: []string{"Citation.citedArtifact.abstract"}},
			{Name: "part", Max: "1", Types: []string{"Citation.citedArtifact.part"}},
			{Name: "relatesTo", Max: "*", Types: []string{"Citation.citedArtifact.relatesTo"}},
			{Name: "publicationForm", Max: "*", Types: []string{"Citation.citedArtifact.publicationForm"}},
			{Name: "webLocation", Max: "*", Types: []string{"Citation.citedArtifact.webLocation"}},
			{Name: "classification", Max: "*", Types: []string{"Citation.citedArtifact.classification"}},
			{Name: "contributorship", Max: "1", Types: []string{"Citation.citedArtifact.contributorship"}},
			{Name: "note", Max: "*", Types: []string{"Annotation"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.version",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "value", Min: 1, Max: "1", Types: []string{"string"}},
			{Name: "baseCitation", Max: "1", Types: []string{"Reference"}, Targets: []string{"Citation"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.statusDate",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "activity", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "actual", Max: "1", Types: []string{"boolean"}},
			{Name: "period", Min: 1, Max: "1", Types: []string{"Period"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.title",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "language", Max: "1", Types: []string{"code"}, Binding: datatype.LanguagesBinding},
			{Name: "text", Min: 1, Max: "1", Types: []string{"markdown"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.abstract",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "language", Max: "1", Types: []string{"code"}, Binding: datatype.LanguagesBinding},
			{Name: "text", Min: 1, Max: "1", Types: []string{"markdown"}},
			{Name: "copyright", Max: "1", Types: []string{"markdown"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.part",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "value", Max: "1", Types: []string{"string"}},
			{Name: "baseCitation", Max: "1", Types: []string{"Reference"}, Targets: []string{"Citation"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.relatesTo",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Min: 1, Max: "1", Types: []string{"code"}, Binding: RelatedArtifactTypeExpandedBinding},
			{Name: "classifier", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "label", Max: "1", Types: []string{"string"}},
			{Name: "display", Max: "1", Types: []string{"string"}},
			{Name: "citation", Max: "1", Types: []string{"markdown"}},
			{Name: "document", Max: "1", Types: []string{"Attachment"}},
			{Name: "resource", Max: "1", Types: []string{"canonical"}},
			{Name: "resourceReference", Max: "1", Types: []string{"Reference"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.publicationForm",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "publishedIn", Max: "1", Types: []string{"Citation.citedArtifact.publicationForm.publishedIn"}},
			{Name: "citedMedium", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "volume", Max: "1", Types: []string{"string"}},
			{Name: "issue", Max: "1", Types: []string{"string"}},
			{Name: "articleDate", Max: "1", Types: []string{"dateTime"}},
			{Name: "publicationDateText", Max: "1", Types: []string{"string"}},
			{Name: "publicationDateSeason", Max: "1", Types: []string{"string"}},
			{Name: "lastRevisionDate", Max: "1", Types: []string{"dateTime"}},
			{Name: "language", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "accessionNumber", Max: "1", Types: []string{"string"}},
			{Name: "pageString", Max: "1", Types: []string{"string"}},
			{Name: "firstPage", Max: "1", Types: []string{"string"}},
			{Name: "lastPage", Max: "1", Types: []string{"string"}},
			{Name: "pageCount", Max: "1", Types: []string{"string"}},
			{Name: "copyright", Max: "1", Types: []string{"markdown"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.publicationForm.publishedIn",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "identifier", Max: "*", Types: []string{"Identifier"}},
			{Name: "title", Max: "1", Types: []string{"string"}},
			{Name: "publisher", Max: "1", Types: []string{"Reference"}, Targets: []string{"Organization"}},
			{Name: "publisherLocation", Max: "1", Types: []string{"string"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.webLocation",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "classifier", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "url", Max: "1", Types: []string{"uri"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.classification",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "classifier", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "artifactAssessment", Max: "*", Types: []string{"Reference"}, Targets: []string{"ArtifactAssessment"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.contributorship",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "complete", Max: "1", Types: []string{"boolean"}},
			{Name: "entry", Max: "*", Types: []string{"Citation.citedArtifact.contributorship.entry"}},
			{Name: "summary", Max: "*", Types: []string{"Citation.citedArtifact.contributorship.summary"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.contributorship.entry",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "contributor", Min: 1, Max: "1", Types: []string{"Reference"}, Targets: []string{"Practitioner", "Organization"}},
			{Name: "forenameInitials", Max: "1", Types: []string{"string"}},
			{Name: "affiliation", Max: "*", Types: []string{"Reference"}, Targets: []string{"Organization", "PractitionerRole"}},
			{Name: "contributionType", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "role", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "contributionInstance", Max: "*", Types: []string{"Citation.citedArtifact.contributorship.entry.contributionInstance"}},
			{Name: "correspondingContact", Max: "1", Types: []string{"boolean"}},
			{Name: "rankingOrder", Max: "1", Types: []string{"positiveInt"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.contributorship.entry.contributionInstance",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "time", Max: "1", Types: []string{"dateTime"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.citedArtifact.contributorship.summary",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "style", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "source", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "value", Min: 1, Max: "1", Types: []string{"markdown"}},
		},
	})
}

// CitationCitedArtifact is the article or artifact being described by the citation.
type CitationCitedArtifact struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	relatedIdentifier []*datatype.Identifier
	dateAccessed      *datatype.DateTime
	version           *CitationCitedArtifactVersion
	currentState      []*datatype.CodeableConcept
	statusDate        []*CitationCitedArtifactStatusDate
	title             []*CitationCitedArtifactTitle
	abstract          []*CitationCitedArtifactAbstract
	part              *CitationCitedArtifactPart
	relatesTo         []*CitationCitedArtifactRelatesTo
	publicationForm   []*CitationCitedArtifactPublicationForm
	webLocation       []*CitationCitedArtifactWebLocation
	classification    []*CitationCitedArtifactClassification
	contributorship   *CitationCitedArtifactContributorship
	note              []*datatype.Annotation

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact".
func (c *CitationCitedArtifact) TypeName() string { return "Citation.citedArtifact" }

// ID returns id.
func (c *CitationCitedArtifact) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifact) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifact) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Identifier returns a copy of identifier.
func (c *CitationCitedArtifact) Identifier() []*datatype.Identifier { return slices.Clone(c.identifier) }

// RelatedIdentifier returns a copy of relatedIdentifier.
func (c *CitationCitedArtifact) RelatedIdentifier() []*datatype.Identifier { return slices.Clone(c.relatedIdentifier) }

// DateAccessed returns dateAccessed.
func (c *CitationCitedArtifact) DateAccessed() *datatype.DateTime { return c.dateAccessed }

// Version returns version.
func (c *CitationCitedArtifact) Version() *CitationCitedArtifactVersion { return c.version }

// CurrentState returns a copy of currentState.
func (c *CitationCitedArtifact) CurrentState() []*datatype.CodeableConcept { return slices.Clone(c.currentState) }

// StatusDate returns a copy of statusDate.
func (c *CitationCitedArtifact) StatusDate() []*CitationCitedArtifactStatusDate { return slices.Clone(c.statusDate) }

// Title returns a copy of title.
func (c *CitationCitedArtifact) Title() []*CitationCitedArtifactTitle { return slices.Clone(c.title) }

// Abstract returns a copy of abstract.
func (c *CitationCitedArtifact) Abstract() []*CitationCitedArtifactAbstract { return slices.Clone(c.abstract) }

// Part returns part.
func (c *CitationCitedArtifact) Part() *CitationCitedArtifactPart { return c.part }

// RelatesTo returns a copy of relatesTo.
func (c *CitationCitedArtifact) RelatesTo() []*CitationCitedArtifactRelatesTo { return slices.Clone(c.relatesTo) }

// PublicationForm returns a copy of publicationForm.
func (c *CitationCitedArtifact) PublicationForm() []*CitationCitedArtifactPublicationForm { return slices.Clone(c.publicationForm) }

// WebLocation returns a copy of webLocation.
func (c *CitationCitedArtifact) WebLocation() []*CitationCitedArtifactWebLocation { return slices.Clone(c.webLocation) }

// Classification returns a copy of classification.
func (c *CitationCitedArtifact) Classification() []*CitationCitedArtifactClassification { return slices.Clone(c.classification) }

// Contributorship returns contributorship.
func (c *CitationCitedArtifact) Contributorship() *CitationCitedArtifactContributorship { return c.contributorship }

// Note returns a copy of note.
func (c *CitationCitedArtifact) Note() []*datatype.Annotation { return slices.Clone(c.note) }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifact) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.Many("identifier", c.identifier),
		model.Many("relatedIdentifier", c.relatedIdentifier),
		model.One("dateAccessed", c.dateAccessed),
		model.One("version", c.version),
		model.Many("currentState", c.currentState),
		model.Many("statusDate", c.statusDate),
		model.Many("title", c.title),
		model.Many("abstract", c.abstract),
		model.One("part", c.part),
		model.Many("relatesTo", c.relatesTo),
		model.Many("publicationForm", c.publicationForm),
		model.Many("webLocation", c.webLocation),
		model.Many("classification", c.classification),
		model.One("contributorship", c.contributorship),
		model.Many("note", c.note),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifact) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifact) Equal(other *CitationCitedArtifact) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifact) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifact) ToBuilder() *CitationCitedArtifactBuilder {
	return &CitationCitedArtifactBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		identifier:        slices.Clone(c.identifier),
		relatedIdentifier: slices.Clone(c.relatedIdentifier),
		dateAccessed:      c.dateAccessed,
		version:           c.version,
		currentState:      slices.Clone(c.currentState),
		statusDate:        slices.Clone(c.statusDate),
		title:             slices.Clone(c.title),
		abstract:          slices.Clone(c.abstract),
		part:              c.part,
		relatesTo:         slices.Clone(c.relatesTo),
		publicationForm:   slices.Clone(c.publicationForm),
		webLocation:       slices.Clone(c.webLocation),
		classification:    slices.Clone(c.classification),
		contributorship:   c.contributorship,
		note:              slices.Clone(c.note),
	}
}

// CitationCitedArtifactBuilder stages the values of a CitationCitedArtifact. It is not safe for concurrent use.
type CitationCitedArtifactBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	relatedIdentifier []*datatype.Identifier
	dateAccessed      *datatype.DateTime
	version           *CitationCitedArtifactVersion
	currentState      []*datatype.CodeableConcept
	statusDate        []*CitationCitedArtifactStatusDate
	title             []*CitationCitedArtifactTitle
	abstract          []*CitationCitedArtifactAbstract
	part              *CitationCitedArtifactPart
	relatesTo         []*CitationCitedArtifactRelatesTo
	publicationForm   []*CitationCitedArtifactPublicationForm
	webLocation       []*CitationCitedArtifactWebLocation
	classification    []*CitationCitedArtifactClassification
	contributorship   *CitationCitedArtifactContributorship
	note              []*datatype.Annotation
}

// NewCitationCitedArtifactBuilder returns an empty builder.
func NewCitationCitedArtifactBuilder() *CitationCitedArtifactBuilder { return &CitationCitedArtifactBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactBuilder) ID(v string) *CitationCitedArtifactBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Identifier appends to identifier.
func (b *CitationCitedArtifactBuilder) Identifier(v ...*datatype.Identifier) *CitationCitedArtifactBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

// SetIdentifier replaces identifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetIdentifier(v []*datatype.Identifier) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "identifier")
		return b
	}
	b.identifier = slices.Clone(v)
	return b
}

// RelatedIdentifier appends to relatedIdentifier.
func (b *CitationCitedArtifactBuilder) RelatedIdentifier(v ...*datatype.Identifier) *CitationCitedArtifactBuilder {
	b.relatedIdentifier = append(b.relatedIdentifier, v...)
	return b
}

// SetRelatedIdentifier replaces relatedIdentifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetRelatedIdentifier(v []*datatype.Identifier) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "relatedIdentifier")
		return b
	}
	b.relatedIdentifier = slices.Clone(v)
	return b
}

// DateAccessed sets dateAccessed.
func (b *CitationCitedArtifactBuilder) DateAccessed(v *datatype.DateTime) *CitationCitedArtifactBuilder {
	b.dateAccessed = v
	return b
}

// DateAccessedValue sets dateAccessed from a plain value.
func (b *CitationCitedArtifactBuilder) DateAccessedValue(v string) *CitationCitedArtifactBuilder {
	b.dateAccessed = datatype.NewDateTime(v)
	return b
}

// Version sets version.
func (b *CitationCitedArtifactBuilder) Version(v *CitationCitedArtifactVersion) *CitationCitedArtifactBuilder {
	b.version = v
	return b
}

// CurrentState appends to currentState.
func (b *CitationCitedArtifactBuilder) CurrentState(v ...*datatype.CodeableConcept) *CitationCitedArtifactBuilder {
	b.currentState = append(b.currentState, v...)
	return b
}

// SetCurrentState replaces currentState. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetCurrentState(v []*datatype.CodeableConcept) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "currentState")
		return b
	}
	b.currentState = slices.Clone(v)
	return b
}

// StatusDate appends to statusDate.
func (b *CitationCitedArtifactBuilder) StatusDate(v ...*CitationCitedArtifactStatusDate) *CitationCitedArtifactBuilder {
	b.statusDate = append(b.statusDate, v...)
	return b
}

// SetStatusDate replaces statusDate. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetStatusDate(v []*CitationCitedArtifactStatusDate) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "statusDate")
		return b
	}
	b.statusDate = slices.Clone(v)
	return b
}

// Title appends to title.
func (b *CitationCitedArtifactBuilder) Title(v ...*CitationCitedArtifactTitle) *CitationCitedArtifactBuilder {
	b.title = append(b.title, v...)
	return b
}

// SetTitle replaces title. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetTitle(v []*CitationCitedArtifactTitle) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "title")
		return b
	}
	b.title = slices.Clone(v)
	return b
}

// Abstract appends to abstract.
func (b *CitationCitedArtifactBuilder) Abstract(v ...*CitationCitedArtifactAbstract) *CitationCitedArtifactBuilder {
	b.abstract = append(b.abstract, v...)
	return b
}

// SetAbstract replaces abstract. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetAbstract(v []*CitationCitedArtifactAbstract) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "abstract")
		return b
	}
	b.abstract = slices.Clone(v)
	return b
}

// Part sets part.
func (b *CitationCitedArtifactBuilder) Part(v *CitationCitedArtifactPart) *CitationCitedArtifactBuilder {
	b.part = v
	return b
}

// RelatesTo appends to relatesTo.
func (b *CitationCitedArtifactBuilder) RelatesTo(v ...*CitationCitedArtifactRelatesTo) *CitationCitedArtifactBuilder {
	b.relatesTo = append(b.relatesTo, v...)
	return b
}

// SetRelatesTo replaces relatesTo. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetRelatesTo(v []*CitationCitedArtifactRelatesTo) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "relatesTo")
		return b
	}
	b.relatesTo = slices.Clone(v)
	return b
}

// PublicationForm appends to publicationForm.
func (b *CitationCitedArtifactBuilder) PublicationForm(v ...*CitationCitedArtifactPublicationForm) *CitationCitedArtifactBuilder {
	b.publicationForm = append(b.publicationForm, v...)
	return b
}

// SetPublicationForm replaces publicationForm. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetPublicationForm(v []*CitationCitedArtifactPublicationForm) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "publicationForm")
		return b
	}
	b.publicationForm = slices.Clone(v)
	return b
}

// WebLocation appends to webLocation.
func (b *CitationCitedArtifactBuilder) WebLocation(v ...*CitationCitedArtifactWebLocation) *CitationCitedArtifactBuilder {
	b.webLocation = append(b.webLocation, v...)
	return b
}

// SetWebLocation replaces webLocation. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetWebLocation(v []*CitationCitedArtifactWebLocation) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "webLocation")
		return b
	}
	b.webLocation = slices.Clone(v)
	return b
}

// Classification appends to classification.
func (b *CitationCitedArtifactBuilder) Classification(v ...*CitationCitedArtifactClassification) *CitationCitedArtifactBuilder {
	b.classification = append(b.classification, v...)
	return b
}

// SetClassification replaces classification. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetClassification(v []*CitationCitedArtifactClassification) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "classification")
		return b
	}
	b.classification = slices.Clone(v)
	return b
}

// Contributorship sets contributorship.
func (b *CitationCitedArtifactBuilder) Contributorship(v *CitationCitedArtifactContributorship) *CitationCitedArtifactBuilder {
	b.contributorship = v
	return b
}

// Note appends to note.
func (b *CitationCitedArtifactBuilder) Note(v ...*datatype.Annotation) *CitationCitedArtifactBuilder {
	b.note = append(b.note, v...)
	return b
}

// SetNote replaces note. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactBuilder) SetNote(v []*datatype.Annotation) *CitationCitedArtifactBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact", "note")
		return b
	}
	b.note = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactBuilder) Build() (*CitationCitedArtifact, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifact{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		identifier:        slices.Clone(b.identifier),
		relatedIdentifier: slices.Clone(b.relatedIdentifier),
		dateAccessed:      b.dateAccessed,
		version:           b.version,
		currentState:      slices.Clone(b.currentState),
		statusDate:        slices.Clone(b.statusDate),
		title:             slices.Clone(b.title),
		abstract:          slices.Clone(b.abstract),
		part:              b.part,
		relatesTo:         slices.Clone(b.relatesTo),
		publicationForm:   slices.Clone(b.publicationForm),
		webLocation:       slices.Clone(b.webLocation),
		classification:    slices.Clone(b.classification),
		contributorship:   b.contributorship,
		note:              slices.Clone(b.note),
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactVersion is the version of the cited artifact.
type CitationCitedArtifactVersion struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	value             *datatype.String
	baseCitation      *datatype.Reference

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.version".
func (c *CitationCitedArtifactVersion) TypeName() string { return "Citation.citedArtifact.version" }

// ID returns id.
func (c *CitationCitedArtifactVersion) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactVersion) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactVersion) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Value returns value.
func (c *CitationCitedArtifactVersion) Value() *datatype.String { return c.value }

// BaseCitation returns baseCitation.
func (c *CitationCitedArtifactVersion) BaseCitation() *datatype.Reference { return c.baseCitation }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactVersion) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("value", c.value),
		model.One("baseCitation", c.baseCitation),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactVersion) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactVersion) Equal(other *CitationCitedArtifactVersion) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactVersion) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactVersion) ToBuilder() *CitationCitedArtifactVersionBuilder {
	return &CitationCitedArtifactVersionBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		value:             c.value,
		baseCitation:      c.baseCitation,
	}
}

// CitationCitedArtifactVersionBuilder stages the values of a CitationCitedArtifactVersion. It is not safe for concurrent use.
type CitationCitedArtifactVersionBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	value             *datatype.String
	baseCitation      *datatype.Reference
}

// NewCitationCitedArtifactVersionBuilder returns an empty builder.
func NewCitationCitedArtifactVersionBuilder() *CitationCitedArtifactVersionBuilder { return &CitationCitedArtifactVersionBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactVersionBuilder) ID(v string) *CitationCitedArtifactVersionBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactVersionBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactVersionBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactVersionBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactVersionBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.version", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactVersionBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactVersionBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactVersionBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactVersionBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.version", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Value sets value.
func (b *CitationCitedArtifactVersionBuilder) Value(v *datatype.String) *CitationCitedArtifactVersionBuilder {
	b.value = v
	return b
}

// ValueValue sets value from a plain value.
func (b *CitationCitedArtifactVersionBuilder) ValueValue(v string) *CitationCitedArtifactVersionBuilder {
	b.value = datatype.NewString(v)
	return b
}

// BaseCitation sets baseCitation.
func (b *CitationCitedArtifactVersionBuilder) BaseCitation(v *datatype.Reference) *CitationCitedArtifactVersionBuilder {
	b.baseCitation = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactVersionBuilder) Build() (*CitationCitedArtifactVersion, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactVersion{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		value:             b.value,
		baseCitation:      b.baseCitation,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactStatusDate records when the cited artifact entered a status.
type CitationCitedArtifactStatusDate struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	activity          *datatype.CodeableConcept
	actual            *datatype.Boolean
	period            *datatype.Period

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.statusDate".
func (c *CitationCitedArtifactStatusDate) TypeName() string { return "Citation.citedArtifact.statusDate" }

// ID returns id.
func (c *CitationCitedArtifactStatusDate) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactStatusDate) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactStatusDate) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Activity returns activity.
func (c *CitationCitedArtifactStatusDate) Activity() *datatype.CodeableConcept { return c.activity }

// Actual returns actual.
func (c *CitationCitedArtifactStatusDate) Actual() *datatype.Boolean { return c.actual }

// Period returns period.
func (c *CitationCitedArtifactStatusDate) Period() *datatype.Period { return c.period }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactStatusDate) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("activity", c.activity),
		model.One("actual", c.actual),
		model.One("period", c.period),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactStatusDate) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactStatusDate) Equal(other *CitationCitedArtifactStatusDate) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactStatusDate) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactStatusDate) ToBuilder() *CitationCitedArtifactStatusDateBuilder {
	return &CitationCitedArtifactStatusDateBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		activity:          c.activity,
		actual:            c.actual,
		period:            c.period,
	}
}

// CitationCitedArtifactStatusDateBuilder stages the values of a CitationCitedArtifactStatusDate. It is not safe for concurrent use.
type CitationCitedArtifactStatusDateBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	activity          *datatype.CodeableConcept
	actual            *datatype.Boolean
	period            *datatype.Period
}

// NewCitationCitedArtifactStatusDateBuilder returns an empty builder.
func NewCitationCitedArtifactStatusDateBuilder() *CitationCitedArtifactStatusDateBuilder { return &CitationCitedArtifactStatusDateBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactStatusDateBuilder) ID(v string) *CitationCitedArtifactStatusDateBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactStatusDateBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactStatusDateBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactStatusDateBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactStatusDateBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.statusDate", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactStatusDateBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactStatusDateBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactStatusDateBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactStatusDateBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.statusDate", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Activity sets activity.
func (b *CitationCitedArtifactStatusDateBuilder) Activity(v *datatype.CodeableConcept) *CitationCitedArtifactStatusDateBuilder {
	b.activity = v
	return b
}

// Actual sets actual.
func (b *CitationCitedArtifactStatusDateBuilder) Actual(v *datatype.Boolean) *CitationCitedArtifactStatusDateBuilder {
	b.actual = v
	return b
}

// ActualValue sets actual from a plain value.
func (b *CitationCitedArtifactStatusDateBuilder) ActualValue(v bool) *CitationCitedArtifactStatusDateBuilder {
	b.actual = datatype.NewBoolean(v)
	return b
}

// Period sets period.
func (b *CitationCitedArtifactStatusDateBuilder) Period(v *datatype.Period) *CitationCitedArtifactStatusDateBuilder {
	b.period = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactStatusDateBuilder) Build() (*CitationCitedArtifactStatusDate, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactStatusDate{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		activity:          b.activity,
		actual:            b.actual,
		period:            b.period,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactTitle is a title of the cited artifact.
type CitationCitedArtifactTitle struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               []*datatype.CodeableConcept
	language          *datatype.Code
	text              *datatype.Markdown

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.title".
func (c *CitationCitedArtifactTitle) TypeName() string { return "Citation.citedArtifact.title" }

// ID returns id.
func (c *CitationCitedArtifactTitle) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactTitle) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactTitle) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns a copy of typ.
func (c *CitationCitedArtifactTitle) Type() []*datatype.CodeableConcept { return slices.Clone(c.typ) }

// Language returns language.
func (c *CitationCitedArtifactTitle) Language() *datatype.Code { return c.language }

// Text returns text.
func (c *CitationCitedArtifactTitle) Text() *datatype.Markdown { return c.text }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactTitle) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.Many("type", c.typ),
		model.One("language", c.language),
		model.One("text", c.text),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactTitle) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactTitle) Equal(other *CitationCitedArtifactTitle) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactTitle) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactTitle) ToBuilder() *CitationCitedArtifactTitleBuilder {
	return &CitationCitedArtifactTitleBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               slices.Clone(c.typ),
		language:          c.language,
		text:              c.text,
	}
}

// CitationCitedArtifactTitleBuilder stages the values of a CitationCitedArtifactTitle. It is not safe for concurrent use.
type CitationCitedArtifactTitleBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               []*datatype.CodeableConcept
	language          *datatype.Code
	text              *datatype.Markdown
}

// NewCitationCitedArtifactTitleBuilder returns an empty builder.
func NewCitationCitedArtifactTitleBuilder() *CitationCitedArtifactTitleBuilder { return &CitationCitedArtifactTitleBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactTitleBuilder) ID(v string) *CitationCitedArtifactTitleBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactTitleBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactTitleBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactTitleBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactTitleBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.title", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactTitleBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactTitleBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactTitleBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactTitleBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.title", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type appends to type.
func (b *CitationCitedArtifactTitleBuilder) Type(v ...*datatype.CodeableConcept) *CitationCitedArtifactTitleBuilder {
	b.typ = append(b.typ, v...)
	return b
}

// SetType replaces type. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactTitleBuilder) SetType(v []*datatype.CodeableConcept) *CitationCitedArtifactTitleBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.title", "type")
		return b
	}
	b.typ = slices.Clone(v)
	return b
}

// Language sets language.
func (b *CitationCitedArtifactTitleBuilder) Language(v *datatype.Code) *CitationCitedArtifactTitleBuilder {
	b.language = v
	return b
}

// LanguageValue sets language from a plain value.
func (b *CitationCitedArtifactTitleBuilder) LanguageValue(v string) *CitationCitedArtifactTitleBuilder {
	b.language = datatype.NewCode(v)
	return b
}

// Text sets text.
func (b *CitationCitedArtifactTitleBuilder) Text(v *datatype.Markdown) *CitationCitedArtifactTitleBuilder {
	b.text = v
	return b
}

// TextValue sets text from a plain value.
func (b *CitationCitedArtifactTitleBuilder) TextValue(v string) *CitationCitedArtifactTitleBuilder {
	b.text = datatype.NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactTitleBuilder) Build() (*CitationCitedArtifactTitle, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactTitle{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               slices.Clone(b.typ),
		language:          b.language,
		text:              b.text,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactAbstract is a summary of the cited artifact.
type CitationCitedArtifactAbstract struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	language          *datatype.Code
	text              *datatype.Markdown
	copyright         *datatype.Markdown

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.abstract".
func (c *CitationCitedArtifactAbstract) TypeName() string { return "Citation.citedArtifact.abstract" }

// ID returns id.
func (c *CitationCitedArtifactAbstract) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactAbstract) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactAbstract) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactAbstract) Type() *datatype.CodeableConcept { return c.typ }

// Language returns language.
func (c *CitationCitedArtifactAbstract) Language() *datatype.Code { return c.language }

// Text returns text.
func (c *CitationCitedArtifactAbstract) Text() *datatype.Markdown { return c.text }

// Copyright returns copyright.
func (c *CitationCitedArtifactAbstract) Copyright() *datatype.Markdown { return c.copyright }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactAbstract) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.One("language", c.language),
		model.One("text", c.text),
		model.One("copyright", c.copyright),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactAbstract) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactAbstract) Equal(other *CitationCitedArtifactAbstract) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactAbstract) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactAbstract) ToBuilder() *CitationCitedArtifactAbstractBuilder {
	return &CitationCitedArtifactAbstractBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		language:          c.language,
		text:              c.text,
		copyright:         c.copyright,
	}
}

// CitationCitedArtifactAbstractBuilder stages the values of a CitationCitedArtifactAbstract. It is not safe for concurrent use.
type CitationCitedArtifactAbstractBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	language          *datatype.Code
	text              *datatype.Markdown
	copyright         *datatype.Markdown
}

// NewCitationCitedArtifactAbstractBuilder returns an empty builder.
func NewCitationCitedArtifactAbstractBuilder() *CitationCitedArtifactAbstractBuilder { return &CitationCitedArtifactAbstractBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactAbstractBuilder) ID(v string) *CitationCitedArtifactAbstractBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactAbstractBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactAbstractBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactAbstractBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactAbstractBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.abstract", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactAbstractBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactAbstractBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactAbstractBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactAbstractBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.abstract", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactAbstractBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactAbstractBuilder {
	b.typ = v
	return b
}

// Language sets language.
func (b *CitationCitedArtifactAbstractBuilder) Language(v *datatype.Code) *CitationCitedArtifactAbstractBuilder {
	b.language = v
	return b
}

// LanguageValue sets language from a plain value.
func (b *CitationCitedArtifactAbstractBuilder) LanguageValue(v string) *CitationCitedArtifactAbstractBuilder {
	b.language = datatype.NewCode(v)
	return b
}

// Text sets text.
func (b *CitationCitedArtifactAbstractBuilder) Text(v *datatype.Markdown) *CitationCitedArtifactAbstractBuilder {
	b.text = v
	return b
}

// TextValue sets text from a plain value.
func (b *CitationCitedArtifactAbstractBuilder) TextValue(v string) *CitationCitedArtifactAbstractBuilder {
	b.text = datatype.NewMarkdown(v)
	return b
}

// Copyright sets copyright.
func (b *CitationCitedArtifactAbstractBuilder) Copyright(v *datatype.Markdown) *CitationCitedArtifactAbstractBuilder {
	b.copyright = v
	return b
}

// CopyrightValue sets copyright from a plain value.
func (b *CitationCitedArtifactAbstractBuilder) CopyrightValue(v string) *CitationCitedArtifactAbstractBuilder {
	b.copyright = datatype.NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactAbstractBuilder) Build() (*CitationCitedArtifactAbstract, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactAbstract{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		language:          b.language,
		text:              b.text,
		copyright:         b.copyright,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactPart identifies the component of a larger work the artifact belongs to.
type CitationCitedArtifactPart struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	value             *datatype.String
	baseCitation      *datatype.Reference

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.part".
func (c *CitationCitedArtifactPart) TypeName() string { return "Citation.citedArtifact.part" }

// ID returns id.
func (c *CitationCitedArtifactPart) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactPart) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactPart) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactPart) Type() *datatype.CodeableConcept { return c.typ }

// Value returns value.
func (c *CitationCitedArtifactPart) Value() *datatype.String { return c.value }

// BaseCitation returns baseCitation.
func (c *CitationCitedArtifactPart) BaseCitation() *datatype.Reference { return c.baseCitation }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactPart) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.One("value", c.value),
		model.One("baseCitation", c.baseCitation),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactPart) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactPart) Equal(other *CitationCitedArtifactPart) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactPart) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactPart) ToBuilder() *CitationCitedArtifactPartBuilder {
	return &CitationCitedArtifactPartBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		value:             c.value,
		baseCitation:      c.baseCitation,
	}
}

// CitationCitedArtifactPartBuilder stages the values of a CitationCitedArtifactPart. It is not safe for concurrent use.
type CitationCitedArtifactPartBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	value             *datatype.String
	baseCitation      *datatype.Reference
}

// NewCitationCitedArtifactPartBuilder returns an empty builder.
func NewCitationCitedArtifactPartBuilder() *CitationCitedArtifactPartBuilder { return &CitationCitedArtifactPartBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactPartBuilder) ID(v string) *CitationCitedArtifactPartBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactPartBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactPartBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPartBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactPartBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.part", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactPartBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactPartBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPartBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactPartBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.part", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactPartBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactPartBuilder {
	b.typ = v
	return b
}

// Value sets value.
func (b *CitationCitedArtifactPartBuilder) Value(v *datatype.String) *CitationCitedArtifactPartBuilder {
	b.value = v
	return b
}

// ValueValue sets value from a plain value.
func (b *CitationCitedArtifactPartBuilder) ValueValue(v string) *CitationCitedArtifactPartBuilder {
	b.value = datatype.NewString(v)
	return b
}

// BaseCitation sets baseCitation.
func (b *CitationCitedArtifactPartBuilder) BaseCitation(v *datatype.Reference) *CitationCitedArtifactPartBuilder {
	b.baseCitation = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactPartBuilder) Build() (*CitationCitedArtifactPart, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactPart{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		value:             b.value,
		baseCitation:      b.baseCitation,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactRelatesTo is an artifact related to the cited artifact.
type CitationCitedArtifactRelatesTo struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.Code
	classifier        []*datatype.CodeableConcept
	label             *datatype.String
	display           *datatype.String
	citation          *datatype.Markdown
	document          *datatype.Attachment
	resource          *datatype.Canonical
	resourceReference *datatype.Reference

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.relatesTo".
func (c *CitationCitedArtifactRelatesTo) TypeName() string { return "Citation.citedArtifact.relatesTo" }

// ID returns id.
func (c *CitationCitedArtifactRelatesTo) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactRelatesTo) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactRelatesTo) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactRelatesTo) Type() *datatype.Code { return c.typ }

// Classifier returns a copy of classifier.
func (c *CitationCitedArtifactRelatesTo) Classifier() []*datatype.CodeableConcept { return slices.Clone(c.classifier) }

// Label returns label.
func (c *CitationCitedArtifactRelatesTo) Label() *datatype.String { return c.label }

// Display returns display.
func (c *CitationCitedArtifactRelatesTo) Display() *datatype.String { return c.display }

// Citation returns citation.
func (c *CitationCitedArtifactRelatesTo) Citation() *datatype.Markdown { return c.citation }

// Document returns document.
func (c *CitationCitedArtifactRelatesTo) Document() *datatype.Attachment { return c.document }

// Resource returns resource.
func (c *CitationCitedArtifactRelatesTo) Resource() *datatype.Canonical { return c.resource }

// ResourceReference returns resourceReference.
func (c *CitationCitedArtifactRelatesTo) ResourceReference() *datatype.Reference { return c.resourceReference }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactRelatesTo) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.Many("classifier", c.classifier),
		model.One("label", c.label),
		model.One("display", c.display),
		model.One("citation", c.citation),
		model.One("document", c.document),
		model.One("resource", c.resource),
		model.One("resourceReference", c.resourceReference),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactRelatesTo) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactRelatesTo) Equal(other *CitationCitedArtifactRelatesTo) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactRelatesTo) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactRelatesTo) ToBuilder() *CitationCitedArtifactRelatesToBuilder {
	return &CitationCitedArtifactRelatesToBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		classifier:        slices.Clone(c.classifier),
		label:             c.label,
		display:           c.display,
		citation:          c.citation,
		document:          c.document,
		resource:          c.resource,
		resourceReference: c.resourceReference,
	}
}

// CitationCitedArtifactRelatesToBuilder stages the values of a CitationCitedArtifactRelatesTo. It is not safe for concurrent use.
type CitationCitedArtifactRelatesToBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.Code
	classifier        []*datatype.CodeableConcept
	label             *datatype.String
	display           *datatype.String
	citation          *datatype.Markdown
	document          *datatype.Attachment
	resource          *datatype.Canonical
	resourceReference *datatype.Reference
}

// NewCitationCitedArtifactRelatesToBuilder returns an empty builder.
func NewCitationCitedArtifactRelatesToBuilder() *CitationCitedArtifactRelatesToBuilder { return &CitationCitedArtifactRelatesToBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactRelatesToBuilder) ID(v string) *CitationCitedArtifactRelatesToBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactRelatesToBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactRelatesToBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactRelatesToBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactRelatesToBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.relatesTo", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactRelatesToBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactRelatesToBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactRelatesToBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactRelatesToBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.relatesTo", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactRelatesToBuilder) Type(v *datatype.Code) *CitationCitedArtifactRelatesToBuilder {
	b.typ = v
	return b
}

// TypeValue sets typ from a plain value.
func (b *CitationCitedArtifactRelatesToBuilder) TypeValue(v string) *CitationCitedArtifactRelatesToBuilder {
	b.typ = datatype.NewCode(v)
	return b
}

// Classifier appends to classifier.
func (b *CitationCitedArtifactRelatesToBuilder) Classifier(v ...*datatype.CodeableConcept) *CitationCitedArtifactRelatesToBuilder {
	b.classifier = append(b.classifier, v...)
	return b
}

// SetClassifier replaces classifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactRelatesToBuilder) SetClassifier(v []*datatype.CodeableConcept) *CitationCitedArtifactRelatesToBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.relatesTo", "classifier")
		return b
	}
	b.classifier = slices.Clone(v)
	return b
}

// Label sets label.
func (b *CitationCitedArtifactRelatesToBuilder) Label(v *datatype.String) *CitationCitedArtifactRelatesToBuilder {
	b.label = v
	return b
}

// LabelValue sets label from a plain value.
func (b *CitationCitedArtifactRelatesToBuilder) LabelValue(v string) *CitationCitedArtifactRelatesToBuilder {
	b.label = datatype.NewString(v)
	return b
}

// Display sets display.
func (b *CitationCitedArtifactRelatesToBuilder) Display(v *datatype.String) *CitationCitedArtifactRelatesToBuilder {
	b.display = v
	return b
}

// DisplayValue sets display from a plain value.
func (b *CitationCitedArtifactRelatesToBuilder) DisplayValue(v string) *CitationCitedArtifactRelatesToBuilder {
	b.display = datatype.NewString(v)
	return b
}

// Citation sets citation.
func (b *CitationCitedArtifactRelatesToBuilder) Citation(v *datatype.Markdown) *CitationCitedArtifactRelatesToBuilder {
	b.citation = v
	return b
}

// CitationValue sets citation from a plain value.
func (b *CitationCitedArtifactRelatesToBuilder) CitationValue(v string) *CitationCitedArtifactRelatesToBuilder {
	b.citation = datatype.NewMarkdown(v)
	return b
}

// Document sets document.
func (b *CitationCitedArtifactRelatesToBuilder) Document(v *datatype.Attachment) *CitationCitedArtifactRelatesToBuilder {
	b.document = v
	return b
}

// Resource sets resource.
func (b *CitationCitedArtifactRelatesToBuilder) Resource(v *datatype.Canonical) *CitationCitedArtifactRelatesToBuilder {
	b.resource = v
	return b
}

// ResourceValue sets resource from a plain value.
func (b *CitationCitedArtifactRelatesToBuilder) ResourceValue(v string) *CitationCitedArtifactRelatesToBuilder {
	b.resource = datatype.NewCanonical(v)
	return b
}

// ResourceReference sets resourceReference.
func (b *CitationCitedArtifactRelatesToBuilder) ResourceReference(v *datatype.Reference) *CitationCitedArtifactRelatesToBuilder {
	b.resourceReference = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactRelatesToBuilder) Build() (*CitationCitedArtifactRelatesTo, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactRelatesTo{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		classifier:        slices.Clone(b.classifier),
		label:             b.label,
		display:           b.display,
		citation:          b.citation,
		document:          b.document,
		resource:          b.resource,
		resourceReference: b.resourceReference,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactPublicationForm describes one form in which the artifact was published.
type CitationCitedArtifactPublicationForm struct {
	id                    string
	extension             []*datatype.Extension
	modifierExtension     []*datatype.Extension
	publishedIn           *CitationCitedArtifactPublicationFormPublishedIn
	citedMedium           *datatype.CodeableConcept
	volume                *datatype.String
	issue                 *datatype.String
	articleDate           *datatype.DateTime
	publicationDateText   *datatype.String
	publicationDateSeason *datatype.String
	lastRevisionDate      *datatype.DateTime
	language              []*datatype.CodeableConcept
	accessionNumber       *datatype.String
	pageString            *datatype.String
	firstPage             *datatype.String
	lastPage              *datatype.String
	pageCount             *datatype.String
	copyright             *datatype.Markdown

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.publicationForm".
func (c *CitationCitedArtifactPublicationForm) TypeName() string { return "Citation.citedArtifact.publicationForm" }

// ID returns id.
func (c *CitationCitedArtifactPublicationForm) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactPublicationForm) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactPublicationForm) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// PublishedIn returns publishedIn.
func (c *CitationCitedArtifactPublicationForm) PublishedIn() *CitationCitedArtifactPublicationFormPublishedIn { return c.publishedIn }

// CitedMedium returns citedMedium.
func (c *CitationCitedArtifactPublicationForm) CitedMedium() *datatype.CodeableConcept { return c.citedMedium }

// Volume returns volume.
func (c *CitationCitedArtifactPublicationForm) Volume() *datatype.String { return c.volume }

// Issue returns issue.
func (c *CitationCitedArtifactPublicationForm) Issue() *datatype.String { return c.issue }

// ArticleDate returns articleDate.
func (c *CitationCitedArtifactPublicationForm) ArticleDate() *datatype.DateTime { return c.articleDate }

// PublicationDateText returns publicationDateText.
func (c *CitationCitedArtifactPublicationForm) PublicationDateText() *datatype.String { return c.publicationDateText }

// PublicationDateSeason returns publicationDateSeason.
func (c *CitationCitedArtifactPublicationForm) PublicationDateSeason() *datatype.String { return c.publicationDateSeason }

// LastRevisionDate returns lastRevisionDate.
func (c *CitationCitedArtifactPublicationForm) LastRevisionDate() *datatype.DateTime { return c.lastRevisionDate }

// Language returns a copy of language.
func (c *CitationCitedArtifactPublicationForm) Language() []*datatype.CodeableConcept { return slices.Clone(c.language) }

// AccessionNumber returns accessionNumber.
func (c *CitationCitedArtifactPublicationForm) AccessionNumber() *datatype.String { return c.accessionNumber }

// PageString returns pageString.
func (c *CitationCitedArtifactPublicationForm) PageString() *datatype.String { return c.pageString }

// FirstPage returns firstPage.
func (c *CitationCitedArtifactPublicationForm) FirstPage() *datatype.String { return c.firstPage }

// LastPage returns lastPage.
func (c *CitationCitedArtifactPublicationForm) LastPage() *datatype.String { return c.lastPage }

// PageCount returns pageCount.
func (c *CitationCitedArtifactPublicationForm) PageCount() *datatype.String { return c.pageCount }

// Copyright returns copyright.
func (c *CitationCitedArtifactPublicationForm) Copyright() *datatype.Markdown { return c.copyright }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactPublicationForm) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("publishedIn", c.publishedIn),
		model.One("citedMedium", c.citedMedium),
		model.One("volume", c.volume),
		model.One("issue", c.issue),
		model.One("articleDate", c.articleDate),
		model.One("publicationDateText", c.publicationDateText),
		model.One("publicationDateSeason", c.publicationDateSeason),
		model.One("lastRevisionDate", c.lastRevisionDate),
		model.Many("language", c.language),
		model.One("accessionNumber", c.accessionNumber),
		model.One("pageString", c.pageString),
		model.One("firstPage", c.firstPage),
		model.One("lastPage", c.lastPage),
		model.One("pageCount", c.pageCount),
		model.One("copyright", c.copyright),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactPublicationForm) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactPublicationForm) Equal(other *CitationCitedArtifactPublicationForm) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactPublicationForm) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactPublicationForm) ToBuilder() *CitationCitedArtifactPublicationFormBuilder {
	return &CitationCitedArtifactPublicationFormBuilder{
		id:                    c.id,
		extension:             slices.Clone(c.extension),
		modifierExtension:     slices.Clone(c.modifierExtension),
		publishedIn:           c.publishedIn,
		citedMedium:           c.citedMedium,
		volume:                c.volume,
		issue:                 c.issue,
		articleDate:           c.articleDate,
		publicationDateText:   c.publicationDateText,
		publicationDateSeason: c.publicationDateSeason,
		lastRevisionDate:      c.lastRevisionDate,
		language:              slices.Clone(c.language),
		accessionNumber:       c.accessionNumber,
		pageString:            c.pageString,
		firstPage:             c.firstPage,
		lastPage:              c.lastPage,
		pageCount:             c.pageCount,
		copyright:             c.copyright,
	}
}

// CitationCitedArtifactPublicationFormBuilder stages the values of a CitationCitedArtifactPublicationForm. It is not safe for concurrent use.
type CitationCitedArtifactPublicationFormBuilder struct {
	model.Staging

	id                    string
	extension             []*datatype.Extension
	modifierExtension     []*datatype.Extension
	publishedIn           *CitationCitedArtifactPublicationFormPublishedIn
	citedMedium           *datatype.CodeableConcept
	volume                *datatype.String
	issue                 *datatype.String
	articleDate           *datatype.DateTime
	publicationDateText   *datatype.String
	publicationDateSeason *datatype.String
	lastRevisionDate      *datatype.DateTime
	language              []*datatype.CodeableConcept
	accessionNumber       *datatype.String
	pageString            *datatype.String
	firstPage             *datatype.String
	lastPage              *datatype.String
	pageCount             *datatype.String
	copyright             *datatype.Markdown
}

// NewCitationCitedArtifactPublicationFormBuilder returns an empty builder.
func NewCitationCitedArtifactPublicationFormBuilder() *CitationCitedArtifactPublicationFormBuilder { return &CitationCitedArtifactPublicationFormBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactPublicationFormBuilder) ID(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactPublicationFormBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactPublicationFormBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactPublicationFormBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactPublicationFormBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactPublicationFormBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactPublicationFormBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// PublishedIn sets publishedIn.
func (b *CitationCitedArtifactPublicationFormBuilder) PublishedIn(v *CitationCitedArtifactPublicationFormPublishedIn) *CitationCitedArtifactPublicationFormBuilder {
	b.publishedIn = v
	return b
}

// CitedMedium sets citedMedium.
func (b *CitationCitedArtifactPublicationFormBuilder) CitedMedium(v *datatype.CodeableConcept) *CitationCitedArtifactPublicationFormBuilder {
	b.citedMedium = v
	return b
}

// Volume sets volume.
func (b *CitationCitedArtifactPublicationFormBuilder) Volume(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.volume = v
	return b
}

// VolumeValue sets volume from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) VolumeValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.volume = datatype.NewString(v)
	return b
}

// Issue sets issue.
func (b *CitationCitedArtifactPublicationFormBuilder) Issue(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.issue = v
	return b
}

// IssueValue sets issue from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) IssueValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.issue = datatype.NewString(v)
	return b
}

// ArticleDate sets articleDate.
func (b *CitationCitedArtifactPublicationFormBuilder) ArticleDate(v *datatype.DateTime) *CitationCitedArtifactPublicationFormBuilder {
	b.articleDate = v
	return b
}

// ArticleDateValue sets articleDate from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) ArticleDateValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.articleDate = datatype.NewDateTime(v)
	return b
}

// PublicationDateText sets publicationDateText.
func (b *CitationCitedArtifactPublicationFormBuilder) PublicationDateText(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.publicationDateText = v
	return b
}

// PublicationDateTextValue sets publicationDateText from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) PublicationDateTextValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.publicationDateText = datatype.NewString(v)
	return b
}

// PublicationDateSeason sets publicationDateSeason.
func (b *CitationCitedArtifactPublicationFormBuilder) PublicationDateSeason(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.publicationDateSeason = v
	return b
}

// PublicationDateSeasonValue sets publicationDateSeason from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) PublicationDateSeasonValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.publicationDateSeason = datatype.NewString(v)
	return b
}

// LastRevisionDate sets lastRevisionDate.
func (b *CitationCitedArtifactPublicationFormBuilder) LastRevisionDate(v *datatype.DateTime) *CitationCitedArtifactPublicationFormBuilder {
	b.lastRevisionDate = v
	return b
}

// LastRevisionDateValue sets lastRevisionDate from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) LastRevisionDateValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.lastRevisionDate = datatype.NewDateTime(v)
	return b
}

// Language appends to language.
func (b *CitationCitedArtifactPublicationFormBuilder) Language(v ...*datatype.CodeableConcept) *CitationCitedArtifactPublicationFormBuilder {
	b.language = append(b.language, v...)
	return b
}

// SetLanguage replaces language. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormBuilder) SetLanguage(v []*datatype.CodeableConcept) *CitationCitedArtifactPublicationFormBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm", "language")
		return b
	}
	b.language = slices.Clone(v)
	return b
}

// AccessionNumber sets accessionNumber.
func (b *CitationCitedArtifactPublicationFormBuilder) AccessionNumber(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.accessionNumber = v
	return b
}

// AccessionNumberValue sets accessionNumber from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) AccessionNumberValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.accessionNumber = datatype.NewString(v)
	return b
}

// PageString sets pageString.
func (b *CitationCitedArtifactPublicationFormBuilder) PageString(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.pageString = v
	return b
}

// PageStringValue sets pageString from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) PageStringValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.pageString = datatype.NewString(v)
	return b
}

// FirstPage sets firstPage.
func (b *CitationCitedArtifactPublicationFormBuilder) FirstPage(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.firstPage = v
	return b
}

// FirstPageValue sets firstPage from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) FirstPageValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.firstPage = datatype.NewString(v)
	return b
}

// LastPage sets lastPage.
func (b *CitationCitedArtifactPublicationFormBuilder) LastPage(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.lastPage = v
	return b
}

// LastPageValue sets lastPage from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) LastPageValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.lastPage = datatype.NewString(v)
	return b
}

// PageCount sets pageCount.
func (b *CitationCitedArtifactPublicationFormBuilder) PageCount(v *datatype.String) *CitationCitedArtifactPublicationFormBuilder {
	b.pageCount = v
	return b
}

// PageCountValue sets pageCount from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) PageCountValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.pageCount = datatype.NewString(v)
	return b
}

// Copyright sets copyright.
func (b *CitationCitedArtifactPublicationFormBuilder) Copyright(v *datatype.Markdown) *CitationCitedArtifactPublicationFormBuilder {
	b.copyright = v
	return b
}

// CopyrightValue sets copyright from a plain value.
func (b *CitationCitedArtifactPublicationFormBuilder) CopyrightValue(v string) *CitationCitedArtifactPublicationFormBuilder {
	b.copyright = datatype.NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactPublicationFormBuilder) Build() (*CitationCitedArtifactPublicationForm, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactPublicationForm{
		id:                    b.id,
		extension:             slices.Clone(b.extension),
		modifierExtension:     slices.Clone(b.modifierExtension),
		publishedIn:           b.publishedIn,
		citedMedium:           b.citedMedium,
		volume:                b.volume,
		issue:                 b.issue,
		articleDate:           b.articleDate,
		publicationDateText:   b.publicationDateText,
		publicationDateSeason: b.publicationDateSeason,
		lastRevisionDate:      b.lastRevisionDate,
		language:              slices.Clone(b.language),
		accessionNumber:       b.accessionNumber,
		pageString:            b.pageString,
		firstPage:             b.firstPage,
		lastPage:              b.lastPage,
		pageCount:             b.pageCount,
		copyright:             b.copyright,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactPublicationFormPublishedIn is the collection the cited article or artifact is published in.
type CitationCitedArtifactPublicationFormPublishedIn struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	identifier        []*datatype.Identifier
	title             *datatype.String
	publisher         *datatype.Reference
	publisherLocation *datatype.String

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.publicationForm.publishedIn".
func (c *CitationCitedArtifactPublicationFormPublishedIn) TypeName() string { return "Citation.citedArtifact.publicationForm.publishedIn" }

// ID returns id.
func (c *CitationCitedArtifactPublicationFormPublishedIn) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactPublicationFormPublishedIn) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Type() *datatype.CodeableConcept { return c.typ }

// Identifier returns a copy of identifier.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Identifier() []*datatype.Identifier { return slices.Clone(c.identifier) }

// Title returns title.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Title() *datatype.String { return c.title }

// Publisher returns publisher.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Publisher() *datatype.Reference { return c.publisher }

// PublisherLocation returns publisherLocation.
func (c *CitationCitedArtifactPublicationFormPublishedIn) PublisherLocation() *datatype.String { return c.publisherLocation }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.Many("identifier", c.identifier),
		model.One("title", c.title),
		model.One("publisher", c.publisher),
		model.One("publisherLocation", c.publisherLocation),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Equal(other *CitationCitedArtifactPublicationFormPublishedIn) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactPublicationFormPublishedIn) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactPublicationFormPublishedIn) ToBuilder() *CitationCitedArtifactPublicationFormPublishedInBuilder {
	return &CitationCitedArtifactPublicationFormPublishedInBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		identifier:        slices.Clone(c.identifier),
		title:             c.title,
		publisher:         c.publisher,
		publisherLocation: c.publisherLocation,
	}
}

// CitationCitedArtifactPublicationFormPublishedInBuilder stages the values of a CitationCitedArtifactPublicationFormPublishedIn. It is not safe for concurrent use.
type CitationCitedArtifactPublicationFormPublishedInBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	identifier        []*datatype.Identifier
	title             *datatype.String
	publisher         *datatype.Reference
	publisherLocation *datatype.String
}

// NewCitationCitedArtifactPublicationFormPublishedInBuilder returns an empty builder.
func NewCitationCitedArtifactPublicationFormPublishedInBuilder() *CitationCitedArtifactPublicationFormPublishedInBuilder { return &CitationCitedArtifactPublicationFormPublishedInBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) ID(v string) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm.publishedIn", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm.publishedIn", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.typ = v
	return b
}

// Identifier appends to identifier.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Identifier(v ...*datatype.Identifier) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

// SetIdentifier replaces identifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) SetIdentifier(v []*datatype.Identifier) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.publicationForm.publishedIn", "identifier")
		return b
	}
	b.identifier = slices.Clone(v)
	return b
}

// Title sets title.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Title(v *datatype.String) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.title = v
	return b
}

// TitleValue sets title from a plain value.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) TitleValue(v string) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.title = datatype.NewString(v)
	return b
}

// Publisher sets publisher.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Publisher(v *datatype.Reference) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.publisher = v
	return b
}

// PublisherLocation sets publisherLocation.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) PublisherLocation(v *datatype.String) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.publisherLocation = v
	return b
}

// PublisherLocationValue sets publisherLocation from a plain value.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) PublisherLocationValue(v string) *CitationCitedArtifactPublicationFormPublishedInBuilder {
	b.publisherLocation = datatype.NewString(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactPublicationFormPublishedInBuilder) Build() (*CitationCitedArtifactPublicationFormPublishedIn, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactPublicationFormPublishedIn{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		identifier:        slices.Clone(b.identifier),
		title:             b.title,
		publisher:         b.publisher,
		publisherLocation: b.publisherLocation,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactWebLocation is a web address where the artifact can be accessed.
type CitationCitedArtifactWebLocation struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	classifier        []*datatype.CodeableConcept
	url               *datatype.URI

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.webLocation".
func (c *CitationCitedArtifactWebLocation) TypeName() string { return "Citation.citedArtifact.webLocation" }

// ID returns id.
func (c *CitationCitedArtifactWebLocation) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactWebLocation) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactWebLocation) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Classifier returns a copy of classifier.
func (c *CitationCitedArtifactWebLocation) Classifier() []*datatype.CodeableConcept { return slices.Clone(c.classifier) }

// URL returns url.
func (c *CitationCitedArtifactWebLocation) URL() *datatype.URI { return c.url }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactWebLocation) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.Many("classifier", c.classifier),
		model.One("url", c.url),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactWebLocation) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactWebLocation) Equal(other *CitationCitedArtifactWebLocation) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactWebLocation) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactWebLocation) ToBuilder() *CitationCitedArtifactWebLocationBuilder {
	return &CitationCitedArtifactWebLocationBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		classifier:        slices.Clone(c.classifier),
		url:               c.url,
	}
}

// CitationCitedArtifactWebLocationBuilder stages the values of a CitationCitedArtifactWebLocation. It is not safe for concurrent use.
type CitationCitedArtifactWebLocationBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	classifier        []*datatype.CodeableConcept
	url               *datatype.URI
}

// NewCitationCitedArtifactWebLocationBuilder returns an empty builder.
func NewCitationCitedArtifactWebLocationBuilder() *CitationCitedArtifactWebLocationBuilder { return &CitationCitedArtifactWebLocationBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactWebLocationBuilder) ID(v string) *CitationCitedArtifactWebLocationBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactWebLocationBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactWebLocationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactWebLocationBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactWebLocationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.webLocation", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactWebLocationBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactWebLocationBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactWebLocationBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactWebLocationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.webLocation", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Classifier appends to classifier.
func (b *CitationCitedArtifactWebLocationBuilder) Classifier(v ...*datatype.CodeableConcept) *CitationCitedArtifactWebLocationBuilder {
	b.classifier = append(b.classifier, v...)
	return b
}

// SetClassifier replaces classifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactWebLocationBuilder) SetClassifier(v []*datatype.CodeableConcept) *CitationCitedArtifactWebLocationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.webLocation", "classifier")
		return b
	}
	b.classifier = slices.Clone(v)
	return b
}

// URL sets url.
func (b *CitationCitedArtifactWebLocationBuilder) URL(v *datatype.URI) *CitationCitedArtifactWebLocationBuilder {
	b.url = v
	return b
}

// URLValue sets url from a plain value.
func (b *CitationCitedArtifactWebLocationBuilder) URLValue(v string) *CitationCitedArtifactWebLocationBuilder {
	b.url = datatype.NewURI(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactWebLocationBuilder) Build() (*CitationCitedArtifactWebLocation, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactWebLocation{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		classifier:        slices.Clone(b.classifier),
		url:               b.url,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactClassification assigns the cited artifact to a classifier.
type CitationCitedArtifactClassification struct {
	id                 string
	extension          []*datatype.Extension
	modifierExtension  []*datatype.Extension
	typ                *datatype.CodeableConcept
	classifier         []*datatype.CodeableConcept
	artifactAssessment []*datatype.Reference

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.classification".
func (c *CitationCitedArtifactClassification) TypeName() string { return "Citation.citedArtifact.classification" }

// ID returns id.
func (c *CitationCitedArtifactClassification) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactClassification) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactClassification) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactClassification) Type() *datatype.CodeableConcept { return c.typ }

// Classifier returns a copy of classifier.
func (c *CitationCitedArtifactClassification) Classifier() []*datatype.CodeableConcept { return slices.Clone(c.classifier) }

// ArtifactAssessment returns a copy of artifactAssessment.
func (c *CitationCitedArtifactClassification) ArtifactAssessment() []*datatype.Reference { return slices.Clone(c.artifactAssessment) }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactClassification) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.Many("classifier", c.classifier),
		model.Many("artifactAssessment", c.artifactAssessment),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactClassification) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactClassification) Equal(other *CitationCitedArtifactClassification) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactClassification) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactClassification) ToBuilder() *CitationCitedArtifactClassificationBuilder {
	return &CitationCitedArtifactClassificationBuilder{
		id:                 c.id,
		extension:          slices.Clone(c.extension),
		modifierExtension:  slices.Clone(c.modifierExtension),
		typ:                c.typ,
		classifier:         slices.Clone(c.classifier),
		artifactAssessment: slices.Clone(c.artifactAssessment),
	}
}

// CitationCitedArtifactClassificationBuilder stages the values of a CitationCitedArtifactClassification. It is not safe for concurrent use.
type CitationCitedArtifactClassificationBuilder struct {
	model.Staging

	id                 string
	extension          []*datatype.Extension
	modifierExtension  []*datatype.Extension
	typ                *datatype.CodeableConcept
	classifier         []*datatype.CodeableConcept
	artifactAssessment []*datatype.Reference
}

// NewCitationCitedArtifactClassificationBuilder returns an empty builder.
func NewCitationCitedArtifactClassificationBuilder() *CitationCitedArtifactClassificationBuilder { return &CitationCitedArtifactClassificationBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactClassificationBuilder) ID(v string) *CitationCitedArtifactClassificationBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactClassificationBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactClassificationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactClassificationBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.classification", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactClassificationBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactClassificationBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactClassificationBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.classification", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactClassificationBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactClassificationBuilder {
	b.typ = v
	return b
}

// Classifier appends to classifier.
func (b *CitationCitedArtifactClassificationBuilder) Classifier(v ...*datatype.CodeableConcept) *CitationCitedArtifactClassificationBuilder {
	b.classifier = append(b.classifier, v...)
	return b
}

// SetClassifier replaces classifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactClassificationBuilder) SetClassifier(v []*datatype.CodeableConcept) *CitationCitedArtifactClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.classification", "classifier")
		return b
	}
	b.classifier = slices.Clone(v)
	return b
}

// ArtifactAssessment appends to artifactAssessment.
func (b *CitationCitedArtifactClassificationBuilder) ArtifactAssessment(v ...*datatype.Reference) *CitationCitedArtifactClassificationBuilder {
	b.artifactAssessment = append(b.artifactAssessment, v...)
	return b
}

// SetArtifactAssessment replaces artifactAssessment. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactClassificationBuilder) SetArtifactAssessment(v []*datatype.Reference) *CitationCitedArtifactClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.classification", "artifactAssessment")
		return b
	}
	b.artifactAssessment = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactClassificationBuilder) Build() (*CitationCitedArtifactClassification, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactClassification{
		id:                 b.id,
		extension:          slices.Clone(b.extension),
		modifierExtension:  slices.Clone(b.modifierExtension),
		typ:                b.typ,
		classifier:         slices.Clone(b.classifier),
		artifactAssessment: slices.Clone(b.artifactAssessment),
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactContributorship attributes authors and other contributors.
type CitationCitedArtifactContributorship struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	complete          *datatype.Boolean
	entry             []*CitationCitedArtifactContributorshipEntry
	summary           []*CitationCitedArtifactContributorshipSummary

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.contributorship".
func (c *CitationCitedArtifactContributorship) TypeName() string { return "Citation.citedArtifact.contributorship" }

// ID returns id.
func (c *CitationCitedArtifactContributorship) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactContributorship) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactContributorship) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Complete returns complete.
func (c *CitationCitedArtifactContributorship) Complete() *datatype.Boolean { return c.complete }

// Entry returns a copy of entry.
func (c *CitationCitedArtifactContributorship) Entry() []*CitationCitedArtifactContributorshipEntry { return slices.Clone(c.entry) }

// Summary returns a copy of summary.
func (c *CitationCitedArtifactContributorship) Summary() []*CitationCitedArtifactContributorshipSummary { return slices.Clone(c.summary) }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactContributorship) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("complete", c.complete),
		model.Many("entry", c.entry),
		model.Many("summary", c.summary),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactContributorship) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactContributorship) Equal(other *CitationCitedArtifactContributorship) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactContributorship) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactContributorship) ToBuilder() *CitationCitedArtifactContributorshipBuilder {
	return &CitationCitedArtifactContributorshipBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		complete:          c.complete,
		entry:             slices.Clone(c.entry),
		summary:           slices.Clone(c.summary),
	}
}

// CitationCitedArtifactContributorshipBuilder stages the values of a CitationCitedArtifactContributorship. It is not safe for concurrent use.
type CitationCitedArtifactContributorshipBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	complete          *datatype.Boolean
	entry             []*CitationCitedArtifactContributorshipEntry
	summary           []*CitationCitedArtifactContributorshipSummary
}

// NewCitationCitedArtifactContributorshipBuilder returns an empty builder.
func NewCitationCitedArtifactContributorshipBuilder() *CitationCitedArtifactContributorshipBuilder { return &CitationCitedArtifactContributorshipBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactContributorshipBuilder) ID(v string) *CitationCitedArtifactContributorshipBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactContributorshipBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactContributorshipBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Complete sets complete.
func (b *CitationCitedArtifactContributorshipBuilder) Complete(v *datatype.Boolean) *CitationCitedArtifactContributorshipBuilder {
	b.complete = v
	return b
}

// CompleteValue sets complete from a plain value.
func (b *CitationCitedArtifactContributorshipBuilder) CompleteValue(v bool) *CitationCitedArtifactContributorshipBuilder {
	b.complete = datatype.NewBoolean(v)
	return b
}

// Entry appends to entry.
func (b *CitationCitedArtifactContributorshipBuilder) Entry(v ...*CitationCitedArtifactContributorshipEntry) *CitationCitedArtifactContributorshipBuilder {
	b.entry = append(b.entry, v...)
	return b
}

// SetEntry replaces entry. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipBuilder) SetEntry(v []*CitationCitedArtifactContributorshipEntry) *CitationCitedArtifactContributorshipBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship", "entry")
		return b
	}
	b.entry = slices.Clone(v)
	return b
}

// Summary appends to summary.
func (b *CitationCitedArtifactContributorshipBuilder) Summary(v ...*CitationCitedArtifactContributorshipSummary) *CitationCitedArtifactContributorshipBuilder {
	b.summary = append(b.summary, v...)
	return b
}

// SetSummary replaces summary. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipBuilder) SetSummary(v []*CitationCitedArtifactContributorshipSummary) *CitationCitedArtifactContributorshipBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship", "summary")
		return b
	}
	b.summary = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactContributorshipBuilder) Build() (*CitationCitedArtifactContributorship, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactContributorship{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		complete:          b.complete,
		entry:             slices.Clone(b.entry),
		summary:           slices.Clone(b.summary),
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactContributorshipEntry is an individual contributor.
type CitationCitedArtifactContributorshipEntry struct {
	id                   string
	extension            []*datatype.Extension
	modifierExtension    []*datatype.Extension
	contributor          *datatype.Reference
	forenameInitials     *datatype.String
	affiliation          []*datatype.Reference
	contributionType     []*datatype.CodeableConcept
	role                 *datatype.CodeableConcept
	contributionInstance []*CitationCitedArtifactContributorshipEntryContributionInstance
	correspondingContact *datatype.Boolean
	rankingOrder         *datatype.PositiveInt

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.contributorship.entry".
func (c *CitationCitedArtifactContributorshipEntry) TypeName() string { return "Citation.citedArtifact.contributorship.entry" }

// ID returns id.
func (c *CitationCitedArtifactContributorshipEntry) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactContributorshipEntry) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactContributorshipEntry) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Contributor returns contributor.
func (c *CitationCitedArtifactContributorshipEntry) Contributor() *datatype.Reference { return c.contributor }

// ForenameInitials returns forenameInitials.
func (c *CitationCitedArtifactContributorshipEntry) ForenameInitials() *datatype.String { return c.forenameInitials }

// Affiliation returns a copy of affiliation.
func (c *CitationCitedArtifactContributorshipEntry) Affiliation() []*datatype.Reference { return slices.Clone(c.affiliation) }

// ContributionType returns a copy of contributionType.
func (c *CitationCitedArtifactContributorshipEntry) ContributionType() []*datatype.CodeableConcept { return slices.Clone(c.contributionType) }

// Role returns role.
func (c *CitationCitedArtifactContributorshipEntry) Role() *datatype.CodeableConcept { return c.role }

// ContributionInstance returns a copy of contributionInstance.
func (c *CitationCitedArtifactContributorshipEntry) ContributionInstance() []*CitationCitedArtifactContributorshipEntryContributionInstance { return slices.Clone(c.contributionInstance) }

// CorrespondingContact returns correspondingContact.
func (c *CitationCitedArtifactContributorshipEntry) CorrespondingContact() *datatype.Boolean { return c.correspondingContact }

// RankingOrder returns rankingOrder.
func (c *CitationCitedArtifactContributorshipEntry) RankingOrder() *datatype.PositiveInt { return c.rankingOrder }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactContributorshipEntry) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("contributor", c.contributor),
		model.One("forenameInitials", c.forenameInitials),
		model.Many("affiliation", c.affiliation),
		model.Many("contributionType", c.contributionType),
		model.One("role", c.role),
		model.Many("contributionInstance", c.contributionInstance),
		model.One("correspondingContact", c.correspondingContact),
		model.One("rankingOrder", c.rankingOrder),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactContributorshipEntry) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactContributorshipEntry) Equal(other *CitationCitedArtifactContributorshipEntry) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactContributorshipEntry) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactContributorshipEntry) ToBuilder() *CitationCitedArtifactContributorshipEntryBuilder {
	return &CitationCitedArtifactContributorshipEntryBuilder{
		id:                   c.id,
		extension:            slices.Clone(c.extension),
		modifierExtension:    slices.Clone(c.modifierExtension),
		contributor:          c.contributor,
		forenameInitials:     c.forenameInitials,
		affiliation:          slices.Clone(c.affiliation),
		contributionType:     slices.Clone(c.contributionType),
		role:                 c.role,
		contributionInstance: slices.Clone(c.contributionInstance),
		correspondingContact: c.correspondingContact,
		rankingOrder:         c.rankingOrder,
	}
}

// CitationCitedArtifactContributorshipEntryBuilder stages the values of a CitationCitedArtifactContributorshipEntry. It is not safe for concurrent use.
type CitationCitedArtifactContributorshipEntryBuilder struct {
	model.Staging

	id                   string
	extension            []*datatype.Extension
	modifierExtension    []*datatype.Extension
	contributor          *datatype.Reference
	forenameInitials     *datatype.String
	affiliation          []*datatype.Reference
	contributionType     []*datatype.CodeableConcept
	role                 *datatype.CodeableConcept
	contributionInstance []*CitationCitedArtifactContributorshipEntryContributionInstance
	correspondingContact *datatype.Boolean
	rankingOrder         *datatype.PositiveInt
}

// NewCitationCitedArtifactContributorshipEntryBuilder returns an empty builder.
func NewCitationCitedArtifactContributorshipEntryBuilder() *CitationCitedArtifactContributorshipEntryBuilder { return &CitationCitedArtifactContributorshipEntryBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ID(v string) *CitationCitedArtifactContributorshipEntryBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactContributorshipEntryBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipEntryBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipEntryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipEntryBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipEntryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Contributor sets contributor.
func (b *CitationCitedArtifactContributorshipEntryBuilder) Contributor(v *datatype.Reference) *CitationCitedArtifactContributorshipEntryBuilder {
	b.contributor = v
	return b
}

// ForenameInitials sets forenameInitials.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ForenameInitials(v *datatype.String) *CitationCitedArtifactContributorshipEntryBuilder {
	b.forenameInitials = v
	return b
}

// ForenameInitialsValue sets forenameInitials from a plain value.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ForenameInitialsValue(v string) *CitationCitedArtifactContributorshipEntryBuilder {
	b.forenameInitials = datatype.NewString(v)
	return b
}

// Affiliation appends to affiliation.
func (b *CitationCitedArtifactContributorshipEntryBuilder) Affiliation(v ...*datatype.Reference) *CitationCitedArtifactContributorshipEntryBuilder {
	b.affiliation = append(b.affiliation, v...)
	return b
}

// SetAffiliation replaces affiliation. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryBuilder) SetAffiliation(v []*datatype.Reference) *CitationCitedArtifactContributorshipEntryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry", "affiliation")
		return b
	}
	b.affiliation = slices.Clone(v)
	return b
}

// ContributionType appends to contributionType.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ContributionType(v ...*datatype.CodeableConcept) *CitationCitedArtifactContributorshipEntryBuilder {
	b.contributionType = append(b.contributionType, v...)
	return b
}

// SetContributionType replaces contributionType. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryBuilder) SetContributionType(v []*datatype.CodeableConcept) *CitationCitedArtifactContributorshipEntryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry", "contributionType")
		return b
	}
	b.contributionType = slices.Clone(v)
	return b
}

// Role sets role.
func (b *CitationCitedArtifactContributorshipEntryBuilder) Role(v *datatype.CodeableConcept) *CitationCitedArtifactContributorshipEntryBuilder {
	b.role = v
	return b
}

// ContributionInstance appends to contributionInstance.
func (b *CitationCitedArtifactContributorshipEntryBuilder) ContributionInstance(v ...*CitationCitedArtifactContributorshipEntryContributionInstance) *CitationCitedArtifactContributorshipEntryBuilder {
	b.contributionInstance = append(b.contributionInstance, v...)
	return b
}

// SetContributionInstance replaces contributionInstance. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryBuilder) SetContributionInstance(v []*CitationCitedArtifactContributorshipEntryContributionInstance) *CitationCitedArtifactContributorshipEntryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry", "contributionInstance")
		return b
	}
	b.contributionInstance = slices.Clone(v)
	return b
}

// CorrespondingContact sets correspondingContact.
func (b *CitationCitedArtifactContributorshipEntryBuilder) CorrespondingContact(v *datatype.Boolean) *CitationCitedArtifactContributorshipEntryBuilder {
	b.correspondingContact = v
	return b
}

// CorrespondingContactValue sets correspondingContact from a plain value.
func (b *CitationCitedArtifactContributorshipEntryBuilder) CorrespondingContactValue(v bool) *CitationCitedArtifactContributorshipEntryBuilder {
	b.correspondingContact = datatype.NewBoolean(v)
	return b
}

// RankingOrder sets rankingOrder.
func (b *CitationCitedArtifactContributorshipEntryBuilder) RankingOrder(v *datatype.PositiveInt) *CitationCitedArtifactContributorshipEntryBuilder {
	b.rankingOrder = v
	return b
}

// RankingOrderValue sets rankingOrder from a plain value.
func (b *CitationCitedArtifactContributorshipEntryBuilder) RankingOrderValue(v int32) *CitationCitedArtifactContributorshipEntryBuilder {
	b.rankingOrder = datatype.NewPositiveInt(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactContributorshipEntryBuilder) Build() (*CitationCitedArtifactContributorshipEntry, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactContributorshipEntry{
		id:                   b.id,
		extension:            slices.Clone(b.extension),
		modifierExtension:    slices.Clone(b.modifierExtension),
		contributor:          b.contributor,
		forenameInitials:     b.forenameInitials,
		affiliation:          slices.Clone(b.affiliation),
		contributionType:     slices.Clone(b.contributionType),
		role:                 b.role,
		contributionInstance: slices.Clone(b.contributionInstance),
		correspondingContact: b.correspondingContact,
		rankingOrder:         b.rankingOrder,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactContributorshipEntryContributionInstance is a contribution done by the contributor.
type CitationCitedArtifactContributorshipEntryContributionInstance struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	time              *datatype.DateTime

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.contributorship.entry.contributionInstance".
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) TypeName() string { return "Citation.citedArtifact.contributorship.entry.contributionInstance" }

// ID returns id.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Type() *datatype.CodeableConcept { return c.typ }

// Time returns time.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Time() *datatype.DateTime { return c.time }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.One("time", c.time),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Equal(other *CitationCitedArtifactContributorshipEntryContributionInstance) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactContributorshipEntryContributionInstance) ToBuilder() *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	return &CitationCitedArtifactContributorshipEntryContributionInstanceBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		time:              c.time,
	}
}

// CitationCitedArtifactContributorshipEntryContributionInstanceBuilder stages the values of a CitationCitedArtifactContributorshipEntryContributionInstance. It is not safe for concurrent use.
type CitationCitedArtifactContributorshipEntryContributionInstanceBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	time              *datatype.DateTime
}

// NewCitationCitedArtifactContributorshipEntryContributionInstanceBuilder returns an empty builder.
func NewCitationCitedArtifactContributorshipEntryContributionInstanceBuilder() *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder { return &CitationCitedArtifactContributorshipEntryContributionInstanceBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) ID(v string) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry.contributionInstance", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.entry.contributionInstance", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.typ = v
	return b
}

// Time sets time.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) Time(v *datatype.DateTime) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.time = v
	return b
}

// TimeValue sets time from a plain value.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) TimeValue(v string) *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder {
	b.time = datatype.NewDateTime(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactContributorshipEntryContributionInstanceBuilder) Build() (*CitationCitedArtifactContributorshipEntryContributionInstance, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactContributorshipEntryContributionInstance{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		time:              b.time,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationCitedArtifactContributorshipSummary is a display of the contributor list.
type CitationCitedArtifactContributorshipSummary struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	style             *datatype.CodeableConcept
	source            *datatype.CodeableConcept
	value             *datatype.Markdown

	hashCache model.HashCache
}

// TypeName returns "Citation.citedArtifact.contributorship.summary".
func (c *CitationCitedArtifactContributorshipSummary) TypeName() string { return "Citation.citedArtifact.contributorship.summary" }

// ID returns id.
func (c *CitationCitedArtifactContributorshipSummary) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationCitedArtifactContributorshipSummary) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationCitedArtifactContributorshipSummary) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationCitedArtifactContributorshipSummary) Type() *datatype.CodeableConcept { return c.typ }

// Style returns style.
func (c *CitationCitedArtifactContributorshipSummary) Style() *datatype.CodeableConcept { return c.style }

// Source returns source.
func (c *CitationCitedArtifactContributorshipSummary) Source() *datatype.CodeableConcept { return c.source }

// Value returns value.
func (c *CitationCitedArtifactContributorshipSummary) Value() *datatype.Markdown { return c.value }

// Fields returns the element slots in declaration order.
func (c *CitationCitedArtifactContributorshipSummary) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.One("style", c.style),
		model.One("source", c.source),
		model.One("value", c.value),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationCitedArtifactContributorshipSummary) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationCitedArtifactContributorshipSummary) Equal(other *CitationCitedArtifactContributorshipSummary) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationCitedArtifactContributorshipSummary) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationCitedArtifactContributorshipSummary) ToBuilder() *CitationCitedArtifactContributorshipSummaryBuilder {
	return &CitationCitedArtifactContributorshipSummaryBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		style:             c.style,
		source:            c.source,
		value:             c.value,
	}
}

// CitationCitedArtifactContributorshipSummaryBuilder stages the values of a CitationCitedArtifactContributorshipSummary. It is not safe for concurrent use.
type CitationCitedArtifactContributorshipSummaryBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	style             *datatype.CodeableConcept
	source            *datatype.CodeableConcept
	value             *datatype.Markdown
}

// NewCitationCitedArtifactContributorshipSummaryBuilder returns an empty builder.
func NewCitationCitedArtifactContributorshipSummaryBuilder() *CitationCitedArtifactContributorshipSummaryBuilder { return &CitationCitedArtifactContributorshipSummaryBuilder{} }

// ID sets id.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) ID(v string) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Extension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) SetExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipSummaryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.summary", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) ModifierExtension(v ...*datatype.Extension) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) SetModifierExtension(v []*datatype.Extension) *CitationCitedArtifactContributorshipSummaryBuilder {
	if v == nil {
		b.RejectNil("Citation.citedArtifact.contributorship.summary", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Type(v *datatype.CodeableConcept) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.typ = v
	return b
}

// Style sets style.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Style(v *datatype.CodeableConcept) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.style = v
	return b
}

// Source sets source.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Source(v *datatype.CodeableConcept) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.source = v
	return b
}

// Value sets value.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Value(v *datatype.Markdown) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.value = v
	return b
}

// ValueValue sets value from a plain value.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) ValueValue(v string) *CitationCitedArtifactContributorshipSummaryBuilder {
	b.value = datatype.NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationCitedArtifactContributorshipSummaryBuilder) Build() (*CitationCitedArtifactContributorshipSummary, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationCitedArtifactContributorshipSummary{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		style:             b.style,
		source:            b.source,
		value:             b.value,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}
