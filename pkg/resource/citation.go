package resource

import (
	"slices"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation",
		Kind: meta.KindResource,
		Base: "DomainResource",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"id"}, Summary: true},
			{Name: "meta", Max: "1", Types: []string{"Meta"}, Summary: true},
			{Name: "implicitRules", Max: "1", Types: []string{"uri"}, Summary: true, Modifier: true},
			{Name: "language", Max: "1", Types: []string{"code"}, Binding: datatype.LanguagesBinding},
			{Name: "text", Max: "1", Types: []string{"Narrative"}},
			{Name: "contained", Max: "*", Types: []string{"Resource"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "url", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "identifier", Max: "*", Types: []string{"Identifier"}, Summary: true},
			{Name: "version", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "versionAlgorithm", Max: "1", Types: []string{"string", "Coding"}, Summary: true},
			{Name: "name", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "title", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "status", Min: 1, Max: "1", Types: []string{"code"}, Binding: datatype.PublicationStatusBinding, Summary: true, Modifier: true},
			{Name: "experimental", Max: "1", Types: []string{"boolean"}, Summary: true},
			{Name: "date", Max: "1", Types: []string{"dateTime"}, Summary: true},
			{Name: "publisher", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "contact", Max: "*", Types: []string{"ContactDetail"}, Summary: true},
			{Name: "description", Max: "1", Types: []string{"markdown"}},
			{Name: "useContext", Max: "*", Types: []string{"UsageContext"}, Summary: true},
			{Name: "jurisdiction", Max: "*", Types: []string{"CodeableConcept"}, Summary: true},
			{Name: "purpose", Max: "1", Types: []string{"markdown"}},
			{Name: "copyright", Max: "1", Types: []string{"markdown"}},
			{Name: "copyrightLabel", Max: "1", Types: []string{"string"}},
			{Name: "approvalDate", Max: "1", Types: []string{"date"}},
			{Name: "lastReviewDate", Max: "1", Types: []string{"date"}},
			{Name: "effectivePeriod", Max: "1", Types: []string{"Period"}, Summary: true},
			{Name: "author", Max: "*", Types: []string{"ContactDetail"}},
			{Name: "editor", Max: "*", Types: []string{"ContactDetail"}},
			{Name: "reviewer", Max: "*", Types: []string{"ContactDetail"}},
			{Name: "endorser", Max: "*", Types: []string{"ContactDetail"}},
			{Name: "summary", Max: "*", Types: []string{"Citation.summary"}},
			{Name: "classification", Max: "*", Types: []string{"Citation.classification"}},
			{Name: "note", Max: "*", Types: []string{"Annotation"}},
			{Name: "currentState", Max: "*", Types: []string{"CodeableConcept"}},
			{Name: "statusDate", Max: "*", Types: []string{"Citation.statusDate"}},
			{Name: "relatesTo", Max: "*", Types: []string{"RelatedArtifact"}},
			{Name: "citedArtifact", Max: "1", Types: []string{"Citation.citedArtifact"}},
		},
		Constraints: []meta.Constraint{
			{Key: "dom-2", Severity: issue.SeverityError, Human: "If the resource is contained in another resource, it SHALL NOT contain nested Resources", Expression: "contained.contained.empty()"},
			{Key: "dom-4", Severity: issue.SeverityError, Human: "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated", Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()"},
			{Key: "dom-5", Severity: issue.SeverityError, Human: "If a resource is contained in another resource, it SHALL NOT have a security label", Expression: "contained.meta.security.empty()"},
			{Key: "dom-6", Severity: issue.SeverityWarning, Human: "A resource should have narrative for robust management", Expression: "text.`div`.exists()"},
			{Key: "cnl-0", Severity: issue.SeverityWarning, Human: "Name should be usable as an identifier for the module by machine processing applications such as code generation", Expression: "name.exists() implies name.matches('^[A-Z]([A-Za-z0-9_]){1,254}$')"},
			{Key: "cnl-1", Severity: issue.SeverityWarning, Human: "URL should not contain | or # - these characters make processing canonical references problematic", Expression: "url.exists() implies url.matches('^[^|# ]+$')"},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.summary",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "style", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "text", Min: 1, Max: "1", Types: []string{"markdown"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.classification",
		Kind: meta.KindBackbone,
		Base: "BackboneElement",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "modifierExtension", Max: "*", Types: []string{"Extension"}, Summary: true, Modifier: true},
			{Name: "type", Max: "1", Types: []string{"CodeableConcept"}},
			{Name: "classifier", Max: "*", Types: []string{"CodeableConcept"}},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Citation.statusDate",
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
}

// Citation is the bibliographic citation for a cited artifact, together with metadata about the citation itself.
type Citation struct {
	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []model.Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	url               *datatype.URI
	identifier        []*datatype.Identifier
	version           *datatype.String
	versionAlgorithm  model.Element
	name              *datatype.String
	title             *datatype.String
	status            *datatype.Code
	experimental      *datatype.Boolean
	date              *datatype.DateTime
	publisher         *datatype.String
	contact           []*datatype.ContactDetail
	description       *datatype.Markdown
	useContext        []*datatype.UsageContext
	jurisdiction      []*datatype.CodeableConcept
	purpose           *datatype.Markdown
	copyright         *datatype.Markdown
	copyrightLabel    *datatype.String
	approvalDate      *datatype.Date
	lastReviewDate    *datatype.Date
	effectivePeriod   *datatype.Period
	author            []*datatype.ContactDetail
	editor            []*datatype.ContactDetail
	reviewer          []*datatype.ContactDetail
	endorser          []*datatype.ContactDetail
	summary           []*CitationSummary
	classification    []*CitationClassification
	note              []*datatype.Annotation
	currentState      []*datatype.CodeableConcept
	statusDate        []*CitationStatusDate
	relatesTo         []*datatype.RelatedArtifact
	citedArtifact     *CitationCitedArtifact

	hashCache model.HashCache
}

// TypeName returns "Citation".
func (c *Citation) TypeName() string { return "Citation" }

// ResourceType returns "Citation".
func (c *Citation) ResourceType() string { return "Citation" }

// ResourceID returns the logical id.
func (c *Citation) ResourceID() string { return c.id }

// ID returns id.
func (c *Citation) ID() string { return c.id }

// Meta returns meta.
func (c *Citation) Meta() *datatype.Meta { return c.meta }

// ImplicitRules returns implicitRules.
func (c *Citation) ImplicitRules() *datatype.URI { return c.implicitRules }

// Language returns language.
func (c *Citation) Language() *datatype.Code { return c.language }

// Text returns text.
func (c *Citation) Text() *datatype.Narrative { return c.text }

// Contained returns a copy of contained.
func (c *Citation) Contained() []model.Resource { return slices.Clone(c.contained) }

// Extension returns a copy of extension.
func (c *Citation) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *Citation) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// URL returns url.
func (c *Citation) URL() *datatype.URI { return c.url }

// Identifier returns a copy of identifier.
func (c *Citation) Identifier() []*datatype.Identifier { return slices.Clone(c.identifier) }

// Version returns version.
func (c *Citation) Version() *datatype.String { return c.version }

// VersionAlgorithm returns the value of versionAlgorithm[x], whichever type it holds.
func (c *Citation) VersionAlgorithm() model.Element { return c.versionAlgorithm }

// VersionAlgorithmString returns versionAlgorithm[x] when it holds a string.
func (c *Citation) VersionAlgorithmString() (*datatype.String, bool) {
	v, ok := c.versionAlgorithm.(*datatype.String)
	return v, ok
}

// VersionAlgorithmCoding returns versionAlgorithm[x] when it holds a Coding.
func (c *Citation) VersionAlgorithmCoding() (*datatype.Coding, bool) {
	v, ok := c.versionAlgorithm.(*datatype.Coding)
	return v, ok
}

// Name returns name.
func (c *Citation) Name() *datatype.String { return c.name }

// Title returns title.
func (c *Citation) Title() *datatype.String { return c.title }

// Status returns status.
func (c *Citation) Status() *datatype.Code { return c.status }

// Experimental returns experimental.
func (c *Citation) Experimental() *datatype.Boolean { return c.experimental }

// Date returns date.
func (c *Citation) Date() *datatype.DateTime { return c.date }

// Publisher returns publisher.
func (c *Citation) Publisher() *datatype.String { return c.publisher }

// Contact returns a copy of contact.
func (c *Citation) Contact() []*datatype.ContactDetail { return slices.Clone(c.contact) }

// Description returns description.
func (c *Citation) Description() *datatype.Markdown { return c.description }

// UseContext returns a copy of useContext.
func (c *Citation) UseContext() []*datatype.UsageContext { return slices.Clone(c.useContext) }

// Jurisdiction returns a copy of jurisdiction.
func (c *Citation) Jurisdiction() []*datatype.CodeableConcept { return slices.Clone(c.jurisdiction) }

// Purpose returns purpose.
func (c *Citation) Purpose() *datatype.Markdown { return c.purpose }

// Copyright returns copyright.
func (c *Citation) Copyright() *datatype.Markdown { return c.copyright }

// CopyrightLabel returns copyrightLabel.
func (c *Citation) CopyrightLabel() *datatype.String { return c.copyrightLabel }

// ApprovalDate returns approvalDate.
func (c *Citation) ApprovalDate() *datatype.Date { return c.approvalDate }

// LastReviewDate returns lastReviewDate.
func (c *Citation) LastReviewDate() *datatype.Date { return c.lastReviewDate }

// EffectivePeriod returns effectivePeriod.
func (c *Citation) EffectivePeriod() *datatype.Period { return c.effectivePeriod }

// Author returns a copy of author.
func (c *Citation) Author() []*datatype.ContactDetail { return slices.Clone(c.author) }

// Editor returns a copy of editor.
func (c *Citation) Editor() []*datatype.ContactDetail { return slices.Clone(c.editor) }

// Reviewer returns a copy of reviewer.
func (c *Citation) Reviewer() []*datatype.ContactDetail { return slices.Clone(c.reviewer) }

// Endorser returns a copy of endorser.
func (c *Citation) Endorser() []*datatype.ContactDetail { return slices.Clone(c.endorser) }

// Summary returns a copy of summary.
func (c *Citation) Summary() []*CitationSummary { return slices.Clone(c.summary) }

// Classification returns a copy of classification.
func (c *Citation) Classification() []*CitationClassification { return slices.Clone(c.classification) }

// Note returns a copy of note.
func (c *Citation) Note() []*datatype.Annotation { return slices.Clone(c.note) }

// CurrentState returns a copy of currentState.
func (c *Citation) CurrentState() []*datatype.CodeableConcept { return slices.Clone(c.currentState) }

// StatusDate returns a copy of statusDate.
func (c *Citation) StatusDate() []*CitationStatusDate { return slices.Clone(c.statusDate) }

// RelatesTo returns a copy of relatesTo.
func (c *Citation) RelatesTo() []*datatype.RelatedArtifact { return slices.Clone(c.relatesTo) }

// CitedArtifact returns citedArtifact.
func (c *Citation) CitedArtifact() *CitationCitedArtifact { return c.citedArtifact }

// Fields returns the element slots in declaration order.
func (c *Citation) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.One("meta", c.meta),
		model.One("implicitRules", c.implicitRules),
		model.One("language", c.language),
		model.One("text", c.text),
		model.Resources("contained", c.contained),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("url", c.url),
		model.Many("identifier", c.identifier),
		model.One("version", c.version),
		model.Choice("versionAlgorithm", c.versionAlgorithm),
		model.One("name", c.name),
		model.One("title", c.title),
		model.One("status", c.status),
		model.One("experimental", c.experimental),
		model.One("date", c.date),
		model.One("publisher", c.publisher),
		model.Many("contact", c.contact),
		model.One("description", c.description),
		model.Many("useContext", c.useContext),
		model.Many("jurisdiction", c.jurisdiction),
		model.One("purpose", c.purpose),
		model.One("copyright", c.copyright),
		model.One("copyrightLabel", c.copyrightLabel),
		model.One("approvalDate", c.approvalDate),
		model.One("lastReviewDate", c.lastReviewDate),
		model.One("effectivePeriod", c.effectivePeriod),
		model.Many("author", c.author),
		model.Many("editor", c.editor),
		model.Many("reviewer", c.reviewer),
		model.Many("endorser", c.endorser),
		model.Many("summary", c.summary),
		model.Many("classification", c.classification),
		model.Many("note", c.note),
		model.Many("currentState", c.currentState),
		model.Many("statusDate", c.statusDate),
		model.Many("relatesTo", c.relatesTo),
		model.One("citedArtifact", c.citedArtifact),
	}
}

// Accept walks the record and its descendants with v.
func (c *Citation) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *Citation) Equal(other *Citation) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *Citation) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *Citation) ToBuilder() *CitationBuilder {
	return &CitationBuilder{
		id:                c.id,
		meta:              c.meta,
		implicitRules:     c.implicitRules,
		language:          c.language,
		text:              c.text,
		contained:         slices.Clone(c.contained),
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		url:               c.url,
		identifier:        slices.Clone(c.identifier),
		version:           c.version,
		versionAlgorithm:  c.versionAlgorithm,
		name:              c.name,
		title:             c.title,
		status:            c.status,
		experimental:      c.experimental,
		date:              c.date,
		publisher:         c.publisher,
		contact:           slices.Clone(c.contact),
		description:       c.description,
		useContext:        slices.Clone(c.useContext),
		jurisdiction:      slices.Clone(c.jurisdiction),
		purpose:           c.purpose,
		copyright:         c.copyright,
		copyrightLabel:    c.copyrightLabel,
		approvalDate:      c.approvalDate,
		lastReviewDate:    c.lastReviewDate,
		effectivePeriod:   c.effectivePeriod,
		author:            slices.Clone(c.author),
		editor:            slices.Clone(c.editor),
		reviewer:          slices.Clone(c.reviewer),
		endorser:          slices.Clone(c.endorser),
		summary:           slices.Clone(c.summary),
		classification:    slices.Clone(c.classification),
		note:              slices.Clone(c.note),
		currentState:      slices.Clone(c.currentState),
		statusDate:        slices.Clone(c.statusDate),
		relatesTo:         slices.Clone(c.relatesTo),
		citedArtifact:     c.citedArtifact,
	}
}

// CitationBuilder stages the values of a Citation. It is not safe for concurrent use.
type CitationBuilder struct {
	model.Staging

	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []model.Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	url               *datatype.URI
	identifier        []*datatype.Identifier
	version           *datatype.String
	versionAlgorithm  model.Element
	name              *datatype.String
	title             *datatype.String
	status            *datatype.Code
	experimental      *datatype.Boolean
	date              *datatype.DateTime
	publisher         *datatype.String
	contact           []*datatype.ContactDetail
	description       *datatype.Markdown
	useContext        []*datatype.UsageContext
	jurisdiction      []*datatype.CodeableConcept
	purpose           *datatype.Markdown
	copyright         *datatype.Markdown
	copyrightLabel    *datatype.String
	approvalDate      *datatype.Date
	lastReviewDate    *datatype.Date
	effectivePeriod   *datatype.Period
	author            []*datatype.ContactDetail
	editor            []*datatype.ContactDetail
	reviewer          []*datatype.ContactDetail
	endorser          []*datatype.ContactDetail
	summary           []*CitationSummary
	classification    []*CitationClassification
	note              []*datatype.Annotation
	currentState      []*datatype.CodeableConcept
	statusDate        []*CitationStatusDate
	relatesTo         []*datatype.RelatedArtifact
	citedArtifact     *CitationCitedArtifact
}

// NewCitationBuilder returns an empty builder.
func NewCitationBuilder() *CitationBuilder { return &CitationBuilder{} }

// ID sets id.
func (b *CitationBuilder) ID(v string) *CitationBuilder {
	b.id = v
	return b
}

// Meta sets meta.
func (b *CitationBuilder) Meta(v *datatype.Meta) *CitationBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets implicitRules.
func (b *CitationBuilder) ImplicitRules(v *datatype.URI) *CitationBuilder {
	b.implicitRules = v
	return b
}

// ImplicitRulesValue sets implicitRules from a plain value.
func (b *CitationBuilder) ImplicitRulesValue(v string) *CitationBuilder {
	b.implicitRules = datatype.NewURI(v)
	return b
}

// Language sets language.
func (b *CitationBuilder) Language(v *datatype.Code) *CitationBuilder {
	b.language = v
	return b
}

// LanguageValue sets language from a plain value.
func (b *CitationBuilder) LanguageValue(v string) *CitationBuilder {
	b.language = datatype.NewCode(v)
	return b
}

// Text sets text.
func (b *CitationBuilder) Text(v *datatype.Narrative) *CitationBuilder {
	b.text = v
	return b
}

// Contained appends to contained.
func (b *CitationBuilder) Contained(v ...model.Resource) *CitationBuilder {
	b.contained = append(b.contained, v...)
	return b
}

// SetContained replaces contained. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetContained(v []model.Resource) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "contained")
		return b
	}
	b.contained = slices.Clone(v)
	return b
}

// Extension appends to extension.
func (b *CitationBuilder) Extension(v ...*datatype.Extension) *CitationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetExtension(v []*datatype.Extension) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationBuilder) ModifierExtension(v ...*datatype.Extension) *CitationBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetModifierExtension(v []*datatype.Extension) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// URL sets url.
func (b *CitationBuilder) URL(v *datatype.URI) *CitationBuilder {
	b.url = v
	return b
}

// URLValue sets url from a plain value.
func (b *CitationBuilder) URLValue(v string) *CitationBuilder {
	b.url = datatype.NewURI(v)
	return b
}

// Identifier appends to identifier.
func (b *CitationBuilder) Identifier(v ...*datatype.Identifier) *CitationBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

// SetIdentifier replaces identifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetIdentifier(v []*datatype.Identifier) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "identifier")
		return b
	}
	b.identifier = slices.Clone(v)
	return b
}

// Version sets version.
func (b *CitationBuilder) Version(v *datatype.String) *CitationBuilder {
	b.version = v
	return b
}

// VersionValue sets version from a plain value.
func (b *CitationBuilder) VersionValue(v string) *CitationBuilder {
	b.version = datatype.NewString(v)
	return b
}

// VersionAlgorithm sets versionAlgorithm[x] to any of its allowed types; Build rejects others.
func (b *CitationBuilder) VersionAlgorithm(v model.Element) *CitationBuilder {
	b.versionAlgorithm = model.ChoiceValue(v)
	return b
}

// VersionAlgorithmString sets versionAlgorithm[x] to a String, clearing any other type.
func (b *CitationBuilder) VersionAlgorithmString(v *datatype.String) *CitationBuilder {
	b.versionAlgorithm = nil
	if v != nil {
		b.versionAlgorithm = v
	}
	return b
}

// VersionAlgorithmStringValue sets versionAlgorithm from a plain value.
func (b *CitationBuilder) VersionAlgorithmStringValue(v string) *CitationBuilder {
	b.versionAlgorithm = datatype.NewString(v)
	return b
}

// VersionAlgorithmCoding sets versionAlgorithm[x] to a Coding, clearing any other type.
func (b *CitationBuilder) VersionAlgorithmCoding(v *datatype.Coding) *CitationBuilder {
	b.versionAlgorithm = nil
	if v != nil {
		b.versionAlgorithm = v
	}
	return b
}

// Name sets name.
func (b *CitationBuilder) Name(v *datatype.String) *CitationBuilder {
	b.name = v
	return b
}

// NameValue sets name from a plain value.
func (b *CitationBuilder) NameValue(v string) *CitationBuilder {
	b.name = datatype.NewString(v)
	return b
}

// Title sets title.
func (b *CitationBuilder) Title(v *datatype.String) *CitationBuilder {
	b.title = v
	return b
}

// TitleValue sets title from a plain value.
func (b *CitationBuilder) TitleValue(v string) *CitationBuilder {
	b.title = datatype.NewString(v)
	return b
}

// Status sets status.
func (b *CitationBuilder) Status(v *datatype.Code) *CitationBuilder {
	b.status = v
	return b
}

// StatusValue sets status from a plain value.
func (b *CitationBuilder) StatusValue(v string) *CitationBuilder {
	b.status = datatype.NewCode(v)
	return b
}

// Experimental sets experimental.
func (b *CitationBuilder) Experimental(v *datatype.Boolean) *CitationBuilder {
	b.experimental = v
	return b
}

// ExperimentalValue sets experimental from a plain value.
func (b *CitationBuilder) ExperimentalValue(v bool) *CitationBuilder {
	b.experimental = datatype.NewBoolean(v)
	return b
}

// Date sets date.
func (b *CitationBuilder) Date(v *datatype.DateTime) *CitationBuilder {
	b.date = v
	return b
}

// DateValue sets date from a plain value.
func (b *CitationBuilder) DateValue(v string) *CitationBuilder {
	b.date = datatype.NewDateTime(v)
	return b
}

// Publisher sets publisher.
func (b *CitationBuilder) Publisher(v *datatype.String) *CitationBuilder {
	b.publisher = v
	return b
}

// PublisherValue sets publisher from a plain value.
func (b *CitationBuilder) PublisherValue(v string) *CitationBuilder {
	b.publisher = datatype.NewString(v)
	return b
}

// Contact appends to contact.
func (b *CitationBuilder) Contact(v ...*datatype.ContactDetail) *CitationBuilder {
	b.contact = append(b.contact, v...)
	return b
}

// SetContact replaces contact. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetContact(v []*datatype.ContactDetail) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "contact")
		return b
	}
	b.contact = slices.Clone(v)
	return b
}

// Description sets description.
func (b *CitationBuilder) Description(v *datatype.Markdown) *CitationBuilder {
	b.description = v
	return b
}

// DescriptionValue sets description from a plain value.
func (b *CitationBuilder) DescriptionValue(v string) *CitationBuilder {
	b.description = datatype.NewMarkdown(v)
	return b
}

// UseContext appends to useContext.
func (b *CitationBuilder) UseContext(v ...*datatype.UsageContext) *CitationBuilder {
	b.useContext = append(b.useContext, v...)
	return b
}

// SetUseContext replaces useContext. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetUseContext(v []*datatype.UsageContext) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "useContext")
		return b
	}
	b.useContext = slices.Clone(v)
	return b
}

// Jurisdiction appends to jurisdiction.
func (b *CitationBuilder) Jurisdiction(v ...*datatype.CodeableConcept) *CitationBuilder {
	b.jurisdiction = append(b.jurisdiction, v...)
	return b
}

// SetJurisdiction replaces jurisdiction. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetJurisdiction(v []*datatype.CodeableConcept) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "jurisdiction")
		return b
	}
	b.jurisdiction = slices.Clone(v)
	return b
}

// Purpose sets purpose.
func (b *CitationBuilder) Purpose(v *datatype.Markdown) *CitationBuilder {
	b.purpose = v
	return b
}

// PurposeValue sets purpose from a plain value.
func (b *CitationBuilder) PurposeValue(v string) *CitationBuilder {
	b.purpose = datatype.NewMarkdown(v)
	return b
}

// Copyright sets copyright.
func (b *CitationBuilder) Copyright(v *datatype.Markdown) *CitationBuilder {
	b.copyright = v
	return b
}

// CopyrightValue sets copyright from a plain value.
func (b *CitationBuilder) CopyrightValue(v string) *CitationBuilder {
	b.copyright = datatype.NewMarkdown(v)
	return b
}

// CopyrightLabel sets copyrightLabel.
func (b *CitationBuilder) CopyrightLabel(v *datatype.String) *CitationBuilder {
	b.copyrightLabel = v
	return b
}

// CopyrightLabelValue sets copyrightLabel from a plain value.
func (b *CitationBuilder) CopyrightLabelValue(v string) *CitationBuilder {
	b.copyrightLabel = datatype.NewString(v)
	return b
}

// ApprovalDate sets approvalDate.
func (b *CitationBuilder) ApprovalDate(v *datatype.Date) *CitationBuilder {
	b.approvalDate = v
	return b
}

// ApprovalDateValue sets approvalDate from a plain value.
func (b *CitationBuilder) ApprovalDateValue(v string) *CitationBuilder {
	b.approvalDate = datatype.NewDate(v)
	return b
}

// LastReviewDate sets lastReviewDate.
func (b *CitationBuilder) LastReviewDate(v *datatype.Date) *CitationBuilder {
	b.lastReviewDate = v
	return b
}

// LastReviewDateValue sets lastReviewDate from a plain value.
func (b *CitationBuilder) LastReviewDateValue(v string) *CitationBuilder {
	b.lastReviewDate = datatype.NewDate(v)
	return b
}

// EffectivePeriod sets effectivePeriod.
func (b *CitationBuilder) EffectivePeriod(v *datatype.Period) *CitationBuilder {
	b.effectivePeriod = v
	return b
}

// Author appends to author.
func (b *CitationBuilder) Author(v ...*datatype.ContactDetail) *CitationBuilder {
	b.author = append(b.author, v...)
	return b
}

// SetAuthor replaces author. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetAuthor(v []*datatype.ContactDetail) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "author")
		return b
	}
	b.author = slices.Clone(v)
	return b
}

// Editor appends to editor.
func (b *CitationBuilder) Editor(v ...*datatype.ContactDetail) *CitationBuilder {
	b.editor = append(b.editor, v...)
	return b
}

// SetEditor replaces editor. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetEditor(v []*datatype.ContactDetail) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "editor")
		return b
	}
	b.editor = slices.Clone(v)
	return b
}

// Reviewer appends to reviewer.
func (b *CitationBuilder) Reviewer(v ...*datatype.ContactDetail) *CitationBuilder {
	b.reviewer = append(b.reviewer, v...)
	return b
}

// SetReviewer replaces reviewer. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetReviewer(v []*datatype.ContactDetail) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "reviewer")
		return b
	}
	b.reviewer = slices.Clone(v)
	return b
}

// Endorser appends to endorser.
func (b *CitationBuilder) Endorser(v ...*datatype.ContactDetail) *CitationBuilder {
	b.endorser = append(b.endorser, v...)
	return b
}

// SetEndorser replaces endorser. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetEndorser(v []*datatype.ContactDetail) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "endorser")
		return b
	}
	b.endorser = slices.Clone(v)
	return b
}

// Summary appends to summary.
func (b *CitationBuilder) Summary(v ...*CitationSummary) *CitationBuilder {
	b.summary = append(b.summary, v...)
	return b
}

// SetSummary replaces summary. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetSummary(v []*CitationSummary) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "summary")
		return b
	}
	b.summary = slices.Clone(v)
	return b
}

// Classification appends to classification.
func (b *CitationBuilder) Classification(v ...*CitationClassification) *CitationBuilder {
	b.classification = append(b.classification, v...)
	return b
}

// SetClassification replaces classification. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetClassification(v []*CitationClassification) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "classification")
		return b
	}
	b.classification = slices.Clone(v)
	return b
}

// Note appends to note.
func (b *CitationBuilder) Note(v ...*datatype.Annotation) *CitationBuilder {
	b.note = append(b.note, v...)
	return b
}

// SetNote replaces note. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetNote(v []*datatype.Annotation) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "note")
		return b
	}
	b.note = slices.Clone(v)
	return b
}

// CurrentState appends to currentState.
func (b *CitationBuilder) CurrentState(v ...*datatype.CodeableConcept) *CitationBuilder {
	b.currentState = append(b.currentState, v...)
	return b
}

// SetCurrentState replaces currentState. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetCurrentState(v []*datatype.CodeableConcept) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "currentState")
		return b
	}
	b.currentState = slices.Clone(v)
	return b
}

// StatusDate appends to statusDate.
func (b *CitationBuilder) StatusDate(v ...*CitationStatusDate) *CitationBuilder {
	b.statusDate = append(b.statusDate, v...)
	return b
}

// SetStatusDate replaces statusDate. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetStatusDate(v []*CitationStatusDate) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "statusDate")
		return b
	}
	b.statusDate = slices.Clone(v)
	return b
}

// RelatesTo appends to relatesTo.
func (b *CitationBuilder) RelatesTo(v ...*datatype.RelatedArtifact) *CitationBuilder {
	b.relatesTo = append(b.relatesTo, v...)
	return b
}

// SetRelatesTo replaces relatesTo. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationBuilder) SetRelatesTo(v []*datatype.RelatedArtifact) *CitationBuilder {
	if v == nil {
		b.RejectNil("Citation", "relatesTo")
		return b
	}
	b.relatesTo = slices.Clone(v)
	return b
}

// CitedArtifact sets citedArtifact.
func (b *CitationBuilder) CitedArtifact(v *CitationCitedArtifact) *CitationBuilder {
	b.citedArtifact = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationBuilder) Build() (*Citation, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &Citation{
		id:                b.id,
		meta:              b.meta,
		implicitRules:     b.implicitRules,
		language:          b.language,
		text:              b.text,
		contained:         slices.Clone(b.contained),
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		url:               b.url,
		identifier:        slices.Clone(b.identifier),
		version:           b.version,
		versionAlgorithm:  b.versionAlgorithm,
		name:              b.name,
		title:             b.title,
		status:            b.status,
		experimental:      b.experimental,
		date:              b.date,
		publisher:         b.publisher,
		contact:           slices.Clone(b.contact),
		description:       b.description,
		useContext:        slices.Clone(b.useContext),
		jurisdiction:      slices.Clone(b.jurisdiction),
		purpose:           b.purpose,
		copyright:         b.copyright,
		copyrightLabel:    b.copyrightLabel,
		approvalDate:      b.approvalDate,
		lastReviewDate:    b.lastReviewDate,
		effectivePeriod:   b.effectivePeriod,
		author:            slices.Clone(b.author),
		editor:            slices.Clone(b.editor),
		reviewer:          slices.Clone(b.reviewer),
		endorser:          slices.Clone(b.endorser),
		summary:           slices.Clone(b.summary),
		classification:    slices.Clone(b.classification),
		note:              slices.Clone(b.note),
		currentState:      slices.Clone(b.currentState),
		statusDate:        slices.Clone(b.statusDate),
		relatesTo:         slices.Clone(b.relatesTo),
		citedArtifact:     b.citedArtifact,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationSummary is a human-readable display of key concepts to represent the citation.
type CitationSummary struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	style             *datatype.CodeableConcept
	text              *datatype.Markdown

	hashCache model.HashCache
}

// TypeName returns "Citation.summary".
func (c *CitationSummary) TypeName() string { return "Citation.summary" }

// ID returns id.
func (c *CitationSummary) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationSummary) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationSummary) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Style returns style.
func (c *CitationSummary) Style() *datatype.CodeableConcept { return c.style }

// Text returns text.
func (c *CitationSummary) Text() *datatype.Markdown { return c.text }

// Fields returns the element slots in declaration order.
func (c *CitationSummary) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("style", c.style),
		model.One("text", c.text),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationSummary) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationSummary) Equal(other *CitationSummary) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationSummary) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationSummary) ToBuilder() *CitationSummaryBuilder {
	return &CitationSummaryBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		style:             c.style,
		text:              c.text,
	}
}

// CitationSummaryBuilder stages the values of a CitationSummary. It is not safe for concurrent use.
type CitationSummaryBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	style             *datatype.CodeableConcept
	text              *datatype.Markdown
}

// NewCitationSummaryBuilder returns an empty builder.
func NewCitationSummaryBuilder() *CitationSummaryBuilder { return &CitationSummaryBuilder{} }

// ID sets id.
func (b *CitationSummaryBuilder) ID(v string) *CitationSummaryBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationSummaryBuilder) Extension(v ...*datatype.Extension) *CitationSummaryBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationSummaryBuilder) SetExtension(v []*datatype.Extension) *CitationSummaryBuilder {
	if v == nil {
		b.RejectNil("Citation.summary", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationSummaryBuilder) ModifierExtension(v ...*datatype.Extension) *CitationSummaryBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationSummaryBuilder) SetModifierExtension(v []*datatype.Extension) *CitationSummaryBuilder {
	if v == nil {
		b.RejectNil("Citation.summary", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Style sets style.
func (b *CitationSummaryBuilder) Style(v *datatype.CodeableConcept) *CitationSummaryBuilder {
	b.style = v
	return b
}

// Text sets text.
func (b *CitationSummaryBuilder) Text(v *datatype.Markdown) *CitationSummaryBuilder {
	b.text = v
	return b
}

// TextValue sets text from a plain value.
func (b *CitationSummaryBuilder) TextValue(v string) *CitationSummaryBuilder {
	b.text = datatype.NewMarkdown(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationSummaryBuilder) Build() (*CitationSummary, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationSummary{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		style:             b.style,
		text:              b.text,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationClassification is the assignment of the citation record to a classifier.
type CitationClassification struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	classifier        []*datatype.CodeableConcept

	hashCache model.HashCache
}

// TypeName returns "Citation.classification".
func (c *CitationClassification) TypeName() string { return "Citation.classification" }

// ID returns id.
func (c *CitationClassification) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationClassification) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationClassification) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Type returns typ.
func (c *CitationClassification) Type() *datatype.CodeableConcept { return c.typ }

// Classifier returns a copy of classifier.
func (c *CitationClassification) Classifier() []*datatype.CodeableConcept { return slices.Clone(c.classifier) }

// Fields returns the element slots in declaration order.
func (c *CitationClassification) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.Many("modifierExtension", c.modifierExtension),
		model.One("type", c.typ),
		model.Many("classifier", c.classifier),
	}
}

// Accept walks the record and its descendants with v.
func (c *CitationClassification) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationClassification) Equal(other *CitationClassification) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationClassification) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationClassification) ToBuilder() *CitationClassificationBuilder {
	return &CitationClassificationBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		typ:               c.typ,
		classifier:        slices.Clone(c.classifier),
	}
}

// CitationClassificationBuilder stages the values of a CitationClassification. It is not safe for concurrent use.
type CitationClassificationBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	typ               *datatype.CodeableConcept
	classifier        []*datatype.CodeableConcept
}

// NewCitationClassificationBuilder returns an empty builder.
func NewCitationClassificationBuilder() *CitationClassificationBuilder { return &CitationClassificationBuilder{} }

// ID sets id.
func (b *CitationClassificationBuilder) ID(v string) *CitationClassificationBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationClassificationBuilder) Extension(v ...*datatype.Extension) *CitationClassificationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationClassificationBuilder) SetExtension(v []*datatype.Extension) *CitationClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.classification", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationClassificationBuilder) ModifierExtension(v ...*datatype.Extension) *CitationClassificationBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationClassificationBuilder) SetModifierExtension(v []*datatype.Extension) *CitationClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.classification", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Type sets typ.
func (b *CitationClassificationBuilder) Type(v *datatype.CodeableConcept) *CitationClassificationBuilder {
	b.typ = v
	return b
}

// Classifier appends to classifier.
func (b *CitationClassificationBuilder) Classifier(v ...*datatype.CodeableConcept) *CitationClassificationBuilder {
	b.classifier = append(b.classifier, v...)
	return b
}

// SetClassifier replaces classifier. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationClassificationBuilder) SetClassifier(v []*datatype.CodeableConcept) *CitationClassificationBuilder {
	if v == nil {
		b.RejectNil("Citation.classification", "classifier")
		return b
	}
	b.classifier = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationClassificationBuilder) Build() (*CitationClassification, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationClassification{
		id:                b.id,
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		typ:               b.typ,
		classifier:        slices.Clone(b.classifier),
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CitationStatusDate records when the citation record entered a status.
type CitationStatusDate struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	activity          *datatype.CodeableConcept
	actual            *datatype.Boolean
	period            *datatype.Period

	hashCache model.HashCache
}

// TypeName returns "Citation.statusDate".
func (c *CitationStatusDate) TypeName() string { return "Citation.statusDate" }

// ID returns id.
func (c *CitationStatusDate) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *CitationStatusDate) Extension() []*datatype.Extension { return slices.Clone(c.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (c *CitationStatusDate) ModifierExtension() []*datatype.Extension { return slices.Clone(c.modifierExtension) }

// Activity returns activity.
func (c *CitationStatusDate) Activity() *datatype.CodeableConcept { return c.activity }

// Actual returns actual.
func (c *CitationStatusDate) Actual() *datatype.Boolean { return c.actual }

// Period returns period.
func (c *CitationStatusDate) Period() *datatype.Period { return c.period }

// Fields returns the element slots in declaration order.
func (c *CitationStatusDate) Fields() []model.Field {
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
func (c *CitationStatusDate) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *CitationStatusDate) Equal(other *CitationStatusDate) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *CitationStatusDate) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *CitationStatusDate) ToBuilder() *CitationStatusDateBuilder {
	return &CitationStatusDateBuilder{
		id:                c.id,
		extension:         slices.Clone(c.extension),
		modifierExtension: slices.Clone(c.modifierExtension),
		activity:          c.activity,
		actual:            c.actual,
		period:            c.period,
	}
}

// CitationStatusDateBuilder stages the values of a CitationStatusDate. It is not safe for concurrent use.
type CitationStatusDateBuilder struct {
	model.Staging

	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	activity          *datatype.CodeableConcept
	actual            *datatype.Boolean
	period            *datatype.Period
}

// NewCitationStatusDateBuilder returns an empty builder.
func NewCitationStatusDateBuilder() *CitationStatusDateBuilder { return &CitationStatusDateBuilder{} }

// ID sets id.
func (b *CitationStatusDateBuilder) ID(v string) *CitationStatusDateBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *CitationStatusDateBuilder) Extension(v ...*datatype.Extension) *CitationStatusDateBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationStatusDateBuilder) SetExtension(v []*datatype.Extension) *CitationStatusDateBuilder {
	if v == nil {
		b.RejectNil("Citation.statusDate", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *CitationStatusDateBuilder) ModifierExtension(v ...*datatype.Extension) *CitationStatusDateBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *CitationStatusDateBuilder) SetModifierExtension(v []*datatype.Extension) *CitationStatusDateBuilder {
	if v == nil {
		b.RejectNil("Citation.statusDate", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Activity sets activity.
func (b *CitationStatusDateBuilder) Activity(v *datatype.CodeableConcept) *CitationStatusDateBuilder {
	b.activity = v
	return b
}

// Actual sets actual.
func (b *CitationStatusDateBuilder) Actual(v *datatype.Boolean) *CitationStatusDateBuilder {
	b.actual = v
	return b
}

// ActualValue sets actual from a plain value.
func (b *CitationStatusDateBuilder) ActualValue(v bool) *CitationStatusDateBuilder {
	b.actual = datatype.NewBoolean(v)
	return b
}

// Period sets period.
func (b *CitationStatusDateBuilder) Period(v *datatype.Period) *CitationStatusDateBuilder {
	b.period = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *CitationStatusDateBuilder) Build() (*CitationStatusDate, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &CitationStatusDate{
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
