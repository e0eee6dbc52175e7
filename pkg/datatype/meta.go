package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Meta",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "versionId", Max: "1", Types: []string{"id"}, Summary: true},
			{Name: "lastUpdated", Max: "1", Types: []string{"instant"}, Summary: true},
			{Name: "source", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "profile", Max: "*", Types: []string{"canonical"}, Summary: true},
			{Name: "security", Max: "*", Types: []string{"Coding"}, Summary: true},
			{Name: "tag", Max: "*", Types: []string{"Coding"}, Summary: true},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Narrative",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "status", Min: 1, Max: "1", Types: []string{"code"}, Binding: NarrativeStatusBinding},
			{Name: "div", Min: 1, Max: "1", Types: []string{"xhtml"}},
		},
	})
}

// Meta is the metadata about a resource.
type Meta struct {
	id          string
	extension   []*Extension
	versionId   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding

	hashCache model.HashCache
}

// TypeName returns "Meta".
func (m *Meta) TypeName() string { return "Meta" }

// ID returns id.
func (m *Meta) ID() string { return m.id }

// Extension returns a copy of extension.
func (m *Meta) Extension() []*Extension { return slices.Clone(m.extension) }

// VersionID returns versionId.
func (m *Meta) VersionID() *ID { return m.versionId }

// LastUpdated returns lastUpdated.
func (m *Meta) LastUpdated() *Instant { return m.lastUpdated }

// Source returns source.
func (m *Meta) Source() *URI { return m.source }

// Profile returns a copy of profile.
func (m *Meta) Profile() []*Canonical { return slices.Clone(m.profile) }

// Security returns a copy of security.
func (m *Meta) Security() []*Coding { return slices.Clone(m.security) }

// Tag returns a copy of tag.
func (m *Meta) Tag() []*Coding { return slices.Clone(m.tag) }

// Fields returns the element slots in declaration order.
func (m *Meta) Fields() []model.Field {
	return []model.Field{
		model.ID(m.id),
		model.Many("extension", m.extension),
		model.One("versionId", m.versionId),
		model.One("lastUpdated", m.lastUpdated),
		model.One("source", m.source),
		model.Many("profile", m.profile),
		model.Many("security", m.security),
		model.Many("tag", m.tag),
	}
}

// Accept walks the record and its descendants with v.
func (m *Meta) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, m, m.Fields(), v)
}

// Equal reports whether m and other are structurally equal.
func (m *Meta) Equal(other *Meta) bool { return model.Equal(m, other) }

// Hash returns the structural hash. It is computed once.
func (m *Meta) Hash() uint64 {
	return m.hashCache.Get(func() uint64 { return model.Hash(m) })
}

// ToBuilder returns a builder staged with the values of m.
func (m *Meta) ToBuilder() *MetaBuilder {
	return &MetaBuilder{
		id:          m.id,
		extension:   slices.Clone(m.extension),
		versionId:   m.versionId,
		lastUpdated: m.lastUpdated,
		source:      m.source,
		profile:     slices.Clone(m.profile),
		security:    slices.Clone(m.security),
		tag:         slices.Clone(m.tag),
	}
}

// MetaBuilder stages the values of a Meta. It is not safe for concurrent use.
type MetaBuilder struct {
	model.Staging

	id          string
	extension   []*Extension
	versionId   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

// NewMetaBuilder returns an empty builder.
func NewMetaBuilder() *MetaBuilder { return &MetaBuilder{} }

// ID sets id.
func (b *MetaBuilder) ID(v string) *MetaBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *MetaBuilder) Extension(v ...*Extension) *MetaBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *MetaBuilder) SetExtension(v []*Extension) *MetaBuilder {
	if v == nil {
		b.RejectNil("Meta", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// VersionID sets versionId.
func (b *MetaBuilder) VersionID(v *ID) *MetaBuilder {
	b.versionId = v
	return b
}

// VersionIDValue sets versionId from a plain value.
func (b *MetaBuilder) VersionIDValue(v string) *MetaBuilder {
	b.versionId = NewID(v)
	return b
}

// LastUpdated sets lastUpdated.
func (b *MetaBuilder) LastUpdated(v *Instant) *MetaBuilder {
	b.lastUpdated = v
	return b
}

// LastUpdatedValue sets lastUpdated from a plain value.
func (b *MetaBuilder) LastUpdatedValue(v string) *MetaBuilder {
	b.lastUpdated = NewInstant(v)
	return b
}

// Source sets source.
func (b *MetaBuilder) Source(v *URI) *MetaBuilder {
	b.source = v
	return b
}

// SourceValue sets source from a plain value.
func (b *MetaBuilder) SourceValue(v string) *MetaBuilder {
	b.source = NewURI(v)
	return b
}

// Profile appends to profile.
func (b *MetaBuilder) Profile(v ...*Canonical) *MetaBuilder {
	b.profile = append(b.profile, v...)
	return b
}

// SetProfile replaces profile. A nil slice is rejected and leaves the builder unchanged.
func (b *MetaBuilder) SetProfile(v []*Canonical) *MetaBuilder {
	if v == nil {
		b.RejectNil("Meta", "profile")
		return b
	}
	b.profile = slices.Clone(v)
	return b
}

// ProfileValue appends profiles from canonical URLs.
func (b *MetaBuilder) ProfileValue(v ...string) *MetaBuilder {
	for _, s := range v {
		b.profile = append(b.profile, NewCanonical(s))
	}
	return b
}

// Security appends to security.
func (b *MetaBuilder) Security(v ...*Coding) *MetaBuilder {
	b.security = append(b.security, v...)
	return b
}

// SetSecurity replaces security. A nil slice is rejected and leaves the builder unchanged.
func (b *MetaBuilder) SetSecurity(v []*Coding) *MetaBuilder {
	if v == nil {
		b.RejectNil("Meta", "security")
		return b
	}
	b.security = slices.Clone(v)
	return b
}

// Tag appends to tag.
func (b *MetaBuilder) Tag(v ...*Coding) *MetaBuilder {
	b.tag = append(b.tag, v...)
	return b
}

// SetTag replaces tag. A nil slice is rejected and leaves the builder unchanged.
func (b *MetaBuilder) SetTag(v []*Coding) *MetaBuilder {
	if v == nil {
		b.RejectNil("Meta", "tag")
		return b
	}
	b.tag = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *MetaBuilder) Build() (*Meta, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	m := &Meta{
		id:          b.id,
		extension:   slices.Clone(b.extension),
		versionId:   b.versionId,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     slices.Clone(b.profile),
		security:    slices.Clone(b.security),
		tag:         slices.Clone(b.tag),
	}
	if err := meta.Check(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Narrative is the human-readable summary of a resource.
type Narrative struct {
	id        string
	extension []*Extension
	status    *Code
	div       *XHTML

	hashCache model.HashCache
}

// TypeName returns "Narrative".
func (n *Narrative) TypeName() string { return "Narrative" }

// ID returns id.
func (n *Narrative) ID() string { return n.id }

// Extension returns a copy of extension.
func (n *Narrative) Extension() []*Extension { return slices.Clone(n.extension) }

// Status returns status.
func (n *Narrative) Status() *Code { return n.status }

// Div returns div.
func (n *Narrative) Div() *XHTML { return n.div }

// Fields returns the element slots in declaration order.
func (n *Narrative) Fields() []model.Field {
	return []model.Field{
		model.ID(n.id),
		model.Many("extension", n.extension),
		model.One("status", n.status),
		model.One("div", n.div),
	}
}

// Accept walks the record and its descendants with v.
func (n *Narrative) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, n, n.Fields(), v)
}

// Equal reports whether n and other are structurally equal.
func (n *Narrative) Equal(other *Narrative) bool { return model.Equal(n, other) }

// Hash returns the structural hash. It is computed once.
func (n *Narrative) Hash() uint64 {
	return n.hashCache.Get(func() uint64 { return model.Hash(n) })
}

// ToBuilder returns a builder staged with the values of n.
func (n *Narrative) ToBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{
		id:        n.id,
		extension: slices.Clone(n.extension),
		status:    n.status,
		div:       n.div,
	}
}

// NarrativeBuilder stages the values of a Narrative. It is not safe for concurrent use.
type NarrativeBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	status    *Code
	div       *XHTML
}

// NewNarrativeBuilder returns an empty builder.
func NewNarrativeBuilder() *NarrativeBuilder { return &NarrativeBuilder{} }

// ID sets id.
func (b *NarrativeBuilder) ID(v string) *NarrativeBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *NarrativeBuilder) Extension(v ...*Extension) *NarrativeBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *NarrativeBuilder) SetExtension(v []*Extension) *NarrativeBuilder {
	if v == nil {
		b.RejectNil("Narrative", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Status sets status.
func (b *NarrativeBuilder) Status(v *Code) *NarrativeBuilder {
	b.status = v
	return b
}

// StatusValue sets status from a plain value.
func (b *NarrativeBuilder) StatusValue(v string) *NarrativeBuilder {
	b.status = NewCode(v)
	return b
}

// Div sets div.
func (b *NarrativeBuilder) Div(v *XHTML) *NarrativeBuilder {
	b.div = v
	return b
}

// DivValue sets div from a plain value.
func (b *NarrativeBuilder) DivValue(v string) *NarrativeBuilder {
	b.div = NewXHTML(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	n := &Narrative{
		id:        b.id,
		extension: slices.Clone(b.extension),
		status:    b.status,
		div:       b.div,
	}
	if err := meta.Check(n); err != nil {
		return nil, err
	}
	return n, nil
}
