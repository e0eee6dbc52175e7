package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Extension",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "url", Min: 1, Max: "1", Types: []string{"uri"}},
			{Name: "value", Max: "1", Types: []string{"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id", "instant", "integer", "integer64", "markdown", "oid", "positiveInt", "string", "time", "unsignedInt", "uri", "url", "uuid", "Annotation", "Attachment", "CodeableConcept", "Coding", "ContactPoint", "Identifier", "Period", "Quantity", "Range", "Reference", "ContactDetail", "RelatedArtifact", "UsageContext", "Meta"}},
		},
		Constraints: []meta.Constraint{
			{Key: "ext-1", Severity: issue.SeverityError, Human: "Must have either extensions or value[x], not both", Expression: "extension.exists() != value.exists()"},
		},
	})
}

// Extension is an additional element defined outside the base type. It has either a value or nested extensions, never both.
type Extension struct {
	id        string
	extension []*Extension
	url       string
	value     model.Element

	hashCache model.HashCache
}

// TypeName returns "Extension".
func (e *Extension) TypeName() string { return "Extension" }

// ID returns id.
func (e *Extension) ID() string { return e.id }

// Extension returns a copy of extension.
func (e *Extension) Extension() []*Extension { return slices.Clone(e.extension) }

// URL identifies the meaning of the extension.
func (e *Extension) URL() string { return e.url }

// Value returns the value of value[x], whichever type it holds.
func (e *Extension) Value() model.Element { return e.value }

// ValueBase64Binary returns value[x] when it holds a base64Binary.
func (e *Extension) ValueBase64Binary() (*Base64Binary, bool) {
	v, ok := e.value.(*Base64Binary)
	return v, ok
}

// ValueBoolean returns value[x] when it holds a boolean.
func (e *Extension) ValueBoolean() (*Boolean, bool) {
	v, ok := e.value.(*Boolean)
	return v, ok
}

// ValueCanonical returns value[x] when it holds a canonical.
func (e *Extension) ValueCanonical() (*Canonical, bool) {
	v, ok := e.value.(*Canonical)
	return v, ok
}

// ValueCode returns value[x] when it holds a code.
func (e *Extension) ValueCode() (*Code, bool) {
	v, ok := e.value.(*Code)
	return v, ok
}

// ValueDate returns value[x] when it holds a date.
func (e *Extension) ValueDate() (*Date, bool) {
	v, ok := e.value.(*Date)
	return v, ok
}

// ValueDateTime returns value[x] when it holds a dateTime.
func (e *Extension) ValueDateTime() (*DateTime, bool) {
	v, ok := e.value.(*DateTime)
	return v, ok
}

// ValueDecimal returns value[x] when it holds a decimal.
func (e *Extension) ValueDecimal() (*Decimal, bool) {
	v, ok := e.value.(*Decimal)
	return v, ok
}

// ValueID returns value[x] when it holds a id.
func (e *Extension) ValueID() (*ID, bool) {
	v, ok := e.value.(*ID)
	return v, ok
}

// ValueInstant returns value[x] when it holds a instant.
func (e *Extension) ValueInstant() (*Instant, bool) {
	v, ok := e.value.(*Instant)
	return v, ok
}

// ValueInteger returns value[x] when it holds a integer.
func (e *Extension) ValueInteger() (*Integer, bool) {
	v, ok := e.value.(*Integer)
	return v, ok
}

// ValueInteger64 returns value[x] when it holds a integer64.
func (e *Extension) ValueInteger64() (*Integer64, bool) {
	v, ok := e.value.(*Integer64)
	return v, ok
}

// ValueMarkdown returns value[x] when it holds a markdown.
func (e *Extension) ValueMarkdown() (*Markdown, bool) {
	v, ok := e.value.(*Markdown)
	return v, ok
}

// ValueOID returns value[x] when it holds a oid.
func (e *Extension) ValueOID() (*OID, bool) {
	v, ok := e.value.(*OID)
	return v, ok
}

// ValuePositiveInt returns value[x] when it holds a positiveInt.
func (e *Extension) ValuePositiveInt() (*PositiveInt, bool) {
	v, ok := e.value.(*PositiveInt)
	return v, ok
}

// ValueString returns value[x] when it holds a string.
func (e *Extension) ValueString() (*String, bool) {
	v, ok := e.value.(*String)
	return v, ok
}

// ValueTime returns value[x] when it holds a time.
func (e *Extension) ValueTime() (*Time, bool) {
	v, ok := e.value.(*Time)
	return v, ok
}

// ValueUnsignedInt returns value[x] when it holds a unsignedInt.
func (e *Extension) ValueUnsignedInt() (*UnsignedInt, bool) {
	v, ok := e.value.(*UnsignedInt)
	return v, ok
}

// ValueURI returns value[x] when it holds a uri.
func (e *Extension) ValueURI() (*URI, bool) {
	v, ok := e.value.(*URI)
	return v, ok
}

// ValueURL returns value[x] when it holds a url.
func (e *Extension) ValueURL() (*URL, bool) {
	v, ok := e.value.(*URL)
	return v, ok
}

// ValueUUID returns value[x] when it holds a uuid.
func (e *Extension) ValueUUID() (*UUID, bool) {
	v, ok := e.value.(*UUID)
	return v, ok
}

// ValueAnnotation returns value[x] when it holds an Annotation.
func (e *Extension) ValueAnnotation() (*Annotation, bool) {
	v, ok := e.value.(*Annotation)
	return v, ok
}

// ValueAttachment returns value[x] when it holds an Attachment.
func (e *Extension) ValueAttachment() (*Attachment, bool) {
	v, ok := e.value.(*Attachment)
	return v, ok
}

// ValueCodeableConcept returns value[x] when it holds a CodeableConcept.
func (e *Extension) ValueCodeableConcept() (*CodeableConcept, bool) {
	v, ok := e.value.(*CodeableConcept)
	return v, ok
}

// ValueCoding returns value[x] when it holds a Coding.
func (e *Extension) ValueCoding() (*Coding, bool) {
	v, ok := e.value.(*Coding)
	return v, ok
}

// ValueContactPoint returns value[x] when it holds a ContactPoint.
func (e *Extension) ValueContactPoint() (*ContactPoint, bool) {
	v, ok := e.value.(*ContactPoint)
	return v, ok
}

// ValueIdentifier returns value[x] when it holds an Identifier.
func (e *Extension) ValueIdentifier() (*Identifier, bool) {
	v, ok := e.value.(*Identifier)
	return v, ok
}

// ValuePeriod returns value[x] when it holds a Period.
func (e *Extension) ValuePeriod() (*Period, bool) {
	v, ok := e.value.(*Period)
	return v, ok
}

// ValueQuantity returns value[x] when it holds a Quantity.
func (e *Extension) ValueQuantity() (*Quantity, bool) {
	v, ok := e.value.(*Quantity)
	return v, ok
}

// ValueRange returns value[x] when it holds a Range.
func (e *Extension) ValueRange() (*Range, bool) {
	v, ok := e.value.(*Range)
	return v, ok
}

// ValueReference returns value[x] when it holds a Reference.
func (e *Extension) ValueReference() (*Reference, bool) {
	v, ok := e.value.(*Reference)
	return v, ok
}

// ValueContactDetail returns value[x] when it holds a ContactDetail.
func (e *Extension) ValueContactDetail() (*ContactDetail, bool) {
	v, ok := e.value.(*ContactDetail)
	return v, ok
}

// ValueRelatedArtifact returns value[x] when it holds a RelatedArtifact.
func (e *Extension) ValueRelatedArtifact() (*RelatedArtifact, bool) {
	v, ok := e.value.(*RelatedArtifact)
	return v, ok
}

// ValueUsageContext returns value[x] when it holds a UsageContext.
func (e *Extension) ValueUsageContext() (*UsageContext, bool) {
	v, ok := e.value.(*UsageContext)
	return v, ok
}

// ValueMeta returns value[x] when it holds a Meta.
func (e *Extension) ValueMeta() (*Meta, bool) {
	v, ok := e.value.(*Meta)
	return v, ok
}

// Fields returns the element slots in declaration order.
func (e *Extension) Fields() []model.Field {
	return []model.Field{
		model.ID(e.id),
		model.Many("extension", e.extension),
		model.Text("url", e.url),
		model.Choice("value", e.value),
	}
}

// Accept walks the record and its descendants with v.
func (e *Extension) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, e, e.Fields(), v)
}

// Equal reports whether e and other are structurally equal.
func (e *Extension) Equal(other *Extension) bool { return model.Equal(e, other) }

// Hash returns the structural hash. It is computed once.
func (e *Extension) Hash() uint64 {
	return e.hashCache.Get(func() uint64 { return model.Hash(e) })
}

// ToBuilder returns a builder staged with the values of e.
func (e *Extension) ToBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		id:        e.id,
		extension: slices.Clone(e.extension),
		url:       e.url,
		value:     e.value,
	}
}

// ExtensionBuilder stages the values of an Extension. It is not safe for concurrent use.
type ExtensionBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	url       string
	value     model.Element
}

// NewExtensionBuilder returns an empty builder.
func NewExtensionBuilder() *ExtensionBuilder { return &ExtensionBuilder{} }

// ID sets id.
func (b *ExtensionBuilder) ID(v string) *ExtensionBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *ExtensionBuilder) Extension(v ...*Extension) *ExtensionBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *ExtensionBuilder) SetExtension(v []*Extension) *ExtensionBuilder {
	if v == nil {
		b.RejectNil("Extension", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// URL sets url.
func (b *ExtensionBuilder) URL(v string) *ExtensionBuilder {
	b.url = v
	return b
}

// Value sets value[x] to any of its allowed types; Build rejects others.
func (b *ExtensionBuilder) Value(v model.Element) *ExtensionBuilder {
	b.value = model.ChoiceValue(v)
	return b
}

// ValueBase64Binary sets value[x] to a Base64Binary, clearing any other type.
func (b *ExtensionBuilder) ValueBase64Binary(v *Base64Binary) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueBase64BinaryValue sets value from a plain value.
func (b *ExtensionBuilder) ValueBase64BinaryValue(v string) *ExtensionBuilder {
	b.value = NewBase64Binary(v)
	return b
}

// ValueBoolean sets value[x] to a Boolean, clearing any other type.
func (b *ExtensionBuilder) ValueBoolean(v *Boolean) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueBooleanValue sets value from a plain value.
func (b *ExtensionBuilder) ValueBooleanValue(v bool) *ExtensionBuilder {
	b.value = NewBoolean(v)
	return b
}

// ValueCanonical sets value[x] to a Canonical, clearing any other type.
func (b *ExtensionBuilder) ValueCanonical(v *Canonical) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueCanonicalValue sets value from a plain value.
func (b *ExtensionBuilder) ValueCanonicalValue(v string) *ExtensionBuilder {
	b.value = NewCanonical(v)
	return b
}

// ValueCode sets value[x] to a Code, clearing any other type.
func (b *ExtensionBuilder) ValueCode(v *Code) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueCodeValue sets value from a plain value.
func (b *ExtensionBuilder) ValueCodeValue(v string) *ExtensionBuilder {
	b.value = NewCode(v)
	return b
}

// ValueDate sets value[x] to a Date, clearing any other type.
func (b *ExtensionBuilder) ValueDate(v *Date) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueDateValue sets value from a plain value.
func (b *ExtensionBuilder) ValueDateValue(v string) *ExtensionBuilder {
	b.value = NewDate(v)
	return b
}

// ValueDateTime sets value[x] to a DateTime, clearing any other type.
func (b *ExtensionBuilder) ValueDateTime(v *DateTime) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueDateTimeValue sets value from a plain value.
func (b *ExtensionBuilder) ValueDateTimeValue(v string) *ExtensionBuilder {
	b.value = NewDateTime(v)
	return b
}

// ValueDecimal sets value[x] to a Decimal, clearing any other type.
func (b *ExtensionBuilder) ValueDecimal(v *Decimal) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueID sets value[x] to an ID, clearing any other type.
func (b *ExtensionBuilder) ValueID(v *ID) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueIDValue sets value from a plain value.
func (b *ExtensionBuilder) ValueIDValue(v string) *ExtensionBuilder {
	b.value = NewID(v)
	return b
}

// ValueInstant sets value[x] to an Instant, clearing any other type.
func (b *ExtensionBuilder) ValueInstant(v *Instant) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueInstantValue sets value from a plain value.
func (b *ExtensionBuilder) ValueInstantValue(v string) *ExtensionBuilder {
	b.value = NewInstant(v)
	return b
}

// ValueInteger sets value[x] to an Integer, clearing any other type.
func (b *ExtensionBuilder) ValueInteger(v *Integer) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueIntegerValue sets value from a plain value.
func (b *ExtensionBuilder) ValueIntegerValue(v int32) *ExtensionBuilder {
	b.value = NewInteger(v)
	return b
}

// ValueInteger64 sets value[x] to an Integer64, clearing any other type.
func (b *ExtensionBuilder) ValueInteger64(v *Integer64) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueInteger64Value sets value from a plain value.
func (b *ExtensionBuilder) ValueInteger64Value(v int64) *ExtensionBuilder {
	b.value = NewInteger64(v)
	return b
}

// ValueMarkdown sets value[x] to a Markdown, clearing any other type.
func (b *ExtensionBuilder) ValueMarkdown(v *Markdown) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueMarkdownValue sets value from a plain value.
func (b *ExtensionBuilder) ValueMarkdownValue(v string) *ExtensionBuilder {
	b.value = NewMarkdown(v)
	return b
}

// ValueOID sets value[x] to an OID, clearing any other type.
func (b *ExtensionBuilder) ValueOID(v *OID) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueOIDValue sets value from a plain value.
func (b *ExtensionBuilder) ValueOIDValue(v string) *ExtensionBuilder {
	b.value = NewOID(v)
	return b
}

// ValuePositiveInt sets value[x] to a PositiveInt, clearing any other type.
func (b *ExtensionBuilder) ValuePositiveInt(v *PositiveInt) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValuePositiveIntValue sets value from a plain value.
func (b *ExtensionBuilder) ValuePositiveIntValue(v int32) *ExtensionBuilder {
	b.value = NewPositiveInt(v)
	return b
}

// ValueString sets value[x] to a String, clearing any other type.
func (b *ExtensionBuilder) ValueString(v *String) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueStringValue sets value from a plain value.
func (b *ExtensionBuilder) ValueStringValue(v string) *ExtensionBuilder {
	b.value = NewString(v)
	return b
}

// ValueTime sets value[x] to a Time, clearing any other type.
func (b *ExtensionBuilder) ValueTime(v *Time) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueTimeValue sets value from a plain value.
func (b *ExtensionBuilder) ValueTimeValue(v string) *ExtensionBuilder {
	b.value = NewTime(v)
	return b
}

// ValueUnsignedInt sets value[x] to a UnsignedInt, clearing any other type.
func (b *ExtensionBuilder) ValueUnsignedInt(v *UnsignedInt) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueUnsignedIntValue sets value from a plain value.
func (b *ExtensionBuilder) ValueUnsignedIntValue(v int32) *ExtensionBuilder {
	b.value = NewUnsignedInt(v)
	return b
}

// ValueURI sets value[x] to a URI, clearing any other type.
func (b *ExtensionBuilder) ValueURI(v *URI) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueURIValue sets value from a plain value.
func (b *ExtensionBuilder) ValueURIValue(v string) *ExtensionBuilder {
	b.value = NewURI(v)
	return b
}

// ValueURL sets value[x] to a URL, clearing any other type.
func (b *ExtensionBuilder) ValueURL(v *URL) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueURLValue sets value from a plain value.
func (b *ExtensionBuilder) ValueURLValue(v string) *ExtensionBuilder {
	b.value = NewURL(v)
	return b
}

// ValueUUID sets value[x] to a UUID, clearing any other type.
func (b *ExtensionBuilder) ValueUUID(v *UUID) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueUUIDValue sets value from a plain value.
func (b *ExtensionBuilder) ValueUUIDValue(v string) *ExtensionBuilder {
	b.value = NewUUID(v)
	return b
}

// ValueAnnotation sets value[x] to an Annotation, clearing any other type.
func (b *ExtensionBuilder) ValueAnnotation(v *Annotation) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueAttachment sets value[x] to an Attachment, clearing any other type.
func (b *ExtensionBuilder) ValueAttachment(v *Attachment) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueCodeableConcept sets value[x] to a CodeableConcept, clearing any other type.
func (b *ExtensionBuilder) ValueCodeableConcept(v *CodeableConcept) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueCoding sets value[x] to a Coding, clearing any other type.
func (b *ExtensionBuilder) ValueCoding(v *Coding) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueContactPoint sets value[x] to a ContactPoint, clearing any other type.
func (b *ExtensionBuilder) ValueContactPoint(v *ContactPoint) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueIdentifier sets value[x] to an Identifier, clearing any other type.
func (b *ExtensionBuilder) ValueIdentifier(v *Identifier) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValuePeriod sets value[x] to a Period, clearing any other type.
func (b *ExtensionBuilder) ValuePeriod(v *Period) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueQuantity sets value[x] to a Quantity, clearing any other type.
func (b *ExtensionBuilder) ValueQuantity(v *Quantity) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueRange sets value[x] to a Range, clearing any other type.
func (b *ExtensionBuilder) ValueRange(v *Range) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueReference sets value[x] to a Reference, clearing any other type.
func (b *ExtensionBuilder) ValueReference(v *Reference) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueContactDetail sets value[x] to a ContactDetail, clearing any other type.
func (b *ExtensionBuilder) ValueContactDetail(v *ContactDetail) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueRelatedArtifact sets value[x] to a RelatedArtifact, clearing any other type.
func (b *ExtensionBuilder) ValueRelatedArtifact(v *RelatedArtifact) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueUsageContext sets value[x] to a UsageContext, clearing any other type.
func (b *ExtensionBuilder) ValueUsageContext(v *UsageContext) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// ValueMeta sets value[x] to a Meta, clearing any other type.
func (b *ExtensionBuilder) ValueMeta(v *Meta) *ExtensionBuilder {
	b.value = nil
	if v != nil {
		b.value = v
	}
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	e := &Extension{
		id:        b.id,
		extension: slices.Clone(b.extension),
		url:       b.url,
		value:     b.value,
	}
	if err := meta.Check(e); err != nil {
		return nil, err
	}
	return e, nil
}
