package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Attachment",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "contentType", Max: "1", Types: []string{"code"}, Binding: MimeTypesBinding, Summary: true},
			{Name: "language", Max: "1", Types: []string{"code"}, Binding: LanguagesBinding, Summary: true},
			{Name: "data", Max: "1", Types: []string{"base64Binary"}},
			{Name: "url", Max: "1", Types: []string{"url"}, Summary: true},
			{Name: "size", Max: "1", Types: []string{"integer64"}, Summary: true},
			{Name: "hash", Max: "1", Types: []string{"base64Binary"}, Summary: true},
			{Name: "title", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "creation", Max: "1", Types: []string{"dateTime"}, Summary: true},
			{Name: "height", Max: "1", Types: []string{"positiveInt"}},
			{Name: "width", Max: "1", Types: []string{"positiveInt"}},
			{Name: "frames", Max: "1", Types: []string{"positiveInt"}},
			{Name: "duration", Max: "1", Types: []string{"decimal"}},
			{Name: "pages", Max: "1", Types: []string{"positiveInt"}},
		},
		Constraints: []meta.Constraint{
			{Key: "att-1", Severity: issue.SeverityError, Human: "If the Attachment has data, it SHALL have a contentType", Expression: "data.empty() or contentType.exists()"},
		},
	})
}

// Attachment is content in a format defined elsewhere, either inline or by URL.
type Attachment struct {
	id          string
	extension   []*Extension
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *URL
	size        *Integer64
	hash        *Base64Binary
	title       *String
	creation    *DateTime
	height      *PositiveInt
	width       *PositiveInt
	frames      *PositiveInt
	duration    *Decimal
	pages       *PositiveInt

	hashCache model.HashCache
}

// TypeName returns "Attachment".
func (a *Attachment) TypeName() string { return "Attachment" }

// ID returns id.
func (a *Attachment) ID() string { return a.id }

// Extension returns a copy of extension.
func (a *Attachment) Extension() []*Extension { return slices.Clone(a.extension) }

// ContentType returns contentType.
func (a *Attachment) ContentType() *Code { return a.contentType }

// Language returns language.
func (a *Attachment) Language() *Code { return a.language }

// Data returns data.
func (a *Attachment) Data() *Base64Binary { return a.data }

// URL returns url.
func (a *Attachment) URL() *URL { return a.url }

// Size returns size.
func (a *Attachment) Size() *Integer64 { return a.size }

// ContentHash returns hash.
func (a *Attachment) ContentHash() *Base64Binary { return a.hash }

// Title returns title.
func (a *Attachment) Title() *String { return a.title }

// Creation returns creation.
func (a *Attachment) Creation() *DateTime { return a.creation }

// Height returns height.
func (a *Attachment) Height() *PositiveInt { return a.height }

// Width returns width.
func (a *Attachment) Width() *PositiveInt { return a.width }

// Frames returns frames.
func (a *Attachment) Frames() *PositiveInt { return a.frames }

// Duration returns duration.
func (a *Attachment) Duration() *Decimal { return a.duration }

// Pages returns pages.
func (a *Attachment) Pages() *PositiveInt { return a.pages }

// Fields returns the element slots in declaration order.
func (a *Attachment) Fields() []model.Field {
	return []model.Field{
		model.ID(a.id),
		model.Many("extension", a.extension),
		model.One("contentType", a.contentType),
		model.One("language", a.language),
		model.One("data", a.data),
		model.One("url", a.url),
		model.One("size", a.size),
		model.One("hash", a.hash),
		model.One("title", a.title),
		model.One("creation", a.creation),
		model.One("height", a.height),
		model.One("width", a.width),
		model.One("frames", a.frames),
		model.One("duration", a.duration),
		model.One("pages", a.pages),
	}
}

// Accept walks the record and its descendants with v.
func (a *Attachment) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, a, a.Fields(), v)
}

// Equal reports whether a and other are structurally equal.
func (a *Attachment) Equal(other *Attachment) bool { return model.Equal(a, other) }

// Hash returns the structural hash. It is computed once.
func (a *Attachment) Hash() uint64 {
	return a.hashCache.Get(func() uint64 { return model.Hash(a) })
}

// ToBuilder returns a builder staged with the values of a.
func (a *Attachment) ToBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{
		id:          a.id,
		extension:   slices.Clone(a.extension),
		contentType: a.contentType,
		language:    a.language,
		data:        a.data,
		url:         a.url,
		size:        a.size,
		hash:        a.hash,
		title:       a.title,
		creation:    a.creation,
		height:      a.height,
		width:       a.width,
		frames:      a.frames,
		duration:    a.duration,
		pages:       a.pages,
	}
}

// AttachmentBuilder stages the values of an Attachment. It is not safe for concurrent use.
type AttachmentBuilder struct {
	model.Staging

	id          string
	extension   []*Extension
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *URL
	size        *Integer64
	hash        *Base64Binary
	title       *String
	creation    *DateTime
	height      *PositiveInt
	width       *PositiveInt
	frames      *PositiveInt
	duration    *Decimal
	pages       *PositiveInt
}

// NewAttachmentBuilder returns an empty builder.
func NewAttachmentBuilder() *AttachmentBuilder { return &AttachmentBuilder{} }

// ID sets id.
func (b *AttachmentBuilder) ID(v string) *AttachmentBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *AttachmentBuilder) Extension(v ...*Extension) *AttachmentBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *AttachmentBuilder) SetExtension(v []*Extension) *AttachmentBuilder {
	if v == nil {
		b.RejectNil("Attachment", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ContentType sets contentType.
func (b *AttachmentBuilder) ContentType(v *Code) *AttachmentBuilder {
	b.contentType = v
	return b
}

// ContentTypeValue sets contentType from a plain value.
func (b *AttachmentBuilder) ContentTypeValue(v string) *AttachmentBuilder {
	b.contentType = NewCode(v)
	return b
}

// Language sets language.
func (b *AttachmentBuilder) Language(v *Code) *AttachmentBuilder {
	b.language = v
	return b
}

// LanguageValue sets language from a plain value.
func (b *AttachmentBuilder) LanguageValue(v string) *AttachmentBuilder {
	b.language = NewCode(v)
	return b
}

// Data sets data.
func (b *AttachmentBuilder) Data(v *Base64Binary) *AttachmentBuilder {
	b.data = v
	return b
}

// DataValue sets data from a plain value.
func (b *AttachmentBuilder) DataValue(v string) *AttachmentBuilder {
	b.data = NewBase64Binary(v)
	return b
}

// URL sets url.
func (b *AttachmentBuilder) URL(v *URL) *AttachmentBuilder {
	b.url = v
	return b
}

// URLValue sets url from a plain value.
func (b *AttachmentBuilder) URLValue(v string) *AttachmentBuilder {
	b.url = NewURL(v)
	return b
}

// Size sets size.
func (b *AttachmentBuilder) Size(v *Integer64) *AttachmentBuilder {
	b.size = v
	return b
}

// SizeValue sets size from a plain value.
func (b *AttachmentBuilder) SizeValue(v int64) *AttachmentBuilder {
	b.size = NewInteger64(v)
	return b
}

// ContentHash sets hash.
func (b *AttachmentBuilder) ContentHash(v *Base64Binary) *AttachmentBuilder {
	b.hash = v
	return b
}

// ContentHashValue sets hash from a plain value.
func (b *AttachmentBuilder) ContentHashValue(v string) *AttachmentBuilder {
	b.hash = NewBase64Binary(v)
	return b
}

// Title sets title.
func (b *AttachmentBuilder) Title(v *String) *AttachmentBuilder {
	b.title = v
	return b
}

// TitleValue sets title from a plain value.
func (b *AttachmentBuilder) TitleValue(v string) *AttachmentBuilder {
	b.title = NewString(v)
	return b
}

// Creation sets creation.
func (b *AttachmentBuilder) Creation(v *DateTime) *AttachmentBuilder {
	b.creation = v
	return b
}

// CreationValue sets creation from a plain value.
func (b *AttachmentBuilder) CreationValue(v string) *AttachmentBuilder {
	b.creation = NewDateTime(v)
	return b
}

// Height sets height.
func (b *AttachmentBuilder) Height(v *PositiveInt) *AttachmentBuilder {
	b.height = v
	return b
}

// HeightValue sets height from a plain value.
func (b *AttachmentBuilder) HeightValue(v int32) *AttachmentBuilder {
	b.height = NewPositiveInt(v)
	return b
}

// Width sets width.
func (b *AttachmentBuilder) Width(v *PositiveInt) *AttachmentBuilder {
	b.width = v
	return b
}

// WidthValue sets width from a plain value.
func (b *AttachmentBuilder) WidthValue(v int32) *AttachmentBuilder {
	b.width = NewPositiveInt(v)
	return b
}

// Frames sets frames.
func (b *AttachmentBuilder) Frames(v *PositiveInt) *AttachmentBuilder {
	b.frames = v
	return b
}

// FramesValue sets frames from a plain value.
func (b *AttachmentBuilder) FramesValue(v int32) *AttachmentBuilder {
	b.frames = NewPositiveInt(v)
	return b
}

// Duration sets duration.
func (b *AttachmentBuilder) Duration(v *Decimal) *AttachmentBuilder {
	b.duration = v
	return b
}

// Pages sets pages.
func (b *AttachmentBuilder) Pages(v *PositiveInt) *AttachmentBuilder {
	b.pages = v
	return b
}

// PagesValue sets pages from a plain value.
func (b *AttachmentBuilder) PagesValue(v int32) *AttachmentBuilder {
	b.pages = NewPositiveInt(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	a := &Attachment{
		id:          b.id,
		extension:   slices.Clone(b.extension),
		contentType: b.contentType,
		language:    b.language,
		data:        b.data,
		url:         b.url,
		size:        b.size,
		hash:        b.hash,
		title:       b.title,
		creation:    b.creation,
		height:      b.height,
		width:       b.width,
		frames:      b.frames,
		duration:    b.duration,
		pages:       b.pages,
	}
	if err := meta.Check(a); err != nil {
		return nil, err
	}
	return a, nil
}
