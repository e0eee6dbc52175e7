package datatype

import (
	"encoding/base64"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/primitive"
)

// PrimitiveOption sets the element id or extensions of a primitive.
type PrimitiveOption func(*primitiveElement)

// WithID sets the element id.
func WithID(id string) PrimitiveOption {
	return func(p *primitiveElement) { p.id = id }
}

// WithExtension appends extensions.
func WithExtension(ext ...*Extension) PrimitiveOption {
	return func(p *primitiveElement) { p.extension = append(p.extension, ext...) }
}

// primitiveElement carries what every primitive has besides its value.
type primitiveElement struct {
	id        string
	extension []*Extension
	hash      model.HashCache
}

// ID returns the element id.
func (p *primitiveElement) ID() string { return p.id }

// Extension returns a copy of the extensions.
func (p *primitiveElement) Extension() []*Extension { return slices.Clone(p.extension) }

func (p *primitiveElement) apply(opts []PrimitiveOption) {
	for _, opt := range opts {
		opt(p)
	}
	p.extension = slices.Clone(p.extension)
}

// primitiveValue is the shared state of a primitive whose value has Go
// type T. The value may be absent when the element only carries
// extensions.
type primitiveValue[T any] struct {
	primitiveElement
	value T
	has   bool
}

func (p *primitiveValue[T]) init(v T, has bool, opts []PrimitiveOption) {
	p.value = v
	p.has = has
	p.apply(opts)
}

// Value returns the value, or the zero value when absent.
func (p *primitiveValue[T]) Value() T { return p.value }

// HasValue reports whether a value is present.
func (p *primitiveValue[T]) HasValue() bool { return p.has }

// PrimitiveValue returns the value as any.
func (p *primitiveValue[T]) PrimitiveValue() (any, bool) { return p.value, p.has }

// Fields returns the id, extension and value slots.
func (p *primitiveValue[T]) Fields() []model.Field {
	fields := []model.Field{
		model.ID(p.id),
		model.Many("extension", p.extension),
	}
	if p.has {
		fields = append(fields, model.Value("value", p.value))
	}
	return fields
}

// check validates the value against the lexical rules of typeName.
func (p *primitiveValue[T]) check(typeName string) error {
	if !p.has {
		return nil
	}
	switch v := any(p.value).(type) {
	case string:
		return primitive.Check(typeName, v)
	case int32:
		return primitive.CheckInteger(typeName, int64(v))
	case int64:
		return primitive.CheckInteger(typeName, v)
	}
	return nil
}

func (p *primitiveValue[T]) hashOf(e model.Element) uint64 {
	return p.hash.Get(func() uint64 { return model.Hash(e) })
}

// primitiveInfo registers the metadata table of a primitive type.
func primitiveInfo(name string) *meta.TypeInfo {
	return meta.MustRegister(&meta.TypeInfo{
		Name: name,
		Kind: meta.KindPrimitive,
		Base: "PrimitiveType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{primitive.TypeString}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "value", Max: "1", Types: []string{name}},
		},
	})
}

// decimalText renders d keeping the precision it was created with.
func decimalText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Fields returns the primitive slots. The value is a model.Number so that
// equality and serialization keep the written precision.
func (p *Decimal) Fields() []model.Field {
	fields := p.primitiveValue.Fields()
	if p.has {
		fields[len(fields)-1] = model.Value("value", model.Number(decimalText(p.value)))
	}
	return fields
}

// Text returns the decimal as written, or "" when absent.
func (p *Decimal) Text() string {
	if !p.has {
		return ""
	}
	return decimalText(p.value)
}

// ParseDecimal parses a FHIR decimal literal, keeping its precision.
func ParseDecimal(s string, opts ...PrimitiveOption) (*Decimal, error) {
	if err := primitive.Check(primitive.TypeDecimal, s); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return NewDecimal(d, opts...), nil
}

// NewDateFromTime returns the calendar date of t.
func NewDateFromTime(t time.Time, opts ...PrimitiveOption) *Date {
	return NewDate(t.Format(time.DateOnly), opts...)
}

// NewDateTimeFromTime returns t as a dateTime with its zone offset.
func NewDateTimeFromTime(t time.Time, opts ...PrimitiveOption) *DateTime {
	return NewDateTime(t.Format(time.RFC3339Nano), opts...)
}

// NewInstantFromTime returns t as an instant.
func NewInstantFromTime(t time.Time, opts ...PrimitiveOption) *Instant {
	return NewInstant(t.Format(time.RFC3339Nano), opts...)
}

// partialLayouts are tried in order when converting dates to time.Time.
var partialLayouts = []string{time.RFC3339Nano, time.DateOnly, "2006-01", "2006"}

func parsePartial(s string) (time.Time, error) {
	for _, layout := range partialLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: unsupported layout", s)
}

// Time converts the date to the start of the period it names, in UTC.
func (p *Date) Time() (time.Time, error) { return parsePartial(p.value) }

// Time converts the dateTime to a time.Time. Partial dates resolve to the
// start of the period they name, in UTC.
func (p *DateTime) Time() (time.Time, error) { return parsePartial(p.value) }

// Time converts the instant to a time.Time.
func (p *Instant) Time() (time.Time, error) { return time.Parse(time.RFC3339Nano, p.value) }

// NewBase64BinaryFromBytes encodes b.
func NewBase64BinaryFromBytes(b []byte, opts ...PrimitiveOption) *Base64Binary {
	return NewBase64Binary(base64.StdEncoding.EncodeToString(b), opts...)
}

// Bytes decodes the value.
func (p *Base64Binary) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.value)
}

// NewRandomUUID returns a uuid holding a fresh random (version 4) UUID.
func NewRandomUUID(opts ...PrimitiveOption) *UUID {
	return NewUUID("urn:uuid:"+uuid.NewString(), opts...)
}
