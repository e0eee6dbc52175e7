package datatype

import (
	"github.com/shopspring/decimal"

	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/primitive"
)

func init() {
	for _, name := range []string{
		primitive.TypeBoolean,
		primitive.TypeInteger,
		primitive.TypeInteger64,
		primitive.TypePositiveInt,
		primitive.TypeUnsignedInt,
		primitive.TypeDecimal,
		primitive.TypeString,
		primitive.TypeMarkdown,
		primitive.TypeCode,
		primitive.TypeID,
		primitive.TypeURI,
		primitive.TypeURL,
		primitive.TypeCanonical,
		primitive.TypeUUID,
		primitive.TypeOID,
		primitive.TypeBase64Binary,
		primitive.TypeDate,
		primitive.TypeDateTime,
		primitive.TypeInstant,
		primitive.TypeTime,
		primitive.TypeXHTML,
	} {
		primitiveInfo(name)
	}
}

// Boolean is the FHIR boolean primitive.
type Boolean struct{ primitiveValue[bool] }

// NewBoolean returns a boolean holding v.
func NewBoolean(v bool, opts ...PrimitiveOption) *Boolean {
	p := &Boolean{}
	p.init(v, true, opts)
	return p
}

// AbsentBoolean returns a boolean without a value. It needs an extension to be valid.
func AbsentBoolean(opts ...PrimitiveOption) *Boolean {
	p := &Boolean{}
	var zero bool
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeBoolean.
func (p *Boolean) TypeName() string { return primitive.TypeBoolean }

// Accept walks p and its extensions with v.
func (p *Boolean) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Boolean) ValidateValue() error { return p.check(primitive.TypeBoolean) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Boolean) Equal(other *Boolean) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Boolean) Hash() uint64 { return p.hashOf(p) }

// Integer is the FHIR integer primitive, a signed 32-bit value.
type Integer struct{ primitiveValue[int32] }

// NewInteger returns an integer holding v.
func NewInteger(v int32, opts ...PrimitiveOption) *Integer {
	p := &Integer{}
	p.init(v, true, opts)
	return p
}

// AbsentInteger returns an integer without a value. It needs an extension to be valid.
func AbsentInteger(opts ...PrimitiveOption) *Integer {
	p := &Integer{}
	var zero int32
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeInteger.
func (p *Integer) TypeName() string { return primitive.TypeInteger }

// Accept walks p and its extensions with v.
func (p *Integer) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Integer) ValidateValue() error { return p.check(primitive.TypeInteger) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Integer) Equal(other *Integer) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Integer) Hash() uint64 { return p.hashOf(p) }

// Integer64 is the FHIR integer64 primitive.
type Integer64 struct{ primitiveValue[int64] }

// NewInteger64 returns an integer64 holding v.
func NewInteger64(v int64, opts ...PrimitiveOption) *Integer64 {
	p := &Integer64{}
	p.init(v, true, opts)
	return p
}

// AbsentInteger64 returns an integer64 without a value. It needs an extension to be valid.
func AbsentInteger64(opts ...PrimitiveOption) *Integer64 {
	p := &Integer64{}
	var zero int64
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeInteger64.
func (p *Integer64) TypeName() string { return primitive.TypeInteger64 }

// Accept walks p and its extensions with v.
func (p *Integer64) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Integer64) ValidateValue() error { return p.check(primitive.TypeInteger64) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Integer64) Equal(other *Integer64) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Integer64) Hash() uint64 { return p.hashOf(p) }

// PositiveInt is the FHIR positiveInt primitive, an integer of at least 1.
type PositiveInt struct{ primitiveValue[int32] }

// NewPositiveInt returns a positiveInt holding v.
func NewPositiveInt(v int32, opts ...PrimitiveOption) *PositiveInt {
	p := &PositiveInt{}
	p.init(v, true, opts)
	return p
}

// AbsentPositiveInt returns a positiveInt without a value. It needs an extension to be valid.
func AbsentPositiveInt(opts ...PrimitiveOption) *PositiveInt {
	p := &PositiveInt{}
	var zero int32
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypePositiveInt.
func (p *PositiveInt) TypeName() string { return primitive.TypePositiveInt }

// Accept walks p and its extensions with v.
func (p *PositiveInt) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *PositiveInt) ValidateValue() error { return p.check(primitive.TypePositiveInt) }

// Equal reports whether p and other hold the same value and extensions.
func (p *PositiveInt) Equal(other *PositiveInt) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *PositiveInt) Hash() uint64 { return p.hashOf(p) }

// UnsignedInt is the FHIR unsignedInt primitive, a non-negative integer.
type UnsignedInt struct{ primitiveValue[int32] }

// NewUnsignedInt returns an unsignedInt holding v.
func NewUnsignedInt(v int32, opts ...PrimitiveOption) *UnsignedInt {
	p := &UnsignedInt{}
	p.init(v, true, opts)
	return p
}

// AbsentUnsignedInt returns an unsignedInt without a value. It needs an extension to be valid.
func AbsentUnsignedInt(opts ...PrimitiveOption) *UnsignedInt {
	p := &UnsignedInt{}
	var zero int32
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeUnsignedInt.
func (p *UnsignedInt) TypeName() string { return primitive.TypeUnsignedInt }

// Accept walks p and its extensions with v.
func (p *UnsignedInt) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *UnsignedInt) ValidateValue() error { return p.check(primitive.TypeUnsignedInt) }

// Equal reports whether p and other hold the same value and extensions.
func (p *UnsignedInt) Equal(other *UnsignedInt) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *UnsignedInt) Hash() uint64 { return p.hashOf(p) }

// Decimal is the FHIR decimal primitive. Values keep the precision they were written with.
type Decimal struct{ primitiveValue[decimal.Decimal] }

// NewDecimal returns a decimal holding v.
func NewDecimal(v decimal.Decimal, opts ...PrimitiveOption) *Decimal {
	p := &Decimal{}
	p.init(v, true, opts)
	return p
}

// AbsentDecimal returns a decimal without a value. It needs an extension to be valid.
func AbsentDecimal(opts ...PrimitiveOption) *Decimal {
	p := &Decimal{}
	var zero decimal.Decimal
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeDecimal.
func (p *Decimal) TypeName() string { return primitive.TypeDecimal }

// Accept walks p and its extensions with v.
func (p *Decimal) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Decimal) ValidateValue() error { return p.check(primitive.TypeDecimal) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Decimal) Equal(other *Decimal) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Decimal) Hash() uint64 { return p.hashOf(p) }

// String is the FHIR string primitive.
type String struct{ primitiveValue[string] }

// NewString returns a string holding v.
func NewString(v string, opts ...PrimitiveOption) *String {
	p := &String{}
	p.init(v, true, opts)
	return p
}

// AbsentString returns a string without a value. It needs an extension to be valid.
func AbsentString(opts ...PrimitiveOption) *String {
	p := &String{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeString.
func (p *String) TypeName() string { return primitive.TypeString }

// Accept walks p and its extensions with v.
func (p *String) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *String) ValidateValue() error { return p.check(primitive.TypeString) }

// Equal reports whether p and other hold the same value and extensions.
func (p *String) Equal(other *String) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *String) Hash() uint64 { return p.hashOf(p) }

// Markdown is the FHIR markdown primitive: a string that may contain markdown syntax.
type Markdown struct{ primitiveValue[string] }

// NewMarkdown returns a markdown holding v.
func NewMarkdown(v string, opts ...PrimitiveOption) *Markdown {
	p := &Markdown{}
	p.init(v, true, opts)
	return p
}

// AbsentMarkdown returns a markdown without a value. It needs an extension to be valid.
func AbsentMarkdown(opts ...PrimitiveOption) *Markdown {
	p := &Markdown{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeMarkdown.
func (p *Markdown) TypeName() string { return primitive.TypeMarkdown }

// Accept walks p and its extensions with v.
func (p *Markdown) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Markdown) ValidateValue() error { return p.check(primitive.TypeMarkdown) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Markdown) Equal(other *Markdown) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Markdown) Hash() uint64 { return p.hashOf(p) }

// Code is the FHIR code primitive: a token from a controlled set.
type Code struct{ primitiveValue[string] }

// NewCode returns a code holding v.
func NewCode(v string, opts ...PrimitiveOption) *Code {
	p := &Code{}
	p.init(v, true, opts)
	return p
}

// AbsentCode returns a code without a value. It needs an extension to be valid.
func AbsentCode(opts ...PrimitiveOption) *Code {
	p := &Code{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeCode.
func (p *Code) TypeName() string { return primitive.TypeCode }

// Accept walks p and its extensions with v.
func (p *Code) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Code) ValidateValue() error { return p.check(primitive.TypeCode) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Code) Equal(other *Code) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Code) Hash() uint64 { return p.hashOf(p) }

// ID is the FHIR id primitive: up to 64 letters, digits, dashes and dots.
type ID struct{ primitiveValue[string] }

// NewID returns an id holding v.
func NewID(v string, opts ...PrimitiveOption) *ID {
	p := &ID{}
	p.init(v, true, opts)
	return p
}

// AbsentID returns an id without a value. It needs an extension to be valid.
func AbsentID(opts ...PrimitiveOption) *ID {
	p := &ID{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeID.
func (p *ID) TypeName() string { return primitive.TypeID }

// Accept walks p and its extensions with v.
func (p *ID) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *ID) ValidateValue() error { return p.check(primitive.TypeID) }

// Equal reports whether p and other hold the same value and extensions.
func (p *ID) Equal(other *ID) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *ID) Hash() uint64 { return p.hashOf(p) }

// URI is the FHIR uri primitive.
type URI struct{ primitiveValue[string] }

// NewURI returns an uri holding v.
func NewURI(v string, opts ...PrimitiveOption) *URI {
	p := &URI{}
	p.init(v, true, opts)
	return p
}

// AbsentURI returns an uri without a value. It needs an extension to be valid.
func AbsentURI(opts ...PrimitiveOption) *URI {
	p := &URI{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeURI.
func (p *URI) TypeName() string { return primitive.TypeURI }

// Accept walks p and its extensions with v.
func (p *URI) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *URI) ValidateValue() error { return p.check(primitive.TypeURI) }

// Equal reports whether p and other hold the same value and extensions.
func (p *URI) Equal(other *URI) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *URI) Hash() uint64 { return p.hashOf(p) }

// URL is the FHIR url primitive, an absolute URL.
type URL struct{ primitiveValue[string] }

// NewURL returns an url holding v.
func NewURL(v string, opts ...PrimitiveOption) *URL {
	p := &URL{}
	p.init(v, true, opts)
	return p
}

// AbsentURL returns an url without a value. It needs an extension to be valid.
func AbsentURL(opts ...PrimitiveOption) *URL {
	p := &URL{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeURL.
func (p *URL) TypeName() string { return primitive.TypeURL }

// Accept walks p and its extensions with v.
func (p *URL) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *URL) ValidateValue() error { return p.check(primitive.TypeURL) }

// Equal reports whether p and other hold the same value and extensions.
func (p *URL) Equal(other *URL) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *URL) Hash() uint64 { return p.hashOf(p) }

// Canonical is the FHIR canonical primitive: a URI with an optional |version suffix.
type Canonical struct{ primitiveValue[string] }

// NewCanonical returns a canonical holding v.
func NewCanonical(v string, opts ...PrimitiveOption) *Canonical {
	p := &Canonical{}
	p.init(v, true, opts)
	return p
}

// AbsentCanonical returns a canonical without a value. It needs an extension to be valid.
func AbsentCanonical(opts ...PrimitiveOption) *Canonical {
	p := &Canonical{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeCanonical.
func (p *Canonical) TypeName() string { return primitive.TypeCanonical }

// Accept walks p and its extensions with v.
func (p *Canonical) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Canonical) ValidateValue() error { return p.check(primitive.TypeCanonical) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Canonical) Equal(other *Canonical) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Canonical) Hash() uint64 { return p.hashOf(p) }

// UUID is the FHIR uuid primitive, written as urn:uuid:....
type UUID struct{ primitiveValue[string] }

// NewUUID returns a uuid holding v.
func NewUUID(v string, opts ...PrimitiveOption) *UUID {
	p := &UUID{}
	p.init(v, true, opts)
	return p
}

// AbsentUUID returns a uuid without a value. It needs an extension to be valid.
func AbsentUUID(opts ...PrimitiveOption) *UUID {
	p := &UUID{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeUUID.
func (p *UUID) TypeName() string { return primitive.TypeUUID }

// Accept walks p and its extensions with v.
func (p *UUID) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *UUID) ValidateValue() error { return p.check(primitive.TypeUUID) }

// Equal reports whether p and other hold the same value and extensions.
func (p *UUID) Equal(other *UUID) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *UUID) Hash() uint64 { return p.hashOf(p) }

// OID is the FHIR oid primitive, written as urn:oid:....
type OID struct{ primitiveValue[string] }

// NewOID returns an oid holding v.
func NewOID(v string, opts ...PrimitiveOption) *OID {
	p := &OID{}
	p.init(v, true, opts)
	return p
}

// AbsentOID returns an oid without a value. It needs an extension to be valid.
func AbsentOID(opts ...PrimitiveOption) *OID {
	p := &OID{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeOID.
func (p *OID) TypeName() string { return primitive.TypeOID }

// Accept walks p and its extensions with v.
func (p *OID) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *OID) ValidateValue() error { return p.check(primitive.TypeOID) }

// Equal reports whether p and other hold the same value and extensions.
func (p *OID) Equal(other *OID) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *OID) Hash() uint64 { return p.hashOf(p) }

// Base64Binary is the FHIR base64Binary primitive, holding base64 text.
type Base64Binary struct{ primitiveValue[string] }

// NewBase64Binary returns a base64Binary holding v.
func NewBase64Binary(v string, opts ...PrimitiveOption) *Base64Binary {
	p := &Base64Binary{}
	p.init(v, true, opts)
	return p
}

// AbsentBase64Binary returns a base64Binary without a value. It needs an extension to be valid.
func AbsentBase64Binary(opts ...PrimitiveOption) *Base64Binary {
	p := &Base64Binary{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeBase64Binary.
func (p *Base64Binary) TypeName() string { return primitive.TypeBase64Binary }

// Accept walks p and its extensions with v.
func (p *Base64Binary) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Base64Binary) ValidateValue() error { return p.check(primitive.TypeBase64Binary) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Base64Binary) Equal(other *Base64Binary) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Base64Binary) Hash() uint64 { return p.hashOf(p) }

// Date is the FHIR date primitive (YYYY, YYYY-MM or YYYY-MM-DD).
type Date struct{ primitiveValue[string] }

// NewDate returns a date holding v.
func NewDate(v string, opts ...PrimitiveOption) *Date {
	p := &Date{}
	p.init(v, true, opts)
	return p
}

// AbsentDate returns a date without a value. It needs an extension to be valid.
func AbsentDate(opts ...PrimitiveOption) *Date {
	p := &Date{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeDate.
func (p *Date) TypeName() string { return primitive.TypeDate }

// Accept walks p and its extensions with v.
func (p *Date) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Date) ValidateValue() error { return p.check(primitive.TypeDate) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Date) Equal(other *Date) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Date) Hash() uint64 { return p.hashOf(p) }

// DateTime is the FHIR dateTime primitive. Partial dates are allowed.
type DateTime struct{ primitiveValue[string] }

// NewDateTime returns a dateTime holding v.
func NewDateTime(v string, opts ...PrimitiveOption) *DateTime {
	p := &DateTime{}
	p.init(v, true, opts)
	return p
}

// AbsentDateTime returns a dateTime without a value. It needs an extension to be valid.
func AbsentDateTime(opts ...PrimitiveOption) *DateTime {
	p := &DateTime{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeDateTime.
func (p *DateTime) TypeName() string { return primitive.TypeDateTime }

// Accept walks p and its extensions with v.
func (p *DateTime) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *DateTime) ValidateValue() error { return p.check(primitive.TypeDateTime) }

// Equal reports whether p and other hold the same value and extensions.
func (p *DateTime) Equal(other *DateTime) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *DateTime) Hash() uint64 { return p.hashOf(p) }

// Instant is the FHIR instant primitive: a full timestamp with zone.
type Instant struct{ primitiveValue[string] }

// NewInstant returns an instant holding v.
func NewInstant(v string, opts ...PrimitiveOption) *Instant {
	p := &Instant{}
	p.init(v, true, opts)
	return p
}

// AbsentInstant returns an instant without a value. It needs an extension to be valid.
func AbsentInstant(opts ...PrimitiveOption) *Instant {
	p := &Instant{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeInstant.
func (p *Instant) TypeName() string { return primitive.TypeInstant }

// Accept walks p and its extensions with v.
func (p *Instant) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Instant) ValidateValue() error { return p.check(primitive.TypeInstant) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Instant) Equal(other *Instant) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Instant) Hash() uint64 { return p.hashOf(p) }

// Time is the FHIR time primitive (hh:mm:ss).
type Time struct{ primitiveValue[string] }

// NewTime returns a time holding v.
func NewTime(v string, opts ...PrimitiveOption) *Time {
	p := &Time{}
	p.init(v, true, opts)
	return p
}

// AbsentTime returns a time without a value. It needs an extension to be valid.
func AbsentTime(opts ...PrimitiveOption) *Time {
	p := &Time{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeTime.
func (p *Time) TypeName() string { return primitive.TypeTime }

// Accept walks p and its extensions with v.
func (p *Time) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *Time) ValidateValue() error { return p.check(primitive.TypeTime) }

// Equal reports whether p and other hold the same value and extensions.
func (p *Time) Equal(other *Time) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *Time) Hash() uint64 { return p.hashOf(p) }

// XHTML is the FHIR xhtml primitive holding a narrative div.
type XHTML struct{ primitiveValue[string] }

// NewXHTML returns an xhtml holding v.
func NewXHTML(v string, opts ...PrimitiveOption) *XHTML {
	p := &XHTML{}
	p.init(v, true, opts)
	return p
}

// AbsentXHTML returns an xhtml without a value. It needs an extension to be valid.
func AbsentXHTML(opts ...PrimitiveOption) *XHTML {
	p := &XHTML{}
	var zero string
	p.init(zero, false, opts)
	return p
}

// TypeName returns TypeXHTML.
func (p *XHTML) TypeName() string { return primitive.TypeXHTML }

// Accept walks p and its extensions with v.
func (p *XHTML) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// ValidateValue checks the lexical form of the value.
func (p *XHTML) ValidateValue() error { return p.check(primitive.TypeXHTML) }

// Equal reports whether p and other hold the same value and extensions.
func (p *XHTML) Equal(other *XHTML) bool { return model.Equal(p, other) }

// Hash returns the cached structural hash.
func (p *XHTML) Hash() uint64 { return p.hashOf(p) }
