package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Quantity",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "value", Max: "1", Types: []string{"decimal"}, Summary: true},
			{Name: "comparator", Max: "1", Types: []string{"code"}, Binding: QuantityComparatorBinding, Summary: true, Modifier: true},
			{Name: "unit", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "system", Max: "1", Types: []string{"uri"}, Summary: true},
			{Name: "code", Max: "1", Types: []string{"code"}, Summary: true},
		},
		Constraints: []meta.Constraint{
			{Key: "qty-3", Severity: issue.SeverityError, Human: "If a code for the unit is present, the system SHALL also be present", Expression: "code.empty() or system.exists()"},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "Range",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "low", Max: "1", Types: []string{"Quantity"}, Summary: true},
			{Name: "high", Max: "1", Types: []string{"Quantity"}, Summary: true},
		},
	})
}

// Quantity is a measured amount with optional units.
type Quantity struct {
	id         string
	extension  []*Extension
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code

	hashCache model.HashCache
}

// TypeName returns "Quantity".
func (q *Quantity) TypeName() string { return "Quantity" }

// ID returns id.
func (q *Quantity) ID() string { return q.id }

// Extension returns a copy of extension.
func (q *Quantity) Extension() []*Extension { return slices.Clone(q.extension) }

// Value returns value.
func (q *Quantity) Value() *Decimal { return q.value }

// Comparator returns comparator.
func (q *Quantity) Comparator() *Code { return q.comparator }

// Unit returns unit.
func (q *Quantity) Unit() *String { return q.unit }

// System returns system.
func (q *Quantity) System() *URI { return q.system }

// Code returns code.
func (q *Quantity) Code() *Code { return q.code }

// Fields returns the element slots in declaration order.
func (q *Quantity) Fields() []model.Field {
	return []model.Field{
		model.ID(q.id),
		model.Many("extension", q.extension),
		model.One("value", q.value),
		model.One("comparator", q.comparator),
		model.One("unit", q.unit),
		model.One("system", q.system),
		model.One("code", q.code),
	}
}

// Accept walks the record and its descendants with v.
func (q *Quantity) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, q, q.Fields(), v)
}

// Equal reports whether q and other are structurally equal.
func (q *Quantity) Equal(other *Quantity) bool { return model.Equal(q, other) }

// Hash returns the structural hash. It is computed once.
func (q *Quantity) Hash() uint64 {
	return q.hashCache.Get(func() uint64 { return model.Hash(q) })
}

// ToBuilder returns a builder staged with the values of q.
func (q *Quantity) ToBuilder() *QuantityBuilder {
	return &QuantityBuilder{
		id:         q.id,
		extension:  slices.Clone(q.extension),
		value:      q.value,
		comparator: q.comparator,
		unit:       q.unit,
		system:     q.system,
		code:       q.code,
	}
}

// QuantityBuilder stages the values of a Quantity. It is not safe for concurrent use.
type QuantityBuilder struct {
	model.Staging

	id         string
	extension  []*Extension
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
}

// NewQuantityBuilder returns an empty builder.
func NewQuantityBuilder() *QuantityBuilder { return &QuantityBuilder{} }

// ID sets id.
func (b *QuantityBuilder) ID(v string) *QuantityBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *QuantityBuilder) Extension(v ...*Extension) *QuantityBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *QuantityBuilder) SetExtension(v []*Extension) *QuantityBuilder {
	if v == nil {
		b.RejectNil("Quantity", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Value sets value.
func (b *QuantityBuilder) Value(v *Decimal) *QuantityBuilder {
	b.value = v
	return b
}

// Comparator sets comparator.
func (b *QuantityBuilder) Comparator(v *Code) *QuantityBuilder {
	b.comparator = v
	return b
}

// ComparatorValue sets comparator from a plain value.
func (b *QuantityBuilder) ComparatorValue(v string) *QuantityBuilder {
	b.comparator = NewCode(v)
	return b
}

// Unit sets unit.
func (b *QuantityBuilder) Unit(v *String) *QuantityBuilder {
	b.unit = v
	return b
}

// UnitValue sets unit from a plain value.
func (b *QuantityBuilder) UnitValue(v string) *QuantityBuilder {
	b.unit = NewString(v)
	return b
}

// System sets system.
func (b *QuantityBuilder) System(v *URI) *QuantityBuilder {
	b.system = v
	return b
}

// SystemValue sets system from a plain value.
func (b *QuantityBuilder) SystemValue(v string) *QuantityBuilder {
	b.system = NewURI(v)
	return b
}

// Code sets code.
func (b *QuantityBuilder) Code(v *Code) *QuantityBuilder {
	b.code = v
	return b
}

// CodeValue sets code from a plain value.
func (b *QuantityBuilder) CodeValue(v string) *QuantityBuilder {
	b.code = NewCode(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	q := &Quantity{
		id:         b.id,
		extension:  slices.Clone(b.extension),
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	}
	if err := meta.Check(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Range is a set of ordered quantities defined by a low and high limit.
type Range struct {
	id        string
	extension []*Extension
	low       *Quantity
	high      *Quantity

	hashCache model.HashCache
}

// TypeName returns "Range".
func (r *Range) TypeName() string { return "Range" }

// ID returns id.
func (r *Range) ID() string { return r.id }

// Extension returns a copy of extension.
func (r *Range) Extension() []*Extension { return slices.Clone(r.extension) }

// Low returns low.
func (r *Range) Low() *Quantity { return r.low }

// High returns high.
func (r *Range) High() *Quantity { return r.high }

// Fields returns the element slots in declaration order.
func (r *Range) Fields() []model.Field {
	return []model.Field{
		model.ID(r.id),
		model.Many("extension", r.extension),
		model.One("low", r.low),
		model.One("high", r.high),
	}
}

// Accept walks the record and its descendants with v.
func (r *Range) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, r, r.Fields(), v)
}

// Equal reports whether r and other are structurally equal.
func (r *Range) Equal(other *Range) bool { return model.Equal(r, other) }

// Hash returns the structural hash. It is computed once.
func (r *Range) Hash() uint64 {
	return r.hashCache.Get(func() uint64 { return model.Hash(r) })
}

// ToBuilder returns a builder staged with the values of r.
func (r *Range) ToBuilder() *RangeBuilder {
	return &RangeBuilder{
		id:        r.id,
		extension: slices.Clone(r.extension),
		low:       r.low,
		high:      r.high,
	}
}

// RangeBuilder stages the values of a Range. It is not safe for concurrent use.
type RangeBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	low       *Quantity
	high      *Quantity
}

// NewRangeBuilder returns an empty builder.
func NewRangeBuilder() *RangeBuilder { return &RangeBuilder{} }

// ID sets id.
func (b *RangeBuilder) ID(v string) *RangeBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *RangeBuilder) Extension(v ...*Extension) *RangeBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *RangeBuilder) SetExtension(v []*Extension) *RangeBuilder {
	if v == nil {
		b.RejectNil("Range", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Low sets low.
func (b *RangeBuilder) Low(v *Quantity) *RangeBuilder {
	b.low = v
	return b
}

// High sets high.
func (b *RangeBuilder) High(v *Quantity) *RangeBuilder {
	b.high = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *RangeBuilder) Build() (*Range, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	r := &Range{
		id:        b.id,
		extension: slices.Clone(b.extension),
		low:       b.low,
		high:      b.high,
	}
	if err := meta.Check(r); err != nil {
		return nil, err
	}
	return r, nil
}
