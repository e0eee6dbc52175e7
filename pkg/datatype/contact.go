package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "ContactPoint",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "system", Max: "1", Types: []string{"code"}, Binding: ContactPointSystemBinding, Summary: true},
			{Name: "value", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "use", Max: "1", Types: []string{"code"}, Binding: ContactPointUseBinding, Summary: true, Modifier: true},
			{Name: "rank", Max: "1", Types: []string{"positiveInt"}, Summary: true},
			{Name: "period", Max: "1", Types: []string{"Period"}, Summary: true},
		},
		Constraints: []meta.Constraint{
			{Key: "cpt-2", Severity: issue.SeverityError, Human: "A system is required if a value is provided.", Expression: "value.empty() or system.exists()"},
		},
	})
	meta.MustRegister(&meta.TypeInfo{
		Name: "ContactDetail",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "name", Max: "1", Types: []string{"string"}, Summary: true},
			{Name: "telecom", Max: "*", Types: []string{"ContactPoint"}, Summary: true},
		},
	})
}

// ContactPoint is a technology mediated contact detail such as a phone number or email address.
type ContactPoint struct {
	id        string
	extension []*Extension
	system    *Code
	value     *String
	use       *Code
	rank      *PositiveInt
	period    *Period

	hashCache model.HashCache
}

// TypeName returns "ContactPoint".
func (c *ContactPoint) TypeName() string { return "ContactPoint" }

// ID returns id.
func (c *ContactPoint) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *ContactPoint) Extension() []*Extension { return slices.Clone(c.extension) }

// System returns system.
func (c *ContactPoint) System() *Code { return c.system }

// Value returns value.
func (c *ContactPoint) Value() *String { return c.value }

// Use returns use.
func (c *ContactPoint) Use() *Code { return c.use }

// Rank returns rank.
func (c *ContactPoint) Rank() *PositiveInt { return c.rank }

// Period returns period.
func (c *ContactPoint) Period() *Period { return c.period }

// Fields returns the element slots in declaration order.
func (c *ContactPoint) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.One("system", c.system),
		model.One("value", c.value),
		model.One("use", c.use),
		model.One("rank", c.rank),
		model.One("period", c.period),
	}
}

// Accept walks the record and its descendants with v.
func (c *ContactPoint) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *ContactPoint) Equal(other *ContactPoint) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *ContactPoint) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *ContactPoint) ToBuilder() *ContactPointBuilder {
	return &ContactPointBuilder{
		id:        c.id,
		extension: slices.Clone(c.extension),
		system:    c.system,
		value:     c.value,
		use:       c.use,
		rank:      c.rank,
		period:    c.period,
	}
}

// ContactPointBuilder stages the values of a ContactPoint. It is not safe for concurrent use.
type ContactPointBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	system    *Code
	value     *String
	use       *Code
	rank      *PositiveInt
	period    *Period
}

// NewContactPointBuilder returns an empty builder.
func NewContactPointBuilder() *ContactPointBuilder { return &ContactPointBuilder{} }

// ID sets id.
func (b *ContactPointBuilder) ID(v string) *ContactPointBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *ContactPointBuilder) Extension(v ...*Extension) *ContactPointBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *ContactPointBuilder) SetExtension(v []*Extension) *ContactPointBuilder {
	if v == nil {
		b.RejectNil("ContactPoint", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// System sets system.
func (b *ContactPointBuilder) System(v *Code) *ContactPointBuilder {
	b.system = v
	return b
}

// SystemValue sets system from a plain value.
func (b *ContactPointBuilder) SystemValue(v string) *ContactPointBuilder {
	b.system = NewCode(v)
	return b
}

// Value sets value.
func (b *ContactPointBuilder) Value(v *String) *ContactPointBuilder {
	b.value = v
	return b
}

// ValueValue sets value from a plain value.
func (b *ContactPointBuilder) ValueValue(v string) *ContactPointBuilder {
	b.value = NewString(v)
	return b
}

// Use sets use.
func (b *ContactPointBuilder) Use(v *Code) *ContactPointBuilder {
	b.use = v
	return b
}

// UseValue sets use from a plain value.
func (b *ContactPointBuilder) UseValue(v string) *ContactPointBuilder {
	b.use = NewCode(v)
	return b
}

// Rank sets rank.
func (b *ContactPointBuilder) Rank(v *PositiveInt) *ContactPointBuilder {
	b.rank = v
	return b
}

// RankValue sets rank from a plain value.
func (b *ContactPointBuilder) RankValue(v int32) *ContactPointBuilder {
	b.rank = NewPositiveInt(v)
	return b
}

// Period sets period.
func (b *ContactPointBuilder) Period(v *Period) *ContactPointBuilder {
	b.period = v
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *ContactPointBuilder) Build() (*ContactPoint, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &ContactPoint{
		id:        b.id,
		extension: slices.Clone(b.extension),
		system:    b.system,
		value:     b.value,
		use:       b.use,
		rank:      b.rank,
		period:    b.period,
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ContactDetail is the name of a contact and their means of contact.
type ContactDetail struct {
	id        string
	extension []*Extension
	name      *String
	telecom   []*ContactPoint

	hashCache model.HashCache
}

// TypeName returns "ContactDetail".
func (c *ContactDetail) TypeName() string { return "ContactDetail" }

// ID returns id.
func (c *ContactDetail) ID() string { return c.id }

// Extension returns a copy of extension.
func (c *ContactDetail) Extension() []*Extension { return slices.Clone(c.extension) }

// Name returns name.
func (c *ContactDetail) Name() *String { return c.name }

// Telecom returns a copy of telecom.
func (c *ContactDetail) Telecom() []*ContactPoint { return slices.Clone(c.telecom) }

// Fields returns the element slots in declaration order.
func (c *ContactDetail) Fields() []model.Field {
	return []model.Field{
		model.ID(c.id),
		model.Many("extension", c.extension),
		model.One("name", c.name),
		model.Many("telecom", c.telecom),
	}
}

// Accept walks the record and its descendants with v.
func (c *ContactDetail) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, c, c.Fields(), v)
}

// Equal reports whether c and other are structurally equal.
func (c *ContactDetail) Equal(other *ContactDetail) bool { return model.Equal(c, other) }

// Hash returns the structural hash. It is computed once.
func (c *ContactDetail) Hash() uint64 {
	return c.hashCache.Get(func() uint64 { return model.Hash(c) })
}

// ToBuilder returns a builder staged with the values of c.
func (c *ContactDetail) ToBuilder() *ContactDetailBuilder {
	return &ContactDetailBuilder{
		id:        c.id,
		extension: slices.Clone(c.extension),
		name:      c.name,
		telecom:   slices.Clone(c.telecom),
	}
}

// ContactDetailBuilder stages the values of a ContactDetail. It is not safe for concurrent use.
type ContactDetailBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	name      *String
	telecom   []*ContactPoint
}

// NewContactDetailBuilder returns an empty builder.
func NewContactDetailBuilder() *ContactDetailBuilder { return &ContactDetailBuilder{} }

// ID sets id.
func (b *ContactDetailBuilder) ID(v string) *ContactDetailBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *ContactDetailBuilder) Extension(v ...*Extension) *ContactDetailBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *ContactDetailBuilder) SetExtension(v []*Extension) *ContactDetailBuilder {
	if v == nil {
		b.RejectNil("ContactDetail", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Name sets name.
func (b *ContactDetailBuilder) Name(v *String) *ContactDetailBuilder {
	b.name = v
	return b
}

// NameValue sets name from a plain value.
func (b *ContactDetailBuilder) NameValue(v string) *ContactDetailBuilder {
	b.name = NewString(v)
	return b
}

// Telecom appends to telecom.
func (b *ContactDetailBuilder) Telecom(v ...*ContactPoint) *ContactDetailBuilder {
	b.telecom = append(b.telecom, v...)
	return b
}

// SetTelecom replaces telecom. A nil slice is rejected and leaves the builder unchanged.
func (b *ContactDetailBuilder) SetTelecom(v []*ContactPoint) *ContactDetailBuilder {
	if v == nil {
		b.RejectNil("ContactDetail", "telecom")
		return b
	}
	b.telecom = slices.Clone(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *ContactDetailBuilder) Build() (*ContactDetail, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	c := &ContactDetail{
		id:        b.id,
		extension: slices.Clone(b.extension),
		name:      b.name,
		telecom:   slices.Clone(b.telecom),
	}
	if err := meta.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}
