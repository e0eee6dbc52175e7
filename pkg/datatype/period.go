package datatype

import (
	"slices"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/model"
)

func init() {
	meta.MustRegister(&meta.TypeInfo{
		Name: "Period",
		Kind: meta.KindComplex,
		Base: "DataType",
		Elements: []meta.ElementInfo{
			{Name: "id", Max: "1", Types: []string{"string"}},
			{Name: "extension", Max: "*", Types: []string{"Extension"}},
			{Name: "start", Max: "1", Types: []string{"dateTime"}, Summary: true},
			{Name: "end", Max: "1", Types: []string{"dateTime"}, Summary: true},
		},
		Constraints: []meta.Constraint{
			{Key: "per-1", Severity: issue.SeverityError, Human: "If present, start SHALL have a lower or equal value than end", Expression: "start.hasValue().not() or end.hasValue().not() or (start <= end)"},
		},
	})
}

// Period is a time range defined by start and end dates.
type Period struct {
	id        string
	extension []*Extension
	start     *DateTime
	end       *DateTime

	hashCache model.HashCache
}

// TypeName returns "Period".
func (p *Period) TypeName() string { return "Period" }

// ID returns id.
func (p *Period) ID() string { return p.id }

// Extension returns a copy of extension.
func (p *Period) Extension() []*Extension { return slices.Clone(p.extension) }

// Start returns start.
func (p *Period) Start() *DateTime { return p.start }

// End returns end.
func (p *Period) End() *DateTime { return p.end }

// Fields returns the element slots in declaration order.
func (p *Period) Fields() []model.Field {
	return []model.Field{
		model.ID(p.id),
		model.Many("extension", p.extension),
		model.One("start", p.start),
		model.One("end", p.end),
	}
}

// Accept walks the record and its descendants with v.
func (p *Period) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, p, p.Fields(), v)
}

// Equal reports whether p and other are structurally equal.
func (p *Period) Equal(other *Period) bool { return model.Equal(p, other) }

// Hash returns the structural hash. It is computed once.
func (p *Period) Hash() uint64 {
	return p.hashCache.Get(func() uint64 { return model.Hash(p) })
}

// ToBuilder returns a builder staged with the values of p.
func (p *Period) ToBuilder() *PeriodBuilder {
	return &PeriodBuilder{
		id:        p.id,
		extension: slices.Clone(p.extension),
		start:     p.start,
		end:       p.end,
	}
}

// PeriodBuilder stages the values of a Period. It is not safe for concurrent use.
type PeriodBuilder struct {
	model.Staging

	id        string
	extension []*Extension
	start     *DateTime
	end       *DateTime
}

// NewPeriodBuilder returns an empty builder.
func NewPeriodBuilder() *PeriodBuilder { return &PeriodBuilder{} }

// ID sets id.
func (b *PeriodBuilder) ID(v string) *PeriodBuilder {
	b.id = v
	return b
}

// Extension appends to extension.
func (b *PeriodBuilder) Extension(v ...*Extension) *PeriodBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *PeriodBuilder) SetExtension(v []*Extension) *PeriodBuilder {
	if v == nil {
		b.RejectNil("Period", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// Start sets start.
func (b *PeriodBuilder) Start(v *DateTime) *PeriodBuilder {
	b.start = v
	return b
}

// StartValue sets start from a plain value.
func (b *PeriodBuilder) StartValue(v string) *PeriodBuilder {
	b.start = NewDateTime(v)
	return b
}

// End sets end.
func (b *PeriodBuilder) End(v *DateTime) *PeriodBuilder {
	b.end = v
	return b
}

// EndValue sets end from a plain value.
func (b *PeriodBuilder) EndValue(v string) *PeriodBuilder {
	b.end = NewDateTime(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *PeriodBuilder) Build() (*Period, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	p := &Period{
		id:        b.id,
		extension: slices.Clone(b.extension),
		start:     b.start,
		end:       b.end,
	}
	if err := meta.Check(p); err != nil {
		return nil, err
	}
	return p, nil
}
