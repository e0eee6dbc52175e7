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
		Name: "AppointmentResponse",
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
			{Name: "identifier", Max: "*", Types: []string{"Identifier"}, Summary: true},
			{Name: "appointment", Min: 1, Max: "1", Types: []string{"Reference"}, Targets: []string{"Appointment"}, Summary: true},
			{Name: "proposedNewTime", Max: "1", Types: []string{"boolean"}, Summary: true},
			{Name: "start", Max: "1", Types: []string{"instant"}},
			{Name: "end", Max: "1", Types: []string{"instant"}},
			{Name: "participantType", Max: "*", Types: []string{"CodeableConcept"}, Summary: true},
			{Name: "actor", Max: "1", Types: []string{"Reference"}, Targets: []string{"Patient", "Group", "Practitioner", "PractitionerRole", "RelatedPerson", "Device", "HealthcareService", "Location"}, Summary: true},
			{Name: "participantStatus", Min: 1, Max: "1", Types: []string{"code"}, Binding: ParticipationStatusBinding, Summary: true, Modifier: true},
			{Name: "comment", Max: "1", Types: []string{"markdown"}},
			{Name: "recurring", Max: "1", Types: []string{"boolean"}},
			{Name: "occurrenceDate", Max: "1", Types: []string{"date"}},
			{Name: "recurrenceId", Max: "1", Types: []string{"positiveInt"}},
		},
		Constraints: []meta.Constraint{
			{Key: "dom-2", Severity: issue.SeverityError, Human: "If the resource is contained in another resource, it SHALL NOT contain nested Resources", Expression: "contained.contained.empty()"},
			{Key: "dom-4", Severity: issue.SeverityError, Human: "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated", Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()"},
			{Key: "dom-5", Severity: issue.SeverityError, Human: "If a resource is contained in another resource, it SHALL NOT have a security label", Expression: "contained.meta.security.empty()"},
			{Key: "dom-6", Severity: issue.SeverityWarning, Human: "A resource should have narrative for robust management", Expression: "text.`div`.exists()"},
			{Key: "apr-1", Severity: issue.SeverityError, Human: "Either the participantType or actor must be specified", Expression: "participantType.exists() or actor.exists()"},
		},
	})
}

// AppointmentResponse is a reply to an appointment request for a patient and/or practitioner(s), such as a confirmation or rejection.
type AppointmentResponse struct {
	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []model.Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	appointment       *datatype.Reference
	proposedNewTime   *datatype.Boolean
	start             *datatype.Instant
	end               *datatype.Instant
	participantType   []*datatype.CodeableConcept
	actor             *datatype.Reference
	participantStatus *datatype.Code
	comment           *datatype.Markdown
	recurring         *datatype.Boolean
	occurrenceDate    *datatype.Date
	recurrenceId      *datatype.PositiveInt

	hashCache model.HashCache
}

// TypeName returns "AppointmentResponse".
func (a *AppointmentResponse) TypeName() string { return "AppointmentResponse" }

// ResourceType returns "AppointmentResponse".
func (a *AppointmentResponse) ResourceType() string { return "AppointmentResponse" }

// ResourceID returns the logical id.
func (a *AppointmentResponse) ResourceID() string { return a.id }

// ID returns id.
func (a *AppointmentResponse) ID() string { return a.id }

// Meta returns meta.
func (a *AppointmentResponse) Meta() *datatype.Meta { return a.meta }

// ImplicitRules returns implicitRules.
func (a *AppointmentResponse) ImplicitRules() *datatype.URI { return a.implicitRules }

// Language returns language.
func (a *AppointmentResponse) Language() *datatype.Code { return a.language }

// Text returns text.
func (a *AppointmentResponse) Text() *datatype.Narrative { return a.text }

// Contained returns a copy of contained.
func (a *AppointmentResponse) Contained() []model.Resource { return slices.Clone(a.contained) }

// Extension returns a copy of extension.
func (a *AppointmentResponse) Extension() []*datatype.Extension { return slices.Clone(a.extension) }

// ModifierExtension returns a copy of modifierExtension.
func (a *AppointmentResponse) ModifierExtension() []*datatype.Extension { return slices.Clone(a.modifierExtension) }

// Identifier returns a copy of identifier.
func (a *AppointmentResponse) Identifier() []*datatype.Identifier { return slices.Clone(a.identifier) }

// Appointment returns appointment.
func (a *AppointmentResponse) Appointment() *datatype.Reference { return a.appointment }

// ProposedNewTime returns proposedNewTime.
func (a *AppointmentResponse) ProposedNewTime() *datatype.Boolean { return a.proposedNewTime }

// Start returns start.
func (a *AppointmentResponse) Start() *datatype.Instant { return a.start }

// End returns end.
func (a *AppointmentResponse) End() *datatype.Instant { return a.end }

// ParticipantType returns a copy of participantType.
func (a *AppointmentResponse) ParticipantType() []*datatype.CodeableConcept { return slices.Clone(a.participantType) }

// Actor returns actor.
func (a *AppointmentResponse) Actor() *datatype.Reference { return a.actor }

// ParticipantStatus returns participantStatus.
func (a *AppointmentResponse) ParticipantStatus() *datatype.Code { return a.participantStatus }

// Comment returns comment.
func (a *AppointmentResponse) Comment() *datatype.Markdown { return a.comment }

// Recurring returns recurring.
func (a *AppointmentResponse) Recurring() *datatype.Boolean { return a.recurring }

// OccurrenceDate returns occurrenceDate.
func (a *AppointmentResponse) OccurrenceDate() *datatype.Date { return a.occurrenceDate }

// RecurrenceID returns recurrenceId.
func (a *AppointmentResponse) RecurrenceID() *datatype.PositiveInt { return a.recurrenceId }

// Fields returns the element slots in declaration order.
func (a *AppointmentResponse) Fields() []model.Field {
	return []model.Field{
		model.ID(a.id),
		model.One("meta", a.meta),
		model.One("implicitRules", a.implicitRules),
		model.One("language", a.language),
		model.One("text", a.text),
		model.Resources("contained", a.contained),
		model.Many("extension", a.extension),
		model.Many("modifierExtension", a.modifierExtension),
		model.Many("identifier", a.identifier),
		model.One("appointment", a.appointment),
		model.One("proposedNewTime", a.proposedNewTime),
		model.One("start", a.start),
		model.One("end", a.end),
		model.Many("participantType", a.participantType),
		model.One("actor", a.actor),
		model.One("participantStatus", a.participantStatus),
		model.One("comment", a.comment),
		model.One("recurring", a.recurring),
		model.One("occurrenceDate", a.occurrenceDate),
		model.One("recurrenceId", a.recurrenceId),
	}
}

// Accept walks the record and its descendants with v.
func (a *AppointmentResponse) Accept(name string, index int, v model.Visitor) {
	model.Traverse(name, index, a, a.Fields(), v)
}

// Equal reports whether a and other are structurally equal.
func (a *AppointmentResponse) Equal(other *AppointmentResponse) bool { return model.Equal(a, other) }

// Hash returns the structural hash. It is computed once.
func (a *AppointmentResponse) Hash() uint64 {
	return a.hashCache.Get(func() uint64 { return model.Hash(a) })
}

// ToBuilder returns a builder staged with the values of a.
func (a *AppointmentResponse) ToBuilder() *AppointmentResponseBuilder {
	return &AppointmentResponseBuilder{
		id:                a.id,
		meta:              a.meta,
		implicitRules:     a.implicitRules,
		language:          a.language,
		text:              a.text,
		contained:         slices.Clone(a.contained),
		extension:         slices.Clone(a.extension),
		modifierExtension: slices.Clone(a.modifierExtension),
		identifier:        slices.Clone(a.identifier),
		appointment:       a.appointment,
		proposedNewTime:   a.proposedNewTime,
		start:             a.start,
		end:               a.end,
		participantType:   slices.Clone(a.participantType),
		actor:             a.actor,
		participantStatus: a.participantStatus,
		comment:           a.comment,
		recurring:         a.recurring,
		occurrenceDate:    a.occurrenceDate,
		recurrenceId:      a.recurrenceId,
	}
}

// AppointmentResponseBuilder stages the values of an AppointmentResponse. It is not safe for concurrent use.
type AppointmentResponseBuilder struct {
	model.Staging

	id                string
	meta              *datatype.Meta
	implicitRules     *datatype.URI
	language          *datatype.Code
	text              *datatype.Narrative
	contained         []model.Resource
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	identifier        []*datatype.Identifier
	appointment       *datatype.Reference
	proposedNewTime   *datatype.Boolean
	start             *datatype.Instant
	end               *datatype.Instant
	participantType   []*datatype.CodeableConcept
	actor             *datatype.Reference
	participantStatus *datatype.Code
	comment           *datatype.Markdown
	recurring         *datatype.Boolean
	occurrenceDate    *datatype.Date
	recurrenceId      *datatype.PositiveInt
}

// NewAppointmentResponseBuilder returns an empty builder.
func NewAppointmentResponseBuilder() *AppointmentResponseBuilder { return &AppointmentResponseBuilder{} }

// ID sets id.
func (b *AppointmentResponseBuilder) ID(v string) *AppointmentResponseBuilder {
	b.id = v
	return b
}

// Meta sets meta.
func (b *AppointmentResponseBuilder) Meta(v *datatype.Meta) *AppointmentResponseBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets implicitRules.
func (b *AppointmentResponseBuilder) ImplicitRules(v *datatype.URI) *AppointmentResponseBuilder {
	b.implicitRules = v
	return b
}

// ImplicitRulesValue sets implicitRules from a plain value.
func (b *AppointmentResponseBuilder) ImplicitRulesValue(v string) *AppointmentResponseBuilder {
	b.implicitRules = datatype.NewURI(v)
	return b
}

// Language sets language.
func (b *AppointmentResponseBuilder) Language(v *datatype.Code) *AppointmentResponseBuilder {
	b.language = v
	return b
}

// LanguageValue sets language from a plain value.
func (b *AppointmentResponseBuilder) LanguageValue(v string) *AppointmentResponseBuilder {
	b.language = datatype.NewCode(v)
	return b
}

// Text sets text.
func (b *AppointmentResponseBuilder) Text(v *datatype.Narrative) *AppointmentResponseBuilder {
	b.text = v
	return b
}

// Contained appends to contained.
func (b *AppointmentResponseBuilder) Contained(v ...model.Resource) *AppointmentResponseBuilder {
	b.contained = append(b.contained, v...)
	return b
}

// SetContained replaces contained. A nil slice is rejected and leaves the builder unchanged.
func (b *AppointmentResponseBuilder) SetContained(v []model.Resource) *AppointmentResponseBuilder {
	if v == nil {
		b.RejectNil("AppointmentResponse", "contained")
		return b
	}
	b.contained = slices.Clone(v)
	return b
}

// Extension appends to extension.
func (b *AppointmentResponseBuilder) Extension(v ...*datatype.Extension) *AppointmentResponseBuilder {
	b.extension = append(b.extension, v...)
	return b
}

// SetExtension replaces extension. A nil slice is rejected and leaves the builder unchanged.
func (b *AppointmentResponseBuilder) SetExtension(v []*datatype.Extension) *AppointmentResponseBuilder {
	if v == nil {
		b.RejectNil("AppointmentResponse", "extension")
		return b
	}
	b.extension = slices.Clone(v)
	return b
}

// ModifierExtension appends to modifierExtension.
func (b *AppointmentResponseBuilder) ModifierExtension(v ...*datatype.Extension) *AppointmentResponseBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

// SetModifierExtension replaces modifierExtension. A nil slice is rejected and leaves the builder unchanged.
func (b *AppointmentResponseBuilder) SetModifierExtension(v []*datatype.Extension) *AppointmentResponseBuilder {
	if v == nil {
		b.RejectNil("AppointmentResponse", "modifierExtension")
		return b
	}
	b.modifierExtension = slices.Clone(v)
	return b
}

// Identifier appends to identifier.
func (b *AppointmentResponseBuilder) Identifier(v ...*datatype.Identifier) *AppointmentResponseBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

// SetIdentifier replaces identifier. A nil slice is rejected and leaves the builder unchanged.
func (b *AppointmentResponseBuilder) SetIdentifier(v []*datatype.Identifier) *AppointmentResponseBuilder {
	if v == nil {
		b.RejectNil("AppointmentResponse", "identifier")
		return b
	}
	b.identifier = slices.Clone(v)
	return b
}

// Appointment sets appointment.
func (b *AppointmentResponseBuilder) Appointment(v *datatype.Reference) *AppointmentResponseBuilder {
	b.appointment = v
	return b
}

// ProposedNewTime sets proposedNewTime.
func (b *AppointmentResponseBuilder) ProposedNewTime(v *datatype.Boolean) *AppointmentResponseBuilder {
	b.proposedNewTime = v
	return b
}

// ProposedNewTimeValue sets proposedNewTime from a plain value.
func (b *AppointmentResponseBuilder) ProposedNewTimeValue(v bool) *AppointmentResponseBuilder {
	b.proposedNewTime = datatype.NewBoolean(v)
	return b
}

// Start sets start.
func (b *AppointmentResponseBuilder) Start(v *datatype.Instant) *AppointmentResponseBuilder {
	b.start = v
	return b
}

// StartValue sets start from a plain value.
func (b *AppointmentResponseBuilder) StartValue(v string) *AppointmentResponseBuilder {
	b.start = datatype.NewInstant(v)
	return b
}

// End sets end.
func (b *AppointmentResponseBuilder) End(v *datatype.Instant) *AppointmentResponseBuilder {
	b.end = v
	return b
}

// EndValue sets end from a plain value.
func (b *AppointmentResponseBuilder) EndValue(v string) *AppointmentResponseBuilder {
	b.end = datatype.NewInstant(v)
	return b
}

// ParticipantType appends to participantType.
func (b *AppointmentResponseBuilder) ParticipantType(v ...*datatype.CodeableConcept) *AppointmentResponseBuilder {
	b.participantType = append(b.participantType, v...)
	return b
}

// SetParticipantType replaces participantType. A nil slice is rejected and leaves the builder unchanged.
func (b *AppointmentResponseBuilder) SetParticipantType(v []*datatype.CodeableConcept) *AppointmentResponseBuilder {
	if v == nil {
		b.RejectNil("AppointmentResponse", "participantType")
		return b
	}
	b.participantType = slices.Clone(v)
	return b
}

// Actor sets actor.
func (b *AppointmentResponseBuilder) Actor(v *datatype.Reference) *AppointmentResponseBuilder {
	b.actor = v
	return b
}

// ParticipantStatus sets participantStatus.
func (b *AppointmentResponseBuilder) ParticipantStatus(v *datatype.Code) *AppointmentResponseBuilder {
	b.participantStatus = v
	return b
}

// ParticipantStatusValue sets participantStatus from a plain value.
func (b *AppointmentResponseBuilder) ParticipantStatusValue(v string) *AppointmentResponseBuilder {
	b.participantStatus = datatype.NewCode(v)
	return b
}

// Comment sets comment.
func (b *AppointmentResponseBuilder) Comment(v *datatype.Markdown) *AppointmentResponseBuilder {
	b.comment = v
	return b
}

// CommentValue sets comment from a plain value.
func (b *AppointmentResponseBuilder) CommentValue(v string) *AppointmentResponseBuilder {
	b.comment = datatype.NewMarkdown(v)
	return b
}

// Recurring sets recurring.
func (b *AppointmentResponseBuilder) Recurring(v *datatype.Boolean) *AppointmentResponseBuilder {
	b.recurring = v
	return b
}

// RecurringValue sets recurring from a plain value.
func (b *AppointmentResponseBuilder) RecurringValue(v bool) *AppointmentResponseBuilder {
	b.recurring = datatype.NewBoolean(v)
	return b
}

// OccurrenceDate sets occurrenceDate.
func (b *AppointmentResponseBuilder) OccurrenceDate(v *datatype.Date) *AppointmentResponseBuilder {
	b.occurrenceDate = v
	return b
}

// OccurrenceDateValue sets occurrenceDate from a plain value.
func (b *AppointmentResponseBuilder) OccurrenceDateValue(v string) *AppointmentResponseBuilder {
	b.occurrenceDate = datatype.NewDate(v)
	return b
}

// RecurrenceID sets recurrenceId.
func (b *AppointmentResponseBuilder) RecurrenceID(v *datatype.PositiveInt) *AppointmentResponseBuilder {
	b.recurrenceId = v
	return b
}

// RecurrenceIDValue sets recurrenceId from a plain value.
func (b *AppointmentResponseBuilder) RecurrenceIDValue(v int32) *AppointmentResponseBuilder {
	b.recurrenceId = datatype.NewPositiveInt(v)
	return b
}

// Build validates the staged values and returns the immutable record.
// It fails with the staging error, if any, or an *issue.ValidationError.
func (b *AppointmentResponseBuilder) Build() (*AppointmentResponse, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	a := &AppointmentResponse{
		id:                b.id,
		meta:              b.meta,
		implicitRules:     b.implicitRules,
		language:          b.language,
		text:              b.text,
		contained:         slices.Clone(b.contained),
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		identifier:        slices.Clone(b.identifier),
		appointment:       b.appointment,
		proposedNewTime:   b.proposedNewTime,
		start:             b.start,
		end:               b.end,
		participantType:   slices.Clone(b.participantType),
		actor:             b.actor,
		participantStatus: b.participantStatus,
		comment:           b.comment,
		recurring:         b.recurring,
		occurrenceDate:    b.occurrenceDate,
		recurrenceId:      b.recurrenceId,
	}
	if err := meta.Check(a); err != nil {
		return nil, err
	}
	return a, nil
}
