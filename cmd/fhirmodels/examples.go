package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/resource"
)

// examples builds sample resources by lower-case resource type.
var examples = map[string]func() (model.Resource, error){
	"appointmentresponse": exampleAppointmentResponse,
	"citation":            exampleCitation,
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exampleAll selects every example.
const exampleAll = "all"

// lookupExamples builds the named example, or every example for "all".
func lookupExamples(name string) ([]model.Resource, error) {
	names := []string{strings.ToLower(name)}
	if names[0] == exampleAll {
		names = exampleNames()
	}
	out := make([]model.Resource, 0, len(names))
	for _, n := range names {
		build, ok := examples[n]
		if !ok {
			return nil, fmt.Errorf("no example for %q (have %s, %s)", name, strings.Join(exampleNames(), ", "), exampleAll)
		}
		res, err := build()
		if err != nil {
			return nil, fmt.Errorf("example %s: %w", n, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func narrative(text string) (*datatype.Narrative, error) {
	return datatype.NewNarrativeBuilder().
		StatusValue("generated").
		DivValue(`<div xmlns="http://www.w3.org/1999/xhtml">` + text + `</div>`).
		Build()
}

func exampleAppointmentResponse() (model.Resource, error) {
	text, err := narrative("Accepted by Dr Adam Careful")
	if err != nil {
		return nil, err
	}
	appointment, err := datatype.NewReferenceBuilder().
		ReferenceValue("Appointment/example").
		DisplayValue("Brian MRI results discussion").
		Build()
	if err != nil {
		return nil, err
	}
	actor, err := datatype.NewReferenceBuilder().
		ReferenceValue("Practitioner/example").
		DisplayValue("Dr Adam Careful").
		Build()
	if err != nil {
		return nil, err
	}
	coding, err := datatype.NewCodingBuilder().
		SystemValue("http://terminology.hl7.org/CodeSystem/v3-ParticipationType").
		CodeValue("ATND").
		Build()
	if err != nil {
		return nil, err
	}
	participantType, err := datatype.NewCodeableConceptBuilder().Coding(coding).Build()
	if err != nil {
		return nil, err
	}

	return resource.NewAppointmentResponseBuilder().
		ID("example").
		Text(text).
		Appointment(appointment).
		StartValue("2013-12-10T09:00:00Z").
		EndValue("2013-12-10T11:00:00Z").
		ParticipantType(participantType).
		Actor(actor).
		ParticipantStatusValue(resource.ParticipationAccepted).
		CommentValue("Will be there.").
		Build()
}

func exampleCitation() (model.Resource, error) {
	text, err := narrative("Citation of a published trial")
	if err != nil {
		return nil, err
	}
	summary, err := resource.NewCitationSummaryBuilder().
		TextValue("Example trial, 2024").
		Build()
	if err != nil {
		return nil, err
	}

	contributor, err := datatype.NewReferenceBuilder().ReferenceValue("Practitioner/example").Build()
	if err != nil {
		return nil, err
	}
	entry, err := resource.NewCitationCitedArtifactContributorshipEntryBuilder().
		Contributor(contributor).
		RankingOrderValue(1).
		Build()
	if err != nil {
		return nil, err
	}
	contributorship, err := resource.NewCitationCitedArtifactContributorshipBuilder().
		CompleteValue(true).
		Entry(entry).
		Build()
	if err != nil {
		return nil, err
	}
	title, err := resource.NewCitationCitedArtifactTitleBuilder().
		TextValue("An example randomized trial").
		Build()
	if err != nil {
		return nil, err
	}
	artifact, err := resource.NewCitationCitedArtifactBuilder().
		Title(title).
		Contributorship(contributorship).
		Build()
	if err != nil {
		return nil, err
	}

	return resource.NewCitationBuilder().
		ID("example").
		Text(text).
		URLValue("http://example.org/Citation/example").
		NameValue("ExampleCitation").
		TitleValue("Example citation").
		StatusValue("active").
		Summary(summary).
		CitedArtifact(artifact).
		Build()
}
