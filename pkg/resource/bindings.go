package resource

import (
	"slices"

	"github.com/gofhir/models/pkg/datatype"
	"github.com/gofhir/models/pkg/meta"
)

// Participation status codes for AppointmentResponse.participantStatus.
const (
	ParticipationAccepted    = "accepted"
	ParticipationDeclined    = "declined"
	ParticipationTentative   = "tentative"
	ParticipationNeedsAction = "needs-action"
)

var (
	ParticipationStatusBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/participationstatus|5.0.0",
		Codes: []string{
			ParticipationAccepted,
			ParticipationDeclined,
			ParticipationTentative,
			ParticipationNeedsAction,
		},
	}

	// RelatedArtifactTypeExpandedBinding adds the citation specific
	// reprint codes to the related artifact types.
	RelatedArtifactTypeExpandedBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/related-artifact-type-all|5.0.0",
		Codes:    append(slices.Clone(datatype.RelatedArtifactTypes), "reprint", "reprint-of"),
	}
)
