// Package resource provides the FHIR R5 AppointmentResponse and Citation
// resources together with every backbone element they own.
//
// Records are immutable. They are created with a builder, validated by
// Build against the metadata registered in meta, and copied with
// ToBuilder:
//
//	resp, err := resource.NewAppointmentResponseBuilder().
//		Appointment(appt).
//		ParticipantStatusValue(resource.ParticipationAccepted).
//		Build()
//
// Backbone element types are named after their element path, so
// Citation.citedArtifact.contributorship.entry is
// CitationCitedArtifactContributorshipEntry.
package resource
