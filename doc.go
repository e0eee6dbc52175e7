// Package fhirmodels validates FHIR R5 resources built with the immutable
// models in pkg/resource and pkg/datatype.
//
// Records are checked structurally when they are built. The Validator adds
// what Build cannot do on its own: it walks the whole element tree against
// a metadata registry (the built-in tables or a stricter copy) and
// evaluates the FHIRPath invariants declared for every type.
//
// # Quick Start
//
//	import (
//	    fm "github.com/gofhir/models"
//	    "github.com/gofhir/models/pkg/datatype"
//	    "github.com/gofhir/models/pkg/resource"
//	)
//
//	ar, err := resource.NewAppointmentResponseBuilder().
//	    Appointment(appointmentRef).
//	    Actor(patientRef).
//	    ParticipantStatusValue(resource.ParticipationAccepted).
//	    Build()
//	if err != nil {
//	    log.Fatal(err) // *issue.ValidationError
//	}
//
//	v := fm.New(fm.WithSkipConstraints("dom-6"))
//	result, err := v.Validate(ctx, ar)
//	if result.HasErrors() {
//	    for _, iss := range result.Issues {
//	        fmt.Println(iss)
//	    }
//	}
//
// # Functional Options
//
//	v := fm.New(
//	    fm.WithStrictMode(true),
//	    fm.WithWorkerCount(runtime.NumCPU()),
//	    fm.WithMaxIssues(100),
//	)
//
// ValidateAll checks a batch concurrently with at most WorkerCount
// goroutines and keeps the input order.
package fhirmodels
