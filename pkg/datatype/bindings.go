package datatype

import "github.com/gofhir/models/pkg/meta"

// Value set bindings shared by datatypes and resources. Bindings to value
// sets that cannot be enumerated carry no codes and are not enforced by
// Build.
var (
	LanguagesBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/all-languages|5.0.0",
	}

	MimeTypesBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/mimetypes|5.0.0",
	}

	NarrativeStatusBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/narrative-status|5.0.0",
		Codes:    []string{"generated", "extensions", "additional", "empty"},
	}

	IdentifierUseBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/identifier-use|5.0.0",
		Codes:    []string{"usual", "official", "temp", "secondary", "old"},
	}

	ContactPointSystemBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/contact-point-system|5.0.0",
		Codes:    []string{"phone", "fax", "email", "pager", "url", "sms", "other"},
	}

	ContactPointUseBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/contact-point-use|5.0.0",
		Codes:    []string{"home", "work", "temp", "old", "mobile"},
	}

	QuantityComparatorBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/quantity-comparator|5.0.0",
		Codes:    []string{"<", "<=", ">=", ">", "ad"},
	}

	PublicationStatusBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/publication-status|5.0.0",
		Codes:    []string{"draft", "active", "retired", "unknown"},
	}

	RelatedArtifactTypeBinding = &meta.Binding{
		Strength: meta.StrengthRequired,
		ValueSet: "http://hl7.org/fhir/ValueSet/related-artifact-type|5.0.0",
		Codes:    RelatedArtifactTypes,
	}
)

// RelatedArtifactTypes lists the codes of the related-artifact-type code
// system.
var RelatedArtifactTypes = []string{
	"documentation", "justification", "citation", "predecessor", "successor",
	"derived-from", "depends-on", "composed-of", "part-of", "amends",
	"amended-with", "appends", "appended-with", "cites", "cited-by",
	"comments-on", "comment-in", "contains", "contained-in", "corrects",
	"correction-in", "replaces", "replaced-with", "retracts", "retracted-by",
	"signs", "similar-to", "supports", "supported-with", "transforms",
	"transformed-into", "transformed-with", "documents", "specification-of",
	"created-with", "cite-as",
}
