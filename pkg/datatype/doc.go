// Package datatype provides the FHIR R5 primitive and complex datatypes
// used by the resource package.
//
// Primitives carry an optional value together with an element id and
// extensions. They are created with NewX, or AbsentX when only extensions
// are present, and are validated by the Build of the record holding them.
// Complex datatypes follow the builder pattern of resources.
package datatype
