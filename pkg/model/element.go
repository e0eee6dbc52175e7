// Package model defines the contracts shared by every FHIR element type:
// the traversal protocol, ordered field slots, structural equality and
// the staging helpers used by builders.
//
// Concrete resources and datatypes live in the resource and datatype
// packages. They expose a single Accept entry point and never mutate after
// Build, so any Element may be shared between goroutines.
package model

// Visitable is anything that can be walked by a Visitor.
type Visitable interface {
	// Accept walks the receiver as the child called name. index is the
	// position within a repeating element, or -1 for a single element.
	Accept(name string, index int, v Visitor)
}

// Element is a FHIR element: a resource, backbone element, complex datatype
// or primitive.
type Element interface {
	Visitable

	// TypeName returns the FHIR type code ("string", "Coding") or, for
	// backbone elements, the element path ("Citation.summary").
	TypeName() string
}

// Resource is a top-level FHIR resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceID() string
}

// Primitive is a FHIR primitive datatype.
type Primitive interface {
	Element

	// PrimitiveValue returns the Go value and whether one is present.
	// A primitive may carry only extensions and no value.
	PrimitiveValue() (any, bool)

	// ValidateValue checks the value against the lexical rules of the type.
	ValidateValue() error
}

// ReferenceLike is implemented by elements that point at another resource.
type ReferenceLike interface {
	Element

	// ReferencedType returns the target resource type when it can be
	// inferred from the element.
	ReferencedType() (string, bool)
}
