// Package meta holds the static metadata tables of the FHIR types in this
// module and the generic structural validation driven by them.
//
// Every resource, backbone element and datatype registers one TypeInfo
// describing its elements in declaration order. Build calls Check, which
// compares the record's field slots against that table.
package meta

import (
	"strconv"
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/reference"
)

// Kind classifies a type, using the StructureDefinition.kind codes.
type Kind string

const (
	KindPrimitive Kind = "primitive-type"
	KindComplex   Kind = "complex-type"
	KindResource  Kind = "resource"
	// KindBackbone marks an element defined inline by its parent type.
	KindBackbone Kind = "backbone-element"
)

// Binding strengths.
const (
	StrengthRequired   = "required"
	StrengthExtensible = "extensible"
	StrengthPreferred  = "preferred"
	StrengthExample    = "example"
)

// Binding ties a coded element to a value set. Codes lists the members of
// enumerated value sets and is only enforced for required bindings.
type Binding struct {
	Strength string
	ValueSet string
	Codes    []string
}

// Contains reports whether code is a member of the bound value set.
func (b *Binding) Contains(code string) bool {
	for _, c := range b.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Enforced reports whether Build rejects codes outside the value set.
func (b *Binding) Enforced() bool {
	return b != nil && b.Strength == StrengthRequired && len(b.Codes) > 0
}

// Constraint is a FHIRPath invariant evaluated with the owning type's
// instance as context.
type Constraint struct {
	Key        string
	Severity   issue.Severity
	Human      string
	Expression string
}

// ElementInfo describes one element of a type.
type ElementInfo struct {
	// Name without the [x] suffix of choice elements.
	Name string
	Min  int
	// Max is "1", "*" or a positive number.
	Max string

	// Types lists the allowed type codes. More than one marks a choice.
	Types []string

	// Targets lists the resource types a Reference element may point at.
	Targets []string

	Binding  *Binding
	Summary  bool
	Modifier bool
}

// IsChoice reports whether the element is polymorphic.
func (e *ElementInfo) IsChoice() bool { return len(e.Types) > 1 }

// IsList reports whether the element repeats.
func (e *ElementInfo) IsList() bool { return e.Max != "1" && e.Max != "0" }

// Required reports whether the element must be present.
func (e *ElementInfo) Required() bool { return e.Min > 0 }

// MaxCount returns the numeric upper bound, or -1 when unbounded.
func (e *ElementInfo) MaxCount() int {
	if e.Max == "*" {
		return -1
	}
	n, err := strconv.Atoi(e.Max)
	if err != nil {
		return -1
	}
	return n
}

// Cardinality renders the element bounds as "min..max".
func (e *ElementInfo) Cardinality() string {
	return strconv.Itoa(e.Min) + ".." + e.Max
}

// AllowsType reports whether typeName is one of the element types.
func (e *ElementInfo) AllowsType(typeName string) bool {
	for _, t := range e.Types {
		if t == typeName {
			return true
		}
	}
	return false
}

// JSONName returns the serialized name for a value of typeName.
func (e *ElementInfo) JSONName(typeName string) string {
	if e.IsChoice() {
		return e.Name + model.UpperFirst(typeName)
	}
	return e.Name
}

// CheckFunc adds type-specific findings for a record at path.
type CheckFunc func(e model.Element, path string, result *issue.Result)

// TypeInfo describes a FHIR type.
type TypeInfo struct {
	// Name is the type code, or the element path of a backbone element.
	Name     string
	Kind     Kind
	Base     string
	Abstract bool

	// Elements in declaration order, inherited elements first.
	Elements    []ElementInfo
	Constraints []Constraint

	// Check runs after the table-driven rules.
	Check CheckFunc
}

// URL returns the canonical URL of the type's StructureDefinition. Backbone
// elements have none.
func (t *TypeInfo) URL() string {
	if t.Kind == KindBackbone {
		return ""
	}
	return reference.Profile(t.Name)
}

// Root returns the type that owns a backbone element, or the type itself.
func (t *TypeInfo) Root() string {
	root, _, _ := strings.Cut(t.Name, ".")
	return root
}

// Element returns the element called name.
func (t *TypeInfo) Element(name string) (*ElementInfo, bool) {
	for i := range t.Elements {
		if t.Elements[i].Name == name {
			return &t.Elements[i], true
		}
	}
	return nil, false
}

// Path returns the path of the named element below the type.
func (t *TypeInfo) Path(name string) string {
	return t.Name + "." + name
}
