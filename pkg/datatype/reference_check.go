package datatype

import (
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/reference"
)

// ReferencedType returns the resource type the reference points at. The
// type element wins over the literal reference; a type given as a
// StructureDefinition URL is reduced to its type name.
func (r *Reference) ReferencedType() (string, bool) {
	if t := r.declaredType(); t != "" {
		return t, true
	}
	if r.reference != nil {
		if t := reference.ResourceType(r.reference.Value()); t != "" {
			return t, true
		}
	}
	return "", false
}

// Kind classifies the literal reference.
func (r *Reference) Kind() reference.Kind {
	if r.reference == nil || !r.reference.HasValue() {
		return reference.KindInvalid
	}
	return reference.Classify(r.reference.Value())
}

func (r *Reference) declaredType() string {
	if r.typ == nil || !r.typ.HasValue() {
		return ""
	}
	t := r.typ.Value()
	if strings.Contains(t, "/") {
		return reference.TypeFromProfile(t)
	}
	return t
}

// checkReference validates the literal reference and its agreement with
// the type element.
func checkReference(e model.Element, path string, result *issue.Result) {
	r, ok := e.(*Reference)
	if !ok || r.reference == nil || !r.reference.HasValue() {
		return
	}
	literal := r.reference.Value()
	if !reference.IsValidFormat(literal) {
		result.AddErrorWithID(issue.DiagReferenceFormat, map[string]any{"reference": literal}, path+".reference")
		return
	}

	declared := r.declaredType()
	if declared == "" {
		return
	}
	if target := reference.ResourceType(literal); target != "" && target != declared {
		result.AddErrorWithID(issue.DiagReferenceMismatch, map[string]any{
			"type":      declared,
			"reference": literal,
		}, path+".type")
	}
}
