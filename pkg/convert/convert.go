// Package convert translates between the type metadata of this module and
// the StructureDefinition and datatype models of github.com/gofhir/fhir.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/meta"
	"github.com/gofhir/models/pkg/reference"
)

// FHIRVersion is the version written into generated StructureDefinitions.
const FHIRVersion = "5.0.0"

const backboneElement = "BackboneElement"

// ErrNoType is returned for a StructureDefinition without a type.
var ErrNoType = errors.New("structure definition has no type")

// Converter converts type metadata to and from StructureDefinitions.
type Converter struct {
	registry *meta.Registry
}

// NewConverter creates a Converter that resolves backbone elements in reg.
// A nil reg uses the default registry.
func NewConverter(reg *meta.Registry) *Converter {
	if reg == nil {
		reg = meta.Default()
	}
	return &Converter{registry: reg}
}

// ToStructureDefinition renders info as a StructureDefinition snapshot.
// Backbone elements are expanded in place below the element that owns
// them.
func (c *Converter) ToStructureDefinition(info *meta.TypeInfo) *r4.StructureDefinition {
	if info == nil {
		return nil
	}

	sd := &r4.StructureDefinition{
		Url:         ptr(info.URL()),
		Name:        ptr(info.Name),
		Type:        ptr(info.Name),
		Kind:        enum[r4.StructureDefinitionKind](string(info.Kind)),
		Abstract:    ptr(info.Abstract),
		FhirVersion: enum[r4.FHIRVersion](FHIRVersion),
	}
	if info.Base != "" {
		sd.BaseDefinition = ptr(reference.Profile(info.Base))
	}

	root := r4.ElementDefinition{
		Id:         ptr(info.Name),
		Path:       ptr(info.Name),
		Min:        ptr(uint32(0)),
		Max:        ptr("*"),
		Constraint: toConstraints(info.Constraints),
	}
	elements := []r4.ElementDefinition{root}
	elements = c.appendElements(elements, info, info.Name)

	sd.Snapshot = &r4.StructureDefinitionSnapshot{Element: elements}
	return sd
}

func (c *Converter) appendElements(out []r4.ElementDefinition, info *meta.TypeInfo, prefix string) []r4.ElementDefinition {
	for i := range info.Elements {
		el := &info.Elements[i]
		name := el.Name
		if el.IsChoice() {
			name += "[x]"
		}
		path := prefix + "." + name

		ed := r4.ElementDefinition{
			Id:         ptr(path),
			Path:       ptr(path),
			Min:        ptr(uint32(el.Min)),
			Max:        ptr(el.Max),
			Binding:    toBinding(el.Binding),
			IsModifier: ptr(el.Modifier),
			IsSummary:  ptr(el.Summary),
		}

		backbone := c.backbone(el)
		if backbone != nil {
			ed.Type = []r4.ElementDefinitionType{{Code: ptr(backboneElement)}}
			ed.Constraint = toConstraints(backbone.Constraints)
		} else {
			ed.Type = toTypes(el)
		}
		out = append(out, ed)

		if backbone != nil {
			out = c.appendElements(out, backbone, path)
		}
	}
	return out
}

// backbone returns the backbone type of el, or nil.
func (c *Converter) backbone(el *meta.ElementInfo) *meta.TypeInfo {
	if len(el.Types) != 1 {
		return nil
	}
	info, ok := c.registry.GetByType(el.Types[0])
	if !ok || info.Kind != meta.KindBackbone {
		return nil
	}
	return info
}

func toTypes(el *meta.ElementInfo) []r4.ElementDefinitionType {
	types := make([]r4.ElementDefinitionType, 0, len(el.Types))
	for _, t := range el.Types {
		edt := r4.ElementDefinitionType{Code: ptr(t)}
		if t == "Reference" {
			for _, target := range el.Targets {
				edt.TargetProfile = append(edt.TargetProfile, reference.Profile(target))
			}
		}
		types = append(types, edt)
	}
	return types
}

func toBinding(b *meta.Binding) *r4.ElementDefinitionBinding {
	if b == nil {
		return nil
	}
	out := &r4.ElementDefinitionBinding{
		Strength: enum[r4.BindingStrength](b.Strength),
	}
	if b.ValueSet != "" {
		out.ValueSet = ptr(b.ValueSet)
	}
	return out
}

func toConstraints(constraints []meta.Constraint) []r4.ElementDefinitionConstraint {
	if len(constraints) == 0 {
		return nil
	}
	out := make([]r4.ElementDefinitionConstraint, 0, len(constraints))
	for _, con := range constraints {
		out = append(out, r4.ElementDefinitionConstraint{
			Key:        ptr(con.Key),
			Severity:   enum[r4.ConstraintSeverity](string(con.Severity)),
			Human:      ptr(con.Human),
			Expression: ptr(con.Expression),
		})
	}
	return out
}

// FromStructureDefinition reads the root constraints and the direct child
// elements of sd. Elements below a backbone element are not descended
// into; the backbone itself is typed with its path.
func (c *Converter) FromStructureDefinition(sd *r4.StructureDefinition) (*meta.TypeInfo, error) {
	if sd == nil || deref(sd.Type) == "" {
		return nil, ErrNoType
	}
	typeName := deref(sd.Type)

	info := &meta.TypeInfo{
		Name:     typeName,
		Abstract: deref(sd.Abstract),
	}
	if sd.Kind != nil {
		info.Kind = meta.Kind(*sd.Kind)
	}
	if base := deref(sd.BaseDefinition); base != "" {
		info.Base = reference.TypeFromProfile(base)
	}

	var elements []r4.ElementDefinition
	switch {
	case sd.Snapshot != nil:
		elements = sd.Snapshot.Element
	case sd.Differential != nil:
		elements = sd.Differential.Element
	}

	for i := range elements {
		ed := &elements[i]
		path := deref(ed.Path)
		if path == typeName {
			info.Constraints = fromConstraints(ed.Constraint)
			continue
		}
		name, ok := strings.CutPrefix(path, typeName+".")
		if !ok || strings.Contains(name, ".") {
			continue
		}
		el, err := fromElement(name, path, ed)
		if err != nil {
			return nil, err
		}
		info.Elements = append(info.Elements, el)
	}
	return info, nil
}

func fromElement(name, path string, ed *r4.ElementDefinition) (meta.ElementInfo, error) {
	el := meta.ElementInfo{
		Name:     strings.TrimSuffix(name, "[x]"),
		Max:      deref(ed.Max),
		Summary:  deref(ed.IsSummary),
		Modifier: deref(ed.IsModifier),
	}
	if ed.Min != nil {
		el.Min = int(*ed.Min)
	}
	if el.Max == "" {
		el.Max = "1"
	} else if el.Max != "*" {
		if _, err := strconv.Atoi(el.Max); err != nil {
			return el, fmt.Errorf("element %s: invalid max %q", path, el.Max)
		}
	}

	for i := range ed.Type {
		code := deref(ed.Type[i].Code)
		if code == backboneElement {
			code = path
		}
		el.Types = append(el.Types, code)
		for _, target := range ed.Type[i].TargetProfile {
			el.Targets = append(el.Targets, reference.TypeFromProfile(target))
		}
	}

	if ed.Binding != nil {
		el.Binding = &meta.Binding{ValueSet: deref(ed.Binding.ValueSet)}
		if ed.Binding.Strength != nil {
			el.Binding.Strength = string(*ed.Binding.Strength)
		}
	}
	return el, nil
}

func fromConstraints(constraints []r4.ElementDefinitionConstraint) []meta.Constraint {
	if len(constraints) == 0 {
		return nil
	}
	out := make([]meta.Constraint, 0, len(constraints))
	for i := range constraints {
		con := &constraints[i]
		mc := meta.Constraint{
			Key:        deref(con.Key),
			Human:      deref(con.Human),
			Expression: deref(con.Expression),
			Severity:   issue.SeverityError,
		}
		if con.Severity != nil {
			mc.Severity = issue.Severity(*con.Severity)
		}
		out = append(out, mc)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// enum returns a pointer to s converted to the code type T.
func enum[T ~string](s string) *T {
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
