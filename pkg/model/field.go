package model

import (
	"reflect"
	"strings"
)

type fieldKind uint8

const (
	kindSingle fieldKind = iota
	kindList
	kindValue
)

// Field is one declared child slot of an element, captured in declaration
// order. The same slots drive both traversal and structural validation.
type Field struct {
	// Name is the element name without any choice suffix.
	Name string

	// Type is the FHIR type of the value held by a choice element.
	Type string

	// Choice marks a polymorphic element such as value[x].
	Choice bool

	kind  fieldKind
	nodes []Element
	value any
	set   bool
}

// ID returns the slot for an element id. An empty id is absent.
func ID(id string) Field {
	return Text("id", id)
}

// Text returns a raw string slot that is absent when s is empty.
func Text(name, s string) Field {
	f := Field{Name: name, kind: kindValue}
	if s != "" {
		f.value = s
		f.set = true
	}
	return f
}

// Value returns a raw value slot that is always present.
func Value(name string, v any) Field {
	return Field{Name: name, kind: kindValue, value: v, set: true}
}

// One returns the slot for a single-valued element. A nil node is absent.
func One[T any, P interface {
	*T
	Element
}](name string, node P) Field {
	f := Field{Name: name, kind: kindSingle}
	if node != nil {
		f.nodes = []Element{node}
	}
	return f
}

// Many returns the slot for a repeating element. Nil entries are kept so
// that validation can report them; traversal skips them.
func Many[T any, P interface {
	*T
	Element
}](name string, list []P) Field {
	f := Field{Name: name, kind: kindList}
	if len(list) == 0 {
		return f
	}
	f.nodes = make([]Element, len(list))
	for i, node := range list {
		if node != nil {
			f.nodes[i] = node
		}
	}
	return f
}

// Choice returns the slot for a polymorphic element holding node.
func Choice(name string, node Element) Field {
	f := Field{Name: name, Choice: true, kind: kindSingle}
	if node != nil && !isNil(node) {
		f.nodes = []Element{node}
		f.Type = node.TypeName()
	}
	return f
}

// ChoiceValue returns v, or nil when v is a typed nil pointer, so that a
// choice slot set from one is empty.
func ChoiceValue(v Element) Element {
	if isNil(v) {
		return nil
	}
	return v
}

// Resources returns the slot for a repeating resource element such as
// DomainResource.contained.
func Resources[R Resource](name string, list []R) Field {
	f := Field{Name: name, kind: kindList}
	if len(list) == 0 {
		return f
	}
	f.nodes = make([]Element, len(list))
	for i, r := range list {
		if !isNil(r) {
			f.nodes[i] = r
		}
	}
	return f
}

// IsList reports whether the slot repeats.
func (f Field) IsList() bool { return f.kind == kindList }

// IsValue reports whether the slot holds a raw Go value.
func (f Field) IsValue() bool { return f.kind == kindValue }

// Empty reports whether the slot holds nothing.
func (f Field) Empty() bool {
	if f.kind == kindValue {
		return !f.set
	}
	return len(f.nodes) == 0
}

// Len returns the number of entries, nil entries included.
func (f Field) Len() int {
	if f.kind == kindValue {
		if f.set {
			return 1
		}
		return 0
	}
	return len(f.nodes)
}

// Nodes returns the element entries of the slot. Entries may be nil.
func (f Field) Nodes() []Element { return f.nodes }

// RawValue returns the raw Go value of a value slot.
func (f Field) RawValue() (any, bool) { return f.value, f.set }

// ElementName returns the serialized name: choice elements carry their
// type as a suffix (valueString, versionAlgorithmCoding).
func (f Field) ElementName() string {
	if f.Choice && f.Type != "" {
		return f.Name + UpperFirst(f.Type)
	}
	return f.Name
}

func (f *Field) accept(v Visitor) {
	switch f.kind {
	case kindValue:
		if f.set {
			v.VisitValue(f.Name, f.value)
		}
	case kindList:
		name := f.ElementName()
		for i, node := range f.nodes {
			if node != nil {
				node.Accept(name, i, v)
			}
		}
	default:
		if len(f.nodes) == 1 && f.nodes[0] != nil {
			f.nodes[0].Accept(f.ElementName(), -1, v)
		}
	}
}

// UpperFirst upper-cases the first byte of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// isNil reports whether an interface holds a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Number is a decimal literal that keeps its lexical form, so "1.50" and
// "1.5" stay distinct.
type Number string
