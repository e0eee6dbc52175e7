// Package codec writes model elements as FHIR JSON.
//
// The writer walks an element with a model.Visitor and builds an ordered
// document: resourceType first, then the elements in declaration order.
// Primitive ids and extensions go to the "_name" companion property, and
// repeating primitives keep their companion arrays aligned with nulls.
package codec

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pkg/model"
)

// Marshal returns the FHIR JSON form of e. Resources carry their
// resourceType; other elements marshal as the object they would be
// inside a resource.
func Marshal(e model.Element) ([]byte, error) {
	doc, err := Document(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(e model.Element, prefix, indent string) ([]byte, error) {
	b, err := Marshal(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, fmt.Errorf("indent %s: %w", e.TypeName(), err)
	}
	return buf.Bytes(), nil
}

// Document returns the ordered JSON document of e without encoding it.
// The result is an *Object for resources and complex elements and a
// JSON scalar for primitives.
func Document(e model.Element) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("codec: nil element")
	}
	w := &writer{DefaultVisitor: model.DefaultVisitor{VisitChildren: true}}
	model.Walk(e, w)
	if w.err != nil {
		return nil, w.err
	}
	return w.root, nil
}

type frame struct {
	obj      *Object
	prim     bool
	value    any
	hasValue bool
}

type writer struct {
	model.DefaultVisitor
	stack []*frame
	root  any
	err   error
}

func (w *writer) VisitStart(name string, index int, node model.Element) {
	f := &frame{obj: NewObject()}
	if _, ok := node.(model.Primitive); ok {
		f.prim = true
	}
	if r, ok := node.(model.Resource); ok {
		f.obj.Set("resourceType", r.ResourceType())
	}
	w.stack = append(w.stack, f)
}

func (w *writer) VisitValue(name string, value any) {
	f := w.stack[len(w.stack)-1]
	v, err := scalar(value)
	if err != nil && w.err == nil {
		w.err = fmt.Errorf("codec: %s: %w", name, err)
		return
	}
	if f.prim && name == "value" {
		f.value, f.hasValue = v, true
		return
	}
	f.obj.Set(name, v)
}

func (w *writer) VisitEnd(name string, index int, node model.Element) {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if len(w.stack) == 0 {
		if f.prim {
			w.root = f.value
			return
		}
		f.obj.prune()
		w.root = f.obj
		return
	}
	parent := w.stack[len(w.stack)-1].obj

	if !f.prim {
		f.obj.prune()
		if index < 0 {
			parent.Set(name, f.obj)
		} else {
			parent.Append(name, f.obj)
		}
		return
	}

	var companion any
	if f.obj.Len() > 0 {
		f.obj.prune()
		companion = f.obj
	}
	var value any
	if f.hasValue {
		value = f.value
	}
	if index < 0 {
		if f.hasValue {
			parent.Set(name, value)
		}
		if companion != nil {
			parent.Set("_"+name, companion)
		}
		return
	}
	parent.Append(name, value)
	parent.Append("_"+name, companion)
}

// scalar converts a raw model value to its JSON representation.
func scalar(v any) (any, error) {
	switch x := v.(type) {
	case string, bool, int32:
		return x, nil
	case int:
		return x, nil
	case int64:
		// integer64 is a JSON string
		return strconv.FormatInt(x, 10), nil
	case model.Number:
		return json.RawMessage(x), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
