package model

// Visitor receives the traversal callbacks of Accept.
//
// For every element the walk calls PreVisit; when it returns true the walk
// continues with VisitStart and Visit. Visit decides whether the children of
// the element are walked. VisitEnd and PostVisit close every element that
// passed PreVisit, whether or not its children were walked.
type Visitor interface {
	PreVisit(node Element) bool
	VisitStart(name string, index int, node Element)
	Visit(name string, index int, node Element) bool

	// VisitValue receives raw Go values held by the current element:
	// element ids, extension urls and primitive values.
	VisitValue(name string, value any)

	VisitEnd(name string, index int, node Element)
	PostVisit(node Element)
}

// DefaultVisitor implements Visitor with no-op callbacks. Embed it and
// override the callbacks of interest.
type DefaultVisitor struct {
	// VisitChildren is returned by Visit.
	VisitChildren bool
}

// PreVisit accepts every element.
func (DefaultVisitor) PreVisit(Element) bool { return true }

// VisitStart does nothing.
func (DefaultVisitor) VisitStart(string, int, Element) {}

// Visit returns VisitChildren.
func (d DefaultVisitor) Visit(string, int, Element) bool { return d.VisitChildren }

// VisitValue does nothing.
func (DefaultVisitor) VisitValue(string, any) {}

// VisitEnd does nothing.
func (DefaultVisitor) VisitEnd(string, int, Element) {}

// PostVisit does nothing.
func (DefaultVisitor) PostVisit(Element) {}

// Traverse runs the accept protocol for node using its declared fields.
// Element types implement Accept by calling Traverse with their slots in
// declaration order.
func Traverse(name string, index int, node Element, fields []Field, v Visitor) {
	if !v.PreVisit(node) {
		return
	}
	v.VisitStart(name, index, node)
	if v.Visit(name, index, node) {
		for i := range fields {
			fields[i].accept(v)
		}
	}
	v.VisitEnd(name, index, node)
	v.PostVisit(node)
}

// Walk visits a root element with an empty name.
func Walk(root Element, v Visitor) {
	if root == nil || isNil(root) {
		return
	}
	root.Accept("", -1, v)
}
