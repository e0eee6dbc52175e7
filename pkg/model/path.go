package model

import (
	"strconv"
	"strings"
)

// Path tracks the location of the element being visited, rendered as a
// FHIRPath-like expression such as "Citation.citedArtifact.title[1]".
type Path struct {
	segments []string
}

// Push enters node. A root element (empty name) contributes its type name.
func (p *Path) Push(name string, index int, node Element) {
	seg := name
	if seg == "" {
		seg = node.TypeName()
	}
	if index >= 0 {
		seg += "[" + strconv.Itoa(index) + "]"
	}
	p.segments = append(p.segments, seg)
}

// Pop leaves the current element.
func (p *Path) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Depth returns the number of entered elements.
func (p *Path) Depth() int { return len(p.segments) }

// String renders the path.
func (p *Path) String() string {
	return strings.Join(p.segments, ".")
}

// Child renders the path of a child of the current element.
func (p *Path) Child(name string) string {
	if len(p.segments) == 0 {
		return name
	}
	return p.String() + "." + name
}

// Located is an element paired with its path from the walk root.
type Located struct {
	Path    string
	Name    string
	Index   int
	Element Element
}

type collector struct {
	DefaultVisitor
	path  Path
	nodes []Located
}

func (c *collector) VisitStart(name string, index int, node Element) {
	c.path.Push(name, index, node)
	c.nodes = append(c.nodes, Located{Path: c.path.String(), Name: name, Index: index, Element: node})
}

func (c *collector) VisitEnd(string, int, Element) {
	c.path.Pop()
}

// Descendants returns root and every element below it in traversal order.
func Descendants(root Element) []Located {
	c := &collector{DefaultVisitor: DefaultVisitor{VisitChildren: true}}
	Walk(root, c)
	return c.nodes
}
