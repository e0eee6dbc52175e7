package model

import (
	"errors"
	"strings"
	"testing"
)

type leaf struct {
	value string
}

func (l *leaf) TypeName() string { return "string" }
func (l *leaf) Accept(name string, index int, v Visitor) {
	Traverse(name, index, l, []Field{Value("value", l.value)}, v)
}

type node struct {
	id       string
	title    *leaf
	items    []*leaf
	choice   Element
	children []*node
}

func (n *node) TypeName() string { return "Node" }
func (n *node) Fields() []Field {
	return []Field{
		ID(n.id),
		One("title", n.title),
		Many("item", n.items),
		Choice("value", n.choice),
		Many("child", n.children),
	}
}
func (n *node) Accept(name string, index int, v Visitor) {
	Traverse(name, index, n, n.Fields(), v)
}

type recorder struct {
	DefaultVisitor
	events []string
	skip   string
}

func (r *recorder) VisitStart(name string, index int, node Element) {
	r.events = append(r.events, "start:"+name)
}
func (r *recorder) Visit(name string, index int, node Element) bool {
	return r.skip == "" || name != r.skip
}
func (r *recorder) VisitValue(name string, value any) {
	r.events = append(r.events, "value:"+name)
}
func (r *recorder) VisitEnd(name string, index int, node Element) {
	r.events = append(r.events, "end:"+name)
}

func sample() *node {
	return &node{
		id:     "n1",
		title:  &leaf{"t"},
		items:  []*leaf{{"a"}, {"b"}},
		choice: &leaf{"c"},
	}
}

func TestTraverseOrder(t *testing.T) {
	r := &recorder{}
	Walk(sample(), r)

	want := []string{
		"start:", "value:id",
		"start:title", "value:value", "end:title",
		"start:item", "value:value", "end:item",
		"start:item", "value:value", "end:item",
		"start:valueString", "value:value", "end:valueString",
		"end:",
	}
	if got := strings.Join(r.events, " "); got != strings.Join(want, " ") {
		t.Errorf("events = %v\nwant %v", r.events, want)
	}
}

func TestTraverseSkipsChildren(t *testing.T) {
	r := &recorder{skip: "title"}
	Walk(sample(), r)
	for i, e := range r.events {
		if e == "start:title" && r.events[i+1] != "end:title" {
			t.Errorf("children of title were visited: %v", r.events)
		}
	}
}

func TestManyKeepsNilEntries(t *testing.T) {
	f := Many("item", []*leaf{{"a"}, nil})
	if f.Len() != 2 || f.Nodes()[1] != nil {
		t.Fatalf("Len() = %d, nodes = %v", f.Len(), f.Nodes())
	}

	r := &recorder{}
	Walk(&node{items: []*leaf{nil, {"a"}}}, r)
	if strings.Count(strings.Join(r.events, " "), "start:item") != 1 {
		t.Errorf("nil entries must not be visited: %v", r.events)
	}
}

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantEmpty bool
		wantName  string
	}{
		{"empty id", ID(""), true, "id"},
		{"id", ID("x"), false, "id"},
		{"nil single", One[leaf]("title", nil), true, "title"},
		{"empty list", Many[leaf]("item", nil), true, "item"},
		{"nil choice", Choice("value", (*leaf)(nil)), true, "value"},
		{"choice", Choice("value", &leaf{"v"}), false, "valueString"},
		{"zero value", Value("value", false), false, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Empty(); got != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.field.ElementName(); got != tt.wantName {
				t.Errorf("ElementName() = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	a, b := sample(), sample()
	if !Equal(a, b) || Hash(a) != Hash(b) {
		t.Fatal("identical trees must be equal with equal hashes")
	}

	reordered := sample()
	reordered.items = []*leaf{{"b"}, {"a"}}
	if Equal(a, reordered) {
		t.Error("list order must matter")
	}
	if Hash(a) == Hash(reordered) {
		t.Error("hash should differ for reordered lists")
	}

	moved := sample()
	moved.title = nil
	moved.items = append([]*leaf{{"t"}}, moved.items...)
	if Equal(a, moved) {
		t.Error("a value moved to another element must not compare equal")
	}

	if !Equal(nil, (*node)(nil)) || Equal(a, nil) {
		t.Error("nil handling wrong")
	}
}

func TestHashCache(t *testing.T) {
	var c HashCache
	calls := 0
	compute := func() uint64 { calls++; return 0 }
	if got := c.Get(compute); got != 1 {
		t.Errorf("zero hash should map to 1, got %d", got)
	}
	c.Get(compute)
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestStaging(t *testing.T) {
	var s Staging
	if s.Err() != nil {
		t.Fatal("fresh staging must have no error")
	}
	s.RejectNil("Citation", "author")
	var nce *NilCollectionError
	if !errors.As(s.Err(), &nce) || nce.Field != "author" {
		t.Fatalf("Err() = %v", s.Err())
	}
	if !strings.Contains(s.Err().Error(), "Citation.author") {
		t.Errorf("message = %q", s.Err().Error())
	}
}

func TestDescendants(t *testing.T) {
	root := sample()
	root.children = []*node{{id: "c", title: &leaf{"x"}}}

	var paths []string
	for _, l := range Descendants(root) {
		paths = append(paths, l.Path)
	}
	want := []string{
		"Node",
		"Node.title",
		"Node.item[0]",
		"Node.item[1]",
		"Node.valueString",
		"Node.child[0]",
		"Node.child[0].title",
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("paths = %v\nwant %v", paths, want)
	}
}

func TestUpperFirst(t *testing.T) {
	for in, want := range map[string]string{"": "", "string": "String", "CodeableConcept": "CodeableConcept"} {
		if got := UpperFirst(in); got != want {
			t.Errorf("UpperFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestChoiceValue(t *testing.T) {
	if got := ChoiceValue((*leaf)(nil)); got != nil {
		t.Errorf("ChoiceValue(typed nil) = %v, want nil", got)
	}
	if got := ChoiceValue(nil); got != nil {
		t.Errorf("ChoiceValue(nil) = %v, want nil", got)
	}
	l := &leaf{"x"}
	if got := ChoiceValue(l); got != Element(l) {
		t.Errorf("ChoiceValue(l) = %v, want %v", got, l)
	}
}
