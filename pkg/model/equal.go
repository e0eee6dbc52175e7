package model

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// tokenizer flattens an element tree into an ordered token stream. Two
// elements are structurally equal when their streams are equal: traversal
// order is fixed, so the stream captures every value, its position and the
// order of repeating elements.
type tokenizer struct {
	DefaultVisitor
	tokens []string
}

func newTokenizer() *tokenizer {
	return &tokenizer{DefaultVisitor: DefaultVisitor{VisitChildren: true}}
}

func (t *tokenizer) VisitStart(name string, index int, node Element) {
	t.tokens = append(t.tokens, "<"+name+"["+strconv.Itoa(index)+"]"+node.TypeName())
}

func (t *tokenizer) VisitValue(name string, value any) {
	t.tokens = append(t.tokens, name+"="+fmt.Sprint(value))
}

func (t *tokenizer) VisitEnd(string, int, Element) {
	t.tokens = append(t.tokens, ">")
}

func tokens(e Element) []string {
	t := newTokenizer()
	Walk(e, t)
	return t.tokens
}

// Equal reports whether a and b are structurally equal. Repeating elements
// compare in order.
func Equal(a, b Element) bool {
	aNil, bNil := a == nil || isNil(a), b == nil || isNil(b)
	if aNil || bNil {
		return aNil == bNil
	}
	if a.TypeName() != b.TypeName() {
		return false
	}
	ta, tb := tokens(a), tokens(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of e consistent with Equal.
func Hash(e Element) uint64 {
	if e == nil || isNil(e) {
		return 0
	}
	d := xxhash.New()
	for _, tok := range tokens(e) {
		_, _ = d.WriteString(tok)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// HashCache memoizes the hash of an immutable element. The zero value is
// ready to use.
type HashCache struct {
	v atomic.Uint64
}

// Get returns the cached hash, computing it on first use.
func (c *HashCache) Get(compute func() uint64) uint64 {
	if h := c.v.Load(); h != 0 {
		return h
	}
	h := compute()
	if h == 0 {
		// zero marks an empty cache
		h = 1
	}
	c.v.Store(h)
	return h
}
