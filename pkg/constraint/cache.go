package constraint

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gofhir/fhirpath"
)

// DefaultCacheSize is the number of compiled expressions kept when no size
// is given.
const DefaultCacheSize = 256

// compiled is a cached compilation result. Failed compilations are cached
// too so that a broken expression is reported without recompiling it.
type compiled struct {
	expr *fhirpath.Expression
	err  error
}

type entry struct {
	key     string
	value   compiled
	element *list.Element
}

// ExpressionCache is a thread-safe LRU of compiled FHIRPath expressions.
type ExpressionCache struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
}

// NewExpressionCache creates a cache holding up to capacity expressions.
func NewExpressionCache(capacity int) *ExpressionCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &ExpressionCache{
		items:    make(map[string]*entry, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Compile returns the compiled form of expr, compiling it on first use.
func (c *ExpressionCache) Compile(expr string) (*fhirpath.Expression, error) {
	c.mu.Lock()
	if e, ok := c.items[expr]; ok {
		c.order.MoveToFront(e.element)
		c.mu.Unlock()
		c.hits.Add(1)
		return e.value.expr, e.value.err
	}
	c.mu.Unlock()
	c.misses.Add(1)

	compiledExpr, err := fhirpath.Compile(expr)
	value := compiled{expr: compiledExpr, err: err}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[expr]; ok {
		// Another goroutine compiled it first.
		c.order.MoveToFront(e.element)
		return e.value.expr, e.value.err
	}
	if len(c.items) >= c.capacity {
		c.evictOldest()
	}
	e := &entry{key: expr, value: value}
	e.element = c.order.PushFront(e)
	c.items[expr] = e
	return compiledExpr, err
}

// evictOldest removes the least recently used item. Must be called with
// mu held.
func (c *ExpressionCache) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	e := oldest.Value.(*entry)
	delete(c.items, e.key)
	c.order.Remove(oldest)
	c.evicts.Add(1)
}

// Len returns the number of cached expressions.
func (c *ExpressionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes every cached expression. Counters are kept.
func (c *ExpressionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*entry, c.capacity)
	c.order.Init()
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Size     int     `json:"size" yaml:"size"`
	Capacity int     `json:"capacity" yaml:"capacity"`
	Hits     uint64  `json:"hits" yaml:"hits"`
	Misses   uint64  `json:"misses" yaml:"misses"`
	Evicts   uint64  `json:"evicts" yaml:"evicts"`
	HitRate  float64 `json:"hitRate" yaml:"hitRate"`
}

// Stats returns cache statistics.
func (c *ExpressionCache) Stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return CacheStats{
		Size:     c.Len(),
		Capacity: c.capacity,
		Hits:     hits,
		Misses:   misses,
		Evicts:   c.evicts.Load(),
		HitRate:  hitRate,
	}
}
