package visit

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/tss/ast"
)

// SelectorCache stores compiled selectors by their source text.
type SelectorCache interface {
	Get(text string) (*ast.OrSelector, bool)
	Put(text string, selector *ast.OrSelector)
}

// NewSelectorCache creates the default selector cache. Entries are added on
// first use and never evicted.
//
// The cache does not lock; callers sharing it between goroutines have to
// serialize access.
func NewSelectorCache() SelectorCache {
	return mapCache{}
}

type mapCache map[string]*ast.OrSelector

func (c mapCache) Get(text string) (*ast.OrSelector, bool) {
	sel, ok := c[text]
	return sel, ok
}

func (c mapCache) Put(text string, selector *ast.OrSelector) {
	c[text] = selector
}

// NewBoundedCache creates a selector cache holding at most max entries.
// When full, the least recently used entry is evicted. max < 1 is treated
// as 1.
//
// The bounded cache is safe for concurrent use.
func NewBoundedCache(max int) SelectorCache {
	if max < 1 {
		max = 1
	}
	c, err := lru.New[string, *ast.OrSelector](max)
	if err != nil {
		panic(err) // lru rejects sizes < 1 only
	}
	return lruCache{c}
}

type lruCache struct {
	c *lru.Cache[string, *ast.OrSelector]
}

func (c lruCache) Get(text string) (*ast.OrSelector, bool) {
	return c.c.Get(text)
}

func (c lruCache) Put(text string, selector *ast.OrSelector) {
	c.c.Add(text, selector)
}
