package visit

import (
	"reflect"

	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/selectable"
)

// Callback is called for every node matched by a selector. parent is nil for
// the root of the traversal. A non-nil error aborts the traversal and is
// returned to the caller.
type Callback func(current selectable.Selectable, parent selectable.Tree, root selectable.Selectable) error

// IndexedPredicate evaluates the callback selector with the given id for a
// node.
type IndexedPredicate func(id int, item selectable.Selectable) (bool, error)

// Engine matches selectors against host trees. The zero value is not
// usable; create engines with New.
type Engine struct {
	cache   SelectorCache
	pruning bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache sets the cache for selectors compiled from text.
func WithCache(cache SelectorCache) Option {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithoutPruning makes the engine ignore structural hints of hosts. Results
// are unaffected.
func WithoutPruning() Option {
	return func(e *Engine) {
		e.pruning = false
	}
}

// New creates a matching engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		cache:   NewSelectorCache(),
		pruning: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Visit traverses root with the package's default engine.
// See Engine.Visit.
func Visit(root selectable.Selectable, selector *ast.OrSelector, cb Callback, predicates IndexedPredicate) error {
	return defaultEngine.Visit(root, selector, cb, predicates)
}

// VisitSelector compiles selector text and traverses root with the package's
// default engine. See Engine.VisitSelector.
func VisitSelector(root selectable.Selectable, selector string, cb Callback, predicates IndexedPredicate) error {
	return defaultEngine.VisitSelector(root, selector, cb, predicates)
}

// Compile parses selector text, consulting the engine's cache first.
// Parse errors are not cached.
func (e *Engine) Compile(selector string) (*ast.OrSelector, error) {
	if sel, ok := e.cache.Get(selector); ok {
		return sel, nil
	}
	sel, err := parser.ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	e.cache.Put(selector, sel)
	return sel, nil
}

// VisitSelector compiles selector text and calls cb for every node of the
// tree at root matched by it.
func (e *Engine) VisitSelector(root selectable.Selectable, selector string, cb Callback, predicates IndexedPredicate) error {
	sel, err := e.Compile(selector)
	if err != nil {
		return err
	}
	return e.Visit(root, sel, cb, predicates)
}

// Visit calls cb for every node of the tree at root matched by selector, in
// document order. Every node is reported at most once, even if matched by
// more than one line of selector. Callback selectors are evaluated with
// predicates, which may be nil for selectors without callbacks.
//
// The context selector '&' matches the node which is root (compared with
// ==); root therefore has to be of a comparable type, usually a pointer.
// Visit returns ErrIncomparableRoot otherwise.
func (e *Engine) Visit(root selectable.Selectable, selector *ast.OrSelector, cb Callback, predicates IndexedPredicate) error {
	if root == nil || selector == nil || selector.Len() == 0 {
		return nil
	}
	if !reflect.TypeOf(root).Comparable() {
		return ErrIncomparableRoot
	}
	m := &matcher{
		root:       root,
		callback:   cb,
		predicates: predicates,
		pruning:    e.pruning,
	}
	return m.visit(root, nil, newTracker(selector))
}

type matcher struct {
	root       selectable.Selectable
	callback   Callback
	predicates IndexedPredicate
	pruning    bool
}

func (m *matcher) visit(current selectable.Selectable, parent selectable.Tree, tr *tracker) error {
	pt, pruneable := current.(selectable.PruneableTree)
	pruneable = pruneable && m.pruning
	matched := false
	alive := 0
	for line := 0; line < tr.lines(); line++ {
		if tr.isPruned(line) {
			continue
		}
		terminal, and := tr.state(line)
		isMatch, err := m.matchAnd(current, and)
		if err != nil {
			return err
		}
		if isMatch && terminal {
			matched = true
		}
		if (!isMatch || terminal) && and.HasContextSelector() {
			// '&' matches the root only, no descendant can match this line
			tr.prune(line)
			continue
		}
		if pruneable && m.pruneByType(pt, tr, line, and, isMatch, terminal) {
			tr.prune(line)
			continue
		}
		if isMatch && !terminal {
			tr.advance(line)
		}
		alive++
	}
	if matched && m.callback != nil {
		if err := m.callback(current, parent, m.root); err != nil {
			return err
		}
	}
	if alive == 0 {
		return nil
	}
	tree, ok := current.(selectable.Tree)
	if !ok {
		return nil
	}
	for _, child := range tree.Children() {
		if child == nil {
			continue
		}
		if err := m.visit(child, tree, tr.clone()); err != nil {
			return err
		}
	}
	return nil
}

// pruneByType decides if a line can never match below a pruneable node.
// The tracker has not yet been advanced for the current node.
func (m *matcher) pruneByType(pt selectable.PruneableTree, tr *tracker, line int,
	and *ast.AndSelector, isMatch, terminal bool) bool {
	//
	if t := and.TypeSelector(); t != "" && pt.IsUniqueInPath() && pt.Matches(t) {
		// this node is the only one of its type along any path through it
		if !isMatch || terminal {
			return true
		}
	}
	rest := tr.remaining(line)
	if isMatch && !terminal {
		rest = rest[1:]
	}
	for _, and := range rest {
		if and.HasContextSelector() {
			return true
		}
		if t := and.TypeSelector(); t != "" && !pt.CanContainDescendant(t) {
			tracer().Debugf("prune line %d below node: cannot contain %q", line, t)
			return true
		}
	}
	return false
}

func (m *matcher) matchAnd(item selectable.Selectable, and *ast.AndSelector) (bool, error) {
	for i := 0; i < and.Len(); i++ {
		ok, err := m.matchElement(item, and.At(i))
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (m *matcher) matchElement(item selectable.Selectable, el ast.ElementSelector) (bool, error) {
	switch sel := el.(type) {
	case *ast.AnySelector:
		return true, nil
	case *ast.ContextSelector:
		return item == m.root, nil
	case *ast.IdentifierSelector:
		return item.Matches(sel.Identifier()), nil
	case *ast.NotSelector:
		ok, err := m.matchElement(item, sel.Inner())
		return !ok && err == nil, err
	case *ast.CallbackSelector:
		if m.predicates == nil {
			return false, ErrNoPredicates
		}
		return m.predicates(sel.ID(), item)
	case *ast.ScriptSelector:
		return false, ErrScriptSelector
	}
	tracer().Errorf("unknown element selector type %T", el)
	return false, nil
}
