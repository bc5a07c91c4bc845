package ast

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScriptReplacer may be handed to Serialize to substitute script selectors.
// If it is nil, script selectors serialize as <?expression?>.
type ScriptReplacer func(*ScriptSelector) string

// --- Or --------------------------------------------------------------------

// OrSelector matches a node if any of its containment selectors matches.
type OrSelector struct {
	lines []*ContainmentSelector
}

// NewOrSelector creates a disjunction of containment selectors.
func NewOrSelector(lines ...*ContainmentSelector) (*OrSelector, error) {
	if len(lines) == 0 {
		return nil, ErrEmptySelector
	}
	return &OrSelector{lines: append([]*ContainmentSelector(nil), lines...)}, nil
}

// Len returns the number of containment selectors ("lines").
func (or *OrSelector) Len() int {
	return len(or.lines)
}

// Line returns containment selector no. i.
func (or *OrSelector) Line(i int) *ContainmentSelector {
	return or.lines[i]
}

// ContainmentSelectors returns a copy of the list of containment selectors.
func (or *OrSelector) ContainmentSelectors() []*ContainmentSelector {
	return append([]*ContainmentSelector(nil), or.lines...)
}

// ContainsScripts is true if any part of the selector is a script selector.
func (or *OrSelector) ContainsScripts() bool {
	for _, c := range or.lines {
		if c.ContainsScripts() {
			return true
		}
	}
	return false
}

// Serialize returns TSS syntax for the selector.
func (or *OrSelector) Serialize(replace ScriptReplacer) string {
	parts := make([]string, len(or.lines))
	for i, c := range or.lines {
		parts[i] = c.Serialize(replace)
	}
	return strings.Join(parts, ", ")
}

func (or *OrSelector) String() string {
	return or.Serialize(nil)
}

// --- Containment -----------------------------------------------------------

// ContainmentSelector is a chain of and-selectors, where each one has to
// match a descendant of a node matched by its predecessor.
type ContainmentSelector struct {
	ands []*AndSelector
}

// NewContainmentSelector creates a descendant chain of and-selectors. Only
// the first and-selector may carry a context selector.
func NewContainmentSelector(ands ...*AndSelector) (*ContainmentSelector, error) {
	if len(ands) == 0 {
		return nil, ErrEmptySelector
	}
	for i, a := range ands {
		if a == nil {
			return nil, ErrEmptySelector
		}
		if i > 0 && a.HasContextSelector() {
			return nil, ErrMisplacedContext
		}
	}
	return &ContainmentSelector{ands: append([]*AndSelector(nil), ands...)}, nil
}

// Len returns the number of and-selectors of the chain.
func (c *ContainmentSelector) Len() int {
	return len(c.ands)
}

// At returns and-selector no. i.
func (c *ContainmentSelector) At(i int) *AndSelector {
	return c.ands[i]
}

// AndSelectors returns a copy of the chain.
func (c *ContainmentSelector) AndSelectors() []*AndSelector {
	return append([]*AndSelector(nil), c.ands...)
}

// ContainsScripts is true if any part of the selector is a script selector.
func (c *ContainmentSelector) ContainsScripts() bool {
	for _, a := range c.ands {
		if a.ContainsScripts() {
			return true
		}
	}
	return false
}

// Serialize returns TSS syntax for the selector.
func (c *ContainmentSelector) Serialize(replace ScriptReplacer) string {
	parts := make([]string, len(c.ands))
	for i, a := range c.ands {
		parts[i] = a.Serialize(replace)
	}
	return strings.Join(parts, " ")
}

// --- And -------------------------------------------------------------------

// AndSelector matches a node if all of its element selectors match it.
type AndSelector struct {
	elements   []ElementSelector
	typeSel    string
	hasContext bool
}

// NewAndSelector creates a conjunction of element selectors.
func NewAndSelector(elements ...ElementSelector) (*AndSelector, error) {
	if len(elements) == 0 {
		return nil, ErrEmptySelector
	}
	and := &AndSelector{elements: append([]ElementSelector(nil), elements...)}
	for _, e := range and.elements {
		switch sel := e.(type) {
		case *IdentifierSelector:
			if and.typeSel == "" && startsWithLetter(sel.identifier) {
				and.typeSel = sel.identifier
			}
		case *ContextSelector:
			and.hasContext = true
		}
	}
	return and, nil
}

// Len returns the number of element selectors.
func (a *AndSelector) Len() int {
	return len(a.elements)
}

// At returns element selector no. i.
func (a *AndSelector) At(i int) ElementSelector {
	return a.elements[i]
}

// ElementSelectors returns a copy of the element selectors.
func (a *AndSelector) ElementSelectors() []ElementSelector {
	return append([]ElementSelector(nil), a.elements...)
}

// TypeSelector returns the first identifier of the conjunction starting with
// a letter, or "" if there is none. Tree hosts may use it as a hint for the
// type of nodes the selector can match.
func (a *AndSelector) TypeSelector() string {
	return a.typeSel
}

// HasContextSelector is true if one of the element selectors is '&'.
func (a *AndSelector) HasContextSelector() bool {
	return a.hasContext
}

// ContainsScripts is true if any element is a script selector.
func (a *AndSelector) ContainsScripts() bool {
	for _, e := range a.elements {
		if e.ContainsScripts() {
			return true
		}
	}
	return false
}

// Serialize returns TSS syntax for the selector.
func (a *AndSelector) Serialize(replace ScriptReplacer) string {
	parts := make([]string, len(a.elements))
	for i, e := range a.elements {
		parts[i] = e.Serialize(replace)
	}
	return strings.Join(parts, "^")
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

// --- Element selectors -----------------------------------------------------

// ElementSelector is a test on a single node. It is one of
//
//   *IdentifierSelector, *AnySelector, *ContextSelector, *NotSelector,
//   *ScriptSelector, *CallbackSelector
//
type ElementSelector interface {
	ContainsScripts() bool
	Serialize(ScriptReplacer) string
	isElementSelector()
}

// IdentifierSelector matches nodes for which the host reports a match of
// the identifier (a class, a type, an id, a position, …).
type IdentifierSelector struct {
	identifier string
}

// Identifier creates an identifier selector.
func Identifier(id string) *IdentifierSelector {
	return &IdentifierSelector{identifier: id}
}

// Identifier returns the raw identifier.
func (s *IdentifierSelector) Identifier() string { return s.identifier }

// ContainsScripts is false.
func (s *IdentifierSelector) ContainsScripts() bool { return false }

// Serialize quotes the identifier, doubling enclosed quotes.
func (s *IdentifierSelector) Serialize(ScriptReplacer) string {
	return "'" + strings.ReplaceAll(s.identifier, "'", "''") + "'"
}

func (s *IdentifierSelector) isElementSelector() {}

// AnySelector matches every node.
type AnySelector struct{}

// Any creates a wildcard selector.
func Any() *AnySelector { return &AnySelector{} }

// ContainsScripts is false.
func (s *AnySelector) ContainsScripts() bool { return false }

// Serialize returns "*".
func (s *AnySelector) Serialize(ScriptReplacer) string { return "*" }

func (s *AnySelector) isElementSelector() {}

// ContextSelector matches the root node of a traversal only.
type ContextSelector struct{}

// Context creates a context anchor.
func Context() *ContextSelector { return &ContextSelector{} }

// ContainsScripts is false.
func (s *ContextSelector) ContainsScripts() bool { return false }

// Serialize returns "&".
func (s *ContextSelector) Serialize(ScriptReplacer) string { return "&" }

func (s *ContextSelector) isElementSelector() {}

// NotSelector negates an identifier, script or callback selector.
type NotSelector struct {
	inner ElementSelector
}

// Not creates the negation of a selector. Negating a negation, a wildcard or
// a context anchor is an error.
func Not(inner ElementSelector) (*NotSelector, error) {
	switch inner.(type) {
	case nil, *NotSelector, *AnySelector, *ContextSelector:
		return nil, ErrInvalidNegation
	}
	return &NotSelector{inner: inner}, nil
}

// Inner returns the negated selector.
func (s *NotSelector) Inner() ElementSelector { return s.inner }

// ContainsScripts reports on the inner selector.
func (s *NotSelector) ContainsScripts() bool { return s.inner.ContainsScripts() }

// Serialize prefixes the inner selector with "!".
func (s *NotSelector) Serialize(replace ScriptReplacer) string {
	return "!" + s.inner.Serialize(replace)
}

func (s *NotSelector) isElementSelector() {}

// ScriptSelector is a predicate given as script code. It cannot be matched
// directly; the script compiler lowers it to a callback selector.
type ScriptSelector struct {
	expression string
}

// Script creates a script selector from an expression.
func Script(expression string) *ScriptSelector {
	return &ScriptSelector{expression: expression}
}

// Expression returns the script code.
func (s *ScriptSelector) Expression() string { return s.expression }

// ContainsScripts is true.
func (s *ScriptSelector) ContainsScripts() bool { return true }

// Serialize calls replace, if present, or returns <?expression?>.
func (s *ScriptSelector) Serialize(replace ScriptReplacer) string {
	if replace != nil {
		return replace(s)
	}
	return "<?" + s.expression + "?>"
}

func (s *ScriptSelector) isElementSelector() {}

// CallbackSelector refers to a predicate by index. The predicate table is
// supplied by the caller at match time.
type CallbackSelector struct {
	id int
}

// Callback creates a callback selector for predicate no. id.
func Callback(id int) *CallbackSelector {
	return &CallbackSelector{id: id}
}

// ID returns the predicate index.
func (s *CallbackSelector) ID() int { return s.id }

// ContainsScripts is false: callbacks are resolved by the caller.
func (s *CallbackSelector) ContainsScripts() bool { return false }

// Serialize returns <{id}>.
func (s *CallbackSelector) Serialize(ScriptReplacer) string {
	return "<{" + strconv.Itoa(s.id) + "}>"
}

func (s *CallbackSelector) isElementSelector() {}

// --- Helpers for building selectors in code --------------------------------

// Must is a helper for constructing AST nodes from code known to be valid.
// It panics if err is not nil.
func Must[T any](x T, err error) T {
	if err != nil {
		tracer().Errorf("ast construction: %v", err)
		panic(err)
	}
	return x
}
