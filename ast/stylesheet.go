package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Stylesheet is an ordered list of top-level declarations. The index of a
// declaration is significant: it is the first component of a rule path
// (see StatementAt).
type Stylesheet struct {
	declarations []Declaration
}

// NewStylesheet creates a stylesheet from a list of declarations.
func NewStylesheet(declarations ...Declaration) *Stylesheet {
	return &Stylesheet{declarations: append([]Declaration(nil), declarations...)}
}

// Len returns the number of top-level declarations.
func (sheet *Stylesheet) Len() int {
	return len(sheet.declarations)
}

// Declarations returns a copy of the top-level declarations.
func (sheet *Stylesheet) Declarations() []Declaration {
	return append([]Declaration(nil), sheet.declarations...)
}

// ContainsScripts is true if any declaration contains script code, either as
// a script declaration or as a script selector.
func (sheet *Stylesheet) ContainsScripts() bool {
	for _, d := range sheet.declarations {
		if d.ContainsScripts() {
			return true
		}
	}
	return false
}

// StatementAt locates a statement by its path. The first index selects a
// top-level declaration, every further index a statement nested within the
// style declaration selected so far.
func (sheet *Stylesheet) StatementAt(path ...int) (Statement, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty statement path")
	}
	if path[0] < 0 || path[0] >= len(sheet.declarations) {
		return nil, fmt.Errorf("no declaration at index %d", path[0])
	}
	var current Statement = sheet.declarations[path[0]]
	for i, n := range path[1:] {
		style, ok := current.(*StyleDeclaration)
		if !ok {
			return nil, fmt.Errorf("statement %s is not a style declaration", PathString(path[:i+1]))
		}
		if n < 0 || n >= len(style.statements) {
			return nil, fmt.Errorf("no statement at %s", PathString(path[:i+2]))
		}
		current = style.statements[n]
	}
	return current, nil
}

// PathString formats a statement path as dot-separated indices, e.g. "2.1.0".
func PathString(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Statement is one of
//
//   *AssignmentStatement, *ScriptDeclaration, *StyleDeclaration
//
type Statement interface {
	ContainsScripts() bool
	isStatement()
}

// Declaration is a statement which may occur at the top level of a
// stylesheet, i.e. *ScriptDeclaration or *StyleDeclaration.
type Declaration interface {
	Statement
	isDeclaration()
}

// AssignmentStatement sets a property ("key: value;").
type AssignmentStatement struct {
	key, value string
}

// Assignment creates an assignment statement.
func Assignment(key, value string) *AssignmentStatement {
	return &AssignmentStatement{key: key, value: value}
}

// Key returns the property key.
func (a *AssignmentStatement) Key() string { return a.key }

// Value returns the property value.
func (a *AssignmentStatement) Value() string { return a.value }

// ContainsScripts is false.
func (a *AssignmentStatement) ContainsScripts() bool { return false }

func (a *AssignmentStatement) isStatement() {}

// ScriptDeclaration is opaque script code.
type ScriptDeclaration struct {
	script string
}

// ScriptCode creates a script declaration.
func ScriptCode(script string) *ScriptDeclaration {
	return &ScriptDeclaration{script: script}
}

// Script returns the code.
func (s *ScriptDeclaration) Script() string { return s.script }

// ContainsScripts is true.
func (s *ScriptDeclaration) ContainsScripts() bool { return true }

func (s *ScriptDeclaration) isStatement()   {}
func (s *ScriptDeclaration) isDeclaration() {}

// StyleDeclaration is a rule: a selector and a block of statements, which
// are applied to every node matching the selector.
type StyleDeclaration struct {
	selector   *OrSelector
	statements []Statement
}

// Style creates a style declaration.
func Style(selector *OrSelector, statements ...Statement) *StyleDeclaration {
	return &StyleDeclaration{
		selector:   selector,
		statements: append([]Statement(nil), statements...),
	}
}

// Selector returns the selector of the rule.
func (s *StyleDeclaration) Selector() *OrSelector { return s.selector }

// Len returns the number of nested statements.
func (s *StyleDeclaration) Len() int { return len(s.statements) }

// Statements returns a copy of the nested statements.
func (s *StyleDeclaration) Statements() []Statement {
	return append([]Statement(nil), s.statements...)
}

// ContainsScripts is true if the selector or any nested statement contains
// script code.
func (s *StyleDeclaration) ContainsScripts() bool {
	if s.selector.ContainsScripts() {
		return true
	}
	for _, st := range s.statements {
		if st.ContainsScripts() {
			return true
		}
	}
	return false
}

func (s *StyleDeclaration) isStatement()   {}
func (s *StyleDeclaration) isDeclaration() {}
