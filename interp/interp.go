package interp

import (
	"fmt"

	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/selectable"
	"github.com/npillmayer/tss/visit"
)

// AsSelectable resolves a host object to a selectable node, or nil if the
// object cannot take part in styling.
type AsSelectable func(item any) selectable.Selectable

// Selectables is the default resolver: items have to implement
// selectable.Selectable themselves.
func Selectables(item any) selectable.Selectable {
	if s, ok := item.(selectable.Selectable); ok {
		return s
	}
	return nil
}

// Option configures a compiled stylesheet.
type Option func(*Stylesheet)

// WithEngine sets the matching engine. The default is an engine with
// default settings.
func WithEngine(e *visit.Engine) Option {
	return func(s *Stylesheet) {
		if e != nil {
			s.engine = e
		}
	}
}

// Stylesheet is a compiled, script-free stylesheet.
type Stylesheet struct {
	sheet        *ast.Stylesheet
	asSelectable AsSelectable
	engine       *visit.Engine
}

// Compile prepares a stylesheet for direct application. It fails with
// ErrScriptContent if the stylesheet contains scripts. If asSelectable is
// nil, Selectables is used.
func Compile(sheet *ast.Stylesheet, asSelectable AsSelectable, opts ...Option) (*Stylesheet, error) {
	if sheet == nil {
		sheet = ast.NewStylesheet()
	}
	if sheet.ContainsScripts() {
		return nil, ErrScriptContent
	}
	if asSelectable == nil {
		asSelectable = Selectables
	}
	s := &Stylesheet{
		sheet:        sheet,
		asSelectable: asSelectable,
		engine:       visit.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Stylesheet returns the stylesheet this was compiled from.
func (s *Stylesheet) Stylesheet() *ast.Stylesheet {
	return s.sheet
}

// Apply applies all declarations to the tree at root, in order. arg is
// unused by script-free stylesheets; the result is always nil.
func (s *Stylesheet) Apply(root any, arg any) (any, error) {
	item := s.asSelectable(root)
	if item == nil {
		tracer().Infof("root of type %T is not selectable, nothing styled", root)
		return nil, nil
	}
	for i, decl := range s.sheet.Declarations() {
		if err := Accept(s.engine, item, decl); err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
	}
	return nil, nil
}

// Accept applies a single statement to item:
//
//   an assignment sets the property on item, if item is selectable.Styleable
//   a style declaration applies its statements to every node below item
//   (item included) matched by its selector
//
// Script declarations cannot be applied and yield ErrScriptContent. A nil
// item is ignored; a nil engine selects visit.Default().
func Accept(engine *visit.Engine, item selectable.Selectable, statement ast.Statement) error {
	if item == nil {
		return nil
	}
	if engine == nil {
		engine = visit.Default()
	}
	switch st := statement.(type) {
	case *ast.AssignmentStatement:
		if styleable, ok := item.(selectable.Styleable); ok {
			styleable.Set(st.Key(), st.Value())
		}
		return nil
	case *ast.StyleDeclaration:
		return engine.Visit(item, st.Selector(), func(current selectable.Selectable, _ selectable.Tree, _ selectable.Selectable) error {
			for _, local := range st.Statements() {
				if err := Accept(engine, current, local); err != nil {
					return err
				}
			}
			return nil
		}, nil)
	case *ast.ScriptDeclaration:
		return ErrScriptContent
	}
	return fmt.Errorf("unsupported statement type %T", statement)
}
