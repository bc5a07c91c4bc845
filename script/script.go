package script

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/interp"
	"github.com/npillmayer/tss/visit"
)

// Evaluator evaluates JavaScript source code and returns its value.
type Evaluator interface {
	Evaluate(code string) (any, error)
}

// Invoker calls a function value of the script engine.
type Invoker interface {
	Invoke(fn any, args ...any) (any, error)
}

// Parameter is a named value bound to the compiled code.
type Parameter struct {
	Name  string
	Value any
}

// Compiled is a stylesheet ready to be applied to host trees.
type Compiled interface {
	Apply(root any, arg any) (any, error)
}

var _ Compiled = &interp.Stylesheet{}

// Script is the result of translating a stylesheet to JavaScript. Code is
// the body of a function with the names of Closure as parameters; the body
// returns the stylesheet function
//
//    function (__root__, args = {})
type Script struct {
	Code    string
	Closure []Parameter
}

// Generate translates a stylesheet to JavaScript. invoker is used by the
// injected Services to call back into script functions. If asSelectable is
// nil, interp.Selectables is used.
func Generate(sheet *ast.Stylesheet, asSelectable interp.AsSelectable, invoker Invoker) (*Script, error) {
	if sheet == nil {
		sheet = ast.NewStylesheet()
	}
	if asSelectable == nil {
		asSelectable = interp.Selectables
	}
	var code strings.Builder
	code.WriteString(prelude)
	for i, decl := range sheet.Declarations() {
		s, err := serialize(strconv.Itoa(i), decl)
		if err != nil {
			return nil, err
		}
		code.WriteString(s)
		code.WriteString("\n")
	}
	code.WriteString(epilogue)
	svc := &Services{
		sheet:        sheet,
		invoker:      invoker,
		asSelectable: asSelectable,
		engine:       visit.Default(),
	}
	return &Script{
		Code:    code.String(),
		Closure: []Parameter{{Name: "__svc__", Value: svc}},
	}, nil
}

// Compile prepares a stylesheet for application. Stylesheets without
// script content are compiled by package interp, without generating code
// and without calling evaluator. Otherwise the generated code is wrapped as
//
//    (function (__svc__, extra…) { … }).valueOf()
//
// and evaluated once; the resulting function is invoked with the closure
// values, yielding the stylesheet function called by Apply.
func Compile(sheet *ast.Stylesheet, asSelectable interp.AsSelectable, evaluator Evaluator,
	invoker Invoker, extra ...Parameter) (Compiled, error) {
	//
	if sheet == nil || !sheet.ContainsScripts() {
		return interp.Compile(sheet, asSelectable)
	}
	if evaluator == nil || invoker == nil {
		return nil, ErrNoEvaluator
	}
	script, err := Generate(sheet, asSelectable, invoker)
	if err != nil {
		return nil, err
	}
	closure := append(script.Closure, extra...)
	names := make([]string, len(closure))
	values := make([]any, len(closure))
	seen := make(map[string]bool, len(closure))
	for i, p := range closure {
		if !isIdentifier(p.Name) || seen[p.Name] {
			return nil, fmt.Errorf("invalid or duplicate script parameter name %q", p.Name)
		}
		seen[p.Name] = true
		names[i], values[i] = p.Name, p.Value
	}
	wrapped := "(function (" + strings.Join(names, ", ") + ") {\n" + script.Code + "}).valueOf()"
	tracer().Debugf("compiled stylesheet to %d bytes of script", len(wrapped))
	factory, err := evaluator.Evaluate(wrapped)
	if err != nil {
		return nil, fmt.Errorf("evaluating compiled stylesheet: %w", err)
	}
	fn, err := invoker.Invoke(factory, values...)
	if err != nil {
		return nil, fmt.Errorf("binding compiled stylesheet: %w", err)
	}
	return &compiled{fn: fn, invoker: invoker}, nil
}

type compiled struct {
	fn      any
	invoker Invoker
}

// Apply calls the stylesheet function with root and arg.
func (c *compiled) Apply(root any, arg any) (any, error) {
	return c.invoker.Invoke(c.fn, root, arg)
}

// --- Serialization ---------------------------------------------------------

func serialize(id string, statement ast.Statement) (string, error) {
	switch st := statement.(type) {
	case *ast.AssignmentStatement:
		return fmt.Sprintf("__set__(__root__, %s, %s);", quote(st.Key()), quote(st.Value())), nil
	case *ast.ScriptDeclaration:
		return st.Script(), nil
	case *ast.StyleDeclaration:
		if !st.ContainsScripts() {
			return fmt.Sprintf("__rule__(__root__, '%s');", id), nil
		}
		var predicates []string
		selector := st.Selector().Serialize(func(s *ast.ScriptSelector) string {
			n := len(predicates)
			predicates = append(predicates, "function () { return !!("+s.Expression()+"); }")
			return "<{" + strconv.Itoa(n) + "}>"
		})
		body := make([]string, st.Len())
		for i, local := range st.Statements() {
			s, err := serialize(id+"."+strconv.Itoa(i), local)
			if err != nil {
				return "", err
			}
			body[i] = s
		}
		return fmt.Sprintf("__visit__(__root__, %s, function (__root__) {\n%s\n}, [%s]);",
			quote(selector), strings.Join(body, "\n"), strings.Join(predicates, ", ")), nil
	}
	return "", fmt.Errorf("unsupported statement type %T", statement)
}

// quote returns s as a JavaScript string literal.
func quote(s string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		panic(err) // strings always encode
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
