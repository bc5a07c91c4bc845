package tss

import (
	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/interp"
	"github.com/npillmayer/tss/parser"
	"github.com/npillmayer/tss/script"
)

// Parse parses stylesheet text.
func Parse(text string, opts ...parser.Option) (*ast.Stylesheet, error) {
	sheet, err := parser.Parse(text, opts...)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	return sheet, nil
}

// MustParse parses stylesheet text and panics on error. It is intended for
// stylesheets built into programs.
func MustParse(text string, opts ...parser.Option) *ast.Stylesheet {
	sheet, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Compile compiles a stylesheet, scripted or not. Scripts are evaluated
// with evaluator; functions returned from scripts are called through
// invoker. Stylesheets without scripts never reach the script engine, and
// evaluator and invoker may be nil for them.
func Compile(sheet *ast.Stylesheet, asSelectable interp.AsSelectable,
	evaluator script.Evaluator, invoker script.Invoker, extra ...script.Parameter) (script.Compiled, error) {
	//
	return script.Compile(sheet, asSelectable, evaluator, invoker, extra...)
}

// CompileSimple compiles a stylesheet without scripts. It fails with
// interp.ErrScriptContent otherwise.
func CompileSimple(sheet *ast.Stylesheet, asSelectable interp.AsSelectable) (*interp.Stylesheet, error) {
	return interp.Compile(sheet, asSelectable)
}
