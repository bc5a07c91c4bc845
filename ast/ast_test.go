package ast_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/tss/ast"
)

func TestEmptySelectorsFail(t *testing.T) {
	if _, err := ast.NewOrSelector(); !errors.Is(err, ast.ErrEmptySelector) {
		t.Errorf("expected empty or-selector to fail, have %v", err)
	}
	if _, err := ast.NewContainmentSelector(); !errors.Is(err, ast.ErrEmptySelector) {
		t.Errorf("expected empty containment selector to fail, have %v", err)
	}
	if _, err := ast.NewAndSelector(); !errors.Is(err, ast.ErrEmptySelector) {
		t.Errorf("expected empty and-selector to fail, have %v", err)
	}
}

func TestInvalidNegations(t *testing.T) {
	inner := ast.Must(ast.Not(ast.Identifier("a")))
	for _, sel := range []ast.ElementSelector{inner, ast.Any(), ast.Context(), nil} {
		if _, err := ast.Not(sel); !errors.Is(err, ast.ErrInvalidNegation) {
			t.Errorf("expected negation of %T to fail, have %v", sel, err)
		}
	}
	for _, sel := range []ast.ElementSelector{ast.Identifier("a"), ast.Script("x"), ast.Callback(1)} {
		if _, err := ast.Not(sel); err != nil {
			t.Errorf("expected negation of %T to succeed, have %v", sel, err)
		}
	}
}

func TestMisplacedContext(t *testing.T) {
	x := ast.Must(ast.NewAndSelector(ast.Identifier("x")))
	anchor := ast.Must(ast.NewAndSelector(ast.Context()))
	if _, err := ast.NewContainmentSelector(x, anchor); !errors.Is(err, ast.ErrMisplacedContext) {
		t.Errorf("expected trailing '&' to fail, have %v", err)
	}
	c, err := ast.NewContainmentSelector(anchor, x)
	if err != nil {
		t.Fatalf("expected leading '&' to succeed, have %v", err)
	}
	if s := c.Serialize(nil); s != "& 'x'" {
		t.Errorf("expected \"& 'x'\", have %s", s)
	}
}

func TestAndSelectorHints(t *testing.T) {
	and := ast.Must(ast.NewAndSelector(
		ast.Context(),
		ast.Identifier(".note"),
		ast.Identifier("para"),
		ast.Identifier("table"),
	))
	if and.TypeSelector() != "para" {
		t.Errorf("expected type hint 'para', have %q", and.TypeSelector())
	}
	if !and.HasContextSelector() {
		t.Error("expected and-selector to have a context anchor")
	}
	plain := ast.Must(ast.NewAndSelector(ast.Identifier("#x"), ast.Identifier("")))
	if plain.TypeSelector() != "" || plain.HasContextSelector() {
		t.Errorf("expected no hints for %s", plain.Serialize(nil))
	}
}

func TestSerialize(t *testing.T) {
	neg := ast.Must(ast.Not(ast.Identifier("it's")))
	first := ast.Must(ast.NewContainmentSelector(
		ast.Must(ast.NewAndSelector(ast.Context())),
		ast.Must(ast.NewAndSelector(ast.Identifier("a"), neg)),
	))
	second := ast.Must(ast.NewContainmentSelector(
		ast.Must(ast.NewAndSelector(ast.Any(), ast.Script("this.x"), ast.Callback(3))),
	))
	or := ast.Must(ast.NewOrSelector(first, second))
	s := or.Serialize(nil)
	expected := `& 'a'^!'it''s', *^<?this.x?>^<{3}>`
	if s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	replaced := or.Serialize(func(*ast.ScriptSelector) string { return "<{0}>" })
	if replaced != `& 'a'^!'it''s', *^<{0}>^<{3}>` {
		t.Errorf("unexpected serialization with replacer: %s", replaced)
	}
	if !or.ContainsScripts() || first.ContainsScripts() {
		t.Error("script detection is wrong")
	}
}

func TestStatementAt(t *testing.T) {
	sel := ast.Must(ast.NewOrSelector(ast.Must(ast.NewContainmentSelector(
		ast.Must(ast.NewAndSelector(ast.Identifier("a")))))))
	inner := ast.Style(sel, ast.Assignment("k", "v"))
	sheet := ast.NewStylesheet(
		ast.ScriptCode("var x = 1;"),
		ast.Style(sel, ast.Assignment("color", "red"), inner),
	)
	st, err := sheet.StatementAt(1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if a, ok := st.(*ast.AssignmentStatement); !ok || a.Key() != "k" {
		t.Errorf("expected assignment k: v at 1.1.0, have %#v", st)
	}
	if _, err := sheet.StatementAt(0, 0); err == nil {
		t.Error("expected error for path into a script declaration")
	}
	if _, err := sheet.StatementAt(1, 7); err == nil {
		t.Error("expected error for path out of range")
	}
	if ast.PathString([]int{2, 1, 0}) != "2.1.0" {
		t.Errorf("unexpected path string %q", ast.PathString([]int{2, 1, 0}))
	}
	if !sheet.ContainsScripts() {
		t.Error("expected stylesheet to contain scripts")
	}
}
