package parser

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := Parse(".a { color: red; } .a .b { color: blue; }")
	require.NoError(t, err)
	require.Equal(t, 2, sheet.Len())
	decls := sheet.Declarations()
	first, ok := decls[0].(*ast.StyleDeclaration)
	require.True(t, ok)
	assert.Equal(t, "'.a'", first.Selector().Serialize(nil))
	second := decls[1].(*ast.StyleDeclaration)
	assert.Equal(t, "'.a' '.b'", second.Selector().Serialize(nil))
	a, ok := second.Statements()[0].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "color", a.Key())
	assert.Equal(t, "blue", a.Value())
}

func TestParseAssignmentWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	inputs := map[string]string{
		"sel { a: b; }":                    "b",
		"sel { a:b;}":                      "b",
		"sel { a :   b   c\n\t d   ; }":    "b c d",
		"sel { 'a':'x y'  z ; }":           "x y z",
		"sel { a: 1px solid 'dark red'; }": "1px solid dark red",
		"sel { a: x.y#z; }":                "x.y#z",
	}
	for input, value := range inputs {
		sheet, err := Parse(input)
		require.NoError(t, err, input)
		style := sheet.Declarations()[0].(*ast.StyleDeclaration)
		a := style.Statements()[0].(*ast.AssignmentStatement)
		assert.Equal(t, "a", a.Key(), input)
		assert.Equal(t, value, a.Value(), input)
	}
}

func TestParseNestedRulesAreAnchored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := Parse("a { x: 1; b c { y: 2; } &^d { z: 3; } }")
	require.NoError(t, err)
	outer := sheet.Declarations()[0].(*ast.StyleDeclaration)
	require.Equal(t, 3, outer.Len())
	nested := outer.Statements()[1].(*ast.StyleDeclaration)
	assert.Equal(t, "& 'b' 'c'", nested.Selector().Serialize(nil))
	anchored := outer.Statements()[2].(*ast.StyleDeclaration)
	assert.Equal(t, "&^'d'", anchored.Selector().Serialize(nil))
}

func TestParseContextOnlyFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	_, err := Parse("a\n  b^& { x: y; }")
	var ferr *FormatError
	require.True(t, errors.As(err, &ferr), "expected FormatError, have %v", err)
	assert.Equal(t, 2, ferr.Line)
	assert.Equal(t, 3, ferr.Column)
	assert.Contains(t, ferr.Error(), "unexpected context selector")
	assert.True(t, errors.Is(err, ast.ErrMisplacedContext))
}

func TestParseNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sel, err := ParseSelector("! 'a'")
	require.NoError(t, err)
	not, ok := sel.Line(0).At(0).At(0).(*ast.NotSelector)
	require.True(t, ok)
	assert.Equal(t, "'a'", not.Inner().Serialize(nil))
	for _, bad := range []string{"!!a", "!*", "!&", "a^!!b"} {
		_, err := ParseSelector(bad)
		assert.True(t, errors.Is(err, ast.ErrInvalidNegation), "%q: %v", bad, err)
	}
}

func TestParseConjunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sel, err := ParseSelector("div.note#x^*<{2}> p!.hidden, <?this.a?>")
	require.NoError(t, err)
	require.Equal(t, 2, sel.Len())
	first := sel.Line(0)
	require.Equal(t, 2, first.Len())
	assert.Equal(t, 5, first.At(0).Len())
	assert.Equal(t, "div", first.At(0).TypeSelector())
	assert.Equal(t, 2, first.At(1).Len())
	assert.True(t, sel.ContainsScripts())
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	selectors := []string{
		"a",
		"'it''s'",
		`"say ""hi"""`,
		"& a b",
		"&^x y, *",
		"a^!b c^<{0}>^!<{1}>",
		"<?this.count > 2?> x",
		".a#b$first .c",
		"'with space' '^,&'",
	}
	for _, text := range selectors {
		sel, err := ParseSelector(text)
		require.NoError(t, err, text)
		serialized := sel.Serialize(nil)
		again, err := ParseSelector(serialized)
		require.NoError(t, err, serialized)
		assert.Equal(t, serialized, again.Serialize(nil), text)
	}
	sel, err := ParseSelector("'it''s'")
	require.NoError(t, err)
	assert.Equal(t, "it's", sel.Line(0).At(0).At(0).(*ast.IdentifierSelector).Identifier())
	assert.Equal(t, "'it''s'", sel.Serialize(nil))
}

func TestParseScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	sheet, err := Parse("<?var n = 0;?> a { <?n++;?> b: c; }")
	require.NoError(t, err)
	decls := sheet.Declarations()
	require.Len(t, decls, 2)
	script, ok := decls[0].(*ast.ScriptDeclaration)
	require.True(t, ok)
	assert.Equal(t, "var n = 0;", script.Script())
	style := decls[1].(*ast.StyleDeclaration)
	_, ok = style.Statements()[0].(*ast.ScriptDeclaration)
	assert.True(t, ok)
	assert.True(t, sheet.ContainsScripts())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.parser")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	inputs := []struct {
		text string
		eof  bool
	}{
		{"a x: y; }", false},
		{"a {", true},
		{"a { b: ; }", false},
		{"a { b: c }", false},
		{"a { b: c * d; }", false},
		{"a { *: c; }", false},
		{"a, { }", false},
		{"a^", true},
	}
	for _, input := range inputs {
		_, err := Parse(input.text, Document("errors.tss"))
		var ferr *FormatError
		if !assert.True(t, errors.As(err, &ferr), "%q: expected FormatError, have %v", input.text, err) {
			continue
		}
		t.Logf("%q => %v", input.text, err)
		assert.Equal(t, input.eof, ferr.EOF, input.text)
	}
	_, err := Parse("a { ~ }")
	var lexErr *lexer.LexError
	assert.True(t, errors.As(err, &lexErr))
	_, err = ParseSelector("a {")
	assert.Error(t, err)
}

func TestParseOrSelectorFromTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("b c { }")
	require.NoError(t, err)
	sel, err := ParseOrSelector(tokens, true)
	require.NoError(t, err)
	assert.Equal(t, "& 'b' 'c'", sel.Serialize(nil))
}
