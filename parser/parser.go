package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tss/ast"
	"github.com/npillmayer/tss/lexer"
)

// FormatError is returned for stylesheets which do not conform to the TSS
// grammar. It carries the position of the offending token; EOF is set if the
// input ended prematurely. Err, if set, is the cause, e.g. a construction
// error from package ast.
type FormatError struct {
	Document string
	Line     int
	Column   int
	EOF      bool
	Msg      string
	Err      error
}

func (e *FormatError) Error() string {
	if e.EOF {
		return e.Msg + ": unexpected end of input"
	}
	if e.Document != "" {
		return fmt.Sprintf("%s at %s:%d:%d", e.Msg, e.Document, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Column)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Option configures the parser.
type Option func(*parser)

// Document sets a document name to be included in error messages.
func Document(name string) Option {
	return func(p *parser) {
		p.doc = name
	}
}

type parser struct {
	ts  *tokenStream
	doc string
}

func newParser(tokens []lexer.Token, opts []Option) *parser {
	p := &parser{ts: newTokenStream(tokens)}
	for _, option := range opts {
		option(p)
	}
	return p
}

// Parse tokenizes and parses a stylesheet text.
func Parse(text string, opts ...Option) (*ast.Stylesheet, error) {
	p := newParser(nil, opts)
	tokens, err := lexer.Tokenize(text, lexer.Document(p.doc))
	if err != nil {
		return nil, err
	}
	return ParseStylesheet(tokens, opts...)
}

// ParseStylesheet parses a sequence of tokens into a stylesheet.
func ParseStylesheet(tokens []lexer.Token, opts ...Option) (*ast.Stylesheet, error) {
	p := newParser(tokens, opts)
	var decls []ast.Declaration
	for !p.ts.atEnd() {
		d, err := p.declaration()
		if err != nil {
			tracer().Debugf("parser: %v", err)
			return nil, err
		}
		decls = append(decls, d)
	}
	tracer().Debugf("parsed stylesheet with %d declarations", len(decls))
	return ast.NewStylesheet(decls...), nil
}

// ParseOrSelector parses a selector from the start of a token sequence. If
// nested is set, the selector is treated as the selector of a nested rule
// and anchored to the context node. Tokens following the selector are
// ignored.
func ParseOrSelector(tokens []lexer.Token, nested bool, opts ...Option) (*ast.OrSelector, error) {
	p := newParser(tokens, opts)
	return p.orSelector(nested)
}

// ParseSelector parses a (non-nested) selector text. The whole text has to
// be consumed by the selector.
func ParseSelector(text string, opts ...Option) (*ast.OrSelector, error) {
	p := newParser(nil, opts)
	tokens, err := lexer.Tokenize(text, lexer.Document(p.doc))
	if err != nil {
		return nil, err
	}
	p.ts = newTokenStream(tokens)
	p.ts.drainPeek()
	sel, err := p.orSelector(false)
	if err != nil {
		return nil, err
	}
	if t, ok := p.ts.drainPeek(); ok {
		return nil, p.errorAt(t, "unexpected symbol after selector")
	}
	return sel, nil
}

// --- Declarations and statements -------------------------------------------

func (p *parser) declaration() (ast.Declaration, error) {
	if t, ok := p.ts.drainPeek(); ok && t.Kind == lexer.Script {
		return p.scriptDeclaration()
	}
	return p.styleDeclaration(false)
}

func (p *parser) scriptDeclaration() (*ast.ScriptDeclaration, error) {
	t, ok := p.ts.drainConsume()
	if !ok {
		return nil, p.eofError("expected script")
	}
	if t.Kind != lexer.Script {
		return nil, p.errorAt(t, "expected script")
	}
	return ast.ScriptCode(t.Value), nil
}

func (p *parser) styleDeclaration(nested bool) (*ast.StyleDeclaration, error) {
	sel, err := p.orSelector(nested)
	if err != nil {
		return nil, err
	}
	t, ok := p.ts.drainConsume()
	if !ok {
		return nil, p.eofError("'{' expected")
	}
	if t.Kind != lexer.LCurly {
		return nil, p.errorAt(t, "unexpected symbol, '{' expected")
	}
	var statements []ast.Statement
	for {
		t, ok := p.ts.drainPeek()
		if !ok {
			return nil, p.eofError("'}' expected")
		}
		if t.Kind == lexer.RCurly {
			p.ts.consume()
			break
		}
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, st)
	}
	return ast.Style(sel, statements...), nil
}

func (p *parser) statement() (ast.Statement, error) {
	zero, ok := p.ts.drainPeek()
	if !ok {
		return nil, p.eofError("expected statement")
	}
	if zero.Kind == lexer.Script {
		return p.scriptDeclaration()
	}
	if one, ok := p.ts.peekOnly(significant, 1); ok && one.Kind == lexer.Colon {
		return p.assignment()
	}
	return p.styleDeclaration(true)
}

// assignment parses "key: value value …;". Value tokens are joined by
// single spaces, regardless of the amount of whitespace between them.
func (p *parser) assignment() (*ast.AssignmentStatement, error) {
	key, _ := p.ts.consume()
	p.ts.drainConsume() // colon
	if key.Kind != lexer.Ident {
		return nil, p.errorAt(key, "expected an identifier or string")
	}
	var value strings.Builder
	count, ws := 0, false
	for {
		t, ok := p.ts.consume()
		if !ok {
			return nil, p.eofError("';' expected")
		}
		if t.Kind == lexer.SemiColon {
			break
		}
		switch t.Kind {
		case lexer.Ident:
			value.WriteString(t.Value)
			count++
			ws = false
		case lexer.Whitespace:
			if count > 0 && !ws {
				value.WriteByte(' ')
			}
			ws = true
		default:
			return nil, p.errorAt(t, "invalid value")
		}
	}
	if count == 0 {
		return nil, p.errorAt(key, "expected an assigned value")
	}
	v := value.String()
	if ws {
		v = strings.TrimSuffix(v, " ")
	}
	return ast.Assignment(key.Value, v), nil
}

// --- Selectors -------------------------------------------------------------

func (p *parser) orSelector(nested bool) (*ast.OrSelector, error) {
	first, err := p.containmentSelector(nested)
	if err != nil {
		return nil, err
	}
	lines := []*ast.ContainmentSelector{first}
	for {
		t, ok := p.ts.drainPeek()
		if !ok || t.Kind != lexer.Comma {
			break
		}
		p.ts.consume()
		p.ts.drainPeek()
		c, err := p.containmentSelector(nested)
		if err != nil {
			return nil, err
		}
		lines = append(lines, c)
	}
	return ast.NewOrSelector(lines...)
}

func (p *parser) containmentSelector(nested bool) (*ast.ContainmentSelector, error) {
	start, _ := p.ts.peek(0)
	first, err := p.andSelector()
	if err != nil {
		return nil, err
	}
	ands := []*ast.AndSelector{first}
	for {
		t, ok := p.ts.peek(0)
		if !ok || t.Kind != lexer.Whitespace {
			break
		}
		next, ok := p.ts.drainPeek()
		if !ok || next.Kind == lexer.Comma || next.Kind == lexer.LCurly {
			break
		}
		and, err := p.andSelector()
		if err != nil {
			return nil, err
		}
		if and.HasContextSelector() {
			return nil, p.wrapAt(next, "unexpected context selector", ast.ErrMisplacedContext)
		}
		ands = append(ands, and)
	}
	if nested && !first.HasContextSelector() {
		anchor, err := ast.NewAndSelector(ast.Context())
		if err != nil {
			return nil, p.wrapAt(start, "invalid selector", err)
		}
		ands = append([]*ast.AndSelector{anchor}, ands...)
	}
	c, err := ast.NewContainmentSelector(ands...)
	if err != nil {
		return nil, p.wrapAt(start, "invalid selector", err)
	}
	return c, nil
}

func (p *parser) andSelector() (*ast.AndSelector, error) {
	start, _ := p.ts.peek(0)
	first, err := p.notSelector()
	if err != nil {
		return nil, err
	}
	elements := []ast.ElementSelector{first}
	for {
		t, ok := p.ts.peek(0)
		if !ok {
			break
		}
		if t.Kind == lexer.Caret {
			p.ts.consume()
		} else if !t.IsSelectorStart() {
			break
		}
		e, err := p.notSelector()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	and, err := ast.NewAndSelector(elements...)
	if err != nil {
		return nil, p.wrapAt(start, "invalid selector", err)
	}
	return and, nil
}

func (p *parser) notSelector() (ast.ElementSelector, error) {
	t, ok := p.ts.peek(0)
	if !ok || t.Kind != lexer.Not {
		return p.atomSelector()
	}
	p.ts.consume()
	p.ts.drainPeek()
	inner, err := p.notSelector() // "!!a" has to fail as a negation of a negation
	if err != nil {
		return nil, err
	}
	not, err := ast.Not(inner)
	if err != nil {
		return nil, p.wrapAt(t, "malformed negation", err)
	}
	return not, nil
}

func (p *parser) atomSelector() (ast.ElementSelector, error) {
	t, ok := p.ts.consume()
	if !ok {
		return nil, p.eofError("expected selector")
	}
	switch t.Kind {
	case lexer.Asterisk:
		return ast.Any(), nil
	case lexer.Ampersand:
		return ast.Context(), nil
	case lexer.Ident:
		return ast.Identifier(t.Value), nil
	case lexer.Script:
		return ast.Script(t.Value), nil
	case lexer.Callback:
		return ast.Callback(t.Index), nil
	}
	return nil, p.errorAt(t, "expected selector identifier")
}

// --- Errors ----------------------------------------------------------------

func (p *parser) errorAt(t lexer.Token, msg string) error {
	return &FormatError{
		Document: p.doc,
		Line:     t.Line,
		Column:   t.Column,
		Msg:      msg,
	}
}

func (p *parser) wrapAt(t lexer.Token, msg string, err error) error {
	return &FormatError{
		Document: p.doc,
		Line:     t.Line,
		Column:   t.Column,
		Msg:      fmt.Sprintf("%s: %v", msg, err),
		Err:      err,
	}
}

func (p *parser) eofError(msg string) error {
	return &FormatError{Document: p.doc, EOF: true, Msg: msg}
}
