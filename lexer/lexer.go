package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// LexError is returned by Tokenize for input which cannot be split into
// tokens. Tokenizing never recovers from an error.
type LexError struct {
	Document string // optional name of the document, see option Document
	Line     int
	Column   int
	Msg      string
}

func (e *LexError) Error() string {
	if e.Document != "" {
		return fmt.Sprintf("%s at %s:%d:%d", e.Msg, e.Document, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Column)
}

// Option configures a call to Tokenize.
type Option func(*scanner)

// Document sets a document name to be included in error messages.
func Document(name string) Option {
	return func(s *scanner) {
		s.doc = name
	}
}

// Scanner states
const (
	stateDefault int = iota
	stateWhitespace
	stateIdent
	stateStringSingle
	stateStringDouble
	stateScript
	stateCallback
	stateComment
)

type scanner struct {
	doc    string
	input  []rune
	pos    int
	line   int
	col    int
	state  int
	tokens []Token
	mem    strings.Builder
	mline  int // start of the token currently collected in mem
	mcol   int
}

// Tokenize splits a stylesheet text into a sequence of tokens. Every token
// carries its 1-based line and column.
//
// Tokenize fails with a *LexError for characters outside of the TSS alphabet
// and for strings, scripts or callback references left open at the end of
// the input.
func Tokenize(text string, opts ...Option) ([]Token, error) {
	s := &scanner{
		input: []rune(text),
		line:  1,
		col:   1,
	}
	for _, option := range opts {
		option(s)
	}
	if err := s.run(); err != nil {
		tracer().Debugf("tokenizer: %v", err)
		return nil, err
	}
	tracer().Debugf("tokenizer produced %d tokens", len(s.tokens))
	return s.tokens, nil
}

func (s *scanner) run() error {
	for s.pos < len(s.input) {
		r, next := s.input[s.pos], s.lookahead()
		switch s.state {
		case stateDefault:
			if err := s.scanDefault(r, next); err != nil {
				return err
			}
		case stateWhitespace:
			if isWhitespace(r) {
				s.advance()
				continue
			}
			s.state = stateDefault
		case stateIdent:
			s.scanIdent(r, next)
		case stateStringSingle, stateStringDouble:
			quote := '\''
			if s.state == stateStringDouble {
				quote = '"'
			}
			if r != quote {
				s.mem.WriteRune(r)
				s.advance()
			} else if next == quote { // doubled quote is an escaped quote
				s.mem.WriteRune(r)
				s.advance()
				s.advance()
			} else {
				s.emitMem(Token{Kind: Ident, Quoted: true})
				s.advance()
				s.state = stateDefault
			}
		case stateScript:
			if r == '?' && next == '>' {
				s.emitMem(Token{Kind: Script})
				s.advance()
				s.advance()
				s.state = stateDefault
				continue
			}
			s.mem.WriteRune(r)
			s.advance()
		case stateCallback:
			if r == '}' && next == '>' {
				if err := s.emitCallback(); err != nil {
					return err
				}
				s.advance()
				s.advance()
				s.state = stateDefault
				continue
			}
			s.mem.WriteRune(r)
			s.advance()
		case stateComment:
			if r == '*' && next == '/' {
				s.advance()
				s.state = stateDefault
			}
			s.advance()
		}
	}
	return s.finish()
}

func (s *scanner) scanDefault(r, next rune) error {
	switch {
	case r == '\r':
		s.advance()
	case isWhitespace(r):
		s.tokens = append(s.tokens, Token{Kind: Whitespace, Line: s.line, Column: s.col})
		s.state = stateWhitespace
		s.advance()
	case r == '\'':
		s.begin(stateStringSingle, 1)
	case r == '"':
		s.begin(stateStringDouble, 1)
	case r == '/' && next == '*':
		s.begin(stateComment, 2)
	case r == '<' && next == '{':
		s.begin(stateCallback, 2)
	case r == '<' && next == '?':
		s.begin(stateScript, 2)
	case isPunctuation(r):
		s.tokens = append(s.tokens, Token{Kind: punctuation[r], Line: s.line, Column: s.col})
		s.advance()
	case isIdentRune(r) || isSeparator(r):
		s.begin(stateIdent, 0)
	default:
		return s.errorf(s.line, s.col, "unknown symbol '%c'", r)
	}
	return nil
}

func (s *scanner) scanIdent(r, next rune) {
	switch {
	case isSeparator(r):
		s.flushIdent()
		s.mline, s.mcol = s.line, s.col
		s.mem.WriteRune(r)
		s.advance()
	case isIdentRune(r) && !startsCapture(r, next):
		s.mem.WriteRune(r)
		s.advance()
	default:
		s.flushIdent()
		s.state = stateDefault
	}
}

func (s *scanner) finish() error {
	switch s.state {
	case stateIdent:
		if m := s.mem.String(); len(m) == 1 && isSeparator(rune(m[0])) {
			return s.errorf(s.mline, s.mcol, "unexpected end of input")
		}
		s.flushIdent()
	case stateStringSingle, stateStringDouble:
		return s.errorf(s.mline, s.mcol, "unexpected end of string")
	case stateScript:
		return s.errorf(s.mline, s.mcol, "unexpected end of script")
	case stateCallback:
		return s.errorf(s.mline, s.mcol, "unexpected end of callback")
	case stateComment:
		tracer().Debugf("tokenizer: comment at %d:%d left open", s.mline, s.mcol)
	}
	return nil
}

// begin switches to a collecting state and skips the opening delimiter of
// width w.
func (s *scanner) begin(state int, w int) {
	s.mem.Reset()
	s.mline, s.mcol = s.line, s.col
	s.state = state
	for ; w > 0; w-- {
		s.advance()
	}
}

func (s *scanner) emitMem(t Token) {
	t.Value = s.mem.String()
	t.Line, t.Column = s.mline, s.mcol
	s.tokens = append(s.tokens, t)
	s.mem.Reset()
}

func (s *scanner) flushIdent() {
	if s.mem.Len() > 0 {
		s.emitMem(Token{Kind: Ident})
	}
}

func (s *scanner) emitCallback() error {
	digits := strings.TrimSpace(s.mem.String())
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return s.errorf(s.mline, s.mcol, "invalid numeric callback value")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return s.errorf(s.mline, s.mcol, "invalid numeric callback value")
	}
	s.mem.Reset()
	s.mem.WriteString(digits)
	s.emitMem(Token{Kind: Callback, Index: n})
	return nil
}

func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *scanner) lookahead() rune {
	if s.pos+1 < len(s.input) {
		return s.input[s.pos+1]
	}
	return 0
}

func (s *scanner) errorf(line, col int, format string, args ...interface{}) error {
	return &LexError{
		Document: s.doc,
		Line:     line,
		Column:   col,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// --- Character classes -----------------------------------------------------

var punctuation = map[rune]Kind{
	'{': LCurly,
	'}': RCurly,
	':': Colon,
	';': SemiColon,
	'*': Asterisk,
	'!': Not,
	'^': Caret,
	',': Comma,
	'&': Ampersand,
}

func isPunctuation(r rune) bool {
	_, ok := punctuation[r]
	return ok
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isSeparator is true for characters which start a new identifier.
func isSeparator(r rune) bool {
	return r == '.' || r == '#' || r == '$'
}

func isIdentRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '_', '-', '@', '%', '/', '<', '>', '=':
		return true
	}
	return false
}

// startsCapture is true if r and next open a script, a callback or a comment.
func startsCapture(r, next rune) bool {
	return (r == '<' && (next == '?' || next == '{')) || (r == '/' && next == '*')
}
