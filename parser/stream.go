package parser

import "github.com/npillmayer/tss/lexer"

// tokenStream is a cursor over a token slice.
type tokenStream struct {
	tokens []lexer.Token
	pos    int
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	return &tokenStream{tokens: tokens}
}

// peek returns the token i positions ahead of the cursor.
func (ts *tokenStream) peek(i int) (lexer.Token, bool) {
	at := ts.pos + i
	if at < 0 || at >= len(ts.tokens) {
		return lexer.Token{}, false
	}
	return ts.tokens[at], true
}

func (ts *tokenStream) consume() (lexer.Token, bool) {
	t, ok := ts.peek(0)
	if ok {
		ts.pos++
	}
	return t, ok
}

// drainPeek skips whitespace and returns the next significant token.
func (ts *tokenStream) drainPeek() (lexer.Token, bool) {
	for {
		t, ok := ts.peek(0)
		if !ok || t.Kind != lexer.Whitespace {
			return t, ok
		}
		ts.pos++
	}
}

func (ts *tokenStream) drainConsume() (lexer.Token, bool) {
	ts.drainPeek()
	return ts.consume()
}

// peekOnly returns the n-th token ahead (counting from 0) among the tokens
// satisfying pred, without moving the cursor.
func (ts *tokenStream) peekOnly(pred func(lexer.Token) bool, n int) (lexer.Token, bool) {
	for i := 0; ; i++ {
		t, ok := ts.peek(i)
		if !ok {
			return t, false
		}
		if pred(t) {
			if n == 0 {
				return t, true
			}
			n--
		}
	}
}

func (ts *tokenStream) atEnd() bool {
	_, ok := ts.drainPeek()
	return !ok
}

func significant(t lexer.Token) bool {
	return t.Kind != lexer.Whitespace
}
